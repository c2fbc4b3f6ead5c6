package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable1D(t *testing.T) {
	tab := Table1D{X: []float64{0, 100, 150, 200}, Y: []float64{0.1, 0.1, 0.15, 0.2}}
	require.NoError(t, tab.Validate())
	tests := []struct{ x, want float64 }{
		{-50, 0.1}, {0, 0.1}, {50, 0.1}, {125, 0.125}, {150, 0.15}, {200, 0.2}, {1000, 0.2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tab.At(tt.x), 1e-12, "x=%v", tt.x)
	}
	assert.Equal(t, 0.2, tab.At(200), "breakpoints hit exactly")
}

func TestTable1D_Const(t *testing.T) {
	c := Const(-30)
	assert.Equal(t, -30.0, c.At(-1e9))
	assert.Equal(t, -30.0, c.At(1e9))
}

func TestTable2D(t *testing.T) {
	tab := Table2D{
		X: []float64{0, 1},
		Y: []float64{0, 10, 20},
		Z: [][]float64{{0, 10, 20}, {100, 110, 120}},
	}
	require.NoError(t, tab.Validate())
	assert.InDelta(t, 55.0, tab.At(0.5, 5), 1e-12)
	assert.InDelta(t, 120.0, tab.At(5, 50), 1e-12)
	assert.InDelta(t, 0.0, tab.At(-5, -50), 1e-12)
	assert.InDelta(t, 115.0, tab.At(1, 15), 1e-12)
}

func TestTable3D(t *testing.T) {
	slice := func(off float64) Table2D {
		return Table2D{X: []float64{0, 1}, Y: []float64{0, 1}, Z: [][]float64{{off, off + 1}, {off + 2, off + 3}}}
	}
	tab := Table3D{X: []float64{0, 10}, W: []Table2D{slice(0), slice(100)}}
	require.NoError(t, tab.Validate())
	assert.InDelta(t, 51.5, tab.At(5, 0.5, 0.5), 1e-12)
	assert.InDelta(t, 103.0, tab.At(99, 9, 9), 1e-12)
}

func TestValidate(t *testing.T) {
	t.Run("not increasing", func(t *testing.T) {
		err := Table1D{X: []float64{0, 0}, Y: []float64{1, 2}}.Validate()
		assert.ErrorIs(t, err, ErrBreakpoints)
	})
	t.Run("length mismatch", func(t *testing.T) {
		err := Table2D{X: []float64{0, 1}, Y: []float64{0}, Z: [][]float64{{1}}}.Validate()
		assert.ErrorIs(t, err, ErrBreakpoints)
	})
}
