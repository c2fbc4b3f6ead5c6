// Package lookup — табличные функции 1-D/2-D/3-D: линейная интерполяция по
// монотонным точкам разбиения, за пределами таблицы значение держится на краю.
package lookup

import (
	"errors"
	"fmt"
)

// ErrBreakpoints — точки разбиения не возрастают или не совпадают по длине с данными.
var ErrBreakpoints = errors.New("lookup: bad breakpoints")

// Table1D — y(x).
type Table1D struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}

// Table2D — z(x, y); Z[i][j] соответствует X[i], Y[j].
type Table2D struct {
	X []float64   `yaml:"x"`
	Y []float64   `yaml:"y"`
	Z [][]float64 `yaml:"z"`
}

// Table3D — w(x, y, z); W[i] — срез Table2D для X[i].
type Table3D struct {
	X []float64 `yaml:"x"`
	W []Table2D `yaml:"w"`
}

// Const возвращает таблицу, постоянную по x.
func Const(v float64) Table1D {
	return Table1D{X: []float64{0}, Y: []float64{v}}
}

// index находит отрезок [bp[i], bp[i+1]] и долю f внутри него, с насыщением на краях.
func index(bp []float64, x float64) (i int, f float64) {
	n := len(bp)
	if n == 1 || x <= bp[0] {
		return 0, 0
	}
	if x >= bp[n-1] {
		return n - 2, 1
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= bp[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, (x - bp[lo]) / (bp[lo+1] - bp[lo])
}

func lerp(a, b, f float64) float64 {
	if f == 0 {
		return a
	}
	if f == 1 {
		return b
	}
	return a + (b-a)*f
}

// At вычисляет значение таблицы.
func (t Table1D) At(x float64) float64 {
	if len(t.X) == 1 {
		return t.Y[0]
	}
	i, f := index(t.X, x)
	return lerp(t.Y[i], t.Y[i+1], f)
}

// At вычисляет значение таблицы.
func (t Table2D) At(x, y float64) float64 {
	if len(t.X) == 1 {
		return row(t.Y, t.Z[0], y)
	}
	i, f := index(t.X, x)
	return lerp(row(t.Y, t.Z[i], y), row(t.Y, t.Z[i+1], y), f)
}

func row(bp, vals []float64, y float64) float64 {
	if len(bp) == 1 {
		return vals[0]
	}
	j, g := index(bp, y)
	return lerp(vals[j], vals[j+1], g)
}

// At вычисляет значение таблицы.
func (t Table3D) At(x, y, z float64) float64 {
	if len(t.X) == 1 {
		return t.W[0].At(y, z)
	}
	i, f := index(t.X, x)
	return lerp(t.W[i].At(y, z), t.W[i+1].At(y, z), f)
}

func checkBP(name string, bp []float64, n int) error {
	if len(bp) == 0 || len(bp) != n {
		return fmt.Errorf("%s: %d breakpoints for %d values: %w", name, len(bp), n, ErrBreakpoints)
	}
	for i := 1; i < len(bp); i++ {
		if bp[i] <= bp[i-1] {
			return fmt.Errorf("%s: breakpoint %d not increasing: %w", name, i, ErrBreakpoints)
		}
	}
	return nil
}

// Validate проверяет таблицу.
func (t Table1D) Validate() error { return checkBP("x", t.X, len(t.Y)) }

// Validate проверяет таблицу.
func (t Table2D) Validate() error {
	if err := checkBP("x", t.X, len(t.Z)); err != nil {
		return err
	}
	for i, r := range t.Z {
		if err := checkBP(fmt.Sprintf("y[%d]", i), t.Y, len(r)); err != nil {
			return err
		}
	}
	return nil
}

// Validate проверяет таблицу.
func (t Table3D) Validate() error {
	if err := checkBP("x", t.X, len(t.W)); err != nil {
		return err
	}
	for i := range t.W {
		if err := t.W[i].Validate(); err != nil {
			return fmt.Errorf("w[%d]: %w", i, err)
		}
	}
	return nil
}
