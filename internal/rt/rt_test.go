package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonic(t *testing.T) {
	a := Monotonic()
	b := Monotonic()
	assert.GreaterOrEqual(t, b, a)
	assert.GreaterOrEqual(t, GranularityNs(), int64(0))
}

func TestClock_Dt(t *testing.T) {
	var now int64
	c := &Clock{now: func() int64 { return now }}

	assert.Equal(t, 0.02, c.Dt(0.02, 0.1), "first call uses fallback")

	now += 30_000_000
	assert.InDelta(t, 0.03, c.Dt(0.02, 0.1), 1e-12)

	assert.Equal(t, 0.02, c.Dt(0.02, 0.1), "zero interval uses fallback")

	now += 2_000_000_000
	assert.Equal(t, 0.1, c.Dt(0.02, 0.1), "long pause is clamped")
}
