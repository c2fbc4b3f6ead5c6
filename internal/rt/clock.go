package rt

import "time"

var start = time.Now()

// fallbackMonotonic — монотонная часть time.Now относительно старта процесса.
func fallbackMonotonic() int64 {
	return int64(time.Since(start))
}

// Clock — источник dt для цикла кадров.
type Clock struct {
	now  func() int64
	last int64
	ok   bool
}

func NewClock() *Clock { return &Clock{now: Monotonic} }

// Dt — секунды с прошлого вызова, ограниченные (0, maxDt]. На первом вызове
// и при неположительном интервале возвращается fallback.
func (c *Clock) Dt(fallback, maxDt float64) float64 {
	t := c.now()
	if !c.ok {
		c.last, c.ok = t, true
		return fallback
	}
	dt := float64(t-c.last) / 1e9
	c.last = t
	if dt <= 0 {
		return fallback
	}
	if dt > maxDt {
		return maxDt
	}
	return dt
}
