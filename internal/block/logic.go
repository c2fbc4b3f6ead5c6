package block

// ConfirmNode — подтверждение дискрета: переход в RisingEdge должен продержаться
// Delay секунд, обратный переход проходит сразу.
type ConfirmNode struct {
	RisingEdge bool
	Delay      float64

	t   float64
	out bool
}

func (c *ConfirmNode) Step(u bool, dt float64) bool {
	if u == c.RisingEdge {
		c.t += dt
		if c.t >= c.Delay {
			c.out = u
		}
	} else {
		c.t = 0
		c.out = u
	}
	return c.out
}

func (c *ConfirmNode) Reset() {
	c.t, c.out = 0, false
}

// Hysteresis — компаратор с гистерезисом: включается на u >= High, выключается на u <= Low.
type Hysteresis struct {
	High, Low float64
	out       bool
}

func (h *Hysteresis) Step(u float64) bool {
	h.out = (!h.out && u >= h.High) || ((!h.out || u > h.Low) && h.out)
	return h.out
}

func (h *Hysteresis) Reset() { h.out = false }

// Pulse выдаёт true ровно на один кадр по фронту (RisingEdge) или спаду входа.
type Pulse struct {
	RisingEdge bool

	prev bool
	out  bool
	ok   bool
}

func (p *Pulse) Step(u bool) bool {
	if !p.ok {
		p.prev, p.ok = p.RisingEdge, true
	}
	var edge bool
	if p.RisingEdge {
		edge = u && !p.prev
	} else {
		edge = !u && p.prev
	}
	p.out = !p.out && edge
	p.prev = u
	return p.out
}

func (p *Pulse) Reset() { p.prev, p.out, p.ok = false, false, false }

// SRLatch — RS-триггер с приоритетом установки.
type SRLatch struct{ q bool }

func (s *SRLatch) Step(set, reset bool) bool {
	s.q = set || (!reset && s.q)
	return s.q
}

func (s *SRLatch) Reset() { s.q = false }
