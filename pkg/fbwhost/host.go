// Package fbwhost — хост вычислителей: цикл кадров, раскладка входов и
// выходов по шине, смоделированные LRU и запуск из cmd/fbw-host.
package fbwhost

import (
	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/bus"
	"github.com/flybywiresim/aircraft-sub011/internal/config"
	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/recorder"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

const (
	lawNormal    = "normal"
	lawAlternate = "alternate"
)

// Host владеет всеми вычислителями одного самолёта и шагает их в
// фиксированном порядке: FAC1, FAC2, законы тангажа, пределы тяги.
type Host struct {
	variant string

	facs      [2]*fac.Computer
	normal    *pitch.NormalLaw
	alternate *pitch.AlternateLaw
	limits    *thrust.Limits

	qDot  block.Derivative
	power block.Pulse
	last  recorder.Frame
	seq   uint64
}

// NewHost строит вычислители по калибровке. Каждый получает свою копию параметров.
func NewHost(cal *config.Calibration) *Host {
	return &Host{
		variant:   cal.Variant,
		facs:      [2]*fac.Computer{fac.NewComputer(cal.FACParams()), fac.NewComputer(cal.FACParams())},
		normal:    pitch.NewNormalLaw(cal.PitchParams()),
		alternate: pitch.NewAlternateLaw(cal.PitchParams()),
		limits:    thrust.NewLimits(cal.ThrustParams()),
		power:     block.Pulse{RisingEdge: true},
	}
}

// Reset возвращает все вычислители в начальное состояние.
func (h *Host) Reset() {
	for _, c := range h.facs {
		c.Reset()
	}
	h.normal.Reset()
	h.alternate.Reset()
	h.limits.Reset()
	h.qDot.Reset()
	h.last = recorder.Frame{}
}

// Last — выходы последнего кадра.
func (h *Host) Last() recorder.Frame { return h.last }

// Step выполняет один кадр: читает входы с шины, шагает вычислители и
// публикует выходы. tNs — монотонное время кадра.
func (h *Host) Step(b bus.Bus, dt float64, tNs int64) recorder.Frame {
	if h.power.Step(flag(b, inACEssPowered)) {
		h.Reset()
	}

	f := recorder.Frame{
		Seq:     h.seq,
		TimeNs:  tNs,
		Dt:      dt,
		Variant: h.variant,
	}
	h.seq++

	// перекрёстная связь по шинам прошлого кадра
	for i, c := range h.facs {
		in := facInput(b, i+1, dt, &h.last.FAC[1-i])
		f.FAC[i] = c.Step(in)
	}

	src := &f.FAC[0]
	if !h.facs[0].Running() {
		src = &f.FAC[1]
	}
	pin := pitchInput(b, dt, h.qDot.Step(src.Logic.IR.QDegS, dt), src)
	normal := h.normal.Step(pin)
	alternate := h.alternate.Step(pin)
	if flag(b, inAlternateLaw) {
		f.PitchLaw, f.Pitch = lawAlternate, alternate
	} else {
		f.PitchLaw, f.Pitch = lawNormal, normal
	}

	f.Thrust = h.limits.Step(thrustInput(b, dt, src.Logic.ADR.AltitudeFt))

	writeFrame(b, &f)
	h.last = f
	return f
}
