package fac

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
)

type lawState struct {
	ydWashout block.WashoutFilter
	ydRL      block.RateLimiter

	trimReset      block.Pulse
	trimResetLatch block.SRLatch
	trimInt        block.Integrator
	trimOrder      block.RateLimiter

	travelRL block.RateLimiter
}

func newLawState(p *Params) lawState {
	return lawState{
		trimReset: block.Pulse{RisingEdge: true},
		trimInt:   block.NewIntegrator(),
		travelRL:  block.NewRateLimiter(p.TravelLimit.InitDeg),
	}
}

// yawDamper: при включении команда ELAC, если он её выдаёт, иначе собственная
// команда по отмытой угловой скорости рыскания. Отключённый демпфер следит за приводом.
func yawDamper(p *YawDamperParams, s *lawState, in *Input, l *Logic) float64 {
	d, b := &in.Discrete, &in.Bus
	own := block.Clamp(p.Gain*s.ydWashout.Step(l.IR.RDegS, p.WashoutCutoff, in.Dt), -p.LimitDeg, p.LimitDeg)
	engaged := l.YawDamper.Engaged

	cmd := in.Analog.YawDamperPosDeg
	if engaged {
		cmd = own
		switch {
		case d.Elac1Healthy && b.ELAC1.DiscreteStatusWord1.BitValid(elacW1YawOrderValidBit):
			cmd = b.ELAC1.YawDamperCommandDeg.Data
		case d.Elac2Healthy && b.ELAC2.DiscreteStatusWord1.BitValid(elacW1YawOrderValidBit):
			cmd = b.ELAC2.YawDamperCommandDeg.Data
		}
	}
	cmd = block.Clamp(cmd, -p.AuthorityDeg, p.AuthorityDeg)
	return s.ydRL.StepReset(cmd, p.Rate, p.Rate, in.Dt, !engaged, in.Analog.YawDamperPosDeg)
}

// rudderTrim интегрирует скорость перекладки триммера. Кнопка сброса
// возвращает триммер в ноль, переключатели или автопилот прерывают сброс.
func rudderTrim(p *RudderTrimParams, s *lawState, in *Input, l *Logic) float64 {
	d, dt := &in.Discrete, in.Dt
	ap := d.APOwnEngaged || d.APOppEngaged
	prev := s.trimInt.Value()

	set := s.trimReset.Step(d.RudderTrimResetButton) && !ap
	switches := d.RudderTrimSwitchLeft || d.RudderTrimSwitchRight
	resetting := s.trimResetLatch.Step(set, switches || ap || math.Abs(prev) <= p.ResetDoneDeg)

	var rate float64
	switch {
	case !l.RudderTrim.Engaged:
		rate = (in.Analog.RudderTrimPosDeg - prev) * p.TrackGain
	case resetting:
		rate = block.Clamp(-p.ResetGain*prev, -p.Rate, p.Rate)
	case ap:
		cmd, _ := elacWord(in.Bus.ELAC1.YawDamperCommandDeg, in.Bus.ELAC2.YawDamperCommandDeg)
		rate = block.Clamp(p.APGain*cmd, -p.Rate, p.Rate)
	case d.RudderTrimSwitchRight && !d.RudderTrimSwitchLeft:
		rate = p.Rate
	case d.RudderTrimSwitchLeft && !d.RudderTrimSwitchRight:
		rate = -p.Rate
	}

	cmd := s.trimInt.Step(rate, 1, dt, false, in.Analog.RudderTrimPosDeg, -p.LimitDeg, p.LimitDeg)
	return s.trimOrder.StepReset(cmd, p.OrderRate, p.OrderRate, dt, !l.RudderTrim.Engaged, in.Analog.RudderTrimPosDeg)
}

// travelLimit — ограничение хода руля по приборной скорости.
func travelLimit(p *TravelLimitParams, s *lawState, in *Input, l *Logic) float64 {
	if !l.RudderTravelLim.Engaged {
		return s.travelRL.StepReset(0, p.Rate, p.Rate, in.Dt, true, in.Analog.RudderTravelLimPosDeg)
	}
	target := block.Clamp(p.Limit.At(l.ADR.VIasKn), p.MinDeg, p.MaxDeg)
	return s.travelRL.Step(target, p.Rate, p.Rate, in.Dt)
}
