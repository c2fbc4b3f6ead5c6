package pitch

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

type normalState struct {
	thetaLag   block.LagFilter
	alphaLag   block.LagFilter
	aoaWashout block.WashoutFilter

	inFlightRL block.RateLimiter
	rotationRL block.RateLimiter
	stickRL    block.RateLimiter
	nzUpRL     block.RateLimiter
	nzLoRL     block.RateLimiter
	trimRateRL block.RateLimiter
	apTheta    block.RateLimiter
	thetaMax   block.RateLimiter

	// веса смешивания кандидатов, 0..1
	apW, aoaW, flareW, hspW block.RateLimiter

	normal, nzUp, nzLo   CStar
	flare, ap            CStar
	thetaHi, thetaLo     CStar
	flightInt, groundInt block.Integrator
	etaRL                block.RateLimiter
}

// NormalLaw — нормальный закон тангажа.
type NormalLaw struct {
	P *Params

	inFlight *mode.InFlightDetector
	flare    *mode.FlareSequencer
	gains    *mode.GainScheduler
	rotation *mode.RotationDetector
	freeze   mode.TrimFreeze
	tracker  mode.TrimTracker
	limits   mode.ProtectionArbiter

	s normalState
}

func NewNormalLaw(p *Params) *NormalLaw {
	l := &NormalLaw{P: p}
	l.Init()
	return l
}

// Init строит автоматы и сбрасывает всё состояние блоков.
func (l *NormalLaw) Init() {
	p := l.P
	l.inFlight = mode.NewInFlightDetector(p.InFlight)
	l.flare = mode.NewFlareSequencer(p.Flare)
	l.gains = mode.NewGainScheduler(p.Gains)
	l.rotation = mode.NewRotationDetector(p.Rotation)
	l.freeze = mode.TrimFreeze{}
	l.tracker = mode.TrimTracker{Tolerance: p.TrimResetTolerance}
	l.limits = mode.ProtectionArbiter{LimitUpDeg: p.Trim.LimitUpDeg, LimitLoDeg: p.Trim.LimitLoDeg}

	s := normalState{
		inFlightRL: block.NewRateLimiter(0),
		rotationRL: block.NewRateLimiter(0),
		apW:        block.NewRateLimiter(0),
		aoaW:       block.NewRateLimiter(0),
		flareW:     block.NewRateLimiter(0),
		hspW:       block.NewRateLimiter(0),
		flightInt:  block.NewIntegrator(),
		groundInt:  block.NewIntegrator(),
	}
	for _, c := range []*CStar{&s.normal, &s.nzUp, &s.nzLo, &s.flare, &s.ap, &s.thetaHi, &s.thetaLo} {
		c.P = &p.CStar
	}
	l.s = s
}

func (l *NormalLaw) Reset() { l.Init() }

// Step вычисляет один кадр.
func (l *NormalLaw) Step(in Input) Output {
	p, s := l.P, &l.s
	dt := in.Dt

	thetaF := s.thetaLag.Step(in.ThetaDeg, p.ThetaCutoff, dt)
	inFlight := l.inFlight.Step(in.OnGround, in.ThetaDeg, in.HRadioFt, dt)
	inFlightRL := s.inFlightRL.Step(inFlight, p.InFlightRate, p.InFlightRate, dt)
	fl := l.flare.Step(inFlight != 0, in.HRadioFt, in.ForceFlare, thetaF, dt)

	sched := l.gains.Step(inFlight, in.FlapsHandleIndex)
	nzUp := s.nzUpRL.Step(sched.NzUpG, p.NzLimitRate, p.NzLimitRate, dt)
	nzLo := s.nzLoRL.Step(sched.NzLoG, p.NzLimitRate, p.NzLimitRate, dt)

	nzEq := nzEquilibrium(thetaF, in.PhiDeg, p.MaxBankDeg)
	ci := in.cstar(nzEq)
	stick := s.stickRL.Step(in.DeltaEtaPos, p.StickRate, p.StickRate, dt)

	// нормальный режим с защитой по скорости
	hsp := s.hspW.Step(block.Bool2F(in.HighSpeedProtActive), p.WeightRate, p.WeightRate, dt)
	vTarget := in.HighSpeedProtLowKn + (in.HighSpeedProtHighKn-in.HighSpeedProtLowKn)*block.Clamp(stick, 0, 1)
	hspDemand := p.HighSpeed.Gain * block.Clamp(in.VIasKn-vTarget, 0, p.HighSpeed.Limit)
	normal := s.normal.Step(p.LoadDemand.At(stick)+hsp*hspDemand, ci)

	// защита по углу атаки
	a := p.AoA
	pull := block.Clamp(-stick, 0, 1)
	alphaF := s.alphaLag.Step(in.AlphaDeg, a.AlphaCutoff, dt)
	attitude := s.aoaWashout.Step(math.Max(thetaF-a.PitchRefDeg, (math.Abs(in.PhiDeg)-a.BankRefDeg)/a.BankDiv), a.WashoutCutoff, dt)
	alphaErr := (in.AlphaMaxDeg-in.AlphaProtDeg)*pull - (alphaF - in.AlphaProtDeg) - attitude
	aoa := block.Clamp(-a.Gain*alphaErr+a.QGain*in.QDegS+a.QDotGain*in.QDotDegS2, -a.Limit, a.Limit)

	flareCmd := fl.CommandDeg - p.FlareStickGainDeg*stick
	flare := s.flare.Step(p.AttitudeGain*(flareCmd-thetaF), ci)

	apTheta := s.apTheta.Step(in.APThetaCDeg, p.APThetaRate, p.APThetaRate, dt)
	ap := s.ap.Step(p.AttitudeGain*(apTheta-thetaF), ci)

	wAP := s.apW.Step(block.Bool2F(in.AnyAPEngaged), p.WeightRate, p.WeightRate, dt)
	wAoA := s.aoaW.Step(block.Bool2F(in.HighAoAProtActive), p.WeightRate, p.WeightRate, dt)
	wFlare := s.flareW.Step(block.Bool2F(fl.InFlare), p.WeightRate, p.WeightRate, dt)
	mixed := wAP*ap + (1-wAP)*(wAoA*aoa+(1-wAoA)*(wFlare*flare+(1-wFlare)*normal))

	voted := block.Vote3(s.nzUp.Step(nzUp-nzEq, ci), mixed, s.nzLo.Step(nzLo-nzEq, ci))

	thetaMaxTarget := p.ThetaMaxDeg
	if in.VIasKn < in.VLSKn {
		thetaMaxTarget = p.ThetaMaxSlowDeg
	}
	thetaMax := s.thetaMax.Step(thetaMaxTarget, p.ThetaMaxRate, p.ThetaMaxRate, dt)
	voted = block.Vote3(
		s.thetaHi.Step(p.AttitudeGain*(thetaMax-thetaF), ci),
		voted,
		s.thetaLo.Step(p.AttitudeGain*(p.ThetaMinDeg-thetaF), ci),
	)

	e := p.Eta
	stickEta := block.Clamp(e.StickGain*stick, e.MinDeg, e.MaxDeg)
	flightReset := inFlightRL == 0 || in.TrackingModeOn
	flightInit := stickEta
	if inFlight != 0 {
		flightInit = in.EtaDeg
	}
	flightEta := s.flightInt.Step(voted, 1, dt, flightReset, flightInit, e.MinDeg, e.MaxDeg)

	// подъём носа на разбеге
	g := p.Ground
	rotOn := l.rotation.Step(inFlightRL, in.VTasKn, in.ThrustLever1Deg, in.ThrustLever2Deg, in.HRadioFt)
	rot := s.rotationRL.Step(block.Bool2F(rotOn), g.RotationRate, g.RotationRate, dt)
	qDemand := g.QDemand.At(stick)
	if in.TailstrikeProtectionOn {
		qDemand -= g.TailstrikeGain * math.Max(thetaF-g.TailstrikeThetaDeg, 0)
	}
	groundReset := (stick >= -g.ResetStick && in.OnGround) || rot == 0 || in.TrackingModeOn
	groundEta := s.groundInt.Step(-(qDemand-in.QDegS)*(1-inFlightRL), g.Gain, dt, groundReset, 0, e.MinDeg, e.MaxDeg)
	if in.OnGround {
		groundEta += stickEta
	}

	eta := ((1-rot)*stickEta+rot*groundEta)*(1-inFlightRL) + flightEta*inFlightRL
	eta = s.etaRL.Step(block.Clamp(eta, e.MinDeg, e.MaxDeg), e.Rate, e.Rate, dt)

	inhibit := fl.InFlare
	if p.FlareFreezeManualOnly {
		inhibit = fl.InFlare && !in.AnyAPEngaged
	}
	frozen := l.freeze.Step(inhibit, in.NzG, in.PhiDeg)
	owner := l.tracker.Step(inFlight, in.TrackingModeOn, in.EtaTrimDeg)
	rate := s.trimRateRL.Step(sched.TrimRateDegS, p.Trim.RateChange, p.Trim.RateChange, dt)
	lo, up := l.limits.Step(in.EtaTrimDeg, in.HighAoAProtActive, in.HighSpeedProtActive)

	return Output{
		EtaDeg:            eta,
		EtaTrimDotDegS:    trimDot(owner, frozen, p.Trim.Gain*eta, in.EtaTrimDeg, p.Trim.ResetGain, rate),
		EtaTrimLimitLoDeg: lo,
		EtaTrimLimitUpDeg: up,
		InFlight:          inFlight,
		InFlare:           fl.InFlare,
		Rotation:          rotOn,
		TrimOwner:         owner,
		TrimFrozen:        frozen,
	}
}
