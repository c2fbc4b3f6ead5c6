package pitch

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

type alternateState struct {
	thetaLag   block.LagFilter
	inFlightRL block.RateLimiter
	stickRL    block.RateLimiter
	nzUpRL     block.RateLimiter
	nzLoRL     block.RateLimiter
	trimRateRL block.RateLimiter

	normal, nzUp, nzLo CStar
	integ              block.Integrator
	etaRL              block.RateLimiter
}

// AlternateLaw — альтернативный закон: C* без защит по углу атаки и тангажу,
// со статическими устойчивостями по малой и большой скорости.
type AlternateLaw struct {
	P *Params

	inFlight *mode.InFlightDetector
	gains    *mode.GainScheduler
	freeze   mode.TrimFreeze
	tracker  mode.TrimTracker

	s alternateState
}

func NewAlternateLaw(p *Params) *AlternateLaw {
	l := &AlternateLaw{P: p}
	l.Init()
	return l
}

func (l *AlternateLaw) Init() {
	p := l.P
	l.inFlight = mode.NewInFlightDetector(p.InFlight)
	l.gains = mode.NewGainScheduler(p.Gains)
	l.freeze = mode.TrimFreeze{}
	l.tracker = mode.TrimTracker{Tolerance: p.TrimResetTolerance}
	l.s = alternateState{
		inFlightRL: block.NewRateLimiter(0),
		integ:      block.NewIntegrator(),
	}
	for _, c := range []*CStar{&l.s.normal, &l.s.nzUp, &l.s.nzLo} {
		c.P = &p.CStar
	}
}

func (l *AlternateLaw) Reset() { l.Init() }

// stabilities — приращение перегрузки от устойчивостей: на малой скорости
// на пикирование, выше VMO/MMO на кабрирование.
func (l *AlternateLaw) stabilities(in *Input) float64 {
	if !in.StabilitiesAvailable {
		return 0
	}
	a := l.P.Alternate
	low := block.Clamp(a.LowSpeedKn.At(in.FlapsHandleIndex)-in.VIasKn, 0, a.LowSpeedLimit)
	vMax := a.VMOKn
	if in.Mach > 0 {
		vMax = math.Min(a.VMOKn, in.VIasKn*a.MMO/in.Mach)
	}
	high := block.Clamp(in.VIasKn-vMax, 0, a.HighSpeedLimit)
	return a.HighSpeedGain*high - a.LowSpeedGain*low
}

func (l *AlternateLaw) Step(in Input) Output {
	p, s := l.P, &l.s
	dt := in.Dt

	thetaF := s.thetaLag.Step(in.ThetaDeg, p.ThetaCutoff, dt)
	inFlight := l.inFlight.Step(in.OnGround, in.ThetaDeg, in.HRadioFt, dt)
	inFlightRL := s.inFlightRL.Step(inFlight, p.InFlightRate, p.InFlightRate, dt)

	sched := l.gains.Step(inFlight, in.FlapsHandleIndex)
	nzUp := s.nzUpRL.Step(sched.NzUpG, p.NzLimitRate, p.NzLimitRate, dt)
	nzLo := s.nzLoRL.Step(sched.NzLoG, p.NzLimitRate, p.NzLimitRate, dt)

	nzEq := nzEquilibrium(thetaF, in.PhiDeg, p.MaxBankDeg)
	ci := in.cstar(nzEq)
	stick := s.stickRL.Step(in.DeltaEtaPos, p.StickRate, p.StickRate, dt)

	normal := s.normal.Step(p.LoadDemand.At(stick)+l.stabilities(&in), ci)
	voted := block.Vote3(s.nzUp.Step(nzUp-nzEq, ci), normal, s.nzLo.Step(nzLo-nzEq, ci))
	voted *= p.Alternate.FlapsGain.At(in.FlapsHandleIndex)

	e := p.Eta
	stickEta := block.Clamp(e.StickGain*stick, e.MinDeg, e.MaxDeg)
	seed := stickEta
	if inFlight != 0 {
		seed = in.EtaDeg
	}
	flightEta := s.integ.Step(voted, 1, dt, inFlight == 0 || in.TrackingModeOn, seed, e.MinDeg, e.MaxDeg)

	eta := stickEta*(1-inFlightRL) + flightEta*inFlightRL
	eta = s.etaRL.Step(block.Clamp(eta, e.MinDeg, e.MaxDeg), e.Rate, e.Rate, dt)

	frozen := l.freeze.Step(false, in.NzG, in.PhiDeg)
	owner := l.tracker.Step(inFlight, in.TrackingModeOn, in.EtaTrimDeg)
	rate := s.trimRateRL.Step(sched.TrimRateDegS, p.Trim.RateChange, p.Trim.RateChange, dt)

	return Output{
		EtaDeg:            eta,
		EtaTrimDotDegS:    trimDot(owner, frozen, p.Trim.Gain*flightEta, in.EtaTrimDeg, p.Trim.ResetGain, rate),
		EtaTrimLimitLoDeg: p.Trim.LimitLoDeg,
		EtaTrimLimitUpDeg: p.Trim.LimitUpDeg,
		InFlight:          inFlight,
		TrimOwner:         owner,
		TrimFrozen:        frozen,
	}
}
