package mode

import "math"

// FlareState — состояние автомата выравнивания.
type FlareState int

const (
	FlareGround FlareState = iota
	FlareFlightLow
	FlareFlightHigh
	FlareStoreThetaC
	FlareSetRate
	FlareReduceThetaC
)

func (s FlareState) String() string {
	return [...]string{"ground", "flight_low", "flight_high", "store_theta_c", "set_rate", "reduce_theta_c"}[s]
}

// FlareParams — высоты и цели выравнивания.
type FlareParams struct {
	EngageFt       float64 `yaml:"engage_ft"`
	ReduceFt       float64 `yaml:"reduce_ft"`
	TargetThetaDeg float64 `yaml:"target_theta_deg"`
	RampTimeSec    float64 `yaml:"ramp_time_s"`
	DefaultRate    float64 `yaml:"default_rate_deg_s"`
}

// FlareOutput — цель по тангажу и скорость её изменения.
type FlareOutput struct {
	ThetaCDeg  float64
	RateDegS   float64
	InFlare    bool
	State      FlareState
	CommandDeg float64
}

// FlareSequencer — автомат выравнивания законов тангажа.
type FlareSequencer struct {
	P FlareParams

	state   FlareState
	thetaC  float64
	rate    float64
	cmd     float64
	cmdInit bool
}

func NewFlareSequencer(p FlareParams) *FlareSequencer {
	return &FlareSequencer{P: p}
}

// Step: thetaDeg — отфильтрованный тангаж, override — ручное вмешательство пилота.
func (f *FlareSequencer) Step(inFlight bool, hRadioFt float64, override bool, thetaDeg, dt float64) FlareOutput {
	p := f.P
	above := hRadioFt > p.EngageFt && !override
	inFlare := false
	switch f.state {
	case FlareGround:
		if inFlight {
			f.state = FlareFlightLow
		}
		f.track(thetaDeg)
	case FlareFlightLow:
		if hRadioFt > p.EngageFt {
			f.state = FlareFlightHigh
		}
		f.track(thetaDeg)
	case FlareFlightHigh:
		if hRadioFt <= p.EngageFt || override {
			f.state = FlareStoreThetaC
			f.thetaC = thetaDeg
			inFlare = true
		} else {
			f.track(thetaDeg)
		}
	case FlareStoreThetaC:
		if above {
			f.state = FlareFlightLow
			f.track(thetaDeg)
		} else {
			f.state = FlareSetRate
			f.rate = -(thetaDeg - p.TargetThetaDeg) / p.RampTimeSec
			inFlare = true
		}
	case FlareSetRate:
		if hRadioFt <= p.ReduceFt || override {
			f.state = FlareReduceThetaC
			f.thetaC = p.TargetThetaDeg
			inFlare = true
		} else if above {
			f.state = FlareFlightLow
			f.track(thetaDeg)
		} else {
			inFlare = true
		}
	case FlareReduceThetaC:
		if !inFlight {
			f.state = FlareGround
			f.track(thetaDeg)
		} else if above {
			f.state = FlareFlightLow
			f.track(thetaDeg)
		} else {
			f.thetaC = p.TargetThetaDeg
			inFlare = true
		}
	}

	if !f.cmdInit {
		f.cmd, f.cmdInit = f.thetaC, true
	}
	// цель меняется скачком на входе в состояние, поэтому шаг ограничивается вручную
	f.cmd += math.Max(math.Min(f.thetaC-f.cmd, math.Abs(f.rate)*dt), f.rate*dt)

	return FlareOutput{
		ThetaCDeg:  f.thetaC,
		RateDegS:   f.rate,
		InFlare:    inFlare,
		State:      f.state,
		CommandDeg: f.cmd,
	}
}

// track — вне выравнивания цель следует за тангажом с темпом по умолчанию.
func (f *FlareSequencer) track(thetaDeg float64) {
	f.thetaC = thetaDeg
	f.rate = f.P.DefaultRate
}

func (f *FlareSequencer) State() FlareState { return f.state }

func (f *FlareSequencer) Reset() {
	f.state = FlareGround
	f.thetaC, f.rate, f.cmd, f.cmdInit = 0, 0, 0, false
}
