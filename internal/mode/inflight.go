package mode

// FlightPhase — состояние детектора полёта.
type FlightPhase int

const (
	PhaseGround FlightPhase = iota
	PhaseGroundToFlight
	PhaseFlight
	PhaseFlightToGround
)

func (p FlightPhase) String() string {
	switch p {
	case PhaseGround:
		return "ground"
	case PhaseGroundToFlight:
		return "ground_to_flight"
	case PhaseFlight:
		return "flight"
	case PhaseFlightToGround:
		return "flight_to_ground"
	default:
		return "unknown"
	}
}

// InFlightParams — пороги и таймеры детектора (калибровка варианта).
type InFlightParams struct {
	TakeoffPitchDeg    float64 `yaml:"takeoff_pitch_deg"`
	ForceFlightRadioFt float64 `yaml:"force_flight_radio_ft"`
	LandingPitchDeg    float64 `yaml:"landing_pitch_deg"`
	GroundToFlightSec  float64 `yaml:"ground_to_flight_s"`
	FlightToGroundSec  float64 `yaml:"flight_to_ground_s"`
}

// InFlightDetector — Ground → GroundToFlight → Flight → FlightToGround → Ground.
type InFlightDetector struct {
	P InFlightParams

	state FlightPhase
	t     float64
}

func NewInFlightDetector(p InFlightParams) *InFlightDetector {
	return &InFlightDetector{P: p}
}

// Step обновляет автомат и возвращает in_flight (0 или 1).
func (d *InFlightDetector) Step(onGround bool, thetaDeg, hRadioFt, dt float64) float64 {
	airborne := (!onGround && thetaDeg > d.P.TakeoffPitchDeg) || hRadioFt > d.P.ForceFlightRadioFt
	switch d.state {
	case PhaseGround:
		if airborne {
			d.state, d.t = PhaseGroundToFlight, 0
			d.confirm(dt, d.P.GroundToFlightSec, PhaseFlight)
		}
	case PhaseGroundToFlight:
		if !airborne {
			d.state, d.t = PhaseGround, 0
		} else {
			d.confirm(dt, d.P.GroundToFlightSec, PhaseFlight)
		}
	case PhaseFlight:
		if onGround && thetaDeg < d.P.LandingPitchDeg {
			d.state, d.t = PhaseFlightToGround, 0
			d.confirm(dt, d.P.FlightToGroundSec, PhaseGround)
		}
	case PhaseFlightToGround:
		if !onGround || thetaDeg >= d.P.LandingPitchDeg {
			d.state, d.t = PhaseFlight, 0
		} else {
			d.confirm(dt, d.P.FlightToGroundSec, PhaseGround)
		}
	}
	return d.InFlight()
}

func (d *InFlightDetector) confirm(dt, limit float64, next FlightPhase) {
	d.t += dt
	if d.t >= limit {
		d.state, d.t = next, 0
	}
}

// InFlight — 1 в Flight и FlightToGround.
func (d *InFlightDetector) InFlight() float64 {
	if d.state == PhaseFlight || d.state == PhaseFlightToGround {
		return 1
	}
	return 0
}

func (d *InFlightDetector) Phase() FlightPhase { return d.state }

// Reset возвращает автомат в Ground.
func (d *InFlightDetector) Reset() {
	d.state, d.t = PhaseGround, 0
}

// ForcePhase — для восстановления состояния (пресеты, тесты).
func (d *InFlightDetector) ForcePhase(p FlightPhase) {
	d.state, d.t = p, 0
}
