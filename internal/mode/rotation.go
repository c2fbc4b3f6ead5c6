package mode

// RotationParams — условия взлётного подъёма носа.
type RotationParams struct {
	MinSpeedKn     float64 `yaml:"min_speed_kn"`
	TakeoffTLADeg  float64 `yaml:"takeoff_tla_deg"`
	ReleaseRadioFt float64 `yaml:"release_radio_ft"`
}

// RotationDetector — ON/OFF. ON на разбеге (скорость и РУД во взлётном
// положении), OFF после полного перехода в полёт или выше ReleaseRadioFt.
type RotationDetector struct {
	P RotationParams

	on bool
}

func NewRotationDetector(p RotationParams) *RotationDetector {
	return &RotationDetector{P: p}
}

// Step: inFlightRL — ограниченный по скорости признак полёта (0..1).
func (r *RotationDetector) Step(inFlightRL, vTasKn, tla1Deg, tla2Deg, hRadioFt float64) bool {
	p := r.P
	if !r.on {
		if inFlightRL < 1 && vTasKn > p.MinSpeedKn && (tla1Deg >= p.TakeoffTLADeg || tla2Deg >= p.TakeoffTLADeg) {
			r.on = true
		}
	} else if inFlightRL == 1 || hRadioFt > p.ReleaseRadioFt ||
		(vTasKn < p.MinSpeedKn && (tla1Deg < p.TakeoffTLADeg || tla2Deg < p.TakeoffTLADeg)) {
		r.on = false
	}
	return r.on
}

func (r *RotationDetector) On() bool { return r.on }

func (r *RotationDetector) Reset() { r.on = false }
