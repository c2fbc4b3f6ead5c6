package mode

import "github.com/flybywiresim/aircraft-sub011/internal/block"

// FloorPhase — состояние автомата запрета alpha floor.
type FloorPhase int

const (
	FloorLanded FloorPhase = iota
	FloorTakeoff100ft
	FloorFlying
	FloorLanding100ft
)

func (p FloorPhase) String() string {
	switch p {
	case FloorLanded:
		return "landed"
	case FloorTakeoff100ft:
		return "takeoff_100ft"
	case FloorFlying:
		return "flying"
	case FloorLanding100ft:
		return "landing_100ft"
	default:
		return "unknown"
	}
}

// AlphaFloorParams — калибровка функции alpha floor. Пороги намеренно
// отделены от InFlightParams.
type AlphaFloorParams struct {
	GateRadioFt float64 `yaml:"gate_radio_ft"`
	MaxMach     float64 `yaml:"max_mach"`
	ConfirmSec  float64 `yaml:"confirm_s"`
}

// FloorInhibit — Landed → Takeoff100ft → Flying → Landing100ft.
// Запрет действует на земле и ниже GateRadioFt при заходе.
type FloorInhibit struct {
	P AlphaFloorParams

	phase FloorPhase
}

// Step возвращает true, если alpha floor запрещён.
func (f *FloorInhibit) Step(onGround bool, hRadioFt float64) bool {
	gate := f.P.GateRadioFt
	switch f.phase {
	case FloorFlying:
		if hRadioFt < gate {
			f.phase = FloorLanding100ft
		} else if onGround {
			f.phase = FloorLanded
		}
	case FloorLanded:
		if !onGround {
			f.phase = FloorTakeoff100ft
		}
	case FloorLanding100ft:
		if hRadioFt > gate {
			f.phase = FloorFlying
		} else if onGround {
			f.phase = FloorLanded
		}
	case FloorTakeoff100ft:
		if onGround {
			f.phase = FloorLanded
		} else if hRadioFt > gate {
			f.phase = FloorFlying
		}
	}
	return f.Inhibited()
}

func (f *FloorInhibit) Inhibited() bool {
	return f.phase == FloorLanded || f.phase == FloorLanding100ft
}

func (f *FloorInhibit) Phase() FloorPhase { return f.phase }

func (f *FloorInhibit) Reset() { f.phase = FloorLanded }

// AlphaFloorLatch — защёлка условия alpha floor. Взводится при превышении
// порога угла атаки (подтверждённом ConfirmSec), сбрасывается запретом или
// потерей ELAC.
type AlphaFloorLatch struct {
	P AlphaFloorParams

	exceeded block.ConfirmNode
	latched  bool
}

func NewAlphaFloorLatch(p AlphaFloorParams) *AlphaFloorLatch {
	return &AlphaFloorLatch{P: p, exceeded: block.ConfirmNode{RisingEdge: true, Delay: p.ConfirmSec}}
}

// Step: elacInControl — хотя бы один ELAC управляет тангажом,
// elacFloorOK — хотя бы один ELAC подтверждает исправность функции alpha floor.
func (l *AlphaFloorLatch) Step(inhibit bool, mach, alphaDeg, thresholdDeg float64, elacInControl, elacFloorOK bool, dt float64) bool {
	over := l.exceeded.Step(alphaDeg > thresholdDeg, dt)
	if !inhibit && mach < l.P.MaxMach && over && elacInControl {
		l.latched = true
	} else if inhibit || !elacFloorOK || !elacInControl {
		l.latched = false
	}
	return l.latched
}

func (l *AlphaFloorLatch) Latched() bool { return l.latched }

func (l *AlphaFloorLatch) Reset() {
	l.exceeded.Reset()
	l.latched = false
}
