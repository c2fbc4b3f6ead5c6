package mode

import "math"

// TrimOwner — кто управляет стабилизатором.
type TrimOwner int

const (
	TrimManual TrimOwner = iota
	TrimAutomatic
	TrimReset
	TrimTracking
)

func (o TrimOwner) String() string {
	switch o {
	case TrimManual:
		return "manual"
	case TrimAutomatic:
		return "automatic"
	case TrimReset:
		return "reset"
	case TrimTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// TrimTracker — автомат manual → automatic → (reset | tracking).
// Из reset в manual переходим, когда стабилизатор вернулся в ноль с точностью Tolerance.
type TrimTracker struct {
	Tolerance float64

	owner TrimOwner
}

func (t *TrimTracker) Step(inFlight float64, trackingOn bool, etaTrimDeg float64) TrimOwner {
	switch t.owner {
	case TrimAutomatic:
		if inFlight == 0 {
			t.owner = TrimReset
		} else if trackingOn {
			t.owner = TrimTracking
		}
	case TrimManual:
		if inFlight != 0 {
			t.owner = TrimAutomatic
		}
	case TrimReset:
		if inFlight == 0 && math.Abs(etaTrimDeg) <= t.Tolerance {
			t.owner = TrimManual
		}
	case TrimTracking:
		if !trackingOn {
			t.owner = TrimAutomatic
		}
	}
	return t.owner
}

func (t *TrimTracker) Owner() TrimOwner { return t.owner }

func (t *TrimTracker) Reset() { t.owner = TrimManual }
