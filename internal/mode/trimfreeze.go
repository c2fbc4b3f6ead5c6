package mode

import "math"

// Границы области, в которой разрешена автобалансировка.
const (
	TrimNzHighG    = 1.25
	TrimNzLowG     = 0.5
	TrimMaxBankDeg = 30.0
)

// TrimFreeze — автомат running/frozen. Балансировка замораживается при
// выравнивании и вне области 0.5g..1.25g, |φ| <= 30°.
type TrimFreeze struct {
	frozen bool
}

// Step возвращает should_freeze.
func (t *TrimFreeze) Step(inhibit bool, nzG, phiDeg float64) bool {
	inside := !inhibit && nzG < TrimNzHighG && nzG > TrimNzLowG && math.Abs(phiDeg) <= TrimMaxBankDeg
	if t.frozen {
		if inside {
			t.frozen = false
		}
	} else if !inside {
		t.frozen = true
	}
	return t.frozen
}

func (t *TrimFreeze) Frozen() bool { return t.frozen }

func (t *TrimFreeze) Reset() { t.frozen = false }
