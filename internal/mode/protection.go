package mode

// TrimLimitFreeze держит положение стабилизатора последнего кадра перед
// срабатыванием защиты, пока защита активна.
type TrimLimitFreeze struct {
	held float64
	ok   bool
}

// Step возвращает ограничение: замороженное значение при активной защите,
// иначе normal.
func (f *TrimLimitFreeze) Step(etaTrimDeg float64, protActive bool, normal float64) float64 {
	if !protActive || !f.ok {
		f.held, f.ok = etaTrimDeg, true
	}
	if protActive {
		return f.held
	}
	return normal
}

func (f *TrimLimitFreeze) Reset() { f.held, f.ok = 0, false }

// ProtectionArbiter — ограничения стабилизатора при защитах по большому
// углу атаки (нижний предел) и по большой скорости (верхний предел).
type ProtectionArbiter struct {
	LimitUpDeg float64
	LimitLoDeg float64

	lo TrimLimitFreeze
	up TrimLimitFreeze
}

func (a *ProtectionArbiter) Step(etaTrimDeg float64, highAoA, highSpeed bool) (lo, up float64) {
	lo = a.lo.Step(etaTrimDeg, highAoA, a.LimitLoDeg)
	up = a.up.Step(etaTrimDeg, highSpeed, a.LimitUpDeg)
	return lo, up
}

func (a *ProtectionArbiter) Reset() {
	a.lo.Reset()
	a.up.Reset()
}
