package block

// Integrator — дискретный интегратор с внешним сбросом и насыщением.
// Сброс взводит icLoad; на загрузке состояние ставится в resetValue - increment,
// после сложения выход равен resetValue. Заморозка — обнуление входа снаружи.
type Integrator struct {
	state  float64
	icLoad bool
}

// NewIntegrator возвращает интегратор, который на первом шаге загрузит resetValue.
func NewIntegrator() Integrator {
	return Integrator{icLoad: true}
}

// Step интегрирует u·gain·dt. lo/hi — границы выхода.
func (i *Integrator) Step(u, gain, dt float64, reset bool, resetValue, lo, hi float64) float64 {
	inc := u * gain * dt
	i.icLoad = reset || i.icLoad
	if i.icLoad {
		i.state = resetValue - inc
	}
	i.state += inc
	i.state = Clamp(i.state, lo, hi)
	i.icLoad = false
	return i.state
}

// Value — текущее состояние.
func (i *Integrator) Value() float64 { return i.state }

// Reset: следующий Step снова загрузит resetValue.
func (i *Integrator) Reset() {
	i.state = 0
	i.icLoad = true
}
