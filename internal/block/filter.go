package block

// LagFilter — фильтр первого порядка (low-pass), дискретизация Тастина.
// Первый вызов засевает предыдущие вход и выход значением u, переходного
// процесса нет.
type LagFilter struct {
	pU, pY float64
	ok     bool
}

// Step возвращает отфильтрованное значение; cutoff в рад/с, dt в секундах.
func (f *LagFilter) Step(u, cutoff, dt float64) float64 {
	if !f.ok {
		f.pU, f.pY, f.ok = u, u, true
	}
	a := dt * cutoff
	ca := a / (a + 2)
	y := (2-a)/(a+2)*f.pY + (u*ca + f.pU*ca)
	f.pU, f.pY = u, y
	return y
}

// Reset сбрасывает состояние; следующий Step снова засевается входом.
func (f *LagFilter) Reset() { *f = LagFilter{} }

// WashoutFilter — high-pass той же структуры. На постоянном входе выдаёт 0.
type WashoutFilter struct {
	pU, pY float64
	ok     bool
}

// Step возвращает отфильтрованное значение.
func (f *WashoutFilter) Step(u, cutoff, dt float64) float64 {
	if !f.ok {
		f.pU, f.ok = u, true
		f.pY = 0
	}
	a := dt * cutoff
	ca := 2 / (a + 2)
	y := (2-a)/(a+2)*f.pY + (u*ca - f.pU*ca)
	f.pU, f.pY = u, y
	return y
}

// Reset сбрасывает состояние.
func (f *WashoutFilter) Reset() { *f = WashoutFilter{} }

// Derivative — разностная производная (u - pU) / dt; первый вызов даёт 0.
type Derivative struct {
	pU float64
	ok bool
}

func (d *Derivative) Step(u, dt float64) float64 {
	if !d.ok {
		d.pU, d.ok = u, true
	}
	y := (u - d.pU) / dt
	d.pU = u
	return y
}

func (d *Derivative) Reset() { *d = Derivative{} }

// LagDerivative — производная, пропущенная через LagFilter (так считаются
// V_dot, alpha_dot и т.п.).
type LagDerivative struct {
	d   Derivative
	lag LagFilter
}

func (l *LagDerivative) Step(u, cutoff, dt float64) float64 {
	return l.lag.Step(l.d.Step(u, dt), cutoff, dt)
}

func (l *LagDerivative) Reset() {
	l.d.Reset()
	l.lag.Reset()
}
