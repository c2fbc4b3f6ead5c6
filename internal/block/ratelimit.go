package block

import "math"

// RateLimiter ограничивает скорость изменения сигнала.
// Первый Step выставляет y в Init (если HasInit) или в target и не делает шага.
type RateLimiter struct {
	Init    float64
	HasInit bool

	y  float64
	ok bool
}

// NewRateLimiter создаёт ограничитель с явным начальным значением.
func NewRateLimiter(init float64) RateLimiter {
	return RateLimiter{Init: init, HasInit: true}
}

// Step делает шаг к target с ограничениями |up|·dt вверх и |lo|·dt вниз.
func (r *RateLimiter) Step(target, up, lo, dt float64) float64 {
	if !r.ok {
		r.seed(target, r.Init)
		return r.y
	}
	r.y = approach(r.y, target, up, lo, dt)
	return r.y
}

// StepReset — вариант с внешним сбросом: при reset выход принудительно равен init
// и шаг пропускается (используется для слежения за аналоговой позицией при отключении).
func (r *RateLimiter) StepReset(target, up, lo, dt float64, reset bool, init float64) float64 {
	if !r.ok || reset {
		r.ok = true
		r.y = init
		return r.y
	}
	r.y = approach(r.y, target, up, lo, dt)
	return r.y
}

func (r *RateLimiter) seed(target, init float64) {
	r.ok = true
	if r.HasInit {
		r.y = init
	} else {
		r.y = target
	}
}

// Value возвращает последний выход.
func (r *RateLimiter) Value() float64 { return r.y }

// Reset возвращает ограничитель в состояние до первого вызова.
func (r *RateLimiter) Reset() {
	r.y, r.ok = 0, false
}

// ThresholdRateLimiter — RateLimiter, который перескакивает прямо в target,
// если после шага расхождение больше Threshold.
type ThresholdRateLimiter struct {
	Init      float64
	Threshold float64

	y  float64
	ok bool
}

func (r *ThresholdRateLimiter) Step(target, up, lo, dt float64) float64 {
	if !r.ok {
		r.ok = true
		r.y = r.Init
	} else {
		r.y = approach(r.y, target, up, lo, dt)
	}
	if math.Abs(target-r.y) > r.Threshold {
		r.y = target
	}
	return r.y
}

func (r *ThresholdRateLimiter) Reset() {
	r.y, r.ok = 0, false
}

// approach делает один ограниченный шаг от y к target. Если шаг не упирается
// в границу, возвращается сам target, без ошибки округления y + (target - y).
func approach(y, target, up, lo, dt float64) float64 {
	d := target - y
	if hi := math.Abs(up) * dt; d > hi {
		return y + hi
	}
	if lw := -math.Abs(lo) * dt; d < lw {
		return y + lw
	}
	return target
}
