package block

import "golang.org/x/exp/constraints"

// Clamp ограничивает v диапазоном [lo, hi]. Порядок проверок как у saturation-блока:
// сначала верхняя граница, затем нижняя.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		return hi
	} else if v < lo {
		return lo
	}
	return v
}

// Bool2F переводит дискрет в 0/1.
func Bool2F(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
