//go:build !linux

// Package rt — настройка процесса под цикл кадров: блокировка памяти,
// привязка к ядру и монотонные часы.
package rt

// LockMemory — заглушка на не-Linux.
func LockMemory() error { return nil }

// PinCPU — заглушка на не-Linux.
func PinCPU(cpu int) error {
	_ = cpu
	return nil
}

// Monotonic — монотонное время процесса в наносекундах.
func Monotonic() int64 { return fallbackMonotonic() }

// GranularityNs — заглушка на не-Linux.
func GranularityNs() int64 { return 0 }
