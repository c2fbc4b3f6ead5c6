//go:build linux

// Package rt — настройка процесса под цикл кадров: блокировка памяти,
// привязка к ядру и монотонные часы.
package rt

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// LockMemory запрещает выгрузку страниц процесса (mlockall). Требует
// CAP_IPC_LOCK или достаточного RLIMIT_MEMLOCK.
func LockMemory() error {
	if err := unix.Mlockall(unix.MCL_CURRENT | unix.MCL_FUTURE); err != nil {
		return fmt.Errorf("mlockall: %w", err)
	}
	return nil
}

// PinCPU закрепляет вызывающую горутину за потоком ОС и поток за ядром cpu.
// Вызывать из горутины цикла кадров.
func PinCPU(cpu int) error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("sched_setaffinity cpu %d: %w", cpu, err)
	}
	return nil
}

// Monotonic — CLOCK_MONOTONIC в наносекундах.
func Monotonic() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return fallbackMonotonic()
	}
	return ts.Nano()
}

// GranularityNs — минимальный ненулевой шаг CLOCK_MONOTONIC по нескольким замерам.
func GranularityNs() int64 {
	const rounds = 20
	var minDt int64 = 1e9
	for i := 0; i < rounds; i++ {
		var t1, t2 unix.Timespec
		_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &t1)
		_ = unix.ClockGettime(unix.CLOCK_MONOTONIC, &t2)
		dt := t2.Nano() - t1.Nano()
		if dt > 0 && dt < minDt {
			minDt = dt
		}
	}
	if minDt == 1e9 {
		return 0
	}
	return minDt
}
