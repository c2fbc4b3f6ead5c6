package fbwhost

import (
	"github.com/flybywiresim/aircraft-sub011/internal/config"
	pkgconfig "github.com/flybywiresim/aircraft-sub011/pkg/config"
)

// ToPkgConfig преобразует internal config в pkg config (для вызова RunDaemon из cmd/fbw-host).
func ToPkgConfig(c *config.Config) *pkgconfig.Config {
	if c == nil {
		return nil
	}
	return &pkgconfig.Config{
		Aircraft: pkgconfig.AircraftConfig(c.Aircraft),
		Frame:    pkgconfig.FrameConfig(c.Frame),
		Bus:      pkgconfig.BusConfig(c.Bus),
		Hardware: pkgconfig.HardwareConfig(c.Hardware),
		Recorder: pkgconfig.RecorderConfig(c.Recorder),
		Log:      pkgconfig.LogConfig(c.Log),
		RT:       pkgconfig.RTConfig(c.RT),
	}
}

func toInternalConfig(c *pkgconfig.Config) *config.Config {
	if c == nil {
		return nil
	}
	return &config.Config{
		Aircraft: config.AircraftConfig(c.Aircraft),
		Frame:    config.FrameConfig(c.Frame),
		Bus:      config.BusConfig(c.Bus),
		Hardware: config.HardwareConfig(c.Hardware),
		Recorder: config.RecorderConfig(c.Recorder),
		Log:      config.LogConfig(c.Log),
		RT:       config.RTConfig(c.RT),
	}
}
