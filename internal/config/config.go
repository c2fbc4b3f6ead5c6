package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config — конфигурация fbw-host: вариант самолёта, частота кадров, шина,
// оборудование, регистратор и журнал.
type Config struct {
	Aircraft AircraftConfig `yaml:"aircraft"`
	Frame    FrameConfig    `yaml:"frame"`
	Bus      BusConfig      `yaml:"bus"`
	Hardware HardwareConfig `yaml:"hardware"`
	Recorder RecorderConfig `yaml:"recorder"`
	Log      LogConfig      `yaml:"log"`
	RT       RTConfig       `yaml:"rt"`
}

type AircraftConfig struct {
	Variant string `yaml:"variant"` // a320, a380
}

// FrameConfig — фиксированный шаг вычислителей.
type FrameConfig struct {
	RateHz float64 `yaml:"rate_hz"`
	MaxDt  string  `yaml:"max_dt"` // верхняя граница dt, например "100ms"
}

// BusConfig — откуда читаются входы: memory, serial (адаптер ARINC-429), simconnect.
type BusConfig struct {
	Kind string `yaml:"kind"`
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// HardwareConfig — АЦП ручки на I²C; пустая шина отключает опрос.
type HardwareConfig struct {
	StickI2C  string `yaml:"stick_i2c"`
	StickAddr uint16 `yaml:"stick_addr"`
}

// RecorderConfig — запись кадров в SQLite; пустой path отключает запись.
type RecorderConfig struct {
	Path  string `yaml:"path"`
	Every int    `yaml:"every"` // писать каждый N-й кадр
}

type LogConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

type RTConfig struct {
	LockMemory bool `yaml:"lock_memory"`
	CPU        *int `yaml:"cpu"` // nil — не закреплять
}

// Default возвращает конфиг по умолчанию
func Default() *Config {
	return &Config{
		Aircraft: AircraftConfig{Variant: "a320"},
		Frame:    FrameConfig{RateHz: 30, MaxDt: "100ms"},
		Bus:      BusConfig{Kind: "memory", Port: "/dev/ttyUSB0", Baud: 115200},
		Hardware: HardwareConfig{StickAddr: 0x48},
		Recorder: RecorderConfig{Every: 1},
		Log:      LogConfig{Level: "info"},
	}
}

// Load читает конфиг из YAML
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Normalize подставляет значения по умолчанию и проверяет конфиг.
func (c *Config) Normalize() error {
	applyDefaults(c)
	return c.Validate()
}

// Validate проверяет значения, которые нельзя подставить по умолчанию.
func (c *Config) Validate() error {
	if !KnownVariant(c.Aircraft.Variant) {
		return fmt.Errorf("aircraft.variant %q: %w", c.Aircraft.Variant, ErrUnknownVariant)
	}
	if c.Frame.RateHz <= 0 {
		return fmt.Errorf("frame.rate_hz must be positive, got %v", c.Frame.RateHz)
	}
	if _, err := c.MaxDt(); err != nil {
		return err
	}
	switch c.Bus.Kind {
	case "memory", "serial", "simconnect":
	default:
		return fmt.Errorf("bus.kind %q: want memory, serial or simconnect", c.Bus.Kind)
	}
	return nil
}

// FramePeriod — период кадра.
func (c *Config) FramePeriod() time.Duration {
	return time.Duration(float64(time.Second) / c.Frame.RateHz)
}

// MaxDt — разобранная граница dt.
func (c *Config) MaxDt() (time.Duration, error) {
	d, err := time.ParseDuration(c.Frame.MaxDt)
	if err != nil {
		return 0, fmt.Errorf("frame.max_dt: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("frame.max_dt must be positive, got %v", d)
	}
	return d, nil
}

func applyDefaults(c *Config) {
	d := Default()
	if c.Aircraft.Variant == "" {
		c.Aircraft.Variant = d.Aircraft.Variant
	}
	if c.Frame.RateHz == 0 {
		c.Frame.RateHz = d.Frame.RateHz
	}
	if c.Frame.MaxDt == "" {
		c.Frame.MaxDt = d.Frame.MaxDt
	}
	if c.Bus.Kind == "" {
		c.Bus.Kind = d.Bus.Kind
	}
	if c.Bus.Kind == "serial" && c.Bus.Port == "" {
		c.Bus.Port = d.Bus.Port
	}
	if c.Bus.Baud == 0 {
		c.Bus.Baud = d.Bus.Baud
	}
	if c.Hardware.StickAddr == 0 {
		c.Hardware.StickAddr = d.Hardware.StickAddr
	}
	if c.Recorder.Every <= 0 {
		c.Recorder.Every = d.Recorder.Every
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
