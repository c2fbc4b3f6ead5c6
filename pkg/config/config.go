// Package config предоставляет конфигурацию fbw-host для встраивания хоста
// в другие процессы (стенды, плагины симулятора). Формат совпадает с fbw-host.yml;
// неизвестные ключи игнорируются.
package config

// Config — конфигурация хоста вычислителей.
type Config struct {
	Aircraft AircraftConfig `yaml:"aircraft" config:"aircraft"`
	Frame    FrameConfig    `yaml:"frame" config:"frame"`
	Bus      BusConfig      `yaml:"bus" config:"bus"`
	Hardware HardwareConfig `yaml:"hardware" config:"hardware"`
	Recorder RecorderConfig `yaml:"recorder" config:"recorder"`
	Log      LogConfig      `yaml:"log" config:"log"`
	RT       RTConfig       `yaml:"rt" config:"rt"`
}

// AircraftConfig — вариант самолёта: a320 или a380.
type AircraftConfig struct {
	Variant string `yaml:"variant" config:"variant"`
}

// FrameConfig — частота кадров и верхняя граница dt ("100ms").
type FrameConfig struct {
	RateHz float64 `yaml:"rate_hz" config:"rate_hz"`
	MaxDt  string  `yaml:"max_dt" config:"max_dt"`
}

// BusConfig — memory, serial или simconnect; port/baud для serial.
type BusConfig struct {
	Kind string `yaml:"kind" config:"kind"`
	Port string `yaml:"port" config:"port"`
	Baud int    `yaml:"baud" config:"baud"`
}

// HardwareConfig — АЦП ручки на I²C.
type HardwareConfig struct {
	StickI2C  string `yaml:"stick_i2c" config:"stick_i2c"`
	StickAddr uint16 `yaml:"stick_addr" config:"stick_addr"`
}

type RecorderConfig struct {
	Path  string `yaml:"path" config:"path"`
	Every int    `yaml:"every" config:"every"`
}

type LogConfig struct {
	Dir   string `yaml:"dir" config:"dir"`
	Level string `yaml:"level" config:"level"`
}

// RTConfig — mlockall и привязка цикла кадров к ядру (CPU == nil — без привязки).
type RTConfig struct {
	LockMemory bool `yaml:"lock_memory" config:"lock_memory"`
	CPU        *int `yaml:"cpu" config:"cpu"`
}
