// Package hw — оборудование кабины на шине I²C: АЦП боковой ручки.
package hw

import (
	"encoding/binary"
	"fmt"
	"math"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/logger"
)

// Регистры АЦП семейства ADS1115.
const (
	regConversion = 0x00
	regConfig     = 0x01
)

// configAIN0 — AIN0 относительно GND, ±4.096 В, непрерывный режим, 860 SPS, компаратор выключен.
var configAIN0 = [2]byte{0x42, 0xE3}

// Calibration переводит код АЦП в положение ручки -1..+1 (+1 — от себя).
type Calibration struct {
	Center    float64
	HalfRange float64
	Deadband  float64
	Invert    bool
}

// DefaultCalibration — потенциометр на 3.3 В, середина хода около 1.65 В.
func DefaultCalibration() Calibration {
	return Calibration{Center: 13200, HalfRange: 13000, Deadband: 0.02}
}

// Position — положение ручки по сырому коду.
func (c Calibration) Position(raw int16) float64 {
	v := (float64(raw) - c.Center) / c.HalfRange
	if c.Invert {
		v = -v
	}
	a := math.Abs(v)
	if a < c.Deadband {
		return 0
	}
	v = math.Copysign((a-c.Deadband)/(1-c.Deadband), v)
	return block.Clamp(v, -1, 1)
}

// Stick — ось тангажа боковой ручки на АЦП.
type Stick struct {
	dev    *i2c.Dev
	cal    Calibration
	closer i2c.BusCloser
}

// NewStick настраивает АЦП на уже открытой шине.
func NewStick(b i2c.Bus, addr uint16, cal Calibration) (*Stick, error) {
	s := &Stick{dev: &i2c.Dev{Bus: b, Addr: addr}, cal: cal}
	if err := s.dev.Tx([]byte{regConfig, configAIN0[0], configAIN0[1]}, nil); err != nil {
		return nil, fmt.Errorf("stick adc config: %w", err)
	}
	return s, nil
}

// OpenStick открывает шину I²C по имени ("/dev/i2c-1", "1" или "").
func OpenStick(busName string, addr uint16, cal Calibration) (*Stick, error) {
	if _, err := driverreg.Init(); err != nil {
		logger.With("hw").Warn("periph driver init", "err", err)
	}
	b, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("i2c open %q: %w", busName, err)
	}
	s, err := NewStick(b, addr, cal)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	s.closer = b
	return s, nil
}

// Raw читает последний результат преобразования.
func (s *Stick) Raw() (int16, error) {
	var r [2]byte
	if err := s.dev.Tx([]byte{regConversion}, r[:]); err != nil {
		return 0, fmt.Errorf("stick adc read: %w", err)
	}
	return int16(binary.BigEndian.Uint16(r[:])), nil
}

// Read возвращает положение ручки -1..+1.
func (s *Stick) Read() (float64, error) {
	raw, err := s.Raw()
	if err != nil {
		return 0, err
	}
	return s.cal.Position(raw), nil
}

func (s *Stick) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
