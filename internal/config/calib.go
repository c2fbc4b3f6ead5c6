package config

import (
	"embed"
	"errors"
	"fmt"

	"github.com/brunoga/deep"
	"gopkg.in/yaml.v3"

	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

// ErrUnknownVariant — для варианта нет калибровки.
var ErrUnknownVariant = errors.New("unknown aircraft variant")

//go:embed calib/*.yml
var calibFS embed.FS

var variants = []string{"a320", "a380"}

// KnownVariant — есть ли встроенная калибровка для варианта.
func KnownVariant(v string) bool {
	for _, k := range variants {
		if k == v {
			return true
		}
	}
	return false
}

// Calibration — наборы параметров законов одного варианта. Вычислители
// получают собственные копии через PitchParams / FACParams / ThrustParams.
type Calibration struct {
	Variant string        `yaml:"-"`
	Pitch   pitch.Params  `yaml:"pitch"`
	FAC     fac.Params    `yaml:"fac"`
	Thrust  thrust.Params `yaml:"thrust"`
}

// LoadCalibration разбирает встроенный calib/<variant>.yml и проверяет таблицы.
func LoadCalibration(variant string) (*Calibration, error) {
	if !KnownVariant(variant) {
		return nil, fmt.Errorf("calibration %q: %w", variant, ErrUnknownVariant)
	}
	data, err := calibFS.ReadFile("calib/" + variant + ".yml")
	if err != nil {
		return nil, fmt.Errorf("read calibration: %w", err)
	}
	return parseCalibration(variant, data)
}

func parseCalibration(variant string, data []byte) (*Calibration, error) {
	c := &Calibration{Variant: variant}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse calibration %s: %w", variant, err)
	}
	for _, v := range []interface{ Validate() error }{&c.Pitch, &c.FAC, &c.Thrust} {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("calibration %s: %w", variant, err)
		}
	}
	return c, nil
}

// PitchParams — независимая копия параметров тангажа (срезы таблиц не разделяются).
func (c *Calibration) PitchParams() *pitch.Params {
	p := deep.MustCopy(c.Pitch)
	return &p
}

func (c *Calibration) FACParams() *fac.Params {
	p := deep.MustCopy(c.FAC)
	return &p
}

func (c *Calibration) ThrustParams() *thrust.Params {
	p := deep.MustCopy(c.Thrust)
	return &p
}
