// Package thrust — пределы тяги IDLE/CLB/MCT/FLEX/TOGA/GA в %N1 по кривым
// номинала двигателя с поправками на отбор воздуха.
package thrust

import (
	"fmt"

	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
)

// Столбцы строки кривой номинала.
const (
	colAlt = iota
	colCorner
	colLimit
	colFlat
	colLast
	colFlex
	rowLen
)

// BleedSet — поправки N1 на отбор: кондиционирование, ПОС гондол, ПОС крыла.
type BleedSet struct {
	Packs   float64 `yaml:"packs"`
	Nacelle float64 `yaml:"nacelle"`
	Wing    float64 `yaml:"wing"`
}

// BleedParams выбирает набор поправок по высоте и температуре относительно
// угловой точки. HighAltFt == 0 отключает деление по высоте.
type BleedParams struct {
	HighAltFt   float64  `yaml:"high_alt_ft"`
	BelowCorner BleedSet `yaml:"below_corner"`
	AboveCorner BleedSet `yaml:"above_corner"`
	HighBelow   BleedSet `yaml:"high_below_corner"`
	HighAbove   BleedSet `yaml:"high_above_corner"`
	FlexOver    BleedSet `yaml:"flex_over_limit"`
}

// Rating — кривая номинала: строки (высота, CP, LP, CN1 flat, CN1 last, CN1 flex)
// и число M, на котором приведённые обороты пересчитываются в физические.
type Rating struct {
	Rows     [][]float64 `yaml:"rows"`
	Flexible bool        `yaml:"flexible"`

	Mach         float64 `yaml:"mach"`
	CasKn        float64 `yaml:"cas_kn"`
	CasHighKn    float64 `yaml:"cas_high_kn"`
	CasHighAbove float64 `yaml:"cas_high_above_ft"`
	MachMax      float64 `yaml:"mach_max"`

	Bleed BleedParams `yaml:"bleed"`
}

// LimiterParams — ограничитель скорости выходов с порогом перескока.
type LimiterParams struct {
	Up        float64 `yaml:"up"`
	Lo        float64 `yaml:"lo"`
	Threshold float64 `yaml:"threshold"`
	Init      float64 `yaml:"init"`
}

// Params — калибровка вычислителя пределов тяги.
type Params struct {
	TO  Rating `yaml:"to"`
	GA  Rating `yaml:"ga"`
	CLB Rating `yaml:"clb"`
	MCT Rating `yaml:"mct"`

	// добавка к IDLE по (ПОС двигателей, ПОС крыла)
	IdleBleed lookup.Table2D `yaml:"idle_bleed"`

	FlexIsaMinDeg float64 `yaml:"flex_isa_min_deg"`
	FlexIsaMaxDeg float64 `yaml:"flex_isa_max_deg"`
	FlexDelaySec  float64 `yaml:"flex_delay_s"`
	FlexRampSec   float64 `yaml:"flex_ramp_s"`

	Limiter LimiterParams `yaml:"limiter"`
}

func (r *Rating) validate() error {
	if len(r.Rows) == 0 {
		return fmt.Errorf("no rows: %w", lookup.ErrBreakpoints)
	}
	for i, row := range r.Rows {
		if len(row) != rowLen {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), rowLen, lookup.ErrBreakpoints)
		}
		if i > 0 && row[colAlt] <= r.Rows[i-1][colAlt] {
			return fmt.Errorf("row %d altitude not increasing: %w", i, lookup.ErrBreakpoints)
		}
		if row[colLimit] <= row[colCorner] {
			return fmt.Errorf("row %d: limit point must be above corner point", i)
		}
	}
	return nil
}

// Validate проверяет кривые номинала и таблицу IDLE.
func (p *Params) Validate() error {
	for name, r := range map[string]*Rating{"to": &p.TO, "ga": &p.GA, "clb": &p.CLB, "mct": &p.MCT} {
		if err := r.validate(); err != nil {
			return fmt.Errorf("thrust %s: %w", name, err)
		}
	}
	if err := p.IdleBleed.Validate(); err != nil {
		return fmt.Errorf("thrust idle_bleed: %w", err)
	}
	if p.FlexRampSec <= 0 {
		return fmt.Errorf("thrust flex_ramp_s must be positive")
	}
	return nil
}
