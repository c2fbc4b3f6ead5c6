// Package fac — вычислитель FAC: демпфер рыскания, триммер руля направления,
// ограничитель хода руля, скольжение и скорости огибающей полёта.
package fac

import (
	"fmt"

	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

// Params — калибровка FAC для одного варианта самолёта.
type Params struct {
	GearConfirmSec       float64 `yaml:"gear_confirm_s"`
	SpeedScaleConfirmSec float64 `yaml:"speed_scale_confirm_s"`

	Beta        BetaParams        `yaml:"beta"`
	YawDamper   YawDamperParams   `yaml:"yaw_damper"`
	RudderTrim  RudderTrimParams  `yaml:"rudder_trim"`
	TravelLimit TravelLimitParams `yaml:"travel_limit"`

	AlphaFloor mode.AlphaFloorParams `yaml:"alpha_floor"`
	Floor      FloorParams           `yaml:"floor"`
	VAlpha     VAlphaParams          `yaml:"v_alpha"`
	Speeds     SpeedParams           `yaml:"speeds"`
}

// BetaParams — оценка скольжения и цель по скольжению при отказе двигателя.
type BetaParams struct {
	MinIasKn     float64 `yaml:"min_ias_kn"`
	HalfRho      float64 `yaml:"half_rho"`
	WingAreaM2   float64 `yaml:"wing_area_m2"`
	MassKg       float64 `yaml:"mass_kg"`
	SideForce    float64 `yaml:"side_force"`
	PedalGain    float64 `yaml:"pedal_gain"`
	Cutoff       float64 `yaml:"cutoff"`
	AlphaMinDeg  float64 `yaml:"alpha_min_deg"`
	AlphaMaxDeg  float64 `yaml:"alpha_max_deg"`
	AlphaCutoff  float64 `yaml:"alpha_cutoff"`
	N1Cutoff     float64 `yaml:"n1_cutoff"`
	AlphaN1Gain  float64 `yaml:"alpha_n1_gain"`
	N1Gain       float64 `yaml:"n1_gain"`
	TargetGain   float64 `yaml:"target_gain"`
	IasMinKn     float64 `yaml:"ias_min_kn"`
	IasMaxKn     float64 `yaml:"ias_max_kn"`
	VisibleN1Pct float64 `yaml:"visible_n1_pct"`
}

type YawDamperParams struct {
	WashoutCutoff float64 `yaml:"washout_cutoff"`
	Gain          float64 `yaml:"gain"`
	LimitDeg      float64 `yaml:"limit_deg"`
	AuthorityDeg  float64 `yaml:"authority_deg"`
	Rate          float64 `yaml:"rate"`
}

type RudderTrimParams struct {
	Rate         float64 `yaml:"rate"`
	LimitDeg     float64 `yaml:"limit_deg"`
	OrderRate    float64 `yaml:"order_rate"`
	TrackGain    float64 `yaml:"track_gain"`
	APGain       float64 `yaml:"ap_gain"`
	ResetGain    float64 `yaml:"reset_gain"`
	ResetDoneDeg float64 `yaml:"reset_done_deg"`
}

type TravelLimitParams struct {
	Limit   lookup.Table1D `yaml:"limit"`
	MinDeg  float64        `yaml:"min_deg"`
	MaxDeg  float64        `yaml:"max_deg"`
	Rate    float64        `yaml:"rate"`
	InitDeg float64        `yaml:"init_deg"`
}

// FloorParams — порог alpha floor по (M, индекс закрылков).
type FloorParams struct {
	Threshold      lookup.Table2D `yaml:"threshold"`
	Rate           float64        `yaml:"rate"`
	AlphaCutoff    float64        `yaml:"alpha_cutoff"`
	VdotCutoff     float64        `yaml:"vdot_cutoff"`
	DefaultRadioFt float64        `yaml:"default_radio_ft"`
	FlapsIndex     float64        `yaml:"flaps_index"`
	FlapsVdotMin   float64        `yaml:"flaps_vdot_min"`
}

// VAlphaParams — скорости, соответствующие углам атаки alpha max / prot / stall warn.
type VAlphaParams struct {
	Alpha0         lookup.Table1D `yaml:"alpha0"`
	AlphaMax       lookup.Table2D `yaml:"alpha_max"`
	AlphaProt      lookup.Table2D `yaml:"alpha_prot"`
	AlphaStallWarn lookup.Table2D `yaml:"alpha_stall_warn"`
	Rate           float64        `yaml:"rate"`
}

// SpeedParams — характерные скорости по массе и конфигурации.
type SpeedParams struct {
	VLS          lookup.Table2D `yaml:"vls"`
	VStall       lookup.Table2D `yaml:"vstall"`
	V3           lookup.Table1D `yaml:"v3"`
	V4           lookup.Table1D `yaml:"v4"`
	VMan         lookup.Table1D `yaml:"vman"`
	VFE          lookup.Table1D `yaml:"vfe"`
	VFENext      lookup.Table1D `yaml:"vfe_next"`
	VMOKn        float64        `yaml:"vmo_kn"`
	MMO          float64        `yaml:"mmo"`
	Rate         float64        `yaml:"rate"`
	TrendCutoff  float64        `yaml:"trend_cutoff"`
	TrendSeconds float64        `yaml:"trend_s"`
	WeightLbs    float64        `yaml:"default_weight_lbs"`
	CgPercent    float64        `yaml:"default_cg_percent"`
}

// Validate проверяет таблицы калибровки.
func (p *Params) Validate() error {
	tables := map[string]interface{ Validate() error }{
		"travel_limit.limit":       p.TravelLimit.Limit,
		"floor.threshold":          p.Floor.Threshold,
		"v_alpha.alpha0":           p.VAlpha.Alpha0,
		"v_alpha.alpha_max":        p.VAlpha.AlphaMax,
		"v_alpha.alpha_prot":       p.VAlpha.AlphaProt,
		"v_alpha.alpha_stall_warn": p.VAlpha.AlphaStallWarn,
		"speeds.vls":               p.Speeds.VLS,
		"speeds.vstall":            p.Speeds.VStall,
		"speeds.v3":                p.Speeds.V3,
		"speeds.v4":                p.Speeds.V4,
		"speeds.vman":              p.Speeds.VMan,
		"speeds.vfe":               p.Speeds.VFE,
		"speeds.vfe_next":          p.Speeds.VFENext,
	}
	for name, t := range tables {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("fac %s: %w", name, err)
		}
	}
	return nil
}
