// Package pitch — законы управления по тангажу: нормальный (C* с защитами
// по углу атаки, скорости и перегрузке) и альтернативный.
package pitch

import (
	"fmt"

	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

// Params — калибровка закона тангажа для одного варианта самолёта.
type Params struct {
	InFlight     mode.InFlightParams `yaml:"in_flight"`
	InFlightRate float64             `yaml:"in_flight_rate"`
	Flare        mode.FlareParams    `yaml:"flare"`
	Gains        mode.GainParams     `yaml:"gains"`
	Rotation     mode.RotationParams `yaml:"rotation"`

	// FlareFreezeManualOnly — выравнивание замораживает балансировку только без автопилота.
	FlareFreezeManualOnly bool    `yaml:"flare_freeze_manual_only"`
	TrimResetTolerance    float64 `yaml:"trim_reset_tolerance_deg"`

	ThetaCutoff float64 `yaml:"theta_cutoff"`
	MaxBankDeg  float64 `yaml:"max_bank_deg"`
	StickRate   float64 `yaml:"stick_rate"`
	NzLimitRate float64 `yaml:"nz_limit_rate"`
	WeightRate  float64 `yaml:"weight_rate"`

	// LoadDemand — приращение перегрузки от положения ручки (+1 — от себя).
	LoadDemand lookup.Table1D `yaml:"load_demand"`
	CStar      CStarParams    `yaml:"cstar"`

	// AttitudeGain переводит ошибку по тангажу в приращение перегрузки.
	AttitudeGain float64 `yaml:"attitude_gain"`

	HighSpeed HighSpeedParams `yaml:"high_speed"`
	AoA       AoAParams       `yaml:"aoa"`

	FlareStickGainDeg float64 `yaml:"flare_stick_gain_deg"`
	APThetaRate       float64 `yaml:"ap_theta_rate"`

	ThetaMaxDeg     float64 `yaml:"theta_max_deg"`
	ThetaMaxSlowDeg float64 `yaml:"theta_max_slow_deg"`
	ThetaMaxRate    float64 `yaml:"theta_max_rate"`
	ThetaMinDeg     float64 `yaml:"theta_min_deg"`

	Eta       EtaParams       `yaml:"eta"`
	Ground    GroundParams    `yaml:"ground"`
	Trim      TrimParams      `yaml:"trim"`
	Alternate AlternateParams `yaml:"alternate"`
}

// HighSpeedParams — защита по скорости: цель между low и high в зависимости от ручки.
type HighSpeedParams struct {
	Gain  float64 `yaml:"gain"`
	Limit float64 `yaml:"limit"`
}

// AoAParams — защита по углу атаки.
type AoAParams struct {
	AlphaCutoff   float64 `yaml:"alpha_cutoff"`
	WashoutCutoff float64 `yaml:"washout_cutoff"`
	PitchRefDeg   float64 `yaml:"pitch_ref_deg"`
	BankRefDeg    float64 `yaml:"bank_ref_deg"`
	BankDiv       float64 `yaml:"bank_div"`
	Gain          float64 `yaml:"gain"`
	QGain         float64 `yaml:"q_gain"`
	QDotGain      float64 `yaml:"qdot_gain"`
	Limit         float64 `yaml:"limit"`
}

type EtaParams struct {
	MinDeg    float64 `yaml:"min_deg"`
	MaxDeg    float64 `yaml:"max_deg"`
	Rate      float64 `yaml:"rate"`
	StickGain float64 `yaml:"stick_gain_deg"`
}

// GroundParams — контур подъёма носа на разбеге.
type GroundParams struct {
	QDemand            lookup.Table1D `yaml:"q_demand"`
	Gain               float64        `yaml:"gain"`
	ResetStick         float64        `yaml:"reset_stick"`
	TailstrikeThetaDeg float64        `yaml:"tailstrike_theta_deg"`
	TailstrikeGain     float64        `yaml:"tailstrike_gain"`
	RotationRate       float64        `yaml:"rotation_rate"`
}

type TrimParams struct {
	Gain       float64 `yaml:"gain"`
	ResetGain  float64 `yaml:"reset_gain"`
	LimitUpDeg float64 `yaml:"limit_up_deg"`
	LimitLoDeg float64 `yaml:"limit_lo_deg"`
	RateChange float64 `yaml:"rate_change"`
}

// AlternateParams — статические устойчивости альтернативного закона.
type AlternateParams struct {
	LowSpeedKn     lookup.Table1D `yaml:"low_speed_kn"`
	LowSpeedGain   float64        `yaml:"low_speed_gain"`
	LowSpeedLimit  float64        `yaml:"low_speed_limit"`
	HighSpeedGain  float64        `yaml:"high_speed_gain"`
	HighSpeedLimit float64        `yaml:"high_speed_limit"`
	VMOKn          float64        `yaml:"vmo_kn"`
	MMO            float64        `yaml:"mmo"`
	FlapsGain      lookup.Table1D `yaml:"flaps_gain"`
}

// Validate проверяет таблицы и обязательные пределы.
func (p *Params) Validate() error {
	tables := map[string]interface{ Validate() error }{
		"load_demand":            p.LoadDemand,
		"cstar.demand_gain":      p.CStar.DemandGain,
		"cstar.p_gain":           p.CStar.PGain,
		"cstar.d_gain":           p.CStar.DGain,
		"cstar.spoiler_gain":     p.CStar.SpoilerGain,
		"ground.q_demand":        p.Ground.QDemand,
		"alternate.low_speed_kn": p.Alternate.LowSpeedKn,
		"alternate.flaps_gain":   p.Alternate.FlapsGain,
	}
	for name, t := range tables {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("pitch %s: %w", name, err)
		}
	}
	if p.Eta.MinDeg >= p.Eta.MaxDeg {
		return fmt.Errorf("pitch eta limits [%v, %v] are empty", p.Eta.MinDeg, p.Eta.MaxDeg)
	}
	if p.Trim.LimitLoDeg >= p.Trim.LimitUpDeg {
		return fmt.Errorf("pitch trim limits [%v, %v] are empty", p.Trim.LimitLoDeg, p.Trim.LimitUpDeg)
	}
	return nil
}
