package pitch

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

// Input — входы закона тангажа за один кадр. Углы в градусах, скорости в узлах.
// DeltaEtaPos — ручка по тангажу, -1 на себя .. +1 от себя.
type Input struct {
	Dt float64

	NzG       float64
	ThetaDeg  float64
	PhiDeg    float64
	QDegS     float64
	QDotDegS2 float64
	AlphaDeg  float64

	EtaDeg     float64
	EtaTrimDeg float64

	VIasKn           float64
	VTasKn           float64
	Mach             float64
	HRadioFt         float64
	FlapsHandleIndex float64
	SpoilersLeftPos  float64
	SpoilersRightPos float64
	ThrustLever1Deg  float64
	ThrustLever2Deg  float64
	VLSKn            float64

	DeltaEtaPos float64

	OnGround               bool
	TrackingModeOn         bool
	TailstrikeProtectionOn bool

	HighAoAProtActive   bool
	HighSpeedProtActive bool
	AlphaProtDeg        float64
	AlphaMaxDeg         float64
	HighSpeedProtHighKn float64
	HighSpeedProtLowKn  float64

	APThetaCDeg  float64
	AnyAPEngaged bool

	// ForceFlare — тестовый переключатель: немедленный вход в выравнивание.
	ForceFlare bool
	// StabilitiesAvailable — для альтернативного закона: есть данные для
	// статических устойчивостей по скорости.
	StabilitiesAvailable bool
}

// Output — выходы закона тангажа.
type Output struct {
	EtaDeg            float64
	EtaTrimDotDegS    float64
	EtaTrimLimitLoDeg float64
	EtaTrimLimitUpDeg float64

	InFlight   float64
	InFlare    bool
	Rotation   bool
	TrimOwner  mode.TrimOwner
	TrimFrozen bool
}

// nzEquilibrium — перегрузка установившегося полёта с компенсацией крена.
func nzEquilibrium(thetaDeg, phiDeg, maxBankDeg float64) float64 {
	phi := block.Clamp(phiDeg, -maxBankDeg, maxBankDeg)
	return math.Cos(thetaDeg*math.Pi/180) / math.Cos(phi*math.Pi/180)
}

func (in *Input) cstar(nzEq float64) cstarIn {
	return cstarIn{
		nzG:         in.NzG,
		nzEqG:       nzEq,
		qDegS:       in.QDegS,
		qDot:        in.QDotDegS2,
		vTasKn:      in.VTasKn,
		spoilersPos: math.Min(in.SpoilersLeftPos, in.SpoilersRightPos),
		hRadioFt:    in.HRadioFt,
		dt:          in.Dt,
	}
}

// trimDot — скорость балансировки по владельцу стабилизатора.
func trimDot(owner mode.TrimOwner, frozen bool, drive, etaTrimDeg, resetGain, rate float64) float64 {
	var v float64
	switch owner {
	case mode.TrimAutomatic:
		if !frozen {
			v = drive
		}
	case mode.TrimReset:
		v = -resetGain * etaTrimDeg
	}
	return block.Clamp(v, -rate, rate)
}
