package pitch

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
)

const (
	gravity  = 9.81
	ktsToMps = 0.5144
)

// CStarParams — регулятор по критерию C* (смесь перегрузки и угловой
// скорости тангажа). Все коэффициенты — калибровка варианта.
type CStarParams struct {
	QGain      float64        `yaml:"q_gain"`
	DemandGain lookup.Table1D `yaml:"demand_gain"`
	DemandBias float64        `yaml:"demand_bias"`
	PGain      lookup.Table1D `yaml:"p_gain"`
	DGain      lookup.Table1D `yaml:"d_gain"`
	QDotGain   float64        `yaml:"qdot_gain"`

	VdotCutoff float64 `yaml:"vdot_cutoff"`
	VdotGain   float64 `yaml:"vdot_gain"`
	VdotLimit  float64 `yaml:"vdot_limit"`

	SpoilerCutoff float64        `yaml:"spoiler_cutoff"`
	SpoilerLimit  float64        `yaml:"spoiler_limit"`
	SpoilerGain   lookup.Table1D `yaml:"spoiler_gain"`

	Limit float64 `yaml:"limit"`
}

// cstarIn — измерения, общие для всех экземпляров C* в одном кадре.
type cstarIn struct {
	nzG, nzEqG   float64
	qDegS, qDot  float64
	vTasKn       float64
	spoilersPos  float64
	hRadioFt, dt float64
}

// CStar — один экземпляр регулятора со своим состоянием (производная,
// фильтр V_dot, washout спойлеров). На выходе — скорость отклонения руля
// высоты, °/с; положительная — на пикирование.
type CStar struct {
	P *CStarParams

	deriv   block.Derivative
	vdot    block.LagDerivative
	spoiler block.WashoutFilter
}

// Step: nzDeltaG — требуемое приращение перегрузки относительно nzEq.
func (c *CStar) Step(nzDeltaG float64, in cstarIn) float64 {
	p := c.P
	v := math.Max(in.vTasKn*ktsToMps, 60)
	k := p.DemandGain.At(in.vTasKn)/(gravity*v) + p.DemandBias
	y := (p.QGain*in.qDegS + (in.nzG - in.nzEqG)) - k*nzDeltaG

	u := p.PGain.At(in.vTasKn)*y +
		c.deriv.Step(p.DGain.At(in.vTasKn)*y, in.dt) +
		p.QDotGain*in.qDot +
		p.VdotGain*block.Clamp(c.vdot.Step(in.vTasKn, p.VdotCutoff, in.dt), -p.VdotLimit, p.VdotLimit) +
		block.Clamp(c.spoiler.Step(in.spoilersPos, p.SpoilerCutoff, in.dt), -p.SpoilerLimit, p.SpoilerLimit)*
			p.SpoilerGain.At(in.hRadioFt)
	return block.Clamp(u, -p.Limit, p.Limit)
}

func (c *CStar) Reset() {
	c.deriv.Reset()
	c.vdot.Reset()
	c.spoiler.Reset()
}
