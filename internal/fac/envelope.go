package fac

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

const (
	gravity   = 9.81
	ktsToMps  = 0.5144
	minTasMps = 60
	deg2rad   = math.Pi / 180
)

type envelopeState struct {
	beta       block.LagFilter
	betaAlpha  block.LagFilter
	betaN1Left block.LagFilter
	betaN1Rght block.LagFilter

	floorRL      block.RateLimiter
	floorAlpha   block.LagFilter
	floorVdot    block.LagDerivative
	floorInhibit mode.FloorInhibit
	floorLatch   *mode.AlphaFloorLatch

	vAlphaMax, vAlphaProt, vStallWarn block.RateLimiter
	vls, vstall, v3, v4, vman, vmax    block.RateLimiter
	vfeNext                            block.RateLimiter
	trend                              block.LagDerivative
}

func newEnvelopeState(p *Params) envelopeState {
	s := envelopeState{
		floorInhibit: mode.FloorInhibit{P: p.AlphaFloor},
		floorLatch:   mode.NewAlphaFloorLatch(p.AlphaFloor),
	}
	s.floorInhibit.Reset()
	return s
}

// vAlphaSpeed — скорость, на которой угол атаки достигнет alphaTarget при
// неизменной подъёмной силе. При вырожденной поляре возвращает 0.
func vAlphaSpeed(vIasKn, alphaDeg, alpha0Deg, alphaTargetDeg float64) float64 {
	den := alphaTargetDeg - alpha0Deg
	if den <= 0 {
		return 0
	}
	return math.Sqrt(math.Abs(alphaDeg-alpha0Deg)/den) * vIasKn
}

// estimatedBeta — оценка скольжения по боковой силе от педалей и крену.
func estimatedBeta(bp *BetaParams, adr *ADRData, ir *IRData, pedalDeg float64) float64 {
	if adr.VIasKn < bp.MinIasKn {
		return 0
	}
	vIas := adr.VIasKn * ktsToMps
	vt := math.Max(adr.VTasKn*ktsToMps, minTasMps)
	side := vIas * vIas * bp.HalfRho * bp.WingAreaM2 / (bp.MassKg * vt) * bp.SideForce * (bp.PedalGain * pedalDeg) * deg2rad
	return (side + ir.PhiDeg*deg2rad*gravity/vt - ir.RDegS*deg2rad) / deg2rad
}

func computeEnvelope(p *Params, s *envelopeState, in *Input, l *Logic) Envelope {
	dt, b := in.Dt, &in.Bus
	adr, ir := &l.ADR, &l.IR
	idx := l.FlapHandleIndex
	var e Envelope

	// скольжение
	pedal, _ := elacWord(b.ELAC1.RudderPedalPositionDeg, b.ELAC2.RudderPedalPositionDeg)
	bp := &p.Beta
	e.EstimatedBetaDeg = s.beta.Step(estimatedBeta(bp, adr, ir, pedal), bp.Cutoff, dt)

	n1L := b.FMGCOwn.N1LeftPercent.ValueOr(0)
	n1R := b.FMGCOwn.N1RightPercent.ValueOr(0)
	alphaB := s.betaAlpha.Step(block.Clamp(adr.AlphaDeg, bp.AlphaMinDeg, bp.AlphaMaxDeg), bp.AlphaCutoff, dt)
	dL := s.betaN1Left.Step(n1L-n1R, bp.N1Cutoff, dt)
	dR := s.betaN1Rght.Step(n1R-n1L, bp.N1Cutoff, dt)
	v := block.Clamp(adr.VIasKn, bp.IasMinKn, bp.IasMaxKn)
	e.BetaTargetDeg = (alphaB*dL*bp.AlphaN1Gain + bp.N1Gain*dR) / (v * v) * bp.TargetGain
	engineOut := in.Discrete.Engine1Stopped != in.Discrete.Engine2Stopped
	e.BetaTargetVisible = !l.OnGround && (engineOut || math.Abs(n1L-n1R) >= bp.VisibleN1Pct)

	// alpha floor
	f := &p.Floor
	radio := b.FMGCOwn.FgRadioHeightFt.ValueOr(f.DefaultRadioFt)
	inhibit := s.floorInhibit.Step(l.OnGround, radio)
	threshold := s.floorRL.Step(f.Threshold.At(adr.Mach, idx), f.Rate, f.Rate, dt)
	e.AlphaFilteredDeg = s.floorAlpha.Step(adr.AlphaDeg, f.AlphaCutoff, dt)
	vdot := s.floorVdot.Step(adr.VIasKn, f.VdotCutoff, dt)
	vdotMin := 0.0
	if idx >= f.FlapsIndex {
		vdotMin = f.FlapsVdotMin
	}
	threshold += math.Min(math.Max(vdot, vdotMin), 0)
	e.AlphaFloorCondition = s.floorLatch.Step(inhibit, adr.Mach, e.AlphaFilteredDeg, threshold,
		elacInControl(&in.Discrete, b), elacFloorOK(b), dt)

	// масса и центровка от FMGC, иначе значения по умолчанию
	sp := &p.Speeds
	e.WeightLbs = b.FMGCOwn.FacWeightLbs.ValueOr(sp.WeightLbs)
	e.CgPercent = b.FMGCOwn.FacCgPercent.ValueOr(sp.CgPercent)

	va := &p.VAlpha
	alpha0 := va.Alpha0.At(idx)
	step := func(rl *block.RateLimiter, target, rate float64) float64 {
		return rl.Step(target, rate, rate, dt)
	}
	e.VAlphaMaxKn = step(&s.vAlphaMax, vAlphaSpeed(adr.VIasKn, adr.AlphaDeg, alpha0, va.AlphaMax.At(adr.Mach, idx)), va.Rate)
	e.VAlphaProtKn = step(&s.vAlphaProt, vAlphaSpeed(adr.VIasKn, adr.AlphaDeg, alpha0, va.AlphaProt.At(adr.Mach, idx)), va.Rate)
	e.VStallWarnKn = step(&s.vStallWarn, vAlphaSpeed(adr.VIasKn, adr.AlphaDeg, alpha0, va.AlphaStallWarn.At(adr.Mach, idx)), va.Rate)

	e.VLSKn = step(&s.vls, sp.VLS.At(e.WeightLbs, idx), sp.Rate)
	e.VStallKn = step(&s.vstall, sp.VStall.At(e.WeightLbs, idx), sp.Rate)
	e.V3Kn = step(&s.v3, sp.V3.At(e.WeightLbs), sp.Rate)
	e.V4Kn = step(&s.v4, sp.V4.At(e.WeightLbs), sp.Rate)
	e.VManKn = step(&s.vman, sp.VMan.At(e.WeightLbs), sp.Rate)
	e.VFENextKn = step(&s.vfeNext, sp.VFENext.At(idx), sp.Rate)

	vmax := sp.VFE.At(idx)
	if idx == 0 {
		vmax = sp.VMOKn
		if adr.Mach > 0 {
			vmax = math.Min(vmax, adr.VIasKn*sp.MMO/adr.Mach)
		}
	}
	e.VMaxKn = step(&s.vmax, vmax, sp.Rate)

	// F-скорость в конфигурациях 2 и 3, S-скорость в 1, green dot в чистой
	e.V3Visible = idx == 2 || idx == 3
	e.V4Visible = idx == 1
	e.VManVisible = idx == 0
	e.VFENextVisible = idx < 5

	e.VCTrendKn = s.trend.Step(adr.VIasKn, sp.TrendCutoff, dt) * sp.TrendSeconds
	return e
}
