package thrust

import (
	"math"

	"github.com/flybywiresim/aircraft-sub011/internal/block"
)

// LimitType — выбранный режим РУД.
type LimitType int

const (
	LimitNone LimitType = iota
	LimitCLB
	LimitMCT
	LimitFLEX
	LimitTOGA
)

func (t LimitType) String() string {
	switch t {
	case LimitCLB:
		return "clb"
	case LimitMCT:
		return "mct"
	case LimitFLEX:
		return "flex"
	case LimitTOGA:
		return "toga"
	default:
		return "none"
	}
}

type Input struct {
	Dt                  float64
	HFt                 float64
	OATDegC             float64
	TATDegC             float64
	FlexTemperatureDegC float64
	LimitType           LimitType
	UseExternalCLB      bool
	ExternalCLBPercent  float64
	IdlePercent         float64

	AntiIceEngine1   bool
	AntiIceEngine2   bool
	AntiIceWing      bool
	AirConditioning1 bool
	AirConditioning2 bool
}

type Output struct {
	IdlePercent float64
	CLBPercent  float64
	MCTPercent  float64
	FLEXPercent float64
	TOGAPercent float64
	GAPercent   float64

	FlexActive          bool
	FlexToClbTransition bool
}

type flexState struct {
	active      bool
	transition  bool
	elapsed     float64
	factor      float64
	prevType    LimitType
	prevFlexT   float64
	initialized bool
}

// Limits — вычислитель пределов тяги.
type Limits struct {
	P *Params

	idle, clb, mct, flex, toga, ga block.ThresholdRateLimiter
	fs                             flexState
}

func NewLimits(p *Params) *Limits {
	l := &Limits{P: p}
	l.Init()
	return l
}

func (l *Limits) Init() {
	lp := l.P.Limiter
	for _, rl := range []*block.ThresholdRateLimiter{&l.idle, &l.clb, &l.mct, &l.flex, &l.toga, &l.ga} {
		*rl = block.ThresholdRateLimiter{Init: lp.Init, Threshold: lp.Threshold}
	}
	l.fs = flexState{}
}

func (l *Limits) Reset() { l.Init() }

// flexTemp ограничивает заданную температуру FLEX диапазоном [ISA+min, ISA+max]
// и не опускает её ниже OAT. Ноль означает, что FLEX не задан.
func (l *Limits) flexTemp(in *Input) float64 {
	if in.FlexTemperatureDegC == 0 {
		return 0
	}
	isa := isaTemp(in.HFt)
	t := math.Min(in.FlexTemperatureDegC, isa+l.P.FlexIsaMaxDeg)
	return math.Max(math.Max(t, isa+l.P.FlexIsaMinDeg), in.OATDegC)
}

// stepFlex ведёт признак FLEX и плавный переход FLEX → CLB после перевода РУД
// из FLEX в CLB. Возвращает добавку к FLEX на текущем кадре.
func (l *Limits) stepFlex(in *Input, flex, clb float64) float64 {
	s := &l.fs
	if !s.initialized {
		s.prevType, s.initialized = in.LimitType, true
	}
	flexSet := in.FlexTemperatureDegC != 0
	s.active = in.LimitType == LimitFLEX ||
		(s.prevFlexT == 0 && flexSet) ||
		(flexSet && in.LimitType != LimitMCT && in.LimitType != LimitTOGA && s.active)

	switch {
	case s.active && s.prevType == LimitFLEX && in.LimitType == LimitCLB:
		s.transition = true
		s.elapsed = 0
		s.factor = (clb - flex) / l.P.FlexRampSec
	case !s.active:
		s.transition, s.elapsed, s.factor = false, 0, 0
	}

	var delta float64
	if s.transition {
		t := math.Max(0, s.elapsed-l.P.FlexDelaySec)
		if t > 0 && clb > flex {
			delta = math.Min(clb-flex, t*s.factor)
		}
		if delta >= clb-flex {
			s.active, s.transition = false, false
		}
		s.elapsed += in.Dt
	}

	s.prevType = in.LimitType
	s.prevFlexT = in.FlexTemperatureDegC
	return delta
}

// Step вычисляет один кадр.
func (l *Limits) Step(in Input) Output {
	p, dt := l.P, in.Dt
	on := Bleeds{
		Packs:   in.AirConditioning1 || in.AirConditioning2,
		Nacelle: in.AntiIceEngine1 || in.AntiIceEngine2,
		Wing:    in.AntiIceWing,
	}

	toga := p.TO.N1(in.HFt, in.OATDegC, in.TATDegC, 0, on)
	ga := p.GA.N1(in.HFt, in.OATDegC, in.TATDegC, 0, on)
	mct := p.MCT.N1(in.HFt, in.OATDegC, in.TATDegC, 0, on)
	clb := in.ExternalCLBPercent
	if !in.UseExternalCLB {
		clb = p.CLB.N1(in.HFt, in.OATDegC, in.TATDegC, 0, on)
	}

	flexCurve := toga
	if ft := l.flexTemp(&in); ft != 0 {
		flexCurve = p.TO.N1(in.HFt, in.OATDegC, in.TATDegC, ft, on)
	}
	flex := math.Min(flexCurve, clb)

	delta := l.stepFlex(&in, flex, clb)
	clbOut := clb
	if l.fs.active {
		clbOut = flex + delta
	}

	idle := in.IdlePercent + p.IdleBleed.At(block.Bool2F(on.Nacelle), block.Bool2F(on.Wing))

	lim := p.Limiter
	rl := func(r *block.ThresholdRateLimiter, v float64) float64 {
		return r.Step(v, lim.Up, lim.Lo, dt)
	}
	return Output{
		IdlePercent:         rl(&l.idle, idle),
		CLBPercent:          rl(&l.clb, clbOut),
		MCTPercent:          rl(&l.mct, mct),
		FLEXPercent:         rl(&l.flex, flex),
		TOGAPercent:         rl(&l.toga, math.Max(toga, mct)),
		GAPercent:           rl(&l.ga, math.Max(ga, mct)),
		FlexActive:          l.fs.active,
		FlexToClbTransition: l.fs.transition,
	}
}
