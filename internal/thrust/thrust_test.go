package thrust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
)

const frameDt = 0.1

func testParams() *Params {
	toRows := [][]float64{
		{0, 30, 50, 85, 80, 60},
		{10000, 10, 30, 95, 88, 60},
	}
	takeoffBleed := BleedParams{
		HighAltFt:   8000,
		BelowCorner: BleedSet{Packs: -0.4},
		AboveCorner: BleedSet{Packs: -0.5, Nacelle: -0.6, Wing: -0.7},
		HighBelow:   BleedSet{Packs: -0.6},
		HighAbove:   BleedSet{Packs: -0.7, Nacelle: -0.8, Wing: -0.8},
		FlexOver:    BleedSet{Packs: -0.6, Nacelle: -0.7, Wing: -0.7},
	}
	return &Params{
		TO: Rating{Rows: toRows, Flexible: true, Bleed: takeoffBleed},
		GA: Rating{Rows: toRows, Flexible: true, Mach: 0.225, Bleed: takeoffBleed},
		CLB: Rating{
			Rows:  [][]float64{{0, 20, 48, 82, 74, 0}, {30000, -30, -3, 93, 83, 0}},
			CasKn: 250, CasHighKn: 300, CasHighAbove: 10000, MachMax: 0.78,
			Bleed: BleedParams{
				BelowCorner: BleedSet{Packs: -0.2},
				AboveCorner: BleedSet{Packs: -0.3, Nacelle: -0.8, Wing: -0.4},
			},
		},
		MCT: Rating{
			Rows:  [][]float64{{0, 27, 54, 82, 74, 0}, {30000, -35, -7, 98, 86, 0}},
			CasKn: 230,
			Bleed: BleedParams{
				BelowCorner: BleedSet{Packs: -0.6},
				AboveCorner: BleedSet{Packs: -0.6, Nacelle: -0.9, Wing: -1.2},
			},
		},
		IdleBleed: lookup.Table2D{
			X: []float64{0, 1},
			Y: []float64{0, 1},
			Z: [][]float64{{0, 1}, {1.5, 2.5}},
		},
		FlexIsaMinDeg: 29,
		FlexIsaMaxDeg: 55,
		FlexDelaySec:  10,
		FlexRampSec:   30,
		Limiter:       LimiterParams{Up: 0.5, Lo: 0.5, Threshold: 1, Init: 0},
	}
}

func steady(l *Limits, in Input, n int) Output {
	var out Output
	for i := 0; i < n; i++ {
		out = l.Step(in)
	}
	return out
}

func TestLimits_AltitudeStepSnaps(t *testing.T) {
	p := testParams()
	l := NewLimits(p)
	in := Input{Dt: frameDt, HFt: 0, OATDegC: -20, TATDegC: -20, IdlePercent: 20, AirConditioning1: true}
	before := steady(l, in, 20)

	in.HFt = 25000
	after := l.Step(in)
	fresh := NewLimits(p).Step(in)

	require.Greater(t, math.Abs(after.CLBPercent-before.CLBPercent), p.Limiter.Threshold)
	assert.InDelta(t, fresh.CLBPercent, after.CLBPercent, 1e-9, "jump beyond threshold lands on the new value")
	assert.Equal(t, before.IdlePercent, after.IdlePercent)
}

func TestLimits_SmallChangeIsRateLimited(t *testing.T) {
	l := NewLimits(testParams())
	in := Input{Dt: frameDt, HFt: 0, OATDegC: 30, TATDegC: 30}
	before := steady(l, in, 10)

	// ПОС крыла выше угловой точки снимает 0.4 %N1 с CLB, меньше порога
	in.AntiIceWing = true
	after := l.Step(in)
	assert.InDelta(t, before.CLBPercent-0.5*frameDt, after.CLBPercent, 1e-9)

	settled := steady(l, in, 20)
	assert.InDelta(t, before.CLBPercent-0.4, settled.CLBPercent, 1e-9)
}

func TestLimits_FlexNotAboveClimb(t *testing.T) {
	p := testParams()
	in := Input{Dt: frameDt, OATDegC: 15, TATDegC: 15, FlexTemperatureDegC: 60, LimitType: LimitFLEX}
	out := NewLimits(p).Step(in)
	assert.InDelta(t, 76.0, out.FLEXPercent, 1e-9)
	assert.LessOrEqual(t, out.FLEXPercent, out.CLBPercent)
	assert.True(t, out.FlexActive)

	in.UseExternalCLB = true
	in.ExternalCLBPercent = 70
	out = NewLimits(p).Step(in)
	assert.Equal(t, 70.0, out.FLEXPercent)
}

func TestLimits_FlexToClimbTransition(t *testing.T) {
	p := testParams()
	l := NewLimits(p)
	in := Input{Dt: frameDt, OATDegC: 15, TATDegC: 15, FlexTemperatureDegC: 60, LimitType: LimitFLEX}
	flex := steady(l, in, 5).FLEXPercent
	clb := p.CLB.N1(0, 15, 15, 0, Bleeds{})
	require.Less(t, flex, clb)

	in.LimitType = LimitCLB
	out := steady(l, in, 50)
	assert.True(t, out.FlexToClbTransition)
	assert.InDelta(t, flex, out.CLBPercent, 1e-9, "held at FLEX during the delay")

	out = steady(l, in, 200)
	assert.Greater(t, out.CLBPercent, flex)
	assert.Less(t, out.CLBPercent, clb)

	out = steady(l, in, 200)
	assert.False(t, out.FlexActive)
	assert.False(t, out.FlexToClbTransition)
	assert.InDelta(t, clb, out.CLBPercent, 1e-9)
}

func TestLimits_TogaAndGaNotBelowMct(t *testing.T) {
	out := NewLimits(testParams()).Step(Input{Dt: frameDt, HFt: 2000, OATDegC: 20, TATDegC: 20})
	assert.GreaterOrEqual(t, out.TOGAPercent, out.MCTPercent)
	assert.GreaterOrEqual(t, out.GAPercent, out.MCTPercent)
}

func TestLimits_IdleBleed(t *testing.T) {
	out := NewLimits(testParams()).Step(Input{Dt: frameDt, IdlePercent: 19, AntiIceEngine2: true, AntiIceWing: true})
	assert.InDelta(t, 21.5, out.IdlePercent, 1e-9)
}

func TestRating_N1(t *testing.T) {
	p := testParams()
	all := Bleeds{Packs: true, Nacelle: true, Wing: true}

	assert.InDelta(t, 85.0, p.TO.N1(0, 15, 15, 0, Bleeds{}), 1e-9, "flat rated below corner point")
	assert.InDelta(t, 90.0, p.TO.N1(5000, 15, 15, 0, Bleeds{}), 1e-9, "rows interpolate by altitude")

	want := 82.5*math.Sqrt(313.15/288.15) - 1.8
	assert.InDelta(t, want, p.TO.N1(0, 40, 40, 0, all), 1e-9)

	// выше 8000 ft и ниже угловой точки действует только поправка кондиционирования
	row := p.TO.row(9000)
	want = row[colFlat]*math.Sqrt(theta2(0, -10)) - 0.6
	assert.InDelta(t, want, p.TO.N1(9000, -10, -10, 0, all), 1e-9)

	assert.InDelta(t, 76.0-1.4, p.TO.N1(0, 15, 15, 60, Bleeds{Nacelle: true, Wing: true}), 1e-9, "flex above limit point")
}

func TestLimits_BleedCornerByTAT(t *testing.T) {
	p := testParams()
	packs := Bleeds{Packs: true}

	// OAT ниже угловой точки, TAT выше: CN1 по OAT, поправка отбора по TAT
	assert.InDelta(t, 85.0-0.4, p.TO.N1(0, 15, 15, 0, packs), 1e-9)
	assert.InDelta(t, 85.0-0.5, p.TO.N1(0, 15, 35, 0, packs), 1e-9)

	in := Input{Dt: frameDt, OATDegC: 15, TATDegC: 15, AirConditioning1: true}
	cold := NewLimits(p).Step(in)
	in.TATDegC = 35
	warm := NewLimits(p).Step(in)
	assert.InDelta(t, 0.1, cold.TOGAPercent-warm.TOGAPercent, 1e-9)
}

func TestCasToMach(t *testing.T) {
	assert.InDelta(t, 0.378, casToMach(250, isaPressure(0)), 0.005)
	assert.Greater(t, casToMach(250, isaPressure(20000)), 0.5)
	assert.Equal(t, 0.78, testParams().CLB.mach(39000))
}

func TestParams_Validate(t *testing.T) {
	p := testParams()
	require.NoError(t, p.Validate())

	p.MCT.Rows = append(p.MCT.Rows, []float64{1000, 0, 10, 80, 70})
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, lookup.ErrBreakpoints)
}
