package fac

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/lookup"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

const frameDt = 1.0 / 30

func c2(v float64) lookup.Table2D {
	return lookup.Table2D{X: []float64{0}, Y: []float64{0}, Z: [][]float64{{v}}}
}

func testParams() *Params {
	return &Params{
		GearConfirmSec:       0.5,
		SpeedScaleConfirmSec: 0,
		Beta: BetaParams{
			MinIasKn: 60, HalfRho: 0.6125, WingAreaM2: 122, MassKg: 70000, SideForce: 3.172,
			PedalGain: 1, Cutoff: 2, AlphaMinDeg: 0, AlphaMaxDeg: 10, AlphaCutoff: 1, N1Cutoff: 1,
			AlphaN1Gain: 0.1, N1Gain: 0.5, TargetGain: 1, IasMinKn: 100, IasMaxKn: 350, VisibleN1Pct: 35,
		},
		YawDamper:   YawDamperParams{WashoutCutoff: 1, Gain: 2, LimitDeg: 10, AuthorityDeg: 5, Rate: 25},
		RudderTrim:  RudderTrimParams{Rate: 1, LimitDeg: 20, OrderRate: 10, TrackGain: 10, APGain: 1, ResetGain: 2, ResetDoneDeg: 0.05},
		TravelLimit: TravelLimitParams{Limit: lookup.Table1D{X: []float64{160, 380}, Y: []float64{25, 3.5}}, MinDeg: 3.5, MaxDeg: 25, Rate: 5, InitDeg: 25},
		AlphaFloor:  mode.AlphaFloorParams{GateRadioFt: 100, MaxMach: 0.6, ConfirmSec: 0.1},
		Floor: FloorParams{
			Threshold: c2(10), Rate: 100, AlphaCutoff: 5, VdotCutoff: 1,
			DefaultRadioFt: 2500, FlapsIndex: 4, FlapsVdotMin: -3,
		},
		VAlpha: VAlphaParams{Alpha0: lookup.Const(0), AlphaMax: c2(15), AlphaProt: c2(12), AlphaStallWarn: c2(13), Rate: 50},
		Speeds: SpeedParams{
			VLS: c2(130), VStall: c2(110), V3: lookup.Const(160), V4: lookup.Const(180), VMan: lookup.Const(210),
			VFE: lookup.Const(200), VFENext: lookup.Const(230), VMOKn: 350, MMO: 0.82,
			Rate: 50, TrendCutoff: 1, TrendSeconds: 10, WeightLbs: 140000, CgPercent: 25,
		},
	}
}

var no = arinc.NormalOperation

func healthyInput() Input {
	adr := ADRBus{
		AltitudeCorrectedFt: arinc.NewWord(no, 10000),
		Mach:                arinc.NewWord(no, 0.45),
		AirspeedComputedKn:  arinc.NewWord(no, 250),
		AirspeedTrueKn:      arinc.NewWord(no, 300),
		AoACorrectedDeg:     arinc.NewWord(no, 3),
	}
	ir := IRBus{
		PitchDeg:          arinc.NewWord(no, 2),
		RollDeg:           arinc.NewWord(no, 0),
		BodyPitchRateDegS: arinc.NewWord(no, 0),
		BodyYawRateDegS:   arinc.NewWord(no, 0),
		BodyLongAccelG:    arinc.NewWord(no, 0),
		BodyLatAccelG:     arinc.NewWord(no, 0),
		BodyNormalAccelG:  arinc.NewWord(no, 1),
		PitchAttRateDegS:  arinc.NewWord(no, 0),
		RollAttRateDegS:   arinc.NewWord(no, 0),
	}
	sfcc := make([]bool, 7)
	sfcc[6] = true // бит 17: рукоятка в 0
	return Input{
		Dt:  frameDt,
		Sim: SimData{ComputerRunning: true},
		Discrete: Discretes{
			FacEngagedFromSwitch:           true,
			IsUnit1:                        true,
			YawDamperHasHydPress:           true,
			RudderTrimActuatorHealthy:      true,
			RudderTravelLimActuatorHealthy: true,
			Elac1Healthy:                   true,
		},
		Bus: BusInputs{
			ADROwn: adr, ADROpp: adr, ADR3: adr,
			IROwn: ir, IROpp: ir, IR3: ir,
			FMGCOwn: FMGCBus{FgRadioHeightFt: arinc.NewWord(no, 5000)},
			SFCCOwn: SFCCBus{SlatFlapSystemStatusWord: arinc.Discrete(no, sfcc...)},
			LGCIUOwn: LGCIUBus{
				DiscreteWord1: arinc.Discrete(no),
				DiscreteWord2: arinc.Discrete(no),
				DiscreteWord3: arinc.Discrete(no),
			},
			ELAC1: ELACBus{
				DiscreteStatusWord1: arinc.Discrete(no, true),
				DiscreteStatusWord2: arinc.Discrete(no, true),
			},
		},
	}
}

func envelopeValues(e Envelope) []float64 {
	return []float64{
		e.EstimatedBetaDeg, e.BetaTargetDeg, e.AlphaFilteredDeg, e.WeightLbs, e.CgPercent,
		e.VAlphaMaxKn, e.VAlphaProtKn, e.VStallWarnKn, e.VLSKn, e.VStallKn,
		e.V3Kn, e.V4Kn, e.VManKn, e.VMaxKn, e.VFENextKn, e.VCTrendKn,
	}
}

func TestComputer_BothADRFailed(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Bus.ADROwn.AirspeedComputedKn.SSM = arinc.FailureWarning
	in.Bus.ADR3.AoACorrectedDeg.SSM = arinc.FailureWarning

	var out Output
	for i := 0; i < 60; i++ {
		out = c.Step(in)
	}

	l := out.Logic
	assert.Equal(t, ADRData{}, l.ADR, "no usable ADR must give zeros")
	assert.Empty(t, l.ADRSource)
	assert.True(t, l.DoubleSelfDetectedADRFailure)
	assert.True(t, l.SpeedScaleLost)
	assert.False(t, l.SpeedScaleVisible)

	e := out.Envelope
	assert.Equal(t, 0.0, e.VAlphaMaxKn)
	assert.Equal(t, 0.0, e.VAlphaProtKn)
	assert.Equal(t, 0.0, e.VStallWarnKn)
	assert.Equal(t, 350.0, e.VMaxKn, "mach 0 falls back to VMO")
	for i, v := range envelopeValues(e) {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "envelope value %d: %s", i, spew.Sdump(e))
	}

	assert.Equal(t, arinc.NoComputedData, out.Bus.VLSKn.SSM)
	assert.Equal(t, arinc.NoComputedData, out.Bus.VAlphaProtKn.SSM)
	assert.Equal(t, arinc.NoComputedData, out.Bus.V3Kn.SSM)
}

func TestComputer_SourceFallback(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Bus.ADROwn.AirspeedComputedKn.SSM = arinc.FailureWarning
	in.Bus.ADR3.AirspeedComputedKn.Data = 240
	in.Bus.IROwn.BodyLatAccelG.SSM = arinc.NoComputedData
	in.Bus.IR3.BodyYawRateDegS.Data = 1.5

	out := c.Step(in)
	assert.Equal(t, "adr3", out.Logic.ADRSource)
	assert.Equal(t, 240.0, out.Logic.ADR.VIasKn)
	assert.Equal(t, "ir3", out.Logic.IRSource)
	assert.Equal(t, 1.5, out.Logic.IR.RDegS)
	assert.False(t, out.Logic.DoubleSelfDetectedADRFailure)

	// противоположный ADR не используется как источник данных
	in.Bus.ADR3.AirspeedComputedKn.SSM = arinc.FailureWarning
	out = c.Step(in)
	assert.Empty(t, out.Logic.ADRSource)
	assert.True(t, out.Logic.DoubleSelfDetectedADRFailure)
}

func TestComputer_NotRunning(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	var running Output
	for i := 0; i < 50; i++ {
		running = c.Step(in)
	}
	require.True(t, c.Running())
	require.True(t, running.Bus.VLSKn.Valid())

	// остановленный вычислитель держит последний выход и не считает
	in.Sim.ComputerRunning = false
	in.Bus.ADROwn.AirspeedComputedKn.Data = 300
	for i := 0; i < 5; i++ {
		out := c.Step(in)
		assert.False(t, c.Running())
		assert.Equal(t, running, out)
	}
	assert.True(t, running.Discrete.FacHealthy)

	in.Sim.ComputerRunning = true
	out := c.Step(in)
	assert.True(t, c.Running())
	assert.True(t, out.Discrete.FacHealthy)

	c.Reset()
	assert.False(t, c.Running())
	in.Sim.ComputerRunning = false
	assert.Equal(t, Output{}, c.Step(in))
}

func TestComputer_LgciuFallback(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Bus.LGCIUOwn.DiscreteWord1.SSM = arinc.FailureWarning

	opp := make([]bool, arinc.DiscreteBits)
	opp[W5LgciuOwnValidBit-11] = true
	opp[W5LeftGearBit-11] = true
	in.Bus.FacOpp.DiscreteWord5 = arinc.Discrete(no, opp...)

	out := c.Step(in)
	assert.False(t, out.Logic.LgciuOwnValid)
	assert.False(t, out.Logic.AllLgciuLost)
	assert.True(t, out.Logic.LeftMainGearPressed)
	assert.True(t, out.Logic.OnGround)

	in.Bus.FacOpp.DiscreteWord5.SSM = arinc.NoComputedData
	out = c.Step(in)
	assert.True(t, out.Logic.AllLgciuLost)
	assert.False(t, out.Logic.OnGround)
}

func TestComputer_NoseGearDisagree(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Discrete.NoseGearPressed = true

	// расхождение подтверждается за 0.5 с
	for i := 0; i < 14; i++ {
		require.True(t, c.Step(in).Logic.LgciuOwnValid, "frame %d", i)
	}
	for i := 0; i < 3; i++ {
		c.Step(in)
	}
	assert.False(t, c.Step(in).Logic.LgciuOwnValid)
}

func TestComputer_AlphaFloor(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Bus.ADROwn.AoACorrectedDeg.Data = 15

	var out Output
	for i := 0; i < 30; i++ {
		out = c.Step(in)
	}
	require.True(t, out.Envelope.AlphaFloorCondition)
	assert.True(t, out.Bus.DiscreteWord5.Bit(W5AlphaFloorBit))

	in.Bus.ELAC1.DiscreteStatusWord1 = arinc.Discrete(no, false)
	out = c.Step(in)
	assert.False(t, out.Envelope.AlphaFloorCondition, "no ELAC in pitch control clears the latch")
}

func TestComputer_Engagement(t *testing.T) {
	in := healthyInput()
	in.Discrete.IsUnit1 = false
	in.Discrete.YawDamperOppEngaged = true

	out := NewComputer(testParams()).Step(in)
	assert.Equal(t, mode.Engagement{CanEngage: true, HasPriority: false, Engaged: false}, out.Logic.YawDamper)
	assert.True(t, out.Logic.RudderTrim.Engaged)
	assert.True(t, out.Bus.DiscreteWord2.Bit(W2YawDamperOppBit))
	assert.False(t, out.Bus.DiscreteWord2.Bit(W2YawDamperEngagedBit))
}

func TestComputer_YawDamperTracksWhenDisengaged(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()
	in.Discrete.YawDamperHasHydPress = false
	in.Analog.YawDamperPosDeg = 1.7

	out := c.Step(in)
	assert.Equal(t, 1.7, out.Analog.YawDamperOrderDeg)
	assert.False(t, out.Discrete.YawDamperEngaged)
	assert.False(t, out.Discrete.YawDamperAvailForNormLaw)
}

func TestComputer_RudderTrimReset(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()

	in.Discrete.RudderTrimSwitchRight = true
	var out Output
	for i := 0; i < 30; i++ {
		out = c.Step(in)
	}
	require.InDelta(t, 29*frameDt, out.Laws.RudderTrimCommandDeg, 1e-9)

	in.Discrete.RudderTrimSwitchRight = false
	hold := c.Step(in).Laws.RudderTrimCommandDeg
	assert.InDelta(t, out.Laws.RudderTrimCommandDeg, hold, 1e-9)

	in.Discrete.RudderTrimResetButton = true
	c.Step(in)
	in.Discrete.RudderTrimResetButton = false
	for i := 0; i < 90; i++ {
		out = c.Step(in)
	}
	assert.InDelta(t, 0, out.Laws.RudderTrimCommandDeg, 0.06)
}

func TestComputer_TravelLimit(t *testing.T) {
	c := NewComputer(testParams())
	in := healthyInput()

	first := c.Step(in).Laws.RudderTravelLimCommandDeg
	assert.Equal(t, 25.0, first, "starts from the initial condition")

	var out Output
	for i := 0; i < 300; i++ {
		out = c.Step(in)
	}
	want := 25 + (250-160)*(3.5-25)/(380-160)
	assert.InDelta(t, want, out.Laws.RudderTravelLimCommandDeg, 1e-9)
}

func TestVAlphaSpeed(t *testing.T) {
	assert.Equal(t, 0.0, vAlphaSpeed(200, 5, 3, 3), "degenerate polar")
	assert.Equal(t, 0.0, vAlphaSpeed(200, 5, 3, 1))
	assert.InDelta(t, 100.0, vAlphaSpeed(200, 4, 0, 16), 1e-9)
}

func TestFlapHandleIndex(t *testing.T) {
	for _, tc := range []struct {
		name string
		bits []int
		want float64
	}{
		{"zero", []int{17}, 0},
		{"one", []int{18, 22}, 1},
		{"two", []int{18}, 2},
		{"three", []int{19}, 3},
		{"full", []int{21}, 5},
		{"priority", []int{17, 21}, 0},
		{"none", nil, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			bits := make([]bool, arinc.DiscreteBits)
			for _, b := range tc.bits {
				bits[b-11] = true
			}
			assert.Equal(t, tc.want, flapHandleIndex(arinc.Discrete(no, bits...)))
		})
	}
}

func TestSimulatedLRUWords(t *testing.T) {
	for i := 0; i <= 5; i++ {
		assert.Equal(t, float64(i), flapHandleIndex(SFCCStatusWord(i)), "index %d", i)
	}

	g := LGCIUWords(true, false, true, true, true)
	assert.True(t, g.DiscreteWord2.Bit(lgciuW2NoseGearBit))
	assert.False(t, g.DiscreteWord2.Bit(lgciuW2LeftGearBit))
	assert.True(t, g.DiscreteWord2.Bit(lgciuW2RightGearBit))
	assert.True(t, g.DiscreteWord3.Bit(lgciuW3LeftDownlockBit) && g.DiscreteWord3.Bit(lgciuW3RightDownlockBit))

	w1, w2 := ELACStatusWords(true, false, true, true)
	assert.True(t, w1.BitValid(elacW1PitchEngagedBit))
	assert.False(t, w1.BitValid(elacW1YawOrderValidBit))
	assert.True(t, w1.BitValid(elacW1YawDamperEngageBit))
	assert.True(t, w2.BitValid(elacW2AlphaFloorOKBit))
}
