package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameDt = 1.0 / 64

func testInFlight() InFlightParams {
	return InFlightParams{
		TakeoffPitchDeg:    -90,
		ForceFlightRadioFt: 1e9,
		LandingPitchDeg:    0.5,
		GroundToFlightSec:  5,
		FlightToGroundSec:  5,
	}
}

func TestInFlightDetector_ConfirmWindow(t *testing.T) {
	d := NewInFlightDetector(testInFlight())
	for i := 1; i < 320; i++ {
		require.Equal(t, 0.0, d.Step(false, 2, 0, frameDt), "step %d", i)
		require.Equal(t, PhaseGroundToFlight, d.Phase())
	}
	assert.Equal(t, 1.0, d.Step(false, 2, 0, frameDt), "5.0 s of airborne must confirm flight")
	assert.Equal(t, PhaseFlight, d.Phase())
}

func TestInFlightDetector_ReleaseResetsTimer(t *testing.T) {
	d := NewInFlightDetector(testInFlight())
	// 313 кадров = 4.890625 с
	for i := 0; i < 313; i++ {
		d.Step(false, 2, 0, frameDt)
	}
	require.Equal(t, PhaseGroundToFlight, d.Phase())

	d.Step(true, 0, 0, frameDt)
	require.Equal(t, PhaseGround, d.Phase())

	for i := 0; i < 313; i++ {
		assert.Equal(t, 0.0, d.Step(false, 2, 0, frameDt))
	}
	assert.Equal(t, PhaseGroundToFlight, d.Phase())
	for i := 0; i < 7; i++ {
		d.Step(false, 2, 0, frameDt)
	}
	assert.Equal(t, PhaseFlight, d.Phase())
}

func TestInFlightDetector_Landing(t *testing.T) {
	d := NewInFlightDetector(testInFlight())
	d.ForcePhase(PhaseFlight)

	// касание с поднятым носом — ещё полёт
	assert.Equal(t, 1.0, d.Step(true, 5, 0, frameDt))
	assert.Equal(t, PhaseFlight, d.Phase())

	assert.Equal(t, 1.0, d.Step(true, 0, 0, frameDt))
	assert.Equal(t, PhaseFlightToGround, d.Phase())

	// отскок
	d.Step(false, 0, 0, frameDt)
	assert.Equal(t, PhaseFlight, d.Phase())

	for i := 0; i < 320; i++ {
		d.Step(true, 0, 0, frameDt)
	}
	assert.Equal(t, PhaseGround, d.Phase())
	assert.Equal(t, 0.0, d.InFlight())

	d.ForcePhase(PhaseFlight)
	d.Reset()
	assert.Equal(t, PhaseGround, d.Phase())
}

func TestInFlightDetector_RadioForcesAirborne(t *testing.T) {
	p := testInFlight()
	p.TakeoffPitchDeg = 10
	p.ForceFlightRadioFt = 50
	d := NewInFlightDetector(p)

	d.Step(false, 2, 0, frameDt)
	assert.Equal(t, PhaseGround, d.Phase(), "pitch below takeoff threshold")
	d.Step(true, 2, 60, frameDt)
	assert.Equal(t, PhaseGroundToFlight, d.Phase())
}

func testFlare() FlareParams {
	return FlareParams{EngageFt: 50, ReduceFt: 30, TargetThetaDeg: -2, RampTimeSec: 8, DefaultRate: -3}
}

func TestFlareSequencer_Sequence(t *testing.T) {
	f := NewFlareSequencer(testFlare())

	out := f.Step(true, 500, false, 4, frameDt)
	assert.Equal(t, FlareFlightLow, out.State)
	out = f.Step(true, 500, false, 4, frameDt)
	assert.Equal(t, FlareFlightHigh, out.State)
	assert.False(t, out.InFlare)

	out = f.Step(true, 50, false, 6, frameDt)
	assert.Equal(t, FlareStoreThetaC, out.State)
	assert.True(t, out.InFlare)
	assert.Equal(t, 6.0, out.ThetaCDeg)

	out = f.Step(true, 45, false, 6, frameDt)
	assert.Equal(t, FlareSetRate, out.State)
	assert.Equal(t, -1.0, out.RateDegS)

	out = f.Step(true, 40, false, 6, frameDt)
	assert.Equal(t, FlareSetRate, out.State)

	out = f.Step(true, 30, false, 6, frameDt)
	assert.Equal(t, FlareReduceThetaC, out.State)
	assert.Equal(t, -2.0, out.ThetaCDeg)
	assert.True(t, out.InFlare)

	out = f.Step(false, 0, false, 0, frameDt)
	assert.Equal(t, FlareGround, out.State)
	assert.False(t, out.InFlare)
}

func TestFlareSequencer_GoAround(t *testing.T) {
	f := NewFlareSequencer(testFlare())
	f.Step(true, 500, false, 4, frameDt)
	f.Step(true, 500, false, 4, frameDt)
	f.Step(true, 40, false, 4, frameDt)
	f.Step(true, 40, false, 4, frameDt)
	require.Equal(t, FlareSetRate, f.State())

	out := f.Step(true, 60, false, 4, frameDt)
	assert.Equal(t, FlareFlightLow, out.State)
	assert.False(t, out.InFlare)
	assert.Equal(t, -3.0, out.RateDegS)
}

func TestFlareSequencer_Override(t *testing.T) {
	f := NewFlareSequencer(testFlare())
	f.Step(true, 500, false, 4, frameDt)
	f.Step(true, 500, false, 4, frameDt)
	out := f.Step(true, 500, true, 4, frameDt)
	assert.Equal(t, FlareStoreThetaC, out.State)
}

func TestFlareSequencer_CommandRamp(t *testing.T) {
	f := NewFlareSequencer(FlareParams{EngageFt: 50, ReduceFt: 30, TargetThetaDeg: -2, RampTimeSec: 4, DefaultRate: -3})
	f.Step(true, 500, false, 2, 0.25)
	f.Step(true, 500, false, 2, 0.25)
	f.Step(true, 40, false, 2, 0.25)
	out := f.Step(true, 40, false, 2, 0.25)
	require.Equal(t, -1.0, out.RateDegS)

	prev := out.CommandDeg
	for i := 0; i < 40; i++ {
		out = f.Step(true, 20, false, 2, 0.25)
		step := prev - out.CommandDeg
		assert.LessOrEqual(t, step, 0.25+1e-12)
		assert.GreaterOrEqual(t, step, 0.0)
		prev = out.CommandDeg
	}
	assert.Equal(t, -2.0, out.CommandDeg)
}

func TestTrimFreeze(t *testing.T) {
	var tf TrimFreeze
	assert.False(t, tf.Step(false, 1, 0))
	assert.True(t, tf.Step(false, 1.25, 0))
	assert.False(t, tf.Step(false, 1.2, 0), "released once back inside")
	tf.Reset()
	assert.False(t, tf.Step(false, 1.2, 29))
	assert.True(t, tf.Step(false, 1.0, -31))
	assert.False(t, tf.Step(false, 1.0, 30))
	assert.True(t, tf.Step(true, 1.0, 0), "flare freezes trim")
	assert.True(t, tf.Step(false, 0.5, 0))
	assert.False(t, tf.Step(false, 0.51, 0))
}

func TestTrimTracker(t *testing.T) {
	tr := TrimTracker{Tolerance: 0.01}
	assert.Equal(t, TrimManual, tr.Step(0, true, 3))
	assert.Equal(t, TrimAutomatic, tr.Step(1, false, 3))
	assert.Equal(t, TrimTracking, tr.Step(1, true, 3))
	assert.Equal(t, TrimAutomatic, tr.Step(1, false, 3))
	assert.Equal(t, TrimReset, tr.Step(0, true, 3), "ground beats tracking")
	assert.Equal(t, TrimReset, tr.Step(0, false, 0.5))
	assert.Equal(t, TrimManual, tr.Step(0, false, 0.005))
	assert.Equal(t, "manual", tr.Owner().String())
}

func TestGainScheduler(t *testing.T) {
	p := GainParams{
		Ground: Schedule{TrimRateDegS: 0.7, NzUpG: 2, NzLoG: 0},
		Clean:  Schedule{TrimRateDegS: 0.3, NzUpG: 2.5, NzLoG: -1},
		Flaps:  Schedule{TrimRateDegS: 0.7, NzUpG: 2, NzLoG: 0},
	}
	g := NewGainScheduler(p)
	assert.Equal(t, p.Ground, g.Step(0, 0))
	assert.Equal(t, p.Clean, g.Step(1, 0))
	assert.Equal(t, GainFlightClean, g.State())
	assert.Equal(t, p.Flaps, g.Step(1, 2))
	// выпуск закрылков проверяется раньше признака земли
	g.Step(1, 0)
	g.Step(0, 3)
	assert.Equal(t, GainFlightFlaps, g.State())
	g.Step(0, 3)
	assert.Equal(t, GainGround, g.State())
}

func TestRotationDetector(t *testing.T) {
	r := NewRotationDetector(RotationParams{MinSpeedKn: 70, TakeoffTLADeg: 35, ReleaseRadioFt: 400})
	assert.False(t, r.Step(0, 60, 45, 45, 0))
	assert.True(t, r.Step(0, 80, 20, 45, 0))
	assert.True(t, r.Step(0.5, 120, 45, 45, 100))
	assert.False(t, r.Step(0.5, 120, 45, 45, 401))
	r.Reset()
	r.Step(0, 80, 45, 45, 0)
	assert.False(t, r.Step(1, 150, 45, 45, 50), "full flight releases rotation")
}

func TestFloorInhibit(t *testing.T) {
	f := FloorInhibit{P: AlphaFloorParams{GateRadioFt: 100}}
	assert.True(t, f.Step(true, 0))
	assert.False(t, f.Step(false, 10))
	assert.Equal(t, FloorTakeoff100ft, f.Phase())
	assert.False(t, f.Step(false, 150))
	assert.Equal(t, FloorFlying, f.Phase())
	assert.True(t, f.Step(false, 90))
	assert.Equal(t, FloorLanding100ft, f.Phase())
	assert.False(t, f.Step(false, 120))
	f.Step(false, 50)
	assert.True(t, f.Step(true, 0))
	assert.Equal(t, FloorLanded, f.Phase())
}

func TestAlphaFloorLatch(t *testing.T) {
	l := NewAlphaFloorLatch(AlphaFloorParams{MaxMach: 0.6, ConfirmSec: 0.5})
	const dt = 0.125

	for i := 0; i < 3; i++ {
		assert.False(t, l.Step(false, 0.3, 15, 12, true, true, dt))
	}
	assert.True(t, l.Step(false, 0.3, 15, 12, true, true, dt), "condition confirmed after 0.5 s")
	assert.True(t, l.Step(false, 0.3, 5, 12, true, true, dt), "latched below threshold")
	assert.False(t, l.Step(true, 0.3, 5, 12, true, true, dt), "inhibit clears")

	l.Reset()
	for i := 0; i < 8; i++ {
		assert.False(t, l.Step(false, 0.7, 15, 12, true, true, dt), "high mach never sets")
	}
	for i := 0; i < 4; i++ {
		l.Step(false, 0.3, 15, 12, true, true, dt)
	}
	require.True(t, l.Latched())
	assert.False(t, l.Step(false, 0.3, 5, 12, false, true, dt), "no ELAC in control clears")
}

func TestArbitrate(t *testing.T) {
	for _, tc := range []struct {
		healthy, master, primary, opp bool
		want                          bool
	}{
		{true, true, true, true, true},
		{true, true, false, true, false},
		{true, true, false, false, true},
		{false, true, true, false, false},
		{true, false, true, false, false},
	} {
		e := Arbitrate(tc.healthy, tc.master, tc.primary, tc.opp)
		assert.Equal(t, tc.want, e.Engaged, "%+v", tc)
		assert.Equal(t, tc.healthy && tc.master, e.CanEngage)
	}
}

func TestProtectionArbiter(t *testing.T) {
	a := ProtectionArbiter{LimitUpDeg: 13.5, LimitLoDeg: -4}
	lo, up := a.Step(2, false, false)
	assert.Equal(t, -4.0, lo)
	assert.Equal(t, 13.5, up)

	lo, _ = a.Step(2.5, false, false)
	assert.Equal(t, -4.0, lo)
	lo, _ = a.Step(3, true, false)
	assert.Equal(t, 2.5, lo, "holds the value before activation")
	lo, up = a.Step(5, true, true)
	assert.Equal(t, 2.5, lo)
	assert.Equal(t, 3.0, up)
}
