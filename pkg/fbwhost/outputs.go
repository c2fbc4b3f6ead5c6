package fbwhost

import (
	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/bus"
	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/recorder"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

// Каналы адаптера, на которые уходят выходные шины FAC1 и FAC2.
var facChannels = [2]uint8{7, 8}

// Шаги BNR выходных слов.
const (
	resAngle  = 0.01
	resSpeed  = 0.0625
	resWeight = 10
	resCg     = 0.01
)

// busWord — слово выходной шины FAC: имя на шине, метка и шаг для передачи.
type busWord struct {
	field string
	label uint8
	res   float64
	get   func(b *fac.Bus) arinc.Word
}

var facBusWords = []busWord{
	{"discrete_word_1", 0o146, 0, func(b *fac.Bus) arinc.Word { return b.DiscreteWord1 }},
	{"gamma_a", 0o070, resAngle, func(b *fac.Bus) arinc.Word { return b.GammaADeg }},
	{"gamma_t", 0o071, resAngle, func(b *fac.Bus) arinc.Word { return b.GammaTDeg }},
	{"total_weight", 0o074, resWeight, func(b *fac.Bus) arinc.Word { return b.TotalWeightLbs }},
	{"center_of_gravity_pos", 0o076, resCg, func(b *fac.Bus) arinc.Word { return b.CenterOfGravityPosPercent }},
	{"sideslip_target", 0o226, resAngle, func(b *fac.Bus) arinc.Word { return b.SideslipTargetDeg }},
	{"fac_slat_angle", 0o127, resAngle, func(b *fac.Bus) arinc.Word { return b.FacSlatAngleDeg }},
	{"fac_flap_angle", 0o137, resAngle, func(b *fac.Bus) arinc.Word { return b.FacFlapAngleDeg }},
	{"discrete_word_2", 0o274, 0, func(b *fac.Bus) arinc.Word { return b.DiscreteWord2 }},
	{"rudder_travel_limit_command", 0o313, resAngle, func(b *fac.Bus) arinc.Word { return b.RudderTravelLimitCommandDeg }},
	{"delta_r_yaw_damper", 0o165, resAngle, func(b *fac.Bus) arinc.Word { return b.DeltaRYawDamperDeg }},
	{"estimated_sideslip", 0o227, resAngle, func(b *fac.Bus) arinc.Word { return b.EstimatedSideslipDeg }},
	{"v_alpha_lim", 0o243, resSpeed, func(b *fac.Bus) arinc.Word { return b.VAlphaLimKn }},
	{"v_ls", 0o245, resSpeed, func(b *fac.Bus) arinc.Word { return b.VLSKn }},
	{"v_stall", 0o244, resSpeed, func(b *fac.Bus) arinc.Word { return b.VStallKn }},
	{"v_alpha_prot", 0o242, resSpeed, func(b *fac.Bus) arinc.Word { return b.VAlphaProtKn }},
	{"v_stall_warn", 0o247, resSpeed, func(b *fac.Bus) arinc.Word { return b.VStallWarnKn }},
	{"speed_trend", 0o264, resSpeed, func(b *fac.Bus) arinc.Word { return b.SpeedTrendKn }},
	{"v3", 0o250, resSpeed, func(b *fac.Bus) arinc.Word { return b.V3Kn }},
	{"v4", 0o251, resSpeed, func(b *fac.Bus) arinc.Word { return b.V4Kn }},
	{"v_man", 0o252, resSpeed, func(b *fac.Bus) arinc.Word { return b.VManKn }},
	{"v_max", 0o246, resSpeed, func(b *fac.Bus) arinc.Word { return b.VMaxKn }},
	{"v_fe_next", 0o253, resSpeed, func(b *fac.Bus) arinc.Word { return b.VFENextKn }},
	{"discrete_word_3", 0o275, 0, func(b *fac.Bus) arinc.Word { return b.DiscreteWord3 }},
	{"discrete_word_4", 0o276, 0, func(b *fac.Bus) arinc.Word { return b.DiscreteWord4 }},
	{"discrete_word_5", 0o277, 0, func(b *fac.Bus) arinc.Word { return b.DiscreteWord5 }},
	{"delta_r_rudder_trim", 0o314, resAngle, func(b *fac.Bus) arinc.Word { return b.DeltaRRudderTrimDeg }},
	{"rudder_trim_pos", 0o315, resAngle, func(b *fac.Bus) arinc.Word { return b.RudderTrimPosDeg }},
}

// facBusName — имя слова выходной шины FAC n: "fac_1.bus.v_ls".
func facBusName(n int, field string) string {
	return unitName("fac", n, "bus."+field)
}

func setBool(w bus.Writer, name string, v bool) {
	w.Set(name, block.Bool2F(v))
}

func writeFAC(b bus.Bus, n int, o *fac.Output) {
	d, a, e := &o.Discrete, &o.Analog, &o.Envelope
	setBool(b, unitName("fac", n, fieldHealthy), d.FacHealthy)
	setBool(b, unitName("fac", n, "yaw_damper_engaged"), d.YawDamperEngaged)
	setBool(b, unitName("fac", n, "rudder_trim_engaged"), d.RudderTrimEngaged)
	setBool(b, unitName("fac", n, "rudder_travel_lim_engaged"), d.RudderTravelLimEngaged)
	setBool(b, unitName("fac", n, "rudder_travel_lim_emergency_reset"), d.RudderTravelLimEmergencyReset)
	setBool(b, unitName("fac", n, "yaw_damper_avail_for_norm_law"), d.YawDamperAvailForNormLaw)

	b.Set(unitName("fac", n, "yaw_damper_order"), a.YawDamperOrderDeg)
	b.Set(unitName("fac", n, "rudder_trim_order"), a.RudderTrimOrderDeg)
	b.Set(unitName("fac", n, "rudder_travel_limit_order"), a.RudderTravelLimitOrderDeg)

	setBool(b, unitName("fac", n, "alpha_floor"), e.AlphaFloorCondition)
	setBool(b, unitName("fac", n, "speed_scale_visible"), o.Logic.SpeedScaleVisible)

	for _, w := range facBusWords {
		b.SetWord(facBusName(n, w.field), w.get(&o.Bus))
	}
}

// facRaw — выходная шина FAC в виде слов для передачи адаптером.
func facRaw(o *fac.Output) []arinc.Raw {
	out := make([]arinc.Raw, 0, len(facBusWords))
	for _, w := range facBusWords {
		out = append(out, w.get(&o.Bus).Raw(w.label, w.res))
	}
	return out
}

func writePitch(b bus.Writer, law string, o *pitch.Output) {
	b.Set("elac.eta_cmd", o.EtaDeg)
	b.Set("elac.eta_trim_dot_cmd", o.EtaTrimDotDegS)
	b.Set("elac.eta_trim_limit_lo", o.EtaTrimLimitLoDeg)
	b.Set("elac.eta_trim_limit_up", o.EtaTrimLimitUpDeg)
	b.Set("elac.in_flight", o.InFlight)
	setBool(b, "elac.in_flare", o.InFlare)
	setBool(b, "elac.rotation", o.Rotation)
	setBool(b, "elac.trim_frozen", o.TrimFrozen)
	b.Set("elac.trim_owner", float64(o.TrimOwner))
	setBool(b, "elac.alternate_law_active", law == lawAlternate)
}

func writeThrust(b bus.Writer, o *thrust.Output) {
	b.Set("fadec.thrust_limit_idle", o.IdlePercent)
	b.Set("fadec.thrust_limit_clb", o.CLBPercent)
	b.Set("fadec.thrust_limit_mct", o.MCTPercent)
	b.Set("fadec.thrust_limit_flex", o.FLEXPercent)
	b.Set("fadec.thrust_limit_toga", o.TOGAPercent)
	b.Set("fadec.thrust_limit_ga", o.GAPercent)
	setBool(b, "fadec.flex_active", o.FlexActive)
	setBool(b, "fadec.flex_to_clb", o.FlexToClbTransition)
}

// writeFrame публикует все выходы кадра.
func writeFrame(b bus.Bus, f *recorder.Frame) {
	for i := range f.FAC {
		writeFAC(b, i+1, &f.FAC[i])
	}
	writePitch(b, f.PitchLaw, &f.Pitch)
	writeThrust(b, &f.Thrust)
}
