package fbwhost

import "fmt"

// Имена входов и выходов хоста на шине. Поля устройств с номером
// собираются через unitName: "fac_1.push_button", "sfcc_2.status_word".
const (
	inACEssPowered   = "elec.ac_ess_powered"
	inAlternateLaw   = "elac.alternate_law"
	inTrackingForced = "sim.tracking_override"

	inSlatsExtended   = "slats.extended"
	inTrimSwitchLeft  = "rudder_trim.switch_left"
	inTrimSwitchRight = "rudder_trim.switch_right"
	inTrimReset       = "rudder_trim.reset"
	inSpoilersLeft    = "spoilers.left_pos"
	inSpoilersRight   = "spoilers.right_pos"
	inRadioHeight     = "ra.height"
	inSidestickPitch  = "sidestick.pitch"

	inEtaPos        = "elac.eta_pos"
	inEtaTrimPos    = "elac.eta_trim_pos"
	inHighAoAProt   = "elac.high_aoa_prot"
	inHighSpeedProt = "elac.high_speed_prot"
	inAlphaProt     = "elac.alpha_prot"
	inAlphaMax      = "elac.alpha_max"
	inHSProtHigh    = "elac.high_speed_prot_high"
	inHSProtLow     = "elac.high_speed_prot_low"
	inTailstrike    = "elac.tailstrike_protection"
	inForceFlare    = "elac.force_flare"
	inAPThetaC      = "fmgc_1.theta_c"

	inOAT            = "air.oat"
	inTAT            = "air.tat"
	inFlexTemp       = "fadec.flex_temp"
	inLimitType      = "fadec.limit_type"
	inUseExternalCLB = "fadec.use_external_clb"
	inExternalCLB    = "fadec.external_clb"
	inIdle           = "fadec.idle"
	inWingAntiIce    = "wing.anti_ice"
)

// Поля устройств.
const (
	fieldPushButton       = "push_button"
	fieldTrimActHealthy   = "rudder_trim_actuator_healthy"
	fieldTravelActHealthy = "travel_lim_actuator_healthy"
	fieldYawDamperPos     = "yaw_damper_pos"
	fieldRudderTrimPos    = "rudder_trim_pos"
	fieldTravelLimPos     = "rudder_travel_lim_pos"
	fieldHealthy          = "healthy"
	fieldStopped          = "stopped"
	fieldTLA              = "tla"
	fieldAntiIce          = "anti_ice"
	fieldOn               = "on"
	fieldAPEngaged        = "ap_engaged"

	fieldWeight      = "weight"
	fieldCg          = "cg"
	fieldRadioHeight = "radio_height"
	fieldN1Left      = "n1_left"
	fieldN1Right     = "n1_right"

	fieldStatusWord = "status_word"
	fieldSlatPos    = "slat_pos"
	fieldFlapPos    = "flap_pos"

	fieldDiscreteWord1 = "discrete_word_1"
	fieldDiscreteWord2 = "discrete_word_2"
	fieldDiscreteWord3 = "discrete_word_3"
	fieldNosePressed   = "nose_gear_pressed"

	fieldPedalPos     = "rudder_pedal_pos"
	fieldYawDamperCmd = "yaw_damper_cmd"
)

func unitName(device string, n int, field string) string {
	return fmt.Sprintf("%s_%d.%s", device, n, field)
}

// poweredName — питание вычислителя FAC n.
func poweredName(n int) string {
	return fmt.Sprintf("elec.fac_%d_powered", n)
}

// hydName — гидросистема привода демпфера рыскания: FAC1 на зелёной, FAC2 на жёлтой.
func hydName(n int) string {
	if n == 1 {
		return "hyd.green_pressurised"
	}
	return "hyd.yellow_pressurised"
}
