package bus

// Переменные симулятора, которые пишет SimConnect и из которых хост
// строит слова смоделированных ADIRU, LGCIU, SFCC и FMGC.
const (
	SimAltitudeFt     = "sim.altitude"
	SimMach           = "sim.mach"
	SimIasKn          = "sim.ias"
	SimTasKn          = "sim.tas"
	SimAoADeg         = "sim.aoa"
	SimPitchDeg       = "sim.pitch"
	SimBankDeg        = "sim.bank"
	SimPitchRateDegS  = "sim.pitch_rate"
	SimRollRateDegS   = "sim.roll_rate"
	SimYawRateDegS    = "sim.yaw_rate"
	SimAccelLongG     = "sim.accel_long"
	SimAccelLatG      = "sim.accel_lat"
	SimGForce         = "sim.g_force"
	SimRadioHeightFt  = "sim.radio_height"
	SimNoseGearGround = "sim.nose_gear_on_ground"
	SimLeftGearGround = "sim.left_gear_on_ground"
	SimRightGearGnd   = "sim.right_gear_on_ground"
	SimGearDown       = "sim.gear_down"
	SimFlapsHandle    = "sim.flaps_handle_index"
	SimWeightLbs      = "sim.weight"
	SimCgPercent      = "sim.cg"
	SimN1Pct          = "sim.n1"  // индексированная, 1..2
	SimTLADeg         = "sim.tla" // индексированная, 1..2
	SimCombustion     = "sim.combustion"
	SimOATDegC        = "sim.oat"
	SimTATDegC        = "sim.tat"
	SimElevatorDeg    = "sim.elevator"
	SimTrimDeg        = "sim.elevator_trim"
	SimRudderDeg      = "sim.rudder"
	SimRudderTrimDeg  = "sim.rudder_trim"
	SimSpoilersLeft   = "sim.spoilers_left"
	SimSpoilersRight  = "sim.spoilers_right"
	SimStickPitch     = "sim.stick_pitch"
	SimAPEngaged      = "sim.ap_master"
	SimSlew           = "sim.slew"
	SimPause          = "sim.pause"
)
