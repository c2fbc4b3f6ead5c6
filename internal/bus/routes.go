package bus

import "fmt"

// Поля слов ADR.
const (
	ADRAltitude = "altitude_corrected"
	ADRMach     = "mach"
	ADRCas      = "airspeed_computed"
	ADRTas      = "airspeed_true"
	ADRAoA      = "aoa_corrected"
)

// Поля слов IR.
const (
	IRPitch         = "pitch_angle"
	IRRoll          = "roll_angle"
	IRBodyPitchRate = "body_pitch_rate"
	IRBodyYawRate   = "body_yaw_rate"
	IRBodyLongAccel = "body_long_accel"
	IRBodyLatAccel  = "body_lat_accel"
	IRBodyNormAccel = "body_normal_accel"
	IRPitchAttRate  = "pitch_att_rate"
	IRRollAttRate   = "roll_att_rate"
)

// Route связывает метку на канале адаптера с именем слова на шине.
// Resolution == 0 — дискретное слово.
type Route struct {
	Channel    uint8
	Label      uint8
	Name       string
	Resolution float64
}

type wordDef struct {
	label uint8
	field string
	res   float64
}

var adrWords = []wordDef{
	{0o203, ADRAltitude, 1},
	{0o205, ADRMach, 1.0 / 4096},
	{0o206, ADRCas, 1.0 / 16},
	{0o210, ADRTas, 1.0 / 16},
	{0o241, ADRAoA, 0.05},
}

var irWords = []wordDef{
	{0o324, IRPitch, 0.01},
	{0o325, IRRoll, 0.01},
	{0o326, IRBodyPitchRate, 0.01},
	{0o330, IRBodyYawRate, 0.01},
	{0o331, IRBodyLongAccel, 0.001},
	{0o332, IRBodyLatAccel, 0.001},
	{0o333, IRBodyNormAccel, 0.001},
	{0o336, IRPitchAttRate, 0.01},
	{0o337, IRRollAttRate, 0.01},
}

// ADRName — имя слова ADR unit (1..3).
func ADRName(unit int, field string) string { return fmt.Sprintf("adr_%d.%s", unit, field) }

func IRName(unit int, field string) string { return fmt.Sprintf("ir_%d.%s", unit, field) }

// DefaultRoutes — ADIRU 1..3: каналы 1..3 для ADR, 4..6 для IR.
func DefaultRoutes() []Route {
	var out []Route
	for unit := 1; unit <= 3; unit++ {
		for _, d := range adrWords {
			out = append(out, Route{Channel: uint8(unit), Label: d.label, Name: ADRName(unit, d.field), Resolution: d.res})
		}
		for _, d := range irWords {
			out = append(out, Route{Channel: uint8(3 + unit), Label: d.label, Name: IRName(unit, d.field), Resolution: d.res})
		}
	}
	return out
}
