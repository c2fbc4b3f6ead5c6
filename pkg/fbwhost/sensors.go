package fbwhost

import (
	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/bus"
	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/recorder"
)

// Sensors — смоделированные LRU: ADIRU, FMGC, SFCC, LGCIU и ELAC собираются
// из переменных симулятора (bus.Sim*), когда настоящих шин нет.
type Sensors struct {
	// ADIRU — строить слова ADR/IR. Выключается, когда их принимает адаптер.
	ADIRU bool
	// EchoActuators — приводы отрабатывают команды прошлого кадра без
	// запаздывания. Иначе положения берутся из симулятора.
	EchoActuators bool

	trimDeg float64
}

// Update пишет входы кадра. last — выходы прошлого кадра.
func (s *Sensors) Update(b bus.Bus, last *recorder.Frame, dt float64) {
	no := arinc.NormalOperation
	word := func(name, sim string) { b.SetWord(name, arinc.NewWord(no, b.Value(sim))) }

	if s.ADIRU {
		for n := 1; n <= 3; n++ {
			word(bus.ADRName(n, bus.ADRAltitude), bus.SimAltitudeFt)
			word(bus.ADRName(n, bus.ADRMach), bus.SimMach)
			word(bus.ADRName(n, bus.ADRCas), bus.SimIasKn)
			word(bus.ADRName(n, bus.ADRTas), bus.SimTasKn)
			word(bus.ADRName(n, bus.ADRAoA), bus.SimAoADeg)

			word(bus.IRName(n, bus.IRPitch), bus.SimPitchDeg)
			word(bus.IRName(n, bus.IRRoll), bus.SimBankDeg)
			word(bus.IRName(n, bus.IRBodyPitchRate), bus.SimPitchRateDegS)
			word(bus.IRName(n, bus.IRBodyYawRate), bus.SimYawRateDegS)
			word(bus.IRName(n, bus.IRBodyLongAccel), bus.SimAccelLongG)
			word(bus.IRName(n, bus.IRBodyLatAccel), bus.SimAccelLatG)
			word(bus.IRName(n, bus.IRBodyNormAccel), bus.SimGForce)
			word(bus.IRName(n, bus.IRPitchAttRate), bus.SimPitchRateDegS)
			word(bus.IRName(n, bus.IRRollAttRate), bus.SimRollRateDegS)
		}
	}

	nose, left, right := flag(b, bus.SimNoseGearGround), flag(b, bus.SimLeftGearGround), flag(b, bus.SimRightGearGnd)
	gearDown := flag(b, bus.SimGearDown)
	handle := int(b.Value(bus.SimFlapsHandle))
	lg := fac.LGCIUWords(nose, left, right, gearDown, gearDown)
	w1, w2 := fac.ELACStatusWords(true, true, true, true)

	for n := 1; n <= 2; n++ {
		word(unitName("fmgc", n, fieldWeight), bus.SimWeightLbs)
		word(unitName("fmgc", n, fieldCg), bus.SimCgPercent)
		word(unitName("fmgc", n, fieldRadioHeight), bus.SimRadioHeightFt)
		b.SetWord(unitName("fmgc", n, fieldN1Left), arinc.NewWord(no, b.ValueIndexed(bus.SimN1Pct, 1)))
		b.SetWord(unitName("fmgc", n, fieldN1Right), arinc.NewWord(no, b.ValueIndexed(bus.SimN1Pct, 2)))
		setBool(b, unitName("fmgc", n, fieldAPEngaged), flag(b, bus.SimAPEngaged))

		b.SetWord(unitName("sfcc", n, fieldStatusWord), fac.SFCCStatusWord(handle))
		b.SetWord(unitName("sfcc", n, fieldSlatPos), arinc.NewWord(arinc.NoComputedData, 0))
		b.SetWord(unitName("sfcc", n, fieldFlapPos), arinc.NewWord(arinc.NoComputedData, 0))

		b.SetWord(unitName("lgciu", n, fieldDiscreteWord1), lg.DiscreteWord1)
		b.SetWord(unitName("lgciu", n, fieldDiscreteWord2), lg.DiscreteWord2)
		b.SetWord(unitName("lgciu", n, fieldDiscreteWord3), lg.DiscreteWord3)
		setBool(b, unitName("lgciu", n, fieldNosePressed), nose)

		b.SetWord(unitName("elac", n, fieldPedalPos), arinc.NewWord(no, b.Value(bus.SimRudderDeg)))
		b.SetWord(unitName("elac", n, fieldYawDamperCmd), arinc.NewWord(no, 0))
		b.SetWord(unitName("elac", n, fieldDiscreteWord1), w1)
		b.SetWord(unitName("elac", n, fieldDiscreteWord2), w2)

		setBool(b, unitName("eng", n, fieldStopped), !flag(b, bus.Indexed(bus.SimCombustion, n)))
		b.Set(unitName("eng", n, fieldTLA), b.ValueIndexed(bus.SimTLADeg, n))
	}

	setBool(b, inSlatsExtended, handle > 0)
	b.Set(inRadioHeight, b.Value(bus.SimRadioHeightFt))
	b.Set(inSpoilersLeft, b.Value(bus.SimSpoilersLeft))
	b.Set(inSpoilersRight, b.Value(bus.SimSpoilersRight))
	b.Set(inOAT, b.Value(bus.SimOATDegC))
	b.Set(inTAT, b.Value(bus.SimTATDegC))
	b.Set(inSidestickPitch, b.Value(bus.SimStickPitch))

	s.actuators(b, last, dt)
}

func (s *Sensors) actuators(b bus.Bus, last *recorder.Frame, dt float64) {
	for i := range last.FAC {
		a := &last.FAC[i].Analog
		n := i + 1
		b.Set(unitName("fac", n, fieldYawDamperPos), a.YawDamperOrderDeg)
		b.Set(unitName("fac", n, fieldTravelLimPos), a.RudderTravelLimitOrderDeg)
		if s.EchoActuators {
			b.Set(unitName("fac", n, fieldRudderTrimPos), a.RudderTrimOrderDeg)
		} else {
			b.Set(unitName("fac", n, fieldRudderTrimPos), b.Value(bus.SimRudderTrimDeg))
		}
	}

	if !s.EchoActuators {
		b.Set(inEtaPos, b.Value(bus.SimElevatorDeg))
		b.Set(inEtaTrimPos, b.Value(bus.SimTrimDeg))
		return
	}
	p := &last.Pitch
	if p.EtaTrimLimitUpDeg > p.EtaTrimLimitLoDeg {
		s.trimDeg = block.Clamp(s.trimDeg+p.EtaTrimDotDegS*dt, p.EtaTrimLimitLoDeg, p.EtaTrimLimitUpDeg)
	}
	b.Set(inEtaPos, p.EtaDeg)
	b.Set(inEtaTrimPos, s.trimDeg)
}

// Preset — самолёт на стоянке с питанием: все вычислители и приводы
// исправны, двигатели остановлены, шасси обжаты.
func Preset(m *bus.Memory) {
	m.SetBool(inACEssPowered, true)
	for n := 1; n <= 2; n++ {
		m.SetBool(poweredName(n), true)
		m.SetBool(unitName("fac", n, fieldPushButton), true)
		m.SetBool(unitName("fac", n, fieldTrimActHealthy), true)
		m.SetBool(unitName("fac", n, fieldTravelActHealthy), true)
		m.SetBool(unitName("elac", n, fieldHealthy), true)
		m.SetBool(hydName(n), true)
		m.SetIndexed(bus.SimCombustion, n, 0)
		m.SetIndexed(bus.SimN1Pct, n, 0)
	}
	m.SetBool(bus.SimNoseGearGround, true)
	m.SetBool(bus.SimLeftGearGround, true)
	m.SetBool(bus.SimRightGearGnd, true)
	m.SetBool(bus.SimGearDown, true)
	m.Set(bus.SimGForce, 1)
	m.Set(bus.SimWeightLbs, 140000)
	m.Set(bus.SimCgPercent, 27)
	m.Set(bus.SimOATDegC, 15)
	m.Set(bus.SimTATDegC, 15)
	m.Set(inIdle, 20)
}
