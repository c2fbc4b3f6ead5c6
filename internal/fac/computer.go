package fac

type state struct {
	logic    logicState
	envelope envelopeState
	laws     lawState
}

// Computer — один экземпляр FAC. Состояние принадлежит только ему,
// два FAC обмениваются лишь выходными шинами.
type Computer struct {
	P *Params

	s       state
	running bool
	last    Output
}

func NewComputer(p *Params) *Computer {
	c := &Computer{P: p}
	c.Init()
	return c
}

// Init сбрасывает всё состояние блоков и автоматов.
func (c *Computer) Init() {
	c.s = state{
		logic:    newLogicState(c.P),
		envelope: newEnvelopeState(c.P),
		laws:     newLawState(c.P),
	}
}

// Reset возвращает вычислитель в исходное состояние вместе с удержанным выходом.
func (c *Computer) Reset() {
	c.Init()
	c.running = false
	c.last = Output{}
}

// Running — вычислитель считал на последнем кадре.
func (c *Computer) Running() bool { return c.running }

// Step вычисляет один кадр. Пока ComputerRunning == false, вычислитель стоит
// и выдаёт последний посчитанный выход; на первом кадре после запуска
// состояние инициализируется заново.
func (c *Computer) Step(in Input) Output {
	if !in.Sim.ComputerRunning {
		c.running = false
		return c.last
	}
	if !c.running {
		c.Init()
		c.running = true
	}

	p, s := c.P, &c.s
	l := computeLogic(p, &s.logic, &in)
	e := computeEnvelope(p, &s.envelope, &in, &l)
	laws := Laws{
		YawDamperCommandDeg:       yawDamper(&p.YawDamper, &s.laws, &in, &l),
		RudderTrimCommandDeg:      rudderTrim(&p.RudderTrim, &s.laws, &in, &l),
		RudderTravelLimCommandDeg: travelLimit(&p.TravelLimit, &s.laws, &in, &l),
	}

	d := &in.Discrete
	c.last = Output{
		Logic:    l,
		Envelope: e,
		Laws:     laws,
		Discrete: DiscreteOutputs{
			FacHealthy:                    true,
			YawDamperEngaged:              l.YawDamper.Engaged,
			RudderTrimEngaged:             l.RudderTrim.Engaged,
			RudderTravelLimEngaged:        l.RudderTravelLim.Engaged,
			RudderTravelLimEmergencyReset: !l.RudderTravelLim.Engaged && !d.RudderTravelLimOppEngaged,
			YawDamperAvailForNormLaw:      l.YawDamper.Engaged && !l.DoubleSelfDetectedIRFailure,
		},
		Analog: AnalogOutputs{
			YawDamperOrderDeg:         laws.YawDamperCommandDeg,
			RudderTrimOrderDeg:        laws.RudderTrimCommandDeg,
			RudderTravelLimitOrderDeg: laws.RudderTravelLimCommandDeg,
		},
		Bus: busWords(d, &l, &e, &laws, in.Analog.RudderTrimPosDeg),
	}
	return c.last
}
