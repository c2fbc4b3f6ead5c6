package mode

// GainState — конфигурация для выбора ограничений.
type GainState int

const (
	GainGround GainState = iota
	GainFlightClean
	GainFlightFlaps
)

func (g GainState) String() string {
	switch g {
	case GainGround:
		return "ground"
	case GainFlightClean:
		return "flight_clean"
	case GainFlightFlaps:
		return "flight_flaps"
	default:
		return "unknown"
	}
}

// Schedule — ограничения, действующие в одном состоянии.
type Schedule struct {
	TrimRateDegS float64 `yaml:"trim_rate_deg_s"`
	NzUpG        float64 `yaml:"nz_up_g"`
	NzLoG        float64 `yaml:"nz_lo_g"`
}

type GainParams struct {
	Ground Schedule `yaml:"ground"`
	Clean  Schedule `yaml:"clean"`
	Flaps  Schedule `yaml:"flaps"`
}

// GainScheduler выбирает Schedule по признаку полёта и положению рукоятки закрылков.
type GainScheduler struct {
	P GainParams

	state GainState
}

func NewGainScheduler(p GainParams) *GainScheduler {
	return &GainScheduler{P: p}
}

func (g *GainScheduler) Step(inFlight, flapsHandleIndex float64) Schedule {
	switch g.state {
	case GainFlightClean:
		if flapsHandleIndex != 0 {
			g.state = GainFlightFlaps
		} else if inFlight == 0 {
			g.state = GainGround
		}
	case GainFlightFlaps:
		if flapsHandleIndex == 0 {
			g.state = GainFlightClean
		} else if inFlight == 0 {
			g.state = GainGround
		}
	default:
		if inFlight != 0 && flapsHandleIndex == 0 {
			g.state = GainFlightClean
		} else if inFlight != 0 && flapsHandleIndex != 0 {
			g.state = GainFlightFlaps
		}
	}
	return g.Current()
}

// Current — ограничения текущего состояния.
func (g *GainScheduler) Current() Schedule {
	switch g.state {
	case GainFlightClean:
		return g.P.Clean
	case GainFlightFlaps:
		return g.P.Flaps
	default:
		return g.P.Ground
	}
}

func (g *GainScheduler) State() GainState { return g.state }

func (g *GainScheduler) Reset() { g.state = GainGround }
