package fac

import "github.com/flybywiresim/aircraft-sub011/internal/arinc"

// Bus — выходная шина FAC; её же читает противоположный FAC.
type Bus struct {
	DiscreteWord1               arinc.Word
	GammaADeg                   arinc.Word
	GammaTDeg                   arinc.Word
	TotalWeightLbs              arinc.Word
	CenterOfGravityPosPercent   arinc.Word
	SideslipTargetDeg           arinc.Word
	FacSlatAngleDeg             arinc.Word
	FacFlapAngleDeg             arinc.Word
	DiscreteWord2               arinc.Word
	RudderTravelLimitCommandDeg arinc.Word
	DeltaRYawDamperDeg          arinc.Word
	EstimatedSideslipDeg        arinc.Word
	VAlphaLimKn                 arinc.Word
	VLSKn                       arinc.Word
	VStallKn                    arinc.Word
	VAlphaProtKn                arinc.Word
	VStallWarnKn                arinc.Word
	SpeedTrendKn                arinc.Word
	V3Kn                        arinc.Word
	V4Kn                        arinc.Word
	VManKn                      arinc.Word
	VMaxKn                      arinc.Word
	VFENextKn                   arinc.Word
	DiscreteWord3               arinc.Word
	DiscreteWord4               arinc.Word
	DiscreteWord5               arinc.Word
	DeltaRRudderTrimDeg         arinc.Word
	RudderTrimPosDeg            arinc.Word
}

// Биты discrete_word_5 (нумерация слова ARINC, данные с 11-го бита).
const (
	W5LgciuOwnValidBit = 16
	W5AllLgciuLostBit  = 17
	W5LeftGearBit      = 18
	W5RightGearBit     = 19
	W5GearOutBit       = 20
	W5AlphaFloorBit    = 29
)

// Биты discrete_word_2: включение функций своим и противоположным FAC.
const (
	W2YawDamperEngagedBit  = 11
	W2YawDamperOppBit      = 12
	W2RudderTrimEngagedBit = 13
	W2RudderTrimOppBit     = 14
	W2TravelLimEngagedBit  = 15
	W2TravelLimOppBit      = 16
)

const W1NoseGearPressedBit = 26

// Биты входных дискретных слов LGCIU и ELAC.
const (
	lgciuW2NoseGearBit      = 11
	lgciuW2LeftGearBit      = 12
	lgciuW2RightGearBit     = 13
	lgciuW3LeftDownlockBit  = 11
	lgciuW3RightDownlockBit = 12

	elacW1PitchEngagedBit    = 11
	elacW1YawOrderValidBit   = 12
	elacW1YawDamperEngageBit = 13
	elacW2AlphaFloorOKBit    = 11
)

// Биты слова состояния SFCC, по которым определяется положение рукоятки.
var sfccHandleBits = [6]int{17, 18, 19, 20, 21, 22}

// flapHandleIndex декодирует индекс рукоятки закрылков (0..5) по приоритету битов.
func flapHandleIndex(w arinc.Word) float64 {
	var b [6]bool
	for i, bit := range sfccHandleBits {
		b[i] = w.Bit(bit)
	}
	switch {
	case b[0]:
		return 0
	case b[1] && b[5]:
		return 1
	case b[1]:
		return 2
	case b[2]:
		return 3
	case b[3]:
		return 4
	case b[4]:
		return 5
	default:
		return 0
	}
}

// busWords собирает выходную шину.
func busWords(d *Discretes, l *Logic, e *Envelope, laws *Laws, trimPosDeg float64) Bus {
	no := arinc.NormalOperation
	speed := arinc.NoComputedData
	if l.SpeedScaleVisible {
		speed = arinc.NormalOperation
	}
	beta := arinc.NoComputedData
	if e.BetaTargetVisible {
		beta = arinc.NormalOperation
	}
	visible := func(v bool) arinc.SSM {
		if v && l.SpeedScaleVisible {
			return arinc.NormalOperation
		}
		return arinc.NoComputedData
	}

	w1 := make([]bool, arinc.DiscreteBits)
	w1[W1NoseGearPressedBit-11] = d.NoseGearPressed
	w2 := []bool{
		l.YawDamper.Engaged, d.YawDamperOppEngaged,
		l.RudderTrim.Engaged, d.RudderTrimOppEngaged,
		l.RudderTravelLim.Engaged, d.RudderTravelLimOppEngaged,
	}
	w5 := make([]bool, arinc.DiscreteBits)
	w5[W5LgciuOwnValidBit-11] = l.LgciuOwnValid
	w5[W5AllLgciuLostBit-11] = l.AllLgciuLost
	w5[W5LeftGearBit-11] = l.LeftMainGearPressed
	w5[W5RightGearBit-11] = l.RightMainGearPressed
	w5[W5GearOutBit-11] = l.MainGearOut
	w5[W5AlphaFloorBit-11] = e.AlphaFloorCondition

	return Bus{
		DiscreteWord1:               arinc.Discrete(no, w1...),
		GammaADeg:                   arinc.NewWord(arinc.NoComputedData, 0),
		GammaTDeg:                   arinc.NewWord(arinc.NoComputedData, 0),
		TotalWeightLbs:              arinc.NewWord(no, e.WeightLbs),
		CenterOfGravityPosPercent:   arinc.NewWord(no, e.CgPercent),
		SideslipTargetDeg:           arinc.NewWord(beta, e.BetaTargetDeg),
		FacSlatAngleDeg:             arinc.NewWord(arinc.NoComputedData, 0),
		FacFlapAngleDeg:             arinc.NewWord(arinc.NoComputedData, 0),
		DiscreteWord2:               arinc.Discrete(no, w2...),
		RudderTravelLimitCommandDeg: arinc.NewWord(no, laws.RudderTravelLimCommandDeg),
		DeltaRYawDamperDeg:          arinc.NewWord(no, laws.YawDamperCommandDeg),
		EstimatedSideslipDeg:        arinc.NewWord(speed, e.EstimatedBetaDeg),
		VAlphaLimKn:                 arinc.NewWord(speed, e.VAlphaMaxKn),
		VLSKn:                       arinc.NewWord(speed, e.VLSKn),
		VStallKn:                    arinc.NewWord(speed, e.VStallKn),
		VAlphaProtKn:                arinc.NewWord(speed, e.VAlphaProtKn),
		VStallWarnKn:                arinc.NewWord(speed, e.VStallWarnKn),
		SpeedTrendKn:                arinc.NewWord(speed, e.VCTrendKn),
		V3Kn:                        arinc.NewWord(visible(e.V3Visible), e.V3Kn),
		V4Kn:                        arinc.NewWord(visible(e.V4Visible), e.V4Kn),
		VManKn:                      arinc.NewWord(visible(e.VManVisible), e.VManKn),
		VMaxKn:                      arinc.NewWord(speed, e.VMaxKn),
		VFENextKn:                   arinc.NewWord(visible(e.VFENextVisible), e.VFENextKn),
		DiscreteWord3:               arinc.Discrete(no),
		DiscreteWord4:               arinc.Discrete(no),
		DiscreteWord5:               arinc.Discrete(no, w5...),
		DeltaRRudderTrimDeg:         arinc.NewWord(no, laws.RudderTrimCommandDeg),
		RudderTrimPosDeg:            arinc.NewWord(no, trimPosDeg),
	}
}

// Слова смоделированных LRU: хост собирает их из переменных симулятора,
// когда настоящих шин нет.

// LGCIUWords — слова LGCIU по обжатию стоек и замкам выпущенного положения.
func LGCIUWords(nose, left, right, leftDown, rightDown bool) LGCIUBus {
	no := arinc.NormalOperation
	return LGCIUBus{
		DiscreteWord1: arinc.Discrete(no),
		DiscreteWord2: arinc.Discrete(no, nose, left, right),
		DiscreteWord3: arinc.Discrete(no, leftDown, rightDown),
	}
}

// SFCCStatusWord кодирует индекс рукоятки 0..5 так, как его читает flapHandleIndex.
func SFCCStatusWord(index int) arinc.Word {
	bits := make([]bool, arinc.DiscreteBits)
	set := func(i int) { bits[sfccHandleBits[i]-11] = true }
	switch index {
	case 0:
		set(0)
	case 1:
		set(1)
		set(5)
	case 2:
		set(1)
	case 3:
		set(2)
	case 4:
		set(3)
	default:
		set(4)
	}
	return arinc.Discrete(arinc.NormalOperation, bits...)
}

// ELACStatusWords — дискретные слова 1 и 2 ELAC.
func ELACStatusWords(pitchEngaged, yawOrderValid, yawEngage, floorOK bool) (w1, w2 arinc.Word) {
	no := arinc.NormalOperation
	return arinc.Discrete(no, pitchEngaged, yawOrderValid, yawEngage), arinc.Discrete(no, floorOK)
}
