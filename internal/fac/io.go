package fac

import (
	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
)

// Discretes — дискретные входы FAC.
type Discretes struct {
	APOwnEngaged                   bool
	APOppEngaged                   bool
	YawDamperOppEngaged            bool
	RudderTrimOppEngaged           bool
	RudderTravelLimOppEngaged      bool
	Elac1Healthy                   bool
	Elac2Healthy                   bool
	Engine1Stopped                 bool
	Engine2Stopped                 bool
	RudderTrimSwitchLeft           bool
	RudderTrimSwitchRight          bool
	RudderTrimResetButton          bool
	FacEngagedFromSwitch           bool
	FacOppHealthy                  bool
	IsUnit1                        bool
	RudderTrimActuatorHealthy      bool
	RudderTravelLimActuatorHealthy bool
	SlatsExtended                  bool
	NoseGearPressed                bool
	YawDamperHasHydPress           bool
}

// Analog — аналоговые входы: фактические положения приводов.
type Analog struct {
	YawDamperPosDeg       float64
	RudderTrimPosDeg      float64
	RudderTravelLimPosDeg float64
	LeftSpoilerPosDeg     float64
	RightSpoilerPosDeg    float64
}

// SimData — состояние симулятора.
type SimData struct {
	SlewOn                 bool
	PauseOn                bool
	TrackingModeOnOverride bool
	ComputerRunning        bool
}

type ADRBus struct {
	AltitudeCorrectedFt arinc.Word
	Mach                arinc.Word
	AirspeedComputedKn  arinc.Word
	AirspeedTrueKn      arinc.Word
	AoACorrectedDeg     arinc.Word
}

type IRBus struct {
	PitchDeg          arinc.Word
	RollDeg           arinc.Word
	BodyPitchRateDegS arinc.Word
	BodyYawRateDegS   arinc.Word
	BodyLongAccelG    arinc.Word
	BodyLatAccelG     arinc.Word
	BodyNormalAccelG  arinc.Word
	PitchAttRateDegS  arinc.Word
	RollAttRateDegS   arinc.Word
}

type FMGCBus struct {
	FacWeightLbs    arinc.Word
	FacCgPercent    arinc.Word
	FgRadioHeightFt arinc.Word
	N1LeftPercent   arinc.Word
	N1RightPercent  arinc.Word
}

type SFCCBus struct {
	SlatFlapSystemStatusWord arinc.Word
	SlatActualPositionDeg    arinc.Word
	FlapActualPositionDeg    arinc.Word
}

type LGCIUBus struct {
	DiscreteWord1 arinc.Word
	DiscreteWord2 arinc.Word
	DiscreteWord3 arinc.Word
}

type ELACBus struct {
	RudderPedalPositionDeg arinc.Word
	YawDamperCommandDeg    arinc.Word
	DiscreteStatusWord1    arinc.Word
	DiscreteStatusWord2    arinc.Word
}

// BusInputs — слова шин, читаемые FAC. FacOpp — выходная шина противоположного FAC.
type BusInputs struct {
	FacOpp   Bus
	ADROwn   ADRBus
	ADROpp   ADRBus
	ADR3     ADRBus
	IROwn    IRBus
	IROpp    IRBus
	IR3      IRBus
	FMGCOwn  FMGCBus
	SFCCOwn  SFCCBus
	LGCIUOwn LGCIUBus
	ELAC1    ELACBus
	ELAC2    ELACBus
}

// Input — входной набор FAC за один кадр.
type Input struct {
	Dt       float64
	Sim      SimData
	Discrete Discretes
	Analog   Analog
	Bus      BusInputs
}

// ADRData — выбранные воздушные данные (нули, если достоверных источников нет).
type ADRData struct {
	VIasKn     float64
	VTasKn     float64
	Mach       float64
	AlphaDeg   float64
	AltitudeFt float64
}

// IRData — выбранные инерциальные данные.
type IRData struct {
	ThetaDeg     float64
	PhiDeg       float64
	QDegS        float64
	RDegS        float64
	NxG          float64
	NyG          float64
	NzG          float64
	ThetaDotDegS float64
	PhiDotDegS   float64
}

// Logic — результаты логической части.
type Logic struct {
	LgciuOwnValid        bool
	AllLgciuLost         bool
	LeftMainGearPressed  bool
	RightMainGearPressed bool
	MainGearOut          bool
	SfccOwnValid         bool
	FlapHandleIndex      float64
	OnGround             bool
	TrackingModeOn       bool

	DoubleSelfDetectedADRFailure bool
	DoubleSelfDetectedIRFailure  bool
	ADRSource                    string
	IRSource                     string
	ADR                          ADRData
	IR                           IRData

	YawDamper       mode.Engagement
	RudderTrim      mode.Engagement
	RudderTravelLim mode.Engagement

	SpeedScaleLost    bool
	SpeedScaleVisible bool
}

// Envelope — скорости и признаки огибающей полёта.
type Envelope struct {
	EstimatedBetaDeg    float64
	BetaTargetDeg       float64
	BetaTargetVisible   bool
	AlphaFloorCondition bool
	AlphaFilteredDeg    float64
	WeightLbs           float64
	CgPercent           float64
	VAlphaMaxKn         float64
	VAlphaProtKn        float64
	VStallWarnKn        float64
	VLSKn               float64
	VStallKn            float64
	V3Kn                float64
	V3Visible           bool
	V4Kn                float64
	V4Visible           bool
	VManKn              float64
	VManVisible         bool
	VMaxKn              float64
	VFENextKn           float64
	VFENextVisible      bool
	VCTrendKn           float64
}

// Laws — команды законов до аналогового выхода.
type Laws struct {
	YawDamperCommandDeg       float64
	RudderTrimCommandDeg      float64
	RudderTravelLimCommandDeg float64
}

type DiscreteOutputs struct {
	FacHealthy                    bool
	YawDamperEngaged              bool
	RudderTrimEngaged             bool
	RudderTravelLimEngaged        bool
	RudderTravelLimEmergencyReset bool
	YawDamperAvailForNormLaw      bool
}

type AnalogOutputs struct {
	YawDamperOrderDeg         float64
	RudderTrimOrderDeg        float64
	RudderTravelLimitOrderDeg float64
}

// Output — выходной набор FAC.
type Output struct {
	Logic    Logic
	Envelope Envelope
	Laws     Laws
	Discrete DiscreteOutputs
	Analog   AnalogOutputs
	Bus      Bus
}
