package fac

import (
	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
	"github.com/flybywiresim/aircraft-sub011/internal/sourcesel"
)

type logicState struct {
	noseGearAgree block.ConfirmNode
	speedScale    block.ConfirmNode
	adr           sourcesel.Election[ADRData]
	ir            sourcesel.Election[IRData]
}

func newLogicState(p *Params) logicState {
	s := logicState{
		noseGearAgree: block.ConfirmNode{RisingEdge: false, Delay: p.GearConfirmSec},
		speedScale:    block.ConfirmNode{RisingEdge: true, Delay: p.SpeedScaleConfirmSec},
	}
	// при включении датчики считаются согласованными
	s.noseGearAgree.Step(true, 0)
	return s
}

// adrFailed: отказ ADR определяется по словам приборной скорости и угла атаки.
func adrFailed(b *ADRBus) bool {
	return b.AirspeedComputedKn.SSM.IsFailed() || b.AoACorrectedDeg.SSM.IsFailed()
}

// irFailed: IR годен только при нормальной работе угловой скорости рыскания и
// бокового ускорения.
func irFailed(b *IRBus) bool {
	return !b.BodyYawRateDegS.Valid() || !b.BodyLatAccelG.Valid()
}

func adrData(b *ADRBus) ADRData {
	return ADRData{
		VIasKn:     b.AirspeedComputedKn.Data,
		VTasKn:     b.AirspeedTrueKn.Data,
		Mach:       b.Mach.Data,
		AlphaDeg:   b.AoACorrectedDeg.Data,
		AltitudeFt: b.AltitudeCorrectedFt.Data,
	}
}

func irData(b *IRBus) IRData {
	return IRData{
		ThetaDeg:     b.PitchDeg.Data,
		PhiDeg:       b.RollDeg.Data,
		QDegS:        b.BodyPitchRateDegS.Data,
		RDegS:        b.BodyYawRateDegS.Data,
		NxG:          b.BodyLongAccelG.Data,
		NyG:          b.BodyLatAccelG.Data,
		NzG:          b.BodyNormalAccelG.Data,
		ThetaDotDegS: b.PitchAttRateDegS.Data,
		PhiDotDegS:   b.RollAttRateDegS.Data,
	}
}

func countTrue(v ...bool) int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}

// computeLogic — шасси, закрылки, выбор источников и арбитраж функций.
func computeLogic(p *Params, s *logicState, in *Input) Logic {
	d, b := &in.Discrete, &in.Bus
	var l Logic

	// своё LGCIU: слово 1 не в отказе и датчик носовой стойки согласован с FAC
	lw1, lw2, lw3 := b.LGCIUOwn.DiscreteWord1, b.LGCIUOwn.DiscreteWord2, b.LGCIUOwn.DiscreteWord3
	agree := s.noseGearAgree.Step(d.NoseGearPressed == lw2.Bit(lgciuW2NoseGearBit), in.Dt)
	l.LgciuOwnValid = !lw1.SSM.IsFailed() && agree

	opp5 := b.FacOpp.DiscreteWord5
	oppValid := opp5.BitValid(W5LgciuOwnValidBit)
	switch {
	case l.LgciuOwnValid:
		l.LeftMainGearPressed = lw2.Bit(lgciuW2LeftGearBit)
		l.RightMainGearPressed = lw2.Bit(lgciuW2RightGearBit)
		l.MainGearOut = lw3.Bit(lgciuW3LeftDownlockBit) && lw3.Bit(lgciuW3RightDownlockBit)
	case oppValid:
		l.LeftMainGearPressed = opp5.Bit(W5LeftGearBit)
		l.RightMainGearPressed = opp5.Bit(W5RightGearBit)
		l.MainGearOut = opp5.Bit(W5GearOutBit)
	}
	l.AllLgciuLost = !l.LgciuOwnValid && !oppValid
	l.OnGround = l.LeftMainGearPressed || l.RightMainGearPressed

	l.SfccOwnValid = b.SFCCOwn.SlatFlapSystemStatusWord.Valid()
	if l.SfccOwnValid {
		l.FlapHandleIndex = flapHandleIndex(b.SFCCOwn.SlatFlapSystemStatusWord)
	}

	l.TrackingModeOn = in.Sim.SlewOn || in.Sim.PauseOn || in.Sim.TrackingModeOnOverride

	// ADR/IR: свой, затем третий; противоположный участвует только в признаке двойного отказа
	ownADR, oppADR, adr3 := &b.ADROwn, &b.ADROpp, &b.ADR3
	l.DoubleSelfDetectedADRFailure = countTrue(adrFailed(ownADR), adrFailed(oppADR), adrFailed(adr3)) >= 2
	l.ADR, _ = s.adr.Select(
		[]sourcesel.Candidate[ADRData]{{Name: "own", Data: adrData(ownADR), Usable: !adrFailed(ownADR)}},
		sourcesel.Candidate[ADRData]{Name: "adr3", Data: adrData(adr3), Usable: !adrFailed(adr3)},
	)
	l.ADRSource = s.adr.Active()

	ownIR, oppIR, ir3 := &b.IROwn, &b.IROpp, &b.IR3
	l.DoubleSelfDetectedIRFailure = countTrue(irFailed(ownIR), irFailed(oppIR), irFailed(ir3)) >= 2
	l.IR, _ = s.ir.Select(
		[]sourcesel.Candidate[IRData]{{Name: "own", Data: irData(ownIR), Usable: !irFailed(ownIR)}},
		sourcesel.Candidate[IRData]{Name: "ir3", Data: irData(ir3), Usable: !irFailed(ir3)},
	)
	l.IRSource = s.ir.Active()

	master := d.FacEngagedFromSwitch && in.Sim.ComputerRunning
	l.YawDamper = mode.Arbitrate(d.YawDamperHasHydPress, master, d.IsUnit1, d.YawDamperOppEngaged)
	l.RudderTrim = mode.Arbitrate(d.RudderTrimActuatorHealthy, master, d.IsUnit1, d.RudderTrimOppEngaged)
	l.RudderTravelLim = mode.Arbitrate(d.RudderTravelLimActuatorHealthy, master, d.IsUnit1, d.RudderTravelLimOppEngaged)

	l.SpeedScaleLost = l.ADRSource == ""
	l.SpeedScaleVisible = s.speedScale.Step(!l.OnGround && !l.SpeedScaleLost, in.Dt)
	return l
}

// elacInControl — хотя бы один исправный ELAC сообщает, что управляет тангажом.
func elacInControl(d *Discretes, b *BusInputs) bool {
	return (d.Elac1Healthy && b.ELAC1.DiscreteStatusWord1.BitValid(elacW1PitchEngagedBit)) ||
		(d.Elac2Healthy && b.ELAC2.DiscreteStatusWord1.BitValid(elacW1PitchEngagedBit))
}

func elacFloorOK(b *BusInputs) bool {
	return b.ELAC1.DiscreteStatusWord2.BitValid(elacW2AlphaFloorOKBit) ||
		b.ELAC2.DiscreteStatusWord2.BitValid(elacW2AlphaFloorOKBit)
}

// elacWord возвращает первое валидное из слов ELAC1/ELAC2.
func elacWord(w1, w2 arinc.Word) (float64, bool) {
	if w1.Valid() {
		return w1.Data, true
	}
	if w2.Valid() {
		return w2.Data, true
	}
	return 0, false
}
