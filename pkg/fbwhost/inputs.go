package fbwhost

import (
	"github.com/flybywiresim/aircraft-sub011/internal/block"
	"github.com/flybywiresim/aircraft-sub011/internal/bus"
	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

func flag(r bus.Reader, name string) bool { return r.Value(name) != 0 }

// opposite — номер второго вычислителя пары.
func opposite(n int) int { return 3 - n }

func readADR(r bus.Reader, unit int) fac.ADRBus {
	return fac.ADRBus{
		AltitudeCorrectedFt: r.Word(bus.ADRName(unit, bus.ADRAltitude)),
		Mach:                r.Word(bus.ADRName(unit, bus.ADRMach)),
		AirspeedComputedKn:  r.Word(bus.ADRName(unit, bus.ADRCas)),
		AirspeedTrueKn:      r.Word(bus.ADRName(unit, bus.ADRTas)),
		AoACorrectedDeg:     r.Word(bus.ADRName(unit, bus.ADRAoA)),
	}
}

func readIR(r bus.Reader, unit int) fac.IRBus {
	return fac.IRBus{
		PitchDeg:          r.Word(bus.IRName(unit, bus.IRPitch)),
		RollDeg:           r.Word(bus.IRName(unit, bus.IRRoll)),
		BodyPitchRateDegS: r.Word(bus.IRName(unit, bus.IRBodyPitchRate)),
		BodyYawRateDegS:   r.Word(bus.IRName(unit, bus.IRBodyYawRate)),
		BodyLongAccelG:    r.Word(bus.IRName(unit, bus.IRBodyLongAccel)),
		BodyLatAccelG:     r.Word(bus.IRName(unit, bus.IRBodyLatAccel)),
		BodyNormalAccelG:  r.Word(bus.IRName(unit, bus.IRBodyNormAccel)),
		PitchAttRateDegS:  r.Word(bus.IRName(unit, bus.IRPitchAttRate)),
		RollAttRateDegS:   r.Word(bus.IRName(unit, bus.IRRollAttRate)),
	}
}

func readELAC(r bus.Reader, unit int) fac.ELACBus {
	return fac.ELACBus{
		RudderPedalPositionDeg: r.Word(unitName("elac", unit, fieldPedalPos)),
		YawDamperCommandDeg:    r.Word(unitName("elac", unit, fieldYawDamperCmd)),
		DiscreteStatusWord1:    r.Word(unitName("elac", unit, fieldDiscreteWord1)),
		DiscreteStatusWord2:    r.Word(unitName("elac", unit, fieldDiscreteWord2)),
	}
}

// facInput собирает вход FAC n. opp — выход противоположного FAC на прошлом кадре.
func facInput(r bus.Reader, n int, dt float64, opp *fac.Output) fac.Input {
	o := opposite(n)
	return fac.Input{
		Dt: dt,
		Sim: fac.SimData{
			SlewOn:                 flag(r, bus.SimSlew),
			PauseOn:                flag(r, bus.SimPause),
			TrackingModeOnOverride: flag(r, inTrackingForced),
			ComputerRunning:        flag(r, poweredName(n)),
		},
		Discrete: fac.Discretes{
			APOwnEngaged:                   flag(r, unitName("fmgc", n, fieldAPEngaged)),
			APOppEngaged:                   flag(r, unitName("fmgc", o, fieldAPEngaged)),
			YawDamperOppEngaged:            opp.Discrete.YawDamperEngaged,
			RudderTrimOppEngaged:           opp.Discrete.RudderTrimEngaged,
			RudderTravelLimOppEngaged:      opp.Discrete.RudderTravelLimEngaged,
			Elac1Healthy:                   flag(r, unitName("elac", 1, fieldHealthy)),
			Elac2Healthy:                   flag(r, unitName("elac", 2, fieldHealthy)),
			Engine1Stopped:                 flag(r, unitName("eng", 1, fieldStopped)),
			Engine2Stopped:                 flag(r, unitName("eng", 2, fieldStopped)),
			RudderTrimSwitchLeft:           flag(r, inTrimSwitchLeft),
			RudderTrimSwitchRight:          flag(r, inTrimSwitchRight),
			RudderTrimResetButton:          flag(r, inTrimReset),
			FacEngagedFromSwitch:           flag(r, unitName("fac", n, fieldPushButton)),
			FacOppHealthy:                  opp.Discrete.FacHealthy,
			IsUnit1:                        n == 1,
			RudderTrimActuatorHealthy:      flag(r, unitName("fac", n, fieldTrimActHealthy)),
			RudderTravelLimActuatorHealthy: flag(r, unitName("fac", n, fieldTravelActHealthy)),
			SlatsExtended:                  flag(r, inSlatsExtended),
			NoseGearPressed:                flag(r, unitName("lgciu", n, fieldNosePressed)),
			YawDamperHasHydPress:           flag(r, hydName(n)),
		},
		Analog: fac.Analog{
			YawDamperPosDeg:       r.Value(unitName("fac", n, fieldYawDamperPos)),
			RudderTrimPosDeg:      r.Value(unitName("fac", n, fieldRudderTrimPos)),
			RudderTravelLimPosDeg: r.Value(unitName("fac", n, fieldTravelLimPos)),
			LeftSpoilerPosDeg:     r.Value(inSpoilersLeft),
			RightSpoilerPosDeg:    r.Value(inSpoilersRight),
		},
		Bus: fac.BusInputs{
			FacOpp: opp.Bus,
			ADROwn: readADR(r, n),
			ADROpp: readADR(r, o),
			ADR3:   readADR(r, 3),
			IROwn:  readIR(r, n),
			IROpp:  readIR(r, o),
			IR3:    readIR(r, 3),
			FMGCOwn: fac.FMGCBus{
				FacWeightLbs:    r.Word(unitName("fmgc", n, fieldWeight)),
				FacCgPercent:    r.Word(unitName("fmgc", n, fieldCg)),
				FgRadioHeightFt: r.Word(unitName("fmgc", n, fieldRadioHeight)),
				N1LeftPercent:   r.Word(unitName("fmgc", n, fieldN1Left)),
				N1RightPercent:  r.Word(unitName("fmgc", n, fieldN1Right)),
			},
			SFCCOwn: fac.SFCCBus{
				SlatFlapSystemStatusWord: r.Word(unitName("sfcc", n, fieldStatusWord)),
				SlatActualPositionDeg:    r.Word(unitName("sfcc", n, fieldSlatPos)),
				FlapActualPositionDeg:    r.Word(unitName("sfcc", n, fieldFlapPos)),
			},
			LGCIUOwn: fac.LGCIUBus{
				DiscreteWord1: r.Word(unitName("lgciu", n, fieldDiscreteWord1)),
				DiscreteWord2: r.Word(unitName("lgciu", n, fieldDiscreteWord2)),
				DiscreteWord3: r.Word(unitName("lgciu", n, fieldDiscreteWord3)),
			},
			ELAC1: readELAC(r, 1),
			ELAC2: readELAC(r, 2),
		},
	}
}

// pitchInput собирает вход законов тангажа. Воздушные и инерциальные данные
// берутся из выбора источников работающего FAC.
func pitchInput(r bus.Reader, dt, qDot float64, f *fac.Output) pitch.Input {
	l, e := &f.Logic, &f.Envelope
	return pitch.Input{
		Dt:        dt,
		NzG:       l.IR.NzG,
		ThetaDeg:  l.IR.ThetaDeg,
		PhiDeg:    l.IR.PhiDeg,
		QDegS:     l.IR.QDegS,
		QDotDegS2: qDot,
		AlphaDeg:  l.ADR.AlphaDeg,

		EtaDeg:     r.Value(inEtaPos),
		EtaTrimDeg: r.Value(inEtaTrimPos),

		VIasKn:           l.ADR.VIasKn,
		VTasKn:           l.ADR.VTasKn,
		Mach:             l.ADR.Mach,
		HRadioFt:         r.Value(inRadioHeight),
		FlapsHandleIndex: l.FlapHandleIndex,
		SpoilersLeftPos:  r.Value(inSpoilersLeft),
		SpoilersRightPos: r.Value(inSpoilersRight),
		ThrustLever1Deg:  r.Value(unitName("eng", 1, fieldTLA)),
		ThrustLever2Deg:  r.Value(unitName("eng", 2, fieldTLA)),
		VLSKn:            e.VLSKn,

		DeltaEtaPos: block.Clamp(r.Value(inSidestickPitch), -1, 1),

		OnGround:               l.OnGround,
		TrackingModeOn:         l.TrackingModeOn,
		TailstrikeProtectionOn: flag(r, inTailstrike),

		HighAoAProtActive:   flag(r, inHighAoAProt),
		HighSpeedProtActive: flag(r, inHighSpeedProt),
		AlphaProtDeg:        r.Value(inAlphaProt),
		AlphaMaxDeg:         r.Value(inAlphaMax),
		HighSpeedProtHighKn: r.Value(inHSProtHigh),
		HighSpeedProtLowKn:  r.Value(inHSProtLow),

		APThetaCDeg:  r.Value(inAPThetaC),
		AnyAPEngaged: flag(r, unitName("fmgc", 1, fieldAPEngaged)) || flag(r, unitName("fmgc", 2, fieldAPEngaged)),

		ForceFlare:           flag(r, inForceFlare),
		StabilitiesAvailable: l.ADRSource != "",
	}
}

// limitType читает положение РУД как номер режима; неизвестные значения — LimitNone.
func limitType(v float64) thrust.LimitType {
	t := thrust.LimitType(v)
	if t < thrust.LimitNone || t > thrust.LimitTOGA {
		return thrust.LimitNone
	}
	return t
}

func thrustInput(r bus.Reader, dt, hFt float64) thrust.Input {
	return thrust.Input{
		Dt:                  dt,
		HFt:                 hFt,
		OATDegC:             r.Value(inOAT),
		TATDegC:             r.Value(inTAT),
		FlexTemperatureDegC: r.Value(inFlexTemp),
		LimitType:           limitType(r.Value(inLimitType)),
		UseExternalCLB:      flag(r, inUseExternalCLB),
		ExternalCLBPercent:  r.Value(inExternalCLB),
		IdlePercent:         r.Value(inIdle),

		AntiIceEngine1:   flag(r, unitName("eng", 1, fieldAntiIce)),
		AntiIceEngine2:   flag(r, unitName("eng", 2, fieldAntiIce)),
		AntiIceWing:      flag(r, inWingAntiIce),
		AirConditioning1: flag(r, unitName("pack", 1, fieldOn)),
		AirConditioning2: flag(r, unitName("pack", 2, fieldOn)),
	}
}
