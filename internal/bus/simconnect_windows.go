//go:build windows

package bus

import (
	"context"
	"fmt"
	"runtime"
	"time"

	sim "github.com/lian/msfs2020-go/simconnect"

	"github.com/flybywiresim/aircraft-sub011/internal/logger"
)

type simReport struct {
	sim.RecvSimobjectDataByType

	Altitude     float64 `name:"INDICATED ALTITUDE" unit:"feet"`
	Mach         float64 `name:"AIRSPEED MACH" unit:"mach"`
	IAS          float64 `name:"AIRSPEED INDICATED" unit:"knots"`
	TAS          float64 `name:"AIRSPEED TRUE" unit:"knots"`
	AoA          float64 `name:"INCIDENCE ALPHA" unit:"degrees"`
	Pitch        float64 `name:"PLANE PITCH DEGREES" unit:"degrees"`
	Bank         float64 `name:"PLANE BANK DEGREES" unit:"degrees"`
	PitchRate    float64 `name:"ROTATION VELOCITY BODY X" unit:"degrees per second"`
	YawRate      float64 `name:"ROTATION VELOCITY BODY Y" unit:"degrees per second"`
	RollRate     float64 `name:"ROTATION VELOCITY BODY Z" unit:"degrees per second"`
	AccelLong    float64 `name:"ACCELERATION BODY Z" unit:"feet per second squared"`
	AccelLat     float64 `name:"ACCELERATION BODY X" unit:"feet per second squared"`
	GForce       float64 `name:"G FORCE" unit:"GForce"`
	RadioHeight  float64 `name:"PLANE ALT ABOVE GROUND MINUS CG" unit:"feet"`
	NoseGround   float64 `name:"CONTACT POINT IS ON GROUND:0" unit:"Bool"`
	LeftGround   float64 `name:"CONTACT POINT IS ON GROUND:1" unit:"Bool"`
	RightGround  float64 `name:"CONTACT POINT IS ON GROUND:2" unit:"Bool"`
	GearDown     float64 `name:"GEAR HANDLE POSITION" unit:"Bool"`
	FlapsIndex   float64 `name:"FLAPS HANDLE INDEX" unit:"number"`
	Weight       float64 `name:"TOTAL WEIGHT" unit:"pounds"`
	CG           float64 `name:"CG PERCENT" unit:"percent over 100"`
	Eng1N1       float64 `name:"TURB ENG N1:1" unit:"Percent"`
	Eng2N1       float64 `name:"TURB ENG N1:2" unit:"Percent"`
	Eng1TLA      float64 `name:"GENERAL ENG THROTTLE LEVER POSITION:1" unit:"Percent"`
	Eng2TLA      float64 `name:"GENERAL ENG THROTTLE LEVER POSITION:2" unit:"Percent"`
	Eng1Running  float64 `name:"GENERAL ENG COMBUSTION:1" unit:"Bool"`
	Eng2Running  float64 `name:"GENERAL ENG COMBUSTION:2" unit:"Bool"`
	OAT          float64 `name:"AMBIENT TEMPERATURE" unit:"celsius"`
	TAT          float64 `name:"TOTAL AIR TEMPERATURE" unit:"celsius"`
	Elevator     float64 `name:"ELEVATOR DEFLECTION" unit:"degrees"`
	ElevatorTrim float64 `name:"ELEVATOR TRIM POSITION" unit:"degrees"`
	Rudder       float64 `name:"RUDDER DEFLECTION" unit:"degrees"`
	RudderTrim   float64 `name:"RUDDER TRIM" unit:"degrees"`
	SpoilersL    float64 `name:"SPOILERS LEFT POSITION" unit:"percent over 100"`
	SpoilersR    float64 `name:"SPOILERS RIGHT POSITION" unit:"percent over 100"`
	Yoke         float64 `name:"YOKE Y POSITION" unit:"position"`
	APMaster     float64 `name:"AUTOPILOT MASTER" unit:"Bool"`
	Slew         float64 `name:"IS SLEW ACTIVE" unit:"Bool"`
	Pause        float64 `name:"SIM DISABLED" unit:"Bool"`
}

// tlaMaxDeg — угол РУД на упоре TOGA; симулятор отдаёт положение в процентах.
const tlaMaxDeg = 45.0

const fpsPerG = 32.174

// SimConnect — шина поверх MSFS SimConnect. Все вызовы SimConnect идут
// из одной горутины на закреплённом потоке ОС; кадр читает Memory.
type SimConnect struct {
	*Memory

	stop    chan struct{}
	stopped chan struct{}
}

// OpenSimConnect подключается к симулятору и ждёт регистрации определения данных.
func OpenSimConnect(ctx context.Context, period time.Duration) (*SimConnect, error) {
	s := &SimConnect{
		Memory:  NewMemory(),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	errCh := make(chan error, 1)
	go s.run(period, errCh)
	select {
	case err := <-errCh:
		if err != nil {
			return nil, err
		}
		return s, nil
	case <-ctx.Done():
		close(s.stop)
		return nil, ctx.Err()
	}
}

func (s *SimConnect) run(period time.Duration, errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(s.stopped)
	log := logger.With("bus.simconnect")

	sc, err := sim.New("fbw-host")
	if err != nil {
		errCh <- fmt.Errorf("simconnect open: %w", err)
		return
	}
	defer sc.Close()

	report := &simReport{}
	if err := sc.RegisterDataDefinition(report); err != nil {
		errCh <- fmt.Errorf("register data definition: %w", err)
		return
	}
	log.Info("connected")
	errCh <- nil

	defineID := sc.GetDefineID(report)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	sc.RequestDataOnSimObjectType(0, defineID, 0, sim.SIMOBJECT_TYPE_USER)

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			sc.RequestDataOnSimObjectType(0, defineID, 0, sim.SIMOBJECT_TYPE_USER)
		default:
			ppData, r1, _ := sc.GetNextDispatch()
			if r1 < 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			switch (*sim.Recv)(ppData).ID {
			case sim.RECV_ID_SIMOBJECT_DATA_BYTYPE:
				s.store((*simReport)(ppData))
			case sim.RECV_ID_EXCEPTION:
				log.Warn("simconnect exception")
			}
		}
	}
}

func (s *SimConnect) store(r *simReport) {
	for name, v := range map[string]float64{
		SimAltitudeFt:     r.Altitude,
		SimMach:           r.Mach,
		SimIasKn:          r.IAS,
		SimTasKn:          r.TAS,
		SimAoADeg:         r.AoA,
		SimPitchDeg:       -r.Pitch,
		SimBankDeg:        -r.Bank,
		SimPitchRateDegS:  -r.PitchRate,
		SimRollRateDegS:   -r.RollRate,
		SimYawRateDegS:    r.YawRate,
		SimAccelLongG:     r.AccelLong / fpsPerG,
		SimAccelLatG:      r.AccelLat / fpsPerG,
		SimGForce:         r.GForce,
		SimRadioHeightFt:  r.RadioHeight,
		SimNoseGearGround: r.NoseGround,
		SimLeftGearGround: r.LeftGround,
		SimRightGearGnd:   r.RightGround,
		SimGearDown:       r.GearDown,
		SimFlapsHandle:    r.FlapsIndex,
		SimWeightLbs:      r.Weight,
		SimCgPercent:      r.CG * 100,
		SimOATDegC:        r.OAT,
		SimTATDegC:        r.TAT,
		SimElevatorDeg:    r.Elevator,
		SimTrimDeg:        r.ElevatorTrim,
		SimRudderDeg:      r.Rudder,
		SimRudderTrimDeg:  r.RudderTrim,
		SimSpoilersLeft:   r.SpoilersL * 100,
		SimSpoilersRight:  r.SpoilersR * 100,
		SimStickPitch:     -r.Yoke,
		SimAPEngaged:      r.APMaster,
		SimSlew:           r.Slew,
		SimPause:          r.Pause,
	} {
		s.Set(name, v)
	}
	s.SetIndexed(SimN1Pct, 1, r.Eng1N1)
	s.SetIndexed(SimN1Pct, 2, r.Eng2N1)
	s.SetIndexed(SimTLADeg, 1, r.Eng1TLA/100*tlaMaxDeg)
	s.SetIndexed(SimTLADeg, 2, r.Eng2TLA/100*tlaMaxDeg)
	s.SetIndexed(SimCombustion, 1, r.Eng1Running)
	s.SetIndexed(SimCombustion, 2, r.Eng2Running)
}

// Close останавливает горутину SimConnect и закрывает соединение.
func (s *SimConnect) Close() error {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.stopped
	return nil
}
