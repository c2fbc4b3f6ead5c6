package fbwhost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iancoleman/orderedmap"
	"golang.org/x/sync/errgroup"

	"github.com/flybywiresim/aircraft-sub011/internal/bus"
	"github.com/flybywiresim/aircraft-sub011/internal/config"
	"github.com/flybywiresim/aircraft-sub011/internal/hw"
	"github.com/flybywiresim/aircraft-sub011/internal/logger"
	"github.com/flybywiresim/aircraft-sub011/internal/recorder"
	"github.com/flybywiresim/aircraft-sub011/internal/rt"
	pkgconfig "github.com/flybywiresim/aircraft-sub011/pkg/config"
)

// statusEvery — период сводки в журнале.
const statusEvery = 10 * time.Second

// ErrNoConfig — RunDaemon вызван без конфига.
var ErrNoConfig = errors.New("fbwhost: конфиг не задан")

// RunDaemon запускает цикл кадров до отмены ctx. Используется из cmd/fbw-host
// и при встраивании хоста в другие процессы.
func RunDaemon(ctx context.Context, cfg *pkgconfig.Config, quiet bool) error {
	if cfg == nil {
		return ErrNoConfig
	}
	logger.Quiet = quiet
	c := toInternalConfig(cfg)
	if err := c.Normalize(); err != nil {
		return err
	}
	closer, err := logger.Setup(c.Log.Dir, c.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.With("host")

	cal, err := config.LoadCalibration(c.Aircraft.Variant)
	if err != nil {
		return err
	}
	if c.RT.LockMemory {
		if err := rt.LockMemory(); err != nil {
			log.Warn("lock memory", "err", err)
		}
	}
	maxDt, err := c.MaxDt()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	loop := &frameLoop{
		host:   NewHost(cal),
		clock:  rt.NewClock(),
		period: c.FramePeriod(),
		maxDt:  maxDt.Seconds(),
		cpu:    c.RT.CPU,
		log:    log,
	}

	switch c.Bus.Kind {
	case "serial":
		s, err := bus.OpenSerial(c.Bus.Port, c.Bus.Baud)
		if err != nil {
			return err
		}
		Preset(s.Memory)
		loop.bus, loop.serial = s, s
		loop.sensors = &Sensors{EchoActuators: true}
		g.Go(func() error { return s.Run(ctx) })
	case "simconnect":
		s, err := bus.OpenSimConnect(ctx, loop.period)
		if err != nil {
			return fmt.Errorf("simconnect: %w", err)
		}
		Preset(s.Memory)
		loop.bus = s
		loop.sensors = &Sensors{ADIRU: true}
	default:
		m := bus.NewMemory()
		Preset(m)
		loop.bus = m
		loop.sensors = &Sensors{ADIRU: true, EchoActuators: true}
	}
	defer loop.bus.Close()

	if c.Hardware.StickI2C != "" {
		st, err := hw.OpenStick(c.Hardware.StickI2C, c.Hardware.StickAddr, hw.DefaultCalibration())
		if err != nil {
			return err
		}
		defer st.Close()
		loop.stick = st
	}

	if c.Recorder.Path != "" {
		rec, err := recorder.Open(c.Recorder.Path, c.Recorder.Every)
		if err != nil {
			return err
		}
		defer rec.Close()
		loop.rec = rec
		g.Go(func() error { return rec.Run(ctx) })
	}

	logger.Info("variant=%s bus=%s rate=%gHz max_dt=%v recorder=%q",
		c.Aircraft.Variant, c.Bus.Kind, c.Frame.RateHz, maxDt, c.Recorder.Path)

	g.Go(func() error { return loop.run(ctx) })
	return g.Wait()
}

// RunOnce прогоняет frames кадров на стоящем самолёте без оборудования и
// возвращает снимок шины.
func RunOnce(cfg *pkgconfig.Config, frames int) (*orderedmap.OrderedMap, error) {
	c := toInternalConfig(cfg)
	if c == nil {
		c = config.Default()
	}
	if err := c.Normalize(); err != nil {
		return nil, err
	}
	cal, err := config.LoadCalibration(c.Aircraft.Variant)
	if err != nil {
		return nil, err
	}
	m := bus.NewMemory()
	Preset(m)
	loop := &frameLoop{
		host:    NewHost(cal),
		bus:     m,
		sensors: &Sensors{ADIRU: true, EchoActuators: true},
		log:     logger.With("host"),
	}
	dt := c.FramePeriod()
	for i := 0; i < frames; i++ {
		loop.step(dt.Seconds(), int64(i)*int64(dt))
	}
	return m.Snapshot(), nil
}

type frameLoop struct {
	host    *Host
	bus     bus.Bus
	sensors *Sensors
	stick   *hw.Stick
	serial  *bus.Serial
	rec     *recorder.Recorder

	clock  *rt.Clock
	period time.Duration
	maxDt  float64
	cpu    *int
	log    *slog.Logger

	frames    uint64
	ioErrors  uint64
	lastError time.Time
}

func (l *frameLoop) run(ctx context.Context) error {
	if l.cpu != nil {
		if err := rt.PinCPU(*l.cpu); err != nil {
			l.log.Warn("pin cpu", "cpu", *l.cpu, "err", err)
		}
	}
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()
	status := time.NewTicker(statusEvery)
	defer status.Stop()

	fallback := l.period.Seconds()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-status.C:
			l.status()
		case <-ticker.C:
			l.step(l.clock.Dt(fallback, l.maxDt), rt.Monotonic())
		}
	}
}

// step — один кадр: смоделированные LRU, ручка, вычислители, передача и запись.
func (l *frameLoop) step(dt float64, tNs int64) recorder.Frame {
	last := l.host.Last()
	l.sensors.Update(l.bus, &last, dt)
	if l.stick != nil {
		pos, err := l.stick.Read()
		if err != nil {
			l.ioError("stick", err)
		} else {
			l.bus.Set(inSidestickPitch, pos)
		}
	}

	f := l.host.Step(l.bus, dt, tNs)
	l.frames++

	if l.serial != nil {
		for i := range f.FAC {
			if err := l.serial.Transmit(facChannels[i], facRaw(&f.FAC[i])); err != nil {
				l.ioError("transmit", err)
			}
		}
	}
	if l.rec != nil {
		l.rec.Submit(f)
	}
	return f
}

// ioError считает ошибку ввода-вывода кадра и пишет в журнал не чаще раза в секунду.
func (l *frameLoop) ioError(op string, err error) {
	l.ioErrors++
	if time.Since(l.lastError) < time.Second {
		return
	}
	l.lastError = time.Now()
	l.log.Error(op, "err", err, "total", l.ioErrors)
}

func (l *frameLoop) status() {
	args := []any{"frames", l.frames, "io_errors", l.ioErrors}
	if l.serial != nil {
		rx, bad, parity := l.serial.Stats()
		args = append(args, "rx_frames", rx, "bad_frames", bad, "bad_parity", parity)
	}
	if l.rec != nil {
		args = append(args, "rec_dropped", l.rec.Dropped())
	}
	l.log.Debug("status", args...)
}
