package bus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/logger"
)

type routeKey struct {
	channel, label uint8
}

// Serial — шина поверх адаптера ARINC-429: приёмник раскладывает принятые
// слова по именам, значения и выходы хранятся в Memory.
type Serial struct {
	*Memory

	port   *arinc.Port
	routes map[routeKey]Route
	log    *slog.Logger

	frames    atomic.Uint64
	badFrames atomic.Uint64
	badParity atomic.Uint64
}

func NewSerial(port *arinc.Port, routes []Route) *Serial {
	s := &Serial{
		Memory: NewMemory(),
		port:   port,
		routes: make(map[routeKey]Route, len(routes)),
		log:    logger.With("bus.serial"),
	}
	for _, r := range routes {
		s.routes[routeKey{r.Channel, r.Label}] = r
	}
	return s
}

// OpenSerial открывает порт адаптера с маршрутами по умолчанию.
func OpenSerial(device string, baud int) (*Serial, error) {
	p, err := arinc.Open(device, baud)
	if err != nil {
		return nil, err
	}
	return NewSerial(p, DefaultRoutes()), nil
}

// Run читает кадры до отмены ctx или закрытия порта. Битые кадры и слова
// с ошибкой чётности пропускаются.
func (s *Serial) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = s.port.Close() })
	defer stop()

	for {
		f, err := s.port.ReadFrame()
		switch {
		case err == nil:
		case errors.Is(err, arinc.ErrChecksum), errors.Is(err, arinc.ErrShortFrame), errors.Is(err, arinc.ErrSync):
			s.badFrames.Add(1)
			s.log.Debug("drop frame", "err", err)
			continue
		case ctx.Err() != nil, errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("read arinc frame: %w", err)
		}
		s.frames.Add(1)
		s.apply(f)
	}
}

func (s *Serial) apply(f arinc.Frame) {
	for _, raw := range f.Words {
		if !raw.ParityOK() {
			s.badParity.Add(1)
			continue
		}
		r, ok := s.routes[routeKey{f.Channel, raw.Label()}]
		if !ok {
			continue
		}
		s.SetWord(r.Name, raw.Decode(r.Resolution))
	}
}

// Transmit отправляет слова на передающий канал адаптера.
func (s *Serial) Transmit(channel uint8, words []arinc.Raw) error {
	if err := s.port.WriteFrame(arinc.Frame{Channel: channel, Words: words}); err != nil {
		return fmt.Errorf("write arinc frame: %w", err)
	}
	return nil
}

// Stats — принятые кадры, отброшенные кадры, слова с ошибкой чётности.
func (s *Serial) Stats() (frames, bad, parity uint64) {
	return s.frames.Load(), s.badFrames.Load(), s.badParity.Load()
}

func (s *Serial) Close() error { return s.port.Close() }
