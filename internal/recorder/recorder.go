// Package recorder — запись кадров вычислителей в SQLite для разбора и
// воспроизведения. Кадр кодируется msgpack и сжимается zstd.
package recorder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

// queueLen — кадров в очереди к писателю; при переполнении кадр теряется,
// цикл кадров не ждёт диска.
const queueLen = 256

// Frame — выходы всех вычислителей за один кадр.
type Frame struct {
	Seq      uint64  `msgpack:"seq"`
	TimeNs   int64   `msgpack:"t"`
	Dt       float64 `msgpack:"dt"`
	Variant  string  `msgpack:"variant"`
	PitchLaw string  `msgpack:"pitch_law"`

	FAC    [2]fac.Output `msgpack:"fac"`
	Pitch  pitch.Output  `msgpack:"pitch"`
	Thrust thrust.Output `msgpack:"thrust"`
}

type Recorder struct {
	db    *sql.DB
	enc   *zstd.Encoder
	dec   *zstd.Decoder
	every uint64
	queue chan Frame

	dropped atomic.Uint64
}

// Open открывает (или создаёт) базу кадров. every — писать каждый N-й кадр.
func Open(path string, every int) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open recorder db: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS frames (
		seq INTEGER PRIMARY KEY,
		t INTEGER NOT NULL,
		dt REAL NOT NULL,
		payload BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	if every < 1 {
		every = 1
	}
	return &Recorder{
		db:    db,
		enc:   enc,
		dec:   dec,
		every: uint64(every),
		queue: make(chan Frame, queueLen),
	}, nil
}

// Submit ставит кадр в очередь без ожидания. Возвращает false, если кадр
// пропущен по прореживанию или из-за полной очереди.
func (r *Recorder) Submit(f Frame) bool {
	if f.Seq%r.every != 0 {
		return false
	}
	select {
	case r.queue <- f:
		return true
	default:
		r.dropped.Add(1)
		return false
	}
}

// Dropped — кадры, потерянные из-за полной очереди.
func (r *Recorder) Dropped() uint64 { return r.dropped.Load() }

// Run пишет кадры из очереди до отмены ctx, затем дописывает остаток очереди.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case f := <-r.queue:
			if err := r.write(f); err != nil {
				return err
			}
		case <-ctx.Done():
			return r.drain()
		}
	}
}

func (r *Recorder) drain() error {
	for {
		select {
		case f := <-r.queue:
			if err := r.write(f); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *Recorder) write(f Frame) error {
	payload, err := r.Encode(f)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(`INSERT OR REPLACE INTO frames (seq, t, dt, payload) VALUES (?, ?, ?, ?)`,
		int64(f.Seq), f.TimeNs, f.Dt, payload); err != nil {
		return fmt.Errorf("insert frame %d: %w", f.Seq, err)
	}
	return nil
}

// Encode — msgpack + zstd.
func (r *Recorder) Encode(f Frame) ([]byte, error) {
	b, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return r.enc.EncodeAll(b, nil), nil
}

func (r *Recorder) Decode(payload []byte) (Frame, error) {
	b, err := r.dec.DecodeAll(payload, nil)
	if err != nil {
		return Frame{}, fmt.Errorf("decompress frame: %w", err)
	}
	var f Frame
	if err := msgpack.Unmarshal(b, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	return f, nil
}

// Frames читает до limit кадров начиная с seq >= from.
func (r *Recorder) Frames(ctx context.Context, from uint64, limit int) ([]Frame, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM frames WHERE seq >= ? ORDER BY seq LIMIT ?`, int64(from), limit)
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	defer rows.Close()

	var out []Frame
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		f, err := r.Decode(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Count — число записанных кадров.
func (r *Recorder) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM frames`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count frames: %w", err)
	}
	return n, nil
}

func (r *Recorder) Close() error {
	r.dec.Close()
	return errors.Join(r.enc.Close(), r.db.Close())
}
