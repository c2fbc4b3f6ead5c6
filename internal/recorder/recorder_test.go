package recorder

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
	"github.com/flybywiresim/aircraft-sub011/internal/fac"
	"github.com/flybywiresim/aircraft-sub011/internal/mode"
	"github.com/flybywiresim/aircraft-sub011/internal/pitch"
	"github.com/flybywiresim/aircraft-sub011/internal/thrust"
)

func open(t *testing.T, every int) *Recorder {
	t.Helper()
	r, err := Open(filepath.Join(t.TempDir(), "frames.db"), every)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, r.Close()) })
	return r
}

func frame(seq uint64) Frame {
	f := Frame{
		Seq:      seq,
		TimeNs:   int64(seq) * 33_333_333,
		Dt:       1.0 / 30,
		Variant:  "a320",
		PitchLaw: "normal",
		Pitch:    pitch.Output{EtaDeg: -1.5, InFlight: 1, TrimOwner: mode.TrimAutomatic},
		Thrust:   thrust.Output{CLBPercent: 89.2, TOGAPercent: 94.1},
	}
	f.FAC[0].Envelope.VLSKn = 131
	f.FAC[0].Logic.ADRSource = "own"
	f.FAC[0].Logic.YawDamper = mode.Engagement{CanEngage: true, HasPriority: true, Engaged: true}
	f.FAC[1].Bus.VLSKn = arinc.NewWord(arinc.NormalOperation, 131)
	f.FAC[1].Discrete = fac.DiscreteOutputs{FacHealthy: true}
	return f
}

func TestEncodeDecode(t *testing.T) {
	r := open(t, 1)
	f := frame(7)
	b, err := r.Encode(f)
	require.NoError(t, err)
	got, err := r.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = r.Decode([]byte("not zstd"))
	assert.ErrorContains(t, err, "decompress frame")
}

func TestRecorder_RunDrainsQueue(t *testing.T) {
	r := open(t, 2)
	for seq := uint64(0); seq < 6; seq++ {
		accepted := r.Submit(frame(seq))
		assert.Equal(t, seq%2 == 0, accepted, "seq %d", seq)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx))

	n, err := r.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	frames, err := r.Frames(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, uint64(2), frames[0].Seq)
	assert.Equal(t, frame(4), frames[1])
}

func TestRecorder_QueueFull(t *testing.T) {
	r := open(t, 1)
	for seq := uint64(0); seq < queueLen; seq++ {
		require.True(t, r.Submit(frame(seq)))
	}
	assert.False(t, r.Submit(frame(queueLen)))
	assert.Equal(t, uint64(1), r.Dropped())
}
