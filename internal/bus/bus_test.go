package bus

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flybywiresim/aircraft-sub011/internal/arinc"
)

func TestMemory(t *testing.T) {
	m := NewMemory()
	m.Set("b", 2)
	m.Set("a", 1)
	m.SetIndexed(SimN1Pct, 2, 85)
	m.SetBool("flag", true)
	m.SetWord("adr_1.mach", arinc.NewWord(arinc.NormalOperation, 0.78))

	assert.Equal(t, 2.0, m.Value("b"))
	assert.Equal(t, 85.0, m.ValueIndexed(SimN1Pct, 2))
	assert.Equal(t, 1.0, m.Value("flag"))
	assert.Zero(t, m.Value("missing"))

	w := m.Word("adr_1.mach")
	assert.True(t, w.Valid())
	assert.Equal(t, 0.78, w.Data)
	assert.True(t, m.Word("missing").SSM.IsFailed())

	snap := m.Snapshot()
	assert.Equal(t, []string{"a", "b", "flag", "sim.n1:2", "adr_1.mach"}, snap.Keys())

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"ssm": "normal_operation", "data": 0.78}, decoded["adr_1.mach"])
}

func TestDefaultRoutes(t *testing.T) {
	routes := DefaultRoutes()
	assert.Len(t, routes, 3*(len(adrWords)+len(irWords)))

	seen := map[routeKey]bool{}
	for _, r := range routes {
		k := routeKey{r.Channel, r.Label}
		assert.False(t, seen[k], "duplicate route %v", k)
		seen[k] = true
	}
	assert.Equal(t, "adr_3.airspeed_computed", ADRName(3, ADRCas))
	assert.Equal(t, "ir_2.body_yaw_rate", IRName(2, IRBodyYawRate))
}

type stream struct {
	r *bytes.Reader
	w bytes.Buffer
}

func (s *stream) Read(b []byte) (int, error)  { return s.r.Read(b) }
func (s *stream) Write(b []byte) (int, error) { return s.w.Write(b) }
func (s *stream) Close() error                { return nil }

func TestSerial_Run(t *testing.T) {
	good := arinc.EncodeFrame(arinc.Frame{Channel: 1, Words: []arinc.Raw{
		arinc.FromBNR(0o206, 250, 1.0/16, arinc.NormalOperation),
		arinc.FromBNR(0o377, 1, 1, arinc.NormalOperation), // нет маршрута
		arinc.FromBNR(0o205, 0.5, 1.0/4096, arinc.NormalOperation) ^ (1 << 31),
	}})
	bad := arinc.EncodeFrame(arinc.Frame{Channel: 4, Words: []arinc.Raw{
		arinc.FromBNR(0o330, 3, 0.01, arinc.NormalOperation),
	}})
	bad[len(bad)-1] ^= 0xff
	ir := arinc.EncodeFrame(arinc.Frame{Channel: 5, Words: []arinc.Raw{
		arinc.FromBNR(0o330, -2.5, 0.01, arinc.NoComputedData),
	}})

	var buf []byte
	buf = append(buf, good...)
	buf = append(buf, bad...)
	buf = append(buf, ir...)
	s := NewSerial(arinc.NewPort(&stream{r: bytes.NewReader(buf)}), DefaultRoutes())

	require.NoError(t, s.Run(context.Background()))

	cas := s.Word(ADRName(1, ADRCas))
	assert.True(t, cas.Valid())
	assert.Equal(t, 250.0, cas.Data)
	assert.True(t, s.Word(ADRName(1, ADRMach)).SSM.IsFailed(), "word with bad parity must be dropped")
	assert.True(t, s.Word(IRName(1, IRBodyYawRate)).SSM.IsFailed(), "frame with bad checksum must be dropped")

	yaw := s.Word(IRName(2, IRBodyYawRate))
	assert.Equal(t, arinc.NoComputedData, yaw.SSM)
	assert.InDelta(t, -2.5, yaw.Data, 1e-9)

	frames, badFrames, parity := s.Stats()
	assert.Equal(t, uint64(2), frames)
	assert.Equal(t, uint64(1), badFrames)
	assert.Equal(t, uint64(1), parity)
}

func TestSerial_Transmit(t *testing.T) {
	st := &stream{r: bytes.NewReader(nil)}
	s := NewSerial(arinc.NewPort(st), nil)
	words := []arinc.Raw{arinc.FromBNR(0o206, 120, 1.0/16, arinc.NormalOperation)}
	require.NoError(t, s.Transmit(7, words))

	f, err := arinc.DecodeFrame(st.w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(7), f.Channel)
	assert.Equal(t, words, f.Words)
}
