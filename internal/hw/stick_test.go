package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestCalibration_Position(t *testing.T) {
	c := DefaultCalibration()
	cases := []struct {
		name string
		raw  int16
		want float64
	}{
		{"center", 13200, 0},
		{"inside deadband", 13200 + 200, 0},
		{"half forward", 13200 + 6500, (0.5 - 0.02) / 0.98},
		{"half aft", 13200 - 6500, -(0.5 - 0.02) / 0.98},
		{"beyond stop", 32767, 1},
		{"below stop", -100, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, c.Position(tc.raw), 1e-9)
		})
	}

	c.Invert = true
	assert.InDelta(t, -(0.5-0.02)/0.98, c.Position(13200+6500), 1e-9)
}

func TestStick_Read(t *testing.T) {
	const addr = 0x48
	bus := &i2ctest.Playback{Ops: []i2ctest.IO{
		{Addr: addr, W: []byte{regConfig, 0x42, 0xE3}},
		{Addr: addr, W: []byte{regConversion}, R: []byte{0x4D, 0x0B}}, // 19723
		{Addr: addr, W: []byte{regConversion}, R: []byte{0x33, 0x90}}, // 13200
	}}
	defer func() { assert.NoError(t, bus.Close()) }()

	s, err := NewStick(bus, addr, DefaultCalibration())
	require.NoError(t, err)

	pos, err := s.Read()
	require.NoError(t, err)
	assert.InDelta(t, ((19723.0-13200)/13000-0.02)/0.98, pos, 1e-9)

	pos, err = s.Read()
	require.NoError(t, err)
	assert.Zero(t, pos)
	assert.NoError(t, s.Close())
}

func TestStick_ConfigError(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	_, err := NewStick(bus, 0x48, DefaultCalibration())
	assert.ErrorContains(t, err, "stick adc config")
}
