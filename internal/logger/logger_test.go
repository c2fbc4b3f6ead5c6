package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_RotatingFile(t *testing.T) {
	dir := t.TempDir()
	c, err := Setup(dir, "debug")
	require.NoError(t, err)

	With("test").Debug("frame", "seq", 1)
	Info("variant=%s", "a320")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(filepath.Join(dir, "fbw-host.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "component=test")
	assert.Contains(t, string(b), "fbw-host: variant=a320")
}

func TestSetup_Quiet(t *testing.T) {
	dir := t.TempDir()
	c, err := Setup(dir, "info")
	require.NoError(t, err)
	defer c.Close()

	Quiet = true
	defer func() { Quiet = false }()
	Info("hidden")
	Error("shown")

	b, err := os.ReadFile(filepath.Join(dir, "fbw-host.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "fbw-host: shown")
}

func TestSetup_BadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.ErrorContains(t, err, `log level "loud"`)

	c, err := Setup("", "warn")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
}
