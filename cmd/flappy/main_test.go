package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")

	logger, closeLog, err := newLogger(path, "debug", nil, "flappy")
	require.NoError(t, err)
	logger.Debug("mode changed", "to", "playing")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode changed")
	assert.Contains(t, string(data), "flappy")
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, closeLog, err := newLogger("", "warn", &buf, "flappy")
	require.NoError(t, err)
	defer closeLog() //nolint:errcheck

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	_, _, err := newLogger("", "loud", &bytes.Buffer{}, "flappy")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	require.NoError(t, configCmd.RunE(configCmd, nil))
	assert.Equal(t, string(config.DefaultYAML()), out.String())
}
