package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "WARN", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.File)
	assert.Equal(t, 10, cfg.FileMaxSizeMB)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ABILITYROLL_LOG_LEVEL", "debug")
	t.Setenv("ABILITYROLL_LOG_FORMAT", "json")
	t.Setenv("ABILITYROLL_LOG_FILE_MAX_BACKUPS", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 7, cfg.FileMaxBackups)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("ABILITYROLL_LOG_FILE_MAX_SIZE_MB", "lots")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("bogus"))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(Config{Level: "INFO", Format: "text"}, &buf)
	defer closer.Close()

	log.Debug("hidden")
	log.Info("shown", "rule", "ThreeDSix")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown rule=ThreeDSix")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, closer := New(Config{Level: "DEBUG", Format: "json"}, &buf)
	defer closer.Close()

	log.Debug("simulated", "iterations", 10)
	assert.Contains(t, buf.String(), `"iterations":10`)
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	var buf bytes.Buffer
	log, closer := New(Config{Level: "INFO", File: path, FileMaxSizeMB: 1}, &buf)

	log.With("rule", "FourKeepThree").Info("done")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "rule=FourKeepThree")
	assert.Contains(t, buf.String(), "rule=FourKeepThree")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
}
