package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ROUTINE_DAYS", "")
	t.Setenv("ROUTINE_SEED", "")
	t.Setenv("ROUTINE_LOG_LEVEL", "")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Days)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadConfig_BadIntegerIsDeferredWarning(t *testing.T) {
	t.Setenv("ROUTINE_DAYS", "three")
	t.Setenv("ROUTINE_SEED", "42")
	t.Setenv("ROUTINE_LOG_LEVEL", "debug")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Days)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "ROUTINE_DAYS")
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Setenv("ROUTINE_DAYS", "-2")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("ROUTINE_DAYS", "2")
	t.Setenv("ROUTINE_LOG_LEVEL", "loud")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestRun_WritesTranscriptAndDatabase(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		Days:           2,
		Seed:           7,
		DBPath:         filepath.Join(dir, "data", "routine.db"),
		TranscriptPath: filepath.Join(dir, "transcript.txt"),
		LogLevel:       slog.LevelInfo,
	}

	require.NoError(t, run(cfg))

	data, err := os.ReadFile(cfg.TranscriptPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 48)
	assert.True(t, strings.HasPrefix(lines[0], "00:00 - "))
	assert.True(t, strings.HasPrefix(lines[47], "23:00 - "))

	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err)
}
