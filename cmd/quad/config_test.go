package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Subdivisions)
	assert.Equal(t, uint(53), cfg.Precision)
	assert.Equal(t, "res/velocities.txt", cfg.Velocities.File)
	assert.Equal(t, 100, cfg.Velocities.Subdivisions)
	assert.Equal(t, []int{10, 100, 1000}, cfg.Converge.Levels)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	path := writeConfig(t, `
subdivisions: 40
precision: 128
log_level: warn
velocities:
  file: data/run1.tsv
  rule: simpson
converge:
  rule: simpson
  levels: [4, 8, 16]
  workers: 2
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Subdivisions)
	assert.Equal(t, uint(128), cfg.Precision)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "data/run1.tsv", cfg.Velocities.File)
	assert.Equal(t, "simpson", cfg.Velocities.Rule)
	assert.Equal(t, 100, cfg.Velocities.Subdivisions, "unset keys keep defaults")
	assert.Equal(t, []int{4, 8, 16}, cfg.Converge.Levels)
	assert.Equal(t, 2, cfg.Converge.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero subdivisions", "subdivisions: 0\n"},
		{"bad rule", "velocities:\n  rule: midpoint\n"},
		{"bad log level", "log_level: chatty\n"},
		{"not yaml", "subdivisions: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
