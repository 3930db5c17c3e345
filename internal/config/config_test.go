package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "#4A90E2", cfg.DefaultColor)
	require.True(t, cfg.ConfirmDelete)
	require.False(t, cfg.ShowPreviousDays)
	require.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoadFromYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".timeline")
	require.NoError(t, os.MkdirAll(dir, 0755))
	yaml := "default_color: \"#FF6B6B\"\nshow_previous_days: true\nlog_level: DEBUG\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "#FF6B6B", cfg.DefaultColor)
	require.True(t, cfg.ShowPreviousDays)
	require.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestEnvOverridesYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".timeline")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: DEBUG\n"), 0644))

	t.Setenv("TIMELINE_LOG_LEVEL", "ERROR")
	t.Setenv("TIMELINE_COMPACT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ERROR", cfg.LogLevel)
	require.True(t, cfg.Compact)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	cfg.Compact = true
	cfg.DefaultColor = "#95E1A3"
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	require.True(t, got.Compact)
	require.Equal(t, "#95E1A3", got.DefaultColor)
}
