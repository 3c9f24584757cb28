package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "sqlite", cfg.State.Backend)
	require.Equal(t, 30*time.Second, cfg.State.AutosaveInterval)
	require.Equal(t, 32, cfg.UI.SidePanelWidth)
	require.True(t, cfg.UI.TransparentBackground)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[state]
backend = "file"
autosave_interval = "5s"

[ui]
theme = "light"
window_width = 60
`), 0o600))
	t.Setenv("DEMOHOST_UI_WINDOW_WIDTH", "70")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "file", cfg.State.Backend)
	require.Equal(t, 5*time.Second, cfg.State.AutosaveInterval)
	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, 70, cfg.UI.WindowWidth)
	require.Equal(t, 32, cfg.UI.SidePanelWidth)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[state\nbackend = "), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "read config")
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.State.Backend = "file"
	want.UI.RepaintInterval = 250 * time.Millisecond
	want.Log.Level = "debug"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestPathHonorsEnv(t *testing.T) {
	t.Setenv("DEMOHOST_CONFIG", "/tmp/elsewhere.toml")
	require.Equal(t, "/tmp/elsewhere.toml", Path())
}
