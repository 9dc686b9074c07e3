package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HELPIE_CONFIG", "")
	t.Setenv("USER", "ops")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "HELPIE Admin", cfg.Admin.Name)
	require.Equal(t, "ops", cfg.Session.User)
	require.Equal(t, 800*time.Millisecond, cfg.UI.DeleteDelay)
	require.Equal(t, 2500*time.Millisecond, cfg.UI.ToastDuration)
	require.Equal(t, 3500*time.Millisecond, cfg.UI.ActivityToastDuration)
	require.Equal(t, 5, cfg.UI.MaxToasts)
	require.Empty(t, cfg.Metrics.ListenAddr)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[admin]
name = "Ops Desk"

[ui]
delete_delay = "50ms"
max_toasts = 2

[metrics]
listen_addr = "127.0.0.1:9464"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HELPIE_CONFIG", path)
	t.Setenv("HELPIE_SESSION_USER", "night-shift")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Ops Desk", cfg.Admin.Name)
	require.Equal(t, 50*time.Millisecond, cfg.UI.DeleteDelay)
	require.Equal(t, 2, cfg.UI.MaxToasts)
	require.Equal(t, "127.0.0.1:9464", cfg.Metrics.ListenAddr)
	require.Equal(t, "night-shift", cfg.Session.User)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HELPIE_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.UI.DeleteDelay = -time.Second
	require.Error(t, bad.Validate())

	bad = cfg
	bad.UI.ToastDuration = 0
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Log.Level = "loud"
	require.Error(t, bad.Validate())
}
