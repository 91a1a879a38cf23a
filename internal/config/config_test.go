package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("SPLITWIZARD_CONFIG", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "splitwizard", "splitwizard.db"), cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "$", cfg.UI.CurrencySymbol)
	assert.Equal(t, 3*time.Second, cfg.UI.AlertTimeout)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoadFromFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[storage]
path = "/tmp/bills.db"

[ui]
currency_symbol = "S$"
alert_timeout = "5s"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bills.db", cfg.Storage.Path)
	assert.Equal(t, "S$", cfg.UI.CurrencySymbol)
	assert.Equal(t, 5*time.Second, cfg.UI.AlertTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	t.Setenv("SPLITWIZARD_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestDotEnvIsLoaded(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".env"), []byte("SPLITWIZARD_METRICS_TEXTFILE=/tmp/sw.prom\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SPLITWIZARD_METRICS_TEXTFILE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sw.prom", cfg.Metrics.Textfile)
}

func TestExplicitMissingFileIsAnError(t *testing.T) {
	home := isolate(t)

	_, err := Load(filepath.Join(home, "missing.toml"))
	assert.Error(t, err)
}
