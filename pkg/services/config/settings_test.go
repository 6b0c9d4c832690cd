package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearSettingsEnv blanks every ORDER_CALC_* key; viper treats empty values as unset.
func clearSettingsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ORDER_CALC_CURRENCY_SYMBOL",
		"ORDER_CALC_LOG_LEVEL",
		"ORDER_CALC_PROFILES_PATH",
		"ORDER_CALC_SERVER_HOST",
		"ORDER_CALC_SERVER_PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadSettings_NoFile_UsesDefaults(t *testing.T) {
	// Given
	clearSettingsEnv(t)

	// When
	settings, err := LoadSettings("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "£", settings.CurrencySymbol)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.Equal(t, "localhost:8080", settings.Server.Addr())
	assert.NotEmpty(t, settings.ProfilesPath)
}

func TestLoadSettings_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	clearSettingsEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `currency_symbol: "$"
log_level: debug
profiles_path: /tmp/profiles
server:
  host: 0.0.0.0
  port: 9090`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	settings, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "$", settings.CurrencySymbol)
	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "/tmp/profiles", settings.ProfilesPath)
	assert.Equal(t, "0.0.0.0:9090", settings.Server.Addr())
}

func TestLoadSettings_EnvironmentOverridesDefaults(t *testing.T) {
	// Given
	clearSettingsEnv(t)
	t.Setenv("ORDER_CALC_CURRENCY_SYMBOL", "€")
	t.Setenv("ORDER_CALC_SERVER_PORT", "9191")

	// When
	settings, err := LoadSettings("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "€", settings.CurrencySymbol)
	assert.Equal(t, 9191, settings.Server.Port)
}

func TestLoadSettings_InvalidLogLevel_ReturnsError(t *testing.T) {
	// Given
	clearSettingsEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud"), 0o644))

	// When
	_, err := LoadSettings(path)

	// Then
	assert.ErrorContains(t, err, "invalid settings")
}

func TestLoadSettings_MissingFile_ReturnsError(t *testing.T) {
	// Given
	clearSettingsEnv(t)

	// When
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))

	// Then
	assert.ErrorContains(t, err, "failed to read config file")
}
