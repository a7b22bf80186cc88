package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvModel, EnvLogLevel, EnvColor, EnvSnapshot} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "lcdm", cfg.Model)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.Snapshot)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "planckt.yaml", `
log_level: debug
color: never
snapshot: /tmp/planck.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lcdm", cfg.Model, "unset keys keep their default")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "/tmp/planck.db", cfg.Snapshot)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "planckt.yml", "color: never\nlog_level: info\n")
	t.Setenv(EnvColor, "always")
	t.Setenv(EnvSnapshot, "/var/lib/planck.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel, "empty/unset env keeps the file value")
	assert.Equal(t, "/var/lib/planck.db", cfg.Snapshot)
}

func TestLoad_UnsupportedModelPassesThrough(t *testing.T) {
	// Model support is decided at lookup time.
	clearEnv(t)
	t.Setenv(EnvModel, "not-a-model")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "not-a-model", cfg.Model)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "empty.yaml", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeConfig(t, "c.yaml", "colour: red\n"))
	assert.ErrorIs(t, err, ErrUnknownConfigField)

	_, err = Load(writeConfig(t, "c.json", `{"color":"never"}`))
	assert.ErrorContains(t, err, "only YAML supported")

	_, err = Load(writeConfig(t, "multi.yaml", "color: never\n---\ncolor: always\n"))
	assert.ErrorContains(t, err, "multiple documents")

	_, err = Load(writeConfig(t, "bad-color.yaml", "color: sometimes\n"))
	assert.ErrorContains(t, err, "invalid color mode")

	_, err = Load(writeConfig(t, "bad-level.yaml", "log_level: loud\n"))
	assert.ErrorContains(t, err, "invalid log level")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read file")
}

func TestConfig_Log(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Log(zerolog.New(&buf).Level(zerolog.DebugLevel))

	assert.Contains(t, buf.String(), `"model":"lcdm"`)
	assert.Contains(t, buf.String(), `"message":"configuration resolved"`)
}
