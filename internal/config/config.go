// Package config resolves CLI settings. Precedence, lowest first: built-in
// defaults, the YAML config file, PLANCKT_* environment variables, then
// command-line flags (applied by the caller after Load).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/corey/planckt/internal/domain/model"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvModel    = "PLANCKT_MODEL"
	EnvLogLevel = "PLANCKT_LOG_LEVEL"
	EnvColor    = "PLANCKT_COLOR"
	EnvSnapshot = "PLANCKT_SNAPSHOT"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrUnknownConfigField classifies strict YAML parse failures caused by unknown keys.
var ErrUnknownConfigField = errors.New("unknown config field")

// Config holds the resolved CLI settings.
type Config struct {
	Model    string `yaml:"model"`
	LogLevel string `yaml:"log_level"`
	Color    string `yaml:"color"`
	Snapshot string `yaml:"snapshot"` // optional bbolt snapshot queried instead of the embedded table
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:    model.Default,
		LogLevel: "warn",
		Color:    ColorAuto,
	}
}

// Load returns defaults overlaid with the file at path (skipped when path is
// empty) and then the environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		mergeFile(&cfg, file)
	}

	mergeEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Parse YAML with strict mode (unknown fields cause errors)
	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %v", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFile(dst *Config, src *Config) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Snapshot != "" {
		dst.Snapshot = src.Snapshot
	}
}

func mergeEnv(dst *Config) {
	dst.Model = envString(EnvModel, dst.Model)
	dst.LogLevel = envString(EnvLogLevel, dst.LogLevel)
	dst.Color = envString(EnvColor, dst.Color)
	dst.Snapshot = envString(EnvSnapshot, dst.Snapshot)
}

// envString reads key from the environment, keeping current when the
// variable is unset or empty.
func envString(key, current string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return current
}

// Log records the resolved settings at debug level.
func (c Config) Log(logger zerolog.Logger) {
	logger.Debug().
		Str("model", c.Model).
		Str("log_level", c.LogLevel).
		Str("color", c.Color).
		Str("snapshot", c.Snapshot).
		Msg("configuration resolved")
}

// Validate checks values that can be rejected before any lookup runs.
// The model is only checked for presence; lookups report unsupported models.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Model == "" {
		return fmt.Errorf("model is empty")
	}
	return nil
}
