package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "agdcmeta.yaml"

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultCompareField is the document field compared when none is configured.
const DefaultCompareField = "product.name"

// Environment variables that override file settings.
const (
	EnvOutput       = "AGDCMETA_OUTPUT"
	EnvColor        = "AGDCMETA_COLOR"
	EnvCompareField = "AGDCMETA_COMPARE_FIELD"
)

type Config struct {
	Output       string `yaml:"output"`
	Color        string `yaml:"color"`
	CompareField string `yaml:"compare_field"`
}

// Default returns the settings used when no config file is present.
func Default() *Config {
	return &Config{
		Output:       OutputText,
		Color:        ColorAuto,
		CompareField: DefaultCompareField,
	}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Unset fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", agdcmeta.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from AGDCMETA_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = v
	}
	if v := os.Getenv(EnvCompareField); v != "" {
		c.CompareField = v
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", agdcmeta.ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be %q, %q or %q, got %q", agdcmeta.ErrInvalidConfig, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.CompareField == "" {
		return fmt.Errorf("%w: compare_field must not be empty", agdcmeta.ErrInvalidConfig)
	}
	return nil
}
