package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacube-go/agdcmeta/pkg/agdcmeta"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `output: json
color: never
compare_field: platform.code
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "platform.code", cfg.CompareField)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output: json\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, DefaultCompareField, cfg.CompareField)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.True(t, errors.Is(err, agdcmeta.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvOutput, OutputJSON)
	t.Setenv(EnvColor, ColorAlways)
	t.Setenv(EnvCompareField, "id")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, "id", cfg.CompareField)
}

func TestApplyEnv_UnsetKeepsValues(t *testing.T) {
	t.Setenv(EnvOutput, "")
	t.Setenv(EnvColor, "")
	t.Setenv(EnvCompareField, "")

	cfg := &Config{Output: OutputJSON, Color: ColorNever, CompareField: "x"}
	cfg.ApplyEnv()

	assert.Equal(t, &Config{Output: OutputJSON, Color: ColorNever, CompareField: "x"}, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad output", func(c *Config) { c.Output = "xml" }, true},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, true},
		{"empty compare field", func(c *Config) { c.CompareField = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, agdcmeta.ErrInvalidConfig), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
