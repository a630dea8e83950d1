package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeConfig(t, "stress.toml", `
duration = "2s"
entities = 42
max_components = 3

[logging]
format = "json"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Duration)
	assert.Equal(t, 42, cfg.Entities)
	assert.Equal(t, 50, cfg.Systems, "unset keys keep their defaults")
	assert.Equal(t, 3, cfg.MaxComponents)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeConfig(t, "stress.yaml", `
duration: 1m
systems: 7
seed: 99
logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Duration)
	assert.Equal(t, 7, cfg.Systems)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = LoadConfig(writeConfig(t, "stress.json", `{}`))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = LoadConfig(writeConfig(t, "broken.toml", `entities = [`))
	assert.ErrorContains(t, err, "parse config")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"negative entities", func(c *Config) { c.Entities = -1 }},
		{"no systems", func(c *Config) { c.Systems = 0 }},
		{"too many components", func(c *Config) { c.MaxComponents = componentKinds + 1 }},
		{"no components", func(c *Config) { c.MaxComponents = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json", ""} {
		log, err := newLogger(LoggingConfig{Level: "warn", Format: format})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	}

	_, err := newLogger(LoggingConfig{Level: "loud", Format: "console"})
	assert.ErrorContains(t, err, "logging level")

	_, err = newLogger(LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "logging format")
}
