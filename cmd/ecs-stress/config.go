package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Duration      time.Duration `toml:"duration" yaml:"duration"`
	Entities      int           `toml:"entities" yaml:"entities"`
	Systems       int           `toml:"systems" yaml:"systems"`
	MaxComponents int           `toml:"max_components" yaml:"max_components"`
	Seed          uint64        `toml:"seed" yaml:"seed"`
	Logging       LoggingConfig `toml:"logging" yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "console" or "json"
}

// LoadConfig reads a .toml or .yaml config file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", c.Duration)
	}
	if c.Entities < 0 {
		return fmt.Errorf("entities must not be negative, got %d", c.Entities)
	}
	if c.Systems <= 0 {
		return fmt.Errorf("systems must be positive, got %d", c.Systems)
	}
	if c.MaxComponents < 1 || c.MaxComponents > componentKinds {
		return fmt.Errorf("max_components must be between 1 and %d, got %d", componentKinds, c.MaxComponents)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Duration:      10 * time.Second,
		Entities:      10000,
		Systems:       50,
		MaxComponents: 5,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
