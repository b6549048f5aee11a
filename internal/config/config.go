// Package config holds riskdash configuration: the prediction API
// endpoint, UI theme, and logging. Values come from defaults, an
// optional YAML file, and RISKDASH_* environment overrides, in that
// order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all riskdash configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the prediction service client.
type APIConfig struct {
	// BaseURL is scheme://host:port of the prediction service.
	BaseURL string `yaml:"base_url"`
	// Timeout is the transport timeout as a duration string ("30s").
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the dashboard appearance.
type UIConfig struct {
	Theme string `yaml:"theme"` // auto, light, dark
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables file logging
}

// DefaultConfig returns the default configuration. The base URL matches
// the prediction service's default local port.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000",
			Timeout: "30s",
		},
		UI: UIConfig{
			Theme: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load reads configuration from path, layered over the defaults. An
// empty path or a missing file yields the defaults. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if _, err := cfg.APITimeout(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("RISKDASH_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("RISKDASH_API_TIMEOUT"); v != "" {
		c.API.Timeout = v
	}
	if v := os.Getenv("RISKDASH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("RISKDASH_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("RISKDASH_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// APITimeout parses the configured timeout string.
func (c *Config) APITimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid api timeout %q: %w", c.API.Timeout, err)
	}
	return d, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
