// Package config loads QualityStudio configuration from an optional yaml file
// plus environment overrides. The single required secret is the Gemini API
// key; startup fails fast before any request when it is absent.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"qualitystudio/internal/gemini"
	"qualitystudio/internal/persona"
)

// ErrMissingAPIKey is the fatal configuration error: no key, no requests.
var ErrMissingAPIKey = errors.New("missing Gemini API key (set GEMINI_API_KEY or api.key in config)")

// Config holds all QualityStudio configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// APIConfig configures the provider boundary.
type APIConfig struct {
	Key string `yaml:"key"`
}

// DefaultsConfig seeds the UI selections for a new session.
type DefaultsConfig struct {
	Persona   string `yaml:"persona"`   // assistant, code, writer, critic
	Grounding string `yaml:"grounding"` // none, search, maps
	Reasoning bool   `yaml:"reasoning"` // start with the pro variant
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Persona:   persona.DefaultKey,
			Grounding: "none",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".studio", "config.yaml")
}

// Load reads the config file at path (skipped when absent), layers env
// overrides on top, and fills remaining defaults. A `.env` file in the
// working directory is honored for local development.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// No file is fine; env and defaults carry the day.
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, nil
}

// applyEnvOverrides layers environment variables over file values.
// GEMINI_API_KEY takes precedence over GOOGLE_API_KEY.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.API.Key = key
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.API.Key = key
	}
	if level := os.Getenv("STUDIO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) fillDefaults() {
	if c.Defaults.Persona == "" {
		c.Defaults.Persona = persona.DefaultKey
	}
	if c.Defaults.Grounding == "" {
		c.Defaults.Grounding = "none"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the invariants the rest of the program relies on. It is
// called once at startup; a failure here halts before any request is made.
func (c *Config) Validate() error {
	if c.API.Key == "" {
		return ErrMissingAPIKey
	}
	if _, err := persona.Get(c.Defaults.Persona); err != nil {
		return fmt.Errorf("defaults.persona: %w", err)
	}
	if _, err := gemini.ParseGroundingMode(c.Defaults.Grounding); err != nil {
		return fmt.Errorf("defaults.grounding: %w", err)
	}
	return nil
}
