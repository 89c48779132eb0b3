package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the simulation host.
// Configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SimulatorConfig contains simulation host settings.
type SimulatorConfig struct {
	// ID identifies this host instance in log output.
	ID string `yaml:"id"`

	// ScenarioFile is the path to a YAML scenario describing the scenes and
	// devices to register at startup.
	// Empty means the built-in demonstration scenario.
	ScenarioFile string `yaml:"scenario_file"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// Output is stdout or stderr. Defaults to stderr because stdout carries
	// the operator-facing simulation messages.
	Output string `yaml:"output"`
}

// Load builds the configuration and validates it.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults), skipped when path is empty
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: ARVRHOST_SECTION_KEY
// For example: ARVRHOST_SCENARIO_FILE, ARVRHOST_LOG_LEVEL
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for defaults only
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulator: SimulatorConfig{
			ID: "arvrhost-01",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: ARVRHOST_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Simulator
	if v := os.Getenv("ARVRHOST_SIMULATOR_ID"); v != "" {
		cfg.Simulator.ID = v
	}
	if v := os.Getenv("ARVRHOST_SCENARIO_FILE"); v != "" {
		cfg.Simulator.ScenarioFile = v
	}

	// Logging
	if v := os.Getenv("ARVRHOST_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ARVRHOST_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("ARVRHOST_LOG_OUTPUT"); v != "" {
		cfg.Logging.Output = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	if c.Simulator.ID == "" {
		errs = append(errs, "simulator.id is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("logging.level %q is invalid (use debug, info, warn, or error)", c.Logging.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("logging.format %q is invalid (use json or text)", c.Logging.Format))
	}

	validOutputs := map[string]bool{"stdout": true, "stderr": true}
	if !validOutputs[strings.ToLower(c.Logging.Output)] {
		errs = append(errs, fmt.Sprintf("logging.output %q is invalid (use stdout or stderr)", c.Logging.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
