package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults with environment overrides applied.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in empty defaults.
func Validate(cfg *Config) error {
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultStrategy
	}
	if err := ValidateStrategy(cfg.Strategy); err != nil {
		return fmt.Errorf("strategy: %w", err)
	}

	if cfg.BackupSuffix == "" {
		cfg.BackupSuffix = DefaultBackupSuffix
	}
	if strings.ContainsAny(cfg.BackupSuffix, `/\`) {
		return errors.New("backup_suffix: must not contain path separators")
	}

	if strings.TrimSpace(cfg.Target) != cfg.Target {
		return errors.New("target: must not have leading or trailing whitespace")
	}

	return nil
}

// ValidateStrategy checks that s names a known strategy.
func ValidateStrategy(s Strategy) error {
	switch s {
	case StrategyLines, StrategySyntax:
		return nil
	default:
		return fmt.Errorf("unknown strategy %q (use %s or %s)", s, StrategyLines, StrategySyntax)
	}
}
