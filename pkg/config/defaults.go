package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultStrategy     = StrategyLines
	DefaultBackupSuffix = ".bak"
)

// Environment variable names.
const (
	EnvTarget   = "CONSOLESTRIP_TARGET"
	EnvStrategy = "CONSOLESTRIP_STRATEGY"
	EnvBackup   = "CONSOLESTRIP_BACKUP"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Strategy:     DefaultStrategy,
		BackupSuffix: DefaultBackupSuffix,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if target := os.Getenv(EnvTarget); target != "" {
		c.Target = target
	}
	if strategy := os.Getenv(EnvStrategy); strategy != "" {
		c.Strategy = Strategy(strategy)
	}
	// Unparseable values are ignored rather than failing the run
	if backup := os.Getenv(EnvBackup); backup != "" {
		if v, err := strconv.ParseBool(backup); err == nil {
			c.Backup = v
		}
	}
}
