// Package config provides configuration loading and validation for consolestrip.
package config

// Strategy names a console.log stripping strategy.
type Strategy string

const (
	// StrategyLines counts parentheses line by line (default).
	StrategyLines Strategy = "lines"
	// StrategySyntax removes statements found in a tree-sitter parse tree.
	StrategySyntax Strategy = "syntax"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Target is the source file to clean when none is given on the command line.
	Target string `yaml:"target,omitempty"`

	// Strategy selects how statements are found (lines or syntax).
	Strategy Strategy `yaml:"strategy,omitempty"`

	// Backup keeps a copy of the original file before it is overwritten.
	Backup bool `yaml:"backup,omitempty"`

	// BackupSuffix is appended to the target path for the backup copy.
	BackupSuffix string `yaml:"backup_suffix,omitempty"`
}
