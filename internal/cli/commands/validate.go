package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/consolestrip/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a consolestrip configuration file without touching any source file.

Checks:
  - YAML syntax
  - Strategy name
  - Backup suffix
  - Target file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Strategy: %s\n", cfg.Strategy)
	if cfg.Backup {
		fmt.Fprintf(out, "  Backup:   yes (%s)\n", cfg.BackupSuffix)
	} else {
		fmt.Fprintf(out, "  Backup:   no\n")
	}

	// Target is optional in the file, and a missing one is only a warning
	if cfg.Target == "" {
		fmt.Fprintf(out, "  Target:   (none, pass a file to strip)\n")
	} else {
		fmt.Fprintf(out, "  Target:   %s\n", cfg.Target)
		if info, err := os.Stat(cfg.Target); err != nil {
			fmt.Fprintf(out, "\nWarning: target not readable: %v\n", err)
		} else if info.IsDir() {
			fmt.Fprintf(out, "\nWarning: target %s is a directory\n", cfg.Target)
		}
	}

	return nil
}
