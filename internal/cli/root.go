// Package cli provides the command-line interface for consolestrip.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/consolestrip/internal/cli/commands"
	"github.com/ccollicutt/consolestrip/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	commands.ExitCode = 0

	// Unknown first words may be plugin commands
	if len(args) > 0 && isCommandWord(args[0]) && !isBuiltinCommand(rootCmd, args[0]) {
		if pluginPath, err := plugins.FindPlugin(args[0]); err == nil {
			return plugins.Execute(pluginPath, args[1:])
		}
	}

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		if len(args) > 0 && isCommandWord(args[0]) && !isBuiltinCommand(rootCmd, args[0]) {
			_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), plugins.FormatNotFoundError(args[0]))
			return 2
		}
		// SilenceErrors stops cobra from printing this itself
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

func isCommandWord(arg string) bool {
	return arg != "" && arg[0] != '-'
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "consolestrip",
		Short: "Remove console.log statements from a source file",
		Long: `consolestrip removes console.log(...) debug statements from a single
source file and overwrites it with the cleaned content.

Run "consolestrip strip <file>" to clean a file, or add --dry-run to see
what would be removed.

PLUGINS:
  Unknown commands run standalone binaries named consolestrip-<command>.

  Plugin locations (searched in order):
    1. Same directory as the consolestrip binary
    2. ~/.consolestrip/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewStripCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
