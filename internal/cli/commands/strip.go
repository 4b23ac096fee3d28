package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/consolestrip/pkg/config"
	"github.com/ccollicutt/consolestrip/pkg/output"
	"github.com/ccollicutt/consolestrip/pkg/source"
	"github.com/ccollicutt/consolestrip/pkg/stripper"
	"github.com/ccollicutt/consolestrip/pkg/syntax"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// SuccessMessage is printed after the cleaned file has been written.
const SuccessMessage = "Console.log statements removed successfully!"

// ErrNoTarget is returned when neither an argument nor the config names a file.
var ErrNoTarget = errors.New("no target file (pass one as an argument or set target in the config)")

// ErrQuietWithoutReport is returned when --quiet is given but no report would be printed.
var ErrQuietWithoutReport = errors.New("--quiet only applies to the report printed with --dry-run or --verbose")

// StripOptions holds command-line options for the strip command.
type StripOptions struct {
	ConfigPath string
	Strategy   string
	DryRun     bool
	Backup     bool
	Output     string
	Verbose    bool
	Quiet      bool
}

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	opts := &StripOptions{}

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove console.log statements from a source file",
		Long: `Remove console.log(...) statements, single-line and multi-line, from a
source file and overwrite it with the cleaned content.

The file comes from the argument, or from "target" in the configuration file.
A report is printed with --dry-run or --verbose; --quiet cuts it to the summary.

Strategies:
  lines   Count parentheses line by line (default). Parentheses inside
          strings or comments are counted too.
  syntax  Parse the file as TypeScript/TSX and remove whole-line
          console.log statements only. Falls back to lines if the
          file does not parse.

Exit codes:
  0 - File cleaned (or dry run found nothing)
  1 - Dry run found console.log statements
  2 - Configuration or I/O error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", string(config.DefaultStrategy), "Stripping strategy (lines|syntax)")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report statements without writing the file")
	cmd.Flags().BoolVar(&opts.Backup, "backup", false, "Keep a copy of the original file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Report format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show removed statements and debug logs")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the summary in the --dry-run or --verbose report")

	return cmd
}

func runStrip(cmd *cobra.Command, args []string, opts *StripOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Quiet && !opts.DryRun && !opts.Verbose {
		return ErrQuietWithoutReport
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, cfg, opts)
	if err := config.ValidateStrategy(cfg.Strategy); err != nil {
		return err
	}

	target := cfg.Target
	if len(args) == 1 {
		target = args[0]
	}
	if target == "" {
		return ErrNoTarget
	}

	// Validate the format before touching the file
	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	file, err := source.Read(ctx, target)
	if err != nil {
		return err
	}

	start := time.Now()
	strategy := newStrategy(cfg.Strategy, target)
	result, err := strategy.Scan(ctx, file.Content)
	if errors.Is(err, syntax.ErrParse) {
		logger.Warn("falling back to line scan", "file", target, "error", err)
		strategy = stripper.NewLineScan()
		result, err = strategy.Scan(ctx, file.Content)
	}
	if err != nil {
		return fmt.Errorf("scanning %s: %w", target, err)
	}

	logger.Debug("scanned source",
		slog.String("file", target),
		slog.String("strategy", strategy.Name()),
		slog.Int("spans", len(result.Spans)),
		slog.Int("lines_removed", result.LinesRemoved()))

	report := output.NewReport(result, output.Metadata{
		File:        target,
		Strategy:    strategy.Name(),
		DryRun:      opts.DryRun,
		ProcessedAt: start,
		Duration:    time.Since(start),
	})

	if opts.DryRun {
		if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
		if report.HasSpans() {
			ExitCode = 1
		}
		return nil
	}

	if result.Changed() {
		err := source.Write(ctx, file, result.Content, source.WriteOptions{
			Backup:       cfg.Backup,
			BackupSuffix: cfg.BackupSuffix,
		})
		if err != nil {
			return err
		}
	} else {
		logger.Debug("nothing to remove, file left untouched", "file", target)
	}

	if opts.Verbose {
		if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessMessage)
	return nil
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, opts *StripOptions) {
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = config.Strategy(opts.Strategy)
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backup = opts.Backup
	}
}

func newStrategy(name config.Strategy, target string) stripper.Strategy {
	if name == config.StrategySyntax {
		return syntax.New(syntax.DialectForPath(target))
	}
	return stripper.NewLineScan()
}
