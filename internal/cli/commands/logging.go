package commands

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger for diagnostics. Warnings always show;
// debug records only with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
