package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "consolestrip: %d statement(s), %d line(s) in %s\n",
		report.Summary.SpansRemoved,
		report.Summary.LinesRemoved,
		report.Metadata.File)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	mode := ""
	if report.Metadata.DryRun {
		mode = " (dry run)"
	}

	fmt.Fprintf(w, "=== %s ===\n", report.Metadata.File)
	fmt.Fprintf(w, "Strategy: %s%s\n", report.Metadata.Strategy, mode)
	fmt.Fprintln(w)

	if !report.HasSpans() {
		fmt.Fprintln(w, "  No console.log statements found")
		fmt.Fprintln(w)
	}

	for _, span := range report.Spans {
		f.formatSpan(span, w)
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d statement(s), %d line(s) removed (%d -> %d lines)\n",
		report.Summary.SpansRemoved,
		report.Summary.LinesRemoved,
		report.Summary.LinesIn,
		report.Summary.LinesOut)
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e3))
	}

	return nil
}

func (f *TextFormatter) formatSpan(span stripper.Span, w io.Writer) {
	if span.StartLine == span.EndLine {
		fmt.Fprintf(w, "  - line %d [%s]\n", span.StartLine, span.Kind)
	} else {
		fmt.Fprintf(w, "  - lines %d-%d [%s]\n", span.StartLine, span.EndLine, span.Kind)
	}

	if !f.opts.Verbose {
		return
	}
	for _, line := range strings.Split(span.Text, "\n") {
		fmt.Fprintf(w, "      | %s\n", line)
	}
}
