package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

// JSONFormatter writes reports as indented JSON. Removed statement text is
// only included in verbose mode; otherwise spans carry line numbers and kind.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON. Quiet mode emits the summary alone.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if f.opts.Quiet {
		return enc.Encode(report.Summary)
	}
	if f.opts.Verbose {
		return enc.Encode(report)
	}

	// Report.Spans is shared with the caller, so redact a copy
	view := *report
	view.Spans = make([]stripper.Span, len(report.Spans))
	for i, span := range report.Spans {
		span.Text = ""
		view.Spans[i] = span
	}
	return enc.Encode(&view)
}
