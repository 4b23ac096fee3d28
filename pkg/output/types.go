// Package output provides formatting for strip run reports.
package output

import (
	"time"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

// Report describes one strip run.
type Report struct {
	Summary Summary `json:"summary"`

	// Spans lists the removed statements in source order.
	Spans []stripper.Span `json:"spans"`

	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	LinesIn      int `json:"lines_in"`
	LinesOut     int `json:"lines_out"`
	SpansRemoved int `json:"spans_removed"`
	LinesRemoved int `json:"lines_removed"`
}

// Metadata provides context about the run.
type Metadata struct {
	// File is the path of the cleaned source file.
	File string `json:"file"`

	// Strategy is the name of the strategy that produced the result.
	Strategy string `json:"strategy"`

	// DryRun is true when the file was left untouched.
	DryRun bool `json:"dry_run"`

	ProcessedAt time.Time     `json:"processed_at"`
	Duration    time.Duration `json:"duration"`
}

// NewReport creates a Report from a strip result.
func NewReport(result *stripper.Result, meta Metadata) *Report {
	spans := result.Spans
	if spans == nil {
		spans = []stripper.Span{}
	}

	return &Report{
		Summary: Summary{
			LinesIn:      result.LinesIn,
			LinesOut:     result.LinesOut,
			SpansRemoved: len(result.Spans),
			LinesRemoved: result.LinesRemoved(),
		},
		Spans:    spans,
		Metadata: meta,
	}
}

// HasSpans returns true if any statement was found.
func (r *Report) HasSpans() bool {
	return r.Summary.SpansRemoved > 0
}
