// Package stripper removes console.log debug statements from source text.
package stripper

import (
	"context"
	"strings"
)

// SpanKind classifies how a removed statement was recognised.
type SpanKind string

const (
	// SpanKindCall is an ordinary console.log call, possibly multi-line.
	SpanKindCall SpanKind = "call"
	// SpanKindTemplate is a single-line console.log of a backtick template literal.
	SpanKindTemplate SpanKind = "template"
)

// Span is a run of consecutive lines removed as one statement.
type Span struct {
	// StartLine is the 1-based number of the first removed line.
	StartLine int `json:"start_line"`

	// EndLine is the 1-based number of the last removed line (inclusive).
	EndLine int `json:"end_line"`

	Kind SpanKind `json:"kind"`

	// Text is the removed lines joined with newlines.
	Text string `json:"text,omitempty"`
}

// Lines returns the number of lines covered by the span.
func (s Span) Lines() int {
	return s.EndLine - s.StartLine + 1
}

// Result is the outcome of scanning one source text.
type Result struct {
	// Content is the cleaned text.
	Content string

	// Spans lists removed statements in source order.
	Spans []Span

	// LinesIn is the number of lines in the input.
	LinesIn int

	// LinesOut is the number of lines kept.
	LinesOut int
}

// Changed reports whether any statement was removed.
func (r *Result) Changed() bool {
	return len(r.Spans) > 0
}

// LinesRemoved returns the total number of lines dropped.
func (r *Result) LinesRemoved() int {
	return r.LinesIn - r.LinesOut
}

// Strategy finds and removes console.log statements from source text.
type Strategy interface {
	// Name returns the strategy identifier used in configuration (lines, syntax).
	Name() string

	// Scan returns the cleaned text together with the removed spans.
	Scan(ctx context.Context, content string) (*Result, error)
}

// SplitLines splits text on "\n" the same way Join reassembles it.
// A trailing "\r" stays part of its line.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines joins lines with "\n".
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
