package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format_NoSpans(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	report := NewReport(&stripper.Result{Content: "x", LinesIn: 1, LinesOut: 1}, Metadata{File: "app.ts", Strategy: "lines"})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "=== app.ts ===") {
		t.Error("Output missing header")
	}
	if !strings.Contains(output, "No console.log statements found") {
		t.Error("Output missing 'No console.log statements found' message")
	}
	if !strings.Contains(output, "0 statement(s)") {
		t.Error("Output missing summary")
	}
}

func TestTextFormatter_Format_WithSpans(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	report := createTestReport()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()

	checks := []string{
		"Strategy: lines (dry run)",
		"- lines 2-4 [call]",
		"- line 7 [template]",
		"2 statement(s), 4 line(s) removed (10 -> 6 lines)",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("Output missing %q\n%s", check, output)
		}
	}

	// Span text only in verbose mode
	if strings.Contains(output, "| console.log(") {
		t.Error("Non-verbose output should not include span text")
	}
	if strings.Contains(output, "Duration:") {
		t.Error("Non-verbose output should not include duration")
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})
	report := createTestReport()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "      | console.log(") {
		t.Error("Verbose output missing span text")
	}
	if !strings.Contains(output, "      |   \"value:\", x") {
		t.Error("Verbose output missing continuation line")
	}
	if !strings.Contains(output, "Duration:") {
		t.Error("Verbose output missing duration")
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})
	report := createTestReport()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 1 {
		t.Errorf("Quiet output has %d lines, want 1", len(lines))
	}
	if !strings.Contains(output, "consolestrip: 2 statement(s), 4 line(s) in app.ts") {
		t.Errorf("Quiet output = %q", output)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		f, err := NewFormatter(tt.name, FormatOptions{})
		if (err != nil) != tt.wantErr {
			t.Errorf("NewFormatter(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err == nil && f.Name() != tt.name {
			t.Errorf("NewFormatter(%q).Name() = %q", tt.name, f.Name())
		}
	}
}

func TestNewReport(t *testing.T) {
	report := NewReport(stripper.Scan("a\nconsole.log(1);\nb"), Metadata{File: "x.ts"})

	if report.Summary.SpansRemoved != 1 {
		t.Errorf("SpansRemoved = %d, want 1", report.Summary.SpansRemoved)
	}
	if report.Summary.LinesIn != 3 || report.Summary.LinesOut != 2 {
		t.Errorf("LinesIn/Out = %d/%d, want 3/2", report.Summary.LinesIn, report.Summary.LinesOut)
	}
	if !report.HasSpans() {
		t.Error("HasSpans() = false, want true")
	}

	empty := NewReport(stripper.Scan("a"), Metadata{})
	if empty.Spans == nil {
		t.Error("Spans should be an empty slice, not nil")
	}
	if empty.HasSpans() {
		t.Error("HasSpans() = true, want false")
	}
}

func createTestReport() *Report {
	return &Report{
		Summary: Summary{
			LinesIn:      10,
			LinesOut:     6,
			SpansRemoved: 2,
			LinesRemoved: 4,
		},
		Spans: []stripper.Span{
			{
				StartLine: 2,
				EndLine:   4,
				Kind:      stripper.SpanKindCall,
				Text:      "console.log(\n  \"value:\", x\n);",
			},
			{
				StartLine: 7,
				EndLine:   7,
				Kind:      stripper.SpanKindTemplate,
				Text:      "  console.log(`item: ${x}`);",
			},
		},
		Metadata: Metadata{
			File:        "app.ts",
			Strategy:    "lines",
			DryRun:      true,
			ProcessedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Duration:    1500 * time.Microsecond,
		},
	}
}
