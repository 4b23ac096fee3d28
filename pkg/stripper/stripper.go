package stripper

import (
	"context"
	"regexp"
	"strings"
)

// CallMarker is the substring that opens a statement span.
const CallMarker = "console.log("

// templatePattern matches a whole line logging a backtick template literal,
// e.g. the body of a forEach callback.
var templatePattern = regexp.MustCompile("^\\s*console\\.log\\(`.*\\);\\s*$")

// LineScan is the default strategy. It matches parentheses by counting them
// line by line and has no notion of strings or comments, so an unbalanced
// "(" inside a literal extends the span to the end of the text.
type LineScan struct{}

// NewLineScan creates the line-scan strategy.
func NewLineScan() *LineScan {
	return &LineScan{}
}

// Name returns the strategy name.
func (s *LineScan) Name() string {
	return "lines"
}

// Scan removes console.log spans from content.
func (s *LineScan) Scan(ctx context.Context, content string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Scan(content), nil
}

// Strip returns content with all console.log statements removed.
func Strip(content string) string {
	return Scan(content).Content
}

// Scan removes console.log statements from content and reports what it removed.
func Scan(content string) *Result {
	lines := SplitLines(content)
	kept := make([]string, 0, len(lines))
	var spans []Span

	c := newLineCursor(lines)
	for !c.AtEnd() {
		line, _ := c.Next()
		trimmed := strings.TrimSpace(line)

		if !strings.Contains(trimmed, CallMarker) {
			kept = append(kept, line)
			continue
		}

		spans = append(spans, consumeSpan(c, line, trimmed))
	}

	return &Result{
		Content:  JoinLines(kept),
		Spans:    spans,
		LinesIn:  len(lines),
		LinesOut: len(kept),
	}
}

// consumeSpan extends a span that starts at the cursor's last line until its
// parentheses balance or the lines run out.
func consumeSpan(c *lineCursor, first, trimmed string) Span {
	span := Span{
		StartLine: c.LineNum(),
		Kind:      SpanKindCall,
	}
	if templatePattern.MatchString(trimmed) {
		span.Kind = SpanKindTemplate
	}

	text := []string{first}
	depth := parenDelta(trimmed)
	for depth > 0 {
		next, ok := c.Next()
		if !ok {
			break
		}
		text = append(text, next)
		depth += parenDelta(next)
	}

	span.EndLine = c.LineNum()
	span.Text = JoinLines(text)
	return span
}

func parenDelta(line string) int {
	return strings.Count(line, "(") - strings.Count(line, ")")
}
