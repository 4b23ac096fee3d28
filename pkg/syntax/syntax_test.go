package syntax

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

// Test Plan for the syntax strategy:
// - Leave text without console.log untouched
// - Remove single-line and multi-line statements
// - Ignore parentheses inside string literals
// - Keep statements that share a line with other code
// - Allow a trailing line comment after a removed statement
// - Classify template-literal calls
// - Report syntax errors with ErrParse
// - Pick the TSX grammar for .tsx/.jsx paths

func scan(t *testing.T, dialect Dialect, content string) *stripper.Result {
	t.Helper()
	result, err := New(dialect).Scan(context.Background(), content)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestStrategy_Name(t *testing.T) {
	t.Parallel()

	s := New(DialectTypeScript)
	assert.Equal(t, "syntax", s.Name())
	assert.Equal(t, DialectTypeScript, s.Dialect())
	assert.Equal(t, DialectTypeScript, New("bogus").Dialect())
}

func TestStrategy_NoStatements(t *testing.T) {
	t.Parallel()

	in := "const x: number = 1;\nfunction f(a: number) {\n  return (a + 1);\n}\n"
	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, in, result.Content)
	assert.False(t, result.Changed())
}

func TestStrategy_SingleAndMultiLine(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"const a = 1;",
		"  console.log(\"x\");",
		"console.log(",
		"  \"value:\", a",
		");",
		"const y = 1;",
	}, "\n")

	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, "const a = 1;\nconst y = 1;", result.Content)
	require.Len(t, result.Spans, 2)
	assert.Equal(t, 2, result.Spans[0].StartLine)
	assert.Equal(t, 2, result.Spans[0].EndLine)
	assert.Equal(t, 3, result.Spans[1].StartLine)
	assert.Equal(t, 5, result.Spans[1].EndLine)
	assert.Equal(t, 4, result.LinesRemoved())
}

func TestStrategy_ParenInsideString(t *testing.T) {
	t.Parallel()

	in := "first();\nconsole.log(\"(\");\nconst y = compute();\nreturn y;"
	result := scan(t, DialectTypeScript, "function g() {\n"+in+"\n}")

	assert.Equal(t, "function g() {\nfirst();\nconst y = compute();\nreturn y;\n}", result.Content)
	require.Len(t, result.Spans, 1)
	assert.Equal(t, 3, result.Spans[0].StartLine)
}

func TestStrategy_NestedTemplate(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"items.forEach((x) => {",
		"  console.log(`item: ${x}`);",
		"  total += x;",
		"});",
	}, "\n")

	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, "items.forEach((x) => {\n  total += x;\n});", result.Content)
	require.Len(t, result.Spans, 1)
	assert.Equal(t, stripper.SpanKindTemplate, result.Spans[0].Kind)
}

func TestStrategy_SharedLineKept(t *testing.T) {
	t.Parallel()

	in := "const a = 1; console.log(a);\nconsole.log(1); console.log(2);"
	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, in, result.Content)
	assert.Empty(t, result.Spans)
}

func TestStrategy_TrailingComment(t *testing.T) {
	t.Parallel()

	in := "console.log(a); // debug\nkeep();"
	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, "keep();", result.Content)
}

func TestStrategy_OtherConsoleMethodsKept(t *testing.T) {
	t.Parallel()

	in := "console.error(err);\nconsole.warn(`w`);\nlogger.log(x);"
	result := scan(t, DialectTypeScript, in)

	assert.Equal(t, in, result.Content)
}

func TestStrategy_TSX(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"export function View() {",
		"  console.log(\"render\");",
		"  return <div>(hello</div>;",
		"}",
	}, "\n")

	result := scan(t, DialectTSX, in)

	assert.Equal(t, "export function View() {\n  return <div>(hello</div>;\n}", result.Content)
}

func TestStrategy_Idempotent(t *testing.T) {
	t.Parallel()

	in := "console.log(1);\nfoo();\nconsole.log(\n  2\n);\n"
	once := scan(t, DialectTypeScript, in).Content
	twice := scan(t, DialectTypeScript, once).Content

	assert.Equal(t, once, twice)
	assert.Equal(t, "foo();\n", once)
}

func TestStrategy_ParseError(t *testing.T) {
	t.Parallel()

	_, err := New(DialectTypeScript).Scan(context.Background(), "function (((( {\nconsole.log(1);")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestStrategy_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DialectTypeScript).Scan(ctx, "console.log(1);")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDialectForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Dialect
	}{
		{"a/b/frequency.test.ts", DialectTypeScript},
		{"index.js", DialectTypeScript},
		{"App.tsx", DialectTSX},
		{"App.JSX", DialectTSX},
		{"noext", DialectTypeScript},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DialectForPath(tt.path), tt.path)
	}
}
