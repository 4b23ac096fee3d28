// Package syntax provides a console.log stripping strategy that works on a
// tree-sitter parse tree instead of counting parentheses, so parentheses
// inside strings, template literals and comments do not affect the result.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/ccollicutt/consolestrip/pkg/stripper"
)

// ErrParse is returned when the source does not parse cleanly.
var ErrParse = errors.New("source has syntax errors")

// Dialect selects the grammar used to parse the source.
type Dialect string

const (
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

// DialectForPath picks the TSX grammar for .tsx and .jsx files and the
// TypeScript grammar (a superset of plain JavaScript) for everything else.
func DialectForPath(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx":
		return DialectTSX
	default:
		return DialectTypeScript
	}
}

// Strategy removes whole-line console.log expression statements.
type Strategy struct {
	dialect  Dialect
	language *sitter.Language
}

// New creates a syntax-aware strategy for the given dialect.
func New(dialect Dialect) *Strategy {
	var lang *sitter.Language
	if dialect == DialectTSX {
		lang = sitter.NewLanguage(typescript.LanguageTSX())
	} else {
		dialect = DialectTypeScript
		lang = sitter.NewLanguage(typescript.LanguageTypescript())
	}
	return &Strategy{dialect: dialect, language: lang}
}

// Name returns the strategy name.
func (s *Strategy) Name() string {
	return "syntax"
}

// Dialect returns the grammar in use.
func (s *Strategy) Dialect() Dialect {
	return s.dialect
}

// Scan parses content and drops every console.log statement that occupies
// its lines alone. Statements sharing a line with other code are kept.
func (s *Strategy) Scan(ctx context.Context, content string) (*stripper.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := []byte(content)

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(s.language); err != nil {
		return nil, fmt.Errorf("loading %s grammar: %w", s.dialect, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: no parse tree", ErrParse)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w (%s grammar)", ErrParse, s.dialect)
	}

	lines := stripper.SplitLines(content)
	drop := make([]bool, len(lines))
	var spans []stripper.Span

	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() != "expression_statement" {
			return true
		}
		call := consoleLogCall(n, source)
		if call == nil {
			return true
		}

		start := n.StartPosition()
		end := n.EndPosition()
		if !ownsLines(lines, start, end) {
			return false
		}

		first, last := int(start.Row), int(end.Row)
		for row := first; row <= last; row++ {
			drop[row] = true
		}

		kind := stripper.SpanKindCall
		if first == last && isTemplateCall(call) {
			kind = stripper.SpanKindTemplate
		}
		spans = append(spans, stripper.Span{
			StartLine: first + 1,
			EndLine:   last + 1,
			Kind:      kind,
			Text:      stripper.JoinLines(lines[first : last+1]),
		})
		return false
	})

	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}

	return &stripper.Result{
		Content:  stripper.JoinLines(kept),
		Spans:    spans,
		LinesIn:  len(lines),
		LinesOut: len(kept),
	}, nil
}

// consoleLogCall returns the call expression of a `console.log(...)` statement,
// or nil if the statement is something else.
func consoleLogCall(stmt *sitter.Node, source []byte) *sitter.Node {
	if stmt.NamedChildCount() == 0 {
		return nil
	}
	expr := stmt.NamedChild(0)
	if expr == nil || expr.Kind() != "call_expression" {
		return nil
	}
	fn := expr.ChildByFieldName("function")
	if fn == nil || fn.Kind() != "member_expression" {
		return nil
	}
	if nodeText(fn, source) != "console.log" {
		return nil
	}
	return expr
}

// isTemplateCall reports whether the call's only argument is a template literal.
func isTemplateCall(call *sitter.Node) bool {
	args := call.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() != 1 {
		return false
	}
	arg := args.NamedChild(0)
	return arg != nil && arg.Kind() == "template_string"
}

// ownsLines reports whether only whitespace precedes the statement on its first
// line and only whitespace or a line comment follows it on its last line.
func ownsLines(lines []string, start, end sitter.Point) bool {
	first, last := int(start.Row), int(end.Row)
	if last >= len(lines) {
		return false
	}

	firstLine := lines[first]
	if int(start.Column) > len(firstLine) || strings.TrimSpace(firstLine[:start.Column]) != "" {
		return false
	}

	lastLine := lines[last]
	if int(end.Column) > len(lastLine) {
		return false
	}
	rest := strings.TrimSpace(lastLine[end.Column:])
	return rest == "" || strings.HasPrefix(rest, "//")
}

// walkTree visits nodes depth-first. Returning false skips the node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visitor)
	}
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
