// Package sitter lowers a tree-sitter JavaScript syntax tree into the
// analyzer's AST. Constructs outside the supported subset become BadStmt
// and BadExpr nodes, exactly as the native parser produces them.
package sitter

import (
	"context"
	"fmt"
	"strings"

	ts "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"

	"deadstore/internal/ast"
)

// ParseError is a syntax error reported by tree-sitter or a construct the
// lowering cannot represent.
type ParseError struct {
	Message string
	Pos     ast.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ParseSource parses source with the tree-sitter JavaScript grammar. The
// returned program is non-nil whenever err is nil.
func ParseSource(ctx context.Context, path string, source []byte) (*ast.Program, []ParseError, error) {
	parser := ts.NewParser()
	defer parser.Close()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	l := &lowerer{path: path, src: source}
	program := l.program(tree.RootNode())
	return program, l.errors, nil
}

type lowerer struct {
	path   string
	src    []byte
	errors []ParseError
}

func (l *lowerer) position(p ts.Point, offset uint32) ast.Position {
	return ast.Position{
		Filename: l.path,
		Offset:   int(offset),
		Line:     int(p.Row) + 1,
		Column:   int(p.Column) + 1,
	}
}

func (l *lowerer) start(n *ts.Node) ast.Position { return l.position(n.StartPoint(), n.StartByte()) }
func (l *lowerer) end(n *ts.Node) ast.Position   { return l.position(n.EndPoint(), n.EndByte()) }

func (l *lowerer) text(n *ts.Node) string {
	return n.Content(l.src)
}

func (l *lowerer) errorAt(n *ts.Node, format string, args ...any) {
	l.errors = append(l.errors, ParseError{Message: fmt.Sprintf(format, args...), Pos: l.start(n)})
}

func (l *lowerer) ident(n *ts.Node) ast.Ident {
	return ast.Ident{Pos: l.start(n), EndPos: l.end(n), Value: l.text(n)}
}

func (l *lowerer) bad(n *ts.Node, message string) ast.BadNode {
	return ast.BadNode{
		Pos:     l.start(n),
		EndPos:  l.end(n),
		Kind:    camel(n.Type()),
		Message: message,
	}
}

// camel turns a grammar node type into the ESTree-style construct name,
// e.g. member_expression into MemberExpression.
func camel(kind string) string {
	var b strings.Builder
	for _, part := range strings.Split(kind, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// named returns the named children of n without comments.
func named(n *ts.Node) []*ts.Node {
	count := int(n.NamedChildCount())
	out := make([]*ts.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c == nil || c.Type() == "comment" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func same(a, b *ts.Node) bool {
	return a != nil && b != nil && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func (l *lowerer) program(root *ts.Node) *ast.Program {
	program := &ast.Program{
		Pos:    l.start(root),
		EndPos: l.end(root),
		Path:   l.path,
	}
	l.scan(root, program)

	for _, c := range named(root) {
		if s := l.stmt(c); s != nil {
			program.Body = append(program.Body, s)
		}
	}
	return program
}

// scan collects comments and syntax errors from the whole tree.
func (l *lowerer) scan(n *ts.Node, program *ast.Program) {
	switch {
	case n.Type() == "comment":
		program.Comments = append(program.Comments, &ast.Comment{
			Pos:    l.start(n),
			EndPos: l.end(n),
			Text:   l.text(n),
		})
		return
	case n.IsMissing():
		l.errorAt(n, "missing %s", n.Type())
		return
	case n.Type() == "ERROR":
		l.errorAt(n, "unexpected %q", strings.TrimSpace(l.text(n)))
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil {
			l.scan(c, program)
		}
	}
}
