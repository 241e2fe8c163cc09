package analysis

import (
	"errors"
	"fmt"

	"deadstore/internal/ast"
)

var (
	ErrUnsupportedNode = errors.New("unsupported node")
	ErrBudgetExceeded  = errors.New("step budget exceeded")
)

// Error locates a traversal failure in the source. Err carries the kind and
// is one of the sentinel errors of this package, package scope or package
// flow, or a context error.
type Error struct {
	Pos  ast.Position
	Node string
	Err  error
}

func (e *Error) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Pos, e.Node, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fail(node ast.Node, err error) error {
	var located *Error
	if errors.As(err, &located) {
		return err
	}
	return &Error{Pos: node.NodePos(), Node: node.NodeType().String(), Err: err}
}

func unsupported(node ast.Node) error {
	detail := node.NodeType().String()
	switch n := node.(type) {
	case *ast.BadExpr:
		detail = fmt.Sprintf("%s (%s)", n.Bad.Kind, n.Bad.Message)
	case *ast.BadStmt:
		detail = fmt.Sprintf("%s (%s)", n.Bad.Kind, n.Bad.Message)
	}
	return fail(node, fmt.Errorf("%w: %s", ErrUnsupportedNode, detail))
}
