package ast

import "fmt"

// Program represents a parsed script (the entire source file)
// Example: "let a = 1; if (a > 0) { a = 2; }"
type Program struct {
	Pos      Position
	EndPos   Position
	Path     string
	Body     []Stmt
	Comments []*Comment // Kept for suppression directives
}

// Position tracks location information for error reporting and tooling.
// A zero Line means the location is unknown.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position carries line information.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Ident represents a binding name such as a declared variable, a function
// name or a parameter.
// Example: "price", "fib1"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Comment represents a line or block comment
// Example: "// deadstore:ignore d"
type Comment struct {
	Pos    Position
	EndPos Position
	Text   string
}

// BadNode carries what the parser or a frontend could not represent.
type BadNode struct {
	Pos     Position
	EndPos  Position
	Kind    string // Source construct name, e.g. "MemberExpression"
	Message string
}
