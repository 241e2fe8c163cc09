package ast

type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr()         {}
func (*LiteralExpr) isExpr()     {}
func (*IdentExpr) isExpr()       {}
func (*BinaryExpr) isExpr()      {}
func (*LogicalExpr) isExpr()     {}
func (*ConditionalExpr) isExpr() {}
func (*AssignExpr) isExpr()      {}
func (*UpdateExpr) isExpr()      {}
func (*CallExpr) isExpr()        {}
func (*SequenceExpr) isExpr()    {}
func (*ArrayExpr) isExpr()       {}
func (*FuncExpr) isExpr()        {}
func (*ArrowFuncExpr) isExpr()   {}
func (*ParenExpr) isExpr()       {}
func (*UnaryExpr) isExpr()       {}

// BadExpr represents an expression outside the supported subset
// Example: "console.log" (member access)
type BadExpr struct {
	Bad BadNode
}

// LiteralExpr represents a number, string, boolean or null literal.
// Value holds the source text (strings without quotes).
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// IdentExpr represents a reference to a binding
// Example: "fib2"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BinaryExpr represents an arithmetic or comparison operation
// Example: "price * d"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// LogicalExpr represents "&&", "||" or "??"
type LogicalExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// ConditionalExpr represents the ternary operator
// Example: "a ? b : c"
type ConditionalExpr struct {
	Pos        Position
	EndPos     Position
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// AssignExpr represents simple ("=") and compound ("+=", ...) assignment
// Example: "d += 0.1"
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Target Expr
	Value  Expr
}

// IsCompound reports whether the assignment reads its target first.
func (a *AssignExpr) IsCompound() bool {
	return a.Op != "="
}

// UpdateExpr represents "++" and "--" in prefix or postfix form
type UpdateExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Prefix bool
	Target Expr
}

// CallExpr represents a call
// Example: "stock(bookId)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// SequenceExpr represents comma-separated expressions
// Example: "i++, j--"
type SequenceExpr struct {
	Pos    Position
	EndPos Position
	Exprs  []Expr
}

// ArrayExpr represents an array literal
// Example: "[a, b, 1]"
type ArrayExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// FuncExpr represents a function expression with an optional name
// Example: "function (x) { return x }"
type FuncExpr struct {
	Pos    Position
	EndPos Position
	Name   *Ident
	Params []*Param
	Body   *BlockStmt
}

// ArrowFuncExpr represents an arrow function. Exactly one of Body and
// ExprBody is set.
// Example: "(a, b) => a + b"
type ArrowFuncExpr struct {
	Pos      Position
	EndPos   Position
	Params   []*Param
	Body     *BlockStmt
	ExprBody Expr
}

// ParenExpr represents a parenthesized expression
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// UnaryExpr represents "!", "-", "+", "~" and "typeof"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}
