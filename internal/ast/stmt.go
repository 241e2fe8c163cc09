package ast

type Stmt interface {
	Node
	isStmt()
}

func (*BadStmt) isStmt()     {}
func (*VarDecl) isStmt()     {}
func (*BlockStmt) isStmt()   {}
func (*IfStmt) isStmt()      {}
func (*WhileStmt) isStmt()   {}
func (*DoWhileStmt) isStmt() {}
func (*ForStmt) isStmt()     {}
func (*SwitchStmt) isStmt()  {}
func (*FuncDecl) isStmt()    {}
func (*ReturnStmt) isStmt()  {}
func (*ExprStmt) isStmt()    {}
func (*EmptyStmt) isStmt()   {}
func (*BranchStmt) isStmt()  {}

// BadStmt represents a statement the parser could not map onto the subset
type BadStmt struct {
	Bad BadNode
}

// VarDecl represents a variable declaration
// Example: "let fib1 = 0, fib2 = 1;"
type VarDecl struct {
	Pos         Position
	EndPos      Position
	Kind        string // "var", "let" or "const"
	Declarators []*Declarator
}

// Declarator is a single name with an optional initializer
// Example: "fibn" or "d = 0.8"
type Declarator struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Init   Expr // nil when absent
}

// BlockStmt represents a braced statement list
// Example: "{ p = 19; }"
type BlockStmt struct {
	Pos    Position
	EndPos Position
	Body   []Stmt
}

// IfStmt represents a conditional with an optional else branch
// Example: "if (price < 14.99) { d = 0.9 } else { d = 0 }"
type IfStmt struct {
	Pos        Position
	EndPos     Position
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil when there is no else
}

// WhileStmt represents a pre-tested loop
// Example: "while (i < 5) { i++ }"
type WhileStmt struct {
	Pos    Position
	EndPos Position
	Test   Expr
	Body   Stmt
}

// DoWhileStmt represents a post-tested loop
// Example: "do { i++ } while (i < 5)"
type DoWhileStmt struct {
	Pos    Position
	EndPos Position
	Body   Stmt
	Test   Expr
}

// ForStmt represents a C-style for loop
// Example: "for (let i = 2; i <= n; i++) { ... }"
type ForStmt struct {
	Pos    Position
	EndPos Position
	Init   Stmt // *VarDecl, *ExprStmt or nil
	Test   Expr // nil when absent
	Update Expr // nil when absent
	Body   Stmt
}

// SwitchStmt represents a switch with its cases in source order
// Example: "switch (bookId) { case 1: return 50 }"
type SwitchStmt struct {
	Pos          Position
	EndPos       Position
	Discriminant Expr
	Cases        []*SwitchCase
}

// SwitchCase is one "case" or the "default" clause
type SwitchCase struct {
	Pos        Position
	EndPos     Position
	Test       Expr // nil for default
	Consequent []Stmt
}

// FuncDecl represents a named function declaration
// Example: "function price(bookId) { ... }"
type FuncDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*Param
	Body   *BlockStmt
}

// Param is a function parameter
// Example: "n", "rate = 1", "...rest"
type Param struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Default Expr // nil when absent
	Rest    bool
}

// ReturnStmt represents a return with an optional argument
type ReturnStmt struct {
	Pos      Position
	EndPos   Position
	Argument Expr // nil for a bare return
}

// ExprStmt represents an expression evaluated for its effects
// Example: "fibonacci(y);"
type ExprStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

// EmptyStmt represents a lone semicolon
type EmptyStmt struct {
	Pos    Position
	EndPos Position
}

// BranchStmt represents "break" or "continue"
type BranchStmt struct {
	Pos     Position
	EndPos  Position
	Keyword string
}
