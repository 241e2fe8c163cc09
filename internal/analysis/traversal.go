// Package analysis walks one program along one control-flow vector and
// reports the stores that are never read before their scope closes.
//
// Each if, while and for statement consumes one decision of the vector. A
// decision that skips a subtree also consumes the decisions of the branch
// points inside it, so every path consumes exactly as many decisions as the
// program has branch points.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/flow"
	"deadstore/internal/scope"
)

// DefaultGlobals are the predeclared names a program may read without
// declaring them.
var DefaultGlobals = []string{
	"print", "alert", "console", "undefined", "NaN", "Infinity",
	"parseInt", "parseFloat", "isNaN", "isFinite", "String", "Number", "Boolean",
}

// Config controls a single traversal.
type Config struct {
	Globals     []string // predeclared names; nil means DefaultGlobals
	StepBudget  int      // maximum visited nodes; zero means unlimited
	TrackValues bool     // record literal stores for the same-value report
}

// Result is what one traversal observed. On failure it holds whatever was
// collected before the error.
type Result struct {
	Vector    flow.Vector
	Entries   []diag.Entry
	Values    *Values
	Steps     int
	Decisions int
}

// Traverse walks program along vector.
func Traverse(ctx context.Context, program *ast.Program, vector flow.Vector, cfg Config) (*Result, error) {
	collector := diag.NewCollector()
	w := &walker{
		ctx:    ctx,
		chain:  scope.New(collector),
		cursor: flow.NewCursor(vector),
		budget: cfg.StepBudget,
	}
	if cfg.TrackValues {
		w.values = &Values{}
	}

	globals := cfg.Globals
	if globals == nil {
		globals = DefaultGlobals
	}
	for _, name := range globals {
		w.chain.DeclareUsed(name)
	}

	err := w.program(program)

	return &Result{
		Vector:    vector,
		Entries:   collector.Entries(),
		Values:    w.values,
		Steps:     w.steps,
		Decisions: w.cursor.Index(),
	}, err
}

type walker struct {
	ctx    context.Context
	chain  *scope.Chain
	cursor *flow.Cursor
	values *Values
	steps  int
	budget int
}

func (w *walker) program(p *ast.Program) error {
	w.chain.EnterScope()
	for _, stmt := range p.Body {
		if err := w.stmt(stmt); err != nil {
			return err
		}
	}
	if err := w.chain.ExitScope(p.EndPos); err != nil {
		return fail(p, err)
	}
	if err := w.cursor.Finish(); err != nil {
		return fail(p, err)
	}
	return nil
}

// step charges one visited node against the budget and polls ctx every
// 1024 nodes.
func (w *walker) step(node ast.Node) error {
	w.steps++
	if w.budget > 0 && w.steps > w.budget {
		return fail(node, fmt.Errorf("%w: %d nodes", ErrBudgetExceeded, w.budget))
	}
	if w.steps&1023 == 0 {
		if err := w.ctx.Err(); err != nil {
			return fail(node, err)
		}
	}
	return nil
}

func (w *walker) decide(node ast.Node) (bool, error) {
	bit, err := w.cursor.Next()
	if err != nil {
		return false, fail(node, err)
	}
	return bit, nil
}

func (w *walker) skip(node ast.Node) error {
	if node == nil {
		return nil
	}
	if err := w.cursor.Skip(flow.CountBranchPoints(node)); err != nil {
		return fail(node, err)
	}
	return nil
}

func (w *walker) exit(node ast.Node) error {
	if err := w.chain.ExitScope(node.NodeEndPos()); err != nil {
		return fail(node, err)
	}
	return nil
}

func (w *walker) stmts(list []ast.Stmt) error {
	for _, stmt := range list {
		if err := w.stmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// scoped runs body inside a fresh scope that closes at the end of body. A
// block body shares that scope instead of opening its own.
func (w *walker) scoped(body ast.Stmt) error {
	w.chain.EnterScope()
	var err error
	if block, ok := body.(*ast.BlockStmt); ok {
		err = w.stmts(block.Body)
	} else {
		err = w.stmt(body)
	}
	if err != nil {
		return err
	}
	return w.exit(body)
}

func (w *walker) stmt(s ast.Stmt) error {
	if err := w.step(s); err != nil {
		return err
	}

	switch n := s.(type) {
	case *ast.VarDecl:
		return w.varDecl(n)
	case *ast.BlockStmt:
		w.chain.EnterScope()
		if err := w.stmts(n.Body); err != nil {
			return err
		}
		return w.exit(n)
	case *ast.IfStmt:
		return w.ifStmt(n)
	case *ast.WhileStmt:
		return w.whileStmt(n)
	case *ast.DoWhileStmt:
		if err := w.scoped(n.Body); err != nil {
			return err
		}
		return w.expr(n.Test)
	case *ast.ForStmt:
		return w.forStmt(n)
	case *ast.SwitchStmt:
		return w.switchStmt(n)
	case *ast.FuncDecl:
		w.chain.Declare(n.Name.Value, n.Name.Pos)
		return w.function(n, "", n.Params, n.Body.Body, nil)
	case *ast.ReturnStmt:
		if n.Argument == nil {
			return nil
		}
		return w.expr(n.Argument)
	case *ast.ExprStmt:
		return w.expr(n.Expr)
	case *ast.EmptyStmt, *ast.BranchStmt:
		return nil
	default:
		return unsupported(s)
	}
}

func (w *walker) varDecl(decl *ast.VarDecl) error {
	for _, d := range decl.Declarators {
		w.chain.Declare(d.Name.Value, d.Name.Pos)
		if d.Init == nil {
			continue
		}
		if err := w.expr(d.Init); err != nil {
			return err
		}
		w.track(Binding{Name: d.Name.Value, Declared: d.Name.Pos}, d.Init)
	}
	return nil
}

func (w *walker) ifStmt(n *ast.IfStmt) error {
	if err := w.expr(n.Test); err != nil {
		return err
	}
	taken, err := w.decide(n)
	if err != nil {
		return err
	}

	if !taken {
		if err := w.skip(n.Consequent); err != nil {
			return err
		}
		if n.Alternate == nil {
			return nil
		}
		return w.stmt(n.Alternate)
	}

	if err := w.scoped(n.Consequent); err != nil {
		return err
	}
	switch n.Alternate.(type) {
	case nil:
		return nil
	case *ast.IfStmt, *ast.WhileStmt, *ast.DoWhileStmt:
		// A chained conditional or loop is still explored on this path.
		return w.stmt(n.Alternate)
	default:
		return w.skip(n.Alternate)
	}
}

func (w *walker) whileStmt(n *ast.WhileStmt) error {
	if err := w.expr(n.Test); err != nil {
		return err
	}
	taken, err := w.decide(n)
	if err != nil {
		return err
	}
	if !taken {
		return w.skip(n.Body)
	}
	if err := w.scoped(n.Body); err != nil {
		return err
	}
	return w.reread(n.Test)
}

func (w *walker) forStmt(n *ast.ForStmt) error {
	w.chain.EnterScope()

	if n.Init != nil {
		if err := w.stmt(n.Init); err != nil {
			return err
		}
	}
	if n.Test != nil {
		if err := w.expr(n.Test); err != nil {
			return err
		}
	}

	taken, err := w.decide(n)
	if err != nil {
		return err
	}
	if taken {
		err = w.scoped(n.Body)
	} else {
		err = w.skip(n.Body)
	}
	if err != nil {
		return err
	}

	// The header always runs: update, then the test that follows it.
	if n.Update != nil {
		if err := w.expr(n.Update); err != nil {
			return err
		}
	}
	if n.Test != nil {
		if err := w.reread(n.Test); err != nil {
			return err
		}
	}
	return w.exit(n)
}

// switchStmt walks the discriminant, then every case test and body in
// source order on the live chain, so a store made in one case reaches the
// reads of the cases after it. Each case body has its own scope. A switch
// consumes no decisions.
func (w *walker) switchStmt(n *ast.SwitchStmt) error {
	if err := w.expr(n.Discriminant); err != nil {
		return err
	}
	for _, c := range n.Cases {
		if c.Test != nil {
			if err := w.expr(c.Test); err != nil {
				return err
			}
		}
		w.chain.EnterScope()
		if err := w.stmts(c.Consequent); err != nil {
			return err
		}
		if err := w.exit(c); err != nil {
			return err
		}
	}
	return nil
}

// function walks a function body in its own scope. self names a function
// expression inside its own body. Exactly one of body and expr is used.
func (w *walker) function(node ast.Node, self string, params []*ast.Param, body []ast.Stmt, expr ast.Expr) error {
	w.chain.EnterScope()
	if self != "" {
		w.chain.DeclareUsed(self)
	}
	for _, p := range params {
		w.chain.Declare(p.Name.Value, p.Name.Pos)
		if w.values != nil {
			w.values.unknown(Binding{Name: p.Name.Value, Declared: p.Name.Pos})
		}
		if p.Default != nil {
			if err := w.expr(p.Default); err != nil {
				return err
			}
		}
	}

	if expr != nil {
		if err := w.expr(expr); err != nil {
			return err
		}
	} else if err := w.stmts(body); err != nil {
		return err
	}
	return w.exit(node)
}

func (w *walker) expr(e ast.Expr) error {
	if err := w.step(e); err != nil {
		return err
	}

	switch n := e.(type) {
	case *ast.LiteralExpr:
		return nil
	case *ast.IdentExpr:
		if err := w.chain.Read(n.Name); err != nil {
			return fail(n, err)
		}
		return nil
	case *ast.BinaryExpr:
		return w.pair(n.Left, n.Right)
	case *ast.LogicalExpr:
		return w.pair(n.Left, n.Right)
	case *ast.ConditionalExpr:
		return w.list([]ast.Expr{n.Test, n.Consequent, n.Alternate})
	case *ast.AssignExpr:
		return w.assign(n)
	case *ast.UpdateExpr:
		return w.update(n)
	case *ast.CallExpr:
		if err := w.expr(n.Callee); err != nil {
			return err
		}
		return w.list(n.Args)
	case *ast.SequenceExpr:
		return w.list(n.Exprs)
	case *ast.ArrayExpr:
		return w.list(n.Elements)
	case *ast.FuncExpr:
		self := ""
		if n.Name != nil {
			self = n.Name.Value
		}
		return w.function(n, self, n.Params, n.Body.Body, nil)
	case *ast.ArrowFuncExpr:
		if n.Body != nil {
			return w.function(n, "", n.Params, n.Body.Body, nil)
		}
		return w.function(n, "", n.Params, nil, n.ExprBody)
	case *ast.ParenExpr:
		return w.expr(n.Value)
	case *ast.UnaryExpr:
		return w.expr(n.Value)
	default:
		return unsupported(e)
	}
}

func (w *walker) pair(left, right ast.Expr) error {
	if err := w.expr(left); err != nil {
		return err
	}
	return w.expr(right)
}

func (w *walker) list(exprs []ast.Expr) error {
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if err := w.expr(e); err != nil {
			return err
		}
	}
	return nil
}

// reread marks the identifiers of a loop test as read once more after the
// body. The test was already walked, so branch points inside it and the
// bodies of functions it defines are not visited again and no decision is
// consumed. The target of a simple assignment is not a read.
func (w *walker) reread(e ast.Expr) error {
	var err error
	ast.Inspect(e, func(node ast.Node) bool {
		if err != nil {
			return false
		}
		switch n := node.(type) {
		case *ast.FuncExpr, *ast.ArrowFuncExpr:
			return false
		case *ast.AssignExpr:
			if !n.IsCompound() {
				err = w.reread(n.Value)
				return false
			}
		case *ast.IdentExpr:
			if rerr := w.chain.Read(n.Name); rerr != nil {
				err = fail(n, rerr)
			}
		}
		return true
	})
	return err
}

// target resolves the identifier a store goes to.
func target(e ast.Expr) (*ast.IdentExpr, bool) {
	for {
		switch n := e.(type) {
		case *ast.IdentExpr:
			return n, true
		case *ast.ParenExpr:
			e = n.Value
		default:
			return nil, false
		}
	}
}

func (w *walker) assign(n *ast.AssignExpr) error {
	id, ok := target(n.Target)
	if !ok {
		return unsupported(n.Target)
	}
	if err := w.expr(n.Value); err != nil {
		return err
	}

	var err error
	if n.IsCompound() {
		err = w.chain.ReadWrite(id.Name, id.Pos)
	} else {
		err = w.chain.Write(id.Name, id.Pos)
	}
	if err != nil {
		return fail(id, err)
	}

	if n.IsCompound() {
		w.trackUnknown(id.Name)
	} else if b, ok := w.binding(id.Name); ok {
		w.track(b, n.Value)
	}
	return nil
}

func (w *walker) update(n *ast.UpdateExpr) error {
	id, ok := target(n.Target)
	if !ok {
		return unsupported(n.Target)
	}
	if err := w.chain.ReadWrite(id.Name, id.Pos); err != nil {
		return fail(id, err)
	}
	w.trackUnknown(id.Name)
	return nil
}

// binding resolves name to its declaration. Predeclared globals have no
// declaration site and are not tracked.
func (w *walker) binding(name string) (Binding, bool) {
	if w.values == nil {
		return Binding{}, false
	}
	info, _, ok := w.chain.Lookup(name)
	if !ok || !info.Declared.IsValid() {
		return Binding{}, false
	}
	return Binding{Name: name, Declared: info.Declared}, true
}

func (w *walker) track(b Binding, value ast.Expr) {
	if w.values == nil {
		return
	}
	if lit, ok := literalValue(value); ok {
		w.values.literal(b, lit)
		return
	}
	w.values.unknown(b)
}

func (w *walker) trackUnknown(name string) {
	if b, ok := w.binding(name); ok {
		w.values.unknown(b)
	}
}

// IsStructural reports whether err invalidates the whole run rather than
// the single vector that produced it.
func IsStructural(err error) bool {
	return errors.Is(err, scope.ErrNoParentScope)
}

// IsIncomplete reports whether err stopped a traversal before it could
// finish for reasons unrelated to the program's shape.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrBudgetExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
