package ast

// Inspect traverses the tree rooted at node in depth-first pre-order,
// calling f for each node. If f returns false the children of that node
// are skipped. Nil children are never passed to f.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Body {
			inspectStmt(s, f)
		}
	case *VarDecl:
		for _, d := range n.Declarators {
			Inspect(d, f)
		}
	case *Declarator:
		Inspect(&n.Name, f)
		inspectExpr(n.Init, f)
	case *BlockStmt:
		for _, s := range n.Body {
			inspectStmt(s, f)
		}
	case *IfStmt:
		inspectExpr(n.Test, f)
		inspectStmt(n.Consequent, f)
		inspectStmt(n.Alternate, f)
	case *WhileStmt:
		inspectExpr(n.Test, f)
		inspectStmt(n.Body, f)
	case *DoWhileStmt:
		inspectStmt(n.Body, f)
		inspectExpr(n.Test, f)
	case *ForStmt:
		inspectStmt(n.Init, f)
		inspectExpr(n.Test, f)
		inspectExpr(n.Update, f)
		inspectStmt(n.Body, f)
	case *SwitchStmt:
		inspectExpr(n.Discriminant, f)
		for _, c := range n.Cases {
			Inspect(c, f)
		}
	case *SwitchCase:
		inspectExpr(n.Test, f)
		for _, s := range n.Consequent {
			inspectStmt(s, f)
		}
	case *FuncDecl:
		Inspect(&n.Name, f)
		inspectParams(n.Params, f)
		inspectBlock(n.Body, f)
	case *Param:
		Inspect(&n.Name, f)
		inspectExpr(n.Default, f)
	case *ReturnStmt:
		inspectExpr(n.Argument, f)
	case *ExprStmt:
		inspectExpr(n.Expr, f)
	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *LogicalExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *ConditionalExpr:
		inspectExpr(n.Test, f)
		inspectExpr(n.Consequent, f)
		inspectExpr(n.Alternate, f)
	case *AssignExpr:
		inspectExpr(n.Target, f)
		inspectExpr(n.Value, f)
	case *UpdateExpr:
		inspectExpr(n.Target, f)
	case *CallExpr:
		inspectExpr(n.Callee, f)
		for _, a := range n.Args {
			inspectExpr(a, f)
		}
	case *SequenceExpr:
		for _, e := range n.Exprs {
			inspectExpr(e, f)
		}
	case *ArrayExpr:
		for _, e := range n.Elements {
			inspectExpr(e, f)
		}
	case *FuncExpr:
		if n.Name != nil {
			Inspect(n.Name, f)
		}
		inspectParams(n.Params, f)
		inspectBlock(n.Body, f)
	case *ArrowFuncExpr:
		inspectParams(n.Params, f)
		inspectBlock(n.Body, f)
		inspectExpr(n.ExprBody, f)
	case *ParenExpr:
		inspectExpr(n.Value, f)
	case *UnaryExpr:
		inspectExpr(n.Value, f)
	}
}

func inspectStmt(s Stmt, f func(Node) bool) {
	if s != nil {
		Inspect(s, f)
	}
}

func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}

func inspectBlock(b *BlockStmt, f func(Node) bool) {
	if b != nil {
		Inspect(b, f)
	}
}

func inspectParams(params []*Param, f func(Node) bool) {
	for _, p := range params {
		Inspect(p, f)
	}
}
