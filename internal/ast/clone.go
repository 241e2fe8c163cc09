package ast

// Clone returns a deep copy of the program. Nothing in the copy aliases
// the original, so each copy can be handed to an independent traversal.
func Clone(p *Program) *Program {
	if p == nil {
		return nil
	}

	out := &Program{
		Pos:    p.Pos,
		EndPos: p.EndPos,
		Path:   p.Path,
		Body:   cloneStmts(p.Body),
	}
	if p.Comments != nil {
		out.Comments = make([]*Comment, len(p.Comments))
		for i, c := range p.Comments {
			cc := *c
			out.Comments[i] = &cc
		}
	}
	return out
}

// CloneStmt deep-copies a single statement.
func CloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}

	switch n := s.(type) {
	case *BadStmt:
		c := *n
		return &c
	case *VarDecl:
		c := *n
		c.Declarators = make([]*Declarator, len(n.Declarators))
		for i, d := range n.Declarators {
			dc := *d
			dc.Init = CloneExpr(d.Init)
			c.Declarators[i] = &dc
		}
		return &c
	case *BlockStmt:
		return cloneBlock(n)
	case *IfStmt:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Consequent = CloneStmt(n.Consequent)
		c.Alternate = CloneStmt(n.Alternate)
		return &c
	case *WhileStmt:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Body = CloneStmt(n.Body)
		return &c
	case *DoWhileStmt:
		c := *n
		c.Body = CloneStmt(n.Body)
		c.Test = CloneExpr(n.Test)
		return &c
	case *ForStmt:
		c := *n
		c.Init = CloneStmt(n.Init)
		c.Test = CloneExpr(n.Test)
		c.Update = CloneExpr(n.Update)
		c.Body = CloneStmt(n.Body)
		return &c
	case *SwitchStmt:
		c := *n
		c.Discriminant = CloneExpr(n.Discriminant)
		c.Cases = make([]*SwitchCase, len(n.Cases))
		for i, sc := range n.Cases {
			cc := *sc
			cc.Test = CloneExpr(sc.Test)
			cc.Consequent = cloneStmts(sc.Consequent)
			c.Cases[i] = &cc
		}
		return &c
	case *FuncDecl:
		c := *n
		c.Params = cloneParams(n.Params)
		c.Body = cloneBlock(n.Body)
		return &c
	case *ReturnStmt:
		c := *n
		c.Argument = CloneExpr(n.Argument)
		return &c
	case *ExprStmt:
		c := *n
		c.Expr = CloneExpr(n.Expr)
		return &c
	case *EmptyStmt:
		c := *n
		return &c
	case *BranchStmt:
		c := *n
		return &c
	}
	return s
}

// CloneExpr deep-copies a single expression.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *BadExpr:
		c := *n
		return &c
	case *LiteralExpr:
		c := *n
		return &c
	case *IdentExpr:
		c := *n
		return &c
	case *BinaryExpr:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *LogicalExpr:
		c := *n
		c.Left = CloneExpr(n.Left)
		c.Right = CloneExpr(n.Right)
		return &c
	case *ConditionalExpr:
		c := *n
		c.Test = CloneExpr(n.Test)
		c.Consequent = CloneExpr(n.Consequent)
		c.Alternate = CloneExpr(n.Alternate)
		return &c
	case *AssignExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		c.Value = CloneExpr(n.Value)
		return &c
	case *UpdateExpr:
		c := *n
		c.Target = CloneExpr(n.Target)
		return &c
	case *CallExpr:
		c := *n
		c.Callee = CloneExpr(n.Callee)
		c.Args = cloneExprs(n.Args)
		return &c
	case *SequenceExpr:
		c := *n
		c.Exprs = cloneExprs(n.Exprs)
		return &c
	case *ArrayExpr:
		c := *n
		c.Elements = cloneExprs(n.Elements)
		return &c
	case *FuncExpr:
		c := *n
		if n.Name != nil {
			name := *n.Name
			c.Name = &name
		}
		c.Params = cloneParams(n.Params)
		c.Body = cloneBlock(n.Body)
		return &c
	case *ArrowFuncExpr:
		c := *n
		c.Params = cloneParams(n.Params)
		c.Body = cloneBlock(n.Body)
		c.ExprBody = CloneExpr(n.ExprBody)
		return &c
	case *ParenExpr:
		c := *n
		c.Value = CloneExpr(n.Value)
		return &c
	case *UnaryExpr:
		c := *n
		c.Value = CloneExpr(n.Value)
		return &c
	}
	return e
}

func cloneBlock(b *BlockStmt) *BlockStmt {
	if b == nil {
		return nil
	}
	c := *b
	c.Body = cloneStmts(b.Body)
	return &c
}

func cloneStmts(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(s)
	}
	return out
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(e)
	}
	return out
}

func cloneParams(params []*Param) []*Param {
	if params == nil {
		return nil
	}
	out := make([]*Param, len(params))
	for i, p := range params {
		c := *p
		c.Default = CloneExpr(p.Default)
		out[i] = &c
	}
	return out
}
