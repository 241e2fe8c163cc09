package sitter

import (
	ts "github.com/smacker/go-tree-sitter"

	"deadstore/internal/ast"
)

func (l *lowerer) stmts(nodes []*ts.Node) []ast.Stmt {
	var out []ast.Stmt
	for _, n := range nodes {
		if s := l.stmt(n); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (l *lowerer) stmt(n *ts.Node) ast.Stmt {
	switch n.Type() {
	case "lexical_declaration", "variable_declaration":
		return l.varDecl(n)
	case "expression_statement":
		children := named(n)
		if len(children) == 0 {
			return &ast.EmptyStmt{Pos: l.start(n), EndPos: l.end(n)}
		}
		return &ast.ExprStmt{Pos: l.start(n), EndPos: l.end(n), Expr: l.expr(children[0])}
	case "statement_block":
		return l.block(n)
	case "if_statement":
		return l.ifStmt(n)
	case "while_statement":
		return &ast.WhileStmt{
			Pos:    l.start(n),
			EndPos: l.end(n),
			Test:   l.condition(n.ChildByFieldName("condition")),
			Body:   l.body(n.ChildByFieldName("body")),
		}
	case "do_statement":
		return &ast.DoWhileStmt{
			Pos:    l.start(n),
			EndPos: l.end(n),
			Body:   l.body(n.ChildByFieldName("body")),
			Test:   l.condition(n.ChildByFieldName("condition")),
		}
	case "for_statement":
		return l.forStmt(n)
	case "switch_statement":
		return l.switchStmt(n)
	case "function_declaration":
		return &ast.FuncDecl{
			Pos:    l.start(n),
			EndPos: l.end(n),
			Name:   l.ident(n.ChildByFieldName("name")),
			Params: l.params(n),
			Body:   l.block(n.ChildByFieldName("body")),
		}
	case "return_statement":
		ret := &ast.ReturnStmt{Pos: l.start(n), EndPos: l.end(n)}
		if children := named(n); len(children) > 0 {
			ret.Argument = l.expr(children[0])
		}
		return ret
	case "break_statement":
		return &ast.BranchStmt{Pos: l.start(n), EndPos: l.end(n), Keyword: "break"}
	case "continue_statement":
		return &ast.BranchStmt{Pos: l.start(n), EndPos: l.end(n), Keyword: "continue"}
	case "empty_statement":
		return &ast.EmptyStmt{Pos: l.start(n), EndPos: l.end(n)}
	case "comment":
		return nil
	default:
		return &ast.BadStmt{Bad: l.bad(n, "statement is not supported")}
	}
}

func (l *lowerer) block(n *ts.Node) *ast.BlockStmt {
	if n == nil {
		return &ast.BlockStmt{}
	}
	return &ast.BlockStmt{
		Pos:    l.start(n),
		EndPos: l.end(n),
		Body:   l.stmts(named(n)),
	}
}

func (l *lowerer) body(n *ts.Node) ast.Stmt {
	if n == nil {
		return &ast.EmptyStmt{}
	}
	if s := l.stmt(n); s != nil {
		return s
	}
	return &ast.EmptyStmt{Pos: l.start(n), EndPos: l.end(n)}
}

// condition unwraps the parentheses around a statement's test.
func (l *lowerer) condition(n *ts.Node) ast.Expr {
	if n == nil {
		return nil
	}
	if n.Type() == "parenthesized_expression" {
		if children := named(n); len(children) == 1 {
			return l.expr(children[0])
		}
	}
	return l.expr(n)
}

func (l *lowerer) varDecl(n *ts.Node) ast.Stmt {
	decl := &ast.VarDecl{
		Pos:    l.start(n),
		EndPos: l.end(n),
		Kind:   n.Child(0).Type(),
	}
	for _, c := range named(n) {
		if c.Type() != "variable_declarator" {
			continue
		}
		name := c.ChildByFieldName("name")
		if name == nil || name.Type() != "identifier" {
			return &ast.BadStmt{Bad: l.bad(c, "destructuring declarations are not supported")}
		}
		d := &ast.Declarator{
			Pos:    l.start(c),
			EndPos: l.end(c),
			Name:   l.ident(name),
		}
		if value := c.ChildByFieldName("value"); value != nil {
			d.Init = l.expr(value)
		}
		decl.Declarators = append(decl.Declarators, d)
	}
	return decl
}

func (l *lowerer) ifStmt(n *ts.Node) ast.Stmt {
	stmt := &ast.IfStmt{
		Pos:        l.start(n),
		EndPos:     l.end(n),
		Test:       l.condition(n.ChildByFieldName("condition")),
		Consequent: l.body(n.ChildByFieldName("consequence")),
	}
	alt := n.ChildByFieldName("alternative")
	if alt == nil {
		return stmt
	}
	if alt.Type() == "else_clause" {
		children := named(alt)
		if len(children) == 0 {
			return stmt
		}
		alt = children[0]
	}
	stmt.Alternate = l.body(alt)
	return stmt
}

// forStmt accepts both shapes the grammar has used for the loop header:
// statements ending in ";" or bare expressions.
func (l *lowerer) forStmt(n *ts.Node) ast.Stmt {
	stmt := &ast.ForStmt{
		Pos:    l.start(n),
		EndPos: l.end(n),
		Body:   l.body(n.ChildByFieldName("body")),
	}

	if init := n.ChildByFieldName("initializer"); init != nil && init.IsNamed() {
		switch init.Type() {
		case "lexical_declaration", "variable_declaration":
			stmt.Init = l.varDecl(init)
		case "empty_statement":
		case "expression_statement":
			stmt.Init = l.stmt(init)
		default:
			e := l.expr(init)
			stmt.Init = &ast.ExprStmt{Pos: e.NodePos(), EndPos: e.NodeEndPos(), Expr: e}
		}
	}

	if cond := n.ChildByFieldName("condition"); cond != nil && cond.IsNamed() {
		switch cond.Type() {
		case "empty_statement":
		case "expression_statement":
			if children := named(cond); len(children) > 0 {
				stmt.Test = l.expr(children[0])
			}
		default:
			stmt.Test = l.expr(cond)
		}
	}

	if inc := n.ChildByFieldName("increment"); inc != nil && inc.IsNamed() {
		stmt.Update = l.expr(inc)
	}
	return stmt
}

func (l *lowerer) switchStmt(n *ts.Node) ast.Stmt {
	stmt := &ast.SwitchStmt{
		Pos:          l.start(n),
		EndPos:       l.end(n),
		Discriminant: l.condition(n.ChildByFieldName("value")),
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return stmt
	}
	for _, c := range named(body) {
		sc := &ast.SwitchCase{Pos: l.start(c), EndPos: l.end(c)}
		value := c.ChildByFieldName("value")
		if c.Type() == "switch_case" && value != nil {
			sc.Test = l.expr(value)
		}
		var consequent []*ts.Node
		for _, s := range named(c) {
			if same(s, value) {
				continue
			}
			consequent = append(consequent, s)
		}
		sc.Consequent = l.stmts(consequent)
		stmt.Cases = append(stmt.Cases, sc)
	}
	return stmt
}
