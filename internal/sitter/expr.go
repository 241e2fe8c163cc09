package sitter

import (
	ts "github.com/smacker/go-tree-sitter"

	"deadstore/internal/ast"
)

var logicalOps = map[string]bool{"&&": true, "||": true, "??": true}

func (l *lowerer) exprs(nodes []*ts.Node) []ast.Expr {
	out := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, l.expr(n))
	}
	return out
}

func (l *lowerer) operator(n *ts.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return op.Type()
	}
	return ""
}

func (l *lowerer) expr(n *ts.Node) ast.Expr {
	if n == nil {
		return nil
	}
	pos, end := l.start(n), l.end(n)

	switch n.Type() {
	case "identifier", "undefined":
		return &ast.IdentExpr{Pos: pos, EndPos: end, Name: l.text(n)}
	case "number":
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Kind: ast.NumberLiteral, Value: l.text(n)}
	case "string":
		raw := l.text(n)
		if len(raw) >= 2 {
			raw = raw[1 : len(raw)-1]
		}
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Kind: ast.StringLiteral, Value: raw}
	case "true", "false":
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Kind: ast.BooleanLiteral, Value: n.Type()}
	case "null":
		return &ast.LiteralExpr{Pos: pos, EndPos: end, Kind: ast.NullLiteral, Value: "null"}
	case "parenthesized_expression":
		children := named(n)
		if len(children) != 1 {
			return &ast.BadExpr{Bad: l.bad(n, "malformed parenthesized expression")}
		}
		return &ast.ParenExpr{Pos: pos, EndPos: end, Value: l.expr(children[0])}
	case "binary_expression":
		op := l.operator(n)
		left := l.expr(n.ChildByFieldName("left"))
		right := l.expr(n.ChildByFieldName("right"))
		if logicalOps[op] {
			return &ast.LogicalExpr{Pos: pos, EndPos: end, Op: op, Left: left, Right: right}
		}
		return &ast.BinaryExpr{Pos: pos, EndPos: end, Op: op, Left: left, Right: right}
	case "unary_expression":
		op := l.operator(n)
		if op != "-" && op != "+" && op != "!" && op != "~" && op != "typeof" {
			return &ast.BadExpr{Bad: l.bad(n, "operator "+op+" is not supported")}
		}
		return &ast.UnaryExpr{Pos: pos, EndPos: end, Op: op, Value: l.expr(n.ChildByFieldName("argument"))}
	case "update_expression":
		first := n.Child(0)
		return &ast.UpdateExpr{
			Pos:    pos,
			EndPos: end,
			Op:     l.operator(n),
			Prefix: first != nil && (first.Type() == "++" || first.Type() == "--"),
			Target: l.expr(n.ChildByFieldName("argument")),
		}
	case "assignment_expression":
		return &ast.AssignExpr{
			Pos:    pos,
			EndPos: end,
			Op:     "=",
			Target: l.expr(n.ChildByFieldName("left")),
			Value:  l.expr(n.ChildByFieldName("right")),
		}
	case "augmented_assignment_expression":
		return &ast.AssignExpr{
			Pos:    pos,
			EndPos: end,
			Op:     l.operator(n),
			Target: l.expr(n.ChildByFieldName("left")),
			Value:  l.expr(n.ChildByFieldName("right")),
		}
	case "ternary_expression":
		return &ast.ConditionalExpr{
			Pos:        pos,
			EndPos:     end,
			Test:       l.expr(n.ChildByFieldName("condition")),
			Consequent: l.expr(n.ChildByFieldName("consequence")),
			Alternate:  l.expr(n.ChildByFieldName("alternative")),
		}
	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args == nil || args.Type() != "arguments" {
			return &ast.BadExpr{Bad: l.bad(n, "tagged templates are not supported")}
		}
		return &ast.CallExpr{
			Pos:    pos,
			EndPos: end,
			Callee: l.expr(n.ChildByFieldName("function")),
			Args:   l.exprs(named(args)),
		}
	case "sequence_expression":
		return &ast.SequenceExpr{Pos: pos, EndPos: end, Exprs: l.exprs(flatten(n))}
	case "array":
		return &ast.ArrayExpr{Pos: pos, EndPos: end, Elements: l.exprs(named(n))}
	case "arrow_function":
		return l.arrow(n)
	case "function", "function_expression":
		fn := &ast.FuncExpr{
			Pos:    pos,
			EndPos: end,
			Params: l.params(n),
			Body:   l.block(n.ChildByFieldName("body")),
		}
		if name := n.ChildByFieldName("name"); name != nil {
			id := l.ident(name)
			fn.Name = &id
		}
		return fn
	default:
		return &ast.BadExpr{Bad: l.bad(n, "expression is not supported")}
	}
}

// flatten collects the operands of a possibly nested comma expression.
func flatten(n *ts.Node) []*ts.Node {
	var out []*ts.Node
	for _, c := range named(n) {
		if c.Type() == "sequence_expression" {
			out = append(out, flatten(c)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (l *lowerer) arrow(n *ts.Node) ast.Expr {
	fn := &ast.ArrowFuncExpr{Pos: l.start(n), EndPos: l.end(n)}
	if single := n.ChildByFieldName("parameter"); single != nil {
		fn.Params = []*ast.Param{{Pos: l.start(single), EndPos: l.end(single), Name: l.ident(single)}}
	} else {
		fn.Params = l.params(n)
	}

	body := n.ChildByFieldName("body")
	if body != nil && body.Type() == "statement_block" {
		fn.Body = l.block(body)
	} else {
		fn.ExprBody = l.expr(body)
	}
	return fn
}

func (l *lowerer) params(fn *ts.Node) []*ast.Param {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}

	var params []*ast.Param
	for _, p := range named(list) {
		param := &ast.Param{Pos: l.start(p), EndPos: l.end(p)}
		switch p.Type() {
		case "identifier":
			param.Name = l.ident(p)
		case "assignment_pattern":
			left := p.ChildByFieldName("left")
			if left == nil || left.Type() != "identifier" {
				l.errorAt(p, "destructuring parameters are not supported")
				continue
			}
			param.Name = l.ident(left)
			param.Default = l.expr(p.ChildByFieldName("right"))
		case "rest_pattern":
			children := named(p)
			if len(children) != 1 || children[0].Type() != "identifier" {
				l.errorAt(p, "destructuring parameters are not supported")
				continue
			}
			param.Name = l.ident(children[0])
			param.Rest = true
		default:
			l.errorAt(p, "destructuring parameters are not supported")
			continue
		}
		params = append(params, param)
	}
	return params
}
