package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, stmt := range p.Body {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (c *Comment) String() string {
	return c.Text
}

func (bs *BadStmt) String() string {
	return fmt.Sprintf("BadStmt(%s): %s", bs.Bad.Kind, bs.Bad.Message)
}

func (v *VarDecl) String() string {
	parts := make([]string, 0, len(v.Declarators))
	for _, d := range v.Declarators {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%s %s;", v.Kind, strings.Join(parts, ", "))
}

func (d *Declarator) String() string {
	if d.Init == nil {
		return d.Name.Value
	}
	return fmt.Sprintf("%s = %s", d.Name.Value, d.Init.String())
}

func (b *BlockStmt) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Body {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (s *IfStmt) String() string {
	out := fmt.Sprintf("if (%s) %s", s.Test.String(), s.Consequent.String())
	if s.Alternate != nil {
		out += " else " + s.Alternate.String()
	}
	return out
}

func (w *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", w.Test.String(), w.Body.String())
}

func (d *DoWhileStmt) String() string {
	return fmt.Sprintf("do %s while (%s);", d.Body.String(), d.Test.String())
}

func (f *ForStmt) String() string {
	var init, test, update string
	if f.Init != nil {
		init = strings.TrimSuffix(f.Init.String(), ";")
	}
	if f.Test != nil {
		test = f.Test.String()
	}
	if f.Update != nil {
		update = f.Update.String()
	}
	return fmt.Sprintf("for (%s; %s; %s) %s", init, test, update, f.Body.String())
}

func (s *SwitchStmt) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("switch (%s) {\n", s.Discriminant.String()))
	for _, c := range s.Cases {
		b.WriteString("  " + strings.ReplaceAll(c.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (c *SwitchCase) String() string {
	var b strings.Builder
	if c.Test == nil {
		b.WriteString("default:")
	} else {
		b.WriteString(fmt.Sprintf("case %s:", c.Test.String()))
	}
	for _, stmt := range c.Consequent {
		b.WriteString("\n  " + strings.ReplaceAll(stmt.String(), "\n", "\n  "))
	}
	return b.String()
}

func (f *FuncDecl) String() string {
	return fmt.Sprintf("function %s(%s) %s", f.Name.Value, paramList(f.Params), f.Body.String())
}

func (p *Param) String() string {
	name := p.Name.Value
	if p.Rest {
		name = "..." + name
	}
	if p.Default != nil {
		name += " = " + p.Default.String()
	}
	return name
}

func (r *ReturnStmt) String() string {
	if r.Argument == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Argument.String())
}

func (e *ExprStmt) String() string {
	return e.Expr.String() + ";"
}

func (*EmptyStmt) String() string {
	return ";"
}

func (b *BranchStmt) String() string {
	return b.Keyword + ";"
}

func (be *BadExpr) String() string {
	return fmt.Sprintf("BadExpr(%s): %s", be.Bad.Kind, be.Bad.Message)
}

func (l *LiteralExpr) String() string {
	if l.Kind == StringLiteral {
		return fmt.Sprintf("%q", l.Value)
	}
	return l.Value
}

func (i *IdentExpr) String() string {
	return i.Name
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left.String(), b.Op, b.Right.String())
}

func (l *LogicalExpr) String() string {
	return fmt.Sprintf("%s %s %s", l.Left.String(), l.Op, l.Right.String())
}

func (c *ConditionalExpr) String() string {
	return fmt.Sprintf("%s ? %s : %s", c.Test.String(), c.Consequent.String(), c.Alternate.String())
}

func (a *AssignExpr) String() string {
	return fmt.Sprintf("%s %s %s", a.Target.String(), a.Op, a.Value.String())
}

func (u *UpdateExpr) String() string {
	if u.Prefix {
		return u.Op + u.Target.String()
	}
	return u.Target.String() + u.Op
}

func (c *CallExpr) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee.String(), exprList(c.Args))
}

func (s *SequenceExpr) String() string {
	return exprList(s.Exprs)
}

func (a *ArrayExpr) String() string {
	return "[" + exprList(a.Elements) + "]"
}

func (f *FuncExpr) String() string {
	name := ""
	if f.Name != nil {
		name = " " + f.Name.Value
	}
	return fmt.Sprintf("function%s(%s) %s", name, paramList(f.Params), f.Body.String())
}

func (a *ArrowFuncExpr) String() string {
	if a.Body != nil {
		return fmt.Sprintf("(%s) => %s", paramList(a.Params), a.Body.String())
	}
	return fmt.Sprintf("(%s) => %s", paramList(a.Params), a.ExprBody.String())
}

func (p *ParenExpr) String() string {
	return "(" + p.Value.String() + ")"
}

func (u *UnaryExpr) String() string {
	if u.Op == "typeof" {
		return "typeof " + u.Value.String()
	}
	return u.Op + u.Value.String()
}

func exprList(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

func paramList(params []*Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
