package analysis

import (
	"cmp"
	"slices"
	"strings"

	"deadstore/internal/ast"
)

// Binding identifies one declared variable: its name and declaration site.
type Binding struct {
	Name     string
	Declared ast.Position
}

// Observed is what one binding was assigned across the explored paths.
type Observed struct {
	Literals map[string]struct{}
	Unknown  bool
}

// SameValue is a binding that only ever received one literal.
type SameValue struct {
	Binding Binding
	Value   string
}

// Values records the literal stores made to each binding. The zero value
// is ready to use.
type Values struct {
	seen map[Binding]*Observed
}

func (v *Values) observed(b Binding) *Observed {
	if v.seen == nil {
		v.seen = map[Binding]*Observed{}
	}
	o, ok := v.seen[b]
	if !ok {
		o = &Observed{Literals: map[string]struct{}{}}
		v.seen[b] = o
	}
	return o
}

func (v *Values) literal(b Binding, value string) {
	v.observed(b).Literals[value] = struct{}{}
}

func (v *Values) unknown(b Binding) {
	v.observed(b).Unknown = true
}

// Merge folds other into v.
func (v *Values) Merge(other *Values) {
	if other == nil {
		return
	}
	for b, o := range other.seen {
		mine := v.observed(b)
		mine.Unknown = mine.Unknown || o.Unknown
		for lit := range o.Literals {
			mine.Literals[lit] = struct{}{}
		}
	}
}

// Len is the number of bindings that received at least one store.
func (v *Values) Len() int {
	return len(v.seen)
}

// Same lists the bindings whose every recorded store is the same literal,
// ordered by declaration line and name.
func (v *Values) Same() []SameValue {
	var out []SameValue
	for b, o := range v.seen {
		if o.Unknown || len(o.Literals) != 1 {
			continue
		}
		for lit := range o.Literals {
			out = append(out, SameValue{Binding: b, Value: lit})
		}
	}
	slices.SortFunc(out, func(a, b SameValue) int {
		return cmp.Or(
			cmp.Compare(a.Binding.Declared.Line, b.Binding.Declared.Line),
			strings.Compare(a.Binding.Name, b.Binding.Name),
			cmp.Compare(a.Binding.Declared.Column, b.Binding.Declared.Column),
		)
	})
	return out
}

// literalValue returns the source form of a constant expression.
func literalValue(e ast.Expr) (string, bool) {
	switch n := e.(type) {
	case *ast.LiteralExpr:
		return n.String(), true
	case *ast.ParenExpr:
		return literalValue(n.Value)
	case *ast.UnaryExpr:
		if lit, ok := n.Value.(*ast.LiteralExpr); ok && lit.Kind == ast.NumberLiteral && (n.Op == "-" || n.Op == "+") {
			return n.Op + lit.Value, true
		}
	}
	return "", false
}
