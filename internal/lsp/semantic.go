package lsp

import (
	"cmp"
	"slices"

	"deadstore/internal/ast"
	"deadstore/internal/diag"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// tokenWalker classifies identifiers and literals. dead holds the
// positions of stores that are never read.
type tokenWalker struct {
	tokens    []SemanticToken
	seen      map[[2]uint32]bool
	functions map[string]bool
	dead      map[ast.Position]bool
}

func collectSemanticTokens(program *ast.Program, entries []diag.Entry) []SemanticToken {
	if program == nil {
		return nil
	}

	w := &tokenWalker{
		seen:      map[[2]uint32]bool{},
		functions: map[string]bool{},
		dead:      map[ast.Position]bool{},
	}
	for _, e := range entries {
		w.dead[e.AssignmentLocation] = true
	}

	ast.Inspect(program, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok {
			w.functions[fn.Name.Value] = true
		}
		return true
	})
	ast.Inspect(program, w.visit)

	slices.SortFunc(w.tokens, func(a, b SemanticToken) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.StartChar, b.StartChar))
	})
	return w.tokens
}

func (w *tokenWalker) visit(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.FuncDecl:
		w.add(v.Name.Pos, v.Name.Value, "function", "declaration")
	case *ast.FuncExpr:
		if v.Name != nil {
			w.add(v.Name.Pos, v.Name.Value, "function", "declaration")
		}
	case *ast.Param:
		w.add(v.Name.Pos, v.Name.Value, "parameter", "declaration")
	case *ast.Declarator:
		w.add(v.Name.Pos, v.Name.Value, "variable", "declaration")
	case *ast.AssignExpr:
		if id, ok := v.Target.(*ast.IdentExpr); ok {
			w.add(id.Pos, id.Name, "variable", "modification")
		}
	case *ast.UpdateExpr:
		if id, ok := v.Target.(*ast.IdentExpr); ok {
			w.add(id.Pos, id.Name, "variable", "modification")
		}
	case *ast.CallExpr:
		if id, ok := v.Callee.(*ast.IdentExpr); ok && w.functions[id.Name] {
			w.add(id.Pos, id.Name, "function")
		}
	case *ast.IdentExpr:
		w.add(v.Pos, v.Name, "variable")
	case *ast.LiteralExpr:
		switch v.Kind {
		case ast.NumberLiteral:
			w.add(v.Pos, v.Value, "number")
		case ast.StringLiteral:
			w.add(v.Pos, v.String(), "string")
		default:
			w.add(v.Pos, v.Value, "keyword")
		}
	}
	return true
}

// add records a token unless one already starts at pos. Targets and callees
// are visited before the identifier nodes they contain, so the more
// specific classification wins.
func (w *tokenWalker) add(pos ast.Position, value, tokenType string, modifiers ...string) {
	if value == "" || !pos.IsValid() {
		return
	}
	key := [2]uint32{uint32(pos.Line - 1), uint32(pos.Column - 1)}
	if w.seen[key] {
		return
	}
	w.seen[key] = true

	mask := 0
	for _, m := range modifiers {
		mask |= 1 << indexOf(m, SemanticTokenModifiers)
	}
	if w.dead[pos] {
		mask |= 1 << indexOf("deprecated", SemanticTokenModifiers)
	}

	w.tokens = append(w.tokens, SemanticToken{
		Line:           key[0],
		StartChar:      key[1],
		Length:         uint32(len(value)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: mask,
	})
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
