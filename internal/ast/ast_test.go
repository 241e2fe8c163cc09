package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line int) Position {
	return Position{Line: line, Column: 1}
}

func sampleProgram() *Program {
	return &Program{
		Path: "sample.js",
		Body: []Stmt{
			&VarDecl{
				Pos:  pos(1),
				Kind: "let",
				Declarators: []*Declarator{
					{Name: Ident{Value: "a"}, Init: &LiteralExpr{Kind: NumberLiteral, Value: "1"}},
				},
			},
			&IfStmt{
				Pos:  pos(2),
				Test: &IdentExpr{Name: "cond"},
				Consequent: &BlockStmt{Body: []Stmt{
					&VarDecl{Kind: "let", Declarators: []*Declarator{
						{Name: Ident{Value: "b"}, Init: &LiteralExpr{Kind: NumberLiteral, Value: "2"}},
					}},
					&WhileStmt{Test: &IdentExpr{Name: "a"}, Body: &BlockStmt{}},
				}},
			},
			&ExprStmt{Expr: &CallExpr{
				Callee: &IdentExpr{Name: "f"},
				Args: []Expr{&ArrowFuncExpr{
					Params:   []*Param{{Name: Ident{Value: "x"}}},
					ExprBody: &IdentExpr{Name: "x"},
				}},
			}},
		},
	}
}

func TestProgramString(t *testing.T) {
	expected := "let a = 1;\n" +
		"if (cond) {\n  let b = 2;\n  while (a) {}\n}\n" +
		"f((x) => x);"
	assert.Equal(t, expected, sampleProgram().String())
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{
			name: "for loop",
			node: &ForStmt{
				Init:   &VarDecl{Kind: "let", Declarators: []*Declarator{{Name: Ident{Value: "i"}, Init: &LiteralExpr{Value: "0"}}}},
				Test:   &BinaryExpr{Op: "<", Left: &IdentExpr{Name: "i"}, Right: &LiteralExpr{Value: "5"}},
				Update: &UpdateExpr{Op: "++", Target: &IdentExpr{Name: "i"}},
				Body:   &BlockStmt{},
			},
			expected: "for (let i = 0; i < 5; i++) {}",
		},
		{
			name:     "compound assignment",
			node:     &AssignExpr{Op: "+=", Target: &IdentExpr{Name: "d"}, Value: &LiteralExpr{Value: "0.1"}},
			expected: "d += 0.1",
		},
		{
			name:     "string literal",
			node:     &LiteralExpr{Kind: StringLiteral, Value: "hi"},
			expected: `"hi"`,
		},
		{
			name: "switch",
			node: &SwitchStmt{
				Discriminant: &IdentExpr{Name: "k"},
				Cases: []*SwitchCase{
					{Test: &LiteralExpr{Value: "1"}, Consequent: []Stmt{&ReturnStmt{Argument: &LiteralExpr{Value: "50"}}}},
					{Consequent: []Stmt{&BranchStmt{Keyword: "break"}}},
				},
			},
			expected: "switch (k) {\n  case 1:\n    return 50;\n  default:\n    break;\n}",
		},
		{
			name:     "rest param with prefix update",
			node:     &FuncExpr{Params: []*Param{{Name: Ident{Value: "xs"}, Rest: true}}, Body: &BlockStmt{Body: []Stmt{&ExprStmt{Expr: &UpdateExpr{Op: "--", Prefix: true, Target: &IdentExpr{Name: "n"}}}}}},
			expected: "function(...xs) {\n  --n;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleProgram()
	copied := Clone(original)

	require.Empty(t, cmp.Diff(original.String(), copied.String()))

	// Mutating the copy must not reach the original.
	ifStmt := copied.Body[1].(*IfStmt)
	ifStmt.Test.(*IdentExpr).Name = "other"
	block := ifStmt.Consequent.(*BlockStmt)
	block.Body[0].(*VarDecl).Declarators[0].Name.Value = "renamed"
	copied.Body[2].(*ExprStmt).Expr.(*CallExpr).Args[0].(*ArrowFuncExpr).Params[0].Name.Value = "y"

	origIf := original.Body[1].(*IfStmt)
	assert.Equal(t, "cond", origIf.Test.(*IdentExpr).Name)
	assert.Equal(t, "b", origIf.Consequent.(*BlockStmt).Body[0].(*VarDecl).Declarators[0].Name.Value)
	assert.Equal(t, "x", original.Body[2].(*ExprStmt).Expr.(*CallExpr).Args[0].(*ArrowFuncExpr).Params[0].Name.Value)
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, Clone(nil))
	assert.Nil(t, CloneStmt(nil))
	assert.Nil(t, CloneExpr(nil))
}

func TestInspectPreOrder(t *testing.T) {
	var kinds []NodeType
	Inspect(sampleProgram(), func(n Node) bool {
		switch n.(type) {
		case *IfStmt, *WhileStmt, *ArrowFuncExpr, *CallExpr:
			kinds = append(kinds, n.NodeType())
		}
		return true
	})

	assert.Equal(t, []NodeType{IF_STMT, WHILE_STMT, CALL_EXPR, ARROW_FUNC_EXPR}, kinds)
}

func TestInspectPrune(t *testing.T) {
	count := 0
	Inspect(sampleProgram(), func(n Node) bool {
		if _, ok := n.(*IfStmt); ok {
			return false
		}
		if _, ok := n.(*WhileStmt); ok {
			count++
		}
		return true
	})
	assert.Zero(t, count, "children of a pruned node must not be visited")
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "-", Position{}.String())
	assert.Equal(t, "3:7", Position{Line: 3, Column: 7}.String())
	assert.Equal(t, "a.js:3:7", Position{Filename: "a.js", Line: 3, Column: 7}.String())
	assert.False(t, Position{}.IsValid())
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "IfStatement", IF_STMT.String())
	assert.Equal(t, "ArrowFunctionExpression", ARROW_FUNC_EXPR.String())
	assert.Equal(t, "NodeType(?)", NodeType(999).String())
}
