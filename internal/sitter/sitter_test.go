package sitter

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadstore/internal/ast"
	"deadstore/internal/driver"
	"deadstore/internal/parser"
	"deadstore/internal/samples"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, errs, err := ParseSource(context.Background(), "test.js", []byte(source))
	require.NoError(t, err)
	require.Empty(t, errs)
	return program
}

func TestSamplesMatchNativeParser(t *testing.T) {
	for _, name := range samples.Names() {
		t.Run(name, func(t *testing.T) {
			src, err := samples.Source(name)
			require.NoError(t, err)

			native, parseErrs, scanErrs := parser.ParseSource(name, src)
			require.Empty(t, parseErrs)
			require.Empty(t, scanErrs)

			lowered, errs, err := ParseSource(context.Background(), name, []byte(src))
			require.NoError(t, err)
			require.Empty(t, errs)

			if diff := cmp.Diff(native.String(), lowered.String()); diff != "" {
				t.Errorf("trees differ (-native +tree-sitter):\n%s", diff)
			}

			want, err := driver.New().Run(context.Background(), native)
			require.NoError(t, err)
			got, err := driver.New().Run(context.Background(), lowered)
			require.NoError(t, err)
			if diff := cmp.Diff(want.Lines(), got.Lines()); diff != "" {
				t.Errorf("reports differ (-native +tree-sitter):\n%s", diff)
			}
		})
	}
}

func TestPositionsAreOneBased(t *testing.T) {
	program := parse(t, "let a = 1\n  a = 2")
	require.Len(t, program.Body, 2)

	decl := program.Body[0].(*ast.VarDecl)
	assert.Equal(t, 1, decl.Declarators[0].Name.Pos.Line)
	assert.Equal(t, 5, decl.Declarators[0].Name.Pos.Column)
	assert.Equal(t, "test.js", decl.Declarators[0].Name.Pos.Filename)

	stmt := program.Body[1].(*ast.ExprStmt)
	assign := stmt.Expr.(*ast.AssignExpr)
	assert.Equal(t, 2, assign.Target.NodePos().Line)
	assert.Equal(t, 3, assign.Target.NodePos().Column)
}

func TestUnsupportedConstructs(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   string
	}{
		{"member access", "console.log(1)", "MemberExpression"},
		{"object literal", "let o = {a: 1}", "Object"},
		{"class", "class A {}", "ClassDeclaration"},
		{"throw", "throw 1", "ThrowStatement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parse(t, tt.source)
			var kinds []string
			ast.Inspect(program, func(n ast.Node) bool {
				switch b := n.(type) {
				case *ast.BadExpr:
					kinds = append(kinds, b.Bad.Kind)
				case *ast.BadStmt:
					kinds = append(kinds, b.Bad.Kind)
				}
				return true
			})
			assert.Contains(t, kinds, tt.kind)
		})
	}
}

func TestCommentsAreCollected(t *testing.T) {
	program := parse(t, "// deadstore:ignore a\nlet a = 1 /* trailing */")
	require.Len(t, program.Comments, 2)
	assert.Equal(t, "// deadstore:ignore a", program.Comments[0].Text)
	assert.Equal(t, 2, program.Comments[1].Pos.Line)
	require.Len(t, program.Body, 1)
}

func TestSyntaxErrors(t *testing.T) {
	_, errs, err := ParseSource(context.Background(), "bad.js", []byte("let = ;"))
	require.NoError(t, err)
	assert.NotEmpty(t, errs)
}

func TestCamel(t *testing.T) {
	assert.Equal(t, "MemberExpression", camel("member_expression"))
	assert.Equal(t, "Object", camel("object"))
}
