package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/flow"
	"deadstore/internal/parser"
	"deadstore/internal/scope"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrs, scanErrs := parser.ParseSource("test.js", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)
	return program
}

func run(t *testing.T, source string, vector flow.Vector) []string {
	t.Helper()
	result, err := Traverse(context.Background(), parse(t, source), vector, Config{})
	require.NoError(t, err)
	return diag.Render(result.Entries)
}

func lines(src ...string) string {
	return strings.Join(src, "\n")
}

func TestBlockScopedDeclaration(t *testing.T) {
	source := lines(
		"let cond = true",
		"let a = 1",
		"if (cond) {",
		"  let b = 2",
		"}",
	)

	tests := []struct {
		name     string
		vector   flow.Vector
		expected []string
	}{
		{"taken", flow.Vector{true}, []string{
			"variable a is defined at line 2 but dead at line 5",
			"variable b is defined at line 4 but dead at line 5",
		}},
		{"not taken", flow.Vector{false}, []string{
			"variable a is defined at line 2 but dead at line 5",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, run(t, source, tt.vector)); diff != "" {
				t.Errorf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoopBodyRewritesAreDead(t *testing.T) {
	source := lines(
		"function fibonacci(n) {",
		"    if (n <= 1) {",
		"        return n;",
		"    }",
		"    let fib1 = 0;",
		"    let fib2 = 1;",
		"    let fibn;",
		"    for (let i = 2; i <= n; i++) {",
		"        fibn = fib1 + fib2;",
		"        fib1 = fib2;",
		"        fib2 = fibn;",
		"    }",
		"    return fibn;",
		"}",
		"",
		"let y = 7;",
		"fibonacci(y);",
	)

	tests := []struct {
		name     string
		vector   flow.Vector
		expected []string
	}{
		{"loop entered", flow.Vector{false, true}, []string{
			"variable fib1 is defined at line 10 but dead at line 14",
			"variable fib2 is defined at line 11 but dead at line 14",
		}},
		{"loop skipped", flow.Vector{true, false}, []string{
			"variable fib1 is defined at line 5 but dead at line 14",
			"variable fib2 is defined at line 6 but dead at line 14",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, run(t, source, tt.vector)); diff != "" {
				t.Errorf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompoundAssignmentReadsFirst(t *testing.T) {
	source := lines(
		"function discount(price) {",
		"  let d = 0.8",
		"",
		"  if (price < 14.99) {",
		"    d = 0.9",
		"  } else if (price < 19.99) {",
		"    d += 0.1",
		"  } else {",
		"    d = 0",
		"    for (let i = 0; i < 5; i++) {",
		"      d += 0.18",
		"    }",
		"  }",
		"",
		"  return price * d",
		"}",
	)

	program := parse(t, source)
	space, err := flow.NewSpace(flow.CountBranchPoints(program))
	require.NoError(t, err)
	require.Equal(t, 3, space.BranchPoints())

	for vector := range space.Enumerate() {
		result, err := Traverse(context.Background(), ast.Clone(program), vector, Config{})
		require.NoError(t, err, "vector %s", vector)
		// Only the never-called function itself is left unread.
		assert.Equal(t, []string{"variable discount is defined at line 1 but dead at line 16"},
			diag.Render(result.Entries), "vector %s", vector)
		assert.Equal(t, 3, result.Decisions, "vector %s", vector)
	}
}

func TestSkippedSubtreeConsumesItsDecisions(t *testing.T) {
	source := lines(
		"let x = 0",
		"if (x) {",
		"  if (x) {",
		"    let inner = 1",
		"  }",
		"}",
		"let after = 2",
		"if (after) {",
		"  let last = 3",
		"}",
	)

	report := run(t, source, flow.Vector{false, true, true})
	assert.Equal(t, []string{"variable last is defined at line 9 but dead at line 10"}, report)

	report = run(t, source, flow.Vector{false, true, false})
	assert.Empty(t, report)

	report = run(t, source, flow.Vector{true, true, false})
	assert.Equal(t, []string{"variable inner is defined at line 4 but dead at line 5"}, report)
}

func TestWhileLoop(t *testing.T) {
	source := lines(
		"let n = 0",
		"while (n < 3) {",
		"  let tmp = n",
		"  n++",
		"}",
	)

	assert.Equal(t, []string{"variable tmp is defined at line 3 but dead at line 5"}, run(t, source, flow.Vector{true}))
	assert.Empty(t, run(t, source, flow.Vector{false}))
}

func TestDoWhileIsNotABranchPoint(t *testing.T) {
	source := lines(
		"let n = 0",
		"do {",
		"  let tmp = 1",
		"  n++",
		"} while (n < 3)",
	)

	assert.Equal(t, []string{"variable tmp is defined at line 3 but dead at line 5"}, run(t, source, flow.Vector{}))
}

func TestSwitchWalksCasesInOrder(t *testing.T) {
	source := lines(
		"let k = 1",
		"switch (k) {",
		"  case 1:",
		"    let t = 2",
		"    break",
		"  default:",
		"    k = 3",
		"}",
	)

	expected := []string{
		"variable t is defined at line 4 but dead at line 5",
		"variable k is defined at line 7 but dead at line 8",
	}
	if diff := cmp.Diff(expected, run(t, source, flow.Vector{})); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestSwitchStoresReachLaterCases(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name: "fallthrough into default",
			source: lines(
				"let d = 1",
				"let x = 0",
				"switch (d) {",
				"  case 1:",
				"    x = 2",
				"  default:",
				"    print(x)",
				"}",
			),
		},
		{
			name: "read after the switch",
			source: lines(
				"let k = 1",
				"let r = 0",
				"switch (k) {",
				"  case 1:",
				"    r = 5",
				"}",
				"print(r)",
			),
		},
		{
			name: "last case store survives",
			source: lines(
				"let k = 1",
				"let r = 0",
				"switch (k) {",
				"  case 1:",
				"    r = 5",
				"    break",
				"  case 2:",
				"    r = 6",
				"    break",
				"}",
			),
			expected: []string{"variable r is defined at line 8 but dead at line 10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, run(t, tt.source, flow.Vector{})); diff != "" {
				t.Errorf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBranchPointsInsideConditions(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{
			name: "while test",
			source: lines(
				"let x = 1",
				"let call = (f) => f()",
				"while (call(() => {",
				"  if (x) {",
				"    return 1",
				"  }",
				"  return 0",
				"})) {",
				"  x = 0",
				"}",
			),
			want: 2,
		},
		{
			name: "for test",
			source: lines(
				"let x = 1",
				"let call = (f) => f()",
				"for (let i = 0; call(() => {",
				"  if (i) {",
				"    return 1",
				"  }",
				"  return 0",
				"}); i++) {",
				"  x = i",
				"}",
				"print(x)",
			),
			want: 2,
		},
		{
			name: "for update",
			source: lines(
				"let n = 0",
				"let call = (f) => f()",
				"for (let i = 0; i < 3; call(() => {",
				"  if (i) {",
				"    n++",
				"  }",
				"})) {",
				"  n = i",
				"}",
			),
			want: 2,
		},
		{
			name: "if test",
			source: lines(
				"let x = 1",
				"let call = (f) => f()",
				"if (call(() => {",
				"  while (x) {",
				"    x--",
				"  }",
				"  return x",
				"})) {",
				"  let y = x",
				"}",
			),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parse(t, tt.source)
			n := flow.CountBranchPoints(program)
			require.Equal(t, tt.want, n)

			space, err := flow.NewSpace(n)
			require.NoError(t, err)
			for vector := range space.Enumerate() {
				result, err := Traverse(context.Background(), program, vector, Config{})
				require.NoError(t, err, "vector %s", vector)
				assert.Equal(t, n, result.Decisions, "vector %s", vector)
			}
		})
	}
}

func TestFunctionParameters(t *testing.T) {
	source := lines(
		"let f = (a, b) => a",
		"f(1, 2)",
		"let g = function named(c) {",
		"  return named",
		"}",
		"g()",
	)

	expected := []string{
		"variable b is defined at line 1 but dead at line 1",
		"variable c is defined at line 3 but dead at line 5",
	}
	if diff := cmp.Diff(expected, run(t, source, flow.Vector{})); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestTraversalErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		vector flow.Vector
		cfg    Config
		target error
	}{
		{"undeclared read", "print(missing)", flow.Vector{}, Config{}, scope.ErrUndeclaredVariable},
		{"undeclared write", "missing = 1", flow.Vector{}, Config{}, scope.ErrUndeclaredVariable},
		{"member access", "console.log(1)", flow.Vector{}, Config{}, ErrUnsupportedNode},
		{"object literal", "let o = {}", flow.Vector{}, Config{}, ErrUnsupportedNode},
		{"vector too short", "let a = 1\nif (a) { a = 2 }", flow.Vector{}, Config{}, flow.ErrFlowExhausted},
		{"vector too long", "let a = 1\nif (a) { a = 2 }", flow.Vector{true, true}, Config{}, flow.ErrFlowMismatch},
		{"budget", "let a = 1\nlet b = a + a + a", flow.Vector{}, Config{StepBudget: 3}, ErrBudgetExceeded},
		{"restricted globals", "print(1)", flow.Vector{}, Config{Globals: []string{}}, scope.ErrUndeclaredVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, _, _ := parser.ParseSource("test.js", tt.source)
			_, err := Traverse(context.Background(), program, tt.vector, tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var located *Error
			require.ErrorAs(t, err, &located)
			assert.True(t, located.Pos.IsValid(), "error should carry a position: %v", err)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsIncomplete(&Error{Err: ErrBudgetExceeded}))
	assert.True(t, IsIncomplete(&Error{Err: context.Canceled}))
	assert.False(t, IsIncomplete(&Error{Err: ErrUnsupportedNode}))
	assert.True(t, IsStructural(&Error{Err: scope.ErrNoParentScope}))
	assert.False(t, IsStructural(&Error{Err: scope.ErrUndeclaredVariable}))
}

func TestValueTracking(t *testing.T) {
	source := lines(
		"let y = 7",
		"let z = 1",
		"z = 2",
		"let w = -1",
		"w = -1",
		"let u = 'a'",
		"u += 'b'",
		"print(y, z, w, u)",
	)

	result, err := Traverse(context.Background(), parse(t, source), flow.Vector{}, Config{TrackValues: true})
	require.NoError(t, err)

	var got []string
	for _, sv := range result.Values.Same() {
		got = append(got, diag.ValueLine(sv.Binding.Name, sv.Value))
	}
	expected := []string{
		"identifier y always has the same value: 7",
		"identifier w always has the same value: -1",
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected values (-want +got):\n%s", diff)
	}
}

func TestValuesMerge(t *testing.T) {
	b := Binding{Name: "p", Declared: ast.Position{Line: 13, Column: 7}}

	first := &Values{}
	first.literal(b, "14")
	second := &Values{}
	second.literal(b, "14")

	merged := &Values{}
	merged.Merge(first)
	merged.Merge(second)
	require.Len(t, merged.Same(), 1)

	third := &Values{}
	third.literal(b, "19")
	merged.Merge(third)
	assert.Empty(t, merged.Same())
	assert.Equal(t, 1, merged.Len())
}

func TestTrackingDisabledByDefault(t *testing.T) {
	result, err := Traverse(context.Background(), parse(t, "let a = 1\nprint(a)"), flow.Vector{}, Config{})
	require.NoError(t, err)
	assert.Nil(t, result.Values)
	assert.Positive(t, result.Steps)
}
