package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadstore/internal/analysis"
	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/flow"
	"deadstore/internal/parser"
	"deadstore/internal/scope"
)

const fibonacci = `function fibonacci(n) {
    if (n <= 1) {
        return n;
    }
    let fib1 = 0;
    let fib2 = 1;
    let fibn;
    for (let i = 2; i <= n; i++) {
        fibn = fib1 + fib2;
        fib1 = fib2;
        fib2 = fibn;
    }
    return fibn;
}

let y = 7;
fibonacci(y);`

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrs, scanErrs := parser.ParseSource("test.js", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)
	return program
}

func TestRunUnionsAllVectors(t *testing.T) {
	result, err := New(WithValueTracking(true)).Run(context.Background(), parse(t, fibonacci))
	require.NoError(t, err)

	assert.Equal(t, 2, result.BranchPoints)
	assert.Equal(t, uint64(4), result.Explored)
	assert.Empty(t, result.Failures)

	expected := []string{
		"variable fib1 is defined at line 5 but dead at line 14",
		"variable fib2 is defined at line 6 but dead at line 14",
		"variable fib1 is defined at line 10 but dead at line 14",
		"variable fib2 is defined at line 11 but dead at line 14",
	}
	if diff := cmp.Diff(expected, result.Lines()); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}

	require.Len(t, result.Values, 1)
	assert.Equal(t, "y", result.Values[0].Binding.Name)
	assert.Equal(t, "7", result.Values[0].Value)
}

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	program := parse(t, fibonacci)

	serial, err := New(WithWorkers(1)).Run(context.Background(), program)
	require.NoError(t, err)
	parallel, err := New(WithWorkers(8)).Run(context.Background(), program)
	require.NoError(t, err)

	if diff := cmp.Diff(serial.Lines(), parallel.Lines()); diff != "" {
		t.Errorf("worker count changed the report (-serial +parallel):\n%s", diff)
	}
}

func TestRunDoesNotMutateTheProgram(t *testing.T) {
	program := parse(t, fibonacci)
	before := program.String()

	_, err := New().Run(context.Background(), program)
	require.NoError(t, err)
	assert.Equal(t, before, program.String())
}

func TestBlockScopedDeclarationAcrossVectors(t *testing.T) {
	source := "let cond = true\nlet a = 1\nif (cond) {\n  let b = 2\n}"

	result, err := New().Run(context.Background(), parse(t, source))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"variable a is defined at line 2 but dead at line 5",
		"variable b is defined at line 4 but dead at line 5",
	}, result.Lines())
}

func TestSuppressionDirectives(t *testing.T) {
	source := strings.Join([]string{
		"let cond = true",
		"let a = 1 // deadstore:ignore a",
		"if (cond) {",
		"  // deadstore:ignore",
		"  let b = 2",
		"}",
	}, "\n")

	result, err := New().Run(context.Background(), parse(t, source))
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
	assert.Equal(t, 2, result.Suppressed)

	result, err = New(WithDirectives(false)).Run(context.Background(), parse(t, source))
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)
	assert.Zero(t, result.Suppressed)
}

func TestPerVectorFailuresAreRecorded(t *testing.T) {
	source := "let a = 1\nif (a) {\n  print(missing)\n}"

	result, err := New().Run(context.Background(), parse(t, source))
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	f := result.Failures[0]
	assert.Equal(t, flow.Vector{true}, f.Vector)
	assert.Equal(t, FailureUndeclaredVariable, f.Kind)
	assert.ErrorIs(t, f.Err, scope.ErrUndeclaredVariable)
	assert.True(t, result.HasStructuralFailure())
	assert.Empty(t, result.Entries)

	lines := &diag.Lines{}
	result.Report(lines)
	require.Len(t, lines.All(), 1)
	assert.True(t, strings.HasPrefix(lines.All()[0], "analysis failed for vector [1] (UndeclaredVariable): "), lines.All()[0])
}

func TestBudgetMakesVectorsIncomplete(t *testing.T) {
	result, err := New(WithStepBudget(2)).Run(context.Background(), parse(t, fibonacci))
	require.NoError(t, err)

	assert.Equal(t, 4, result.Incomplete())
	assert.False(t, result.HasStructuralFailure())
	for _, f := range result.Failures {
		assert.ErrorIs(t, f.Err, analysis.ErrBudgetExceeded)
	}
	assert.Len(t, result.Summary(), 1)
	assert.Contains(t, result.Summary()[0], "vectors [")
}

func TestTooManyBranchPoints(t *testing.T) {
	source := "let a = 1\nif (a) {}\nif (a) {}"
	_, err := New(WithMaxBranchPoints(1)).Run(context.Background(), parse(t, source))
	assert.ErrorIs(t, err, flow.ErrTooManyBranchPoints)
}

func TestCancelledRunExploresNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New().Run(ctx, parse(t, fibonacci))
	require.NoError(t, err)
	assert.Zero(t, result.Explored)
	assert.Equal(t, uint64(4), result.Unexplored)
	assert.Equal(t, []string{"analysis incomplete: 4 of 4 vectors not explored"}, result.Summary())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		expected FailureKind
	}{
		{fmt.Errorf("x: %w", scope.ErrUndeclaredVariable), FailureUndeclaredVariable},
		{scope.ErrNoParentScope, FailureNoParentScope},
		{&analysis.Error{Err: flow.ErrFlowExhausted}, FailureFlowExhausted},
		{&analysis.Error{Err: flow.ErrFlowMismatch}, FailureFlowMismatch},
		{&analysis.Error{Err: analysis.ErrUnsupportedNode}, FailureUnsupportedNode},
		{&analysis.Error{Err: analysis.ErrBudgetExceeded}, FailureIncomplete},
		{context.DeadlineExceeded, FailureIncomplete},
		{errors.New("other"), FailureUnknown},
		{nil, FailureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}

	assert.Equal(t, diag.ErrorFlowMismatch, FailureFlowMismatch.Code())
	assert.False(t, FailureIncomplete.Structural())
}

func TestDescribeVectors(t *testing.T) {
	var many []flow.Vector
	for range 10 {
		many = append(many, flow.Vector{true})
	}
	assert.Equal(t, "vector [0]", describeVectors([]flow.Vector{{false}}))
	assert.True(t, strings.HasSuffix(describeVectors(many), " and 2 more"))
}
