package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProgram(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.js")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func setParser(t *testing.T, name string) {
	t.Helper()
	prev := flagParser
	flagParser = name
	t.Cleanup(func() { flagParser = prev })
}

func TestRunDefaultSample(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, nil)
	require.NoError(t, err)
	assert.Equal(t, "variable discount is defined at line 1 but dead at line 16\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRunFile(t *testing.T) {
	path := writeProgram(t, "let a = 1\nprint(a)\na = 2\n")

	for _, name := range []string{"native", "treesitter"} {
		t.Run(name, func(t *testing.T) {
			setParser(t, name)

			var out, errOut bytes.Buffer
			err := run(context.Background(), &out, &errOut, []string{path})
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out.String(), "variable a is defined at line 3 but dead at line"), out.String())
			assert.Equal(t, 1, strings.Count(out.String(), "\n"))
		})
	}
}

func TestRunStructuralFailureExitsNonZero(t *testing.T) {
	path := writeProgram(t, "let a = 1\nif (a) {\n  print(missing)\n}\n")

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{path})
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, out.String(), "analysis failed for vector")
}

func TestRunSyntaxError(t *testing.T) {
	path := writeProgram(t, "let = 1\n")

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{path})
	require.ErrorIs(t, err, errFailed)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "E0100")
}

func TestRunMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{filepath.Join(t.TempDir(), "absent.js")})
	require.Error(t, err)
	assert.NotErrorIs(t, err, errFailed)
}

func TestValidateParser(t *testing.T) {
	assert.NoError(t, validateParser("native"))
	assert.NoError(t, validateParser("treesitter"))
	assert.Error(t, validateParser("acorn"))
}
