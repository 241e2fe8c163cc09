package repl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadstore/internal/driver"
)

func TestStart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "dead store",
			input: "let a = 1\nprint(a)\na = 2\n\n",
			want:  []string{"variable a is defined at line 3 but dead at line"},
		},
		{
			name:  "clean program",
			input: "let c = 1\nprint(c)\n\n",
			want:  []string{"no dead stores"},
		},
		{
			name:  "syntax error",
			input: "let = 1\n\n",
			want:  []string{"error: 1:"},
		},
		{
			name:  "last program without blank line",
			input: "let b = 1\n",
			want:  []string{"variable b is defined at line 1"},
		},
		{
			name:  "failed vector",
			input: "let a = 1\nif (a) {\n  print(missing)\n}\n",
			want:  []string{"analysis failed for vector"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Start(context.Background(), strings.NewReader(tt.input), &out, driver.New())
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out.String(), Prompt))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestStartSeparatesPrograms(t *testing.T) {
	var out bytes.Buffer
	input := "let a = 1\n\nlet a = 2\nprint(a)\n\n"
	err := Start(context.Background(), strings.NewReader(input), &out, driver.New())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out.String(), "variable a"))
	assert.Contains(t, out.String(), "no dead stores")
}
