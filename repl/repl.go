// Package repl analyzes programs typed at a prompt.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"deadstore/internal/diag"
	"deadstore/internal/driver"
	"deadstore/internal/parser"
)

const (
	Prompt       = ">> "
	continuation = ".. "
)

// Start reads programs from in until EOF. An empty line ends a program; it is
// then parsed, analyzed with d and its report written to out.
func Start(ctx context.Context, in io.Reader, out io.Writer, d *driver.Driver) error {
	scanner := bufio.NewScanner(in)

	var buf strings.Builder
	inputs := 0

	fmt.Fprint(out, Prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteByte('\n')
			fmt.Fprint(out, continuation)
			continue
		}

		if buf.Len() > 0 {
			inputs++
			evaluate(ctx, out, d, fmt.Sprintf("<input %d>", inputs), buf.String())
			buf.Reset()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, Prompt)
	}

	if buf.Len() > 0 {
		inputs++
		evaluate(ctx, out, d, fmt.Sprintf("<input %d>", inputs), buf.String())
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func evaluate(ctx context.Context, out io.Writer, d *driver.Driver, name, source string) {
	program, parseErrs, scanErrs := parser.ParseSource(name, source)
	for _, e := range scanErrs {
		fmt.Fprintf(out, "error: %d:%d: %s\n", e.Position.Line, e.Position.Column, e.Message)
	}
	for _, e := range parseErrs {
		fmt.Fprintf(out, "error: %d:%d: %s\n", e.Position.Line, e.Position.Column, e.Message)
	}
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return
	}

	result, err := d.Run(ctx, program)
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err)
		return
	}

	lines := &diag.Lines{}
	result.Report(lines)
	if len(lines.All()) == 0 {
		fmt.Fprintf(out, "no dead stores (%d vectors)\n", result.Explored)
		return
	}
	for _, line := range lines.All() {
		fmt.Fprintln(out, line)
	}
}
