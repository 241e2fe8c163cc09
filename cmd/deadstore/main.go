// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/driver"
	"deadstore/internal/parser"
	"deadstore/internal/samples"
	"deadstore/internal/sitter"
	"deadstore/repl"
)

var (
	flagParser          string
	flagPretty          bool
	flagValues          bool
	flagWorkers         int
	flagBudget          int
	flagMaxBranchPoints int
	flagVerbose         int
	flagNoDirectives    bool
)

// errFailed is returned after the report has been printed; main only sets the
// exit status.
var errFailed = errors.New("analysis failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "deadstore [file.js]",
	Short:         "Report stores to variables that are never read",
	Long:          "Explores every combination of branch outcomes in a small JavaScript subset and lists the assignments whose values are never read on some path.",
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose > 0 {
			commonlog.Configure(flagVerbose, nil)
		}
		return validateParser(flagParser)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagParser, "parser", "native", "source parser: native|treesitter")
	rootCmd.Flags().BoolVar(&flagPretty, "pretty", false, "render findings with source context")
	rootCmd.PersistentFlags().BoolVar(&flagValues, "values", false, "report identifiers that always hold the same literal")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "vectors analyzed in parallel (default: number of CPUs)")
	rootCmd.PersistentFlags().IntVar(&flagBudget, "budget", driver.DefaultStepBudget, "maximum traversal steps per vector")
	rootCmd.PersistentFlags().IntVar(&flagMaxBranchPoints, "max-branch-points", driver.DefaultMaxBranchPoints, "refuse programs with more branch points than this")
	rootCmd.PersistentFlags().IntVarP(&flagVerbose, "verbose", "v", 0, "log verbosity (1 = info, 2 = debug)")
	rootCmd.PersistentFlags().BoolVar(&flagNoDirectives, "no-directives", false, "ignore deadstore:ignore comments")

	rootCmd.AddCommand(replCmd)
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Analyze programs typed at a prompt",
	Long:  "Reads programs from standard input. An empty line ends each program and prints its report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := repl.Start(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), newDriver())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func newDriver() *driver.Driver {
	return driver.New(
		driver.WithWorkers(flagWorkers),
		driver.WithStepBudget(flagBudget),
		driver.WithMaxBranchPoints(flagMaxBranchPoints),
		driver.WithValueTracking(flagValues),
		driver.WithDirectives(!flagNoDirectives),
	)
}

func validateParser(name string) error {
	switch name {
	case "native", "treesitter":
		return nil
	default:
		return fmt.Errorf("unknown parser %q (want native or treesitter)", name)
	}
}

// run analyzes the named file, or the default sample when args is empty, and
// writes the report to out.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	start := time.Now()

	path, source, err := load(args)
	if err != nil {
		return err
	}

	program, syntaxErrs, err := parse(ctx, path, source)
	if err != nil {
		return err
	}
	if len(syntaxErrs) > 0 {
		reporter := diag.NewReporter(path, source)
		for _, d := range syntaxErrs {
			fmt.Fprint(errOut, reporter.Format(d))
		}
		return errFailed
	}

	result, err := newDriver().Run(ctx, program)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}

	sink := diag.NewWriterSink(out)
	if flagPretty {
		report(out, diag.NewReporter(path, source), result)
	} else {
		result.Report(sink)
	}
	if err := sink.Err(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if flagPretty {
		elapsed := time.Since(start).Round(time.Microsecond)
		if result.HasStructuralFailure() {
			fmt.Fprintln(errOut, color.RedString("Analysis of %s failed after %s", path, elapsed))
		} else {
			fmt.Fprintln(errOut, color.GreenString("Analyzed %d of %d vectors of %s in %s",
				result.Explored, result.Explored+result.Unexplored, path, elapsed))
		}
	}

	if result.HasStructuralFailure() {
		return errFailed
	}
	return nil
}

func load(args []string) (path, source string, err error) {
	if len(args) == 0 {
		source, err = samples.Source(samples.Default)
		return samples.Default, source, err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}
	return args[0], string(data), nil
}

// parse runs the selected frontend. Syntax problems come back as
// diagnostics; err is reserved for frontend failures.
func parse(ctx context.Context, path, source string) (*ast.Program, []diag.Diagnostic, error) {
	var diagnostics []diag.Diagnostic

	if flagParser == "treesitter" {
		program, errs, err := sitter.ParseSource(ctx, path, []byte(source))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, e := range errs {
			diagnostics = append(diagnostics, diag.New(diag.Error, diag.ErrorSyntax, e.Message, e.Pos).Build())
		}
		return program, diagnostics, nil
	}

	program, parseErrs, scanErrs := parser.ParseSource(path, source)
	for _, e := range scanErrs {
		diagnostics = append(diagnostics, diag.New(diag.Error, diag.ErrorLexical, e.Message, position(path, e.Position)).
			WithLength(max(e.Length, 1)).Build())
	}
	for _, e := range parseErrs {
		diagnostics = append(diagnostics, diag.New(diag.Error, diag.ErrorSyntax, e.Message, position(path, e.Position)).Build())
	}
	return program, diagnostics, nil
}

func position(path string, p parser.Position) ast.Position {
	return ast.Position{Filename: path, Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// report prints every finding with source context, then the failure summary.
func report(w io.Writer, reporter *diag.Reporter, result *driver.Result) {
	for _, e := range result.Entries {
		fmt.Fprint(w, reporter.Format(diag.DeadStore(e)))
	}
	for _, sv := range result.Values {
		fmt.Fprint(w, reporter.Format(diag.SameValue(sv.Binding.Name, sv.Value, sv.Binding.Declared)))
	}
	for _, line := range result.Summary() {
		fmt.Fprintln(w, color.YellowString(line))
	}
}
