package driver

import (
	"runtime"

	"github.com/tliron/commonlog"

	"deadstore/internal/analysis"
)

// DefaultMaxBranchPoints keeps a run at 65536 traversals or fewer.
const DefaultMaxBranchPoints = 16

// DefaultStepBudget bounds a single traversal.
const DefaultStepBudget = 1_000_000

// Options configures a Driver.
type Options struct {
	Workers         int
	StepBudget      int
	MaxBranchPoints int
	Globals         []string
	TrackValues     bool
	Directives      bool
	Log             commonlog.Logger
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Workers:         runtime.NumCPU(),
		StepBudget:      DefaultStepBudget,
		MaxBranchPoints: DefaultMaxBranchPoints,
		Globals:         analysis.DefaultGlobals,
		Directives:      true,
		Log:             commonlog.GetLogger("deadstore.driver"),
	}
}

// WithWorkers bounds the number of vectors traversed concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithStepBudget bounds the nodes one traversal may visit. Zero removes the
// bound.
func WithStepBudget(steps int) Option {
	return func(o *Options) {
		o.StepBudget = steps
	}
}

func WithMaxBranchPoints(n int) Option {
	return func(o *Options) {
		o.MaxBranchPoints = n
	}
}

// WithGlobals replaces the predeclared names.
func WithGlobals(names ...string) Option {
	return func(o *Options) {
		o.Globals = append([]string{}, names...)
	}
}

// WithValueTracking enables the same-value report.
func WithValueTracking(enabled bool) Option {
	return func(o *Options) {
		o.TrackValues = enabled
	}
}

// WithDirectives controls whether deadstore comments suppress findings.
func WithDirectives(enabled bool) Option {
	return func(o *Options) {
		o.Directives = enabled
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}
