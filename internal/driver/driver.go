// Package driver explores every control-flow vector of a program and merges
// the per-vector findings into one report.
package driver

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"deadstore/internal/analysis"
	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/directive"
	"deadstore/internal/flow"
)

// Result is the merged outcome of a run.
type Result struct {
	Path         string
	BranchPoints int
	Explored     uint64 // vectors handed to a worker
	Unexplored   uint64 // vectors never started because the run was cancelled
	Entries      []diag.Entry
	Values       []analysis.SameValue
	Failures     []Failure
	Suppressed   int
	Directives   []error // malformed suppression comments
}

// Incomplete counts the vectors stopped by a budget or cancellation.
func (r *Result) Incomplete() int {
	n := 0
	for _, f := range r.Failures {
		if f.Kind == FailureIncomplete {
			n++
		}
	}
	return n
}

// HasStructuralFailure reports whether any vector failed for a reason other
// than a resource limit.
func (r *Result) HasStructuralFailure() bool {
	return slices.ContainsFunc(r.Failures, func(f Failure) bool { return f.Kind.Structural() })
}

// Lines renders the dead-store report.
func (r *Result) Lines() []string {
	return diag.Render(r.Entries)
}

type Driver struct {
	opts Options
}

func New(opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{opts: o}
}

func (d *Driver) Options() Options {
	return d.opts
}

// accumulator merges per-vector results; workers share it under mu.
type accumulator struct {
	mu       sync.Mutex
	entries  map[diag.Key]diag.Entry
	values   analysis.Values
	failures []Failure
}

func (a *accumulator) success(res *analysis.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, e := range res.Entries {
		prev, ok := a.entries[e.Key()]
		if !ok || earlier(e.DeadLocation, prev.DeadLocation) {
			a.entries[e.Key()] = e
		}
	}
	a.values.Merge(res.Values)
}

func (a *accumulator) failure(f Failure) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = append(a.failures, f)
}

func earlier(p, q ast.Position) bool {
	if !q.IsValid() {
		return p.IsValid()
	}
	return p.IsValid() && p.Line < q.Line
}

// Run analyzes program along every vector. It returns an error only when the
// run as a whole cannot continue: too many branch points or a failure that
// invalidates every vector. Per-vector failures are part of the Result.
func (d *Driver) Run(ctx context.Context, program *ast.Program) (*Result, error) {
	log := d.opts.Log
	start := time.Now()

	n := flow.CountBranchPoints(program)
	if d.opts.MaxBranchPoints > 0 && n > d.opts.MaxBranchPoints {
		return nil, fmt.Errorf("%w: %d (limit %d)", flow.ErrTooManyBranchPoints, n, d.opts.MaxBranchPoints)
	}
	space, err := flow.NewSpace(n)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: program.Path, BranchPoints: n}
	var directives *directive.Set
	if d.opts.Directives {
		directives, result.Directives = directive.Parse(program.Comments)
		for _, derr := range result.Directives {
			log.Warningf("%s: %s", program.Path, derr)
		}
	}

	log.Debugf("analyzing %s: %d branch points, %d vectors", program.Path, n, space.Size())

	cfg := analysis.Config{
		Globals:     d.opts.Globals,
		StepBudget:  d.opts.StepBudget,
		TrackValues: d.opts.TrackValues,
	}
	acc := &accumulator{entries: map[diag.Key]diag.Entry{}}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, d.opts.Workers))

	var index uint64
	for vector := range space.Enumerate() {
		if gctx.Err() != nil {
			break
		}
		i := index
		index++
		g.Go(func() error {
			res, err := analysis.Traverse(gctx, ast.Clone(program), vector, cfg)
			if err == nil {
				acc.success(res)
				return nil
			}
			if analysis.IsStructural(err) {
				return fmt.Errorf("vector %s: %w", vector, err)
			}
			f := Failure{Index: i, Vector: vector, Kind: Classify(err), Err: err}
			d.logFailure(f)
			acc.failure(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("%s: run aborted: %s", program.Path, err)
		return nil, err
	}

	result.Explored = index
	result.Unexplored = space.Size() - index

	entries := make([]diag.Entry, 0, len(acc.entries))
	for _, e := range acc.entries {
		if directives.Suppressed(e.Identifier, e.AssignmentLocation.Line) {
			result.Suppressed++
			continue
		}
		entries = append(entries, e)
	}
	diag.Sort(entries)
	result.Entries = entries

	if d.opts.TrackValues {
		for _, sv := range acc.values.Same() {
			if directives.Suppressed(sv.Binding.Name, sv.Binding.Declared.Line) {
				continue
			}
			result.Values = append(result.Values, sv)
		}
	}

	slices.SortFunc(acc.failures, func(a, b Failure) int { return cmp.Compare(a.Index, b.Index) })
	result.Failures = acc.failures

	log.Debugf("analyzed %s in %s: %d findings, %d suppressed, %d failed vectors",
		program.Path, time.Since(start), len(result.Entries), result.Suppressed, len(result.Failures))
	return result, nil
}

func (d *Driver) logFailure(f Failure) {
	switch f.Kind {
	case FailureFlowExhausted:
		d.opts.Log.Errorf("%s", f)
	case FailureIncomplete:
		d.opts.Log.Infof("%s", f)
	default:
		d.opts.Log.Warningf("%s", f)
	}
}
