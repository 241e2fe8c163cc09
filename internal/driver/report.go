package driver

import (
	"fmt"
	"strings"

	"deadstore/internal/diag"
	"deadstore/internal/flow"
)

// maxListedVectors caps the vectors named on one summary line.
const maxListedVectors = 8

// Report emits the dead-store report, the same-value report when it was
// collected, then one summary line per distinct failure.
func (r *Result) Report(sink diag.Sink) {
	diag.EmitEntries(sink, r.Entries)
	for _, sv := range r.Values {
		sink.Emit(diag.ValueLine(sv.Binding.Name, sv.Value))
	}
	for _, line := range r.Summary() {
		sink.Emit(line)
	}
}

// Summary groups failures that share a kind and message.
func (r *Result) Summary() []string {
	type group struct {
		kind    FailureKind
		message string
		vectors []flow.Vector
	}
	var groups []*group
	byKey := map[string]*group{}
	for _, f := range r.Failures {
		key := f.Kind.String() + "\x00" + f.Err.Error()
		g, ok := byKey[key]
		if !ok {
			g = &group{kind: f.Kind, message: f.Err.Error()}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.vectors = append(g.vectors, f.Vector)
	}

	var lines []string
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("analysis failed for %s (%s): %s", describeVectors(g.vectors), g.kind, g.message))
	}
	if r.Unexplored > 0 {
		lines = append(lines, fmt.Sprintf("analysis incomplete: %d of %d vectors not explored", r.Unexplored, r.Explored+r.Unexplored))
	}
	return lines
}

func describeVectors(vectors []flow.Vector) string {
	shown := vectors
	if len(shown) > maxListedVectors {
		shown = shown[:maxListedVectors]
	}
	parts := make([]string, 0, len(shown))
	for _, v := range shown {
		parts = append(parts, v.String())
	}

	noun := "vector"
	if len(vectors) > 1 {
		noun = "vectors"
	}
	out := noun + " " + strings.Join(parts, " ")
	if rest := len(vectors) - len(shown); rest > 0 {
		out += fmt.Sprintf(" and %d more", rest)
	}
	return out
}
