package diag

import (
	"fmt"
	"slices"
)

// Render returns the plain report lines for entries in report order. The
// input slice is left untouched.
func Render(entries []Entry) []string {
	sorted := slices.Clone(entries)
	Sort(sorted)
	lines := make([]string, 0, len(sorted))
	for _, e := range sorted {
		lines = append(lines, e.String())
	}
	return lines
}

// EmitEntries renders entries and emits each line to sink.
func EmitEntries(sink Sink, entries []Entry) {
	for _, line := range Render(entries) {
		sink.Emit(line)
	}
}

// ValueLine renders one line of the same-value report.
func ValueLine(name, value string) string {
	return fmt.Sprintf("identifier %s always has the same value: %s", name, value)
}
