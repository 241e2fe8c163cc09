// Package diag holds the findings of the analysis and turns them into text.
package diag

import (
	"cmp"
	"fmt"
	"slices"

	"deadstore/internal/ast"
)

// Entry is one dead store: a binding assigned at AssignmentLocation and
// still unread when its scope closed at DeadLocation.
type Entry struct {
	Identifier         string
	AssignmentLocation ast.Position
	DeadLocation       ast.Position
}

// Key identifies a dead store independently of the path that exposed it.
type Key struct {
	Identifier string
	Assignment ast.Position
}

func (e Entry) Key() Key {
	return Key{Identifier: e.Identifier, Assignment: e.AssignmentLocation}
}

// String renders the entry in the plain report format.
func (e Entry) String() string {
	defined := "is defined"
	if e.AssignmentLocation.IsValid() {
		defined = fmt.Sprintf("is defined at line %d", e.AssignmentLocation.Line)
	}
	dead := "but dead"
	if e.DeadLocation.IsValid() {
		dead = fmt.Sprintf("but dead at line %d", e.DeadLocation.Line)
	}
	return fmt.Sprintf("variable %s %s %s", e.Identifier, defined, dead)
}

// Collector accumulates the entries of one traversal. It implements
// scope.Recorder.
type Collector struct {
	entries []Entry
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Record(name string, assigned, dead ast.Position) {
	c.entries = append(c.entries, Entry{
		Identifier:         name,
		AssignmentLocation: assigned,
		DeadLocation:       dead,
	})
}

// Entries returns the recorded entries in recording order.
func (c *Collector) Entries() []Entry {
	return c.entries
}

// Sort orders entries by assignment line, entries without a location last,
// then by identifier and dead line.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, compareEntries)
}

func compareEntries(a, b Entry) int {
	aValid, bValid := a.AssignmentLocation.IsValid(), b.AssignmentLocation.IsValid()
	switch {
	case aValid && !bValid:
		return -1
	case !aValid && bValid:
		return 1
	}
	return cmp.Or(
		cmp.Compare(a.AssignmentLocation.Line, b.AssignmentLocation.Line),
		cmp.Compare(a.Identifier, b.Identifier),
		cmp.Compare(lineOrMax(a.DeadLocation), lineOrMax(b.DeadLocation)),
		cmp.Compare(a.AssignmentLocation.Column, b.AssignmentLocation.Column),
	)
}

func lineOrMax(p ast.Position) int {
	if p.IsValid() {
		return p.Line
	}
	return int(^uint(0) >> 1)
}
