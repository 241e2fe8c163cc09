// Package directive reads suppression comments out of a parsed program.
//
// A line directive silences findings whose assignment sits on the comment's
// own line or on the line right after it. A file directive silences the
// whole file. Both take an optional list of names; without one they apply
// to every binding.
package directive

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"

	"deadstore/internal/ast"
)

const prefix = "deadstore:"

type Kind int

const (
	Line Kind = iota
	File
)

func (k Kind) String() string {
	if k == File {
		return "ignore-file"
	}
	return "ignore"
}

type Directive struct {
	Kind    Kind
	Pos     ast.Position
	EndLine int
	Names   []string
	Reason  string
}

func (d Directive) covers(name string) bool {
	if len(d.Names) == 0 {
		return true
	}
	for _, n := range d.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Error is a malformed directive. The comment is ignored.
type Error struct {
	Pos     ast.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: malformed directive: %s", e.Pos, e.Message)
}

// Set is the collection of directives found in one program. The zero value
// and a nil *Set suppress nothing.
type Set struct {
	file   []Directive
	byLine map[int][]Directive
}

// Parse extracts the directives from comments. Comments that do not start
// with the directive prefix are skipped silently.
func Parse(comments []*ast.Comment) (*Set, []error) {
	set := &Set{byLine: map[int][]Directive{}}
	var errs []error

	for _, c := range comments {
		body, ok := strip(c.Text)
		if !ok {
			continue
		}

		parsed, err := parser.ParseString(c.Pos.Filename, body)
		if err != nil {
			errs = append(errs, &Error{Pos: c.Pos, Message: describe(err)})
			continue
		}

		d := Directive{
			Kind:    Line,
			Pos:     c.Pos,
			EndLine: c.EndPos.Line,
			Names:   parsed.Names,
			Reason:  strings.TrimSpace(strings.TrimPrefix(parsed.Reason, "--")),
		}
		if d.EndLine < d.Pos.Line {
			d.EndLine = d.Pos.Line
		}

		switch parsed.Verb {
		case "ignore":
			set.byLine[d.Pos.Line] = append(set.byLine[d.Pos.Line], d)
			if d.EndLine != d.Pos.Line {
				set.byLine[d.EndLine] = append(set.byLine[d.EndLine], d)
			}
		case "ignore-file":
			d.Kind = File
			set.file = append(set.file, d)
		default:
			errs = append(errs, &Error{Pos: c.Pos, Message: fmt.Sprintf("unknown verb %q", parsed.Verb)})
		}
	}

	return set, errs
}

// strip removes the comment markers and reports whether what is left is a
// directive.
func strip(text string) (string, bool) {
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(text[2:], "*/")
	}
	text = strings.TrimSpace(text)
	return text, strings.HasPrefix(text, prefix)
}

func describe(err error) string {
	if pe, ok := err.(participle.Error); ok {
		return pe.Message()
	}
	return err.Error()
}

// Suppressed reports whether a finding for name assigned on line is
// silenced.
func (s *Set) Suppressed(name string, line int) bool {
	if s == nil {
		return false
	}
	for _, d := range s.file {
		if d.covers(name) {
			return true
		}
	}
	if line <= 0 {
		return false
	}
	for _, d := range s.byLine[line] {
		if d.covers(name) {
			return true
		}
	}
	for _, d := range s.byLine[line-1] {
		if d.EndLine == line-1 && d.covers(name) {
			return true
		}
	}
	return false
}

// All returns every directive in source order, file directives first.
func (s *Set) All() []Directive {
	if s == nil {
		return nil
	}
	out := append([]Directive(nil), s.file...)
	seen := map[ast.Position]bool{}
	lines := make([]int, 0, len(s.byLine))
	for l := range s.byLine {
		lines = append(lines, l)
	}
	slices.Sort(lines)
	for _, l := range lines {
		for _, d := range s.byLine[l] {
			if seen[d.Pos] {
				continue
			}
			seen[d.Pos] = true
			out = append(out, d)
		}
	}
	return out
}
