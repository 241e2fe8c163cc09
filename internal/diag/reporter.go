package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"deadstore/internal/ast"
)

// Level represents the severity of a diagnostic
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Info    Level = "info"
	Note    Level = "note"
)

// Diagnostic is a finding or failure ready to be shown to a user
type Diagnostic struct {
	Level    Level
	Code     string       // Code like W0001
	Message  string       // Primary message
	Position ast.Position // Location in source
	Length   int          // Length of the marked region
	Notes    []string     // Additional context notes
	HelpText string       // Help text
}

// Builder provides a fluent interface for creating diagnostics
type Builder struct {
	d Diagnostic
}

func New(level Level, code, message string, pos ast.Position) *Builder {
	return &Builder{d: Diagnostic{
		Level:    level,
		Code:     code,
		Message:  message,
		Position: pos,
		Length:   1,
	}}
}

// WithLength sets the length of the marked span
func (b *Builder) WithLength(length int) *Builder {
	b.d.Length = length
	return b
}

// WithNote adds a context note
func (b *Builder) WithNote(note string) *Builder {
	b.d.Notes = append(b.d.Notes, note)
	return b
}

// WithHelp sets the help text
func (b *Builder) WithHelp(help string) *Builder {
	b.d.HelpText = help
	return b
}

func (b *Builder) Build() Diagnostic {
	return b.d
}

// DeadStore describes a dead-store entry.
func DeadStore(e Entry) Diagnostic {
	b := New(Warning, WarningDeadStore,
		fmt.Sprintf("value assigned to '%s' is never read", e.Identifier),
		e.AssignmentLocation).
		WithLength(len(e.Identifier))
	if e.DeadLocation.IsValid() {
		b.WithNote(fmt.Sprintf("'%s' goes out of scope at line %d", e.Identifier, e.DeadLocation.Line))
	}
	return b.WithHelp(fmt.Sprintf("remove the assignment or prefix a comment with 'deadstore:ignore %s'", e.Identifier)).Build()
}

// SameValue describes a binding that only ever holds one literal.
func SameValue(name, value string, pos ast.Position) Diagnostic {
	return New(Info, InfoSameValue,
		fmt.Sprintf("identifier %s always has the same value: %s", name, value), pos).
		WithLength(len(name)).
		WithHelp("consider a constant").
		Build()
}

// Reporter renders diagnostics against the source they refer to
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a diagnostic with a header, source context and a marker
// under the offending span.
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: warning[W0001]: message
	if d.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(d.Level)), d.Message))
	}

	if !d.Position.IsValid() {
		result.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), r.filename))
		r.writeTrailer(&result, d, "  ", dim)
		result.WriteString("\n")
		return result.String()
	}

	width := lineNumberWidth(d.Position.Line)
	indent := strings.Repeat(" ", width)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, d.Position.Line, d.Position.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Line before
	if d.Position.Line > 1 && d.Position.Line-1 <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, d.Position.Line-1)), dim("│"), r.lines[d.Position.Line-2]))
	}

	if d.Position.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1]))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker(d.Position.Column, d.Length, d.Level)))
	}

	// Line after
	if d.Position.Line < len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", width, d.Position.Line+1)), dim("│"), r.lines[d.Position.Line]))
	}

	r.writeTrailer(&result, d, indent, dim)
	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) writeTrailer(result *strings.Builder, d Diagnostic, indent string, dim func(...interface{}) string) {
	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}
	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), helpColor("help:"), d.HelpText))
	}
}

func levelColor(level Level) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Info:
		return color.New(color.FgCyan, color.Bold).SprintFunc()
	default:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	}
}

func marker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))
	return spaces + levelColor(level)(strings.Repeat("^", length))
}

// lineNumberWidth is at least 3 for visual alignment
func lineNumberWidth(line int) int {
	return max(3, len(fmt.Sprintf("%d", line)))
}
