package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"deadstore/internal/analysis"
	"deadstore/internal/ast"
	"deadstore/internal/diag"
	"deadstore/internal/directive"
	"deadstore/internal/driver"
	"deadstore/internal/parser"
)

const source = "deadstore"

// ConvertParseErrors transforms parser errors into LSP diagnostics for IDE display.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostics = append(diagnostics, makeDiagnostic(
			parseErr.Position.Line, parseErr.Position.Column, 6,
			protocol.DiagnosticSeverityError, diag.ErrorSyntax, parseErr.Message))
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics for IDE display.
// These handle tokenization issues like invalid characters, unterminated strings, etc.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		length := scanErr.Length
		if length == 0 {
			length = 4
		}
		diagnostics = append(diagnostics, makeDiagnostic(
			scanErr.Position.Line, scanErr.Position.Column, length,
			protocol.DiagnosticSeverityError, diag.ErrorLexical, scanErr.Message))
	}

	return diagnostics
}

// ConvertResult turns a finished run into diagnostics: dead stores as
// warnings, same-value findings as information and failed vectors as errors
// at the node that stopped them. Failures sharing a message are reported
// once.
func ConvertResult(result *driver.Result) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	if result == nil {
		return diagnostics
	}

	for _, e := range result.Entries {
		d := diag.DeadStore(e)
		diagnostics = append(diagnostics, fromDiagnostic(d, protocol.DiagnosticSeverityWarning))
	}

	for _, sv := range result.Values {
		d := diag.SameValue(sv.Binding.Name, sv.Value, sv.Binding.Declared)
		diagnostics = append(diagnostics, fromDiagnostic(d, protocol.DiagnosticSeverityInformation))
	}

	seen := map[string]bool{}
	for _, f := range result.Failures {
		message := f.Err.Error()
		if seen[message] {
			continue
		}
		seen[message] = true

		var pos ast.Position
		var located *analysis.Error
		if errors.As(f.Err, &located) {
			pos = located.Pos
		}
		severity := protocol.DiagnosticSeverityError
		if !f.Kind.Structural() {
			severity = protocol.DiagnosticSeverityHint
		}
		diagnostics = append(diagnostics, makeDiagnostic(pos.Line, pos.Column, 1, severity, f.Kind.Code(), message))
	}

	for _, err := range result.Directives {
		var pos ast.Position
		var derr *directive.Error
		if errors.As(err, &derr) {
			pos = derr.Pos
		}
		diagnostics = append(diagnostics, makeDiagnostic(pos.Line, pos.Column, 2,
			protocol.DiagnosticSeverityWarning, diag.WarningMalformedDirective, err.Error()))
	}

	return diagnostics
}

func fromDiagnostic(d diag.Diagnostic, severity protocol.DiagnosticSeverity) protocol.Diagnostic {
	message := d.Message
	for _, note := range d.Notes {
		message += "\nnote: " + note
	}
	return makeDiagnostic(d.Position.Line, d.Position.Column, d.Length, severity, d.Code, message)
}

// makeDiagnostic builds a single-line diagnostic. Positions are 1-based;
// a missing position is reported on the first line.
func makeDiagnostic(line, column, length int, severity protocol.DiagnosticSeverity, code, message string) protocol.Diagnostic {
	line = max(line, 1)
	column = max(column, 1)
	length = max(length, 1)

	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{
				Line:      uint32(line - 1),   // Convert to 0-based indexing
				Character: uint32(column - 1), // Convert to 0-based indexing
			},
			End: protocol.Position{
				Line:      uint32(line - 1),
				Character: uint32(column - 1 + length),
			},
		},
		Severity: ptrSeverity(severity),
		Source:   ptrString(source),
		Message:  message,
	}
	if code != "" {
		d.Code = &protocol.IntegerOrString{Value: code}
	}
	return d
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
