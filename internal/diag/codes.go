package diag

// Diagnostic codes for the deadstore toolchain.
//
// Code ranges:
// E0100-E0199: Parser and scanner errors
// E0600-E0699: Analysis failures
// W0001-W0099: Warnings
// I0001-I0099: Informational findings

const (
	// E0100: Syntax errors from the parser
	ErrorSyntax = "E0100"

	// E0101: Lexical errors from the scanner
	ErrorLexical = "E0101"

	// E0601: A name was read or written without a declaration in scope
	ErrorUndeclaredVariable = "E0601"

	// E0602: A construct outside the supported subset
	ErrorUnsupportedNode = "E0602"

	// E0603: More branch points met than counted
	ErrorFlowExhausted = "E0603"

	// E0604: Fewer branch points met than counted
	ErrorFlowMismatch = "E0604"

	// E0605: Scope enter/exit imbalance
	ErrorNoParentScope = "E0605"

	// E0606: Step budget or deadline reached
	ErrorIncomplete = "E0606"

	// W0001: Dead store
	WarningDeadStore = "W0001"

	// W0002: Malformed suppression directive
	WarningMalformedDirective = "W0002"

	// I0001: Binding always holds the same literal
	InfoSameValue = "I0001"
)
