package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Keywords
	VAR
	LET
	CONST
	FUNCTION
	IF
	ELSE
	WHILE
	DO
	FOR
	SWITCH
	CASE
	DEFAULT
	RETURN
	BREAK
	CONTINUE
	TRUE
	FALSE
	NULL
	TYPEOF
	THROW
	TRY
	CLASS
	NEW

	// Operators
	PLUS
	INCREMENT
	MINUS
	DECREMENT
	STAR
	STAR_STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	BANG_EQUAL_EQUAL
	EQUAL
	EQUAL_EQUAL
	EQUAL_EQUAL_EQUAL
	ARROW
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	AMPERSAND
	OR
	PIPE
	CARET
	TILDE
	QUESTION
	NULLISH
	ELLIPSIS

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Comments
	COMMENT
	BLOCK_COMMENT
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENTIFIER: "IDENTIFIER", NUMBER: "NUMBER", STRING: "STRING",
	VAR: "VAR", LET: "LET", CONST: "CONST", FUNCTION: "FUNCTION", IF: "IF", ELSE: "ELSE",
	WHILE: "WHILE", DO: "DO", FOR: "FOR", SWITCH: "SWITCH", CASE: "CASE", DEFAULT: "DEFAULT",
	RETURN: "RETURN", BREAK: "BREAK", CONTINUE: "CONTINUE", TRUE: "TRUE", FALSE: "FALSE",
	NULL: "NULL", TYPEOF: "TYPEOF", THROW: "THROW", TRY: "TRY", CLASS: "CLASS", NEW: "NEW",
	PLUS: "PLUS", INCREMENT: "INCREMENT", MINUS: "MINUS", DECREMENT: "DECREMENT",
	STAR: "STAR", STAR_STAR: "STAR_STAR", SLASH: "SLASH", PERCENT: "PERCENT",
	BANG: "BANG", BANG_EQUAL: "BANG_EQUAL", BANG_EQUAL_EQUAL: "BANG_EQUAL_EQUAL",
	EQUAL: "EQUAL", EQUAL_EQUAL: "EQUAL_EQUAL", EQUAL_EQUAL_EQUAL: "EQUAL_EQUAL_EQUAL",
	ARROW: "ARROW", LESS: "LESS", LESS_EQUAL: "LESS_EQUAL", GREATER: "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL", AND: "AND", AMPERSAND: "AMPERSAND", OR: "OR",
	PIPE: "PIPE", CARET: "CARET", TILDE: "TILDE", QUESTION: "QUESTION", NULLISH: "NULLISH",
	ELLIPSIS: "ELLIPSIS", PLUS_EQUAL: "PLUS_EQUAL", MINUS_EQUAL: "MINUS_EQUAL",
	STAR_EQUAL: "STAR_EQUAL", SLASH_EQUAL: "SLASH_EQUAL", PERCENT_EQUAL: "PERCENT_EQUAL",
	COMMA: "COMMA", DOT: "DOT", SEMICOLON: "SEMICOLON", COLON: "COLON",
	LEFT_PAREN: "LEFT_PAREN", RIGHT_PAREN: "RIGHT_PAREN", LEFT_BRACE: "LEFT_BRACE",
	RIGHT_BRACE: "RIGHT_BRACE", LEFT_BRACKET: "LEFT_BRACKET", RIGHT_BRACKET: "RIGHT_BRACKET",
	COMMENT: "COMMENT", BLOCK_COMMENT: "BLOCK_COMMENT",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "TokenType(?)"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
