package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	comments    []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens returns the token stream terminated by EOF. Comments are not
// part of the stream; see Comments.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

// Comments returns the line and block comments seen by ScanTokens.
func (s *Scanner) Comments() []Token {
	return s.comments
}

// Errors returns the scan errors seen by ScanTokens.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case ':':
		s.addToken(COLON)
	case '~':
		s.addToken(TILDE)
	case '^':
		s.addToken(CARET)

	// Operators with potential multi-character variants
	case '.':
		s.scanDot()
	case '-':
		s.scanMinusOperator()
	case '+':
		s.scanPlusOperator()
	case '*':
		s.scanStarOperator()
	case '%':
		s.scanPercentOperator()
	case '!':
		s.scanBangOperator()
	case '=':
		s.scanEqualOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '?':
		s.scanQuestionOperator()
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	// String literals
	case '"', '\'':
		s.scanString(c)
	case '`':
		s.reportError("template literals are not supported")
		s.skipTemplate()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDot() {
	if isDigit(s.peek()) {
		s.scanNumber()
		return
	}
	if s.peek() == '.' && s.peekNext() == '.' {
		s.advance()
		s.advance()
		s.addToken(ELLIPSIS)
		return
	}
	s.addToken(DOT)
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(DECREMENT)
	} else if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(INCREMENT)
	} else if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('*') {
		s.addToken(STAR_STAR)
	} else if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanPercentOperator() {
	if s.matchNext('=') {
		s.addToken(PERCENT_EQUAL)
	} else {
		s.addToken(PERCENT)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		if s.matchNext('=') {
			s.addToken(BANG_EQUAL_EQUAL)
		} else {
			s.addToken(BANG_EQUAL)
		}
	} else {
		s.addToken(BANG)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		if s.matchNext('=') {
			s.addToken(EQUAL_EQUAL_EQUAL)
		} else {
			s.addToken(EQUAL_EQUAL)
		}
	} else if s.matchNext('>') {
		s.addToken(ARROW)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(AND)
	} else {
		s.addToken(AMPERSAND)
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(OR)
	} else {
		s.addToken(PIPE)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanQuestionOperator() {
	if s.matchNext('?') {
		s.addToken(NULLISH)
	} else {
		s.addToken(QUESTION)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else if s.matchNext('/') {
		s.scanSingleLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:     tokenType,
		Lexeme:   lexeme,
		Position: s.startPosition(),
	})
}

func (s *Scanner) startPosition() Position {
	return Position{
		Line:   s.startLine,
		Column: s.startColumn,
		Offset: s.start,
	}
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: s.startPosition(),
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_' || c == '$'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	s.addToken(lookupIdentifier(text))
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// scanNumber is entered with the first digit (or the leading '.') consumed.
func (s *Scanner) scanNumber() {
	first := s.source[s.start]
	if first == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError("Invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(NUMBER)
		return
	}

	for isDigit(s.peek()) {
		s.advance()
	}
	if first != '.' && s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if s.peek() == 'e' || s.peek() == 'E' {
		next := s.peekNext()
		if isDigit(next) || next == '+' || next == '-' {
			s.advance()
			s.advance()
			for isDigit(s.peek()) {
				s.advance()
			}
		}
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanString(quote byte) {
	for s.peek() != quote && !s.isAtEnd() {
		if s.peek() == '\n' {
			break
		}
		if s.peek() == '\\' {
			s.advance()
			if s.isAtEnd() {
				break
			}
		}
		s.advance()
	}
	if s.isAtEnd() || s.peek() != quote {
		s.reportError("Unterminated string.")
		return
	}
	s.advance()
	s.addTokenLexeme(STRING, s.source[s.start+1:s.current-1])
}

func (s *Scanner) skipTemplate() {
	for !s.isAtEnd() && s.peek() != '`' {
		s.advance()
	}
	if !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	s.comments = append(s.comments, Token{
		Type:     COMMENT,
		Lexeme:   s.source[s.start:s.current],
		Position: s.startPosition(),
	})
}

func (s *Scanner) scanBlockComment() {
	unterminated := true
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			unterminated = false
			break
		}
		s.advance()
	}

	if unterminated {
		s.reportError("Unterminated block comment.")
		return
	}

	s.comments = append(s.comments, Token{
		Type:     BLOCK_COMMENT,
		Lexeme:   s.source[s.start:s.current],
		Position: s.startPosition(),
	})
}
