package parser

import "deadstore/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkNext(tt TokenType) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	illegal := Token{Type: ILLEGAL, Position: p.peek().Position}
	p.advance()
	return illegal
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// onNewLine reports whether the next token starts on a later line than the
// one just consumed.
func (p *Parser) onNewLine() bool {
	if p.current == 0 {
		return false
	}
	return p.peek().Position.Line > p.previous().Position.Line
}

// consumeTerminator ends a statement. A semicolon is taken when present;
// otherwise a line break, a closing brace or the end of input inserts one.
func (p *Parser) consumeTerminator() {
	if p.match(SEMICOLON) {
		return
	}
	if p.check(RIGHT_BRACE) || p.isAtEnd() || p.onNewLine() {
		return
	}
	p.errorAtCurrent("expected ';' after statement")
}

func (p *Parser) errorAtCurrent(message string) {
	pos := p.peek().Position
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: pos,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON {
			return
		}

		switch p.peek().Type {
		case VAR, LET, CONST, FUNCTION, IF, WHILE, DO, FOR, SWITCH, RETURN, RIGHT_BRACE:
			return
		}

		p.advance()
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// skipBalanced consumes a bracketed region starting at the current opening
// token and returns the closing token.
func (p *Parser) skipBalanced(openTok, closeTok TokenType) Token {
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		switch tok.Type {
		case openTok:
			depth++
		case closeTok:
			depth--
			if depth == 0 {
				return tok
			}
		}
	}
	p.errorAtCurrent("unbalanced " + openTok.String())
	return p.previous()
}

// isArrowAhead reports whether the tokens at the cursor begin an arrow
// function: "x =>" or a parenthesized parameter list followed by "=>".
func (p *Parser) isArrowAhead() bool {
	if p.check(IDENTIFIER) {
		return p.checkNext(ARROW)
	}
	if !p.check(LEFT_PAREN) {
		return false
	}
	depth := 0
	for i := p.current; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case LEFT_PAREN:
			depth++
		case RIGHT_PAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == ARROW
			}
		case EOF:
			return false
		}
	}
	return false
}

func isNameToken(tok Token) bool {
	return tok.Lexeme != "" && isAlpha(tok.Lexeme[0])
}

func badExpr(kind, message string, pos, end ast.Position) *ast.BadExpr {
	return &ast.BadExpr{Bad: ast.BadNode{Pos: pos, EndPos: end, Kind: kind, Message: message}}
}

func badStmt(kind, message string, pos, end ast.Position) *ast.BadStmt {
	return &ast.BadStmt{Bad: ast.BadNode{Pos: pos, EndPos: end, Kind: kind, Message: message}}
}
