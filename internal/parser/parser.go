package parser

import (
	"fmt"

	"deadstore/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// Errors returns the errors collected while parsing.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// ParseProgram parses the whole token stream as a script body.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.peek()
	program := &ast.Program{
		Pos:  p.makePos(start),
		Path: p.filename,
	}

	for !p.isAtEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			program.Body = append(program.Body, stmt)
		}
	}

	program.EndPos = p.makeEndPos(p.peek())
	return program
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Type {
	case VAR, LET, CONST:
		decl := p.parseVarDecl()
		p.consumeTerminator()
		return decl
	case FUNCTION:
		return p.parseFuncDecl()
	case IF:
		return p.parseIfStmt()
	case WHILE:
		return p.parseWhileStmt()
	case DO:
		return p.parseDoWhileStmt()
	case FOR:
		return p.parseForStmt()
	case SWITCH:
		return p.parseSwitchStmt()
	case RETURN:
		return p.parseReturnStmt()
	case BREAK, CONTINUE:
		return p.parseBranchStmt()
	case LEFT_BRACE:
		return p.parseBlock()
	case SEMICOLON:
		tok := p.advance()
		return &ast.EmptyStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}
	case THROW:
		return p.parseThrowStmt()
	case TRY, CLASS:
		return p.parseSkippedStmt()
	case RIGHT_BRACE:
		p.errorAtCurrent("unexpected '}'")
		p.advance()
		return nil
	}

	return p.parseExprStmt()
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.consume(LEFT_BRACE, "expected '{'")
	block := &ast.BlockStmt{Pos: p.makePos(start)}

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.parseStatement(); stmt != nil {
			block.Body = append(block.Body, stmt)
		}
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close block")
	block.EndPos = p.makeEndPos(end)
	return block
}

// parseVarDecl parses "let a = 1, b" without the statement terminator so the
// same code serves for-loop initializers.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	kind := p.advance()
	decl := &ast.VarDecl{
		Pos:  p.makePos(kind),
		Kind: kind.Lexeme,
	}

	for {
		name, ok := p.consumeIdent("expected variable name")
		if !ok {
			p.synchronize()
			break
		}
		d := &ast.Declarator{Pos: name.Pos, EndPos: name.EndPos, Name: name}
		if p.match(EQUAL) {
			d.Init = p.parseAssignment()
			d.EndPos = d.Init.NodeEndPos()
		}
		decl.Declarators = append(decl.Declarators, d)

		if !p.match(COMMA) {
			break
		}
	}

	decl.EndPos = p.makeEndPos(p.previous())
	return decl
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'if'")
	test := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after if condition")

	stmt := &ast.IfStmt{
		Pos:        p.makePos(start),
		Test:       test,
		Consequent: p.parseBody(),
	}
	if p.match(ELSE) {
		stmt.Alternate = p.parseBody()
	}
	stmt.EndPos = p.makeEndPos(p.previous())
	return stmt
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	test := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after while condition")

	body := p.parseBody()
	return &ast.WhileStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Test:   test,
		Body:   body,
	}
}

func (p *Parser) parseDoWhileStmt() ast.Stmt {
	start := p.advance()
	body := p.parseBody()
	p.consume(WHILE, "expected 'while' after do body")
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	test := p.parseExpression()
	end := p.consume(RIGHT_PAREN, "expected ')' after do-while condition")
	p.match(SEMICOLON)

	return &ast.DoWhileStmt{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Body:   body,
		Test:   test,
	}
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'for'")

	stmt := &ast.ForStmt{Pos: p.makePos(start)}

	switch {
	case p.check(SEMICOLON):
	case p.check(VAR) || p.check(LET) || p.check(CONST):
		stmt.Init = p.parseVarDecl()
	default:
		expr := p.parseExpression()
		stmt.Init = &ast.ExprStmt{Pos: expr.NodePos(), EndPos: expr.NodeEndPos(), Expr: expr}
	}

	if p.check(IDENTIFIER) && (p.peek().Lexeme == "in" || p.peek().Lexeme == "of") {
		return p.skipForIn(start)
	}

	p.consume(SEMICOLON, "expected ';' after for initializer")
	if !p.check(SEMICOLON) {
		stmt.Test = p.parseExpression()
	}
	p.consume(SEMICOLON, "expected ';' after for condition")
	if !p.check(RIGHT_PAREN) {
		stmt.Update = p.parseExpression()
	}
	p.consume(RIGHT_PAREN, "expected ')' after for clauses")

	stmt.Body = p.parseBody()
	stmt.EndPos = p.makeEndPos(p.previous())
	return stmt
}

func (p *Parser) skipForIn(start Token) ast.Stmt {
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		p.advance()
	}
	p.consume(RIGHT_PAREN, "expected ')' after for-in head")
	p.parseBody()
	return badStmt("ForInStatement", "for-in and for-of loops are not supported",
		p.makePos(start), p.makeEndPos(p.previous()))
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'switch'")
	disc := p.parseExpression()
	p.consume(RIGHT_PAREN, "expected ')' after switch discriminant")
	p.consume(LEFT_BRACE, "expected '{' to open switch body")

	stmt := &ast.SwitchStmt{Pos: p.makePos(start), Discriminant: disc}
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		c := p.parseSwitchCase()
		if c == nil {
			p.synchronize()
			continue
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	end := p.consume(RIGHT_BRACE, "expected '}' to close switch body")
	stmt.EndPos = p.makeEndPos(end)
	return stmt
}

func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.peek()
	c := &ast.SwitchCase{Pos: p.makePos(start)}

	switch {
	case p.match(CASE):
		c.Test = p.parseExpression()
	case p.match(DEFAULT):
	default:
		p.errorAtCurrent("expected 'case' or 'default'")
		return nil
	}
	p.consume(COLON, "expected ':' after case label")

	for !p.check(CASE) && !p.check(DEFAULT) && !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		if s := p.parseStatement(); s != nil {
			c.Consequent = append(c.Consequent, s)
		}
	}
	c.EndPos = p.makeEndPos(p.previous())
	return c
}

// parseReturnStmt handles the restricted production: an argument must start
// on the same line as the keyword.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.advance()
	stmt := &ast.ReturnStmt{Pos: p.makePos(start)}

	if !p.check(SEMICOLON) && !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.onNewLine() {
		stmt.Argument = p.parseExpression()
	}
	stmt.EndPos = p.makeEndPos(p.previous())
	p.consumeTerminator()
	return stmt
}

func (p *Parser) parseBranchStmt() ast.Stmt {
	tok := p.advance()
	// Labels are accepted and ignored.
	if p.check(IDENTIFIER) && !p.onNewLine() {
		p.advance()
	}
	stmt := &ast.BranchStmt{
		Pos:     p.makePos(tok),
		EndPos:  p.makeEndPos(p.previous()),
		Keyword: tok.Lexeme,
	}
	p.consumeTerminator()
	return stmt
}

func (p *Parser) parseThrowStmt() ast.Stmt {
	start := p.advance()
	if !p.onNewLine() {
		p.parseExpression()
	}
	end := p.previous()
	p.consumeTerminator()
	return badStmt("ThrowStatement", "throw statements are not supported", p.makePos(start), p.makeEndPos(end))
}

// parseSkippedStmt consumes try/catch/finally and class declarations as a
// single unsupported statement.
func (p *Parser) parseSkippedStmt() ast.Stmt {
	start := p.advance()
	kind := "ClassDeclaration"
	if start.Type == TRY {
		kind = "TryStatement"
	}

	for !p.isAtEnd() {
		for !p.check(LEFT_BRACE) && !p.isAtEnd() {
			p.advance()
		}
		p.skipBalanced(LEFT_BRACE, RIGHT_BRACE)
		if kind == "ClassDeclaration" {
			break
		}
		if next := p.peek(); next.Type != IDENTIFIER || (next.Lexeme != "catch" && next.Lexeme != "finally") {
			break
		}
	}

	return badStmt(kind, "statement is not supported", p.makePos(start), p.makeEndPos(p.previous()))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpression()
	stmt := &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}
	p.consumeTerminator()
	return stmt
}

// parseBody parses the body of a compound statement. A lexical declaration
// is not allowed there without braces.
func (p *Parser) parseBody() ast.Stmt {
	if p.check(LET) || p.check(CONST) {
		p.errorAtCurrent("lexical declaration cannot appear in a single-statement context")
	}
	if p.isAtEnd() {
		p.errorAtCurrent("expected statement")
		return &ast.EmptyStmt{Pos: p.makePos(p.peek()), EndPos: p.makePos(p.peek())}
	}
	stmt := p.parseStatement()
	if stmt == nil {
		return &ast.EmptyStmt{Pos: p.makePos(p.previous()), EndPos: p.makeEndPos(p.previous())}
	}
	return stmt
}
