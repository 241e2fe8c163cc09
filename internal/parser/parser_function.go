package parser

import "deadstore/internal/ast"

// parseFuncDecl parses: function name(params) { body }
func (p *Parser) parseFuncDecl() ast.Stmt {
	start := p.advance()

	name, ok := p.consumeIdent("expected function name")
	if !ok {
		p.synchronize()
		return badStmt("FunctionDeclaration", "missing function name", p.makePos(start), p.makeEndPos(p.previous()))
	}

	params := p.parseParams()
	body := p.parseBlock()

	return &ast.FuncDecl{
		Pos:    p.makePos(start),
		EndPos: body.EndPos,
		Name:   name,
		Params: params,
		Body:   body,
	}
}

// parseFuncExpr parses: function [name](params) { body }
func (p *Parser) parseFuncExpr() ast.Expr {
	start := p.advance()

	fn := &ast.FuncExpr{Pos: p.makePos(start)}
	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		fn.Name = &name
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	fn.EndPos = fn.Body.EndPos
	return fn
}

// parseArrowFunc parses "x => expr", "(a, b = 1) => { ... }" and friends.
// The caller has already checked isArrowAhead.
func (p *Parser) parseArrowFunc() ast.Expr {
	start := p.peek()
	fn := &ast.ArrowFuncExpr{Pos: p.makePos(start)}

	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		fn.Params = []*ast.Param{{Pos: name.Pos, EndPos: name.EndPos, Name: name}}
	} else {
		fn.Params = p.parseParams()
	}
	p.consume(ARROW, "expected '=>'")

	if p.check(LEFT_BRACE) {
		fn.Body = p.parseBlock()
		fn.EndPos = fn.Body.EndPos
		return fn
	}

	fn.ExprBody = p.parseAssignment()
	fn.EndPos = fn.ExprBody.NodeEndPos()
	return fn
}

// parseParams parses a parenthesized parameter list including the parens.
func (p *Parser) parseParams() []*ast.Param {
	p.consume(LEFT_PAREN, "expected '(' before parameters")

	var params []*ast.Param
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		param := p.parseParam()
		if param == nil {
			break
		}
		params = append(params, param)
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameters")
	return params
}

func (p *Parser) parseParam() *ast.Param {
	rest := p.match(ELLIPSIS)
	if p.check(LEFT_BRACE) || p.check(LEFT_BRACKET) {
		p.errorAtCurrent("destructuring parameters are not supported")
		return nil
	}

	name, ok := p.consumeIdent("expected parameter name")
	if !ok {
		return nil
	}

	param := &ast.Param{Pos: name.Pos, EndPos: name.EndPos, Name: name, Rest: rest}
	if p.match(EQUAL) {
		param.Default = p.parseAssignment()
		param.EndPos = param.Default.NodeEndPos()
	}
	return param
}
