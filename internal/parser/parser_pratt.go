package parser

import (
	"deadstore/internal/ast"
)

var binaryPrecedence = map[TokenType]int{
	NULLISH:           1,
	OR:                2,
	AND:               3,
	PIPE:              4,
	CARET:             5,
	AMPERSAND:         6,
	EQUAL_EQUAL:       7,
	BANG_EQUAL:        7,
	EQUAL_EQUAL_EQUAL: 7,
	BANG_EQUAL_EQUAL:  7,
	LESS:              8,
	LESS_EQUAL:        8,
	GREATER:           8,
	GREATER_EQUAL:     8,
	PLUS:              9,
	MINUS:             9,
	STAR:              10,
	SLASH:             10,
	PERCENT:           10,
	STAR_STAR:         11,
}

var assignmentOps = map[TokenType]bool{
	EQUAL:         true,
	PLUS_EQUAL:    true,
	MINUS_EQUAL:   true,
	STAR_EQUAL:    true,
	SLASH_EQUAL:   true,
	PERCENT_EQUAL: true,
}

func isLogicalOp(tt TokenType) bool {
	return tt == AND || tt == OR || tt == NULLISH
}

// parseExpression parses a comma-separated sequence.
func (p *Parser) parseExpression() ast.Expr {
	first := p.parseAssignment()
	if !p.check(COMMA) {
		return first
	}

	seq := &ast.SequenceExpr{Pos: first.NodePos(), Exprs: []ast.Expr{first}}
	for p.match(COMMA) {
		seq.Exprs = append(seq.Exprs, p.parseAssignment())
	}
	seq.EndPos = seq.Exprs[len(seq.Exprs)-1].NodeEndPos()
	return seq
}

// parseAssignment parses an assignment, an arrow function or a conditional.
// Assignment is right-associative.
func (p *Parser) parseAssignment() ast.Expr {
	if p.isArrowAhead() {
		return p.parseArrowFunc()
	}

	left := p.parseConditional()
	if !assignmentOps[p.peek().Type] {
		return left
	}

	op := p.advance()
	if !isAssignable(left) {
		p.errors = append(p.errors, ParseError{
			Message:  "invalid assignment target",
			Position: op.Position,
		})
	}
	value := p.parseAssignment()
	return &ast.AssignExpr{
		Pos:    left.NodePos(),
		EndPos: value.NodeEndPos(),
		Op:     op.Lexeme,
		Target: left,
		Value:  value,
	}
}

// isAssignable accepts identifiers and the unsupported member forms; the
// latter are reported by the analysis.
func isAssignable(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.IdentExpr, *ast.BadExpr:
		return true
	case *ast.ParenExpr:
		return isAssignable(t.Value)
	}
	return false
}

func (p *Parser) parseConditional() ast.Expr {
	test := p.parsePrattExpr(1)
	if !p.match(QUESTION) {
		return test
	}

	consequent := p.parseAssignment()
	p.consume(COLON, "expected ':' in conditional expression")
	alternate := p.parseAssignment()
	return &ast.ConditionalExpr{
		Pos:        test.NodePos(),
		EndPos:     alternate.NodeEndPos(),
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		next := prec + 1
		if tok.Type == STAR_STAR {
			next = prec
		}
		right := p.parsePrattExpr(next)

		if isLogicalOp(tok.Type) {
			expr = &ast.LogicalExpr{
				Pos:    expr.NodePos(),
				EndPos: right.NodeEndPos(),
				Op:     tok.Lexeme,
				Left:   expr,
				Right:  right,
			}
			continue
		}
		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(INCREMENT, DECREMENT) {
		op := p.previous()
		target := p.parsePrefixExpr()
		return &ast.UpdateExpr{
			Pos:    p.makePos(op),
			EndPos: target.NodeEndPos(),
			Op:     op.Lexeme,
			Prefix: true,
			Target: target,
		}
	}

	if p.match(MINUS, PLUS, BANG, TILDE, TYPEOF) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.match(LEFT_PAREN):
			args := p.parseArguments()
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Callee: expr,
				Args:   args,
			}
		case p.match(DOT):
			field := p.advance()
			if !isNameToken(field) {
				p.errors = append(p.errors, ParseError{Message: "expected property name after '.'", Position: field.Position})
			}
			expr = badExpr("MemberExpression", "member access is not supported", expr.NodePos(), p.makeEndPos(field))
		case p.match(LEFT_BRACKET):
			p.parseExpression()
			end := p.consume(RIGHT_BRACKET, "expected ']' after index")
			expr = badExpr("MemberExpression", "member access is not supported", expr.NodePos(), p.makeEndPos(end))
		case (p.check(INCREMENT) || p.check(DECREMENT)) && !p.onNewLine():
			op := p.advance()
			expr = &ast.UpdateExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(op),
				Op:     op.Lexeme,
				Target: expr,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments() []ast.Expr {
	var args []ast.Expr
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		args = append(args, p.parseElement())
		if !p.match(COMMA) {
			break
		}
	}
	return args
}

// parseElement parses a call argument or array element, folding spread
// elements into an unsupported node.
func (p *Parser) parseElement() ast.Expr {
	if p.match(ELLIPSIS) {
		start := p.previous()
		value := p.parseAssignment()
		return badExpr("SpreadElement", "spread elements are not supported", p.makePos(start), value.NodeEndPos())
	}
	return p.parseAssignment()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case NUMBER:
		p.advance()
		return p.literal(tok, ast.NumberLiteral)
	case STRING:
		p.advance()
		return p.literal(tok, ast.StringLiteral)
	case TRUE, FALSE:
		p.advance()
		return p.literal(tok, ast.BooleanLiteral)
	case NULL:
		p.advance()
		return p.literal(tok, ast.NullLiteral)
	case IDENTIFIER:
		p.advance()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	case LEFT_PAREN:
		p.advance()
		value := p.parseExpression()
		end := p.consume(RIGHT_PAREN, "expected ')' after expression")
		return &ast.ParenExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(end),
			Value:  value,
		}
	case LEFT_BRACKET:
		return p.parseArray()
	case FUNCTION:
		return p.parseFuncExpr()
	case LEFT_BRACE:
		end := p.skipBalanced(LEFT_BRACE, RIGHT_BRACE)
		return badExpr("ObjectExpression", "object literals are not supported", p.makePos(tok), p.makeEndPos(end))
	case NEW:
		p.advance()
		callee := p.parsePrimaryExpr()
		end := p.previous()
		if p.check(LEFT_PAREN) {
			end = p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
		}
		return badExpr("NewExpression", "new expressions are not supported", p.makePos(tok), endOf(p, callee, end))
	}

	p.errorAtCurrent("expected expression, got " + describe(tok))
	p.advance()
	return badExpr("Unknown", "unexpected token", p.makePos(tok), p.makeEndPos(tok))
}

func endOf(p *Parser, callee ast.Expr, end Token) ast.Position {
	if end.Position.Offset >= callee.NodeEndPos().Offset {
		return p.makeEndPos(end)
	}
	return callee.NodeEndPos()
}

func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

func (p *Parser) literal(tok Token, kind ast.LiteralKind) *ast.LiteralExpr {
	return &ast.LiteralExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Lexeme,
	}
}

func (p *Parser) parseArray() ast.Expr {
	start := p.advance()
	arr := &ast.ArrayExpr{Pos: p.makePos(start)}
	for !p.check(RIGHT_BRACKET) && !p.isAtEnd() {
		arr.Elements = append(arr.Elements, p.parseElement())
		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_BRACKET, "expected ']' after array elements")
	arr.EndPos = p.makeEndPos(end)
	return arr
}
