package parser

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/token"
)

// parseExpr - главная точка входа для выражений
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precLogicalOr)
}

// parseBinaryExpr реализует precedence climbing: операнд, затем операторы с
// приоритетом не ниже minPrec; правая часть разбирается с prec+1,
// поэтому все операторы левоассоциативные.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parseBinaryRest(left, minPrec)
}

// parseBinaryRest продолжает разбор с уже готовым левым операндом.
func (p *Parser) parseBinaryRest(left ast.ExprID, minPrec int) (ast.ExprID, bool) {
	for {
		prec, op := getBinaryOperatorPrec(p.peek().Kind)
		if prec == precNone || prec < minPrec {
			return left, true
		}
		p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parseUnaryExpr собирает префиксы '-' и '!' и применяет их справа налево.
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}
	var prefixes []prefixOp
	for {
		op, ok := getUnaryOperator(p.peek().Kind)
		if !ok {
			break
		}
		prefixes = append(prefixes, prefixOp{op: op, span: p.advance().Span})
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for i := len(prefixes) - 1; i >= 0; i-- {
		span := prefixes[i].span.Cover(p.exprSpan(expr))
		expr = p.arenas.Exprs.NewUnary(span, prefixes[i].op, expr)
	}
	return expr, true
}

// parsePostfixExpr: primary, затем вызовы (...) и доступ по индексу [...].
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	return p.parsePostfixRest(expr)
}

func (p *Parser) parsePostfixRest(expr ast.ExprID) (ast.ExprID, bool) {
	for {
		var ok bool
		switch p.peek().Kind {
		case token.LParen:
			expr, ok = p.parseCallExpr(expr)
		case token.LBracket:
			expr, ok = p.parseElementAccess(expr)
		default:
			return expr, true
		}
		if !ok {
			return ast.NoExprID, false
		}
	}
}

func (p *Parser) parseCallExpr(callee ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '('
	args, ok := p.parseExprList(token.RParen)
	if !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(callee).Cover(p.lastSpan)
	return p.arenas.Exprs.NewCall(span, callee, args), true
}

func (p *Parser) parseElementAccess(target ast.ExprID) (ast.ExprID, bool) {
	p.advance() // '['
	index, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "Expected `]`, got "+describe(p.peek())); !ok {
		return ast.NoExprID, false
	}
	span := p.exprSpan(target).Cover(p.lastSpan)
	return p.arenas.Exprs.NewElementAccess(span, target, index), true
}

// parseExprList читает e, e, ... до закрывающего токена (включительно).
func (p *Parser) parseExprList(closer token.Kind) ([]ast.ExprID, bool) {
	var list []ast.ExprID
	if p.at(closer) {
		p.advance()
		return list, true
	}
	for {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		list = append(list, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if _, ok := p.expect(closer, diag.SynUnclosedDelimiter, "Expected `,` or `"+closerText(closer)+"`, got "+describe(p.peek())); !ok {
			return nil, false
		}
		return list, true
	}
}

// parsePrimaryExpr парсит атомарные выражения.
func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		if !p.resolveIdent(name, tok) {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.IntLit:
		return p.literal(ast.ExprIntLit), true
	case token.FloatLit:
		return p.literal(ast.ExprFloatLit), true
	case token.StringLit:
		return p.literal(ast.ExprStringLit), true
	case token.CharLit:
		return p.literal(ast.ExprCharLit), true
	case token.KwTrue, token.KwFalse:
		return p.literal(ast.ExprBoolLit), true
	case token.KwNull:
		return p.literal(ast.ExprNullLit), true

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "Expected `)`, got "+describe(p.peek())); !ok {
			return ast.NoExprID, false
		}
		// скобки не порождают узел, но span расширяем
		p.arenas.Exprs.Get(inner).Span = tok.Span.Cover(p.lastSpan)
		return inner, true

	case token.LBracket:
		p.advance()
		elems, ok := p.parseExprList(token.RBracket)
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewArrayLiteral(tok.Span.Cover(p.lastSpan), elems), true

	case token.Unknown:
		p.err(diag.SynUnexpectedToken, "Unexpected token "+describe(tok))
		return ast.NoExprID, false

	default:
		p.err(diag.SynExpectExpression, "Expected expression, got "+describe(tok))
		return ast.NoExprID, false
	}
}

func (p *Parser) literal(kind ast.ExprKind) ast.ExprID {
	tok := p.advance()
	return p.arenas.Exprs.NewLiteral(kind, tok.Span, p.arenas.StringsInterner.Intern(tok.Text))
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

func closerText(k token.Kind) string {
	switch k {
	case token.RParen:
		return ")"
	case token.RBracket:
		return "]"
	case token.RBrace:
		return "}"
	}
	return k.String()
}
