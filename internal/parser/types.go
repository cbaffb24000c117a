package parser

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/token"
)

var typeKeywords = map[token.Kind]ast.TypeKeyword{
	token.KwInt:    ast.TypeKwInt,
	token.KwFloat:  ast.TypeKwFloat,
	token.KwChar:   ast.TypeKwChar,
	token.KwString: ast.TypeKwString,
	token.KwBool:   ast.TypeKwBool,
	token.KwVoid:   ast.TypeKwVoid,
}

// parseType: примитив с цепочкой суффиксов.
//
//	T[]   массив, T[][] массив массивов
//	T[N]  sized array, N целый литерал; T[N][M] тоже допустимо
//
// Каждый суффикс различается по токену сразу после '['.
func (p *Parser) parseType() (ast.ExprID, bool) {
	tok := p.peek()
	kw, ok := typeKeywords[tok.Kind]
	if !ok {
		p.err(diag.SynExpectType, "Expected type, got "+describe(tok))
		return ast.NoExprID, false
	}
	p.advance()
	typ := p.arenas.Exprs.NewKeywordType(tok.Span, kw)

	for p.at(token.LBracket) {
		open := p.advance()
		switch p.peek().Kind {
		case token.RBracket:
			closeTok := p.advance()
			typ = p.arenas.Exprs.NewArrayType(p.exprSpan(typ).Cover(closeTok.Span), typ)
		case token.IntLit:
			size := p.advance()
			closeTok, ok := p.expect(token.RBracket, diag.SynBadArraySuffix, "Expected `]` after array size, got "+describe(p.peek()))
			if !ok {
				return ast.NoExprID, false
			}
			sizeID := p.arenas.StringsInterner.Intern(size.Text)
			typ = p.arenas.Exprs.NewSizedArrayType(p.exprSpan(typ).Cover(closeTok.Span), typ, sizeID)
		default:
			p.report(diag.SynBadArraySuffix, open.Span.Cover(p.peek().Span), "Expected `]` or an integer size in array type, got "+describe(p.peek()))
			return ast.NoExprID, false
		}
	}
	return typ, true
}

// parseTypeAnnotation: ':' T, если есть двоеточие.
func (p *Parser) parseTypeAnnotation() (ast.ExprID, bool) {
	if !p.at(token.Colon) {
		return ast.NoExprID, true
	}
	p.advance()
	return p.parseType()
}
