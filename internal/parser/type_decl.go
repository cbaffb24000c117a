package parser

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/symbols"
	"gaia/internal/token"
)

func (p *Parser) parseStructDecl() (ast.StmtID, bool) {
	return p.parseTypeDecl(ast.StmtStructDecl, symbols.SymbolStruct, p.parsePropertyMember)
}

func (p *Parser) parseInterfaceDecl() (ast.StmtID, bool) {
	return p.parseTypeDecl(ast.StmtInterfaceDecl, symbols.SymbolInterface, p.parseInterfaceMember)
}

func (p *Parser) parseEnumDecl() (ast.StmtID, bool) {
	return p.parseTypeDecl(ast.StmtEnumDecl, symbols.SymbolEnum, p.parseEnumMember)
}

// parseTypeDecl разбирает общий каркас: kw name '{' member (sep member)* sep? '}'.
// Разделитель ';', ',' или перевод строки.
func (p *Parser) parseTypeDecl(
	kind ast.StmtKind,
	symKind symbols.SymbolKind,
	member func() (ast.MemberID, bool),
) (ast.StmtID, bool) {
	kwTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "Expected `{` after "+kwTok.Text+" name, got "+describe(p.peek())); !ok {
		return ast.NoStmtID, false
	}

	var members []ast.MemberID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedDelimiter, "Expected `}`, got end of file")
			return ast.NoStmtID, false
		}
		id, ok := p.member(member)
		if !ok {
			return ast.NoStmtID, false
		}
		members = append(members, id)
	}
	p.advance() // '}'

	stmt := p.arenas.Stmts.NewTypeDecl(kind, kwTok.Span.Cover(p.lastSpan), ast.TypeDeclData{
		Name:     name,
		NameSpan: nameSpan,
		Members:  members,
	})
	if !p.declare(symbols.Symbol{
		Name: name,
		Kind: symKind,
		Span: nameSpan,
		Decl: symbols.SymbolDecl{SourceFile: p.lx.File().ID, Stmt: stmt},
	}) {
		return ast.NoStmtID, false
	}
	if kind == ast.StmtEnumDecl {
		return stmt, p.declareEnumMembers(stmt, members)
	}
	return stmt, true
}

// member разбирает элемент и съедает разделитель после него.
func (p *Parser) member(parse func() (ast.MemberID, bool)) (ast.MemberID, bool) {
	id, ok := parse()
	if !ok {
		return ast.NoMemberID, false
	}
	switch {
	case p.at(token.Semicolon), p.at(token.Comma):
		p.advance()
	case p.canOmitSemicolon():
	default:
		p.err(diag.SynExpectSemicolon, "Expected `;` or `,` after member, got "+describe(p.peek()))
		return ast.NoMemberID, false
	}
	return id, true
}

// name ':' T
func (p *Parser) parsePropertyMember() (ast.MemberID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoMemberID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectType, "Expected `:` after member name, got "+describe(p.peek())); !ok {
		return ast.NoMemberID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoMemberID, false
	}
	return p.arenas.Stmts.NewMember(ast.Member{
		Kind:     ast.MemberProperty,
		Span:     nameSpan.Cover(p.lastSpan),
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
	}), true
}

// name '(' params ')' (':' T)?  или свойство name ':' T
func (p *Parser) parseInterfaceMember() (ast.MemberID, bool) {
	if p.lx.Peek().Kind != token.Ident {
		p.err(diag.SynExpectIdentifier, "Expected member name, got "+describe(p.peek()))
		return ast.NoMemberID, false
	}
	name, nameSpan, _ := p.parseIdent()
	if !p.at(token.LParen) {
		if _, ok := p.expect(token.Colon, diag.SynExpectType, "Expected `(` or `:` after member name, got "+describe(p.peek())); !ok {
			return ast.NoMemberID, false
		}
		typ, ok := p.parseType()
		if !ok {
			return ast.NoMemberID, false
		}
		return p.arenas.Stmts.NewMember(ast.Member{
			Kind:     ast.MemberProperty,
			Span:     nameSpan.Cover(p.lastSpan),
			Name:     name,
			NameSpan: nameSpan,
			Type:     typ,
		}), true
	}
	p.advance()
	params, ok := p.parseParams(token.RParen)
	if !ok {
		return ast.NoMemberID, false
	}
	result, ok := p.parseTypeAnnotation()
	if !ok {
		return ast.NoMemberID, false
	}
	return p.arenas.Stmts.NewMember(ast.Member{
		Kind:     ast.MemberMethod,
		Span:     nameSpan.Cover(p.lastSpan),
		Name:     name,
		NameSpan: nameSpan,
		Type:     result,
		Params:   params,
	}), true
}

// name ('=' expr)?
func (p *Parser) parseEnumMember() (ast.MemberID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoMemberID, false
	}
	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		if value, ok = p.parseExpr(); !ok {
			return ast.NoMemberID, false
		}
	}
	return p.arenas.Stmts.NewMember(ast.Member{
		Kind:     ast.MemberEnum,
		Span:     nameSpan.Cover(p.lastSpan),
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
	}), true
}

// Члены enum видны в объемлющем фрейме, как константы.
func (p *Parser) declareEnumMembers(stmt ast.StmtID, members []ast.MemberID) bool {
	for _, id := range members {
		m := p.arenas.Stmts.Member(id)
		if m == nil {
			continue
		}
		if !p.declare(symbols.Symbol{
			Name: m.Name,
			Kind: symbols.SymbolEnumMember,
			Span: m.NameSpan,
			Decl: symbols.SymbolDecl{SourceFile: p.lx.File().ID, Stmt: stmt},
		}) {
			return false
		}
	}
	return true
}
