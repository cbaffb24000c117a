package parser

import (
	"fmt"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/symbols"
	"gaia/internal/token"
)

// parseVarDecl: var name (':' T)? ('=' expr)? ';'
func (p *Parser) parseVarDecl() (ast.StmtID, bool) {
	varTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	typ, ok := p.parseTypeAnnotation()
	if !ok {
		return ast.NoStmtID, false
	}
	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		if value, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}

	stmt := p.arenas.Stmts.NewVarDecl(varTok.Span.Cover(p.lastSpan), ast.VarDeclData{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
		Value:    value,
	})
	// имя видно только после инициализатора
	if !p.declare(symbols.Symbol{
		Name:     name,
		Kind:     symbols.SymbolVariable,
		Span:     nameSpan,
		Decl:     symbols.SymbolDecl{SourceFile: p.lx.File().ID, Stmt: stmt},
		TypeExpr: typ,
	}) {
		return ast.NoStmtID, false
	}
	return stmt, true
}

// parseFuncDecl: func name '(' params ')' (':' T)? block
//
// Имя объявляется до тела, чтобы рекурсия резолвилась. Параметры живут
// в отдельном фрейме функции, тело в своём блоке внутри него.
func (p *Parser) parseFuncDecl() (ast.StmtID, bool) {
	funcTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "Expected `(` after function name, got "+describe(p.peek())); !ok {
		return ast.NoStmtID, false
	}
	params, ok := p.parseParams(token.RParen)
	if !ok {
		return ast.NoStmtID, false
	}
	result, ok := p.parseTypeAnnotation()
	if !ok {
		return ast.NoStmtID, false
	}

	sig := &symbols.FunctionSignature{ResultExpr: result}
	for _, id := range params {
		if param, ok := p.arenas.Exprs.Param(id); ok {
			sig.Params = append(sig.Params, symbols.Param{Name: param.Name, TypeExpr: param.Type})
		}
	}
	symID, declared := p.scopes.Declare(symbols.Symbol{
		Name:      name,
		Kind:      symbols.SymbolFunction,
		Span:      nameSpan,
		Decl:      symbols.SymbolDecl{SourceFile: p.lx.File().ID},
		Signature: sig,
	})
	if !declared && p.opts.EagerResolve {
		p.report(diag.SynRedeclared, nameSpan, fmt.Sprintf("`%s` already declared", p.arenas.Name(name)))
		return ast.NoStmtID, false
	}

	fnScope := p.scopes.Enter(symbols.ScopeFunction, p.owner(ast.NoStmtID), funcTok.Span)
	for _, id := range params {
		param, _ := p.arenas.Exprs.Param(id)
		if !p.declare(symbols.Symbol{
			Name:     param.Name,
			Kind:     symbols.SymbolParam,
			Span:     param.NameSpan,
			Decl:     symbols.SymbolDecl{SourceFile: p.lx.File().ID, Expr: id},
			TypeExpr: param.Type,
		}) {
			p.scopes.Leave(fnScope)
			return ast.NoStmtID, false
		}
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynExpectBlock, "Expected `{` before function body, got "+describe(p.peek()))
		p.scopes.Leave(fnScope)
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	p.scopes.Leave(fnScope)
	if !ok {
		return ast.NoStmtID, false
	}

	stmt := p.arenas.Stmts.NewFuncDecl(funcTok.Span.Cover(p.lastSpan), ast.FuncDeclData{
		Name:     name,
		NameSpan: nameSpan,
		Params:   params,
		Result:   result,
		Body:     body,
	})
	if declared {
		if sym := p.scopes.Symbol(symID); sym != nil {
			sym.Decl.Stmt = stmt
		}
	}
	if scope := p.scopes.Table().Scopes.Get(fnScope); scope != nil {
		scope.Owner.Stmt = stmt
	}
	return stmt, true
}

// parseParams: (name ':' T (',' name ':' T)*)? closer
func (p *Parser) parseParams(closer token.Kind) ([]ast.ExprID, bool) {
	var params []ast.ExprID
	if p.at(closer) {
		p.advance()
		return params, true
	}
	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectType, "Expected `:` after parameter name, got "+describe(p.peek())); !ok {
			return nil, false
		}
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, p.arenas.Exprs.NewParam(nameSpan.Cover(p.lastSpan), name, nameSpan, typ))

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if _, ok := p.expect(closer, diag.SynUnclosedDelimiter, "Expected `,` or `"+closerText(closer)+"`, got "+describe(p.peek())); !ok {
			return nil, false
		}
		return params, true
	}
}

// declare вставляет символ в текущий фрейм. Конфликт в том же фрейме:
// ошибка только в режиме EagerResolve, иначе его найдёт чекер.
func (p *Parser) declare(sym symbols.Symbol) bool {
	if _, ok := p.scopes.Declare(sym); ok || !p.opts.EagerResolve {
		return true
	}
	p.report(diag.SynRedeclared, sym.Span, fmt.Sprintf("`%s` already declared", p.arenas.Name(sym.Name)))
	return false
}

// resolveIdent проверяет ссылку по цепочке фреймов (только EagerResolve).
func (p *Parser) resolveIdent(name source.StringID, tok token.Token) bool {
	if !p.opts.EagerResolve {
		return true
	}
	if _, ok := p.scopes.Lookup(name); ok {
		return true
	}
	p.report(diag.SynUndeclaredIdent, tok.Span, fmt.Sprintf("`%s` undeclared", tok.Text))
	return false
}

func (p *Parser) owner(stmt ast.StmtID) symbols.ScopeOwner {
	return symbols.ScopeOwner{
		SourceFile: p.lx.File().ID,
		ASTFile:    p.file,
		Stmt:       stmt,
	}
}
