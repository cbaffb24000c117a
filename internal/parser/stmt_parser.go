package parser

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/symbols"
	"gaia/internal/token"
)

// parseBlock: '{' stmt* '}' в собственном фрейме.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBrace, diag.SynExpectBlock, "Expected `{`, got "+describe(p.peek()))
	if !ok {
		return ast.NoStmtID, false
	}
	scope := p.scopes.Enter(symbols.ScopeBlock, p.owner(ast.NoStmtID), open.Span)
	defer p.scopes.Leave(scope)

	var stmts []ast.StmtID
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedDelimiter, "Expected `}`, got end of file")
			return ast.NoStmtID, false
		}
		// пустой оператор
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // '}'

	id := p.arenas.Stmts.NewBlock(open.Span.Cover(p.lastSpan), stmts)
	if s := p.scopes.Table().Scopes.Get(scope); s != nil {
		s.Owner.Stmt = id
		s.Span = open.Span.Cover(p.lastSpan)
	}
	return id, true
}

// parseStmt выбирает распознаватель по первому токену.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar:
		return p.parseVarDecl()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwFor:
		p.err(diag.SynUnexpectedToken, "`for` is reserved, use `while`")
		return ast.NoStmtID, false
	case token.Ident:
		return p.parseIdentStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseIdentStmt различает присваивание, присваивание элементу и
// выражение-оператор (обычно вызов) по токену после цепочки постфиксов.
func (p *Parser) parseIdentStmt() (ast.StmtID, bool) {
	target, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	start := p.exprSpan(target)

	if p.at(token.Assign) {
		assignTok := p.advance()
		var kind ast.StmtKind
		switch p.arenas.Exprs.Get(target).Kind {
		case ast.ExprIdent:
			kind = ast.StmtAssign
		case ast.ExprElementAccess:
			kind = ast.StmtElementAssign
		default:
			p.report(diag.SynBadAssignTarget, start.Cover(assignTok.Span), "Invalid assignment target")
			return ast.NoStmtID, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		if !p.terminator() {
			return ast.NoStmtID, false
		}
		return p.arenas.Stmts.NewAssign(kind, start.Cover(p.lastSpan), target, value), true
	}

	expr, ok := p.parseBinaryRest(target, precLogicalOr)
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishExprStmt(expr)
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.finishExprStmt(expr)
}

func (p *Parser) finishExprStmt(expr ast.ExprID) (ast.StmtID, bool) {
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewExprStmt(p.exprSpan(expr).Cover(p.lastSpan), expr), true
}

func (p *Parser) parseBreakStmt() (ast.StmtID, bool) {
	tok := p.advance()
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewBreak(tok.Span.Cover(p.lastSpan)), true
}

// parseReturnStmt: операнд необязателен; ASI проверяется сразу после return.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	tok := p.advance()
	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.canOmitSemicolon() {
		var ok bool
		if value, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewReturn(tok.Span.Cover(p.lastSpan), value), true
}
