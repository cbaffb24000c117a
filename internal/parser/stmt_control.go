package parser

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/token"
)

// parseIfStmt: if cond block (else (if ... | block))?
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		switch p.peek().Kind {
		case token.KwIf:
			els, ok = p.parseIfStmt()
		case token.LBrace:
			els, ok = p.parseBlock()
		default:
			p.err(diag.SynExpectBlock, "Expected `if` or `{` after `else`, got "+describe(p.peek()))
			return ast.NoStmtID, false
		}
		if !ok {
			return ast.NoStmtID, false
		}
	}
	return p.arenas.Stmts.NewIf(ifTok.Span.Cover(p.lastSpan), cond, then, els), true
}

// parseWhileStmt: while cond block
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLoop(ast.StmtWhile, whileTok.Span.Cover(p.lastSpan), cond, body), true
}

// parseDoWhileStmt: do block while cond ';'
func (p *Parser) parseDoWhileStmt() (ast.StmtID, bool) {
	doTok := p.advance()
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "Expected `while` after do block, got "+describe(p.peek())); !ok {
		return ast.NoStmtID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewLoop(ast.StmtDoWhile, doTok.Span.Cover(p.lastSpan), cond, body), true
}
