package parser

import (
	"slices"

	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{Kind: token.Invalid, Span: p.getDiagnosticSpan()}, false
}

// canOmitSemicolon реализует правило ASI: ';' можно опустить перед '}', EOF
// или если перед текущим токеном был перевод строки.
func (p *Parser) canOmitSemicolon() bool {
	tok := p.peek()
	return tok.Kind == token.RBrace || tok.Kind == token.EOF || tok.LineBreak
}

// terminator съедает ';' или применяет ASI.
func (p *Parser) terminator() bool {
	if p.at(token.Semicolon) {
		p.advance()
		return true
	}
	if p.canOmitSemicolon() {
		return true
	}
	p.err(diag.SynExpectSemicolon, "Expected `;`, got "+describe(p.peek()))
	return false
}

// parseIdent ожидает Ident и интернирует его.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "Expected identifier, got "+describe(p.peek()))
	return source.NoStringID, source.Span{}, false
}

// getDiagnosticSpan: для EOF указываем сразу за последним токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.AtEnd()
	}
	return peek.Span
}

// err репортит ошибку на текущем токене.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.getDiagnosticSpan(), msg)
}

// report фиксирует первую ошибку и останавливает разбор. Если лексер уже
// сообщил об ошибке, она и есть первая: своё сообщение не добавляем.
func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.failed {
		return
	}
	p.failed = true
	if p.lx.Failed() {
		return
	}
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// describe renders a token for messages: `x`, or "end of file".
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Invalid:
		return "invalid token"
	}
	return "`" + tok.Text + "`"
}
