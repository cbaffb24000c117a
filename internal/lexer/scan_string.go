package lexer

import (
	"gaia/internal/diag"
	"gaia/internal/token"
)

// scanString читает "..." до парной кавычки. Escape-последовательности
// не декодируются: '\' просто экранирует следующий байт, Text хранит исходник.
// Строка может занимать несколько строк исходника; фатален только EOF до
// закрывающей кавычки.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	if !lx.scanQuoted('"') {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedString, tok.Span, "Unterminated string literal")
		return tok
	}
	return lx.tokenFrom(token.StringLit, start)
}

// scanChar читает 'x' или '\n'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	if lx.cursor.Eat('\'') {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexEmptyChar, tok.Span, "Empty character literal")
		return tok
	}
	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedChar, tok.Span, "Unterminated character literal")
		return tok
	}
	lx.bumpRune()
	if !lx.cursor.Eat('\'') {
		tok := lx.tokenFrom(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedChar, tok.Span, "Unterminated character literal")
		return tok
	}
	return lx.tokenFrom(token.CharLit, start)
}

// scanQuoted consumes up to and including quote, newlines included. It
// reports false when EOF comes first.
func (lx *Lexer) scanQuoted(quote byte) bool {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case quote:
			lx.cursor.Bump()
			return true
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}
