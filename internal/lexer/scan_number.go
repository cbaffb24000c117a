package lexer

import (
	"gaia/internal/token"
)

// scanNumber: [0-9]+ ('.' [0-9]*)?
// Точка после целой части всегда продолжает литерал: "1." это FloatLit.
// Знак не часть литерала, унарный минус разбирает парсер.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('.') {
		return lx.tokenFrom(token.IntLit, start)
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.FloatLit, start)
}
