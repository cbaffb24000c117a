package lexer

import (
	"gaia/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует максимальный [Ident] и проверяет LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text хранит ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		// не буква: один символ (или руна) -> Unknown, решает парсер
		if sz == 0 {
			lx.cursor.Bump()
		} else {
			lx.bumpRune()
		}
		return lx.tokenFrom(token.Unknown, start)
	}
	lx.bumpRune()
	for {
		if b := lx.cursor.Peek(); b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	tok := lx.tokenFrom(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}
