package lexer

import (
	"gaia/internal/token"
)

var singleByteKinds = [utf8RuneSelf]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'.': token.Dot,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'!': token.Bang,
	'<': token.Lt,
	'>': token.Gt,
	'&': token.Amp,
	'|': token.Pipe,
}

// scanOperatorOrPunct: сначала двухсимвольные операторы (longest match),
// затем односимвольные. Неизвестный байт -> token.Unknown без репорта.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.tokenFrom(k, start)
	}

	switch {
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	}

	ch := lx.cursor.Bump()
	if ch < utf8RuneSelf {
		if k := singleByteKinds[ch]; k != token.Invalid {
			return emit(k)
		}
	}
	return emit(token.Unknown)
}
