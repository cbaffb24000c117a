package token

import (
	"gaia/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind      Kind
	Span      source.Span
	Text      string
	Leading   []Trivia
	LineBreak bool // перед токеном был перевод строки
}

// IsLiteral reports whether the token is an int, float, string, char or bool literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind <= Arrow
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwPackage && t.Kind <= KwVoid
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
