package token_test

import (
	"testing"

	"gaia/internal/source"
	"gaia/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.StringLit, token.CharLit,
		token.KwTrue, token.KwFalse,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwVar, token.Plus, token.LParen, token.KwNull}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.LParen, token.RBrace, token.Semicolon, token.Dot,
		token.Plus, token.Percent, token.Assign, token.Bang,
		token.AndAnd, token.OrOr, token.EqEq, token.BangEq,
		token.LtEq, token.GtEq, token.Arrow,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.IntLit, token.KwIf, token.EOF, token.Unknown} {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, k := range []token.Kind{token.KwPackage, token.KwFor, token.KwVoid, token.KwNull} {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() || tok(token.LParen).IsKeyword() {
		t.Fatal("non-keywords reported as keywords")
	}
}

func TestTypeKeywords(t *testing.T) {
	types := map[token.Kind]bool{
		token.KwInt: true, token.KwFloat: true, token.KwChar: true,
		token.KwString: true, token.KwBool: true, token.KwVoid: true,
		token.KwNull: false, token.KwVar: false, token.Ident: false,
	}
	for k, want := range types {
		if got := k.IsTypeKeyword(); got != want {
			t.Errorf("%v.IsTypeKeyword() = %v, want %v", k, got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	if token.AndAnd.String() != "AndAnd" || token.EOF.String() != "EOF" {
		t.Fatalf("unexpected names: %s %s", token.AndAnd, token.EOF)
	}
}
