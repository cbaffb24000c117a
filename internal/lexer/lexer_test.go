package lexer_test

import (
	"strings"
	"testing"

	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/source"
	"gaia/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ga", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0, 8)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	toks := collectAllTokens(lx)
	got := kinds(toks)
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d got %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	if bag.HasErrors() {
		t.Fatalf("%q: unexpected diagnostics %v", input, bag.Items())
	}
	return toks
}

func TestLiteralRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"12345", token.IntLit},
		{"3.14", token.FloatLit},
		{"1.", token.FloatLit},
		{`"hello"`, token.StringLit},
		{`"a\"b\\n"`, token.StringLit},
		{`""`, token.StringLit},
		{`'x'`, token.CharLit},
		{`'\n'`, token.CharLit},
		{`'\''`, token.CharLit},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks := assertKinds(t, tt.input, tt.kind)
			if toks[0].Text != tt.input {
				t.Errorf("Text = %q, want %q", toks[0].Text, tt.input)
			}
			if toks[0].Span.Start != 0 || int(toks[0].Span.End) != len(tt.input) {
				t.Errorf("Span = %v", toks[0].Span)
			}
		})
	}
}

func TestLongestMatchOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<=", token.LtEq},
		{">=", token.GtEq},
		{"==", token.EqEq},
		{"!=", token.BangEq},
		{"&&", token.AndAnd},
		{"||", token.OrOr},
		{"->", token.Arrow},
	}
	for _, tt := range tests {
		toks := assertKinds(t, tt.input, tt.kind)
		if toks[0].Text != tt.input {
			t.Errorf("%q: Text = %q", tt.input, toks[0].Text)
		}
	}
}

func TestSingleCharFallback(t *testing.T) {
	assertKinds(t, "< = > ! & | - =",
		token.Lt, token.Assign, token.Gt, token.Bang, token.Amp, token.Pipe, token.Minus, token.Assign)
	assertKinds(t, "<>", token.Lt, token.Gt)
	assertKinds(t, "a=-b", token.Ident, token.Assign, token.Minus, token.Ident)
	assertKinds(t, "===", token.EqEq, token.Assign)
}

func TestPunctuation(t *testing.T) {
	assertKinds(t, "()[]{},;:.+-*/%",
		token.LParen, token.RParen, token.LBracket, token.RBracket, token.LBrace, token.RBrace,
		token.Comma, token.Semicolon, token.Colon, token.Dot,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent)
}

func TestKeywordsAndIdents(t *testing.T) {
	toks := assertKinds(t, "package var func Var varx x1",
		token.KwPackage, token.KwVar, token.KwFunc, token.Ident, token.Ident, token.Ident)
	if toks[3].Text != "Var" || toks[4].Text != "varx" {
		t.Errorf("unexpected texts %q %q", toks[3].Text, toks[4].Text)
	}
	assertKinds(t, "int float char string bool void",
		token.KwInt, token.KwFloat, token.KwChar, token.KwString, token.KwBool, token.KwVoid)
	assertKinds(t, "имя", token.Ident)

	// '_' не входит в идентификатор
	toks = assertKinds(t, "a_b", token.Ident, token.Unknown, token.Ident)
	if toks[0].Text != "a" || toks[2].Text != "b" {
		t.Errorf("unexpected texts %q %q", toks[0].Text, toks[2].Text)
	}
}

func TestNumbersHaveNoSign(t *testing.T) {
	assertKinds(t, "-42", token.Minus, token.IntLit)
	assertKinds(t, "1.5.x", token.FloatLit, token.Dot, token.Ident)
}

func TestComments(t *testing.T) {
	toks := assertKinds(t, "a // line\n/* block */ b /* x */ c", token.Ident, token.Ident, token.Ident)
	lead := toks[1].Leading
	wantTrivia := []token.TriviaKind{
		token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaBlockComment, token.TriviaSpace,
	}
	if len(lead) != len(wantTrivia) {
		t.Fatalf("leading trivia of b = %v", lead)
	}
	for i, k := range wantTrivia {
		if lead[i].Kind != k {
			t.Errorf("trivia %d = %v, want %v", i, lead[i].Kind, k)
		}
	}
	if lead[1].Text != "// line" || lead[3].Text != "/* block */" {
		t.Errorf("comment texts = %q, %q", lead[1].Text, lead[3].Text)
	}
	assertKinds(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestLineBreakFlag(t *testing.T) {
	lx, _ := makeTestLexer("x = 1\n}  y /*\n*/ z // c\n")
	want := []bool{false, false, false, true, false, true, true}
	for i, w := range want {
		tok := lx.Next()
		if tok.LineBreak != w {
			t.Errorf("token %d (%v %q): LineBreak = %v, want %v", i, tok.Kind, tok.Text, tok.LineBreak, w)
		}
		if lx.HasPrecedingLineBreak() != w {
			t.Errorf("token %d: HasPrecedingLineBreak = %v, want %v", i, lx.HasPrecedingLineBreak(), w)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a\nb")
	first := lx.Next()
	if first.Text != "a" {
		t.Fatalf("first = %q", first.Text)
	}
	peek := lx.Peek()
	if peek.Text != "b" || !peek.LineBreak {
		t.Fatalf("peek = %+v", peek)
	}
	if lx.HasPrecedingLineBreak() {
		t.Error("Peek must not change HasPrecedingLineBreak")
	}
	if next := lx.Next(); next.Text != "b" {
		t.Fatalf("next = %q", next.Text)
	}
	if !lx.HasPrecedingLineBreak() {
		t.Error("expected line break before b")
	}
	for range 3 {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
	}
}

func TestUnknownCharIsDeferred(t *testing.T) {
	lx, bag := makeTestLexer("a # b @")
	toks := collectAllTokens(lx)
	got := kinds(toks)
	want := []token.Kind{token.Ident, token.Unknown, token.Ident, token.Unknown, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unknown chars must not be reported by the scanner: %v", bag.Items())
	}
	if toks[1].Text != "#" {
		t.Errorf("Text = %q", toks[1].Text)
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"string eof", `"abc`, diag.LexUnterminatedString},
		{"string newline then eof", "\"abc\ndef", diag.LexUnterminatedString},
		{"char eof", `'a`, diag.LexUnterminatedChar},
		{"char long", `'ab'`, diag.LexUnterminatedChar},
		{"char empty", `''`, diag.LexEmptyChar},
		{"block comment", "a /* never closed", diag.LexUnterminatedBlockComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			toks := collectAllTokens(lx)
			d, ok := bag.FirstError()
			if !ok {
				t.Fatalf("expected a diagnostic, tokens %v", kinds(toks))
			}
			if d.Code != tt.code {
				t.Fatalf("code = %v, want %v", d.Code, tt.code)
			}
			if d.Code.Phase() != diag.PhaseScan {
				t.Errorf("phase = %v", d.Code.Phase())
			}
			if tt.code != diag.LexUnterminatedBlockComment && toks[0].Kind != token.Invalid {
				t.Errorf("first token = %v, want Invalid", toks[0].Kind)
			}
		})
	}
}

func TestStringSpansLines(t *testing.T) {
	toks := assertKinds(t, "\"ab\ncd\" x", token.StringLit, token.Ident)
	if toks[0].Text != "\"ab\ncd\"" {
		t.Fatalf("Text = %q", toks[0].Text)
	}
	if toks[1].Span.Start != 8 {
		t.Fatalf("ident starts at %d", toks[1].Span.Start)
	}
	assertKinds(t, "\"a\\\nb\"", token.StringLit)
}

func TestErrorPosition(t *testing.T) {
	src := "package p;\nvar s = \"oops\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("pos.ga", []byte(src))
	bag := diag.NewBag(1)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	collectAllTokens(lx)

	err := diag.FirstError(bag, fs)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "2,9: ") {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestNilReporter(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("nil.ga", []byte(`"x`))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("got %v", tok.Kind)
	}
}

func TestIndependentLexers(t *testing.T) {
	a, _ := makeTestLexer("one two")
	b, _ := makeTestLexer("three")
	if a.Next().Text != "one" || b.Next().Text != "three" || a.Next().Text != "two" {
		t.Fatal("lexers share state")
	}
}

func TestFailedTracksErrors(t *testing.T) {
	lx, _ := makeTestLexer("a 'b")
	lx.Next()
	if lx.Failed() {
		t.Fatal("no error yet")
	}
	lx.Next()
	if !lx.Failed() {
		t.Fatal("unterminated char must mark the lexer failed")
	}
}
