package lexer

import (
	"gaia/internal/source"
	"gaia/internal/token"
)

// Lexer turns one source file into tokens on demand.
type Lexer struct {
	file      *source.File
	cursor    Cursor
	opts      Options
	look      *token.Token   // 1 элементный буфер для токена
	hold      []token.Trivia // накопленные leading trivia
	lastBreak bool           // LineBreak последнего выданного токена
	errors    int
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		lx.lastBreak = tok.LineBreak
		return tok
	}
	tok := lx.scan()
	lx.lastBreak = tok.LineBreak
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.scan()
	lx.look = &t
	return t
}

// HasPrecedingLineBreak reports whether the trivia skipped before the token
// last returned by Next contained a line terminator.
func (lx *Lexer) HasPrecedingLineBreak() bool {
	return lx.lastBreak
}

// Failed reports whether a lexical error was produced so far.
func (lx *Lexer) Failed() bool {
	return lx.errors > 0
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

func (lx *Lexer) scan() token.Token {
	lx.collectLeadingTrivia()
	brk := triviaHasBreak(lx.hold)

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan(), LineBreak: brk}
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	case ch == '\'':
		tok = lx.scanChar()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	tok.LineBreak = brk
	lx.hold = nil
	return tok
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// text returns the source slice under sp as a fresh string.
func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) tokenFrom(k token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}
