package lexer

import (
	"strings"

	"gaia/internal/diag"
	"gaia/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r' коалесцируются в один TriviaSpace
//   - подряд идущие '\n' -> один TriviaNewline
//   - //... до \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		case b == '/':
			if lx.scanComment() {
				continue
			}
		}
		return
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) scanComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()

	if b1 == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true
	}

	for {
		if lx.cursor.EOF() {
			lx.pushTrivia(token.TriviaBlockComment, start)
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "Unterminated block comment")
			return true
		}
		if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaBlockComment, start)
			return true
		}
		lx.cursor.Bump()
	}
}

// triviaHasBreak: перевод строки внутри trivia, включая многострочный /* */.
func triviaHasBreak(hold []token.Trivia) bool {
	for _, tr := range hold {
		switch tr.Kind {
		case token.TriviaNewline:
			return true
		case token.TriviaBlockComment:
			if strings.Contains(tr.Text, "\n") {
				return true
			}
		}
	}
	return false
}
