package lexer

import (
	"gaia/internal/diag"
	"gaia/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical errors. It may be nil, errors are then dropped
	// but the offending token is still returned as token.Invalid.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
