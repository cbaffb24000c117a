package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gaia/internal/source"
	"gaia/internal/token"
)

type TokenOutput struct {
	Kind      string   `json:"kind"`
	Text      string   `json:"text,omitempty"`
	Line      uint32   `json:"line"`
	Col       uint32   `json:"col"`
	Start     uint32   `json:"start"`
	End       uint32   `json:"end"`
	LineBreak bool     `json:"line_break,omitempty"`
	Leading   []string `json:"leading,omitempty"`
}

func tokenOutput(tok token.Token, fs *source.FileSet) TokenOutput {
	pos, _ := resolve(fs, tok.Span)
	out := TokenOutput{
		Kind:      tok.Kind.String(),
		Text:      tok.Text,
		Line:      pos.Line,
		Col:       pos.Col,
		Start:     tok.Span.Start,
		End:       tok.Span.End,
		LineBreak: tok.LineBreak,
	}
	for _, tr := range tok.Leading {
		out.Leading = append(out.Leading, tr.Kind.String())
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		t := tokenOutput(tok, fs)
		line := fmt.Sprintf("%3d: %-14s", i+1, t.Kind)
		if t.Text != "" && t.Text != t.Kind {
			line += fmt.Sprintf(" %q", t.Text)
		}
		line += fmt.Sprintf(" at %d,%d", t.Line, t.Col)
		if t.LineBreak {
			line += " ↵"
		}
		if len(t.Leading) > 0 {
			line += " (leading: " + strings.Join(t.Leading, ", ") + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, tokenOutput(tok, fs))
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
