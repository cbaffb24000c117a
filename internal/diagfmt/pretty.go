package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gaia/internal/diag"
	"gaia/internal/source"
)

type palette struct {
	err, warn, info, note, gutter, caret, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		bold:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.gutter, p.caret, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   2 | var x: int = true
//	     |              ^~~~
//
// затем заметки в том же формате, если включены.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		start, _ := resolve(fs, d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			d.Code.ID(),
			p.bold.Sprint(d.Message))
		writeSnippet(w, fs, d.Primary, opts.Context, p, p.caret)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := resolve(fs, n.Span)
			fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			fmt.Fprintf(w, "  %s %s:%d:%d\n", p.gutter.Sprint("-->"), displayPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col)
			writeSnippet(w, fs, n.Span, 0, p, p.note)
		}
	}
}

func resolve(fs *source.FileSet, sp source.Span) (source.LineCol, source.LineCol) {
	if fs == nil || int(sp.File) >= fs.Len() {
		return source.LineCol{}, source.LineCol{}
	}
	return fs.Resolve(sp)
}

func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, p palette, mark *color.Color) {
	start, end := resolve(fs, sp)
	if start.Line == 0 {
		return
	}
	file := fs.Get(sp.File)
	first := start.Line
	if context > 0 {
		first = uint32(max(1, int(start.Line)-context)) // #nosec G115 -- номер строки положителен
	}
	gutter := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutter+2, ln), file.GetLine(ln))
	}

	line := file.GetLine(start.Line)
	lead := underlinePrefix(line, int(start.Col)-1)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = runewidth.StringWidth(sliceCols(line, int(start.Col)-1, int(end.Col)-1))
	} else if end.Line > start.Line {
		width = max(1, runewidth.StringWidth(sliceCols(line, int(start.Col)-1, len(line))))
	}
	underline := "^" + strings.Repeat("~", max(0, width-1))
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gutter+2, ""), lead, mark.Sprint(underline))
}

// underlinePrefix повторяет табы строки, остальные символы заменяет
// пробелами по ширине в терминале.
func underlinePrefix(line string, byteCol int) string {
	byteCol = min(max(byteCol, 0), len(line))
	var sb strings.Builder
	for _, r := range line[:byteCol] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func sliceCols(line string, from, to int) string {
	from = min(max(from, 0), len(line))
	to = min(max(to, from), len(line))
	return line[from:to]
}

// Short prints one line per error: "<path>: <line>,<col>: <message>.".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		if d.Severity < diag.SevError {
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", displayPath(fs, d.Primary.File, mode), diag.ErrorFrom(d, fs).Error())
	}
}
