package fuzztests

import (
	"testing"

	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/source"
	"gaia/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.ga", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		end := uint32(0)
		// каждый токен продвигает курсор, поэтому цикл конечен
		for range len(input) + 2 {
			tok := lx.Next()
			if tok.Span.Start < end {
				t.Fatalf("token %v starts before previous end %d", tok.Kind, end)
			}
			end = tok.Span.End
			if tok.Kind == token.EOF || lx.Failed() {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF on %d bytes", len(input))
	})
}
