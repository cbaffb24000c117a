package parser

import (
	"context"
	"testing"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/source"
)

type parsed struct {
	fs     *source.FileSet
	arenas *ast.Builder
	bag    *diag.Bag
	result Result
}

func parseSource(t *testing.T, input string, opts Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ga", []byte(input))
	bag := diag.NewBag(4)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{}, nil)
	opts.Reporter = reporter
	res := ParseFile(context.Background(), fs, lx, arenas, opts)
	return parsed{fs: fs, arenas: arenas, bag: bag, result: res}
}

// mustParse падает, если были диагностики
func mustParse(t *testing.T, input string) parsed {
	t.Helper()
	p := parseSource(t, input, Options{})
	if !p.result.Ok || p.bag.HasErrors() {
		t.Fatalf("parse %q failed: %s", input, diag.FirstError(p.bag, p.fs))
	}
	return p
}

// mustFail ожидает ровно одну ошибку с кодом code и возвращает её текст.
func mustFail(t *testing.T, input string, opts Options, code diag.Code) string {
	t.Helper()
	p := parseSource(t, input, opts)
	if p.result.Ok {
		t.Fatalf("parse %q: expected failure", input)
	}
	if p.bag.Len() != 1 {
		t.Fatalf("parse %q: expected exactly one diagnostic, got %v", input, p.bag.Items())
	}
	d := p.bag.Items()[0]
	if d.Code != code {
		t.Fatalf("parse %q: expected %s, got %s (%s)", input, code.ID(), d.Code.ID(), d.Message)
	}
	return diag.FirstError(p.bag, p.fs).Error()
}

// topLevel возвращает i-й оператор файла (после импортов).
func (p parsed) topLevel(t *testing.T, i int) *ast.Stmt {
	t.Helper()
	file := p.arenas.Files.Get(p.result.File)
	if i >= len(file.Stmts) {
		t.Fatalf("expected at least %d top-level statements, got %d", i+1, len(file.Stmts))
	}
	return p.arenas.Stmts.Get(file.Stmts[i])
}

// varValue parses `package main; var x = <expr>;` and returns the value.
func varValue(t *testing.T, expr string) (parsed, ast.ExprID) {
	t.Helper()
	p := mustParse(t, "package main; var x = "+expr+";")
	file := p.arenas.Files.Get(p.result.File)
	decl, ok := p.arenas.Stmts.VarDecl(file.Stmts[0])
	if !ok {
		t.Fatalf("expected var decl")
	}
	return p, decl.Value
}

// funcBody returns the statements of the first function's body.
func funcBody(t *testing.T, p parsed, idx int) []ast.StmtID {
	t.Helper()
	file := p.arenas.Files.Get(p.result.File)
	fn, ok := p.arenas.Stmts.FuncDecl(file.Stmts[idx])
	if !ok {
		t.Fatalf("statement %d is not a function", idx)
	}
	block, ok := p.arenas.Stmts.Block(fn.Body)
	if !ok {
		t.Fatalf("function body is not a block")
	}
	return block.Stmts
}
