package testkit

import (
	"context"
	"strings"
	"testing"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/parser"
	"gaia/internal/source"
)

func parse(t *testing.T, src string) (*ast.Builder, ast.FileID, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("inv.ga", []byte(src))
	bag := diag.NewBag(4)
	reporter := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(context.Background(), fs, lexer.New(fs.Get(id), lexer.Options{Reporter: reporter}), b, parser.Options{Reporter: reporter})
	if !res.Ok {
		t.Fatalf("parse failed: %v", diag.FirstError(bag, fs))
	}
	return b, res.File, fs.Get(id)
}

func TestSpansNest(t *testing.T) {
	b, file, sf := parse(t, `package p
import "std/io"
struct S { a: int; b: char[] }
interface I { m(x: int): bool }
enum E { A, B = 2 }
var xs: int[2] = [1, (2 + 3) * 4]
func f(n: int): int {
	if n > 0 { xs[0] = -n } else { return f(n - 1) }
	while n < 3 { n = n + 1 }
	do { break } while false
	return xs[1]
}
`)
	if err := CheckSpanInvariants(b, file, sf); err != nil {
		t.Fatal(err)
	}
}

func TestDetectsEscapingSpan(t *testing.T) {
	b, file, sf := parse(t, "package p\nvar x = 1 + 2\n")
	f := b.Files.Get(file)
	decl, _ := b.Stmts.VarDecl(f.Stmts[0])
	val := b.Exprs.Get(decl.Value)
	val.Span.End = f.Span.End + 5

	err := CheckSpanInvariants(b, file, sf)
	if err == nil || !strings.Contains(err.Error(), "outside parent span") {
		t.Fatalf("expected containment error, got %v", err)
	}
}

func TestRejectsNil(t *testing.T) {
	if CheckSpanInvariants(nil, ast.NoFileID, nil) == nil {
		t.Fatal("expected error")
	}
}
