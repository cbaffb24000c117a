package parser

import (
	"context"
	"strings"
	"testing"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/source"
	"gaia/internal/symbols"
)

func TestPackageClauseRequired(t *testing.T) {
	msg := mustFail(t, "var x = 1;", Options{}, diag.SynExpectPackage)
	if msg != "1,1: Expected package." {
		t.Fatalf("got %q", msg)
	}
	mustFail(t, "package ;", Options{}, diag.SynExpectIdentifier)
}

func TestImportsPrecedeDeclarations(t *testing.T) {
	p := mustParse(t, "package main\nimport \"std/io\"\nimport \"math\";\nvar x = 1")
	file := p.arenas.Files.Get(p.result.File)
	imports := p.arenas.Imports(p.result.File)
	if len(imports) != 2 || len(file.Stmts) != 3 {
		t.Fatalf("imports=%d stmts=%d", len(imports), len(file.Stmts))
	}
	imp, _ := p.arenas.Stmts.Import(imports[0])
	if got := p.arenas.Name(imp.Path); got != "std/io" {
		t.Fatalf("import path %q", got)
	}

	mustFail(t, "package main; var x = 1; import \"io\";", Options{}, diag.SynImportAfterDecl)
}

func TestUnexpectedTopLevel(t *testing.T) {
	mustFail(t, "package main; x = 1;", Options{}, diag.SynUnexpectedTopLevel)
	mustFail(t, "package main; return 1;", Options{}, diag.SynUnexpectedTopLevel)
}

func TestVarDeclForms(t *testing.T) {
	p := mustParse(t, `package main
var answer: int = 42
var name = "gaia"
var grid: int[3][2]
var xs: float[] = [1.0, 2.5]`)

	if p.topLevel(t, 3).Kind != ast.StmtVarDecl {
		t.Fatalf("expected four var decls")
	}
	file := p.arenas.Files.Get(p.result.File)
	checks := []struct {
		hasType, hasValue bool
	}{{true, true}, {false, true}, {true, false}, {true, true}}
	for i, want := range checks {
		d, ok := p.arenas.Stmts.VarDecl(file.Stmts[i])
		if !ok {
			t.Fatalf("statement %d is not a var", i)
		}
		if (d.Type != ast.NoExprID) != want.hasType || (d.Value != ast.NoExprID) != want.hasValue {
			t.Fatalf("statement %d: type=%v value=%v", i, d.Type, d.Value)
		}
	}
}

func TestTypeSuffixChains(t *testing.T) {
	p := mustParse(t, "package main; var a: int[3][]; var b: bool[][4];")
	file := p.arenas.Files.Get(p.result.File)

	// int[3][]: массив sized-массивов
	a, _ := p.arenas.Stmts.VarDecl(file.Stmts[0])
	outer, ok := p.arenas.Exprs.ArrayType(a.Type)
	if !ok {
		t.Fatalf("outer should be an array type, got %v", p.arenas.Exprs.Get(a.Type).Kind)
	}
	sized, ok := p.arenas.Exprs.SizedArrayType(outer.Elem)
	if !ok || p.arenas.Name(sized.Size) != "3" {
		t.Fatalf("inner should be int[3]")
	}
	kw, ok := p.arenas.Exprs.KeywordType(sized.Elem)
	if !ok || kw.Keyword != ast.TypeKwInt {
		t.Fatalf("innermost should be int")
	}

	b, _ := p.arenas.Stmts.VarDecl(file.Stmts[1])
	if _, ok := p.arenas.Exprs.SizedArrayType(b.Type); !ok {
		t.Fatalf("bool[][4] should be a sized type at the top")
	}
}

func TestTypeErrors(t *testing.T) {
	mustFail(t, "package main; var a: foo = 1;", Options{}, diag.SynExpectType)
	mustFail(t, "package main; var a: int[x];", Options{}, diag.SynBadArraySuffix)
	mustFail(t, "package main; var a: int[3;", Options{}, diag.SynBadArraySuffix)
}

func TestFuncDecl(t *testing.T) {
	p := mustParse(t, "package main; func add(a: int, b: int[]): int { return a }\nfunc main() { }")
	fn, ok := p.arenas.Stmts.FuncDecl(p.arenas.Files.Get(p.result.File).Stmts[0])
	if !ok {
		t.Fatalf("expected function")
	}
	if p.arenas.Name(fn.Name) != "add" || len(fn.Params) != 2 || fn.Result == ast.NoExprID {
		t.Fatalf("unexpected signature %+v", fn)
	}
	param, ok := p.arenas.Exprs.Param(fn.Params[1])
	if !ok || p.arenas.Name(param.Name) != "b" {
		t.Fatalf("second param should be b")
	}

	main, _ := p.arenas.Stmts.FuncDecl(p.arenas.Files.Get(p.result.File).Stmts[1])
	if main.Result != ast.NoExprID || len(main.Params) != 0 {
		t.Fatalf("main should be void without params")
	}

	mustFail(t, "package main; func f(a int) { }", Options{}, diag.SynExpectType)
	mustFail(t, "package main; func f() int { }", Options{}, diag.SynExpectBlock)
}

func TestTypeDecls(t *testing.T) {
	p := mustParse(t, `package main
struct Point { x: int; y: int }
interface Shape { area(scale: int): float; name(): string }
enum Color {
	Red
	Green = 4,
	Blue
}`)
	file := p.arenas.Files.Get(p.result.File)
	tests := []struct {
		kind    ast.StmtKind
		members []ast.MemberKind
	}{
		{ast.StmtStructDecl, []ast.MemberKind{ast.MemberProperty, ast.MemberProperty}},
		{ast.StmtInterfaceDecl, []ast.MemberKind{ast.MemberMethod, ast.MemberMethod}},
		{ast.StmtEnumDecl, []ast.MemberKind{ast.MemberEnum, ast.MemberEnum, ast.MemberEnum}},
	}
	for i, tt := range tests {
		if got := p.arenas.Stmts.Get(file.Stmts[i]).Kind; got != tt.kind {
			t.Fatalf("decl %d: got %v, want %v", i, got, tt.kind)
		}
		decl, _ := p.arenas.Stmts.TypeDecl(file.Stmts[i])
		if len(decl.Members) != len(tt.members) {
			t.Fatalf("decl %d: %d members", i, len(decl.Members))
		}
		for j, id := range decl.Members {
			if got := p.arenas.Stmts.Member(id).Kind; got != tt.members[j] {
				t.Fatalf("decl %d member %d: got %v", i, j, got)
			}
		}
	}

	enum, _ := p.arenas.Stmts.TypeDecl(file.Stmts[2])
	if p.arenas.Stmts.Member(enum.Members[1]).Value == ast.NoExprID {
		t.Fatalf("Green should carry an initializer")
	}

	mustFail(t, "package main; struct P { x: int y: int }", Options{}, diag.SynExpectSemicolon)
	mustFail(t, "package main; struct P { x: int", Options{}, diag.SynUnclosedDelimiter)
}

func TestEagerResolve(t *testing.T) {
	eager := Options{EagerResolve: true}

	p := parseSource(t, "package main; var x = 1; func f(a: int) { var y = a + x; printf(\"%d\", y) }", eager)
	if !p.result.Ok {
		t.Fatalf("unexpected failure: %v", p.bag.Items())
	}

	msg := mustFail(t, "package main; var y: int = z;", eager, diag.SynUndeclaredIdent)
	if !strings.Contains(msg, "`z` undeclared") {
		t.Fatalf("got %q", msg)
	}
	mustFail(t, "package main; var x = 1; var x = 2;", eager, diag.SynRedeclared)
	mustFail(t, "package main; func f(a: int, a: int) { }", eager, diag.SynRedeclared)

	// вложенный фрейм может затенять внешнее имя
	p = parseSource(t, "package main; var x = 1; func f() { var x = 2; { var x = 3 } }", eager)
	if !p.result.Ok {
		t.Fatalf("shadowing should be allowed: %v", p.bag.Items())
	}
	// имя из закрытого блока больше не видно
	mustFail(t, "package main; func f() { { var t = 1 } t = 2 }", eager, diag.SynUndeclaredIdent)
}

func TestDeferredResolveToleratesForwardReferences(t *testing.T) {
	mustParse(t, "package main; func a() { b() }\nfunc b() { a(); unknown = 1 }\nvar x = 1; var x = 2")
}

func TestEagerBuiltinRedeclared(t *testing.T) {
	msg := mustFail(t, "package main; var printf = 1", Options{EagerResolve: true}, diag.SynRedeclared)
	if msg != "1,19: `printf` already declared." {
		t.Fatalf("got %q", msg)
	}
	mustParse(t, "package main; func f() { var printf = 1 }")
}

func TestScopeTree(t *testing.T) {
	p := mustParse(t, "package main; var g = 1; func f(a: int) { var l = 2; { var m = 3 } }")
	table := p.result.Scopes
	if err := table.Validate(); err != nil {
		t.Fatalf("invalid table: %v", err)
	}

	pkg := table.Scopes.Get(p.result.Package)
	if pkg == nil || pkg.Kind != symbols.ScopePackage {
		t.Fatalf("expected package scope")
	}
	intern := p.arenas.StringsInterner
	if _, ok := table.LookupIn(p.result.Package, intern.Intern("g")); !ok {
		t.Fatalf("g should be declared in the package frame")
	}
	if _, ok := table.LookupIn(p.result.Package, intern.Intern("printf")); !ok {
		t.Fatalf("printf should be visible from the package frame")
	}
	if len(pkg.Children) != 1 {
		t.Fatalf("package frame should have one function child, got %d", len(pkg.Children))
	}
	fn := table.Scopes.Get(pkg.Children[0])
	if fn.Kind != symbols.ScopeFunction {
		t.Fatalf("expected function frame, got %v", fn.Kind)
	}
	if _, ok := fn.NameIndex[intern.Intern("a")]; !ok {
		t.Fatalf("param a should live in the function frame")
	}
	body := table.Scopes.Get(fn.Children[0])
	if _, ok := body.NameIndex[intern.Intern("l")]; !ok {
		t.Fatalf("local l should live in the body block")
	}
	if _, ok := table.LookupIn(body.Children[0], intern.Intern("g")); !ok {
		t.Fatalf("g should resolve from the inner block")
	}
}

func TestCancelledContextStops(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.ga", []byte("package main; var x = 1;"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := ParseFile(ctx, fs, lx, ast.NewBuilder(ast.Hints{}, nil), Options{})
	if res.Ok {
		t.Fatalf("cancelled parse should not succeed")
	}
}
