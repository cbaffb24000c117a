package ast

import (
	"testing"

	"gaia/internal/source"
)

func TestArenaOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("id=%d len=%d", id, a.Len())
	}
}

func TestExprPayloadsAreKindChecked(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	one := b.Exprs.NewLiteral(ExprIntLit, source.Span{Start: 0, End: 1}, b.StringsInterner.Intern("1"))
	two := b.Exprs.NewLiteral(ExprIntLit, source.Span{Start: 4, End: 5}, b.StringsInterner.Intern("2"))
	sum := b.Exprs.NewBinary(source.Span{Start: 0, End: 5}, ExprBinaryAdd, one, two)

	bin, ok := b.Exprs.Binary(sum)
	if !ok || bin.Left != one || bin.Right != two || bin.Op.String() != "+" {
		t.Fatalf("Binary = %+v, %v", bin, ok)
	}
	if _, ok := b.Exprs.Binary(one); ok {
		t.Fatal("literal must not read as binary")
	}
	lit, ok := b.Exprs.Literal(two)
	if !ok || b.Name(lit.Value) != "2" {
		t.Fatalf("Literal = %+v", lit)
	}
	if _, ok := b.Exprs.Ident(NoExprID); ok {
		t.Fatal("NoExprID must not resolve")
	}
}

func TestTypeExprChain(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	in := b.Exprs.NewKeywordType(source.Span{}, TypeKwInt)
	sized := b.Exprs.NewSizedArrayType(source.Span{}, in, b.StringsInterner.Intern("3"))
	arr := b.Exprs.NewArrayType(source.Span{}, sized)

	outer, ok := b.Exprs.ArrayType(arr)
	if !ok || outer.Elem != sized {
		t.Fatal("ArrayType payload")
	}
	inner, ok := b.Exprs.SizedArrayType(outer.Elem)
	if !ok || b.Name(inner.Size) != "3" {
		t.Fatal("SizedArrayType payload")
	}
	if !b.Exprs.Get(arr).Kind.IsType() || b.Exprs.Get(arr).Kind.IsLiteral() {
		t.Fatal("kind predicates")
	}
}

func TestFileImportsPrefix(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	f := b.NewFile(source.Span{})
	b.PushStmt(f, b.Stmts.NewImport(source.Span{}, b.StringsInterner.Intern("a"), source.Span{}))
	b.PushStmt(f, b.Stmts.NewImport(source.Span{}, b.StringsInterner.Intern("b"), source.Span{}))
	b.PushStmt(f, b.Stmts.NewVarDecl(source.Span{}, VarDeclData{Name: b.StringsInterner.Intern("x")}))

	if got := len(b.Imports(f)); got != 2 {
		t.Fatalf("Imports = %d", got)
	}
	if len(b.Files.Get(f).Stmts) != 3 {
		t.Fatal("Stmts")
	}
}

func TestStmtKindGuards(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	loop := b.Stmts.NewLoop(StmtDoWhile, source.Span{}, NoExprID, b.Stmts.NewBlock(source.Span{}, nil))
	if _, ok := b.Stmts.Loop(loop); !ok {
		t.Fatal("do-while must read as loop")
	}
	if _, ok := b.Stmts.If(loop); ok {
		t.Fatal("loop must not read as if")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("NewAssign with wrong kind must panic")
		}
	}()
	b.Stmts.NewAssign(StmtBlock, source.Span{}, NoExprID, NoExprID)
}
