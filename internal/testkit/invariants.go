// Package testkit holds structural checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"gaia/internal/ast"
	"gaia/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span is non-empty and within file content bounds
// 2) every statement and expression span lies inside its parent span
// 3) every span points at the file being checked
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}
	if f.Span.End <= f.Span.Start {
		return fmt.Errorf("file span is empty: %v", f.Span)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}
	w := spanWalker{b: b, file: sf.ID}
	if f.Package.IsValid() {
		if err := w.stmt(f.Package, f.Span); err != nil {
			return err
		}
	}
	for _, st := range f.Stmts {
		if err := w.stmt(st, f.Span); err != nil {
			return err
		}
	}
	return nil
}

type spanWalker struct {
	b    *ast.Builder
	file source.FileID
}

func (w spanWalker) within(kind string, sp, parent source.Span) error {
	if sp.File != w.file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", kind, sp.File, w.file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s span is inverted: %v", kind, sp)
	}
	if !parent.Contains(sp) {
		return fmt.Errorf("%s span %v is outside parent span %v", kind, sp, parent)
	}
	return nil
}

func (w spanWalker) stmt(id ast.StmtID, parent source.Span) error {
	if !id.IsValid() {
		return nil
	}
	st := w.b.Stmts.Get(id)
	if st == nil {
		return fmt.Errorf("nil stmt for id=%d", id)
	}
	if err := w.within(st.Kind.String(), st.Span, parent); err != nil {
		return err
	}
	sp := st.Span
	s := w.b.Stmts
	switch st.Kind {
	case ast.StmtVarDecl:
		d, _ := s.VarDecl(id)
		return w.exprs(sp, d.Type, d.Value)
	case ast.StmtFuncDecl:
		d, _ := s.FuncDecl(id)
		if err := w.exprs(sp, append(append([]ast.ExprID(nil), d.Params...), d.Result)...); err != nil {
			return err
		}
		return w.stmt(d.Body, sp)
	case ast.StmtStructDecl, ast.StmtInterfaceDecl, ast.StmtEnumDecl:
		d, _ := s.TypeDecl(id)
		for _, mid := range d.Members {
			m := s.Member(mid)
			if err := w.within("member", m.Span, sp); err != nil {
				return err
			}
			if err := w.exprs(m.Span, append(append([]ast.ExprID(nil), m.Params...), m.Type, m.Value)...); err != nil {
				return err
			}
		}
	case ast.StmtBlock:
		d, _ := s.Block(id)
		for _, c := range d.Stmts {
			if err := w.stmt(c, sp); err != nil {
				return err
			}
		}
	case ast.StmtAssign, ast.StmtElementAssign:
		d, _ := s.Assign(id)
		return w.exprs(sp, d.Target, d.Value)
	case ast.StmtIf:
		d, _ := s.If(id)
		if err := w.exprs(sp, d.Cond); err != nil {
			return err
		}
		if err := w.stmt(d.Then, sp); err != nil {
			return err
		}
		return w.stmt(d.Else, sp)
	case ast.StmtWhile, ast.StmtDoWhile:
		d, _ := s.Loop(id)
		if err := w.exprs(sp, d.Cond); err != nil {
			return err
		}
		return w.stmt(d.Body, sp)
	case ast.StmtReturn:
		d, _ := s.Return(id)
		return w.exprs(sp, d.Value)
	case ast.StmtExpr:
		d, _ := s.ExprStmt(id)
		return w.exprs(sp, d.Expr)
	}
	return nil
}

func (w spanWalker) exprs(parent source.Span, ids ...ast.ExprID) error {
	for _, id := range ids {
		if err := w.expr(id, parent); err != nil {
			return err
		}
	}
	return nil
}

func (w spanWalker) expr(id ast.ExprID, parent source.Span) error {
	if !id.IsValid() {
		return nil
	}
	e := w.b.Exprs.Get(id)
	if e == nil {
		return fmt.Errorf("nil expr for id=%d", id)
	}
	if err := w.within(e.Kind.String(), e.Span, parent); err != nil {
		return err
	}
	sp := e.Span
	x := w.b.Exprs
	switch e.Kind {
	case ast.ExprUnary:
		d, _ := x.Unary(id)
		return w.expr(d.Operand, sp)
	case ast.ExprBinary:
		d, _ := x.Binary(id)
		return w.exprs(sp, d.Left, d.Right)
	case ast.ExprCall:
		d, _ := x.Call(id)
		return w.exprs(sp, append([]ast.ExprID{d.Callee}, d.Args...)...)
	case ast.ExprElementAccess:
		d, _ := x.ElementAccess(id)
		return w.exprs(sp, d.Target, d.Index)
	case ast.ExprArrayLiteral:
		d, _ := x.ArrayLiteral(id)
		return w.exprs(sp, d.Elems...)
	case ast.ExprArrayType:
		d, _ := x.ArrayType(id)
		return w.expr(d.Elem, sp)
	case ast.ExprSizedArrayType:
		d, _ := x.SizedArrayType(id)
		return w.expr(d.Elem, sp)
	case ast.ExprParam:
		d, _ := x.Param(id)
		return w.expr(d.Type, sp)
	}
	return nil
}
