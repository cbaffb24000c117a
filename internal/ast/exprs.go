package ast

import (
	"gaia/internal/source"
)

// Exprs manages allocation of expressions and their payloads.
type Exprs struct {
	Arena      *Arena[Expr]
	Idents     *Arena[ExprIdentData]
	Literals   *Arena[ExprLiteralData]
	Unaries    *Arena[ExprUnaryData]
	Binaries   *Arena[ExprBinaryData]
	Calls      *Arena[ExprCallData]
	Elements   *Arena[ExprElementAccessData]
	Arrays     *Arena[ExprArrayLiteralData]
	ArrayTypes *Arena[ExprArrayTypeData]
	SizedTypes *Arena[ExprSizedArrayTypeData]
	KwTypes    *Arena[ExprKeywordTypeData]
	Params     *Arena[ExprParamData]
}

// NewExprs creates per-kind arenas preallocated with capHint (1<<8 when 0).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:      NewArena[Expr](capHint),
		Idents:     NewArena[ExprIdentData](capHint),
		Literals:   NewArena[ExprLiteralData](capHint),
		Unaries:    NewArena[ExprUnaryData](small),
		Binaries:   NewArena[ExprBinaryData](capHint),
		Calls:      NewArena[ExprCallData](small),
		Elements:   NewArena[ExprElementAccessData](small),
		Arrays:     NewArena[ExprArrayLiteralData](small),
		ArrayTypes: NewArena[ExprArrayTypeData](small),
		SizedTypes: NewArena[ExprSizedArrayTypeData](small),
		KwTypes:    NewArena[ExprKeywordTypeData](small),
		Params:     NewArena[ExprParamData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID, or nil.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != kind {
		return 0, false
	}
	return uint32(expr.Payload), true
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

// NewLiteral creates a literal node; kind must satisfy IsLiteral.
func (e *Exprs) NewLiteral(kind ExprKind, span source.Span, value source.StringID) ExprID {
	if !kind.IsLiteral() {
		panic("ast: NewLiteral with non-literal kind " + kind.String())
	}
	return e.new(kind, span, e.Literals.Allocate(ExprLiteralData{Value: value}))
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || !expr.Kind.IsLiteral() {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewElementAccess(span source.Span, target, index ExprID) ExprID {
	return e.new(ExprElementAccess, span, e.Elements.Allocate(ExprElementAccessData{Target: target, Index: index}))
}

func (e *Exprs) ElementAccess(id ExprID) (*ExprElementAccessData, bool) {
	p, ok := e.payload(id, ExprElementAccess)
	if !ok {
		return nil, false
	}
	return e.Elements.Get(p), true
}

func (e *Exprs) NewArrayLiteral(span source.Span, elems []ExprID) ExprID {
	return e.new(ExprArrayLiteral, span, e.Arrays.Allocate(ExprArrayLiteralData{Elems: elems}))
}

func (e *Exprs) ArrayLiteral(id ExprID) (*ExprArrayLiteralData, bool) {
	p, ok := e.payload(id, ExprArrayLiteral)
	if !ok {
		return nil, false
	}
	return e.Arrays.Get(p), true
}

func (e *Exprs) NewArrayType(span source.Span, elem ExprID) ExprID {
	return e.new(ExprArrayType, span, e.ArrayTypes.Allocate(ExprArrayTypeData{Elem: elem}))
}

func (e *Exprs) ArrayType(id ExprID) (*ExprArrayTypeData, bool) {
	p, ok := e.payload(id, ExprArrayType)
	if !ok {
		return nil, false
	}
	return e.ArrayTypes.Get(p), true
}

func (e *Exprs) NewSizedArrayType(span source.Span, elem ExprID, size source.StringID) ExprID {
	return e.new(ExprSizedArrayType, span, e.SizedTypes.Allocate(ExprSizedArrayTypeData{Elem: elem, Size: size}))
}

func (e *Exprs) SizedArrayType(id ExprID) (*ExprSizedArrayTypeData, bool) {
	p, ok := e.payload(id, ExprSizedArrayType)
	if !ok {
		return nil, false
	}
	return e.SizedTypes.Get(p), true
}

func (e *Exprs) NewKeywordType(span source.Span, kw TypeKeyword) ExprID {
	return e.new(ExprKeywordType, span, e.KwTypes.Allocate(ExprKeywordTypeData{Keyword: kw}))
}

func (e *Exprs) KeywordType(id ExprID) (*ExprKeywordTypeData, bool) {
	p, ok := e.payload(id, ExprKeywordType)
	if !ok {
		return nil, false
	}
	return e.KwTypes.Get(p), true
}

func (e *Exprs) NewParam(span source.Span, name source.StringID, nameSpan source.Span, typ ExprID) ExprID {
	return e.new(ExprParam, span, e.Params.Allocate(ExprParamData{Name: name, NameSpan: nameSpan, Type: typ}))
}

func (e *Exprs) Param(id ExprID) (*ExprParamData, bool) {
	p, ok := e.payload(id, ExprParam)
	if !ok {
		return nil, false
	}
	return e.Params.Get(p), true
}
