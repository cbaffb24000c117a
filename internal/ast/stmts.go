package ast

import (
	"gaia/internal/source"
)

// Stmts manages allocation of statements, declarations and members.
type Stmts struct {
	Arena     *Arena[Stmt]
	Packages  *Arena[PackageData]
	Imports   *Arena[ImportData]
	Vars      *Arena[VarDeclData]
	Funcs     *Arena[FuncDeclData]
	TypeDecls *Arena[TypeDeclData]
	Blocks    *Arena[BlockData]
	Assigns   *Arena[AssignData]
	Ifs       *Arena[IfData]
	Loops     *Arena[LoopData]
	Returns   *Arena[ReturnData]
	ExprStmts *Arena[ExprStmtData]
	Members   *Arena[Member]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:     NewArena[Stmt](capHint),
		Packages:  NewArena[PackageData](1),
		Imports:   NewArena[ImportData](small),
		Vars:      NewArena[VarDeclData](capHint),
		Funcs:     NewArena[FuncDeclData](small),
		TypeDecls: NewArena[TypeDeclData](small),
		Blocks:    NewArena[BlockData](capHint),
		Assigns:   NewArena[AssignData](capHint),
		Ifs:       NewArena[IfData](small),
		Loops:     NewArena[LoopData](small),
		Returns:   NewArena[ReturnData](small),
		ExprStmts: NewArena[ExprStmtData](small),
		Members:   NewArena[Member](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the statement with the given ID, or nil.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kinds ...StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil {
		return 0, false
	}
	for _, k := range kinds {
		if st.Kind == k {
			return uint32(st.Payload), true
		}
	}
	return 0, false
}

func (s *Stmts) NewPackage(span source.Span, name source.StringID, nameSpan source.Span) StmtID {
	return s.new(StmtPackage, span, s.Packages.Allocate(PackageData{Name: name, NameSpan: nameSpan}))
}

func (s *Stmts) Package(id StmtID) (*PackageData, bool) {
	p, ok := s.payload(id, StmtPackage)
	if !ok {
		return nil, false
	}
	return s.Packages.Get(p), true
}

func (s *Stmts) NewImport(span source.Span, path source.StringID, pathSpan source.Span) StmtID {
	return s.new(StmtImport, span, s.Imports.Allocate(ImportData{Path: path, PathSpan: pathSpan}))
}

func (s *Stmts) Import(id StmtID) (*ImportData, bool) {
	p, ok := s.payload(id, StmtImport)
	if !ok {
		return nil, false
	}
	return s.Imports.Get(p), true
}

func (s *Stmts) NewVarDecl(span source.Span, data VarDeclData) StmtID {
	return s.new(StmtVarDecl, span, s.Vars.Allocate(data))
}

func (s *Stmts) VarDecl(id StmtID) (*VarDeclData, bool) {
	p, ok := s.payload(id, StmtVarDecl)
	if !ok {
		return nil, false
	}
	return s.Vars.Get(p), true
}

func (s *Stmts) NewFuncDecl(span source.Span, data FuncDeclData) StmtID {
	return s.new(StmtFuncDecl, span, s.Funcs.Allocate(data))
}

func (s *Stmts) FuncDecl(id StmtID) (*FuncDeclData, bool) {
	p, ok := s.payload(id, StmtFuncDecl)
	if !ok {
		return nil, false
	}
	return s.Funcs.Get(p), true
}

// NewTypeDecl creates a struct, interface or enum declaration.
func (s *Stmts) NewTypeDecl(kind StmtKind, span source.Span, data TypeDeclData) StmtID {
	switch kind {
	case StmtStructDecl, StmtInterfaceDecl, StmtEnumDecl:
	default:
		panic("ast: NewTypeDecl with kind " + kind.String())
	}
	return s.new(kind, span, s.TypeDecls.Allocate(data))
}

func (s *Stmts) TypeDecl(id StmtID) (*TypeDeclData, bool) {
	p, ok := s.payload(id, StmtStructDecl, StmtInterfaceDecl, StmtEnumDecl)
	if !ok {
		return nil, false
	}
	return s.TypeDecls.Get(p), true
}

func (s *Stmts) NewMember(m Member) MemberID {
	return MemberID(s.Members.Allocate(m))
}

func (s *Stmts) Member(id MemberID) *Member {
	return s.Members.Get(uint32(id))
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, s.Blocks.Allocate(BlockData{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) (*BlockData, bool) {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}

// NewAssign creates StmtAssign or StmtElementAssign depending on the target.
func (s *Stmts) NewAssign(kind StmtKind, span source.Span, target, value ExprID) StmtID {
	if kind != StmtAssign && kind != StmtElementAssign {
		panic("ast: NewAssign with kind " + kind.String())
	}
	return s.new(kind, span, s.Assigns.Allocate(AssignData{Target: target, Value: value}))
}

func (s *Stmts) Assign(id StmtID) (*AssignData, bool) {
	p, ok := s.payload(id, StmtAssign, StmtElementAssign)
	if !ok {
		return nil, false
	}
	return s.Assigns.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	return s.new(StmtIf, span, s.Ifs.Allocate(IfData{Cond: cond, Then: then, Else: els}))
}

func (s *Stmts) If(id StmtID) (*IfData, bool) {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

// NewLoop creates StmtWhile or StmtDoWhile.
func (s *Stmts) NewLoop(kind StmtKind, span source.Span, cond ExprID, body StmtID) StmtID {
	if kind != StmtWhile && kind != StmtDoWhile {
		panic("ast: NewLoop with kind " + kind.String())
	}
	return s.new(kind, span, s.Loops.Allocate(LoopData{Cond: cond, Body: body}))
}

func (s *Stmts) Loop(id StmtID) (*LoopData, bool) {
	p, ok := s.payload(id, StmtWhile, StmtDoWhile)
	if !ok {
		return nil, false
	}
	return s.Loops.Get(p), true
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, 0)
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	return s.new(StmtReturn, span, s.Returns.Allocate(ReturnData{Value: value}))
}

func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	p, ok := s.payload(id, StmtReturn)
	if !ok {
		return nil, false
	}
	return s.Returns.Get(p), true
}

func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	return s.new(StmtExpr, span, s.ExprStmts.Allocate(ExprStmtData{Expr: expr}))
}

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.ExprStmts.Get(p), true
}
