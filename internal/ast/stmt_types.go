package ast

import (
	"gaia/internal/source"
)

type StmtKind uint8

const (
	StmtPackage StmtKind = iota
	StmtImport
	StmtVarDecl
	StmtFuncDecl
	StmtStructDecl
	StmtInterfaceDecl
	StmtEnumDecl
	StmtBlock
	StmtAssign
	StmtElementAssign
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtBreak
	StmtReturn
	StmtExpr
)

var stmtKindNames = [...]string{
	StmtPackage:       "Package",
	StmtImport:        "Import",
	StmtVarDecl:       "VarDecl",
	StmtFuncDecl:      "FuncDecl",
	StmtStructDecl:    "StructDecl",
	StmtInterfaceDecl: "InterfaceDecl",
	StmtEnumDecl:      "EnumDecl",
	StmtBlock:         "Block",
	StmtAssign:        "Assign",
	StmtElementAssign: "ElementAssign",
	StmtIf:            "If",
	StmtWhile:         "While",
	StmtDoWhile:       "DoWhile",
	StmtBreak:         "Break",
	StmtReturn:        "Return",
	StmtExpr:          "ExprStmt",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Stmt(?)"
}

// IsDecl reports top-level declaration kinds.
func (k StmtKind) IsDecl() bool {
	return k >= StmtVarDecl && k <= StmtEnumDecl
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type PackageData struct {
	Name     source.StringID
	NameSpan source.Span
}

// ImportData.Path is the specifier without quotes.
type ImportData struct {
	Path     source.StringID
	PathSpan source.Span
}

// VarDeclData: Type and Value are each optional.
type VarDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     ExprID
	Value    ExprID
}

// FuncDeclData.Result is NoExprID for void functions.
type FuncDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Params   []ExprID
	Result   ExprID
	Body     StmtID
}

// TypeDeclData serves struct, interface and enum declarations.
type TypeDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Members  []MemberID
}

type BlockData struct {
	Stmts []StmtID
}

// AssignData serves `x = e` (Target is an Ident) and `x[i] = e`
// (Target is an ElementAccess).
type AssignData struct {
	Target ExprID
	Value  ExprID
}

// IfData.Else is a Block, another If, or NoStmtID.
type IfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// LoopData serves while and do-while.
type LoopData struct {
	Cond ExprID
	Body StmtID
}

type ReturnData struct {
	Value ExprID
}

type ExprStmtData struct {
	Expr ExprID
}

// MemberKind classifies members of struct, interface and enum declarations.
type MemberKind uint8

const (
	MemberProperty MemberKind = iota // name: T
	MemberMethod                     // name(params): T
	MemberEnum                       // Name [= int]
)

func (k MemberKind) String() string {
	switch k {
	case MemberProperty:
		return "PropertySignature"
	case MemberMethod:
		return "MethodSignature"
	case MemberEnum:
		return "EnumMember"
	}
	return "Member(?)"
}

// Member is a signature inside a type declaration.
// Type is the property type or the method result (NoExprID = void).
// Value is the optional enum initializer.
type Member struct {
	Kind     MemberKind
	Span     source.Span
	Name     source.StringID
	NameSpan source.Span
	Type     ExprID
	Params   []ExprID
	Value    ExprID
}
