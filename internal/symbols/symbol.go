package symbols

import (
	"gaia/internal/ast"
	"gaia/internal/source"
	"gaia/internal/types"
)

// SymbolKind classifies a declared entity.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolPackage
	SymbolVariable
	SymbolFunction
	SymbolParam
	SymbolStruct
	SymbolInterface
	SymbolEnum
	SymbolEnumMember
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolPackage:
		return "package"
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolParam:
		return "param"
	case SymbolStruct:
		return "struct"
	case SymbolInterface:
		return "interface"
	case SymbolEnum:
		return "enum"
	case SymbolEnumMember:
		return "enum member"
	default:
		return "invalid"
	}
}

// IsValue reports kinds that can appear as an operand.
func (k SymbolKind) IsValue() bool {
	switch k {
	case SymbolVariable, SymbolFunction, SymbolParam, SymbolEnumMember:
		return true
	}
	return false
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	SymbolFlagBuiltin SymbolFlags = 1 << iota
	SymbolFlagHoisted
)

// Strings returns textual flag labels.
func (f SymbolFlags) Strings() []string {
	var labels []string
	if f&SymbolFlagBuiltin != 0 {
		labels = append(labels, "builtin")
	}
	if f&SymbolFlagHoisted != 0 {
		labels = append(labels, "hoisted")
	}
	return labels
}

// SymbolDecl is the syntax origin of a symbol.
type SymbolDecl struct {
	SourceFile source.FileID
	Stmt       ast.StmtID
	Expr       ast.ExprID
}

// Symbol is a named entity. TypeExpr is the declared type syntax, when any;
// Type is filled by the checker. Functions carry a Signature instead.
type Symbol struct {
	Name      source.StringID
	Kind      SymbolKind
	Scope     ScopeID
	Span      source.Span
	Flags     SymbolFlags
	Decl      SymbolDecl
	TypeExpr  ast.ExprID
	Type      types.TypeID
	Signature *FunctionSignature
}

// Param is one function parameter.
type Param struct {
	Name     source.StringID
	TypeExpr ast.ExprID
	Type     types.TypeID
}

// FunctionSignature is the entity of a function: result plus parameters.
// ResultExpr is NoExprID for void.
type FunctionSignature struct {
	Params     []Param
	ResultExpr ast.ExprID
	Result     types.TypeID
}
