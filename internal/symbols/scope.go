package symbols

import (
	"gaia/internal/ast"
	"gaia/internal/source"
)

// ScopeKind enumerates frame categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeUniverse           // пустой корень, родитель каждого package-фрейма
	ScopePackage            // top-level declarations and built-ins
	ScopeFunction           // parameters of one function
	ScopeBlock              // { ... }
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeUniverse:
		return "universe"
	case ScopePackage:
		return "package"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// ScopeOwner points at the syntax that opened the frame.
type ScopeOwner struct {
	SourceFile source.FileID
	ASTFile    ast.FileID
	Stmt       ast.StmtID
}

// Scope is one frame of the environment chain. A name maps to at most one
// symbol per frame; redeclaration is rejected, shadowing happens only across frames.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ScopeOwner
	Span      source.Span
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID // порядок объявления
	Children  []ScopeID
}
