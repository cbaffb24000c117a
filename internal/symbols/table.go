package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"gaia/internal/source"
	"gaia/internal/types"
)

// Hints provide optional capacity suggestions for the arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope and symbol arenas of one compilation.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
}

// NewTable builds a fresh table. A nil interner gets a fresh one.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
}

// Universe creates the empty root frame every package frame hangs off.
func (t *Table) Universe() ScopeID {
	return t.Scopes.New(ScopeUniverse, NoScopeID, ScopeOwner{}, source.Span{})
}

// DeclareBuiltins seeds the frame of top-level declarations with the
// built-in functions:
//
//	printf(format: string): void
//
// Built-ins share that frame with user declarations, so declaring a
// global of the same name conflicts. A nil interner leaves built-in types
// unresolved.
func (t *Table) DeclareBuiltins(scope ScopeID, typesIn *types.Interner) {
	var str, void types.TypeID
	if typesIn != nil {
		str, void = typesIn.Builtins().String, typesIn.Builtins().Void
	}
	t.declare(scope, &Symbol{
		Name:  t.Strings.Intern("printf"),
		Kind:  SymbolFunction,
		Flags: SymbolFlagBuiltin,
		Type:  void,
		Signature: &FunctionSignature{
			Params: []Param{{Name: t.Strings.Intern("format"), Type: str}},
			Result: void,
		},
	})
}

// declare inserts sym into scope without conflict checks.
func (t *Table) declare(scopeID ScopeID, sym *Symbol) SymbolID {
	scope := t.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID
	}
	sym.Scope = scopeID
	id := t.Symbols.New(sym)
	scope.Symbols = append(scope.Symbols, id)
	scope.NameIndex[sym.Name] = id
	return id
}

// LookupIn resolves name starting at scopeID and walking outward.
func (t *Table) LookupIn(scopeID ScopeID, name source.StringID) (SymbolID, bool) {
	for scopeID.IsValid() {
		scope := t.Scopes.Get(scopeID)
		if scope == nil {
			break
		}
		if id, ok := scope.NameIndex[name]; ok {
			return id, true
		}
		scopeID = scope.Parent
	}
	return NoSymbolID, false
}

// NameOf returns the text of a symbol's name.
func (t *Table) NameOf(id SymbolID) string {
	sym := t.Symbols.Get(id)
	if sym == nil {
		return ""
	}
	s, _ := t.Strings.Lookup(sym.Name)
	return s
}
