package symbols

// ScopeID identifies a scope frame in the table arena.
type ScopeID uint32

// NoScopeID marks the absence of a scope, e.g. the parent of a root frame.
const NoScopeID ScopeID = 0

func (id ScopeID) IsValid() bool { return id != NoScopeID }

// SymbolID identifies a symbol in the table arena.
type SymbolID uint32

// NoSymbolID marks a failed lookup or declaration.
const NoSymbolID SymbolID = 0

func (id SymbolID) IsValid() bool { return id != NoSymbolID }
