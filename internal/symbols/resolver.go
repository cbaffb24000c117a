package symbols

import (
	"gaia/internal/source"
)

// Resolver keeps the stack of active frames. Entering pushes a new frame whose
// parent is the current one; leaving pops it.
type Resolver struct {
	table *Table
	stack []ScopeID
}

// NewResolver starts with root as the current frame. An invalid root leaves
// the stack empty until the first Enter.
func NewResolver(table *Table, root ScopeID) *Resolver {
	r := &Resolver{
		table: table,
		stack: make([]ScopeID, 0, 8),
	}
	if root.IsValid() {
		r.stack = append(r.stack, root)
	}
	return r
}

// Table returns the underlying table.
func (r *Resolver) Table() *Table { return r.table }

// CurrentScope returns the innermost active frame.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many frames are active.
func (r *Resolver) Depth() int { return len(r.stack) }

// Enter creates a child frame of the current one and makes it current.
func (r *Resolver) Enter(kind ScopeKind, owner ScopeOwner, span source.Span) ScopeID {
	scope := r.table.Scopes.New(kind, r.CurrentScope(), owner, span)
	r.stack = append(r.stack, scope)
	return scope
}

// Leave pops the current frame. expected guards against unbalanced
// Enter/Leave pairs and panics on mismatch.
func (r *Resolver) Leave(expected ScopeID) {
	if len(r.stack) == 0 {
		panic("symbols: Leave on empty scope stack")
	}
	top := r.stack[len(r.stack)-1]
	if expected.IsValid() && top != expected {
		panic("symbols: unbalanced scope Leave")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Declare inserts sym into the current frame. If the name is already bound
// in that frame nothing is inserted and the existing symbol is returned with
// ok == false. Bindings in outer frames are shadowed, not conflicts.
func (r *Resolver) Declare(sym Symbol) (id SymbolID, ok bool) {
	scopeID := r.CurrentScope()
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, false
	}
	if prev, exists := scope.NameIndex[sym.Name]; exists {
		return prev, false
	}
	return r.table.declare(scopeID, &sym), true
}

// Lookup walks from the current frame outward.
func (r *Resolver) Lookup(name source.StringID) (SymbolID, bool) {
	return r.table.LookupIn(r.CurrentScope(), name)
}

// LookupLocal searches the current frame only.
func (r *Resolver) LookupLocal(name source.StringID) (SymbolID, bool) {
	scope := r.table.Scopes.Get(r.CurrentScope())
	if scope == nil {
		return NoSymbolID, false
	}
	id, ok := scope.NameIndex[name]
	return id, ok
}

// Symbol is a shortcut for Table.Symbols.Get.
func (r *Resolver) Symbol(id SymbolID) *Symbol {
	return r.table.Symbols.Get(id)
}
