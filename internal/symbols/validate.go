package symbols

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Validate checks structural invariants of the arenas: parent/child backlinks,
// name index coverage and symbol ownership. All problems are joined.
func (t *Table) Validate() error {
	var errs []error

	for idx := 1; idx < len(t.Scopes.data); idx++ {
		scopeID := ScopeID(mustIndex(idx))
		scope := &t.Scopes.data[idx]
		if scope.Kind == ScopeInvalid {
			errs = append(errs, fmt.Errorf("scope %d has invalid kind", scopeID))
		}
		if scope.Parent.IsValid() {
			parent := t.Scopes.Get(scope.Parent)
			switch {
			case parent == nil || scope.Parent == scopeID:
				errs = append(errs, fmt.Errorf("scope %d has invalid parent %d", scopeID, scope.Parent))
			case !containsScope(parent.Children, scopeID):
				errs = append(errs, fmt.Errorf("scope %d parent %d missing backlink", scopeID, scope.Parent))
			}
		}
		for _, child := range scope.Children {
			if c := t.Scopes.Get(child); c == nil || c.Parent != scopeID {
				errs = append(errs, fmt.Errorf("scope %d child %d missing parent backlink", scopeID, child))
			}
		}
		if len(scope.NameIndex) != len(scope.Symbols) {
			errs = append(errs, fmt.Errorf("scope %d indexes %d names for %d symbols", scopeID, len(scope.NameIndex), len(scope.Symbols)))
		}
		for _, id := range scope.Symbols {
			sym := t.Symbols.Get(id)
			if sym == nil {
				errs = append(errs, fmt.Errorf("scope %d references missing symbol %d", scopeID, id))
				continue
			}
			if scope.NameIndex[sym.Name] != id {
				errs = append(errs, fmt.Errorf("scope %d symbol %d missing in name index", scopeID, id))
			}
		}
	}

	for idx := 1; idx < len(t.Symbols.data); idx++ {
		symbolID := SymbolID(mustIndex(idx))
		sym := t.Symbols.data[idx]
		scope := t.Scopes.Get(sym.Scope)
		if scope == nil {
			errs = append(errs, fmt.Errorf("symbol %d has invalid scope %d", symbolID, sym.Scope))
			continue
		}
		found := false
		for _, id := range scope.Symbols {
			if id == symbolID {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("symbol %d is missing from scope %d list", symbolID, sym.Scope))
		}
	}

	return errors.Join(errs...)
}

func containsScope(ids []ScopeID, id ScopeID) bool {
	for _, c := range ids {
		if c == id {
			return true
		}
	}
	return false
}

func mustIndex(idx int) uint32 {
	v, err := safecast.Conv[uint32](idx)
	if err != nil {
		panic(fmt.Errorf("index %d overflow: %w", idx, err))
	}
	return v
}
