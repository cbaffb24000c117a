package source

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// StringID is a handle for an interned identifier.
type StringID uint32

// NoStringID is the empty string.
const NoStringID StringID = 0

// Interner maps identifier text to stable ids.
// Text is normalized to NFC first, so "é" spelled as one code point or as
// e + combining acute share an id.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner returns an interner holding only the empty string.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the id for s, allocating one on first sight.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	key := s
	if !norm.NFC.IsNormalString(s) {
		key = norm.NFC.String(s)
		if id, ok := i.index[key]; ok {
			i.index[s] = id
			return id
		}
	}

	raw, err := safecast.Conv[uint32](len(i.byID))
	if err != nil {
		panic(fmt.Errorf("interner overflow: %w", err))
	}
	id := StringID(raw)
	// своя копия, чтобы не держать буфер исходника
	key = string([]byte(key))
	i.byID = append(i.byID, key)
	i.index[key] = id
	if key != s {
		i.index[s] = id
	}
	return id
}

// Lookup returns the normalized text for id.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup is Lookup that panics on an unknown id.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("source: invalid StringID %d", id))
	}
	return s
}

// Has reports whether id was issued by this interner.
func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len counts interned strings including the empty one.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all interned strings ordered by id.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
