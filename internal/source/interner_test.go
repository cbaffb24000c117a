package source

import "testing"

func TestInternerBasic(t *testing.T) {
	in := NewInterner()

	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID lookup = %q,%v", s, ok)
	}
	a := in.Intern("answer")
	if a == NoStringID {
		t.Fatal("non-empty string got NoStringID")
	}
	if in.Intern("answer") != a {
		t.Error("same text must return same id")
	}
	b := in.Intern("other")
	if a == b {
		t.Error("different text must return different ids")
	}
	if in.Len() != 3 {
		t.Errorf("Len = %d, want 3", in.Len())
	}
	if in.Has(StringID(42)) {
		t.Error("Has(42) should be false")
	}
}

func TestInternerNFC(t *testing.T) {
	in := NewInterner()

	composed := in.Intern("caf\u00e9")
	decomposed := in.Intern("cafe\u0301")
	if composed != decomposed {
		t.Fatalf("NFC forms differ: %d vs %d", composed, decomposed)
	}
	if got := in.MustLookup(decomposed); got != "caf\u00e9" {
		t.Errorf("stored text = %q, want composed form", got)
	}

	// сначала декомпозированная форма, потом составная
	in2 := NewInterner()
	d := in2.Intern("cafe\u0301")
	c := in2.Intern("caf\u00e9")
	if c != d {
		t.Errorf("reverse order: %d vs %d", d, c)
	}
}

func TestInternerStringCopy(t *testing.T) {
	in := NewInterner()
	buf := []byte("volatile")
	id := in.Intern(string(buf))
	buf[0] = 'X'
	if got := in.MustLookup(id); got != "volatile" {
		t.Errorf("interned text mutated: %q", got)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewInterner().MustLookup(StringID(7))
}

func TestInternerSnapshot(t *testing.T) {
	in := NewInterner()
	in.Intern("a")
	in.Intern("b")
	snap := in.Snapshot()
	snap[1] = "mutated"
	if in.MustLookup(1) != "a" {
		t.Error("Snapshot must be a copy")
	}
}
