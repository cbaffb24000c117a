package lexer

import (
	"testing"

	"gaia/internal/source"
)

func TestCursorBasics(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("c.ga", []byte("ab")))
	c := NewCursor(f)

	if c.Peek() != 'a' {
		t.Fatalf("Peek = %q", c.Peek())
	}
	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	m := c.Mark()
	if !c.Eat('a') || c.Eat('a') {
		t.Fatal("Eat mismatch")
	}
	if c.Bump() != 'b' || !c.EOF() {
		t.Fatal("expected EOF after two bytes")
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
	if _, _, ok := c.Peek2(); ok {
		t.Fatal("Peek2 at EOF")
	}
	if sp := c.SpanFrom(m); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Off != 0 {
		t.Fatalf("Reset: Off = %d", c.Off)
	}
}
