package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("main.ga", []byte("package a;"), 0)
	id2 := fs.Add("main.ga", []byte("package b;"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("main.ga")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "package a;" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.ga", []byte("ab\ncd\n\nxyz"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}},
		{10, LineCol{4, 4}}, // EOF
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.ga", []byte("var x: int = 1;"))
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 5})
	if start != (LineCol{1, 5}) || end != (LineCol{1, 6}) {
		t.Errorf("got %+v-%+v", start, end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("lines.ga", []byte("first\nsecond\n\nlast")))

	want := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: "last", 5: ""}
	for n, line := range want {
		if got := f.GetLine(n); got != line {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, line)
		}
	}
}

func TestCRLFNormalization(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed {
		t.Fatal("expected change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}
	if _, changed := normalizeCRLF([]byte("plain\n")); changed {
		t.Error("unexpected change for LF-only input")
	}
}

func TestLoadStripsBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.ga")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("package main;\r\nvar x = 1;\r\n")...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "package main;\nvar x = 1;\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("LineIdx = %v", f.LineIdx)
	}
	if got := f.FormatPath("relative", dir); got != "bom.ga" {
		t.Errorf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "bom.ga" {
		t.Errorf("basename = %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.ga")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
	if !a.Cover(b).Contains(a) || a.Contains(b) {
		t.Error("Contains mismatch")
	}
	if e := a.AtEnd(); !e.Empty() || e.Start != 8 {
		t.Errorf("AtEnd = %v", e)
	}
}
