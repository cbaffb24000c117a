package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gaia/internal/diag"
	"gaia/internal/token"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const goodProgram = `package demo
func add(a: int, b: int): int { return a + b }
var total = add(1, 2)
`

func TestTokenizeStopsAtFirstError(t *testing.T) {
	res := TokenizeSource("t.ga", []byte("package p\nvar s = \"open"), 4)
	if res.Err() == nil {
		t.Fatal("expected scan error")
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind == token.EOF {
		t.Fatal("stream must stop at the failing token")
	}

	ok := TokenizeSource("t.ga", []byte("package p"), 4)
	if ok.Err() != nil || ok.Tokens[len(ok.Tokens)-1].Kind != token.EOF {
		t.Fatalf("unexpected result: %v", ok.Err())
	}
}

func TestCheckSourceOk(t *testing.T) {
	res, err := CheckSource(context.Background(), "good.ga", []byte(goodProgram), Options{Strict: true, Timings: true})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok() || res.Err() != nil {
		t.Fatalf("expected success, got %v", res.Err())
	}
	if !res.Sema.Ok || res.Builder == nil {
		t.Fatal("sema result missing")
	}
	if res.Timing == nil || len(res.Timing.Phases) != 2 {
		t.Fatalf("expected parse and check timings, got %+v", res.Timing)
	}
}

func TestCheckSourceReportsFirstError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{"parse", "package p\nvar x = @", Options{}, "2,9: Unexpected token `@`."},
		{"check", "package p\nvar x: int = true", Options{}, "2,14: Type mismatch, expected int but got bool."},
		{"strict body", "package p\nfunc f(): int { return true }", Options{Strict: true}, "2,24: Return type mismatch, expected int but got bool."},
		{"eager", "package p\nvar x = y", Options{Eager: true}, "2,9: `y` undeclared."},
		{"comment at eof", "package p\nvar y: int = z\n/* never closed", Options{}, "3,1: Unterminated block comment."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CheckSource(context.Background(), "bad.ga", []byte(tt.src), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			got := res.Err()
			if got == nil || got.Error() != tt.want {
				t.Fatalf("got %v, want %q", got, tt.want)
			}
			if !IsCompileError(got) {
				t.Fatal("expected *diag.Error")
			}
			if res.Bag.Len() != 1 {
				t.Fatalf("fail-fast must keep one diagnostic, got %d", res.Bag.Len())
			}
		})
	}
}

func TestShallowModeSkipsBodies(t *testing.T) {
	src := "package p\nfunc f(): int { return true }"
	res, err := CheckSource(context.Background(), "s.ga", []byte(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Ok() {
		t.Fatalf("shallow check must accept, got %v", res.Err())
	}
}

func TestCheckSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckSource(ctx, "c.ga", []byte(goodProgram), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckDirDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.ga", goodProgram)
	writeSource(t, dir, "a.ga", "package a\nvar x: int = \"s\"\n")
	writeSource(t, dir, "sub/c.ga", "package c\nvar y = 1\n")
	writeSource(t, dir, ".hidden/d.ga", "garbage")
	writeSource(t, dir, "notes.txt", "ignored")

	var mu sync.Mutex
	var events []PhaseEvent
	opts := Options{Jobs: 2, Observer: func(ev PhaseEvent) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}}
	_, results, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 units, got %d", len(results))
	}
	wantSuffix := []string{"a.ga", "b.ga", "sub/c.ga"}
	for i, r := range results {
		if !strings.HasSuffix(filepath.ToSlash(r.Path), wantSuffix[i]) {
			t.Fatalf("result %d is %s, want suffix %s", i, r.Path, wantSuffix[i])
		}
	}
	if results[0].Ok() || !results[1].Ok() || !results[2].Ok() {
		t.Fatal("unexpected outcomes")
	}
	var de *diag.Error
	if !errors.As(results[0].Err(), &de) || de.Pos.Line != 2 {
		t.Fatalf("unexpected error %v", results[0].Err())
	}
	// по два события (start/end) на parse и check для каждого файла
	if len(events) != 12 {
		t.Fatalf("expected 12 phase events, got %d", len(events))
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := CheckDir(context.Background(), t.TempDir(), Options{})
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results, got %d, %v", len(results), err)
	}
}

func TestJobs(t *testing.T) {
	if Jobs(8, 3) != 3 || Jobs(2, 10) != 2 || Jobs(0, 0) != 1 {
		t.Fatal("unexpected job count")
	}
}
