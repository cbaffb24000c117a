package trace

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"off": LevelOff, "PHASE": LevelPhase, "detail": LevelDetail} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	if LevelPhase.Allows(ScopeFile) {
		t.Fatal("phase level must drop file events")
	}
	if !LevelDetail.Allows(ScopeFile) || !LevelPhase.Allows(ScopeDriver) {
		t.Fatal("unexpected filtering")
	}
	if LevelOff.Allows(ScopeDriver) {
		t.Fatal("off must drop everything")
	}
}

func TestStreamSpansNest(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStream(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, outer := Start(ctx, ScopeDriver, "check")
	_, inner := Start(ctx, ScopeFile, "main.ga")
	inner.End("ok")
	outer.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "  \u2192 main.ga") {
		t.Fatalf("nested span not indented: %q", lines[1])
	}
	if !strings.Contains(lines[2], "main.ga (ok)") {
		t.Fatalf("missing detail: %q", lines[2])
	}
}

func TestNDJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Output: &buf, OutputPath: "trace.ndjson"})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePhase, "parse", 0).End("")
	if !strings.Contains(buf.String(), `"kind":"end"`) || !strings.Contains(buf.String(), `"name":"parse"`) {
		t.Fatalf("unexpected ndjson: %s", buf.String())
	}
}

func TestRingWrapsAround(t *testing.T) {
	r := NewRing(3, LevelPhase)
	for _, name := range []string{"a", "b", "c", "d"} {
		r.Emit(Event{Kind: KindPoint, Scope: ScopePhase, Name: name})
	}
	snap := r.Snapshot()
	if len(snap) != 3 || snap[0].Name != "b" || snap[2].Name != "d" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestDisabledTracerIsInert(t *testing.T) {
	ctx, s := Start(context.Background(), ScopeDriver, "x")
	if s.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Fatal("span must be inert without a tracer")
	}
	if d := s.End(""); d != 0 {
		t.Fatalf("inert span returned duration %v", d)
	}
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("LevelOff must give Nop, got %v %v", tr, err)
	}
}

func TestNewOwnsOnlyItsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.trace")
	tr, err := New(Config{Level: LevelPhase, OutputPath: path})
	if err != nil {
		t.Fatal(err)
	}
	Begin(tr, ScopePhase, "parse", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || strings.Count(string(data), "\n") != 2 {
		t.Fatalf("trace file = %q, err %v", data, err)
	}

	w := &closeRecorder{}
	s, err := New(Config{Level: LevelPhase, Output: w})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil || w.closed {
		t.Fatalf("caller-provided writer must stay open (closed=%t, err=%v)", w.closed, err)
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}
