package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("scan")
	tm.End(idx, "12 tokens")
	tm.Time("parse", func() string { return "" })
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Name != "scan" || r.Phases[0].Note != "12 tokens" {
		t.Fatalf("unexpected first phase %+v", r.Phases[0])
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatal("total must cover every phase")
	}
	sum := tm.Report().Summary()
	for _, want := range []string{"timings:", "scan", "// 12 tokens", "parse", "total"} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
