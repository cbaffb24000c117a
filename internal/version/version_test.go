package version

import (
	"strings"
	"testing"
)

func TestColoredPlain(t *testing.T) {
	tests := map[string]string{
		"0.1.0-dev":   "0.1.0-dev",
		"1.2.3":       "1.2.3",
		"1.2.3+build": "1.2.3+build",
		"weird":       "weird",
	}
	for in, want := range tests {
		if got := Colored(in, false); got != want {
			t.Errorf("Colored(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColoredEnabled(t *testing.T) {
	got := Colored("1.2.3-rc1", true)
	if !strings.Contains(got, "\x1b[") || !strings.HasSuffix(got, "-rc1") {
		t.Fatalf("unexpected colored version %q", got)
	}
}

func TestDescribe(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Describe(false); got != "gaia 1.2.3" {
		t.Fatalf("got %q", got)
	}

	GitCommit, BuildDate = "abc123def456789", "2024-01-15T10:30:00Z"
	want := "gaia 1.2.3 (commit abc123def456, built 2024-01-15T10:30:00Z)"
	if got := Describe(false); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
