package buildpipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gaia/internal/diag"
	"gaia/internal/driver"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func finalStatus(events []Event) map[string]Status {
	out := make(map[string]Status)
	for _, ev := range events {
		if ev.File != "" {
			out[ev.File] = ev.Status
		}
	}
	return out
}

func TestCompileDirectoryProgress(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "ok.ga", "package p\nvar a = 1\n")
	writeSource(t, dir, "nested/bad.ga", "package p\nvar b: bool = 1\n")

	rec := &Recorder{}
	res, err := Compile(context.Background(), &CompileRequest{TargetPath: dir, Progress: rec})
	if err != nil {
		t.Fatal(err)
	}
	if res.Ok() {
		t.Fatal("expected failure")
	}
	if len(res.Files) != 2 || res.Files[0] != "nested/bad.ga" || res.Files[1] != "ok.ga" {
		t.Fatalf("unexpected files %v", res.Files)
	}
	st := finalStatus(rec.Events())
	if st["ok.ga"] != StatusDone || st["nested/bad.ga"] != StatusError {
		t.Fatalf("unexpected final statuses %v", st)
	}
	var de *diag.Error
	if !errors.As(res.FirstError(), &de) || de.Error() != "2,15: Type mismatch, expected bool but got int." {
		t.Fatalf("unexpected first error %v", res.FirstError())
	}
	if !res.Timings.Has(StageParse) || !res.Timings.Has(StageCheck) {
		t.Fatal("stage timings missing")
	}
	merged := res.Diagnostics()
	if merged.Len() != 1 || diag.FirstError(merged, res.FileSet).Error() != de.Error() {
		t.Fatalf("merged diagnostics: %d, %v", merged.Len(), diag.FirstError(merged, res.FileSet))
	}
}

func TestCompileMissingTarget(t *testing.T) {
	if _, err := Compile(context.Background(), &CompileRequest{TargetPath: filepath.Join(t.TempDir(), "nope.ga")}); err == nil {
		t.Fatal("expected stat error")
	}
	if _, err := Compile(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil request")
	}
}

func TestBuildWritesC(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeSource(t, dir, "main.ga", `package app
func main() {
    var n = 3
    printf("%d\n", n)
}
`)
	writeSource(t, dir, "lib/util.ga", "package util\nfunc twice(x: int): int { return x * 2 }\n")

	rec := &Recorder{}
	res, err := Build(context.Background(), &BuildRequest{
		CompileRequest: CompileRequest{TargetPath: dir, Progress: rec, Options: driver.Options{Jobs: 2}},
		OutDir:         out,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(out, "lib", "util.c"), filepath.Join(out, "main.c")}
	for i, path := range want {
		if res.Outputs[i] != path {
			t.Fatalf("output %d = %s, want %s", i, res.Outputs[i], path)
		}
	}
	data, err := os.ReadFile(want[1])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "int main(void)") {
		t.Fatalf("main.c lacks entry point:\n%s", data)
	}
	st := finalStatus(rec.Events())
	if st["main.ga"] != StatusDone {
		t.Fatalf("unexpected status %v", st)
	}
	if !res.Compile.Timings.Has(StageEmit) {
		t.Fatal("emit timing missing")
	}
}

func TestBuildStopsOnStrictError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	// тело проверяется только в строгом режиме, build включает его всегда
	path := writeSource(t, dir, "f.ga", "package p\nfunc f(): int { return \"s\" }\n")

	_, err := Build(context.Background(), &BuildRequest{CompileRequest: CompileRequest{TargetPath: path}, OutDir: out})
	if !errors.Is(err, ErrBuildFailed) {
		t.Fatalf("expected ErrBuildFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "2,24: Return type mismatch") {
		t.Fatalf("unexpected error %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatal("nothing must be written on failure")
	}
}

func TestDisplayName(t *testing.T) {
	base := t.TempDir()
	if got := DisplayName(filepath.Join(base, "a", "b.ga"), base); got != "a/b.ga" {
		t.Fatalf("got %s", got)
	}
	if got := DisplayName("x.ga", ""); got != "x.ga" {
		t.Fatalf("got %s", got)
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDone, StatusCached, StatusError} {
		if !s.Terminal() {
			t.Fatalf("%s must be terminal", s)
		}
	}
	if StatusWorking.Terminal() || StatusQueued.Terminal() {
		t.Fatal("non-terminal status reported terminal")
	}
}
