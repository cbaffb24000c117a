package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const okSource = "package demo\nfunc add(a: int, b: int): int { return a + b }\nvar total = add(1, 2)\n"

func TestCheckFile(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "ok.ga"), okSource)
	code, stdout, stderr := runCLI(t, "check", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr)
	}
	if stdout != "ok  1 file\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestCheckReportsFirstError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ga"), "package a\nvar x: int = true\n")
	writeFile(t, filepath.Join(dir, "b.ga"), okSource)

	code, stdout, _ := runCLI(t, "check", "--format", "short", dir)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(stdout, "2,14: Type mismatch, expected int but got bool.") {
		t.Fatalf("stdout = %q", stdout)
	}
	if strings.Count(stdout, "\n") != 1 {
		t.Fatalf("expected a single error line, got %q", stdout)
	}
}

func TestCheckPrettyGoesToStderr(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.ga"), "package a\nvar x = @\n")
	code, stdout, stderr := runCLI(t, "check", "--color", "off", path)
	if code != 1 || stdout != "" {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
	if !strings.Contains(stderr, "Unexpected token `@`") || strings.Contains(stderr, "\x1b[") {
		t.Fatalf("stderr = %q", stderr)
	}
	if strings.Contains(stderr, "error: compilation failed") {
		t.Fatal("diagnostic failures must not print a second error line")
	}
}

func TestCheckJSON(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.ga"), "package p\nfunc f(): int { return true }\n")
	code, stdout, _ := runCLI(t, "check", "--strict", "--format", "json", path)
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	var payload struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Code string `json:"code"`
			Text string `json:"text"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, stdout)
	}
	if payload.Count != 1 || payload.Diagnostics[0].Text != "2,24: Return type mismatch, expected int but got bool." {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestManifestSettingsAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "gaia.toml"), "[package]\nname = \"demo\"\nroot = \"src\"\n\n[check]\nstrict = true\n")
	writeFile(t, filepath.Join(dir, "src", "main.ga"), "package demo\nfunc f(): int { return true }\n")
	t.Chdir(dir)

	if code, _, _ := runCLI(t, "check", "--ui", "off"); code != 1 {
		t.Fatalf("strict manifest must reject the body, exit %d", code)
	}
	if code, _, stderr := runCLI(t, "check", "--strict=false"); code != 0 {
		t.Fatalf("flag must override manifest, exit %d\n%s", code, stderr)
	}
}

func TestCheckWithoutTarget(t *testing.T) {
	t.Chdir(t.TempDir())
	code, _, stderr := runCLI(t, "check")
	if code != 1 || !strings.Contains(stderr, "no gaia.toml found") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
}

func TestBuildWritesC(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(src, "main.ga"), "package main\nfunc main() { printf(\"hi\\n\") }\n")
	out := filepath.Join(dir, "out")

	code, stdout, stderr := runCLI(t, "build", "--out", out, src)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "wrote ") || !strings.HasSuffix(strings.TrimSpace(stdout), "main.c") {
		t.Fatalf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(out, "main.c"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "int main(void)") {
		t.Fatalf("unexpected C output:\n%s", data)
	}
}

func TestBuildFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "bad.ga"), "package p\nfunc f(): int { return true }\n")
	out := filepath.Join(dir, "out")
	code, _, stderr := runCLI(t, "build", "--out", out, path)
	if code != 1 || !strings.Contains(stderr, "Return type mismatch") {
		t.Fatalf("exit %d, stderr %q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(out, "bad.c")); !os.IsNotExist(err) {
		t.Fatalf("no output expected, stat err = %v", err)
	}
}

func TestInitThenCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-pkg")
	code, stdout, stderr := runCLI(t, "init", dir)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "gaia.toml") || !strings.Contains(stdout, "main.ga") {
		t.Fatalf("stdout = %q", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, "gaia.toml"))
	if err != nil || !strings.Contains(string(data), `name = "my_pkg"`) {
		t.Fatalf("manifest = %q, err %v", data, err)
	}

	t.Chdir(dir)
	if code, _, stderr := runCLI(t, "check"); code != 0 {
		t.Fatalf("fresh package must check, exit %d\n%s", code, stderr)
	}
	if code, _, stderr := runCLI(t, "init", "."); code != 1 || !strings.Contains(stderr, "already initialized") {
		t.Fatalf("second init: exit %d, stderr %q", code, stderr)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "t.ga"), "package p\nvar x = 1\n")

	code, stdout, _ := runCLI(t, "tokenize", "--format", "json", path)
	if code != 0 {
		t.Fatalf("tokenize exit %d", code)
	}
	var toks []map[string]any
	if err := json.Unmarshal([]byte(stdout), &toks); err != nil || len(toks) != 7 {
		t.Fatalf("tokens = %d, err %v\n%s", len(toks), err, stdout)
	}

	code, stdout, _ = runCLI(t, "parse", "--scopes", path)
	if code != 0 {
		t.Fatalf("parse exit %d", code)
	}
	if !strings.Contains(stdout, "VarDecl") || !strings.Contains(stdout, "scope#") {
		t.Fatalf("parse output:\n%s", stdout)
	}

	bad := writeFile(t, filepath.Join(t.TempDir(), "bad.ga"), "package p\nvar s = \"open")
	if code, _, _ := runCLI(t, "tokenize", bad); code != 1 {
		t.Fatalf("scan error must fail, exit %d", code)
	}
}

func TestTraceToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "ok.ga"), okSource)
	traceOut := filepath.Join(dir, "trace.ndjson")
	code, _, stderr := runCLI(t, "check", "--no-cache", "--trace", traceOut, path)
	if code != 0 {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	data, err := os.ReadFile(traceOut)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[0], "{") {
		t.Fatalf("trace output:\n%s", data)
	}
}

func TestVersionJSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil || payload.Tool != "gaia" || payload.Version == "" {
		t.Fatalf("payload %+v, err %v", payload, err)
	}
}

func TestClean(t *testing.T) {
	code, stdout, _ := runCLI(t, "clean")
	if code != 0 || !strings.HasPrefix(stdout, "removed ") {
		t.Fatalf("exit %d, stdout %q", code, stdout)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("expected error")
	}
	if shouldUseTUI(uiModeAuto, &bytes.Buffer{}) {
		t.Error("buffers are not terminals")
	}
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"demo":      "demo",
		"my-pkg":    "my_pkg",
		"2fast":     "_2fast",
		"каталог":   "main",
		"v1.2 test": "v1_2_test",
	}
	for in, want := range tests {
		if got := packageName(in); got != want {
			t.Errorf("packageName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckTimings(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "ok.ga"), okSource)
	code, _, stderr := runCLI(t, "check", "--timings", "--no-cache", path)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "total") {
		t.Fatalf("stderr = %q", stderr)
	}
}
