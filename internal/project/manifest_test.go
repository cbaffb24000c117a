package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "demo"
root = "src"

[check]
strict = true
jobs = 3

[build]
out_dir = "out"
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" || !m.Config.Check.Strict || m.Config.Check.Jobs != 3 {
		t.Fatalf("unexpected config %+v", m.Config)
	}
	if m.SourceDir() != filepath.Join(root, "src") {
		t.Fatalf("SourceDir = %s", m.SourceDir())
	}
	if m.OutDir() != filepath.Join(root, "out") {
		t.Fatalf("OutDir = %s", m.OutDir())
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// каталог временный, но выше по дереву манифеста быть не должно
	if ok && m == nil {
		t.Fatal("ok without manifest")
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"no name", "[package]\nroot = \"src\"\n", "missing [package].name"},
		{"unknown key", "[package]\nname = \"x\"\n[check]\nfast = true\n", "unknown key \"check.fast\""},
		{"bad jobs", "[package]\nname = \"x\"\n[check]\njobs = -1\n", "jobs must not be negative"},
		{"syntax", "[package\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.body)
			_, err := DecodeConfig(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteManifest(dir, Config{Package: PackageConfig{Name: "hello"}, Build: BuildConfig{OutDir: "build"}})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := DecodeConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Package.Name != "hello" || cfg.Build.OutDir != "build" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := WriteManifest(dir, cfg); err == nil {
		t.Fatal("second WriteManifest must refuse to overwrite")
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b := HashString("a"), HashString("b")
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("Combine must depend on order")
	}
	if Combine(a) == a {
		t.Fatal("Combine must rehash content")
	}
	if len(a.Hex()) != 64 || a.IsZero() {
		t.Fatalf("bad digest %s", a.Hex())
	}
}
