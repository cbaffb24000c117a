package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file FindManifest looks for.
const ManifestName = "gaia.toml"

// Manifest is a loaded gaia.toml together with its location.
type Manifest struct {
	Path   string
	Root   string // каталог, в котором лежит gaia.toml
	Config Config
}

// Config mirrors the gaia.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	Root string `toml:"root"` // каталог с .ga файлами, относительно манифеста
}

type CheckConfig struct {
	Strict         bool `toml:"strict"`
	Eager          bool `toml:"eager"`
	MaxDiagnostics uint `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
}

type BuildConfig struct {
	OutDir string `toml:"out_dir"`
}

// FindManifest walks up from startDir looking for gaia.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadManifest finds and decodes the manifest governing startDir.
// ok is false when there is no manifest at all.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := DecodeConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// DecodeConfig reads and validates a single manifest file.
func DecodeConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	return cfg, nil
}

// SourceDir is the directory holding the package sources.
func (m *Manifest) SourceDir() string {
	if m.Config.Package.Root == "" {
		return m.Root
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Package.Root))
}

// OutDir is the build output directory, "build" by default.
func (m *Manifest) OutDir() string {
	out := m.Config.Build.OutDir
	if out == "" {
		out = "build"
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(m.Root, filepath.FromSlash(out))
}

// WriteManifest creates dir/gaia.toml for a new package. Existing files are
// left untouched and reported as an error.
func WriteManifest(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, ManifestName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	enc := toml.NewEncoder(f)
	enc.Indent = ""
	if err := enc.Encode(cfg); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
