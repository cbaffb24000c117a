package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"gaia/internal/driver"
	"gaia/internal/project"
)

// settings is the merged view of gaia.toml and command-line flags.
// Флаги, заданные явно, перекрывают значения манифеста.
type settings struct {
	target   string
	manifest *project.Manifest
	opts     driver.Options
	quiet    bool
	timings  bool
}

// loadSettings resolves the target path and options for check and build.
// Without an argument the target is the package of the nearest gaia.toml.
func loadSettings(cmd *cobra.Command, args []string) (*settings, error) {
	s := &settings{}
	start := "."
	if len(args) > 0 && args[0] != "" {
		s.target = args[0]
		start = s.target
		if info, err := os.Stat(s.target); err == nil && !info.IsDir() {
			start = filepath.Dir(s.target)
		}
	}
	manifest, ok, err := project.LoadManifest(start)
	if err != nil {
		return nil, err
	}
	if ok {
		s.manifest = manifest
		c := manifest.Config.Check
		s.opts.Strict = c.Strict
		s.opts.Eager = c.Eager
		s.opts.Jobs = c.Jobs
		if s.opts.MaxDiagnostics, err = safecast.Conv[int](c.MaxDiagnostics); err != nil {
			return nil, fmt.Errorf("%s: max_diagnostics: %w", manifest.Path, err)
		}
		if s.target == "" {
			s.target = manifest.SourceDir()
		}
	}
	if s.target == "" {
		return nil, fmt.Errorf("no %s found; pass a file or directory explicitly", project.ManifestName)
	}

	flags := cmd.Flags()
	if err := overrideBool(cmd, "strict", &s.opts.Strict); err != nil {
		return nil, err
	}
	if err := overrideBool(cmd, "eager", &s.opts.Eager); err != nil {
		return nil, err
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") || s.opts.MaxDiagnostics == 0 {
		if s.opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	s.opts.Timings = s.timings
	return s, nil
}

func overrideBool(cmd *cobra.Command, name string, dst *bool) error {
	flags := cmd.Flags()
	if flags.Lookup(name) == nil || !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}
