package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gaia/internal/buildpipeline"
	"gaia/internal/diagfmt"
	"gaia/internal/driver"
	"gaia/internal/ui"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [file.ga|directory]",
		Short: "Check a gaia source file or every .ga file in a directory",
		Long: `Check runs the scanner, parser and checker and reports the first error
of each file. Without an argument the package of the nearest gaia.toml is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	f := cmd.Flags()
	f.Bool("strict", false, "check function bodies")
	f.Bool("eager", false, "resolve identifiers while parsing")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	f.String("ui", "auto", "progress view (auto|on|off)")
	f.Bool("no-cache", false, "do not read or write the disk cache")
	f.String("format", "pretty", "diagnostics format (pretty|json|short)")
	f.String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	formatStr, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readDiagFormat(formatStr)
	if err != nil {
		return err
	}
	uiStr, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return err
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	pathModeStr, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}

	if !noCache {
		cache, cerr := driver.OpenDiskCache("gaia")
		if cerr != nil {
			// без кэша проверка всё равно выполнима
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: disk cache disabled: %v\n", cerr)
		} else {
			s.opts.Cache = cache
		}
	}

	req := &buildpipeline.CompileRequest{TargetPath: s.target, Options: s.opts}
	var result buildpipeline.CompileResult
	compile := func(sink buildpipeline.ProgressSink) error {
		req.Progress = sink
		var cerr error
		result, cerr = buildpipeline.Compile(cmd.Context(), req)
		return cerr
	}
	if useProgress(s, mode, format, cmd) {
		files, lerr := progressFiles(s.target)
		if lerr != nil {
			return lerr
		}
		err = ui.Run(cmd.ErrOrStderr(), "gaia check", files, buildpipeline.StageCheck, compile)
	} else {
		err = compile(nil)
	}
	if err != nil {
		return err
	}

	if err := reportDiagnostics(cmd, result.Diagnostics(), result.FileSet, format, diagfmt.ParsePathMode(pathModeStr)); err != nil {
		return err
	}
	if s.timings {
		if err := writeTimings(cmd.ErrOrStderr(), result.Units, format); err != nil {
			return err
		}
	}
	if !result.Ok() {
		return errDiagnostics
	}
	if !s.quiet && format == diagPretty {
		fmt.Fprintf(cmd.OutOrStdout(), "ok  %d %s\n", len(result.Units), plural(len(result.Units), "file", "files"))
	}
	return nil
}

// useProgress: прогресс показываем только для каталогов и человекочитаемого вывода.
func useProgress(s *settings, mode uiMode, format diagFormat, cmd *cobra.Command) bool {
	if s.quiet || format != diagPretty {
		return false
	}
	if !isDir(s.target) {
		return false
	}
	return shouldUseTUI(mode, cmd.ErrOrStderr())
}

// progressFiles lists the display names used by the progress view.
func progressFiles(target string) ([]string, error) {
	if !isDir(target) {
		return []string{filepath.ToSlash(filepath.Base(target))}, nil
	}
	paths, err := driver.ListSources(target)
	if err != nil {
		return nil, err
	}
	files := make([]string, len(paths))
	for i, p := range paths {
		files[i] = buildpipeline.DisplayName(p, target)
	}
	return files, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
