package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gaia/internal/buildpipeline"
	"gaia/internal/diagfmt"
	"gaia/internal/ui"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [file.ga|directory]",
		Short: "Check a gaia package and translate it to C",
		Long: `Build checks every file including function bodies and writes one .c file
per source file. Nothing is written when any file fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	f := cmd.Flags()
	f.String("out", "", "output directory (default: [build].out_dir or build)")
	f.Int("jobs", 0, "max parallel workers (0=auto)")
	f.String("ui", "auto", "progress view (auto|on|off)")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if outDir == "" {
		outDir = "build"
		if s.manifest != nil {
			outDir = s.manifest.OutDir()
		}
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return err
	}

	req := &buildpipeline.BuildRequest{
		CompileRequest: buildpipeline.CompileRequest{TargetPath: s.target, Options: s.opts},
		OutDir:         outDir,
	}
	var result buildpipeline.BuildResult
	build := func(sink buildpipeline.ProgressSink) error {
		req.Progress = sink
		var berr error
		result, berr = buildpipeline.Build(cmd.Context(), req)
		return berr
	}
	if useProgress(s, mode, diagPretty, cmd) {
		files, lerr := progressFiles(s.target)
		if lerr != nil {
			return lerr
		}
		err = ui.Run(cmd.ErrOrStderr(), "gaia build", files, buildpipeline.StageEmit, build)
	} else {
		err = build(nil)
	}

	if errors.Is(err, buildpipeline.ErrBuildFailed) {
		if rerr := reportDiagnostics(cmd, result.Compile.Diagnostics(), result.Compile.FileSet, diagPretty, diagfmt.PathModeAuto); rerr != nil {
			return rerr
		}
		return errDiagnostics
	}
	if err != nil {
		return err
	}
	if s.timings {
		if err := writeTimings(cmd.ErrOrStderr(), result.Compile.Units, diagPretty); err != nil {
			return err
		}
	}
	if !s.quiet {
		out := cmd.OutOrStdout()
		for _, path := range result.Outputs {
			fmt.Fprintf(out, "wrote %s\n", filepath.ToSlash(path))
		}
	}
	return nil
}
