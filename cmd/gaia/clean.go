package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gaia/internal/driver"
	"gaia/internal/project"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Drop the check cache and, with --build, the build output",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
	cmd.Flags().Bool("build", false, "also remove the build output directory of the current package")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	withBuild, err := cmd.Flags().GetBool("build")
	if err != nil {
		return fmt.Errorf("failed to get build flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	out := cmd.OutOrStdout()

	cache, err := driver.OpenDiskCache("gaia")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop disk cache: %w", err)
	}
	if !quiet {
		fmt.Fprintf(out, "removed %s\n", cache.Dir())
	}

	if !withBuild {
		return nil
	}
	manifest, ok, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("--build needs a %s", project.ManifestName)
	}
	dir := manifest.OutDir()
	if _, err := os.Stat(dir); err != nil {
		if !quiet {
			fmt.Fprintln(out, "build directory not found")
		}
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	if !quiet {
		fmt.Fprintf(out, "removed %s\n", dir)
	}
	return nil
}
