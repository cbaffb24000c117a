package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gaia/internal/driver"
	"gaia/internal/project"
)

const mainTemplate = `package main

func main() {
	printf("hello, gaia\n")
}
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new gaia package",
		Long: `Initialize a gaia package by creating gaia.toml and a hello-world main.ga.
A missing directory is created.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 && args[0] != "" {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}
	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := packageName(filepath.Base(target))
	manifestPath, err := project.WriteManifest(target, project.Config{
		Package: project.PackageConfig{Name: name},
		Check:   project.CheckConfig{Strict: true},
	})
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("package already initialized: %s exists", filepath.Join(target, project.ManifestName))
		}
		return err
	}
	created := []string{manifestPath}

	mainPath := filepath.Join(target, "main"+driver.SourceExt)
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(mainTemplate), 0o644); err != nil { // #nosec G306 -- исходник пакета
			return fmt.Errorf("failed to write %s: %w", mainPath, err)
		}
		created = append(created, mainPath)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		for _, p := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", p)
		}
	}
	return nil
}

// packageName derives a package name from a directory name: letters, digits
// and underscores only, not starting with a digit.
func packageName(dir string) string {
	var b strings.Builder
	for _, r := range dir {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case r == '-' || r == '.' || r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "main"
	}
	return b.String()
}
