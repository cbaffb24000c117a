package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gaia/internal/diagfmt"
	"gaia/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.ga",
		Short: "Parse a gaia source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json)")
	cmd.Flags().Bool("scopes", false, "print the scope tree built while parsing")
	cmd.Flags().Bool("eager", false, "resolve identifiers while parsing")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	scopes, err := flags.GetBool("scopes")
	if err != nil {
		return fmt.Errorf("failed to get scopes flag: %w", err)
	}
	eager, err := flags.GetBool("eager")
	if err != nil {
		return fmt.Errorf("failed to get eager flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(cmd.Context(), args[0], driver.Options{MaxDiagnostics: maxDiagnostics, Eager: eager})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printBag(cmd, result.Bag, result.FileSet, diagfmt.PathModeAuto); err != nil {
		return err
	}
	if result.Err() != nil {
		return errDiagnostics
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatASTJSON(out, result.Builder, result.FileID, result.FileSet)
	} else {
		err = diagfmt.FormatASTTree(out, result.Builder, result.FileID, result.FileSet)
	}
	if err != nil {
		return err
	}
	if scopes {
		return diagfmt.FormatScopes(out, result.Parsed.Scopes, result.Parsed.Package, nil)
	}
	return nil
}
