package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gaia/internal/diag"
	"gaia/internal/diagfmt"
	"gaia/internal/driver"
	"gaia/internal/source"
)

type diagFormat string

const (
	diagPretty diagFormat = "pretty"
	diagJSON   diagFormat = "json"
	diagShort  diagFormat = "short"
)

func readDiagFormat(value string) (diagFormat, error) {
	switch f := diagFormat(value); f {
	case diagPretty, diagJSON, diagShort:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected pretty|json|short)", value)
}

// reportDiagnostics печатает диагностики в выбранном формате; json и short
// идут в stdout, pretty в stderr.
func reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format diagFormat, pathMode diagfmt.PathMode) error {
	switch format {
	case diagJSON:
		return diagfmt.JSON(cmd.OutOrStdout(), bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         pathMode,
		})
	case diagShort:
		diagfmt.Short(cmd.OutOrStdout(), bag, fs, pathMode)
		return nil
	default:
		return printBag(cmd, bag, fs, pathMode)
	}
}

// printBag pretty-prints bag to stderr; a bag without warnings or errors
// prints nothing.
func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, pathMode diagfmt.PathMode) error {
	if bag == nil || !bag.HasWarnings() {
		return nil
	}
	color, err := useColor(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     color,
		Context:   2,
		PathMode:  pathMode,
		ShowNotes: true,
	})
	return nil
}

// writeTimings prints per-unit phase timings: a table for pretty output,
// JSON otherwise.
func writeTimings(w io.Writer, units []*driver.CheckResult, format diagFormat) error {
	if format != diagPretty {
		data, err := driver.MarshalTimings(driver.Timings(units))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	for _, u := range units {
		switch {
		case u.Cached:
			fmt.Fprintf(w, "%s: cached\n", u.Path)
		case u.Timing != nil:
			fmt.Fprintf(w, "%s: %s", u.Path, u.Timing.Summary())
		}
	}
	return nil
}
