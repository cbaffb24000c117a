package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gaia/internal/version"
)

// errDiagnostics означает, что диагностики уже напечатаны и нужен только код выхода.
var errDiagnostics = errors.New("compilation failed")

// newRootCmd builds the command tree. The returned finish func flushes the
// tracer and stops profiles; it must run after Execute, whatever its outcome.
func newRootCmd() (*cobra.Command, func()) {
	root := &cobra.Command{
		Use:           "gaia",
		Short:         "Gaia language compiler front end",
		Long:          `Gaia checks .ga packages and translates them to C`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 16, "maximum number of diagnostics to keep per file")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|detail)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring", 0, "keep the last N trace events in memory and dump them on exit")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	var cleanups []func()
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		stopProf, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopProf)
		stopTrace, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		cleanups = append(cleanups, stopTrace)
		return nil
	}

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newCheckCmd(),
		newBuildCmd(),
		newInitCmd(),
		newCleanCmd(),
		newVersionCmd(),
	)
	return root, func() {
		// в обратном порядке: трассировка закрывается до остановки профилей
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
}

// main executes the root command; any error gives exit status 1.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root, finish := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	finish()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for the given stream.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}
