package driver

import (
	"fmt"

	"gaia/internal/parser"
	"gaia/internal/sema"
)

// Options configures a single driver run.
type Options struct {
	MaxDiagnostics int
	// Strict проверяет тела функций, без него тела только разбираются.
	Strict bool
	// Eager resolves identifiers while parsing.
	Eager   bool
	Jobs    int
	Timings bool
	// Cache may be nil; Check then always runs the full pipeline.
	Cache    *DiskCache
	Observer PhaseObserver
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 16
	}
	return o.MaxDiagnostics
}

// fingerprint перечисляет всё, что влияет на исход проверки.
func (o Options) fingerprint() string {
	return fmt.Sprintf("schema=%d;strict=%t;eager=%t", diskCacheSchemaVersion, o.Strict, o.Eager)
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{EagerResolve: o.Eager}
}

func (o Options) semaOptions() sema.Options {
	return sema.Options{CheckBodies: o.Strict}
}
