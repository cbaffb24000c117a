package driver

import (
	"context"

	"fortio.org/safecast"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/parser"
	"gaia/internal/source"
	"gaia/internal/trace"
)

// ParseResult holds the syntax tree and scope tree of one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Parsed  parser.Result
	Bag     *diag.Bag
}

// Err returns the first scan or parse error as a *diag.Error, or nil.
func (r *ParseResult) Err() error { return diag.FirstError(r.Bag, r.FileSet) }

// Parse loads path and parses it.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(ctx, fs, fileID, opts)
}

// ParseSource parses an in-memory file.
func ParseSource(ctx context.Context, name string, src []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	return parseFile(ctx, fs, fs.AddVirtual(name, src), opts)
}

func parseFile(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](opts.maxDiagnostics())
	if err != nil {
		return nil, err
	}
	popts := opts.parserOptions()
	popts.Reporter = reporter
	popts.MaxErrors = maxErrors

	_, span := trace.Start(ctx, trace.ScopePhase, PhaseParse)
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	parsed := parser.ParseFile(ctx, fs, lx, builder, popts)
	span.End(file.Path)

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  parsed.File,
		Parsed:  parsed,
		Bag:     bag,
	}, nil
}
