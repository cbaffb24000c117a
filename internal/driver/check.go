package driver

import (
	"context"
	"errors"
	"time"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/observ"
	"gaia/internal/parser"
	"gaia/internal/project"
	"gaia/internal/sema"
	"gaia/internal/source"
	"gaia/internal/trace"
)

// CheckResult is the outcome of running one compilation unit through
// scan, parse and check.
type CheckResult struct {
	Path    string
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
	// Builder and Sema are nil/zero when the result came from the disk cache
	// or when parsing failed.
	Builder *ast.Builder
	ASTFile ast.FileID
	Sema    sema.Result
	Timing  *observ.Report
	Cached  bool
}

// Ok reports whether the unit compiled without errors.
func (r *CheckResult) Ok() bool { return r != nil && !r.Bag.HasErrors() }

// Err returns the first error as *diag.Error, or nil.
func (r *CheckResult) Err() error { return diag.FirstError(r.Bag, r.FileSet) }

// Check loads path and runs the full pipeline.
func Check(ctx context.Context, path string, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return checkUnit(ctx, fs, fileID, opts), nil
}

// CheckSource checks an in-memory file named name.
func CheckSource(ctx context.Context, name string, src []byte, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	res := checkUnit(ctx, fs, fs.AddVirtual(name, src), opts)
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// checkUnit не возвращает ошибку: всё, что касается исходника, уходит в Bag.
func checkUnit(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) *CheckResult {
	file := fs.Get(fileID)
	res := &CheckResult{
		Path:    file.Path,
		FileSet: fs,
		FileID:  fileID,
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
	ctx, unitSpan := trace.Start(ctx, trace.ScopeFile, file.Path)
	defer func() { unitSpan.End(outcome(res)) }()

	key := cacheKey(file, opts)
	if opts.Cache != nil && opts.Cache.restore(key, res) {
		opts.Observer.emit(PhaseEvent{Path: res.Path, Name: PhaseCheck, Status: PhaseEnd, Failed: !res.Ok(), Cached: true})
		return res
	}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	reporter := diag.BagReporter{Bag: res.Bag}

	popts := opts.parserOptions()
	popts.Reporter = reporter
	parsed := runPhase(ctx, opts, timer, res.Path, PhaseParse, func() bool {
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		res.Builder = ast.NewBuilder(ast.Hints{}, nil)
		pr := parser.ParseFile(ctx, fs, lx, res.Builder, popts)
		res.ASTFile = pr.File
		return pr.Ok
	})

	if parsed && ctx.Err() == nil {
		sopts := opts.semaOptions()
		sopts.Reporter = reporter
		runPhase(ctx, opts, timer, res.Path, PhaseCheck, func() bool {
			res.Sema = sema.Check(ctx, res.Builder, res.ASTFile, sopts)
			return res.Sema.Ok
		})
	}

	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	// отменённый прогон не кешируем, его исход неполон
	if opts.Cache != nil && ctx.Err() == nil {
		if err := opts.Cache.store(key, res); err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache-store-failed", err.Error())
		}
	}
	return res
}

func runPhase(ctx context.Context, opts Options, timer *observ.Timer, path, name string, fn func() bool) bool {
	_, span := trace.Start(ctx, trace.ScopePhase, name)
	opts.Observer.emit(PhaseEvent{Path: path, Name: name, Status: PhaseStart})
	idx := timer.Begin(name)
	started := time.Now()

	ok := fn()

	timer.End(idx, "")
	span.End(okWord(ok))
	opts.Observer.emit(PhaseEvent{Path: path, Name: name, Status: PhaseEnd, Elapsed: time.Since(started), Failed: !ok})
	return ok
}

func cacheKey(file *source.File, opts Options) project.Digest {
	return project.Combine(project.Digest(file.Hash), project.HashString(opts.fingerprint()))
}

func outcome(res *CheckResult) string {
	switch {
	case res.Cached:
		return "cached " + okWord(res.Ok())
	default:
		return okWord(res.Ok())
	}
}

func okWord(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

// IsCompileError reports whether err is a diagnostic from the pipeline
// rather than an I/O failure.
func IsCompileError(err error) bool {
	var de *diag.Error
	return errors.As(err, &de)
}
