package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gaia/internal/driver"
	"gaia/internal/emit"
)

// BuildRequest configures C generation.
type BuildRequest struct {
	CompileRequest
	// OutDir receives one .c file per unit, mirroring the source layout.
	OutDir string
}

// BuildResult captures build artefacts and timings.
type BuildResult struct {
	Compile CompileResult
	Outputs []string
}

// ErrBuildFailed wraps the first compile error when a build stops before emitting.
var ErrBuildFailed = errors.New("build failed")

// Build checks every unit with function bodies and writes C for each.
// Nothing is written unless all units pass.
func Build(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	var result BuildResult
	if req == nil {
		return result, errors.New("missing build request")
	}
	if req.OutDir == "" {
		return result, errors.New("missing output directory")
	}
	creq := req.CompileRequest
	// эмиттеру нужны типы локальных переменных и живое дерево
	creq.Options.Strict = true
	creq.Options.Cache = nil

	compiled, err := Compile(ctx, &creq)
	result.Compile = compiled
	if err != nil {
		return result, err
	}
	if !compiled.Ok() {
		return result, fmt.Errorf("%w: %w", ErrBuildFailed, compiled.FirstError())
	}

	result.Outputs = make([]string, len(compiled.Units))
	elapsed := make([]time.Duration, len(compiled.Units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(driver.Jobs(creq.Options.Jobs, len(compiled.Units)))
	for i, unit := range compiled.Units {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name := compiled.Files[i]
			out := filepath.Join(req.OutDir, filepath.FromSlash(strings.TrimSuffix(name, driver.SourceExt)+".c"))
			notify(req.Progress, Event{File: name, Stage: StageEmit, Status: StatusWorking})
			started := time.Now()
			if err := writeC(out, unit); err != nil {
				notify(req.Progress, Event{File: name, Stage: StageEmit, Status: StatusError, Err: err})
				return fmt.Errorf("%s: %w", name, err)
			}
			elapsed[i] = time.Since(started)
			result.Outputs[i] = out
			notify(req.Progress, Event{File: name, Stage: StageEmit, Status: StatusDone, Elapsed: elapsed[i]})
			return nil
		})
	}
	err = g.Wait()
	for _, d := range elapsed {
		result.Compile.Timings.Add(StageEmit, d)
	}
	if err != nil {
		emitStage(req.Progress, StageEmit, StatusError, err)
		return result, err
	}
	emitStage(req.Progress, StageEmit, StatusDone, nil)
	return result, nil
}

func writeC(path string, unit *driver.CheckResult) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	sink := emit.NewWriterSink(f)
	if err := emit.Emit(unit.Builder, unit.ASTFile, unit.Sema, sink); err != nil {
		return err
	}
	return sink.Flush()
}

func notify(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
