// Package buildpipeline runs the compiler over a file or a directory and
// reports per-file progress.
package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gaia/internal/diag"
	"gaia/internal/driver"
	"gaia/internal/source"
)

// CompileRequest configures the shared check pipeline.
type CompileRequest struct {
	// TargetPath is a .ga file or a directory of them.
	TargetPath string
	// BaseDir shortens file names in progress events; defaults to the target
	// directory.
	BaseDir  string
	Options  driver.Options
	Progress ProgressSink
}

// CompileResult holds every unit outcome in path order.
type CompileResult struct {
	FileSet *source.FileSet
	Units   []*driver.CheckResult
	Files   []string // отображаемые имена, параллельно Units
	Timings Timings
}

// Ok reports whether every unit passed.
func (r CompileResult) Ok() bool {
	for _, u := range r.Units {
		if !u.Ok() {
			return false
		}
	}
	return true
}

// FirstError returns the first failing unit's error in path order.
func (r CompileResult) FirstError() error {
	for _, u := range r.Units {
		if err := u.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostics merges the bags of every unit into one, ordered by file and
// position. Units of one Compile share FileSet, so the result resolves
// against r.FileSet.
func (r CompileResult) Diagnostics() *diag.Bag {
	total := 0
	for _, u := range r.Units {
		total += u.Bag.Len()
	}
	bag := diag.NewBag(total)
	for _, u := range r.Units {
		bag.Merge(u.Bag)
	}
	bag.Sort()
	// кэш и повторная проверка могут дать одинаковые записи
	bag.Dedup()
	return bag
}

// Compile checks the target and streams progress events to req.Progress.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if req == nil {
		return result, errors.New("missing compile request")
	}
	if req.TargetPath == "" {
		return result, errors.New("missing target path")
	}
	info, err := os.Stat(req.TargetPath)
	if err != nil {
		return result, fmt.Errorf("failed to stat %q: %w", req.TargetPath, err)
	}

	base := req.BaseDir
	var files []string
	if info.IsDir() {
		if base == "" {
			base = req.TargetPath
		}
		if files, err = driver.ListSources(req.TargetPath); err != nil {
			return result, err
		}
	} else {
		if base == "" {
			base = filepath.Dir(req.TargetPath)
		}
		files = []string{req.TargetPath}
	}
	for _, f := range files {
		result.Files = append(result.Files, DisplayName(f, base))
	}
	emitQueued(req.Progress, result.Files)

	obs := &phaseObserver{sink: req.Progress, base: base, timings: &result.Timings}
	opts := req.Options
	opts.Observer = obs.onPhase

	if info.IsDir() {
		result.FileSet, result.Units, err = driver.CheckDir(ctx, req.TargetPath, opts)
	} else {
		var unit *driver.CheckResult
		unit, err = driver.Check(ctx, req.TargetPath, opts)
		if unit != nil {
			result.FileSet, result.Units = unit.FileSet, []*driver.CheckResult{unit}
		}
	}
	if err != nil {
		emitStage(req.Progress, StageCheck, StatusError, err)
		return result, err
	}
	emitStage(req.Progress, StageCheck, overall(result.Ok()), nil)
	return result, nil
}

// phaseObserver переводит события драйвера в события прогресса.
type phaseObserver struct {
	mu      sync.Mutex
	sink    ProgressSink
	base    string
	timings *Timings
}

func (p *phaseObserver) onPhase(ev driver.PhaseEvent) {
	stage := StageCheck
	if ev.Name == driver.PhaseParse || ev.Name == driver.PhaseScan {
		stage = StageParse
	}
	if ev.Status == driver.PhaseEnd {
		p.mu.Lock()
		p.timings.Add(stage, ev.Elapsed)
		p.mu.Unlock()
	}
	if p.sink == nil {
		return
	}
	out := Event{File: DisplayName(ev.Path, p.base), Stage: stage, Elapsed: ev.Elapsed}
	switch {
	case ev.Status == driver.PhaseStart:
		out.Status = StatusWorking
	case ev.Cached:
		out.Status = StatusCached
	case ev.Failed:
		out.Status = StatusError
	case stage == StageParse:
		// успешный parse сразу продолжается проверкой
		return
	default:
		out.Status = StatusDone
	}
	p.sink.OnEvent(out)
}

// DisplayName returns path relative to base with forward slashes, or the
// cleaned path when it lies outside base.
func DisplayName(path, base string) string {
	clean := filepath.Clean(path)
	if base != "" {
		absBase, err1 := filepath.Abs(base)
		absPath, err2 := filepath.Abs(clean)
		if err1 == nil && err2 == nil {
			if rel, err := filepath.Rel(absBase, absPath); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
				clean = rel
			}
		}
	}
	return filepath.ToSlash(clean)
}

func overall(ok bool) Status {
	if ok {
		return StatusDone
	}
	return StatusError
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageParse, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, stage Stage, status Status, err error) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err})
}
