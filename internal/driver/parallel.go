package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gaia/internal/source"
	"gaia/internal/trace"
)

// SourceExt is the extension of Gaia source files.
const SourceExt = ".ga"

// ListSources возвращает отсортированный список всех *.ga файлов в директории.
// Скрытые каталоги пропускаются.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadSources preloads files into a FileSet rooted at dir. Workers only read
// the set afterwards.
func LoadSources(dir string, files []string) (*source.FileSet, []source.FileID, error) {
	fileSet := source.NewFileSetWithBase(dir)
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		ids[i] = id
	}
	return fileSet, ids, nil
}

// Jobs returns the effective worker count for n units.
func Jobs(requested, n int) int {
	if requested <= 0 {
		requested = runtime.GOMAXPROCS(0)
	}
	return max(1, min(requested, n))
}

// CheckDir checks every .ga file under dir in parallel. Each file is an
// independent unit; results follow the sorted path order.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*CheckResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}
	fileSet, ids, err := LoadSources(dir, files)
	if err != nil {
		return nil, nil, err
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "check-dir")
	defer span.End(dir)

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*CheckResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Jobs(opts.Jobs, len(files)))
	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkUnit(gctx, fileSet, ids[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
