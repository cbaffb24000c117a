package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"gaia/internal/diag"
	"gaia/internal/project"
	"gaia/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит исходы проверки файлов по хешу содержимого и опций.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of one unit. Spans are stored as byte
// offsets so they can be re-resolved against the freshly loaded file.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Options     string
	Ok          bool
	Diagnostics []CachedDiagnostic
	CreatedUnix int64
}

// CachedDiagnostic is a diagnostic with file-relative offsets.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
}

type CachedNote struct {
	Start, End uint32
	Msg        string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := key.Hex()
	return filepath.Join(c.dir, "units", hexKey[:2], hexKey+".mp")
}

// Put serializes payload under key, replacing any previous entry atomically.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get decodes the entry for key into out. A missing entry is not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименование делает сброс атомарным для параллельных читателей
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func (c *DiskCache) store(key project.Digest, res *CheckResult) error {
	file := res.FileSet.Get(res.FileID)
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.Path,
		ContentHash: project.Digest(file.Hash),
		Ok:          res.Ok(),
		CreatedUnix: time.Now().Unix(),
	}
	for _, d := range res.Bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return c.Put(key, payload)
}

// restore fills res from the cache. Corrupt or stale entries count as misses.
func (c *DiskCache) restore(key project.Digest, res *CheckResult) bool {
	var payload DiskPayload
	ok, err := c.Get(key, &payload)
	if err != nil || !ok || payload.Schema != diskCacheSchemaVersion {
		return false
	}
	file := res.FileSet.Get(res.FileID)
	if payload.ContentHash != project.Digest(file.Hash) {
		return false
	}
	size := uint32(len(file.Content)) // #nosec G115 -- FileSet.Add проверяет размер
	for _, cd := range payload.Diagnostics {
		if cd.End > size || cd.Start > cd.End {
			return false
		}
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), source.Span{File: res.FileID, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: res.FileID, Start: n.Start, End: n.End}, n.Msg)
		}
		res.Bag.Add(d)
	}
	res.Cached = true
	return true
}
