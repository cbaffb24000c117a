package driver

import (
	"context"
	"path/filepath"
	"testing"

	"gaia/internal/project"
)

func TestDiskCachePutGet(t *testing.T) {
	c, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := project.HashString("unit")
	in := &DiskPayload{Schema: diskCacheSchemaVersion, Path: "a.ga", Ok: true}
	if err := c.Put(key, in); err != nil {
		t.Fatal(err)
	}
	var out DiskPayload
	ok, err := c.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if out.Path != "a.ga" || !out.Ok {
		t.Fatalf("unexpected payload %+v", out)
	}

	ok, err = c.Get(project.HashString("missing"), &out)
	if err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := c.Get(key, &out); ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestOpenDiskCacheHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)
	c, err := OpenDiskCache("gaia")
	if err != nil {
		t.Fatal(err)
	}
	if c.Dir() != filepath.Join(base, "gaia") {
		t.Fatalf("unexpected dir %s", c.Dir())
	}
}

func TestCheckUsesCache(t *testing.T) {
	c, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.ga", "package p\nvar x: int = true\n")
	opts := Options{Cache: c}

	first, err := Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || first.Ok() {
		t.Fatal("first run must be a failing miss")
	}
	second, err := Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second run must hit the cache")
	}
	if second.Err() == nil || second.Err().Error() != first.Err().Error() {
		t.Fatalf("cached error %v differs from %v", second.Err(), first.Err())
	}

	// другие опции дают другой ключ
	strict, err := Check(context.Background(), path, Options{Cache: c, Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if strict.Cached {
		t.Fatal("strict run must not reuse the shallow entry")
	}

	writeSource(t, dir, "bad.ga", "package p\nvar x: int = 1\n")
	fixed, err := Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fixed.Cached || !fixed.Ok() {
		t.Fatal("edited file must miss the cache and pass")
	}
}
