package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const expectPrefix = "// expect: "

// TestProgramsCorpus checks every program under testdata/programs: ok_*.ga
// must pass a strict check, err_*.ga must fail with the message in the
// leading `// expect:` comment.
func TestProgramsCorpus(t *testing.T) {
	root := filepath.Join("..", "..", "testdata", "programs")
	files, err := ListSources(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("corpus is empty")
	}
	for _, path := range files {
		name := filepath.Base(path)
		t.Run(strings.TrimSuffix(name, SourceExt), func(t *testing.T) {
			src, err := os.ReadFile(path) // #nosec G304 -- corpus path
			if err != nil {
				t.Fatal(err)
			}
			res, err := Check(context.Background(), path, Options{Strict: true})
			if err != nil {
				t.Fatal(err)
			}
			switch {
			case strings.HasPrefix(name, "ok_"):
				if !res.Ok() {
					t.Fatalf("unexpected error: %v", res.Err())
				}
			case strings.HasPrefix(name, "err_"):
				first, _, _ := bytes.Cut(src, []byte{'\n'})
				want, found := strings.CutPrefix(string(first), expectPrefix)
				if !found {
					t.Fatalf("%s lacks %q header", name, expectPrefix)
				}
				got := res.Err()
				if got == nil || got.Error() != want {
					t.Fatalf("got %v, want %q", got, want)
				}
			default:
				t.Fatalf("corpus file %s must start with ok_ or err_", name)
			}
		})
	}
}
