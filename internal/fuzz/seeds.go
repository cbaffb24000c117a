package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// languageSeeds cover syntax the corpus files may not reach.
var languageSeeds = []string{
	"",
	"package p",
	"package p; var x = 1;",
	"package p\nvar s = \"a\\n\" + 'c'\n",
	"package p\nvar f = 1.5e3\nvar h = 0x1F\n",
	"package p\nvar a: int[2][] = [[1], [2, 3]]\n",
	"package p\nstruct S { a: int; m(x: int): bool }\n",
	"package p\ninterface I { get(): string }\nenum E { A, B = -2, C }\n",
	"package p\nfunc f(a: int, b: float): float { return a * b }\n",
	"package p\nfunc f() { var i = 0; while i < 3 { i = i + 1 } do { break } while false }\n",
	"package p\nfunc f(x: bool): int { if !x { return 1 } else if x { return 2 } return 3 }\n",
	"package p\nfunc f() { printf(\"%d\\n\", 1 << 2 >> 1 | 3 & ~4 ^ 5 % 2) }\n",
	"package p\nvar x = null\nvar y: string = null\n",
	"package p /* open",
	"package p\nvar s = \"open",
	"package p\nvar x = @",
	"package p\nfunc f() { { { { } } } }",
	"package p\nfunc f(): int {\nreturn\n1 }",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ga файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".ga" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
