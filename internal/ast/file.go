package ast

import (
	"gaia/internal/source"
)

// File is the root of one compilation unit. Package is the package clause;
// Stmts holds the top-level statements in source order, imports first.
type File struct {
	Span    source.Span
	Package StmtID
	Stmts   []StmtID
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(sp source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  sp,
		Stmts: make([]StmtID, 0, 8),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}

// Imports returns the leading import statements of the file.
func (b *Builder) Imports(id FileID) []StmtID {
	file := b.Files.Get(id)
	if file == nil {
		return nil
	}
	n := 0
	for _, st := range file.Stmts {
		if b.Stmts.Get(st).Kind != StmtImport {
			break
		}
		n++
	}
	return file.Stmts[:n]
}
