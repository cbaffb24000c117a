// Package emit pretty-prints a checked syntax tree as C99 source.
package emit

import (
	"errors"
	"fmt"
	"strings"

	"gaia/internal/ast"
	"gaia/internal/sema"
	"gaia/internal/source"
	"gaia/internal/types"
)

// ErrUnchecked is returned for trees that did not pass the checker.
var ErrUnchecked = errors.New("emit: tree has not passed semantic checks")

// Emitter: состояние генерации одного файла.
type Emitter struct {
	builder *ast.Builder
	fileID  ast.FileID
	file    *ast.File
	types   *types.Interner
	res     sema.Result
	sink    Sink
	indent  int

	fnIsMain bool // тело main: return получает код 0
}

// Emit writes the C translation of fileID to sink. Local variable types
// come from the checker, so bodies must have been checked deeply
// (sema.Options.CheckBodies).
func Emit(builder *ast.Builder, fileID ast.FileID, res sema.Result, sink Sink) error {
	if !res.Ok || res.Types == nil {
		return ErrUnchecked
	}
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("emit: unknown file %d", fileID)
	}
	e := &Emitter{
		builder: builder,
		fileID:  fileID,
		file:    file,
		types:   res.Types,
		res:     res,
		sink:    sink,
	}
	e.emitPreamble()
	if err := e.emitTypeDecls(); err != nil {
		return err
	}
	if err := e.emitPrototypes(); err != nil {
		return err
	}
	if err := e.emitGlobals(); err != nil {
		return err
	}
	return e.emitFunctions()
}

const concatHelper = `static const char* gaia_concat(const char* a, const char* b) {
    size_t la = strlen(a), lb = strlen(b);
    char* out = malloc(la + lb + 1);
    memcpy(out, a, la);
    memcpy(out + la, b, lb + 1);
    return out;
}`

func (e *Emitter) emitPreamble() {
	if pkg, ok := e.builder.Stmts.Package(e.file.Package); ok {
		e.sink.WriteLine("/* package " + e.name(pkg.Name) + " */")
	}
	for _, id := range e.builder.Imports(e.fileID) {
		if imp, ok := e.builder.Stmts.Import(id); ok {
			e.sink.WriteLine("/* import \"" + e.name(imp.Path) + "\" */")
		}
	}
	for _, h := range []string{"stdbool.h", "stddef.h", "stdio.h", "stdlib.h", "string.h"} {
		e.sink.WriteLine("#include <" + h + ">")
	}
	e.sink.WriteLine("")
	e.sink.WriteLine(concatHelper)
	e.sink.WriteLine("")
}

func (e *Emitter) line(s string) {
	e.sink.WriteLine(strings.Repeat("    ", e.indent) + s)
}

func (e *Emitter) name(id source.StringID) string {
	return e.builder.Name(id)
}

// typeOf берёт тип, вычисленный чекером.
func (e *Emitter) typeOf(id ast.ExprID) (types.TypeID, error) {
	if t, ok := e.res.ExprTypes[id]; ok && t != types.NoTypeID {
		return t, nil
	}
	return types.NoTypeID, fmt.Errorf("emit: expression %d has no checked type (check bodies before emitting)", id)
}

// varType: объявленный тип, иначе тип инициализатора.
func (e *Emitter) varType(decl *ast.VarDeclData) (types.TypeID, error) {
	if decl.Type.IsValid() {
		return e.typeOf(decl.Type)
	}
	return e.typeOf(decl.Value)
}
