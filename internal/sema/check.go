package sema

import (
	"context"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/symbols"
	"gaia/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	// Types is shared between passes when set; a fresh interner otherwise.
	Types *types.Interner
	// CheckBodies re-enters every function body in a frame holding its
	// parameters and validates locals, assignments, returns and conditions.
	// Off by default: only signatures are validated.
	CheckBodies bool
}

// Result stores semantic artefacts produced by the checker.
type Result struct {
	Types     *types.Interner
	ExprTypes map[ast.ExprID]types.TypeID
	Symbols   *symbols.Table
	Globals   symbols.ScopeID // top-level frame, child of the universe
	Ok        bool
}

// Check validates one parsed file. It runs with its own symbol table,
// independent of the one the parser built, and stops at the first error.
//
// Phase 1 hoists every function signature into the top-level frame, so
// functions may reference each other in any order. Phase 2 visits the
// top-level statements in source order.
func Check(ctx context.Context, builder *ast.Builder, fileID ast.FileID, opts Options) Result {
	res := Result{
		Types:     opts.Types,
		ExprTypes: make(map[ast.ExprID]types.TypeID),
	}
	if res.Types == nil {
		res.Types = types.NewInterner()
	}
	if builder == nil || builder.Files.Get(fileID) == nil {
		return res
	}

	res.Symbols = symbols.NewTable(symbols.Hints{}, builder.StringsInterner)
	universe := res.Symbols.Universe()

	tc := typeChecker{
		builder:  builder,
		fileID:   fileID,
		reporter: opts.Reporter,
		opts:     opts,
		types:    res.Types,
		builtins: res.Types.Builtins(),
		result:   &res,
		scopes:   symbols.NewResolver(res.Symbols, universe),
	}
	tc.run(ctx)
	res.Ok = !tc.failed
	return res
}

type typeChecker struct {
	builder  *ast.Builder
	fileID   ast.FileID
	reporter diag.Reporter
	opts     Options
	types    *types.Interner
	builtins types.Builtins
	result   *Result
	scopes   *symbols.Resolver

	failed bool

	// состояние тела функции (только CheckBodies)
	fnName    source.StringID
	fnResult  types.TypeID
	loopDepth int
}

func (tc *typeChecker) run(ctx context.Context) {
	file := tc.builder.Files.Get(tc.fileID)

	owner := symbols.ScopeOwner{SourceFile: file.Span.File, ASTFile: tc.fileID, Stmt: file.Package}
	globals := tc.scopes.Enter(symbols.ScopePackage, owner, file.Span)
	defer tc.scopes.Leave(globals)
	tc.result.Globals = globals
	tc.result.Symbols.DeclareBuiltins(globals, tc.types)

	// Phase 1: hoisting
	for _, stmtID := range file.Stmts {
		if fn, ok := tc.builder.Stmts.FuncDecl(stmtID); ok {
			if !tc.hoistFunc(stmtID, fn) {
				return
			}
		}
	}

	// Phase 2: последовательная проверка
	for _, stmtID := range file.Stmts {
		if err := ctx.Err(); err != nil {
			tc.failed = true
			return
		}
		if !tc.checkTopLevel(stmtID) {
			return
		}
	}
}

func (tc *typeChecker) checkTopLevel(id ast.StmtID) bool {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return true
	}
	switch stmt.Kind {
	case ast.StmtImport:
		return tc.checkImport(id)
	case ast.StmtVarDecl:
		return tc.checkVarDecl(id)
	case ast.StmtFuncDecl:
		return tc.checkFuncDecl(id)
	case ast.StmtStructDecl, ast.StmtInterfaceDecl:
		return tc.checkRecordDecl(id, stmt.Kind)
	case ast.StmtEnumDecl:
		return tc.checkEnumDecl(id)
	case ast.StmtPackage:
		return true
	default:
		// парсер не пропускает другие операторы на верхний уровень
		return tc.checkStmt(id)
	}
}
