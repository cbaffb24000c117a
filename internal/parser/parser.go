package parser

import (
	"context"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/lexer"
	"gaia/internal/source"
	"gaia/internal/symbols"
	"gaia/internal/token"
)

type Options struct {
	// MaxErrors is kept for symmetry with the other phases; parsing stops at
	// the first error regardless, there is no recovery.
	MaxErrors uint
	Reporter  diag.Reporter
	// EagerResolve reports unknown identifiers and same-frame redeclarations
	// while parsing. Off by default: the checker validates names later and
	// forward references are tolerated here.
	EagerResolve bool
}

type Result struct {
	File    ast.FileID
	Scopes  *symbols.Table
	Package symbols.ScopeID // frame of top-level declarations
	Ok      bool
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	scopes   *symbols.Resolver
	failed   bool
}

// ParseFile parses one compilation unit. The lexer must be built over a file
// of fs. Cancellation is checked between top-level declarations.
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	table := symbols.NewTable(symbols.Hints{}, arenas.StringsInterner)
	start := source.Span{File: lx.File().ID}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(start),
		fs:       fs,
		opts:     opts,
		lastSpan: start,
		scopes:   symbols.NewResolver(table, table.Universe()),
	}

	pkgScope := p.parseFile(ctx)
	// незакрытый комментарий в конце файла лексер отдаёт как EOF
	if p.lx.Failed() {
		p.failed = true
	}
	return Result{
		File:    p.file,
		Scopes:  table,
		Package: pkgScope,
		Ok:      !p.failed,
	}
}

// parseFile: package clause, imports, затем объявления до EOF.
func (p *Parser) parseFile(ctx context.Context) symbols.ScopeID {
	file := p.arenas.Files.Get(p.file)
	startSpan := p.peek().Span

	pkgID, ok := p.parsePackageClause()
	if !ok {
		return symbols.NoScopeID
	}
	file.Package = pkgID

	scope := p.scopes.Enter(symbols.ScopePackage, symbols.ScopeOwner{
		SourceFile: p.lx.File().ID,
		ASTFile:    p.file,
		Stmt:       pkgID,
	}, startSpan)
	defer p.scopes.Leave(scope)
	p.scopes.Table().DeclareBuiltins(scope, nil)

	for p.at(token.KwImport) {
		imp, ok := p.parseImport()
		if !ok {
			return scope
		}
		p.arenas.PushStmt(p.file, imp)
	}

	for !p.failed && !p.at(token.EOF) {
		if err := ctx.Err(); err != nil {
			p.failed = true
			break
		}
		stmt, ok := p.parseTopLevel()
		if !ok {
			break
		}
		p.arenas.PushStmt(p.file, stmt)
	}
	file = p.arenas.Files.Get(p.file)
	file.Span = startSpan.Cover(p.lastSpan)
	return scope
}

func (p *Parser) parsePackageClause() (ast.StmtID, bool) {
	pkgTok, ok := p.expect(token.KwPackage, diag.SynExpectPackage, "Expected package")
	if !ok {
		return ast.NoStmtID, false
	}
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewPackage(pkgTok.Span.Cover(p.lastSpan), name, nameSpan), true
}

// parseImport: import "path";
func (p *Parser) parseImport() (ast.StmtID, bool) {
	impTok := p.advance()
	pathTok, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "Expected import path string, got "+describe(p.peek()))
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.terminator() {
		return ast.NoStmtID, false
	}
	path := p.arenas.StringsInterner.Intern(unquote(pathTok.Text))
	return p.arenas.Stmts.NewImport(impTok.Span.Cover(p.lastSpan), path, pathTok.Span), true
}

// parseTopLevel выбирает распознаватель по первому токену.
func (p *Parser) parseTopLevel() (ast.StmtID, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwVar:
		return p.parseVarDecl()
	case token.KwFunc:
		return p.parseFuncDecl()
	case token.KwStruct:
		return p.parseStructDecl()
	case token.KwInterface:
		return p.parseInterfaceDecl()
	case token.KwEnum:
		return p.parseEnumDecl()
	case token.KwImport:
		p.err(diag.SynImportAfterDecl, "Imports must precede all other declarations")
		return ast.NoStmtID, false
	default:
		p.err(diag.SynUnexpectedTopLevel, "Unexpected "+describe(tok)+" at top level")
		return ast.NoStmtID, false
	}
}

func unquote(lit string) string {
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		return lit[1 : len(lit)-1]
	}
	return lit
}
