package sema

import (
	"strings"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/symbols"
	"gaia/internal/types"
)

func (tc *typeChecker) checkImport(id ast.StmtID) bool {
	imp, ok := tc.builder.Stmts.Import(id)
	if !ok {
		return true
	}
	if strings.TrimSpace(tc.name(imp.Path)) == "" {
		return tc.report(diag.SemaEmptyModule, tc.stmtSpan(id), "Module specifier is required")
	}
	return true
}

// hoistFunc регистрирует сигнатуру функции до проверки остальных операторов.
func (tc *typeChecker) hoistFunc(id ast.StmtID, fn *ast.FuncDeclData) bool {
	sig := &symbols.FunctionSignature{
		ResultExpr: fn.Result,
		Result:     tc.resultType(fn.Result),
	}
	for _, paramID := range fn.Params {
		param, ok := tc.builder.Exprs.Param(paramID)
		if !ok {
			continue
		}
		typ, ok := tc.valueType(param.Type, "Parameter `"+tc.name(param.Name)+"`")
		if !ok {
			return false
		}
		tc.result.ExprTypes[paramID] = typ
		sig.Params = append(sig.Params, symbols.Param{Name: param.Name, TypeExpr: param.Type, Type: typ})
	}
	return tc.declare(symbols.Symbol{
		Name:      fn.Name,
		Kind:      symbols.SymbolFunction,
		Span:      fn.NameSpan,
		Flags:     symbols.SymbolFlagHoisted,
		Decl:      symbols.SymbolDecl{SourceFile: fn.NameSpan.File, Stmt: id},
		Type:      sig.Result,
		Signature: sig,
	})
}

// declare вставляет в текущий фрейм; повтор имени в том же фрейме считается ошибкой.
func (tc *typeChecker) declare(sym symbols.Symbol) bool {
	if _, ok := tc.declareID(sym); !ok {
		return false
	}
	return true
}

func (tc *typeChecker) declareID(sym symbols.Symbol) (symbols.SymbolID, bool) {
	id, ok := tc.scopes.Declare(sym)
	if !ok {
		return symbols.NoSymbolID, tc.reportRedeclared(sym.Kind, sym.Name, sym.Span, id)
	}
	return id, true
}

// checkVarDecl: одинаково для глобальных и локальных переменных.
//
//	var x: T = e   тип e обязан совпасть с T
//	var x = e      тип выводится из e
//	var x: T       без инициализатора
//	var x          ошибка
func (tc *typeChecker) checkVarDecl(id ast.StmtID) bool {
	decl, ok := tc.builder.Stmts.VarDecl(id)
	if !ok {
		return true
	}
	if prev, exists := tc.scopes.LookupLocal(decl.Name); exists {
		return tc.reportRedeclared(symbols.SymbolVariable, decl.Name, decl.NameSpan, prev)
	}

	var declared types.TypeID
	if decl.Type.IsValid() {
		if declared, ok = tc.valueType(decl.Type, "Variable `"+tc.name(decl.Name)+"`"); !ok {
			return false
		}
	}

	typ := declared
	switch {
	case decl.Value.IsValid():
		got, ok := tc.typeOf(decl.Value, declared)
		if !ok {
			return false
		}
		if declared != types.NoTypeID {
			if !tc.types.Equal(declared, got) {
				return tc.reportMismatch(tc.exprSpan(decl.Value), declared, got)
			}
			break
		}
		if !tc.requireValue(decl.Value, got) {
			return false
		}
		if tc.types.IsNull(got) {
			return tc.report(diag.SemaCannotInfer, tc.exprSpan(decl.Value), "Cannot infer the type of `%s` from null", tc.name(decl.Name))
		}
		typ = got
	case declared == types.NoTypeID:
		return tc.report(diag.SemaMissingInit, decl.NameSpan, "Variable `%s` needs to be initialized", tc.name(decl.Name))
	}

	return tc.declare(symbols.Symbol{
		Name:     decl.Name,
		Kind:     symbols.SymbolVariable,
		Span:     decl.NameSpan,
		Decl:     symbols.SymbolDecl{SourceFile: decl.NameSpan.File, Stmt: id},
		TypeExpr: decl.Type,
		Type:     typ,
	})
}

// checkFuncDecl: сигнатура уже поднята. Тело проверяется только с
// CheckBodies; по умолчанию проверка неглубокая.
func (tc *typeChecker) checkFuncDecl(id ast.StmtID) bool {
	fn, ok := tc.builder.Stmts.FuncDecl(id)
	if !ok || !tc.opts.CheckBodies {
		return true
	}
	symID, found := tc.scopes.LookupLocal(fn.Name)
	if !found {
		return true
	}
	sym := tc.scopes.Symbol(symID)

	frame := tc.scopes.Enter(symbols.ScopeFunction, symbols.ScopeOwner{
		SourceFile: fn.NameSpan.File,
		ASTFile:    tc.fileID,
		Stmt:       id,
	}, tc.stmtSpan(id))
	defer tc.scopes.Leave(frame)

	for i, paramID := range fn.Params {
		param, ok := tc.builder.Exprs.Param(paramID)
		if !ok || i >= len(sym.Signature.Params) {
			continue
		}
		if !tc.declare(symbols.Symbol{
			Name:     param.Name,
			Kind:     symbols.SymbolParam,
			Span:     param.NameSpan,
			Decl:     symbols.SymbolDecl{SourceFile: param.NameSpan.File, Expr: paramID},
			TypeExpr: param.Type,
			Type:     sym.Signature.Params[i].Type,
		}) {
			return false
		}
	}

	prevName, prevResult, prevDepth := tc.fnName, tc.fnResult, tc.loopDepth
	tc.fnName, tc.fnResult, tc.loopDepth = fn.Name, sym.Signature.Result, 0
	defer func() {
		tc.fnName, tc.fnResult, tc.loopDepth = prevName, prevResult, prevDepth
	}()
	return tc.checkStmt(fn.Body)
}

// checkRecordDecl: имя struct и interface живёт в глобальном фрейме, члены не повторяются.
func (tc *typeChecker) checkRecordDecl(id ast.StmtID, kind ast.StmtKind) bool {
	decl, ok := tc.builder.Stmts.TypeDecl(id)
	if !ok {
		return true
	}
	symKind, what := symbols.SymbolStruct, "struct"
	if kind == ast.StmtInterfaceDecl {
		symKind, what = symbols.SymbolInterface, "interface"
	}
	if !tc.declare(symbols.Symbol{
		Name: decl.Name,
		Kind: symKind,
		Span: decl.NameSpan,
		Decl: symbols.SymbolDecl{SourceFile: decl.NameSpan.File, Stmt: id},
	}) {
		return false
	}

	seen := make(map[source.StringID]struct{}, len(decl.Members))
	for _, memberID := range decl.Members {
		m := tc.builder.Stmts.Member(memberID)
		if m == nil {
			continue
		}
		if _, dup := seen[m.Name]; dup {
			return tc.report(diag.SemaDuplicateMember, m.NameSpan, "Duplicate member `%s` in %s `%s`", tc.name(m.Name), what, tc.name(decl.Name))
		}
		seen[m.Name] = struct{}{}
		if !tc.checkMember(m) {
			return false
		}
	}
	return true
}

func (tc *typeChecker) checkMember(m *ast.Member) bool {
	switch m.Kind {
	case ast.MemberProperty:
		_, ok := tc.valueType(m.Type, "Member `"+tc.name(m.Name)+"`")
		return ok
	case ast.MemberMethod:
		params := make(map[source.StringID]struct{}, len(m.Params))
		for _, paramID := range m.Params {
			param, ok := tc.builder.Exprs.Param(paramID)
			if !ok {
				continue
			}
			if _, dup := params[param.Name]; dup {
				return tc.reportRedeclared(symbols.SymbolParam, param.Name, param.NameSpan, symbols.NoSymbolID)
			}
			params[param.Name] = struct{}{}
			typ, ok := tc.valueType(param.Type, "Parameter `"+tc.name(param.Name)+"`")
			if !ok {
				return false
			}
			tc.result.ExprTypes[paramID] = typ
		}
		tc.resultType(m.Type)
	}
	return true
}

// checkEnumDecl: члены являются целыми константами в глобальном фрейме;
// инициализатор допускается только целым литералом (возможно, со знаком).
func (tc *typeChecker) checkEnumDecl(id ast.StmtID) bool {
	decl, ok := tc.builder.Stmts.TypeDecl(id)
	if !ok {
		return true
	}
	if !tc.declare(symbols.Symbol{
		Name: decl.Name,
		Kind: symbols.SymbolEnum,
		Span: decl.NameSpan,
		Decl: symbols.SymbolDecl{SourceFile: decl.NameSpan.File, Stmt: id},
	}) {
		return false
	}

	seen := make(map[source.StringID]struct{}, len(decl.Members))
	for _, memberID := range decl.Members {
		m := tc.builder.Stmts.Member(memberID)
		if m == nil {
			continue
		}
		if _, dup := seen[m.Name]; dup {
			return tc.report(diag.SemaDuplicateMember, m.NameSpan, "Duplicate member `%s` in enum `%s`", tc.name(m.Name), tc.name(decl.Name))
		}
		seen[m.Name] = struct{}{}
		if m.Value.IsValid() {
			if !tc.isIntLiteral(m.Value) {
				return tc.report(diag.SemaBadEnumValue, tc.exprSpan(m.Value), "Enum member `%s` must be initialized with an integer literal", tc.name(m.Name))
			}
			tc.result.ExprTypes[m.Value] = tc.builtins.Int
		}
		if !tc.declare(symbols.Symbol{
			Name: m.Name,
			Kind: symbols.SymbolEnumMember,
			Span: m.NameSpan,
			Decl: symbols.SymbolDecl{SourceFile: m.NameSpan.File, Stmt: id},
			Type: tc.builtins.Int,
		}) {
			return false
		}
	}
	return true
}

func (tc *typeChecker) isIntLiteral(id ast.ExprID) bool {
	if un, ok := tc.builder.Exprs.Unary(id); ok && un.Op == ast.ExprUnaryNeg {
		id = un.Operand
	}
	e := tc.builder.Exprs.Get(id)
	return e != nil && e.Kind == ast.ExprIntLit
}
