package sema

import (
	"strings"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/symbols"
	"gaia/internal/types"
)

// checkStmt обходит операторы тела функции.
func (tc *typeChecker) checkStmt(id ast.StmtID) bool {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return true
	}
	switch stmt.Kind {
	case ast.StmtBlock:
		return tc.checkBlock(id)
	case ast.StmtVarDecl:
		return tc.checkVarDecl(id)
	case ast.StmtAssign, ast.StmtElementAssign:
		return tc.checkAssign(id)
	case ast.StmtIf:
		return tc.checkIf(id)
	case ast.StmtWhile, ast.StmtDoWhile:
		return tc.checkLoop(id)
	case ast.StmtBreak:
		if tc.loopDepth == 0 {
			return tc.report(diag.SemaBreakOutsideLoop, stmt.Span, "`break` outside of a loop")
		}
		return true
	case ast.StmtReturn:
		return tc.checkReturn(id)
	case ast.StmtExpr:
		data, _ := tc.builder.Stmts.ExprStmt(id)
		_, ok := tc.typeOf(data.Expr, types.NoTypeID)
		return ok
	default:
		return tc.checkTopLevel(id)
	}
}

func (tc *typeChecker) checkBlock(id ast.StmtID) bool {
	block, _ := tc.builder.Stmts.Block(id)
	frame := tc.scopes.Enter(symbols.ScopeBlock, symbols.ScopeOwner{
		SourceFile: tc.stmtSpan(id).File,
		ASTFile:    tc.fileID,
		Stmt:       id,
	}, tc.stmtSpan(id))
	defer tc.scopes.Leave(frame)

	for _, stmtID := range block.Stmts {
		if !tc.checkStmt(stmtID) {
			return false
		}
	}
	return true
}

// checkAssign: слева стоит переменная, параметр или элемент массива.
func (tc *typeChecker) checkAssign(id ast.StmtID) bool {
	data, _ := tc.builder.Stmts.Assign(id)

	if ident, ok := tc.builder.Exprs.Ident(data.Target); ok {
		symID, found := tc.scopes.Lookup(ident.Name)
		if !found {
			return tc.report(diag.SemaUnknownIdent, tc.exprSpan(data.Target), "Unknown identifier `%s`", tc.name(ident.Name))
		}
		sym := tc.scopes.Symbol(symID)
		if sym.Kind != symbols.SymbolVariable && sym.Kind != symbols.SymbolParam {
			return tc.report(diag.SemaNotAssignable, tc.exprSpan(data.Target), "Cannot assign to %s `%s`", lowerKind(sym.Kind), tc.name(ident.Name))
		}
	}

	target, ok := tc.typeOf(data.Target, types.NoTypeID)
	if !ok {
		return false
	}
	value, ok := tc.typeOf(data.Value, target)
	if !ok {
		return false
	}
	if !tc.types.Equal(target, value) {
		return tc.reportMismatch(tc.exprSpan(data.Value), target, value)
	}
	return true
}

func (tc *typeChecker) checkCondition(id ast.ExprID) bool {
	t, ok := tc.typeOf(id, tc.builtins.Bool)
	if !ok {
		return false
	}
	if tc.types.Kind(t) != types.KindBool {
		return tc.report(diag.SemaBadCondition, tc.exprSpan(id), "Condition must be bool, got %s", tc.label(t))
	}
	return true
}

func (tc *typeChecker) checkIf(id ast.StmtID) bool {
	data, _ := tc.builder.Stmts.If(id)
	if !tc.checkCondition(data.Cond) || !tc.checkStmt(data.Then) {
		return false
	}
	if data.Else.IsValid() {
		return tc.checkStmt(data.Else)
	}
	return true
}

func (tc *typeChecker) checkLoop(id ast.StmtID) bool {
	data, _ := tc.builder.Stmts.Loop(id)
	if !tc.checkCondition(data.Cond) {
		return false
	}
	tc.loopDepth++
	defer func() { tc.loopDepth-- }()
	return tc.checkStmt(data.Body)
}

func (tc *typeChecker) checkReturn(id ast.StmtID) bool {
	data, _ := tc.builder.Stmts.Return(id)
	isVoid := tc.types.Kind(tc.fnResult) == types.KindVoid

	if !data.Value.IsValid() {
		if !isVoid {
			return tc.report(diag.SemaReturnMismatch, tc.stmtSpan(id), "Missing return value, `%s` returns %s", tc.name(tc.fnName), tc.label(tc.fnResult))
		}
		return true
	}
	got, ok := tc.typeOf(data.Value, tc.fnResult)
	if !ok {
		return false
	}
	if isVoid {
		return tc.report(diag.SemaReturnMismatch, tc.exprSpan(data.Value), "Function `%s` returns void, unexpected return value", tc.name(tc.fnName))
	}
	if !tc.types.Equal(tc.fnResult, got) {
		return tc.report(diag.SemaReturnMismatch, tc.exprSpan(data.Value), "Return type mismatch, expected %s but got %s", tc.label(tc.fnResult), tc.label(got))
	}
	return true
}

func lowerKind(k symbols.SymbolKind) string {
	return strings.ToLower(kindWord(k))
}
