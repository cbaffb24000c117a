package sema

import (
	"fmt"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/source"
	"gaia/internal/symbols"
	"gaia/internal/types"
)

// report фиксирует первую ошибку; после неё проверка останавливается.
func (tc *typeChecker) report(code diag.Code, sp source.Span, format string, args ...any) bool {
	if tc.failed {
		return false
	}
	tc.failed = true
	if tc.reporter != nil {
		msg := format
		if len(args) > 0 {
			msg = fmt.Sprintf(format, args...)
		}
		tc.reporter.Report(code, diag.SevError, sp, msg, nil)
	}
	return false
}

// reportRedeclared points at the new name and notes the previous binding.
func (tc *typeChecker) reportRedeclared(kind symbols.SymbolKind, name source.StringID, sp source.Span, prev symbols.SymbolID) bool {
	if tc.failed {
		return false
	}
	tc.failed = true
	msg := fmt.Sprintf("%s `%s` already declared", kindWord(kind), tc.name(name))
	b := diag.ReportError(tc.reporter, diag.SemaRedeclared, sp, msg)
	if sym := tc.scopes.Symbol(prev); sym != nil && sym.Flags&symbols.SymbolFlagBuiltin == 0 {
		b.WithNote(sym.Span, "previous declaration is here")
	}
	b.Emit()
	return false
}

func (tc *typeChecker) reportMismatch(sp source.Span, want, got types.TypeID) bool {
	return tc.report(diag.SemaTypeMismatch, sp, "Type mismatch, expected %s but got %s", tc.label(want), tc.label(got))
}

func (tc *typeChecker) name(id source.StringID) string {
	return tc.builder.Name(id)
}

func (tc *typeChecker) label(id types.TypeID) string {
	return types.Label(tc.types, id)
}

func (tc *typeChecker) exprSpan(id ast.ExprID) source.Span {
	if e := tc.builder.Exprs.Get(id); e != nil {
		return e.Span
	}
	return source.Span{}
}

func (tc *typeChecker) stmtSpan(id ast.StmtID) source.Span {
	if s := tc.builder.Stmts.Get(id); s != nil {
		return s.Span
	}
	return source.Span{}
}

func kindWord(k symbols.SymbolKind) string {
	switch k {
	case symbols.SymbolVariable:
		return "Variable"
	case symbols.SymbolFunction:
		return "Function"
	case symbols.SymbolParam:
		return "Parameter"
	case symbols.SymbolStruct:
		return "Struct"
	case symbols.SymbolInterface:
		return "Interface"
	case symbols.SymbolEnum:
		return "Enum"
	case symbols.SymbolEnumMember:
		return "Enum member"
	default:
		return "Name"
	}
}
