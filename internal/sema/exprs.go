package sema

import (
	"strconv"

	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/symbols"
	"gaia/internal/types"
)

// typeOf вычисляет тип выражения и запоминает его в ExprTypes.
// expected задаёт контекстный тип (нужен пустым и вложенным литералам массивов),
// NoTypeID если контекста нет.
func (tc *typeChecker) typeOf(id ast.ExprID, expected types.TypeID) (types.TypeID, bool) {
	t, ok := tc.inferExpr(id, expected)
	if ok && t != types.NoTypeID {
		tc.result.ExprTypes[id] = t
	}
	return t, ok
}

func (tc *typeChecker) inferExpr(id ast.ExprID, expected types.TypeID) (types.TypeID, bool) {
	expr := tc.builder.Exprs.Get(id)
	if expr == nil {
		return types.NoTypeID, true
	}
	switch expr.Kind {
	case ast.ExprIdent:
		return tc.identType(id)
	case ast.ExprIntLit:
		return tc.builtins.Int, true
	case ast.ExprFloatLit:
		return tc.builtins.Float, true
	case ast.ExprStringLit:
		return tc.builtins.String, true
	case ast.ExprCharLit:
		return tc.builtins.Char, true
	case ast.ExprBoolLit:
		return tc.builtins.Bool, true
	case ast.ExprNullLit:
		return tc.builtins.Null, true
	case ast.ExprUnary:
		return tc.unaryType(id)
	case ast.ExprBinary:
		return tc.binaryType(id)
	case ast.ExprCall:
		return tc.callType(id)
	case ast.ExprElementAccess:
		return tc.elementType(id)
	case ast.ExprArrayLiteral:
		return tc.arrayLiteralType(id, expected)
	case ast.ExprArrayType, ast.ExprSizedArrayType, ast.ExprKeywordType:
		return tc.resolveType(id), true
	default:
		return types.NoTypeID, true
	}
}

func (tc *typeChecker) identType(id ast.ExprID) (types.TypeID, bool) {
	ident, _ := tc.builder.Exprs.Ident(id)
	symID, ok := tc.scopes.Lookup(ident.Name)
	if !ok {
		return types.NoTypeID, tc.report(diag.SemaUnknownIdent, tc.exprSpan(id), "Unknown identifier `%s`", tc.name(ident.Name))
	}
	sym := tc.scopes.Symbol(symID)
	if !sym.Kind.IsValue() || sym.Kind == symbols.SymbolFunction {
		return types.NoTypeID, tc.report(diag.SemaTypeMismatch, tc.exprSpan(id), "%s `%s` cannot be used as a value", kindWord(sym.Kind), tc.name(ident.Name))
	}
	return sym.Type, true
}

// unaryType: `!` всегда bool, остальные пробрасывают тип операнда.
func (tc *typeChecker) unaryType(id ast.ExprID) (types.TypeID, bool) {
	un, _ := tc.builder.Exprs.Unary(id)
	operand, ok := tc.typeOf(un.Operand, types.NoTypeID)
	if !ok {
		return types.NoTypeID, false
	}
	if un.Op == ast.ExprUnaryNot {
		return tc.builtins.Bool, true
	}
	return operand, true
}

// binaryType: операнды не null и не void; для `+` оба из аддитивного
// множества и структурно равны. Сравнения и логические дают bool,
// остальные операторы не проверяются и дают тип левого операнда.
func (tc *typeChecker) binaryType(id ast.ExprID) (types.TypeID, bool) {
	bin, _ := tc.builder.Exprs.Binary(id)
	lhs, ok := tc.typeOf(bin.Left, types.NoTypeID)
	if !ok {
		return types.NoTypeID, false
	}
	rhs, ok := tc.typeOf(bin.Right, types.NoTypeID)
	if !ok {
		return types.NoTypeID, false
	}
	span := tc.exprSpan(id)

	if lhs == types.NoTypeID || rhs == types.NoTypeID || tc.types.IsNull(lhs) || tc.types.IsNull(rhs) {
		return types.NoTypeID, tc.report(diag.SemaNullOperand, span, "cannot be null")
	}
	if !tc.requireValue(bin.Left, lhs) || !tc.requireValue(bin.Right, rhs) {
		return types.NoTypeID, false
	}

	switch {
	case bin.Op == ast.ExprBinaryAdd:
		if !tc.types.IsAdditive(lhs) || !tc.types.IsAdditive(rhs) {
			return types.NoTypeID, tc.report(diag.SemaUnsupportedOperand, span, "this type is not supported for + operation")
		}
		if !tc.types.Equal(lhs, rhs) {
			return types.NoTypeID, tc.report(diag.SemaOperandMismatch, span, "Type mismatch for +, lhs and rhs must be the same type")
		}
		return lhs, true
	case bin.Op.IsComparison(), bin.Op.IsLogical():
		return tc.builtins.Bool, true
	default:
		return lhs, true
	}
}

// requireValue запрещает void (результат void-функции) как значение.
func (tc *typeChecker) requireValue(id ast.ExprID, t types.TypeID) bool {
	if tc.types.Kind(t) == types.KindVoid {
		return tc.report(diag.SemaVoidValue, tc.exprSpan(id), "void value used as an expression")
	}
	return true
}

// callType: вызывать можно только функцию по имени. printf вариадическая,
// у неё проверяется лишь обязательный префикс аргументов.
func (tc *typeChecker) callType(id ast.ExprID) (types.TypeID, bool) {
	call, _ := tc.builder.Exprs.Call(id)
	ident, ok := tc.builder.Exprs.Ident(call.Callee)
	if !ok {
		return types.NoTypeID, tc.report(diag.SemaNotCallable, tc.exprSpan(call.Callee), "Expression is not callable")
	}
	symID, found := tc.scopes.Lookup(ident.Name)
	if !found {
		return types.NoTypeID, tc.report(diag.SemaUnknownIdent, tc.exprSpan(call.Callee), "Unknown identifier `%s`", tc.name(ident.Name))
	}
	sym := tc.scopes.Symbol(symID)
	if sym.Kind != symbols.SymbolFunction || sym.Signature == nil {
		return types.NoTypeID, tc.report(diag.SemaNotCallable, tc.exprSpan(call.Callee), "`%s` is not a function", tc.name(ident.Name))
	}
	sig := sym.Signature
	variadic := sym.Flags&symbols.SymbolFlagBuiltin != 0

	if len(call.Args) < len(sig.Params) || (!variadic && len(call.Args) != len(sig.Params)) {
		return types.NoTypeID, tc.report(diag.SemaArgCount, tc.exprSpan(id),
			"Function `%s` expects %s, got %d", tc.name(ident.Name), plural(len(sig.Params), "argument"), len(call.Args))
	}
	for i, arg := range call.Args {
		want := types.NoTypeID
		if i < len(sig.Params) {
			want = sig.Params[i].Type
		}
		got, ok := tc.typeOf(arg, want)
		if !ok {
			return types.NoTypeID, false
		}
		if want == types.NoTypeID {
			if !tc.requireValue(arg, got) {
				return types.NoTypeID, false
			}
			continue
		}
		if !tc.types.Equal(want, got) {
			return types.NoTypeID, tc.report(diag.SemaTypeMismatch, tc.exprSpan(arg),
				"Type mismatch in argument %d of `%s`, expected %s but got %s", i+1, tc.name(ident.Name), tc.label(want), tc.label(got))
		}
	}
	tc.result.ExprTypes[call.Callee] = sig.Result
	return sig.Result, true
}

func (tc *typeChecker) elementType(id ast.ExprID) (types.TypeID, bool) {
	access, _ := tc.builder.Exprs.ElementAccess(id)
	target, ok := tc.typeOf(access.Target, types.NoTypeID)
	if !ok {
		return types.NoTypeID, false
	}
	elem, isArray := tc.types.Elem(target)
	if !isArray {
		return types.NoTypeID, tc.report(diag.SemaNotIndexable, tc.exprSpan(access.Target), "Cannot index a value of type %s", tc.label(target))
	}
	index, ok := tc.typeOf(access.Index, tc.builtins.Int)
	if !ok {
		return types.NoTypeID, false
	}
	if tc.types.Kind(index) != types.KindInt {
		return types.NoTypeID, tc.report(diag.SemaTypeMismatch, tc.exprSpan(access.Index), "Array index must be int, got %s", tc.label(index))
	}
	return elem, true
}

// arrayLiteralType: с контекстом T[] или T[N] элементы сверяются с T,
// для T[N] ещё и количество. Без контекста тип берётся у первого элемента.
func (tc *typeChecker) arrayLiteralType(id ast.ExprID, expected types.TypeID) (types.TypeID, bool) {
	lit, _ := tc.builder.Exprs.ArrayLiteral(id)

	if want, ok := tc.types.Lookup(expected); ok && want.Kind.IsArrayKind() {
		if want.Kind == types.KindSizedArray {
			if n, err := strconv.Atoi(want.Size); err == nil && n != len(lit.Elems) {
				return types.NoTypeID, tc.report(diag.SemaTypeMismatch, tc.exprSpan(id),
					"Array literal has %s, expected %d", plural(len(lit.Elems), "element"), n)
			}
		}
		for _, elem := range lit.Elems {
			got, ok := tc.typeOf(elem, want.Elem)
			if !ok {
				return types.NoTypeID, false
			}
			if !tc.types.Equal(want.Elem, got) {
				return types.NoTypeID, tc.reportMismatch(tc.exprSpan(elem), want.Elem, got)
			}
		}
		return expected, true
	}

	if len(lit.Elems) == 0 {
		return types.NoTypeID, tc.report(diag.SemaCannotInfer, tc.exprSpan(id), "Cannot infer the type of an empty array literal")
	}
	first, ok := tc.typeOf(lit.Elems[0], types.NoTypeID)
	if !ok {
		return types.NoTypeID, false
	}
	if !tc.requireValue(lit.Elems[0], first) {
		return types.NoTypeID, false
	}
	if tc.types.IsNull(first) {
		return types.NoTypeID, tc.report(diag.SemaCannotInfer, tc.exprSpan(lit.Elems[0]), "Cannot infer the element type from null")
	}
	for _, elem := range lit.Elems[1:] {
		got, ok := tc.typeOf(elem, first)
		if !ok {
			return types.NoTypeID, false
		}
		if !tc.types.Equal(first, got) {
			return types.NoTypeID, tc.reportMismatch(tc.exprSpan(elem), first, got)
		}
	}
	return tc.types.Intern(types.MakeArray(first)), true
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
