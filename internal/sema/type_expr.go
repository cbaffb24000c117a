package sema

import (
	"gaia/internal/ast"
	"gaia/internal/diag"
	"gaia/internal/types"
)

// resolveType переводит синтаксис типа в TypeID. Синтаксис строит только
// парсер, поэтому на неизвестном узле возвращаем NoTypeID без диагностики.
func (tc *typeChecker) resolveType(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	expr := tc.builder.Exprs.Get(id)
	if expr == nil {
		return types.NoTypeID
	}
	var out types.TypeID
	switch expr.Kind {
	case ast.ExprKeywordType:
		kw, _ := tc.builder.Exprs.KeywordType(id)
		out = tc.keywordType(kw.Keyword)
	case ast.ExprArrayType:
		arr, _ := tc.builder.Exprs.ArrayType(id)
		if elem := tc.resolveType(arr.Elem); elem != types.NoTypeID {
			out = tc.types.Intern(types.MakeArray(elem))
		}
	case ast.ExprSizedArrayType:
		arr, _ := tc.builder.Exprs.SizedArrayType(id)
		if elem := tc.resolveType(arr.Elem); elem != types.NoTypeID {
			out = tc.types.Intern(types.MakeSizedArray(elem, tc.name(arr.Size)))
		}
	}
	if out != types.NoTypeID {
		tc.result.ExprTypes[id] = out
	}
	return out
}

func (tc *typeChecker) keywordType(kw ast.TypeKeyword) types.TypeID {
	switch kw {
	case ast.TypeKwInt:
		return tc.builtins.Int
	case ast.TypeKwFloat:
		return tc.builtins.Float
	case ast.TypeKwChar:
		return tc.builtins.Char
	case ast.TypeKwString:
		return tc.builtins.String
	case ast.TypeKwBool:
		return tc.builtins.Bool
	case ast.TypeKwVoid:
		return tc.builtins.Void
	default:
		return types.NoTypeID
	}
}

// resultType: отсутствующий тип результата означает void.
func (tc *typeChecker) resultType(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return tc.builtins.Void
	}
	return tc.resolveType(id)
}

// valueType запрещает void там, где нужно значение (переменные, параметры, поля).
func (tc *typeChecker) valueType(id ast.ExprID, what string) (types.TypeID, bool) {
	t := tc.resolveType(id)
	if tc.containsVoid(t) {
		return t, tc.report(diag.SemaVoidValue, tc.exprSpan(id), "%s cannot have type %s", what, tc.label(t))
	}
	return t, true
}

// containsVoid reports void itself or an array of void at any depth.
func (tc *typeChecker) containsVoid(t types.TypeID) bool {
	for i := 0; i < 64; i++ {
		elem, ok := tc.types.Elem(t)
		if !ok {
			return tc.types.Kind(t) == types.KindVoid
		}
		t = elem
	}
	return false
}
