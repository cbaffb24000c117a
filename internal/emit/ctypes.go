package emit

import (
	"fmt"
	"strings"

	"gaia/internal/types"
)

// cDecl строит C-декларатор для типа и имени. T[N] раскрывается в суффикс
// [N], T[] превращается в указатель; указатель перед суффиксом берётся в скобки:
//
//	int[3][2]  ->  int g[2][3]
//	int[3][]   ->  int (*g)[3]
//	int[][3]   ->  int *g[3]
//
// Пустое имя даёт абстрактный декларатор для приведений и compound literal.
func (e *Emitter) cDecl(t types.TypeID, name string) (string, error) {
	inner := name
	for depth := 0; depth < 64; depth++ {
		tt, ok := e.types.Lookup(t)
		if !ok {
			return "", fmt.Errorf("emit: unknown type for %q", name)
		}
		switch tt.Kind {
		case types.KindSizedArray:
			if strings.HasPrefix(inner, "*") {
				inner = "(" + inner + ")"
			}
			inner += "[" + tt.Size + "]"
			t = tt.Elem
		case types.KindArray:
			inner = "*" + inner
			t = tt.Elem
		default:
			base, err := cBase(tt.Kind)
			if err != nil {
				return "", err
			}
			if inner == "" {
				return base, nil
			}
			return base + " " + inner, nil
		}
	}
	return "", fmt.Errorf("emit: type of %q is nested too deeply", name)
}

func cBase(k types.Kind) (string, error) {
	switch k {
	case types.KindInt:
		return "int", nil
	case types.KindFloat:
		return "double", nil
	case types.KindChar:
		return "char", nil
	case types.KindString:
		return "const char*", nil
	case types.KindBool:
		return "bool", nil
	case types.KindVoid:
		return "void", nil
	default:
		return "", fmt.Errorf("emit: no C representation for %s", k)
	}
}

var cKeywords = map[string]struct{}{
	"auto": {}, "case": {}, "const": {}, "continue": {}, "default": {},
	"double": {}, "extern": {}, "goto": {}, "inline": {}, "long": {},
	"register": {}, "restrict": {}, "short": {}, "signed": {}, "sizeof": {},
	"static": {}, "switch": {}, "typedef": {}, "union": {}, "unsigned": {},
	"volatile": {}, "NULL": {},
}

// cName экранирует имена, совпадающие с ключевыми словами C.
func cName(name string) string {
	if _, reserved := cKeywords[name]; reserved {
		return name + "_"
	}
	return name
}
