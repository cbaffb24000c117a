package emit

import (
	"fmt"
	"strings"

	"gaia/internal/ast"
	"gaia/internal/types"
)

// в C литерал не может содержать перевод строки
var cLineBreaks = strings.NewReplacer("\r", `\r`, "\n", `\n`)

var binaryC = map[ast.ExprBinaryOp]string{
	ast.ExprBinaryAdd:        "+",
	ast.ExprBinarySub:        "-",
	ast.ExprBinaryMul:        "*",
	ast.ExprBinaryDiv:        "/",
	ast.ExprBinaryMod:        "%",
	ast.ExprBinaryLess:       "<",
	ast.ExprBinaryLessEq:     "<=",
	ast.ExprBinaryGreater:    ">",
	ast.ExprBinaryGreaterEq:  ">=",
	ast.ExprBinaryEq:         "==",
	ast.ExprBinaryNotEq:      "!=",
	ast.ExprBinaryBitAnd:     "&",
	ast.ExprBinaryBitOr:      "|",
	ast.ExprBinaryLogicalAnd: "&&",
	ast.ExprBinaryLogicalOr:  "||",
}

// expr печатает выражение; бинарные всегда в скобках.
func (e *Emitter) expr(id ast.ExprID) (string, error) {
	x := e.builder.Exprs.Get(id)
	if x == nil {
		return "", fmt.Errorf("emit: missing expression %d", id)
	}
	switch x.Kind {
	case ast.ExprIdent:
		ident, _ := e.builder.Exprs.Ident(id)
		return cName(e.name(ident.Name)), nil

	case ast.ExprStringLit:
		lit, _ := e.builder.Exprs.Literal(id)
		return cLineBreaks.Replace(e.name(lit.Value)), nil

	case ast.ExprIntLit, ast.ExprFloatLit, ast.ExprCharLit, ast.ExprBoolLit:
		lit, _ := e.builder.Exprs.Literal(id)
		return e.name(lit.Value), nil

	case ast.ExprNullLit:
		return "NULL", nil

	case ast.ExprUnary:
		un, _ := e.builder.Exprs.Unary(id)
		operand, err := e.expr(un.Operand)
		if err != nil {
			return "", err
		}
		if un.Op == ast.ExprUnaryNot {
			return "!" + operand, nil
		}
		return "-" + operand, nil

	case ast.ExprBinary:
		return e.binary(id)

	case ast.ExprCall:
		call, _ := e.builder.Exprs.Call(id)
		callee, err := e.expr(call.Callee)
		if err != nil {
			return "", err
		}
		args := make([]string, 0, len(call.Args))
		for _, arg := range call.Args {
			t, err := e.typeOf(arg)
			if err != nil {
				return "", err
			}
			text, err := e.valueFor(arg, t)
			if err != nil {
				return "", err
			}
			args = append(args, unparen(text))
		}
		return callee + "(" + strings.Join(args, ", ") + ")", nil

	case ast.ExprElementAccess:
		access, _ := e.builder.Exprs.ElementAccess(id)
		target, err := e.expr(access.Target)
		if err != nil {
			return "", err
		}
		index, err := e.expr(access.Index)
		if err != nil {
			return "", err
		}
		return target + "[" + unparen(index) + "]", nil

	case ast.ExprArrayLiteral:
		t, err := e.typeOf(id)
		if err != nil {
			return "", err
		}
		return e.compoundLiteral(id, t)
	}
	return "", fmt.Errorf("emit: unexpected %s in expression position", x.Kind)
}

// binary: строковый `+` уходит в gaia_concat.
func (e *Emitter) binary(id ast.ExprID) (string, error) {
	bin, _ := e.builder.Exprs.Binary(id)
	lhs, err := e.expr(bin.Left)
	if err != nil {
		return "", err
	}
	rhs, err := e.expr(bin.Right)
	if err != nil {
		return "", err
	}
	if bin.Op == ast.ExprBinaryAdd {
		if t, ok := e.res.ExprTypes[bin.Left]; ok && e.types.Kind(t) == types.KindString {
			return "gaia_concat(" + unparen(lhs) + ", " + unparen(rhs) + ")", nil
		}
	}
	return "(" + lhs + " " + binaryC[bin.Op] + " " + rhs + ")", nil
}

// initializer: для T[N] допустим голый {...}, иначе обычное значение.
func (e *Emitter) initializer(id ast.ExprID, t types.TypeID) (string, error) {
	if lit, ok := e.builder.Exprs.ArrayLiteral(id); ok && e.types.Kind(t) == types.KindSizedArray {
		return e.braceList(lit.Elems, t)
	}
	return e.valueFor(id, t)
}

// valueFor печатает выражение в контексте типа t (нужно литералам массивов).
func (e *Emitter) valueFor(id ast.ExprID, t types.TypeID) (string, error) {
	if _, ok := e.builder.Exprs.ArrayLiteral(id); ok {
		return e.compoundLiteral(id, t)
	}
	return e.expr(id)
}

// compoundLiteral: (T[]){...}, то есть C99 compound literal.
func (e *Emitter) compoundLiteral(id ast.ExprID, t types.TypeID) (string, error) {
	lit, _ := e.builder.Exprs.ArrayLiteral(id)
	elem, ok := e.types.Elem(t)
	if !ok {
		return "", fmt.Errorf("emit: array literal has non-array type %s", types.Label(e.types, t))
	}
	elemDecl, err := e.cDecl(elem, "")
	if err != nil {
		return "", err
	}
	body, err := e.braceList(lit.Elems, t)
	if err != nil {
		return "", err
	}
	size := ""
	if tt, _ := e.types.Lookup(t); tt.Kind == types.KindSizedArray {
		size = tt.Size
	}
	return "(" + arrayOf(elemDecl, size) + ")" + body, nil
}

// braceList: {e1, e2}; вложенные T[N] внутри T[M] тоже идут голыми скобками.
func (e *Emitter) braceList(elems []ast.ExprID, t types.TypeID) (string, error) {
	elemType, _ := e.types.Elem(t)
	parts := make([]string, 0, len(elems))
	for _, id := range elems {
		var text string
		var err error
		if lit, ok := e.builder.Exprs.ArrayLiteral(id); ok && e.types.Kind(elemType) == types.KindSizedArray {
			text, err = e.braceList(lit.Elems, elemType)
		} else {
			text, err = e.valueFor(id, elemType)
		}
		if err != nil {
			return "", err
		}
		parts = append(parts, unparen(text))
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

// arrayOf: абстрактный декларатор массива элементов decl.
//
//	int      -> int[]
//	int[3]   -> int[][3]
//	int (*)[3] -> int (*[])[3]
func arrayOf(decl, size string) string {
	if i := strings.IndexAny(decl, "[("); i >= 0 {
		if decl[i] == '(' {
			// указатель на массив: вставляем внутрь скобок
			j := strings.Index(decl, ")")
			return decl[:j] + "[" + size + "]" + decl[j:]
		}
		return decl[:i] + "[" + size + "]" + decl[i:]
	}
	return decl + "[" + size + "]"
}

// unparen снимает одну внешнюю пару скобок, если она охватывает всё.
// Содержимое строковых и символьных литералов не считается.
func unparen(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return s
			}
		}
	}
	return s[1 : len(s)-1]
}
