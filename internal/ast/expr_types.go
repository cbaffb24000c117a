package ast

import (
	"gaia/internal/source"
)

// ExprKind enumerates expression and type-expression nodes.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprStringLit
	ExprCharLit
	ExprBoolLit
	ExprNullLit
	ExprUnary
	ExprBinary
	ExprCall
	// ExprElementAccess is target[index]; chains nest left to right.
	ExprElementAccess
	ExprArrayLiteral
	// Type expressions.
	ExprArrayType
	ExprSizedArrayType
	ExprKeywordType
	// ExprParam is a function or method parameter `name: T`.
	ExprParam
)

var exprKindNames = [...]string{
	ExprIdent:          "Ident",
	ExprIntLit:         "IntLit",
	ExprFloatLit:       "FloatLit",
	ExprStringLit:      "StringLit",
	ExprCharLit:        "CharLit",
	ExprBoolLit:        "BoolLit",
	ExprNullLit:        "NullLit",
	ExprUnary:          "Unary",
	ExprBinary:         "Binary",
	ExprCall:           "Call",
	ExprElementAccess:  "ElementAccess",
	ExprArrayLiteral:   "ArrayLiteral",
	ExprArrayType:      "ArrayType",
	ExprSizedArrayType: "SizedArrayType",
	ExprKeywordType:    "KeywordType",
	ExprParam:          "Param",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// IsLiteral reports literal kinds, null included.
func (k ExprKind) IsLiteral() bool {
	return k >= ExprIntLit && k <= ExprNullLit
}

// IsType reports type-expression kinds.
func (k ExprKind) IsType() bool {
	return k >= ExprArrayType && k <= ExprKeywordType
}

// Expr is one node of the expression arena.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	ExprUnaryNeg ExprUnaryOp = iota // -x
	ExprUnaryNot                    // !x
)

func (op ExprUnaryOp) String() string {
	if op == ExprUnaryNot {
		return "!"
	}
	return "-"
}

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	// Арифметические
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	// Сравнения
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
	ExprBinaryEq
	ExprBinaryNotEq

	// Битовые и логические
	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr
)

var binaryOpText = [...]string{
	ExprBinaryAdd:        "+",
	ExprBinarySub:        "-",
	ExprBinaryMul:        "*",
	ExprBinaryDiv:        "/",
	ExprBinaryMod:        "%",
	ExprBinaryLess:       "<",
	ExprBinaryLessEq:     "<=",
	ExprBinaryGreater:    ">",
	ExprBinaryGreaterEq:  ">=",
	ExprBinaryEq:         "==",
	ExprBinaryNotEq:      "!=",
	ExprBinaryBitAnd:     "&",
	ExprBinaryBitOr:      "|",
	ExprBinaryLogicalAnd: "&&",
	ExprBinaryLogicalOr:  "||",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsComparison reports relational and equality operators.
func (op ExprBinaryOp) IsComparison() bool {
	return op >= ExprBinaryLess && op <= ExprBinaryNotEq
}

// IsLogical reports && and ||.
func (op ExprBinaryOp) IsLogical() bool {
	return op == ExprBinaryLogicalAnd || op == ExprBinaryLogicalOr
}

// TypeKeyword is a primitive type marker.
type TypeKeyword uint8

const (
	TypeKwInt TypeKeyword = iota
	TypeKwFloat
	TypeKwChar
	TypeKwString
	TypeKwBool
	TypeKwVoid
)

var typeKeywordText = [...]string{
	TypeKwInt:    "int",
	TypeKwFloat:  "float",
	TypeKwChar:   "char",
	TypeKwString: "string",
	TypeKwBool:   "bool",
	TypeKwVoid:   "void",
}

func (k TypeKeyword) String() string {
	if int(k) < len(typeKeywordText) {
		return typeKeywordText[k]
	}
	return "?"
}

type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData keeps the literal exactly as written.
type ExprLiteralData struct {
	Value source.StringID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprElementAccessData struct {
	Target ExprID
	Index  ExprID
}

type ExprArrayLiteralData struct {
	Elems []ExprID
}

// ExprArrayTypeData is T[].
type ExprArrayTypeData struct {
	Elem ExprID
}

// ExprSizedArrayTypeData is T[N]; Size keeps the literal text of N.
type ExprSizedArrayTypeData struct {
	Elem ExprID
	Size source.StringID
}

type ExprKeywordTypeData struct {
	Keyword TypeKeyword
}

type ExprParamData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     ExprID
}
