package parser

import (
	"gaia/internal/ast"
	"gaia/internal/token"
)

// Таблица приоритетов бинарных операторов: больший приоритет связывает сильнее.
// Все операторы левоассоциативные.
const (
	precNone           = -1
	precLogicalOr      = 0 // ||
	precLogicalAnd     = 1 // &&
	precBitwiseOr      = 2 // |
	precBitwiseAnd     = 3 // &
	precEquality       = 4 // == !=
	precComparison     = 5 // < <= > >=
	precAdditive       = 6 // + -
	precMultiplicative = 7 // * / %
)

type binaryOp struct {
	prec int
	op   ast.ExprBinaryOp
}

var binaryOps = map[token.Kind]binaryOp{
	token.OrOr:    {precLogicalOr, ast.ExprBinaryLogicalOr},
	token.AndAnd:  {precLogicalAnd, ast.ExprBinaryLogicalAnd},
	token.Pipe:    {precBitwiseOr, ast.ExprBinaryBitOr},
	token.Amp:     {precBitwiseAnd, ast.ExprBinaryBitAnd},
	token.EqEq:    {precEquality, ast.ExprBinaryEq},
	token.BangEq:  {precEquality, ast.ExprBinaryNotEq},
	token.Lt:      {precComparison, ast.ExprBinaryLess},
	token.LtEq:    {precComparison, ast.ExprBinaryLessEq},
	token.Gt:      {precComparison, ast.ExprBinaryGreater},
	token.GtEq:    {precComparison, ast.ExprBinaryGreaterEq},
	token.Plus:    {precAdditive, ast.ExprBinaryAdd},
	token.Minus:   {precAdditive, ast.ExprBinarySub},
	token.Star:    {precMultiplicative, ast.ExprBinaryMul},
	token.Slash:   {precMultiplicative, ast.ExprBinaryDiv},
	token.Percent: {precMultiplicative, ast.ExprBinaryMod},
}

// getBinaryOperatorPrec returns precNone for non-operators.
func getBinaryOperatorPrec(kind token.Kind) (int, ast.ExprBinaryOp) {
	if b, ok := binaryOps[kind]; ok {
		return b.prec, b.op
	}
	return precNone, 0
}

func getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.ExprUnaryNeg, true
	case token.Bang:
		return ast.ExprUnaryNot, true
	}
	return 0, false
}
