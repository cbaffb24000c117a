package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnterminatedString       Code = 1001
	LexUnterminatedChar         Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexEmptyChar                Code = 1004

	// Синтаксические
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectPackage      Code = 2006
	SynImportAfterDecl    Code = 2007
	SynUnexpectedTopLevel Code = 2008
	SynBadArraySuffix     Code = 2009
	SynExpectBlock        Code = 2010
	SynUnclosedDelimiter  Code = 2011
	SynUndeclaredIdent    Code = 2012
	SynRedeclared         Code = 2013
	SynBadAssignTarget    Code = 2014

	// Семантические
	SemaInfo               Code = 3000
	SemaUnknownIdent       Code = 3001
	SemaRedeclared         Code = 3002
	SemaTypeMismatch       Code = 3003
	SemaMissingInit        Code = 3004
	SemaNullOperand        Code = 3005
	SemaUnsupportedOperand Code = 3006
	SemaOperandMismatch    Code = 3007
	SemaEmptyModule        Code = 3008
	SemaDuplicateMember    Code = 3009
	SemaBadEnumValue       Code = 3010
	SemaNotCallable        Code = 3011
	SemaArgCount           Code = 3012
	SemaNotIndexable       Code = 3013
	SemaVoidValue          Code = 3014
	SemaReturnMismatch     Code = 3015
	SemaBreakOutsideLoop   Code = 3016
	SemaBadCondition       Code = 3017
	SemaCannotInfer        Code = 3018
	SemaNotAssignable      Code = 3019
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedChar:         "Unterminated character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexEmptyChar:                "Empty character literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expect semicolon",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectType:               "Expect type",
	SynExpectExpression:         "Expect expression",
	SynExpectPackage:            "Expect package clause",
	SynImportAfterDecl:          "Import after declaration",
	SynUnexpectedTopLevel:       "Unexpected top level",
	SynBadArraySuffix:           "Malformed array suffix",
	SynExpectBlock:              "Expect block",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUndeclaredIdent:          "Undeclared identifier",
	SynRedeclared:               "Redeclared identifier",
	SynBadAssignTarget:          "Invalid assignment target",
	SemaInfo:                    "Semantic information",
	SemaUnknownIdent:            "Unknown identifier",
	SemaRedeclared:              "Already declared",
	SemaTypeMismatch:            "Type mismatch",
	SemaMissingInit:             "Missing initializer",
	SemaNullOperand:             "Null operand",
	SemaUnsupportedOperand:      "Unsupported operand type",
	SemaOperandMismatch:         "Operand type mismatch",
	SemaEmptyModule:             "Empty module specifier",
	SemaDuplicateMember:         "Duplicate member",
	SemaBadEnumValue:            "Invalid enum value",
	SemaNotCallable:             "Not callable",
	SemaArgCount:                "Wrong argument count",
	SemaNotIndexable:            "Not indexable",
	SemaVoidValue:               "Void used as value",
	SemaReturnMismatch:          "Return type mismatch",
	SemaBreakOutsideLoop:        "Break outside loop",
	SemaBadCondition:            "Condition is not bool",
	SemaCannotInfer:             "Cannot infer type",
	SemaNotAssignable:           "Not assignable",
}

// ID renders the stable identifier, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	}
	return "E0000"
}

// Title returns the short description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Phase returns the pipeline phase the code belongs to.
func (c Code) Phase() Phase {
	switch {
	case c >= 1000 && c < 2000:
		return PhaseScan
	case c >= 2000 && c < 3000:
		return PhaseParse
	case c >= 3000 && c < 4000:
		return PhaseCheck
	}
	return PhaseUnknown
}
