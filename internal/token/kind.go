package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a token produced after a fatal lexical error.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Unknown is a character the scanner cannot classify.
	Unknown

	// Ident represents an identifier token.
	Ident

	// IntLit is a decimal integer literal.
	IntLit
	// FloatLit is a decimal literal with a fractional part.
	FloatLit
	// StringLit is a double-quoted string literal.
	StringLit
	// CharLit is a single-quoted character literal.
	CharLit

	KwPackage   // package
	KwImport    // import
	KwVar       // var
	KwFunc      // func
	KwReturn    // return
	KwIf        // if
	KwElse      // else
	KwWhile     // while
	KwDo        // do
	KwFor       // for
	KwBreak     // break
	KwStruct    // struct
	KwEnum      // enum
	KwInterface // interface
	KwTrue      // true
	KwFalse     // false
	KwNull      // null
	KwInt       // int
	KwFloat     // float
	KwChar      // char
	KwString    // string
	KwBool      // bool
	KwVoid      // void

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Dot       // .

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Assign  // =
	Bang    // !
	Lt      // <
	Gt      // >
	Amp     // &
	Pipe    // |

	AndAnd // &&
	OrOr   // ||
	EqEq   // ==
	BangEq // !=
	LtEq   // <=
	GtEq   // >=
	Arrow  // ->

	kindCount
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Unknown:     "Unknown",
	Ident:       "Ident",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	KwPackage:   "KwPackage",
	KwImport:    "KwImport",
	KwVar:       "KwVar",
	KwFunc:      "KwFunc",
	KwReturn:    "KwReturn",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwWhile:     "KwWhile",
	KwDo:        "KwDo",
	KwFor:       "KwFor",
	KwBreak:     "KwBreak",
	KwStruct:    "KwStruct",
	KwEnum:      "KwEnum",
	KwInterface: "KwInterface",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	KwNull:      "KwNull",
	KwInt:       "KwInt",
	KwFloat:     "KwFloat",
	KwChar:      "KwChar",
	KwString:    "KwString",
	KwBool:      "KwBool",
	KwVoid:      "KwVoid",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Comma:       "Comma",
	Semicolon:   "Semicolon",
	Colon:       "Colon",
	Dot:         "Dot",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Percent:     "Percent",
	Assign:      "Assign",
	Bang:        "Bang",
	Lt:          "Lt",
	Gt:          "Gt",
	Amp:         "Amp",
	Pipe:        "Pipe",
	AndAnd:      "AndAnd",
	OrOr:        "OrOr",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	LtEq:        "LtEq",
	GtEq:        "GtEq",
	Arrow:       "Arrow",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsTypeKeyword reports whether k names a primitive type.
func (k Kind) IsTypeKeyword() bool {
	switch k {
	case KwInt, KwFloat, KwChar, KwString, KwBool, KwVoid:
		return true
	default:
		return false
	}
}
