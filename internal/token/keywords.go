package token

var keywords = map[string]Kind{
	"package":   KwPackage,
	"import":    KwImport,
	"var":       KwVar,
	"func":      KwFunc,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"do":        KwDo,
	"for":       KwFor,
	"break":     KwBreak,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"interface": KwInterface,
	"true":      KwTrue,
	"false":     KwFalse,
	"null":      KwNull,
	"int":       KwInt,
	"float":     KwFloat,
	"char":      KwChar,
	"string":    KwString,
	"bool":      KwBool,
	"void":      KwVoid,
}

// LookupKeyword returns the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
