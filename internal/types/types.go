package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind is the discriminator of a type descriptor.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindFloat
	KindChar
	KindString
	KindNull
	KindArray      // T[]
	KindSizedArray // T[N]
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindChar:
		return "char"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindSizedArray:
		return "sized array"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor. Elem is set for array kinds; Size keeps the
// literal text of N for sized arrays and is compared textually.
type Type struct {
	Kind Kind
	Elem TypeID
	Size string
}

// MakeArray describes T[].
func MakeArray(elem TypeID) Type {
	return Type{Kind: KindArray, Elem: elem}
}

// MakeSizedArray describes T[size].
func MakeSizedArray(elem TypeID, size string) Type {
	return Type{Kind: KindSizedArray, Elem: elem, Size: size}
}

// IsArrayKind reports T[] and T[N].
func (k Kind) IsArrayKind() bool {
	return k == KindArray || k == KindSizedArray
}
