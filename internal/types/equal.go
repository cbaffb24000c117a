package types

// Equal is the structural equality rule:
//   - T[] equals U[] iff T equals U;
//   - T[N] equals U[M] iff N and M match textually and T equals U;
//   - any other pair is equal iff the kinds match.
//
// Unknown ids are equal to nothing.
func (in *Interner) Equal(a, b TypeID) bool {
	ta, okA := in.Lookup(a)
	tb, okB := in.Lookup(b)
	if !okA || !okB {
		return false
	}
	if ta.Kind != tb.Kind {
		return false
	}
	switch ta.Kind {
	case KindArray:
		return in.Equal(ta.Elem, tb.Elem)
	case KindSizedArray:
		return ta.Size == tb.Size && in.Equal(ta.Elem, tb.Elem)
	default:
		return true
	}
}

// IsAdditive reports the operand set accepted by `+`.
func (in *Interner) IsAdditive(id TypeID) bool {
	switch in.Kind(id) {
	case KindInt, KindFloat, KindChar, KindString:
		return true
	default:
		return false
	}
}

// IsNull reports the type of the `null` literal.
func (in *Interner) IsNull(id TypeID) bool {
	return in.Kind(id) == KindNull
}
