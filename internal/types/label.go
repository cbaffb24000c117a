package types

import "strings"

// Label renders a type the way it is written in source, e.g. int[3][].
func Label(typesIn *Interner, id TypeID) string {
	if typesIn == nil {
		return "?"
	}
	var suffix []string
	for depth := 0; depth < 32; depth++ {
		tt, ok := typesIn.Lookup(id)
		if !ok {
			return "?" + strings.Join(suffix, "")
		}
		switch tt.Kind {
		case KindArray:
			suffix = append(suffix, "[]")
			id = tt.Elem
		case KindSizedArray:
			suffix = append(suffix, "["+tt.Size+"]")
			id = tt.Elem
		default:
			// суффиксы собраны снаружи внутрь, печатаем в обратном порядке
			var b strings.Builder
			b.WriteString(tt.Kind.String())
			for i := len(suffix) - 1; i >= 0; i-- {
				b.WriteString(suffix[i])
			}
			return b.String()
		}
	}
	return "..."
}
