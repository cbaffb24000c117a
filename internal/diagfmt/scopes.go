package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"gaia/internal/symbols"
	"gaia/internal/types"
)

// FormatScopes prints the frame tree under root with the symbols declared in
// each frame. typesIn may be nil; symbol types are then omitted.
func FormatScopes(w io.Writer, table *symbols.Table, root symbols.ScopeID, typesIn *types.Interner) error {
	var sb strings.Builder
	writeScope(&sb, table, root, typesIn, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeScope(sb *strings.Builder, table *symbols.Table, id symbols.ScopeID, typesIn *types.Interner, depth int) {
	scope := table.Scopes.Get(id)
	if scope == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%sscope#%d %s (%d symbols)\n", indent, id, scope.Kind, len(scope.Symbols))
	for _, symID := range scope.Symbols {
		sym := table.Symbols.Get(symID)
		if sym == nil {
			continue
		}
		fmt.Fprintf(sb, "%s  - %s %s", indent, sym.Kind, table.NameOf(symID))
		if typesIn != nil && sym.Type != types.NoTypeID {
			fmt.Fprintf(sb, ": %s", types.Label(typesIn, sym.Type))
		}
		if flags := sym.Flags.Strings(); len(flags) > 0 {
			fmt.Fprintf(sb, " [%s]", strings.Join(flags, ", "))
		}
		sb.WriteByte('\n')
	}
	for _, child := range scope.Children {
		writeScope(sb, table, child, typesIn, depth+1)
	}
}
