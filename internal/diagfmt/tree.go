package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gaia/internal/ast"
	"gaia/internal/source"
)

type treeNode struct {
	Label    string      `json:"label"`
	Children []*treeNode `json:"children,omitempty"`
}

func (n *treeNode) add(children ...*treeNode) *treeNode {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func leaf(format string, args ...any) *treeNode {
	return &treeNode{Label: fmt.Sprintf(format, args...)}
}

type treeBuilder struct {
	b  *ast.Builder
	fs *source.FileSet
}

func (tb treeBuilder) span(sp source.Span) string {
	if tb.fs == nil || int(sp.File) >= tb.fs.Len() {
		return sp.String()
	}
	start, end := tb.fs.Resolve(sp)
	return fmt.Sprintf("%d,%d-%d,%d", start.Line, start.Col, end.Line, end.Col)
}

func (tb treeBuilder) file(id ast.FileID) *treeNode {
	file := tb.b.Files.Get(id)
	if file == nil {
		return leaf("File[%d]: <nil>", id)
	}
	header := "File"
	if tb.fs != nil && int(file.Span.File) < tb.fs.Len() {
		header = tb.fs.Get(file.Span.File).FormatPath("auto", tb.fs.BaseDir())
	}
	root := leaf("%s (%s)", header, tb.span(file.Span))
	if file.Package.IsValid() {
		root.add(tb.stmt(file.Package))
	}
	for _, st := range file.Stmts {
		root.add(tb.stmt(st))
	}
	return root
}

func (tb treeBuilder) stmt(id ast.StmtID) *treeNode {
	st := tb.b.Stmts.Get(id)
	if st == nil {
		return leaf("Stmt[%d]: <nil>", id)
	}
	node := leaf("%s (%s)", st.Kind, tb.span(st.Span))
	s := tb.b.Stmts
	switch st.Kind {
	case ast.StmtPackage:
		if d, ok := s.Package(id); ok {
			node.add(leaf("Name: %s", tb.b.Name(d.Name)))
		}
	case ast.StmtImport:
		if d, ok := s.Import(id); ok {
			node.add(leaf("Path: %q", tb.b.Name(d.Path)))
		}
	case ast.StmtVarDecl:
		if d, ok := s.VarDecl(id); ok {
			node.add(leaf("Name: %s", tb.b.Name(d.Name)))
			node.add(tb.labelled("Type", d.Type), tb.labelled("Value", d.Value))
		}
	case ast.StmtFuncDecl:
		if d, ok := s.FuncDecl(id); ok {
			node.add(leaf("Name: %s", tb.b.Name(d.Name)))
			params := leaf("Params")
			for _, p := range d.Params {
				params.add(tb.expr(p))
			}
			node.add(params)
			if d.Result.IsValid() {
				node.add(tb.labelled("Result", d.Result))
			} else {
				node.add(leaf("Result: void"))
			}
			node.add(tb.stmt(d.Body))
		}
	case ast.StmtStructDecl, ast.StmtInterfaceDecl, ast.StmtEnumDecl:
		if d, ok := s.TypeDecl(id); ok {
			node.add(leaf("Name: %s", tb.b.Name(d.Name)))
			for _, m := range d.Members {
				node.add(tb.member(m))
			}
		}
	case ast.StmtBlock:
		if d, ok := s.Block(id); ok {
			for _, c := range d.Stmts {
				node.add(tb.stmt(c))
			}
		}
	case ast.StmtAssign, ast.StmtElementAssign:
		if d, ok := s.Assign(id); ok {
			node.add(tb.labelled("Target", d.Target), tb.labelled("Value", d.Value))
		}
	case ast.StmtIf:
		if d, ok := s.If(id); ok {
			node.add(tb.labelled("Cond", d.Cond), tb.stmt(d.Then))
			if d.Else.IsValid() {
				node.add(leaf("Else").add(tb.stmt(d.Else)))
			}
		}
	case ast.StmtWhile, ast.StmtDoWhile:
		if d, ok := s.Loop(id); ok {
			node.add(tb.labelled("Cond", d.Cond), tb.stmt(d.Body))
		}
	case ast.StmtReturn:
		if d, ok := s.Return(id); ok {
			node.add(tb.labelled("Value", d.Value))
		}
	case ast.StmtExpr:
		if d, ok := s.ExprStmt(id); ok {
			node.add(tb.expr(d.Expr))
		}
	}
	return node
}

func (tb treeBuilder) member(id ast.MemberID) *treeNode {
	m := tb.b.Stmts.Member(id)
	node := leaf("%s %s (%s)", m.Kind, tb.b.Name(m.Name), tb.span(m.Span))
	if m.Kind == ast.MemberMethod {
		params := leaf("Params")
		for _, p := range m.Params {
			params.add(tb.expr(p))
		}
		node.add(params)
	}
	node.add(tb.labelled("Type", m.Type), tb.labelled("Value", m.Value))
	return node
}

// labelled returns nil for a missing expression so add skips it.
func (tb treeBuilder) labelled(label string, id ast.ExprID) *treeNode {
	if !id.IsValid() {
		return nil
	}
	return leaf("%s", label).add(tb.expr(id))
}

func (tb treeBuilder) expr(id ast.ExprID) *treeNode {
	e := tb.b.Exprs.Get(id)
	if e == nil {
		return leaf("Expr[%d]: <nil>", id)
	}
	x := tb.b.Exprs
	sp := tb.span(e.Span)
	switch e.Kind {
	case ast.ExprIdent:
		if d, ok := x.Ident(id); ok {
			return leaf("Ident %s (%s)", tb.b.Name(d.Name), sp)
		}
	case ast.ExprIntLit, ast.ExprFloatLit, ast.ExprStringLit, ast.ExprCharLit, ast.ExprBoolLit, ast.ExprNullLit:
		if d, ok := x.Literal(id); ok {
			return leaf("%s %s (%s)", e.Kind, tb.b.Name(d.Value), sp)
		}
	case ast.ExprUnary:
		if d, ok := x.Unary(id); ok {
			return leaf("Unary %s (%s)", d.Op, sp).add(tb.expr(d.Operand))
		}
	case ast.ExprBinary:
		if d, ok := x.Binary(id); ok {
			return leaf("Binary %s (%s)", d.Op, sp).add(tb.expr(d.Left), tb.expr(d.Right))
		}
	case ast.ExprCall:
		if d, ok := x.Call(id); ok {
			node := leaf("Call (%s)", sp).add(tb.labelled("Callee", d.Callee))
			args := leaf("Args")
			for _, a := range d.Args {
				args.add(tb.expr(a))
			}
			return node.add(args)
		}
	case ast.ExprElementAccess:
		if d, ok := x.ElementAccess(id); ok {
			return leaf("ElementAccess (%s)", sp).add(tb.expr(d.Target), tb.expr(d.Index))
		}
	case ast.ExprArrayLiteral:
		if d, ok := x.ArrayLiteral(id); ok {
			node := leaf("ArrayLiteral (%s)", sp)
			for _, el := range d.Elems {
				node.add(tb.expr(el))
			}
			return node
		}
	case ast.ExprArrayType, ast.ExprSizedArrayType, ast.ExprKeywordType:
		return leaf("Type %s (%s)", tb.typeText(id), sp)
	case ast.ExprParam:
		if d, ok := x.Param(id); ok {
			return leaf("Param %s: %s (%s)", tb.b.Name(d.Name), tb.typeText(d.Type), sp)
		}
	}
	return leaf("%s (%s)", e.Kind, sp)
}

// typeText восстанавливает запись типа, например int[3][].
func (tb treeBuilder) typeText(id ast.ExprID) string {
	x := tb.b.Exprs
	if d, ok := x.KeywordType(id); ok {
		return d.Keyword.String()
	}
	if d, ok := x.ArrayType(id); ok {
		return tb.typeText(d.Elem) + "[]"
	}
	if d, ok := x.SizedArrayType(id); ok {
		return tb.typeText(d.Elem) + "[" + tb.b.Name(d.Size) + "]"
	}
	return "?"
}

// FormatASTTree prints the syntax tree of fileID with box-drawing guides.
func FormatASTTree(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	root := treeBuilder{b: builder, fs: fs}.file(fileID)
	var sb strings.Builder
	sb.WriteString(root.Label)
	sb.WriteByte('\n')
	writeChildren(&sb, root.Children, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatASTJSON prints the same tree as nested {label, children} objects.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(treeBuilder{b: builder, fs: fs}.file(fileID))
}

func writeChildren(sb *strings.Builder, children []*treeNode, prefix string) {
	for i, c := range children {
		last := i == len(children)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		sb.WriteString(prefix + branch + c.Label + "\n")
		writeChildren(sb, c.Children, prefix+next)
	}
}
