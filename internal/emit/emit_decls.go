package emit

import (
	"fmt"
	"strings"

	"gaia/internal/ast"
	"gaia/internal/types"
)

// emitTypeDecls: struct, interface (таблица указателей на функции), enum.
func (e *Emitter) emitTypeDecls() error {
	wrote := false
	for _, id := range e.file.Stmts {
		stmt := e.builder.Stmts.Get(id)
		var err error
		switch stmt.Kind {
		case ast.StmtStructDecl, ast.StmtInterfaceDecl:
			err = e.emitRecord(id)
		case ast.StmtEnumDecl:
			e.emitEnum(id)
		default:
			continue
		}
		if err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		e.sink.WriteLine("")
	}
	return nil
}

func (e *Emitter) emitRecord(id ast.StmtID) error {
	decl, _ := e.builder.Stmts.TypeDecl(id)
	name := cName(e.name(decl.Name))
	e.line("typedef struct " + name + " {")
	e.indent++
	for _, memberID := range decl.Members {
		m := e.builder.Stmts.Member(memberID)
		var field string
		var err error
		switch m.Kind {
		case ast.MemberProperty:
			field, err = e.cDecl(e.res.ExprTypes[m.Type], cName(e.name(m.Name)))
		case ast.MemberMethod:
			field, err = e.methodPointer(m)
		}
		if err != nil {
			return err
		}
		e.line(field + ";")
	}
	e.indent--
	e.line("} " + name + ";")
	return nil
}

// methodPointer: R (*name)(params)
func (e *Emitter) methodPointer(m *ast.Member) (string, error) {
	params, err := e.paramList(m.Params)
	if err != nil {
		return "", err
	}
	result := e.builtinsVoid()
	if m.Type.IsValid() {
		result = e.res.ExprTypes[m.Type]
	}
	return e.cDecl(result, "(*"+cName(e.name(m.Name))+")("+params+")")
}

func (e *Emitter) emitEnum(id ast.StmtID) {
	decl, _ := e.builder.Stmts.TypeDecl(id)
	name := cName(e.name(decl.Name))
	items := make([]string, 0, len(decl.Members))
	for _, memberID := range decl.Members {
		m := e.builder.Stmts.Member(memberID)
		item := cName(e.name(m.Name))
		if m.Value.IsValid() {
			item += " = " + e.enumValue(m.Value)
		}
		items = append(items, item)
	}
	e.line("typedef enum " + name + " { " + strings.Join(items, ", ") + " } " + name + ";")
}

func (e *Emitter) enumValue(id ast.ExprID) string {
	if un, ok := e.builder.Exprs.Unary(id); ok {
		return "-" + e.enumValue(un.Operand)
	}
	lit, _ := e.builder.Exprs.Literal(id)
	return e.name(lit.Value)
}

// paramList: "int a, double b" или "void" для пустого списка.
func (e *Emitter) paramList(params []ast.ExprID) (string, error) {
	if len(params) == 0 {
		return "void", nil
	}
	parts := make([]string, 0, len(params))
	for _, id := range params {
		param, _ := e.builder.Exprs.Param(id)
		t, err := e.typeOf(id)
		if err != nil {
			return "", err
		}
		decl, err := e.cDecl(t, cName(e.name(param.Name)))
		if err != nil {
			return "", err
		}
		parts = append(parts, decl)
	}
	return strings.Join(parts, ", "), nil
}

// signature: "int add(int a, int b)"; void main() становится int main(void).
func (e *Emitter) signature(fn *ast.FuncDeclData) (string, error) {
	name := e.name(fn.Name)
	if name == "main" && !fn.Result.IsValid() && len(fn.Params) == 0 {
		return "int main(void)", nil
	}
	params, err := e.paramList(fn.Params)
	if err != nil {
		return "", err
	}
	result := e.builtinsVoid()
	if fn.Result.IsValid() {
		if result, err = e.typeOf(fn.Result); err != nil {
			return "", err
		}
	}
	return e.cDecl(result, cName(name)+"("+params+")")
}

// emitPrototypes объявляет все функции заранее: в C порядок важен,
// а в исходнике функции видны друг другу в любом порядке.
func (e *Emitter) emitPrototypes() error {
	wrote := false
	for _, id := range e.file.Stmts {
		fn, ok := e.builder.Stmts.FuncDecl(id)
		if !ok {
			continue
		}
		sig, err := e.signature(fn)
		if err != nil {
			return err
		}
		e.line(sig + ";")
		wrote = true
	}
	if wrote {
		e.sink.WriteLine("")
	}
	return nil
}

func (e *Emitter) emitGlobals() error {
	wrote := false
	for _, id := range e.file.Stmts {
		if e.builder.Stmts.Get(id).Kind != ast.StmtVarDecl {
			continue
		}
		if err := e.emitVarDecl(id); err != nil {
			return err
		}
		wrote = true
	}
	if wrote {
		e.sink.WriteLine("")
	}
	return nil
}

func (e *Emitter) emitVarDecl(id ast.StmtID) error {
	decl, _ := e.builder.Stmts.VarDecl(id)
	t, err := e.varType(decl)
	if err != nil {
		return err
	}
	text, err := e.cDecl(t, cName(e.name(decl.Name)))
	if err != nil {
		return err
	}
	if decl.Value.IsValid() {
		init, err := e.initializer(decl.Value, t)
		if err != nil {
			return err
		}
		text += " = " + init
	}
	e.line(text + ";")
	return nil
}

func (e *Emitter) emitFunctions() error {
	for _, id := range e.file.Stmts {
		fn, ok := e.builder.Stmts.FuncDecl(id)
		if !ok {
			continue
		}
		if err := e.emitFunc(fn); err != nil {
			return fmt.Errorf("function %s: %w", e.name(fn.Name), err)
		}
		e.sink.WriteLine("")
	}
	return nil
}

func (e *Emitter) emitFunc(fn *ast.FuncDeclData) error {
	sig, err := e.signature(fn)
	if err != nil {
		return err
	}
	e.fnIsMain = strings.HasPrefix(sig, "int main(")
	defer func() { e.fnIsMain = false }()

	e.line(sig + " {")
	e.indent++
	block, _ := e.builder.Stmts.Block(fn.Body)
	for _, stmtID := range block.Stmts {
		if err := e.emitStmt(stmtID); err != nil {
			return err
		}
	}
	if e.fnIsMain {
		e.line("return 0;")
	}
	e.indent--
	e.line("}")
	return nil
}

func (e *Emitter) builtinsVoid() types.TypeID {
	return e.types.Builtins().Void
}
