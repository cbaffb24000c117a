package emit

import (
	"gaia/internal/ast"
)

func (e *Emitter) emitStmt(id ast.StmtID) error {
	stmt := e.builder.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtBlock:
		e.line("{")
		if err := e.emitBlockBody(id); err != nil {
			return err
		}
		e.line("}")
		return nil
	case ast.StmtVarDecl:
		return e.emitVarDecl(id)
	case ast.StmtAssign, ast.StmtElementAssign:
		data, _ := e.builder.Stmts.Assign(id)
		target, err := e.expr(data.Target)
		if err != nil {
			return err
		}
		t, err := e.typeOf(data.Target)
		if err != nil {
			return err
		}
		value, err := e.valueFor(data.Value, t)
		if err != nil {
			return err
		}
		e.line(target + " = " + value + ";")
		return nil
	case ast.StmtIf:
		return e.emitIf(id, "")
	case ast.StmtWhile:
		data, _ := e.builder.Stmts.Loop(id)
		cond, err := e.expr(data.Cond)
		if err != nil {
			return err
		}
		e.line("while (" + unparen(cond) + ") {")
		if err := e.emitBlockBody(data.Body); err != nil {
			return err
		}
		e.line("}")
		return nil
	case ast.StmtDoWhile:
		data, _ := e.builder.Stmts.Loop(id)
		cond, err := e.expr(data.Cond)
		if err != nil {
			return err
		}
		e.line("do {")
		if err := e.emitBlockBody(data.Body); err != nil {
			return err
		}
		e.line("} while (" + unparen(cond) + ");")
		return nil
	case ast.StmtBreak:
		e.line("break;")
		return nil
	case ast.StmtReturn:
		data, _ := e.builder.Stmts.Return(id)
		if !data.Value.IsValid() {
			if e.fnIsMain {
				e.line("return 0;")
			} else {
				e.line("return;")
			}
			return nil
		}
		t, err := e.typeOf(data.Value)
		if err != nil {
			return err
		}
		value, err := e.valueFor(data.Value, t)
		if err != nil {
			return err
		}
		e.line("return " + value + ";")
		return nil
	case ast.StmtExpr:
		data, _ := e.builder.Stmts.ExprStmt(id)
		text, err := e.expr(data.Expr)
		if err != nil {
			return err
		}
		e.line(unparen(text) + ";")
		return nil
	}
	return nil
}

// emitBlockBody печатает операторы блока с отступом, без скобок.
func (e *Emitter) emitBlockBody(id ast.StmtID) error {
	block, _ := e.builder.Stmts.Block(id)
	e.indent++
	defer func() { e.indent-- }()
	for _, stmtID := range block.Stmts {
		if err := e.emitStmt(stmtID); err != nil {
			return err
		}
	}
	return nil
}

// emitIf печатает цепочку if / else if / else; prefix равен "} else " для звеньев.
func (e *Emitter) emitIf(id ast.StmtID, prefix string) error {
	data, _ := e.builder.Stmts.If(id)
	cond, err := e.expr(data.Cond)
	if err != nil {
		return err
	}
	e.line(prefix + "if (" + unparen(cond) + ") {")
	if err := e.emitBlockBody(data.Then); err != nil {
		return err
	}
	if !data.Else.IsValid() {
		e.line("}")
		return nil
	}
	if e.builder.Stmts.Get(data.Else).Kind == ast.StmtIf {
		return e.emitIf(data.Else, "} else ")
	}
	e.line("} else {")
	if err := e.emitBlockBody(data.Else); err != nil {
		return err
	}
	e.line("}")
	return nil
}
