// Package fuzztests houses Go fuzz harnesses for the gaia front end
// (source -> lexer -> parser -> sema -> emit). They guard against panics,
// hangs and broken span nesting on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
