package diag

import (
	"fmt"
	"strings"

	"gaia/internal/source"
)

// Phase names the pipeline stage that produced a diagnostic.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseScan
	PhaseParse
	PhaseCheck
)

func (p Phase) String() string {
	switch p {
	case PhaseScan:
		return "ScanError"
	case PhaseParse:
		return "ParseError"
	case PhaseCheck:
		return "CheckError"
	default:
		return "Error"
	}
}

// Error is the fail-fast error value of a compilation unit.
// Its position is resolved when the error is built.
type Error struct {
	Phase   Phase
	Code    Code
	Path    string
	Pos     source.LineCol
	Span    source.Span
	Message string
}

// Error renders "<line>,<column>: <message>.".
func (e *Error) Error() string {
	return fmt.Sprintf("%d,%d: %s.", e.Pos.Line, e.Pos.Col, strings.TrimSuffix(e.Message, "."))
}

// ErrorFrom resolves d against fs. fs may be nil, leaving the position zero.
func ErrorFrom(d Diagnostic, fs *source.FileSet) *Error {
	e := &Error{
		Phase:   d.Code.Phase(),
		Code:    d.Code,
		Span:    d.Primary,
		Message: d.Message,
	}
	if fs != nil && int(d.Primary.File) < fs.Len() {
		e.Pos, _ = fs.Resolve(d.Primary)
		e.Path = fs.Get(d.Primary.File).Path
	}
	return e
}

// FirstError converts the first error in bag into an *Error, or returns nil.
func FirstError(bag *Bag, fs *source.FileSet) error {
	if bag == nil {
		return nil
	}
	d, ok := bag.FirstError()
	if !ok {
		return nil
	}
	return ErrorFrom(d, fs)
}
