package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pbxmod/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrEmpty    = fmt.Errorf("%w: empty document", ErrParse)
	ErrEOF      = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing data after root value", ErrParse)
)

// Error is a decode failure located at a 1-based line and column.  It
// matches ErrParse under errors.Is, as well as its underlying cause.
type Error struct {
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

func newError(pos *token.Pos, err error, format string, args ...any) *Error {
	line, col := pos.LineCol()
	return &Error{
		Line:   line,
		Column: col,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}

// fromTokenizeErr re-homes a tokenizer failure as an *Error.
func fromTokenizeErr(err error) error {
	var terr *token.TokenizeErr
	if !errors.As(err, &terr) {
		return err
	}
	line, col := terr.Pos.LineCol()
	return &Error{
		Line:   line,
		Column: col,
		Msg:    terr.Err.Error(),
		Err:    terr.Err,
	}
}
