package pbx

import (
	"errors"
	"fmt"
)

var (
	ErrIntegrity = errors.New("integrity error")
	ErrMutation  = errors.New("mutation error")
	ErrDraft     = errors.New("graph has unconsolidated changes")
)

// IntegrityError reports a decoded document that does not have the shape
// of a project: missing top level keys or an unresolved root or main group.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIntegrity, e.Msg)
}

func (e *IntegrityError) Unwrap() error { return ErrIntegrity }

func integrityErr(format string, args ...any) error {
	return &IntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// MutationError reports misuse of the graph API, such as an invalid source
// tree name.
type MutationError struct {
	Msg string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMutation, e.Msg)
}

func (e *MutationError) Unwrap() error { return ErrMutation }

func MutationErr(format string, args ...any) error {
	return &MutationError{Msg: fmt.Sprintf(format, args...)}
}
