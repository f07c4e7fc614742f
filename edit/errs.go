package edit

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrUnknownPhase = errors.New("unknown build phase")
)
