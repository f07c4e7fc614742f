package mod

import "errors"

var (
	ErrDescriptor = errors.New("bad modification descriptor")
	ErrEntry      = errors.New("bad entry")
)
