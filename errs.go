package pbxmod

import "errors"

var (
	ErrPath = errors.New("bad project path")
	ErrIO   = errors.New("i/o error")
)
