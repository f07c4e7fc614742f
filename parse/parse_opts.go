package parse

import (
	"github.com/signadot/pbxmod/ir"
	"github.com/signadot/pbxmod/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the start position of every decoded node in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
