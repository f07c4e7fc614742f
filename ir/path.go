package ir

import (
	"strconv"
	"strings"
)

// Path returns a $-rooted path to y, used in error messages and integrity
// reports, e.g. $.objects.'0A1B'.children[2].
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 && !startsWithDigit(f) {
			return prefix + f
		}
		return prefix + "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

func startsWithDigit(s string) bool {
	return s[0] >= '0' && s[0] <= '9'
}
