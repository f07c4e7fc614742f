package libdiff

import (
	"slices"
	"strings"

	"github.com/signadot/pbxmod/ir"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "modified"
	}
}

// ObjectChange describes one record that differs between two objects
// dictionaries.
type ObjectChange struct {
	GUID string
	ISA  string
	Kind ChangeKind
}

// Objects compares two objects dictionaries by GUID.  The result is sorted
// by GUID.  Field order within records is ignored.
func Objects(from, to *ir.Node) []ObjectChange {
	fm, tm := ir.ToMap(from), ir.ToMap(to)
	var res []ObjectChange
	for guid, f := range fm {
		t, ok := tm[guid]
		switch {
		case !ok:
			res = append(res, ObjectChange{GUID: guid, ISA: ir.GetString(f, "isa"), Kind: Removed})
		case !ir.Equal(f, t):
			res = append(res, ObjectChange{GUID: guid, ISA: ir.GetString(t, "isa"), Kind: Modified})
		}
	}
	for guid, t := range tm {
		if _, ok := fm[guid]; !ok {
			res = append(res, ObjectChange{GUID: guid, ISA: ir.GetString(t, "isa"), Kind: Added})
		}
	}
	slices.SortFunc(res, func(a, b ObjectChange) int {
		return strings.Compare(a.GUID, b.GUID)
	})
	return res
}
