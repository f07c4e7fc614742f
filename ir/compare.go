package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}

	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Int64, b.Int64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Integer < String < List < Dictionary
func rank(t Type) int {
	switch t {
	case NumberType:
		return 0
	case StringType:
		return 1
	case ArrayType:
		return 2
	case ObjectType:
		return 3
	}
	return 100
}

func compareArrays(a, b *Node) int {
	minLen := min(len(a.Values), len(b.Values))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

// compareObjects compares dictionaries by their sorted keys, so insertion
// order does not affect the result.
func compareObjects(a, b *Node) int {
	ka, kb := sortedIndex(a), sortedIndex(b)
	minLen := min(len(ka), len(kb))
	for i := 0; i < minLen; i++ {
		fa, fb := a.Fields[ka[i]], b.Fields[kb[i]]
		if c := strings.Compare(fa.String, fb.String); c != 0 {
			return c
		}
		if c := Compare(a.Values[ka[i]], b.Values[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

func sortedIndex(y *Node) []int {
	idx := make([]int, len(y.Fields))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(i, j int) int {
		return strings.Compare(y.Fields[i].String, y.Fields[j].String)
	})
	return idx
}

// Equal reports whether a and b hold the same value.  List order matters,
// dictionary key order does not.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
