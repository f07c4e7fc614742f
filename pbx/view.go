package pbx

import (
	"iter"
	"maps"
	"slices"

	"github.com/signadot/pbxmod/ir"
)

// View is a GUID keyed collection of one kind of record.  It is built by a
// single scan of the flat store and holds the authoritative set of records
// of its kind until the next consolidation.
type View[T Object] struct {
	g     *Graph
	isa   string
	items map[string]T
}

func newView[T Object](g *Graph, isa string, wrap func(record) T) *View[T] {
	v := &View[T]{g: g, isa: isa, items: map[string]T{}}
	objects := g.objects
	for i, f := range objects.Fields {
		node := objects.Values[i]
		if ir.GetString(node, "isa") != isa {
			continue
		}
		v.items[f.String] = wrap(record{g: g, guid: f.String, node: node})
	}
	return v
}

func (v *View[T]) ISA() string { return v.isa }
func (v *View[T]) Len() int    { return len(v.items) }

func (v *View[T]) Get(guid string) (T, bool) {
	x, ok := v.items[guid]
	return x, ok
}

// Add registers x.  The flat store does not see it until consolidation.
func (v *View[T]) Add(x T) {
	v.items[x.GUID()] = x
	v.g.guids[x.GUID()] = true
	v.g.touch()
}

func (v *View[T]) GUIDs() []string {
	return slices.Sorted(maps.Keys(v.items))
}

// All iterates the records in GUID order.
func (v *View[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, guid := range v.GUIDs() {
			if !yield(guid, v.items[guid]) {
				return
			}
		}
	}
}

// Values returns the records in GUID order.
func (v *View[T]) Values() []T {
	res := make([]T, 0, len(v.items))
	for _, x := range v.All() {
		res = append(res, x)
	}
	return res
}
