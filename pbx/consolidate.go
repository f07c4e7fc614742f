package pbx

import (
	"github.com/signadot/pbxmod/debug"
	"github.com/signadot/pbxmod/ir"
)

// Consolidate rebuilds the flat store from the views, kind by kind in a
// fixed order, followed by the project record and then every record of a
// kind no view covers, in its previous order.  View caches are dropped and
// the graph becomes Consolidated.
func (g *Graph) Consolidate() {
	objects := ir.NewObject()
	known := map[string]bool{projectISA: true}
	add := func(isa string, guids []string, node func(string) *ir.Node) {
		known[isa] = true
		for _, guid := range guids {
			objects.Set(guid, node(guid))
		}
		if debug.Consolidate() {
			debug.Logf("consolidate: %d %s\n", len(guids), isa)
		}
	}
	addView(add, g.BuildFiles())
	addView(add, g.Groups())
	addView(add, g.FileReferences())
	addView(add, g.NativeTargets())
	for _, isa := range PhaseKinds() {
		addView(add, g.BuildPhases(isa))
	}
	addView(add, g.BuildConfigurations())
	addView(add, g.ConfigurationLists())
	objects.Set(g.rootGUID, g.Project().Node())

	for i, f := range g.objects.Fields {
		node := g.objects.Values[i]
		if known[ir.GetString(node, "isa")] {
			continue
		}
		objects.Set(f.String, node)
	}
	g.objects = objects
	g.doc.Set("objects", objects)
	g.views = viewCache{}
	g.state = Consolidated
}

func addView[T Object](add func(string, []string, func(string) *ir.Node), v *View[T]) {
	add(v.ISA(), v.GUIDs(), func(guid string) *ir.Node {
		x, _ := v.Get(guid)
		return x.Node()
	})
}
