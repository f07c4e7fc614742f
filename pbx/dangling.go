package pbx

import (
	"slices"

	"github.com/signadot/pbxmod/ir"
)

// Ref is a GUID reference from one record field to another record.
type Ref struct {
	From  string
	Field string
	To    string
}

var refFields = map[string][]string{
	projectISA:            {"mainGroup", "buildConfigurationList", "targets", "productRefGroup"},
	"PBXGroup":            {"children"},
	"PBXVariantGroup":     {"children"},
	"PBXBuildFile":        {"fileRef"},
	"PBXNativeTarget":     {"buildConfigurationList", "buildPhases", "dependencies", "productReference"},
	"PBXTargetDependency": {"target", "targetProxy"},
	"XCConfigurationList": {"buildConfigurations"},
	FrameworksPhase:       {"files"},
	ResourcesPhase:        {"files"},
	ShellScriptPhase:      {"files"},
	SourcesPhase:          {"files"},
	CopyFilesPhase:        {"files"},
}

// records returns every record of the graph, including view additions not
// yet in the flat store.
func (g *Graph) records() map[string]*ir.Node {
	res := make(map[string]*ir.Node, len(g.objects.Fields))
	for i, f := range g.objects.Fields {
		res[f.String] = g.objects.Values[i]
	}
	v := g.views
	collect(res, v.buildFiles)
	collect(res, v.groups)
	collect(res, v.fileRefs)
	collect(res, v.targets)
	collect(res, v.configs)
	collect(res, v.configLists)
	for _, pv := range v.phases {
		collect(res, pv)
	}
	return res
}

func collect[T Object](dst map[string]*ir.Node, v *View[T]) {
	if v == nil {
		return
	}
	for guid, x := range v.items {
		dst[guid] = x.Node()
	}
}

// Dangling returns the references that do not resolve to a record.  The
// result is sorted by source GUID, then field.
func (g *Graph) Dangling() []Ref {
	recs := g.records()
	var res []Ref
	guids := make([]string, 0, len(recs))
	for guid := range recs {
		guids = append(guids, guid)
	}
	slices.Sort(guids)
	for _, guid := range guids {
		node := recs[guid]
		for _, field := range refFields[ir.GetString(node, "isa")] {
			v := ir.Get(node, field)
			if v == nil {
				continue
			}
			var tos []string
			switch v.Type {
			case ir.StringType:
				tos = []string{v.String}
			case ir.ArrayType:
				tos = v.Strings()
			}
			for _, to := range tos {
				if _, ok := recs[to]; !ok {
					res = append(res, Ref{From: guid, Field: field, To: to})
				}
			}
		}
	}
	return res
}
