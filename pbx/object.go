package pbx

import (
	"path"

	"github.com/signadot/pbxmod/ir"
)

// Object is a record of the graph, keyed by its GUID.
type Object interface {
	GUID() string
	ISA() string
	Node() *ir.Node
	Get(field string) *ir.Node
	Set(field string, v *ir.Node)
}

type record struct {
	g    *Graph
	guid string
	node *ir.Node
}

func (r *record) GUID() string   { return r.guid }
func (r *record) ISA() string    { return ir.GetString(r.node, "isa") }
func (r *record) Node() *ir.Node { return r.node }

func (r *record) Get(field string) *ir.Node {
	return ir.Get(r.node, field)
}

func (r *record) Set(field string, v *ir.Node) {
	r.node.Set(field, v)
	r.g.touch()
}

func (r *record) str(field string) string {
	return ir.GetString(r.node, field)
}

// list returns the list under field, creating an empty one if absent.
func (r *record) list(field string) *ir.Node {
	l := ir.Get(r.node, field)
	if l == nil || l.Type != ir.ArrayType {
		l = ir.FromStrings()
		r.node.Set(field, l)
	}
	return l
}

func (r *record) appendRef(field string, o Object) {
	r.list(field).Append(ir.FromString(o.GUID()))
	r.g.touch()
}

type Group struct{ record }

func (x *Group) Name() string       { return x.str("name") }
func (x *Group) Path() string       { return x.str("path") }
func (x *Group) Children() []string { return ir.Get(x.node, "children").Strings() }

func (x *Group) SourceTree() (SourceTree, error) {
	return ParseSourceTree(x.str("sourceTree"))
}

func (x *Group) HasChild(guid string) bool {
	for _, c := range x.Children() {
		if c == guid {
			return true
		}
	}
	return false
}

func (x *Group) AddChild(o Object) {
	x.appendRef("children", o)
}

type FileReference struct{ record }

// Name returns the name field, or the base of the path when the reference
// is unnamed.
func (x *FileReference) Name() string {
	if n := x.str("name"); n != "" {
		return n
	}
	if p := x.Path(); p != "" {
		return path.Base(p)
	}
	return ""
}

func (x *FileReference) Path() string              { return x.str("path") }
func (x *FileReference) LastKnownFileType() string { return x.str("lastKnownFileType") }

func (x *FileReference) SourceTree() (SourceTree, error) {
	return ParseSourceTree(x.str("sourceTree"))
}

// BuildPhase returns the phase isa implied by the reference's extension.
func (x *FileReference) BuildPhase() string {
	return ImpliedPhase(x.Path())
}

type BuildFile struct{ record }

func (x *BuildFile) FileRef() string { return x.str("fileRef") }

func (x *BuildFile) Weak() bool {
	attrs := ir.Get(ir.Get(x.node, "settings"), "ATTRIBUTES")
	for _, a := range attrs.Strings() {
		if a == "Weak" {
			return true
		}
	}
	return false
}

type BuildPhase struct{ record }

func (x *BuildPhase) Files() []string { return ir.Get(x.node, "files").Strings() }

func (x *BuildPhase) AddBuildFile(bf *BuildFile) {
	x.appendRef("files", bf)
}

type BuildConfiguration struct{ record }

func (x *BuildConfiguration) Name() string { return x.str("name") }

// BuildSettings returns the buildSettings dictionary, creating it if absent.
func (x *BuildConfiguration) BuildSettings() *ir.Node {
	bs := ir.Get(x.node, "buildSettings")
	if bs == nil || bs.Type != ir.ObjectType {
		bs = ir.NewObject()
		x.node.Set("buildSettings", bs)
	}
	return bs
}

// AppendSetting appends values to the list valued setting key.  A scalar
// value already present becomes the first element of the list.
func (x *BuildConfiguration) AppendSetting(key string, values ...string) {
	bs := x.BuildSettings()
	cur := ir.Get(bs, key)
	var l *ir.Node
	switch {
	case cur == nil:
		l = ir.FromStrings()
	case cur.Type == ir.ArrayType:
		l = cur
	default:
		l = ir.FromSlice([]*ir.Node{cur.Clone()})
	}
	for _, v := range values {
		l.Append(ir.FromString(v))
	}
	bs.Set(key, l)
	x.g.touch()
}

// BoolSetting reads the setting key as a YES/NO flag.  Absent settings
// are false.
func (x *BuildConfiguration) BoolSetting(key string) bool {
	return ir.Truth(ir.Get(x.BuildSettings(), key))
}

// SetSetting overwrites the scalar setting key.
func (x *BuildConfiguration) SetSetting(key, value string) {
	x.BuildSettings().Set(key, ir.FromString(value))
	x.g.touch()
}

type ConfigurationList struct{ record }

func (x *ConfigurationList) BuildConfigurations() []string {
	return ir.Get(x.node, "buildConfigurations").Strings()
}
func (x *ConfigurationList) DefaultConfigurationName() string {
	return x.str("defaultConfigurationName")
}

type NativeTarget struct{ record }

func (x *NativeTarget) Name() string                   { return x.str("name") }
func (x *NativeTarget) ProductType() string            { return x.str("productType") }
func (x *NativeTarget) BuildConfigurationList() string { return x.str("buildConfigurationList") }
func (x *NativeTarget) BuildPhases() []string          { return ir.Get(x.node, "buildPhases").Strings() }

type Project struct{ record }

func (x *Project) MainGroup() string              { return x.str("mainGroup") }
func (x *Project) BuildConfigurationList() string { return x.str("buildConfigurationList") }
func (x *Project) Targets() []string              { return ir.Get(x.node, "targets").Strings() }
