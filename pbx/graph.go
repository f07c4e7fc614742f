package pbx

import (
	"encoding/hex"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/signadot/pbxmod/encode"
	"github.com/signadot/pbxmod/ir"
)

// State is the lifecycle state of a Graph.
type State int

const (
	// Consolidated graphs have a flat store that reflects every view.
	Consolidated State = iota
	// Draft graphs hold view additions not yet merged into the flat store.
	Draft
)

func (s State) String() string {
	switch s {
	case Consolidated:
		return "consolidated"
	case Draft:
		return "draft"
	}
	return "<unknown state>"
}

const projectISA = "PBXProject"

// Graph is a decoded project: the top level document plus the GUID keyed
// flat store of records under "objects".
type Graph struct {
	doc      *ir.Node
	objects  *ir.Node
	rootGUID string
	state    State
	modified bool
	guids    map[string]bool
	views    viewCache
}

type viewCache struct {
	buildFiles  *View[*BuildFile]
	groups      *View[*Group]
	fileRefs    *View[*FileReference]
	targets     *View[*NativeTarget]
	phases      map[string]*View[*BuildPhase]
	configs     *View[*BuildConfiguration]
	configLists *View[*ConfigurationList]
	project     *Project
}

// FromNode builds a graph over a decoded document.  The graph takes
// ownership of doc.
func FromNode(doc *ir.Node) (*Graph, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, integrityErr("document is not a dictionary")
	}
	objects := ir.Get(doc, "objects")
	if objects == nil {
		return nil, integrityErr("missing objects")
	}
	if objects.Type != ir.ObjectType {
		return nil, integrityErr("objects is a %s", objects.Type)
	}
	guids := make(map[string]bool, len(objects.Fields))
	for i, f := range objects.Fields {
		if v := objects.Values[i]; v.Type != ir.ObjectType {
			return nil, integrityErr("record %s is a %s", f.String, v.Type)
		}
		guids[f.String] = true
	}
	rootNode := ir.Get(doc, "rootObject")
	if rootNode == nil || rootNode.Type != ir.StringType {
		return nil, integrityErr("missing rootObject")
	}
	rootGUID := rootNode.String
	proj := ir.Get(objects, rootGUID)
	if proj == nil {
		return nil, integrityErr("rootObject %s does not resolve", rootGUID)
	}
	if isa := ir.GetString(proj, "isa"); isa != projectISA {
		return nil, integrityErr("rootObject %s is a %q, not a %s", rootGUID, isa, projectISA)
	}
	mainGroup := ir.GetString(proj, "mainGroup")
	if mg := ir.Get(objects, mainGroup); mg == nil || ir.GetString(mg, "isa") != "PBXGroup" {
		return nil, integrityErr("mainGroup %q does not resolve to a PBXGroup", mainGroup)
	}
	if ir.Get(doc, "archiveVersion") == nil {
		doc.Set("archiveVersion", ir.FromInt(1))
	}
	if ir.Get(doc, "classes") == nil {
		doc.Set("classes", ir.NewObject())
	}
	if ir.Get(doc, "objectVersion") == nil {
		doc.Set("objectVersion", ir.FromInt(46))
	}
	return &Graph{
		doc:      doc,
		objects:  objects,
		rootGUID: rootGUID,
		guids:    guids,
	}, nil
}

func (g *Graph) State() State   { return g.state }
func (g *Graph) Modified() bool { return g.modified }

func (g *Graph) touch() {
	g.state = Draft
	g.modified = true
}

// Node returns the whole document.  Records added through views appear in
// it only after Consolidate.
func (g *Graph) Node() *ir.Node { return g.doc }

// Objects returns the flat store.
func (g *Graph) Objects() *ir.Node { return g.objects }

func (g *Graph) RootObject() string { return g.rootGUID }

func (g *Graph) ArchiveVersion() int64 { return ir.Get(g.doc, "archiveVersion").Int64 }
func (g *Graph) ObjectVersion() int64  { return ir.Get(g.doc, "objectVersion").Int64 }
func (g *Graph) Classes() *ir.Node     { return ir.Get(g.doc, "classes") }

// Encode writes the graph as a project file.  It fails with ErrDraft when
// there are unconsolidated additions.
func (g *Graph) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	if g.state == Draft {
		return ErrDraft
	}
	opts = append([]encode.EncodeOption{encode.EncodeHeader(true), encode.EncodeSections(true)}, opts...)
	return encode.Encode(g.doc, w, opts...)
}

// NewGUID returns an identifier that is not yet used in the graph: 24
// upper case hex digits.
func (g *Graph) NewGUID() string {
	for {
		u := uuid.New()
		s := strings.ToUpper(hex.EncodeToString(u[:12]))
		if !g.guids[s] {
			g.guids[s] = true
			return s
		}
	}
}

func (g *Graph) newRecord(isa string) record {
	node := ir.NewObject()
	node.Set("isa", ir.FromString(isa))
	return record{g: g, guid: g.NewGUID(), node: node}
}

func (g *Graph) Project() *Project {
	if g.views.project == nil {
		g.views.project = &Project{record{g: g, guid: g.rootGUID, node: ir.Get(g.objects, g.rootGUID)}}
	}
	return g.views.project
}

func (g *Graph) MainGroup() *Group {
	mg, _ := g.Groups().Get(g.Project().MainGroup())
	return mg
}

func (g *Graph) BuildFiles() *View[*BuildFile] {
	if g.views.buildFiles == nil {
		g.views.buildFiles = newView(g, "PBXBuildFile", func(r record) *BuildFile { return &BuildFile{r} })
	}
	return g.views.buildFiles
}

func (g *Graph) Groups() *View[*Group] {
	if g.views.groups == nil {
		g.views.groups = newView(g, "PBXGroup", func(r record) *Group { return &Group{r} })
	}
	return g.views.groups
}

func (g *Graph) FileReferences() *View[*FileReference] {
	if g.views.fileRefs == nil {
		g.views.fileRefs = newView(g, "PBXFileReference", func(r record) *FileReference { return &FileReference{r} })
	}
	return g.views.fileRefs
}

func (g *Graph) NativeTargets() *View[*NativeTarget] {
	if g.views.targets == nil {
		g.views.targets = newView(g, "PBXNativeTarget", func(r record) *NativeTarget { return &NativeTarget{r} })
	}
	return g.views.targets
}

// BuildPhases returns the view of the given phase kind, or nil if isa is
// not a build phase.
func (g *Graph) BuildPhases(isa string) *View[*BuildPhase] {
	if !IsPhase(isa) {
		return nil
	}
	if g.views.phases == nil {
		g.views.phases = map[string]*View[*BuildPhase]{}
	}
	v := g.views.phases[isa]
	if v == nil {
		v = newView(g, isa, func(r record) *BuildPhase { return &BuildPhase{r} })
		g.views.phases[isa] = v
	}
	return v
}

func (g *Graph) BuildConfigurations() *View[*BuildConfiguration] {
	if g.views.configs == nil {
		g.views.configs = newView(g, "XCBuildConfiguration", func(r record) *BuildConfiguration { return &BuildConfiguration{r} })
	}
	return g.views.configs
}

func (g *Graph) ConfigurationLists() *View[*ConfigurationList] {
	if g.views.configLists == nil {
		g.views.configLists = newView(g, "XCConfigurationList", func(r record) *ConfigurationList { return &ConfigurationList{r} })
	}
	return g.views.configLists
}

// NewFileReference creates and registers a reference to p.
func (g *Graph) NewFileReference(p string, tree SourceTree) *FileReference {
	r := g.newRecord("PBXFileReference")
	if ft := FileType(p); ft != "" {
		if textual(ft) && ImpliedPhase(p) != FrameworksPhase {
			r.node.Set("fileEncoding", ir.FromInt(4))
		}
		r.node.Set("lastKnownFileType", ir.FromString(ft))
	}
	r.node.Set("name", ir.FromString(path.Base(p)))
	r.node.Set("path", ir.FromString(p))
	r.node.Set("sourceTree", ir.FromString(tree.String()))
	x := &FileReference{r}
	g.FileReferences().Add(x)
	return x
}

// NewGroup creates and registers a group.  Empty name or path fields are
// omitted.
func (g *Graph) NewGroup(name, p string) *Group {
	r := g.newRecord("PBXGroup")
	r.node.Set("children", ir.FromStrings())
	if name != "" {
		r.node.Set("name", ir.FromString(name))
	}
	if p != "" {
		r.node.Set("path", ir.FromString(p))
	}
	r.node.Set("sourceTree", ir.FromString(TreeGroup.String()))
	x := &Group{r}
	g.Groups().Add(x)
	return x
}

// NewBuildFile creates and registers a build file for ref.
func (g *Graph) NewBuildFile(ref *FileReference, weak bool) *BuildFile {
	r := g.newRecord("PBXBuildFile")
	r.node.Set("fileRef", ir.FromString(ref.GUID()))
	if weak {
		settings := ir.NewObject()
		settings.Set("ATTRIBUTES", ir.FromStrings("Weak"))
		r.node.Set("settings", settings)
	}
	x := &BuildFile{r}
	g.BuildFiles().Add(x)
	return x
}

// FileByName returns the first file reference, in GUID order, whose name
// is name.  Directories are not compared.
func (g *Graph) FileByName(name string) (*FileReference, bool) {
	if name == "" {
		return nil, false
	}
	for _, fr := range g.FileReferences().All() {
		if fr.Name() == name {
			return fr, true
		}
	}
	return nil, false
}

// Group finds the child group of parent named name, or creates it.  A
// candidate without a name matches when its path equals p, or name when p
// is empty, so an explicit p takes precedence over name for unnamed
// groups.  A nil parent is the main group.
func (g *Graph) Group(name, p string, parent *Group) *Group {
	if name == "" {
		return nil
	}
	if parent == nil {
		parent = g.MainGroup()
	}
	want := p
	if want == "" {
		want = name
	}
	for guid, cand := range g.Groups().All() {
		if !parent.HasChild(guid) {
			continue
		}
		if cn := cand.Name(); cn != "" {
			if cn == name {
				return cand
			}
			continue
		}
		if cand.Path() == want {
			return cand
		}
	}
	res := g.NewGroup(name, p)
	parent.AddChild(res)
	return res
}

// ParentGroup returns the group listing guid as a child.
func (g *Graph) ParentGroup(guid string) (*Group, bool) {
	for _, grp := range g.Groups().All() {
		if grp.HasChild(guid) {
			return grp, true
		}
	}
	return nil, false
}
