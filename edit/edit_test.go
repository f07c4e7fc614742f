package edit

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/signadot/pbxmod/ir"
	"github.com/signadot/pbxmod/mod"
	"github.com/signadot/pbxmod/parse"
	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectRoot = "/proj"

func newEditor(t *testing.T, files ...string) (*Editor, afero.Fs) {
	t.Helper()
	d, err := os.ReadFile("../testdata/Sample.xcodeproj/project.pbxproj")
	require.NoError(t, err)
	node, err := parse.Parse(d)
	require.NoError(t, err)
	g, err := pbx.FromNode(node)
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(projectRoot, 0o755))
	for _, f := range files {
		if strings.HasSuffix(f, "/") {
			require.NoError(t, fs.MkdirAll(f, 0o755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}
	return New(g, WithFS(fs), WithProjectRoot(projectRoot)), fs
}

func guids(g *pbx.Graph) []string {
	return g.Objects().Keys()
}

func refsNamed(g *pbx.Graph, name string) []*pbx.FileReference {
	var res []*pbx.FileReference
	for _, fr := range g.FileReferences().All() {
		if fr.Name() == name {
			res = append(res, fr)
		}
	}
	return res
}

func settingsOf(g *pbx.Graph, key string) map[string][]string {
	res := map[string][]string{}
	for guid, bc := range g.BuildConfigurations().All() {
		v := ir.Get(bc.BuildSettings(), key)
		switch {
		case v == nil:
			res[guid] = nil
		case v.Type == ir.ArrayType:
			res[guid] = v.Strings()
		default:
			res[guid] = []string{v.String}
		}
	}
	return res
}

func childGroup(t *testing.T, g *pbx.Graph, parent *pbx.Group, name string) *pbx.Group {
	t.Helper()
	for _, c := range parent.Children() {
		if grp, ok := g.Groups().Get(c); ok && (grp.Name() == name || grp.Name() == "" && grp.Path() == name) {
			return grp
		}
	}
	t.Fatalf("no group %q under %s", name, parent.GUID())
	return nil
}

func phaseFiles(g *pbx.Graph, isa string) []*pbx.BuildFile {
	var res []*pbx.BuildFile
	for _, ph := range g.BuildPhases(isa).All() {
		for _, guid := range ph.Files() {
			if bf, ok := g.BuildFiles().Get(guid); ok {
				res = append(res, bf)
			}
		}
	}
	return res
}

func requireRoundTrip(t *testing.T, g *pbx.Graph) {
	t.Helper()
	require.Equal(t, pbx.Consolidated, g.State())
	buf := &bytes.Buffer{}
	require.NoError(t, g.Encode(buf))
	node, err := parse.Parse(buf.Bytes())
	require.NoError(t, err)
	g2, err := pbx.FromNode(node)
	require.NoError(t, err)
	a, b := guids(g), guids(g2)
	slices.Sort(a)
	slices.Sort(b)
	assert.Equal(t, a, b)
	assert.True(t, ir.Equal(g.Node(), g2.Node()))
	assert.Empty(t, g2.Dangling())
}

func TestApplyEmpty(t *testing.T) {
	e, _ := newEditor(t)
	g := e.Graph()
	before := slices.Sorted(slices.Values(guids(g)))
	ldflags := settingsOf(g, OtherLinkerFlags)
	nBuildFiles := g.BuildFiles().Len()
	orig := g.Node().Clone()

	rep, err := e.ApplyMod(&mod.Descriptor{})
	require.NoError(t, err)
	assert.Empty(t, rep.Added)
	assert.NoError(t, rep.Err())
	assert.Equal(t, before, slices.Sorted(slices.Values(guids(g))))
	assert.Equal(t, nBuildFiles, g.BuildFiles().Len())
	assert.Equal(t, ldflags, settingsOf(g, OtherLinkerFlags))
	assert.Nil(t, settingsOf(g, HeaderSearchPaths)["00000000000000000000000C"])
	assert.True(t, ir.Equal(orig, g.Node()))
	assert.False(t, g.Modified())
}

func TestApplyLib(t *testing.T) {
	e, _ := newEditor(t)
	g := e.Graph()
	nBuildFiles := g.BuildFiles().Len()

	rep, err := e.ApplyMod(&mod.Descriptor{Libs: []mod.Entry{{Name: "libsqlite3.dylib"}}})
	require.NoError(t, err)
	require.Len(t, rep.Added, 1)
	fr := refsNamed(g, "libsqlite3.dylib")
	require.Len(t, fr, 1)
	assert.Equal(t, "usr/lib/libsqlite3.dylib", fr[0].Path())
	tree, err := fr[0].SourceTree()
	require.NoError(t, err)
	assert.Equal(t, pbx.TreeSDKRoot, tree)
	assert.Equal(t, "compiled.mach-o.dylib", fr[0].LastKnownFileType())

	assert.Equal(t, nBuildFiles+1, g.BuildFiles().Len())
	bfs := phaseFiles(g, pbx.FrameworksPhase)
	require.Len(t, bfs, 1)
	assert.Equal(t, fr[0].GUID(), bfs[0].FileRef())
	assert.False(t, bfs[0].Weak())

	libs := childGroup(t, g, g.MainGroup(), LibrariesGroup)
	assert.True(t, libs.HasChild(fr[0].GUID()))
	// SDK references do not add search paths
	assert.Nil(t, settingsOf(g, LibrarySearchPaths)["00000000000000000000000C"])
	requireRoundTrip(t, g)
}

func TestApplyWeakLib(t *testing.T) {
	d, err := mod.Parse("", []byte(`{"libs": ["libsqlite3.0.dylib:weak"]}`))
	require.NoError(t, err)
	e, _ := newEditor(t)
	g := e.Graph()
	_, err = e.ApplyMod(d)
	require.NoError(t, err)
	fr := refsNamed(g, "libsqlite3.0.dylib")
	require.Len(t, fr, 1)
	assert.Equal(t, "usr/lib/libsqlite3.0.dylib", fr[0].Path())
	bfs := phaseFiles(g, pbx.FrameworksPhase)
	require.Len(t, bfs, 1)
	assert.True(t, bfs[0].Weak())
}

func TestApplyFrameworks(t *testing.T) {
	d, err := mod.Parse("", []byte(`{"frameworks": ["Security.framework", "Social.framework:weak", "Accounts.framework"]}`))
	require.NoError(t, err)
	e, _ := newEditor(t)
	g := e.Graph()
	rep, err := e.ApplyMod(d)
	require.NoError(t, err)

	names := []string{}
	for _, fr := range rep.Added {
		names = append(names, fr.Name())
	}
	assert.Equal(t, []string{"Security.framework", "Social.framework", "Accounts.framework"}, names)

	weak := []bool{}
	for _, bf := range phaseFiles(g, pbx.FrameworksPhase) {
		weak = append(weak, bf.Weak())
	}
	assert.Equal(t, []bool{false, true, false}, weak)

	fws := childGroup(t, g, g.MainGroup(), FrameworksGroup)
	assert.Len(t, fws.Children(), 3)
	assert.Equal(t, "System/Library/Frameworks/Social.framework", rep.Added[1].Path())
	requireRoundTrip(t, g)
}

func TestAddFileDuplicate(t *testing.T) {
	e, _ := newEditor(t, "/proj/Other/main.m")
	g := e.Graph()
	res, err := e.AddFile("usr/lib/libz.dylib", pbx.TreeSDKRoot, nil, true, false)
	require.NoError(t, err)
	require.NotNil(t, res)
	n := g.BuildFiles().Len()

	res, err = e.AddFile("usr/lib/libz.dylib", pbx.TreeSDKRoot, nil, true, false)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Len(t, refsNamed(g, "libz.dylib"), 1)
	assert.Equal(t, n, g.BuildFiles().Len())

	// names are compared without their directory
	res, err = e.AddFile("Other/main.m", pbx.TreeSourceRoot, nil, true, false)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Len(t, refsNamed(g, "main.m"), 1)
}

func TestAddFileMissing(t *testing.T) {
	e, _ := newEditor(t)
	_, err := e.AddFile("Plugins/missing.m", pbx.TreeSourceRoot, nil, true, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, pbx.Consolidated, e.Graph().State())
}

func TestAddFileBadSourceTree(t *testing.T) {
	e, _ := newEditor(t, "/proj/x.m")
	g := e.Graph()
	n := g.FileReferences().Len()
	res, err := e.AddFile("x.m", pbx.SourceTree(42), nil, true, false)
	assert.ErrorIs(t, err, pbx.ErrMutation)
	assert.Nil(t, res)
	assert.Equal(t, n, g.FileReferences().Len())
	assert.False(t, g.Modified())
}

func TestAddFileSearchPaths(t *testing.T) {
	e, _ := newEditor(t, "/proj/Plugins/libfoo.a", "/proj/Plugins/Foo.framework/")
	g := e.Graph()
	res, err := e.AddFile("Plugins/libfoo.a", pbx.TreeSourceRoot, nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, "Plugins/libfoo.a", res.FileReference.Path())
	assert.Len(t, res.BuildFiles, 1)
	for guid, v := range settingsOf(g, LibrarySearchPaths) {
		assert.Equal(t, []string{"$(SRCROOT)/Plugins"}, v, guid)
	}

	res, err = e.AddFile("/proj/Plugins/Foo.framework", pbx.TreeGroup, nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, "Plugins/Foo.framework", res.FileReference.Path())
	for guid, v := range settingsOf(g, FrameworkSearchPaths) {
		assert.Equal(t, []string{"$(SRCROOT)/Plugins"}, v, guid)
	}
}

func TestAddFileNoPhase(t *testing.T) {
	e, _ := newEditor(t, "/proj/Plugins/foo.h", "/proj/Plugins/bar.m")
	res, err := e.AddFile("Plugins/foo.h", pbx.TreeSourceRoot, nil, true, false)
	require.NoError(t, err)
	assert.Empty(t, res.BuildFiles)

	res, err = e.AddFile("Plugins/bar.m", pbx.TreeSourceRoot, nil, false, false)
	require.NoError(t, err)
	assert.Empty(t, res.BuildFiles)
}

func TestUnknownPhase(t *testing.T) {
	e, _ := newEditor(t)
	ref := e.Graph().NewFileReference("x.m", pbx.TreeGroup)
	_, err := e.addBuildFiles(ref, "PBXBogusBuildPhase", false)
	assert.ErrorIs(t, err, ErrUnknownPhase)
}

var folderFiles = []string{
	"/proj/Plugins/iOS/a.m",
	"/proj/Plugins/iOS/b.h",
	"/proj/Plugins/iOS/Tests/t.m",
	"/proj/Plugins/iOS/Tests/sub/u.m",
	"/proj/Plugins/iOS/Res.bundle/x.png",
	"/proj/Plugins/iOS/Deep/c.m",
}

func TestAddFolderExcludes(t *testing.T) {
	e, _ := newEditor(t, folderFiles...)
	g := e.Graph()
	ok, err := e.AddFolder("Plugins/iOS", nil, []string{"^Tests$", `\.meta$`}, true, true)
	require.NoError(t, err)
	require.True(t, ok)

	for _, name := range []string{"a.m", "b.h", "c.m", "Res.bundle"} {
		assert.Len(t, refsNamed(g, name), 1, name)
	}
	for _, name := range []string{"t.m", "u.m", "x.png"} {
		assert.Empty(t, refsNamed(g, name), name)
	}
	ios := childGroup(t, g, g.MainGroup(), "iOS")
	deep := childGroup(t, g, ios, "Deep")
	assert.Len(t, deep.Children(), 1)
	assert.Len(t, ios.Children(), 4)

	c := refsNamed(g, "c.m")[0]
	assert.Equal(t, "Plugins/iOS/Deep/c.m", c.Path())

	sources := []string{}
	for _, bf := range phaseFiles(g, pbx.SourcesPhase) {
		fr, _ := g.FileReferences().Get(bf.FileRef())
		sources = append(sources, fr.Name())
	}
	slices.Sort(sources)
	assert.Equal(t, []string{"a.m", "c.m", "main.m"}, sources)
	resources := phaseFiles(g, pbx.ResourcesPhase)
	require.Len(t, resources, 1)
	assert.Equal(t, refsNamed(g, "Res.bundle")[0].GUID(), resources[0].FileRef())

	g.Consolidate()
	requireRoundTrip(t, g)
}

func TestAddFolderBundleNotRecursive(t *testing.T) {
	e, _ := newEditor(t, folderFiles...)
	g := e.Graph()
	ok, err := e.AddFolder("/proj/Plugins/iOS", nil, nil, false, true)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, refsNamed(g, "Res.bundle"), 1)
	assert.Len(t, refsNamed(g, "a.m"), 1)
	assert.Empty(t, refsNamed(g, "c.m"))
	assert.Empty(t, refsNamed(g, "t.m"))
	ios := childGroup(t, g, g.MainGroup(), "iOS")
	assert.Len(t, ios.Children(), 3)
}

func TestAddFolderMissing(t *testing.T) {
	e, _ := newEditor(t)
	ok, err := e.AddFolder("Plugins/none", nil, nil, true, true)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.AddFolder("Plugins", nil, []string{"("}, true, true)
	assert.ErrorIs(t, err, pbx.ErrMutation)
}

func TestLinkerFlagsAppendTwice(t *testing.T) {
	e, _ := newEditor(t)
	g := e.Graph()
	e.AddOtherLinkerFlags("-lz")
	e.AddOtherLinkerFlags("-lz")
	want := map[string][]string{
		"00000000000000000000000C": {"-lz", "-lz"},
		"00000000000000000000000D": {"-lz", "-lz"},
		"00000000000000000000000E": {"-ObjC", "-lz", "-lz"},
		"00000000000000000000000F": {"-ObjC", "-lz", "-lz"},
	}
	assert.Equal(t, want, settingsOf(g, OtherLinkerFlags))

	e.GccEnableCppExceptions(true)
	for _, bc := range g.BuildConfigurations().All() {
		assert.True(t, bc.BoolSetting(GccEnableCppExceptions))
	}
	e.GccEnableCppExceptions(false)
	for _, v := range settingsOf(g, GccEnableCppExceptions) {
		assert.Equal(t, []string{"NO"}, v)
	}
	for _, bc := range g.BuildConfigurations().All() {
		assert.False(t, bc.BoolSetting(GccEnableCppExceptions))
		assert.False(t, bc.BoolSetting("NO_SUCH_SETTING"))
	}
}

func TestApplyFilesAndFolders(t *testing.T) {
	e, _ := newEditor(t,
		"/proj/Editor/Mod/Foo.m",
		"/proj/Editor/Mod/Bar.framework/",
		"/proj/Editor/Mod/Res/icon.png",
		"/proj/Editor/Mod/Res/icon.png.meta",
	)
	g := e.Graph()
	d, err := mod.Parse("/proj/Editor/Mod", []byte(`{
  "group": "Mod",
  "files": ["Foo.m", "missing.m", "Bar.framework"],
  "folders": ["Res", "NoSuchFolder"],
  "excludes": ["^.*\\.meta$"],
  "headerpaths": ["include"],
  "buildSettings": {
    "OTHER_LDFLAGS": ["ObjC", "-lz"],
    "GCC_ENABLE_OBJC_EXCEPTIONS": "YES"
  }
}`))
	require.NoError(t, err)
	rep, err := e.ApplyMod(d)
	require.NoError(t, err)
	require.Error(t, rep.Err())
	assert.Len(t, rep.Skipped.Errors, 2)

	modGroup := childGroup(t, g, g.MainGroup(), "Mod")
	foo := refsNamed(g, "Foo.m")
	require.Len(t, foo, 1)
	assert.Equal(t, "Editor/Mod/Foo.m", foo[0].Path())
	assert.True(t, modGroup.HasChild(foo[0].GUID()))

	bar := refsNamed(g, "Bar.framework")
	require.Len(t, bar, 1)
	fws := childGroup(t, g, g.MainGroup(), FrameworksGroup)
	assert.True(t, fws.HasChild(bar[0].GUID()))

	res := childGroup(t, g, modGroup, "Res")
	assert.Len(t, res.Children(), 1)
	assert.Empty(t, refsNamed(g, "icon.png.meta"))

	for guid, v := range settingsOf(g, HeaderSearchPaths) {
		assert.Equal(t, []string{"/proj/Editor/Mod/include"}, v, guid)
	}
	for guid, v := range settingsOf(g, FrameworkSearchPaths) {
		assert.Equal(t, []string{"$(SRCROOT)/Editor/Mod"}, v, guid)
	}
	assert.Equal(t, []string{"-ObjC", "-ObjC", "-lz"}, settingsOf(g, OtherLinkerFlags)["00000000000000000000000E"])
	for _, v := range settingsOf(g, GccEnableObjcExceptions) {
		assert.Equal(t, []string{"YES"}, v)
	}
	requireRoundTrip(t, g)
}

func TestApplyRejectsBadSettings(t *testing.T) {
	e, _ := newEditor(t)
	d := &mod.Descriptor{
		Libs:          []mod.Entry{{Name: "libz.dylib"}},
		BuildSettings: mod.BuildSettings{GccEnableCppExceptions: "maybe"},
	}
	_, err := e.ApplyMod(d)
	assert.ErrorIs(t, err, pbx.ErrMutation)
	assert.Empty(t, refsNamed(e.Graph(), "libz.dylib"))
	assert.False(t, e.Graph().Modified())
}
