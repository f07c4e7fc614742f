package pbxmod

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/pbxmod/libdiff"
	"github.com/signadot/pbxmod/mod"
	"github.com/signadot/pbxmod/parse"
	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	workDir = "/work"
	bundle  = "/work/Sample.xcodeproj"
	pbxFile = "/work/Sample.xcodeproj/project.pbxproj"
)

func sampleFS(t *testing.T) (afero.Fs, []byte) {
	t.Helper()
	d, err := os.ReadFile("testdata/Sample.xcodeproj/project.pbxproj")
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(bundle, 0o755))
	require.NoError(t, afero.WriteFile(fs, pbxFile, d, 0o644))
	return fs, d
}

func TestOpenPaths(t *testing.T) {
	fs, _ := sampleFS(t)
	for _, p := range []string{workDir, bundle, pbxFile} {
		proj, err := Open(p, WithFS(fs))
		require.NoError(t, err, p)
		assert.Equal(t, pbxFile, proj.File())
		assert.Equal(t, workDir, proj.Root())
		assert.Equal(t, "000000000000000000000001", proj.Graph().RootObject())
	}
}

func TestOpenErrors(t *testing.T) {
	fs, d := sampleFS(t)

	_, err := Open("/nowhere", WithFS(fs))
	assert.ErrorIs(t, err, ErrPath)

	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	_, err = Open("/empty", WithFS(fs))
	assert.ErrorIs(t, err, ErrPath)

	require.NoError(t, afero.WriteFile(fs, "/work/Other.xcodeproj/project.pbxproj", d, 0o644))
	_, err = Open(workDir, WithFS(fs))
	assert.ErrorIs(t, err, ErrPath)
	assert.Contains(t, err.Error(), "ambiguous")

	require.NoError(t, afero.WriteFile(fs, "/work/README", []byte("x"), 0o644))
	_, err = Open("/work/README", WithFS(fs))
	assert.ErrorIs(t, err, ErrPath)

	require.NoError(t, afero.WriteFile(fs, "/bad/B.xcodeproj/project.pbxproj", []byte("{ a = "), 0o644))
	_, err = Open("/bad", WithFS(fs))
	var perr *parse.Error
	require.True(t, errors.As(err, &perr), "%v", err)
	assert.Equal(t, 1, perr.Line)

	require.NoError(t, afero.WriteFile(fs, "/shape/S.xcodeproj/project.pbxproj", []byte("{ a = b; }"), 0o644))
	_, err = Open("/shape", WithFS(fs))
	assert.ErrorIs(t, err, pbx.ErrIntegrity)

	require.NoError(t, fs.MkdirAll("/nofile/N.xcodeproj", 0o755))
	_, err = Open("/nofile", WithFS(fs))
	assert.ErrorIs(t, err, ErrIO)
}

func TestApplySave(t *testing.T) {
	fs, orig := sampleFS(t)
	require.NoError(t, fs.MkdirAll("/work/Plugins/iOS", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/Plugins/iOS/Bridge.m", []byte("x"), 0o644))

	proj, err := Open(bundle, WithFS(fs))
	require.NoError(t, err)
	d, err := mod.Parse("/work/Plugins/iOS", []byte(`
group: Plugins
libs: [libsqlite3.dylib]
files: [Bridge.m]
`))
	require.NoError(t, err)
	rep, err := proj.Apply(d)
	require.NoError(t, err)
	require.NoError(t, rep.Err())
	assert.Len(t, rep.Added, 2)

	lines, err := proj.Diff()
	require.NoError(t, err)
	assert.True(t, libdiff.Changed(lines))

	require.NoError(t, proj.Save())
	backup, err := afero.ReadFile(fs, filepath.Join(bundle, BackupFile))
	require.NoError(t, err)
	assert.Equal(t, orig, backup)

	lines, err = proj.Diff()
	require.NoError(t, err)
	assert.False(t, libdiff.Changed(lines))

	again, err := Open(workDir, WithFS(fs))
	require.NoError(t, err)
	bridge, ok := again.Graph().FileByName("Bridge.m")
	require.True(t, ok)
	assert.Equal(t, "Plugins/iOS/Bridge.m", bridge.Path())
	_, ok = again.Graph().FileByName("libsqlite3.dylib")
	assert.True(t, ok)
	assert.Empty(t, again.Graph().Dangling())
	assert.Empty(t, libdiff.Objects(proj.Graph().Objects(), again.Graph().Objects()))

	// a second save backs up the first save
	saved, err := afero.ReadFile(fs, pbxFile)
	require.NoError(t, err)
	require.NoError(t, again.Save())
	backup, err = afero.ReadFile(fs, filepath.Join(bundle, BackupFile))
	require.NoError(t, err)
	assert.Equal(t, saved, backup)
}

func TestSaveBackupFails(t *testing.T) {
	fs, orig := sampleFS(t)
	ro := afero.NewReadOnlyFs(fs)
	proj, err := Open(workDir, WithFS(ro))
	require.NoError(t, err)
	proj.Editor().AddOtherLinkerFlags("-lz")

	err = proj.Save()
	assert.ErrorIs(t, err, ErrIO)
	cur, err := afero.ReadFile(fs, pbxFile)
	require.NoError(t, err)
	assert.Equal(t, orig, cur)
	exists, err := afero.Exists(fs, filepath.Join(bundle, BackupFile))
	require.NoError(t, err)
	assert.False(t, exists)
}
