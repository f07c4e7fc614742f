package edit

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/signadot/pbxmod/pbx"
)

// Result describes what AddFile created.
type Result struct {
	FileReference *pbx.FileReference
	BuildFiles    []*pbx.BuildFile
}

// AddFile adds a reference to p under parent, or the main group when parent
// is nil.  SDK relative paths are stored as given and are not looked up on
// the host.  When a file with the same name is already referenced anywhere
// in the project AddFile does nothing and returns nil, nil.
//
// With createBuildFile set and an extension that implies a build phase, a
// build file is added to every phase of that kind.
func (e *Editor) AddFile(p string, tree pbx.SourceTree, parent *pbx.Group, createBuildFile, weak bool) (*Result, error) {
	if !tree.Valid() {
		return nil, pbx.MutationErr("unknown source tree %d", tree)
	}
	var absPath string
	switch {
	case filepath.IsAbs(p):
		absPath = p
	case tree != pbx.TreeSDKRoot:
		absPath = e.abs(p)
	}
	var info os.FileInfo
	if tree != pbx.TreeSDKRoot {
		var err error
		info, err = e.fs.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, absPath)
		}
	}
	stored := filepath.ToSlash(p)
	if absPath != "" && tree.ProjectRelative() {
		rel, err := filepath.Rel(e.projectRoot, absPath)
		if err != nil {
			return nil, pbx.MutationErr("%s is not under project root %s: %v", absPath, e.projectRoot, err)
		}
		stored = filepath.ToSlash(rel)
	}
	if parent == nil {
		parent = e.g.MainGroup()
	}
	name := path.Base(stored)
	if _, ok := e.g.FileByName(name); ok {
		e.log.Info("file already in project", "name", name)
		return nil, nil
	}
	ref := e.g.NewFileReference(stored, tree)
	parent.AddChild(ref)
	e.tracef("add file %s (%s) to %s", stored, tree, parent.GUID())
	res := &Result{FileReference: ref}
	if !createBuildFile {
		return res, nil
	}
	phase := ref.BuildPhase()
	if phase == "" {
		return res, nil
	}
	bfs, err := e.addBuildFiles(ref, phase, weak)
	if err != nil {
		return nil, err
	}
	res.BuildFiles = bfs
	if phase == pbx.FrameworksPhase && info != nil {
		dir := path.Join("$(SRCROOT)", path.Dir(stored))
		switch {
		case !info.IsDir() && tree == pbx.TreeSourceRoot:
			e.AddLibrarySearchPaths(dir)
		case info.IsDir() && strings.HasSuffix(absPath, ".framework") && tree == pbx.TreeGroup:
			e.AddFrameworkSearchPaths(dir)
		}
	}
	return res, nil
}

// addBuildFiles adds a build file for ref to every phase of kind phase.
func (e *Editor) addBuildFiles(ref *pbx.FileReference, phase string, weak bool) ([]*pbx.BuildFile, error) {
	view := e.g.BuildPhases(phase)
	if view == nil {
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownPhase, phase, ref.Path())
	}
	var res []*pbx.BuildFile
	for _, ph := range view.All() {
		bf := e.g.NewBuildFile(ref, weak)
		ph.AddBuildFile(bf)
		res = append(res, bf)
	}
	return res, nil
}
