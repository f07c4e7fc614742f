package edit

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/signadot/pbxmod/pbx"
	"github.com/spf13/afero"
)

// BundleSuffix marks directories imported as a single reference.
const BundleSuffix = ".bundle"

// excluder matches entry names against the alternation of the exclude
// patterns.  The zero value matches nothing.
type excluder struct {
	re *regexp.Regexp
}

func newExcluder(patterns []string) (excluder, error) {
	if len(patterns) == 0 {
		return excluder{}, nil
	}
	re, err := regexp.Compile(strings.Join(patterns, "|"))
	if err != nil {
		return excluder{}, pbx.MutationErr("bad exclude pattern: %v", err)
	}
	return excluder{re: re}, nil
}

// match tests both the base name and the full path, so "^Tests$" and
// "^.*/Tests$" both exclude a Tests directory.
func (x excluder) match(full string) bool {
	if x.re == nil {
		return false
	}
	return x.re.MatchString(filepath.Base(full)) || x.re.MatchString(filepath.ToSlash(full))
}

// AddFolder imports dir under a group named after it, created under
// parent if needed.  It returns false when dir is not a directory.
// Subdirectories ending in BundleSuffix are imported as single files
// whether or not recursive is set; other subdirectories are imported as
// nested groups only when it is.
func (e *Editor) AddFolder(dir string, parent *pbx.Group, excludes []string, recursive, createBuildFile bool) (bool, error) {
	x, err := newExcluder(excludes)
	if err != nil {
		return false, err
	}
	return e.addFolder(e.abs(dir), parent, x, recursive, createBuildFile)
}

func (e *Editor) addFolder(dir string, parent *pbx.Group, x excluder, recursive, createBuildFile bool) (bool, error) {
	if ok, _ := afero.IsDir(e.fs, dir); !ok {
		e.log.Warn("folder not found", "path", dir)
		return false, nil
	}
	if parent == nil {
		parent = e.g.MainGroup()
	}
	grp := e.g.Group(filepath.Base(dir), "", parent)
	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return false, err
	}
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		sub := filepath.Join(dir, ent.Name())
		if x.match(sub) {
			e.tracef("exclude %s", sub)
			continue
		}
		if strings.HasSuffix(ent.Name(), BundleSuffix) {
			if err := e.addSoft(sub, pbx.TreeSourceRoot, grp, createBuildFile); err != nil {
				return false, err
			}
			continue
		}
		if !recursive {
			continue
		}
		if _, err := e.addFolder(sub, grp, x, recursive, createBuildFile); err != nil {
			return false, err
		}
	}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		f := filepath.Join(dir, ent.Name())
		if x.match(f) {
			e.tracef("exclude %s", f)
			continue
		}
		if err := e.addSoft(f, pbx.TreeSourceRoot, grp, createBuildFile); err != nil {
			return false, err
		}
	}
	return true, nil
}

// addSoft adds a file found while walking a folder.  Missing files are
// logged and skipped.
func (e *Editor) addSoft(p string, tree pbx.SourceTree, parent *pbx.Group, createBuildFile bool) error {
	_, err := e.AddFile(p, tree, parent, createBuildFile, false)
	if errors.Is(err, ErrNotFound) {
		e.log.Warn("skipping file", "path", p, "error", err)
		return nil
	}
	return err
}
