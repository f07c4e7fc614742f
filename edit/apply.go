package edit

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/signadot/pbxmod/debug"
	"github.com/signadot/pbxmod/mod"
	"github.com/signadot/pbxmod/pbx"
)

const (
	LibrariesGroup  = "Libraries"
	FrameworksGroup = "Frameworks"

	libraryRoot   = "usr/lib"
	frameworkRoot = "System/Library/Frameworks"
)

// Report describes the outcome of ApplyMod.
type Report struct {
	// Added lists the new file references in the order they were created.
	Added []*pbx.FileReference
	// Duplicates lists names that were already referenced by the project.
	Duplicates []string
	// Skipped collects the files and folders that could not be found.
	Skipped *multierror.Error
}

// Err returns the skipped entries as one error, or nil.
func (r *Report) Err() error {
	return r.Skipped.ErrorOrNil()
}

// ApplyMod applies a modification descriptor and consolidates the graph.
//
// Steps run in order: libraries into the Libraries group, frameworks into
// the Frameworks group, files, folders, header search paths, then build
// settings.  Missing files and folders are logged and recorded in the
// report; other errors abort.  The descriptor is validated before the
// graph is touched.
func (e *Editor) ApplyMod(d *mod.Descriptor) (*Report, error) {
	x, err := newExcluder(d.Excludes)
	if err != nil {
		return nil, err
	}
	bs := d.BuildSettings
	cppExc, err := parseYesNo(GccEnableCppExceptions, bs.GccEnableCppExceptions)
	if err != nil {
		return nil, err
	}
	objcExc, err := parseYesNo(GccEnableObjcExceptions, bs.GccEnableObjcExceptions)
	if err != nil {
		return nil, err
	}
	a := &applier{e: e, d: d, rep: &Report{}}
	e.log.Info("applying modification", "name", d.Name, "path", d.Path)
	if debug.Edit() {
		debug.LogAny(d)
	}

	for _, lib := range d.Libs {
		p := path.Join(libraryRoot, lib.Name)
		if err := a.add(p, pbx.TreeSDKRoot, a.group(&a.libs, LibrariesGroup), lib.Weak); err != nil {
			return nil, err
		}
	}
	for _, fw := range d.Frameworks {
		p := path.Join(frameworkRoot, fw.Name)
		if err := a.add(p, pbx.TreeSDKRoot, a.group(&a.fws, FrameworksGroup), fw.Weak); err != nil {
			return nil, err
		}
	}
	for _, f := range d.Files {
		p := filepath.Join(d.Path, f)
		var err error
		if strings.HasSuffix(f, ".framework") {
			err = a.add(p, pbx.TreeGroup, a.group(&a.fws, FrameworksGroup), false)
		} else {
			err = a.add(p, pbx.TreeSourceRoot, a.modGroup(), false)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, f := range d.Folders {
		p := filepath.Join(d.Path, f)
		ok, err := e.addFolder(e.abs(p), a.modGroup(), x, true, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			a.skip(fmt.Errorf("%w: folder %s", ErrNotFound, p))
		}
	}
	hps := make([]string, len(d.HeaderPaths))
	for i, hp := range d.HeaderPaths {
		hps[i] = filepath.ToSlash(filepath.Join(d.Path, hp))
	}
	e.AddHeaderSearchPaths(hps...)

	flags := make([]string, len(bs.OtherLinkerFlags))
	for i, f := range bs.OtherLinkerFlags {
		if !strings.HasPrefix(f, "-") {
			f = "-" + f
		}
		flags[i] = f
	}
	e.AddOtherLinkerFlags(flags...)
	if cppExc != nil {
		e.GccEnableCppExceptions(*cppExc)
	}
	if objcExc != nil {
		e.GccEnableObjcExceptions(*objcExc)
	}
	e.g.Consolidate()
	return a.rep, nil
}

type applier struct {
	e   *Editor
	d   *mod.Descriptor
	rep *Report

	libs, fws, grp *pbx.Group
}

// group finds or creates the top level group name on first use.
func (a *applier) group(g **pbx.Group, name string) *pbx.Group {
	if *g == nil {
		*g = a.e.g.Group(name, "", nil)
	}
	return *g
}

func (a *applier) modGroup() *pbx.Group {
	if a.d.Group == "" {
		return a.e.g.MainGroup()
	}
	return a.group(&a.grp, a.d.Group)
}

func (a *applier) skip(err error) {
	a.e.log.Warn("skipping", "error", err)
	a.rep.Skipped = multierror.Append(a.rep.Skipped, err)
}

func (a *applier) add(p string, tree pbx.SourceTree, parent *pbx.Group, weak bool) error {
	res, err := a.e.AddFile(p, tree, parent, true, weak)
	switch {
	case errors.Is(err, ErrNotFound):
		a.skip(err)
		return nil
	case err != nil:
		return err
	case res == nil:
		a.rep.Duplicates = append(a.rep.Duplicates, path.Base(filepath.ToSlash(p)))
		return nil
	}
	a.rep.Added = append(a.rep.Added, res.FileReference)
	return nil
}

func parseYesNo(key, v string) (*bool, error) {
	var b bool
	switch v {
	case "":
		return nil, nil
	case "YES":
		b = true
	case "NO":
	default:
		return nil, pbx.MutationErr("%s must be YES or NO, not %q", key, v)
	}
	return &b, nil
}
