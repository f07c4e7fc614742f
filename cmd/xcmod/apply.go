package main

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/signadot/pbxmod"
	"github.com/signadot/pbxmod/libdiff"
	"github.com/signadot/pbxmod/mod"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: apply requires a project and at least one descriptor", cli.ErrUsage)
	}
	proj, err := pbxmod.Open(args[0], cfg.openOpts()...)
	if err != nil {
		return err
	}
	ds, err := loadDescriptors(args[1:])
	if err != nil {
		return err
	}
	var skipped *multierror.Error
	for _, d := range ds {
		rep, err := proj.Apply(d)
		if err != nil {
			return err
		}
		theLog.Info("applied", "mod", d.Name, "added", len(rep.Added), "duplicates", len(rep.Duplicates))
		if err := rep.Err(); err != nil {
			skipped = multierror.Append(skipped, fmt.Errorf("%s: %w", d.Name, err))
		}
	}
	if cfg.Diff {
		lines, err := proj.Diff()
		if err != nil {
			return err
		}
		err = libdiff.Write(cc.Out, lines,
			libdiff.WriteColor(cfg.useColor(cc.Out)),
			libdiff.WriteNames(proj.File(), proj.File()))
		if err != nil {
			return err
		}
	}
	if err := skipped.ErrorOrNil(); err != nil {
		theLog.Warn("some entries were skipped", "error", err)
	}
	if cfg.DryRun {
		return nil
	}
	return proj.Save()
}

// loadDescriptors loads descriptor files and every descriptor found under
// directories, in argument order.
func loadDescriptors(args []string) ([]*mod.Descriptor, error) {
	fs := afero.NewOsFs()
	var res []*mod.Descriptor
	for _, arg := range args {
		arg, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		if ok, _ := afero.IsDir(fs, arg); ok {
			ds, err := mod.LoadAll(fs, arg)
			if err != nil {
				return nil, err
			}
			if len(ds) == 0 {
				theLog.Warn("no descriptors found", "dir", arg)
			}
			res = append(res, ds...)
			continue
		}
		d, err := mod.Load(fs, arg)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}
