package main

import (
	"github.com/signadot/pbxmod"

	"github.com/scott-cotton/cli"
)

func fmtProject(cfg *FmtConfig, cc *cli.Context, args []string) error {
	arg, err := oneArg(cfg.Fmt, cc, args)
	if err != nil {
		return err
	}
	proj, err := pbxmod.Open(arg, cfg.openOpts()...)
	if err != nil {
		return err
	}
	proj.Graph().Consolidate()
	if cfg.Write {
		return proj.Save()
	}
	data, err := proj.Encode()
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}
