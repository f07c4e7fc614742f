package main

import (
	"fmt"

	"github.com/signadot/pbxmod"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	arg, err := oneArg(cfg.Check, cc, args)
	if err != nil {
		return err
	}
	proj, err := pbxmod.Open(arg, cfg.openOpts()...)
	if err != nil {
		return err
	}
	refs := proj.Graph().Dangling()
	for _, r := range refs {
		fmt.Fprintf(cc.Out, "%s.%s -> %s: missing\n", r.From, r.Field, r.To)
	}
	if len(refs) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
