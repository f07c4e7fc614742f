package main

import (
	"github.com/signadot/pbxmod/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	arg, err := oneArg(cfg.View, cc, args)
	if err != nil {
		return err
	}
	node, err := readDoc(arg)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeWire(cfg.Wire))
	return encodeDoc(node, cc, opts...)
}
