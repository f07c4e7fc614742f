package main

import (
	"github.com/signadot/pbxmod/encode"
	"github.com/signadot/pbxmod/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	arg, err := oneArg(cfg.Dump, cc, args)
	if err != nil {
		return err
	}
	node, err := readDoc(arg)
	if err != nil {
		return err
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	if f.IsPBX() {
		return encodeDoc(node, cc, cfg.encOpts(cc.Out)...)
	}
	return encode.Encode(node, cc.Out, encode.EncodeFormat(f))
}
