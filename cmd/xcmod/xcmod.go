package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/signadot/pbxmod"
	"github.com/signadot/pbxmod/encode"
	"github.com/signadot/pbxmod/ir"
	"github.com/signadot/pbxmod/parse"
	"github.com/signadot/pbxmod/pbx"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func xcmodMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readDoc decodes arg, a project path as accepted by pbxmod.Open or any
// file in the pbx dialect.
func readDoc(arg string) (*ir.Node, error) {
	fs := afero.NewOsFs()
	file := arg
	if ok, _ := afero.IsDir(fs, arg); ok {
		var err error
		file, err = pbxmod.FindProject(fs, arg)
		if err != nil {
			return nil, err
		}
	}
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	node, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}

// encodeDoc writes node in canonical form.  Documents shaped like a
// project are consolidated first, anything else is written as is.
func encodeDoc(node *ir.Node, cc *cli.Context, opts ...encode.EncodeOption) error {
	g, err := pbx.FromNode(node)
	if err != nil {
		theLog.Debug("not a project, encoding as is", "error", err)
		return encode.Encode(node, cc.Out, opts...)
	}
	g.Consolidate()
	return g.Encode(cc.Out, opts...)
}

func oneArg(cmd *cli.Command, cc *cli.Context, args []string) (string, error) {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		return "", err
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%w: expected one argument, got %d", cli.ErrUsage, len(args))
	}
	return args[0], nil
}
