package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signadot/pbxmod"
	"github.com/signadot/pbxmod/encode"
	"github.com/signadot/pbxmod/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

const (
	envBaseDir = "XCMOD_BASE_DIR"
	envColor   = "XCMOD_COLOR"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='colorize output'"`
	Verbose bool   `cli:"name=v desc='log each step'"`
	BaseDir string `cli:"name=base desc='directory relative descriptor paths resolve against'"`

	Main *cli.Command
}

// optSet reports whether the option name was given to cmd.
func optSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// useColor reports whether output to w is colorized: -color if given,
// then $XCMOD_COLOR, then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if optSet(cfg.Main, "color") {
		return cfg.Color
	}
	if v, ok := os.LookupEnv(envColor); ok {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
		theLog.Warn("ignoring bad "+envColor, "value", v)
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if !cfg.useColor(w) {
		return nil
	}
	return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
}

func (cfg *MainConfig) openOpts() []pbxmod.Option {
	res := []pbxmod.Option{pbxmod.WithLogger(theLog)}
	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = os.Getenv(envBaseDir)
	}
	if baseDir != "" {
		res = append(res, pbxmod.WithBaseDir(baseDir))
	}
	return res
}

func fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

type ApplyConfig struct {
	*MainConfig

	DryRun bool `cli:"name=n desc='do not save the project'"`
	Diff   bool `cli:"name=diff desc='print the changes as a line diff'"`

	Apply *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Wire bool `cli:"name=wire desc='output on one line'"`

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to the project file'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig

	OutFormat *format.Format

	Dump *cli.Command
}
