package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact aliases=c desc='output on a single line'"`

	S bool `cli:"name=s aliases=snbt desc='do i/o in snbt'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	// IO is the format chosen by -s, -j, -y or NBTC_FORMAT.
	IO                  *format.Format
	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func(keep bool) error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat() format.Format {
	if cfg.IO != nil {
		return *cfg.IO
	}
	return format.SNBTFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	f := cfg.ioFormat()
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(f)}
}

// fileParseOpts is parseOpts, except that without an explicit input
// format the format is taken from the file extension.
func (cfg *MainConfig) fileParseOpts(path string) []parse.ParseOption {
	if cfg.InFormat != nil || cfg.IO != nil || path == "-" {
		return cfg.parseOpts()
	}
	return []parse.ParseOption{parse.ParseFormat(format.FromPath(path))}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := cfg.ioFormat()
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.Compact(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewPalette()))
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			// -color=false
			return res
		}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewPalette()))
	}
	return res
}

type EvalConfig struct {
	*MainConfig
	Refs   map[string]*ir.Node
	Misses bool `cli:"name=misses aliases=m desc='report expressions without a value on stderr'"`

	Eval *cli.Command
}

type CompileConfig struct {
	*MainConfig
	Tree bool `cli:"name=t aliases=tree desc='also print the compiled tree'"`

	Compile *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Mode   string `cli:"name=mode desc='contains, overlap or match'"`
	Trim   bool   `cli:"name=trim desc='trim the results to the pattern'"`
	String bool   `cli:"name=str desc='consider pattern a string argument'"`
	File   bool   `cli:"name=f desc='consider pattern a file path'"`
}

type MergeConfig struct {
	*MainConfig
	Replace bool `cli:"name=r aliases=replace desc='additions replace colliding primitives'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Lines   bool `cli:"name=lines aliases=l desc='diff the snbt text line by line'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=str desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type CraftConfig struct {
	*MainConfig
	Inputs map[string]*ir.Node
	Recipe string `cli:"name=recipe aliases=id desc='recipe id, default first matching recipe'"`
	Misses bool   `cli:"name=misses aliases=m desc='report expressions without a value on stderr'"`

	Craft *cli.Command
}
