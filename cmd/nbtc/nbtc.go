package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/format"
)

// formatEnv names the environment variable giving the i/o format when
// none of -s, -j and -y is set.
const formatEnv = "NBTC_FORMAT"

func nbtcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	sub, err := runSub(cfg, cc, args)
	if cfg.CloseOut != nil {
		keep := err == nil || errors.As(err, new(cli.ExitCodeErr))
		if cerr := cfg.CloseOut(keep); cerr != nil && err == nil {
			err = cerr
		}
	}
	if sub != nil && errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// runSub parses the global options and runs the subcommand named by
// the first remaining argument.
func runSub(cfg *MainConfig, cc *cli.Context, args []string) (*cli.Command, error) {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return nil, err
	}
	if err := cfg.resolveFormat(cc.Env); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return nil, fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub, sub.Run(cc, args[1:])
}

// resolveFormat sets cfg.IO from -s, -j or -y, or else from formatEnv
// in env.
func (cfg *MainConfig) resolveFormat(env []string) error {
	var set []string
	for _, flag := range []struct {
		on   bool
		name string
		f    format.Format
	}{
		{cfg.S, "-s", format.SNBTFormat},
		{cfg.J, "-j", format.JSONFormat},
		{cfg.Y, "-y", format.YAMLFormat},
	} {
		if flag.on {
			set = append(set, flag.name)
			cfg.IO = &flag.f
		}
	}
	if len(set) > 1 {
		return fmt.Errorf("%w: %s given, at most one i/o format flag is allowed", cli.ErrUsage, strings.Join(set, " and "))
	}
	if len(set) == 1 {
		return nil
	}
	for _, kv := range env {
		v, ok := strings.CutPrefix(kv, formatEnv+"=")
		if !ok || v == "" {
			continue
		}
		f, err := format.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", cli.ErrUsage, formatEnv, err)
		}
		cfg.IO = &f
	}
	return nil
}

// outOpt directs output to a temporary file next to path. CloseOut
// renames it over path when kept and removes it otherwise, so path is
// only replaced by the output of a successful run.
func (cfg *MainConfig) outOpt(cc *cli.Context, path string) (any, error) {
	cfg.Out = path
	if path == "-" {
		return nil, nil
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = func(keep bool) error {
		cerr := f.Close()
		if !keep || cerr != nil {
			os.Remove(f.Name())
			return cerr
		}
		return os.Rename(f.Name(), path)
	}
	return nil, nil
}
