package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	kp, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		res := ir.Lookup(y, kp)
		if debug.Path() {
			debug.Logf("get %s: found %t\n", kp, res != nil)
		}
		return res, nil
	})
}
