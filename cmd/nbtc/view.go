package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDoc(cfg.MainConfig, cc, args, func(y *ir.Node) (*ir.Node, error) {
		return y, nil
	})
}
