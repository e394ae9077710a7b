package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc"
	"github.com/signadot/nbtc/encode"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires a target and at least one additions file", cli.ErrUsage)
	}
	target, err := getObjFile(cc, args[0], cfg.fileParseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, file := range args[1:] {
		add, err := getObjFile(cc, file, cfg.fileParseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		target = nbtc.MergeInto(target, add, cfg.Replace)
	}
	return encode.Encode(target, cc.Out, cfg.encOpts(cc.Out)...)
}
