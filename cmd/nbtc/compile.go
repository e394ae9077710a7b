package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/dollar"
	"github.com/signadot/nbtc/encode"
)

func compile(cfg *CompileConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compile.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	w := cc.Out
	for _, file := range args {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		for i, doc := range docs {
			tmpl, err := dollar.Compile(doc)
			if err != nil {
				return fmt.Errorf("%s: document %d: %w", file, i, err)
			}
			fmt.Fprintf(w, "# %s document %d: %d expressions\n", file, i, len(tmpl.Dollars))
			for _, d := range tmpl.Dollars {
				fmt.Fprintf(w, "%s\n", d)
			}
			if !cfg.Tree {
				continue
			}
			if err := encode.Encode(tmpl.Tree, w, cfg.encOpts(w)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}
