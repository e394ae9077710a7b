package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.fileParseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.fileParseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	var differs bool
	if cfg.Lines {
		differs, err = writeLines(cc.Out, y1, y2)
	} else {
		differs, err = writeChanges(cc.Out, y1, y2)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

var opColors = map[libdiff.Op]func(a ...any) string{
	libdiff.Equal:   fmt.Sprint,
	libdiff.Delete:  color.New(color.FgRed).SprintFunc(),
	libdiff.Insert:  color.New(color.FgGreen).SprintFunc(),
	libdiff.Replace: color.New(color.FgYellow).SprintFunc(),
}

// writeChanges writes the changes from a to b one per line and reports
// whether there were any.
func writeChanges(w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	for i := range changes {
		c := &changes[i]
		if _, err := fmt.Fprintln(w, opColors[c.Op](c.String())); err != nil {
			return true, err
		}
	}
	return len(changes) != 0, nil
}

// writeLines writes a line diff of the SNBT forms of a and b and
// reports whether they differ.
func writeLines(w io.Writer, a, b *ir.Node) (bool, error) {
	lines := libdiff.Lines(a, b)
	if !libdiff.Changed(lines) {
		return false, nil
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, opColors[l.Op](l.String())); err != nil {
			return true, err
		}
	}
	return true, nil
}
