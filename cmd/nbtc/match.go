package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pred, err := matchFunc(cfg.Mode)
	if err != nil {
		return err
	}
	pattern, err := getish(cfg.String, cfg.File, cc, args[0], cfg.parseOpts())
	if err != nil {
		return err
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		if !pred(y, pattern) {
			return nil, nil
		}
		if cfg.Trim {
			return trim(pattern, y), nil
		}
		return y, nil
	})
}

func matchFunc(mode string) (func(data, pattern *ir.Node) bool, error) {
	switch mode {
	case "", "contains":
		return nbtc.Contains, nil
	case "overlap", "overlaps":
		return nbtc.Overlaps, nil
	case "match":
		return nbtc.ValuesMatch, nil
	}
	return nil, fmt.Errorf("%w: unknown mode %q", cli.ErrUsage, mode)
}

func getish(s, f bool, cc *cli.Context, arg string, opts []parse.ParseOption) (*ir.Node, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -str, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader = strings.NewReader(arg)
	if f {
		switch arg {
		case "-":
			r = cc.In
		default:
			f, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer f.Close()
			r = f
		}
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	res, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return res, nil
}

// trim keeps the parts of doc the pattern names. List elements are
// kept when they contain some element of the pattern list.
func trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.Type == ir.CompoundType && doc.Type == ir.CompoundType:
		res := ir.NewCompound()
		for i, field := range doc.Fields {
			pv := ir.Get(pattern, field)
			if pv == nil {
				continue
			}
			res.Set(field, trim(pv, doc.Values[i]))
		}
		return res
	case pattern.Type == ir.ListType && doc.Type == ir.ListType:
		res := ir.NewList()
		for _, v := range doc.Values {
			for _, pv := range pattern.Values {
				if nbtc.Contains(v, pv) {
					res.Values = append(res.Values, trim(pv, v))
					break
				}
			}
		}
		return res
	}
	return doc.Clone()
}
