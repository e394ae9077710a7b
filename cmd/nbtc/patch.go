package main

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	ops, err := getish(cfg.String, cfg.File, cc, args[0], []parse.ParseOption{parse.ParseYAML()})
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	target, err := getObjFile(cc, args[1], cfg.fileParseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := applyPatch(target, ops)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

// applyPatch applies the RFC 6902 operations ops to the JSON form of
// target. Numbers left in place keep their width.
func applyPatch(target, ops *ir.Node) (*ir.Node, error) {
	pd, err := toJSON(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	td, err := toJSON(target)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(td)
	if err != nil {
		return nil, err
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, err
	}
	keepWidths(res, target)
	return res, nil
}

func toJSON(y *ir.Node) ([]byte, error) {
	var b bytes.Buffer
	if err := encode.Encode(y, &b, encode.EncodeFormat(format.JSONFormat), encode.Compact(true)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// keepWidths gives each number of res the width of the number at the
// same place in orig, if its value fits that width.
func keepWidths(res, orig *ir.Node) {
	if res == nil || orig == nil || res.Type != orig.Type {
		return
	}
	switch res.Type {
	case ir.NumberType:
		if res.Width == orig.Width {
			return
		}
		if n := res.Retype(orig.Width); n.Float64 == res.Float64 {
			*res = *n
		}
	case ir.CompoundType:
		for i, field := range res.Fields {
			keepWidths(res.Values[i], ir.Get(orig, field))
		}
	case ir.ListType:
		for i, v := range res.Values {
			if i < len(orig.Values) {
				keepWidths(v, orig.Values[i])
			}
		}
	}
}
