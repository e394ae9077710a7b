package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/dollar"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
	"github.com/signadot/nbtc/parse"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	refs := dollar.Context(cfg.Refs)
	var opts []dollar.InstantiateOption
	if cfg.Misses {
		opts = append(opts, dollar.OnMiss(reportMiss))
	}
	return forEachDoc(cfg.MainConfig, cc, args, func(y *ir.Node) (*ir.Node, error) {
		tmpl, err := dollar.Compile(y)
		if err != nil {
			return nil, err
		}
		return tmpl.Instantiate(refs, opts...), nil
	})
}

func reportMiss(d *dollar.Dollar, err error) {
	fmt.Fprintf(os.Stderr, "miss at %q: %v\n", d.Location, err)
}

func refOptFunc(refs map[string]*ir.Node) func(*cli.Context, string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		key, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
		}
		v, err := refValue(val)
		if err != nil {
			return nil, err
		}
		if err := setRef(refs, key, v); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func refFileOptFunc(cfg *MainConfig, refs map[string]*ir.Node) func(*cli.Context, string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		key, file, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q expected name=file", cli.ErrUsage, a)
		}
		v, err := getObjFile(cc, file, cfg.fileParseOpts(file)...)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := setRef(refs, key, v); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// refValue reads an option value as SNBT, or as YAML if it is not
// SNBT, so that -r id=minecraft:stick needs no quotes.
func refValue(val string) (*ir.Node, error) {
	if v, err := parse.ParseString(val); err == nil {
		return v, nil
	}
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(val), &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %q is neither snbt nor yaml: %w", cli.ErrUsage, val, err)
	}
	if v == nil {
		return ir.FromString(val), nil
	}
	return parse.FromYAMLValue(v)
}

// setRef stores v under a name or a path below one, creating
// compounds along the path.
func setRef(refs map[string]*ir.Node, key string, v *ir.Node) error {
	kp, err := kpath.Parse(key)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if kp == nil || kp.Field == nil {
		return fmt.Errorf("%w: %q must start with a name", cli.ErrUsage, key)
	}
	name := *kp.Field
	if kp.Next == nil {
		refs[name] = v
		return nil
	}
	root := refs[name]
	if root == nil {
		root = ir.NewCompound()
		refs[name] = root
	}
	return ir.SetKPath(root, kp.Next, v)
}
