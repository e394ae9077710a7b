package main

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/dollar"
	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/gomap"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/recipe"
)

func craft(cfg *CraftConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Craft.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: craft requires 1 argument, a recipe file", cli.ErrUsage)
	}
	recipes, err := recipe.LoadFile(args[0])
	if err != nil {
		return err
	}
	inputs := make(map[string]*recipe.Stack, len(cfg.Inputs))
	for name, y := range cfg.Inputs {
		s := &recipe.Stack{Count: 1}
		if err := gomap.FromIR(y, s); err != nil {
			return fmt.Errorf("%w: input %s: %w", cli.ErrUsage, name, err)
		}
		inputs[name] = s
	}
	r, err := pickRecipe(recipes, cfg.Recipe, inputs)
	if err != nil {
		return err
	}
	var opts []dollar.InstantiateOption
	if cfg.Misses {
		opts = append(opts, dollar.OnMiss(reportMiss))
	}
	out, err := r.Craft(inputs, opts...)
	if err != nil {
		return err
	}
	res := ir.FromKeyVals([]ir.KeyVal{
		{Key: "id", Val: ir.FromString(out.ID)},
		{Key: "count", Val: ir.FromInt(int64(out.Count))},
		{Key: "data", Val: out.Data},
	})
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}

func pickRecipe(recipes []*recipe.Recipe, id string, inputs map[string]*recipe.Stack) (*recipe.Recipe, error) {
	if id != "" {
		for _, r := range recipes {
			if r.ID == id {
				return r, nil
			}
		}
		if near := nearestID(recipes, id); near != "" {
			return nil, fmt.Errorf("no recipe %q, did you mean %q?", id, near)
		}
		return nil, fmt.Errorf("no recipe %q", id)
	}
	for _, r := range recipes {
		if r.Matches(inputs) {
			return r, nil
		}
	}
	return nil, errors.New("no recipe matches the inputs")
}

// nearestID returns the recipe id closest to id, or "" when none is
// within a third of its length in edits.
func nearestID(recipes []*recipe.Recipe, id string) string {
	best, bestDist := "", len(id)/3+1
	for _, r := range recipes {
		dist := levenshtein.ComputeDistance(id, r.ID)
		if dist < bestDist || (dist == bestDist && best != "" && r.ID < best) {
			best, bestDist = r.ID, dist
		}
	}
	return best
}
