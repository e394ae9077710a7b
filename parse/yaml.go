package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nbtc/ir"
)

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, opts.format, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: empty %s document", ErrParse, opts.format)
	}
	res, err := fromYAML(v, 1, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

// FromYAMLValue converts a value decoded by goccy/go-yaml, with or
// without ordered maps, to a tree.
func FromYAMLValue(v any) (*ir.Node, error) {
	return fromYAML(v, 1, newOpts(nil))
}

func fromYAML(v any, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, fmt.Errorf("%w: depth exceeds %d", ir.ErrTooDeep, opts.maxDepth)
	}
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewCompound()
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			if item.Value == nil {
				continue
			}
			y, err := fromYAML(item.Value, depth+1, opts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res.Set(key, y)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			if xv == nil {
				continue
			}
			y, err := fromYAML(xv, depth+1, opts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = y
		}
		return ir.FromMap(m), nil
	case []any:
		res := ir.NewList()
		for i, xv := range x {
			if xv == nil {
				return nil, fmt.Errorf("[%d]: null list element", i)
			}
			y, err := fromYAML(xv, depth+1, opts)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	}
	return ir.FromAny(v)
}
