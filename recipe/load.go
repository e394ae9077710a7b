package recipe

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/nbtc/dollar"
	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/gomap"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

// FromIR reads and compiles one recipe definition.
func FromIR(node *ir.Node, opts ...dollar.CompileOption) (*Recipe, error) {
	r := &Recipe{}
	if err := gomap.FromIR(node, r); err != nil {
		id := ""
		if v := ir.Get(node, "id"); v != nil && v.Type == ir.StringType {
			id = v.String
		}
		return nil, &LoadError{Recipe: id, Err: err}
	}
	if err := r.Compile(opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads recipe definitions from d: a single definition or a list
// of them. Recipe ids must be unique.
func Load(d []byte, opts ...parse.ParseOption) ([]*Recipe, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	defs := []*ir.Node{node}
	if node.Type == ir.ListType {
		defs = node.Values
	}
	res := make([]*Recipe, 0, len(defs))
	seen := map[string]bool{}
	for i, def := range defs {
		r, err := FromIR(def)
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) && le.Recipe == "" {
				le.Recipe = fmt.Sprintf("#%d", i)
			}
			return nil, err
		}
		if seen[r.ID] {
			return nil, &LoadError{Recipe: r.ID, Err: errors.New("duplicate id")}
		}
		seen[r.ID] = true
		res = append(res, r)
	}
	return res, nil
}

// LoadFile reads recipes from path in the format its extension names.
func LoadFile(path string) ([]*Recipe, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rs, err := Load(d, parse.ParseFormat(format.FromPath(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs, nil
}
