package parse

import (
	"fmt"

	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
)

// Parse reads a single tree from d. The format defaults to SNBT.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.SNBTFormat:
		res, err = parseSNBT(d, pOpts)
	case format.YAMLFormat, format.JSONFormat:
		res, err = parseYAML(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if err := ir.CheckDepth(res, pOpts.maxDepth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(d []byte, opts ...ParseOption) *ir.Node {
	res, err := Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return res
}

// ParseString parses SNBT text.
func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

// MustParseString is like ParseString but panics on error.
func MustParseString(s string) *ir.Node {
	return MustParse([]byte(s))
}
