package parse

import (
	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
)

type parseOpts struct {
	format   format.Format
	maxDepth int
}

type ParseOption func(*parseOpts)

func ParseSNBT() ParseOption {
	return ParseFormat(format.SNBTFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// MaxDepth limits the nesting of parsed trees. The default is
// ir.MaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{format: format.SNBTFormat, maxDepth: ir.MaxDepth}
	for _, f := range opts {
		f(res)
	}
	return res
}
