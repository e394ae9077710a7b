package encode

import "github.com/signadot/nbtc/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Compact writes SNBT on a single line without spaces.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colors SNBT output with p; nil turns colors off.
func EncodeColors(p *Palette) EncodeOption {
	return func(es *EncState) { es.palette = p }
}
