package nbtc

import (
	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
)

// CompoundsOverlap reports whether a and b share at least one key whose
// values overlap: compounds that overlap, lists that overlap or
// primitives where the value in b matches the value in a as a pattern.
// Two empty containers of the same type under a shared key overlap.
func CompoundsOverlap(a, b *ir.Node) bool {
	if !isCompound(a) || !isCompound(b) {
		return false
	}
	for i, key := range a.Fields {
		bv := ir.Get(b, key)
		if bv == nil {
			continue
		}
		if overlaps(a.Values[i], bv) {
			if debug.Match() {
				debug.Logf("compounds overlap at %q\n", key)
			}
			return true
		}
	}
	return false
}

// ListsOverlap reports whether some element of a overlaps some element
// of b by the rule of CompoundsOverlap.
func ListsOverlap(a, b *ir.Node) bool {
	if !isList(a) || !isList(b) {
		return false
	}
	for _, av := range a.Values {
		for _, bv := range b.Values {
			if overlaps(av, bv) {
				return true
			}
		}
	}
	return false
}

func overlaps(a, b *ir.Node) bool {
	switch {
	case isCompound(a) && isCompound(b):
		if len(a.Values) == 0 && len(b.Values) == 0 {
			return true
		}
		return CompoundsOverlap(a, b)
	case isList(a) && isList(b):
		if len(a.Values) == 0 && len(b.Values) == 0 {
			return true
		}
		return ListsOverlap(a, b)
	}
	return ValuesMatch(a, b)
}

func isCompound(y *ir.Node) bool {
	return y != nil && y.Type == ir.CompoundType
}

func isList(y *ir.Node) bool {
	return y != nil && y.Type == ir.ListType
}
