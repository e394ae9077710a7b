package nbtc

import (
	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
)

// IsCompoundContained reports whether every key of inner is present in
// outer with a contained or matching value. inner acts as the pattern.
func IsCompoundContained(inner, outer *ir.Node) bool {
	if !isCompound(inner) || !isCompound(outer) {
		return false
	}
	for i, key := range inner.Fields {
		ov := ir.Get(outer, key)
		if ov == nil || !contained(inner.Values[i], ov) {
			if debug.Match() {
				debug.Logf("compound not contained at %q\n", key)
			}
			return false
		}
	}
	return true
}

// IsListContained reports whether every element of inner is contained
// in or matches at least one element of outer. Positions are ignored.
func IsListContained(inner, outer *ir.Node) bool {
	if !isList(inner) || !isList(outer) {
		return false
	}
outer:
	for _, iv := range inner.Values {
		for _, ov := range outer.Values {
			if contained(iv, ov) {
				continue outer
			}
		}
		return false
	}
	return true
}

func contained(inner, outer *ir.Node) bool {
	switch {
	case isCompound(inner) && isCompound(outer):
		return IsCompoundContained(inner, outer)
	case isList(inner) && isList(outer):
		return IsListContained(inner, outer)
	}
	return ValuesMatch(outer, inner)
}

// Contains reports whether pattern is contained in data, whatever the
// types of the two trees.
func Contains(data, pattern *ir.Node) bool {
	return contained(pattern, data)
}

// Overlaps reports whether data and pattern overlap, whatever the types
// of the two trees.
func Overlaps(data, pattern *ir.Node) bool {
	return overlaps(data, pattern)
}
