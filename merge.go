package nbtc

import (
	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
)

// OverwriteKey marks a compound or list in merge additions as replacing
// the target value instead of merging into it. On a compound it is a key
// holding a true flag; on a list it is the last element.
const OverwriteKey = "$overwrite"

// MergeInto merges additions into target in place and returns target.
//
// Keys missing from target are copied in. Colliding compounds merge
// recursively unless the addition holds a true OverwriteKey flag, in
// which case it replaces the target compound. Colliding lists are
// concatenated unless the addition list ends with the OverwriteKey
// string, in which case it replaces the target list. Any other collision
// is replaced only if replace is set.
//
// Merge markers are never stored: the OverwriteKey flag and the trailing
// OverwriteKey list element are dropped from everything copied in.
//
// A nil target yields additions and a nil additions yields target; if
// both are nil an empty compound is returned.
func MergeInto(target, additions *ir.Node, replace bool) *ir.Node {
	switch {
	case target == nil && additions == nil:
		return ir.NewCompound()
	case target == nil:
		return additions
	case additions == nil:
		return target
	}
	if !isCompound(target) || !isCompound(additions) {
		if replace {
			return copyAddition(additions)
		}
		return target
	}
	for i, key := range additions.Fields {
		if key == OverwriteKey {
			continue
		}
		add := additions.Values[i]
		cur := ir.Get(target, key)
		switch {
		case cur == nil:
			target.Set(key, copyAddition(add))
		case isCompound(cur) && isCompound(add):
			if overwrites(add) {
				if debug.Merge() {
					debug.Logf("merge: overwrite compound %q\n", key)
				}
				target.Set(key, copyAddition(add))
				continue
			}
			MergeInto(cur, add, replace)
		case isList(cur) && isList(add):
			if overwrites(add) {
				if debug.Merge() {
					debug.Logf("merge: overwrite list %q\n", key)
				}
				target.Set(key, copyAddition(add))
				continue
			}
			for _, v := range add.Values {
				cur.Values = append(cur.Values, copyAddition(v))
			}
		default:
			if replace {
				if debug.Merge() {
					debug.Logf("merge: replace %q %s with %s\n", key, debug.SNBT{Node: cur}, debug.SNBT{Node: add})
				}
				target.Set(key, copyAddition(add))
			}
		}
	}
	return target
}

// overwrites reports whether y carries the OverwriteKey marker.
func overwrites(y *ir.Node) bool {
	switch y.Type {
	case ir.CompoundType:
		flag := ir.Get(y, OverwriteKey)
		return flag != nil && flag.Type == ir.NumberType && flag.Float64 != 0
	case ir.ListType:
		n := len(y.Values)
		return n > 0 && isOverwriteMarker(y.Values[n-1])
	}
	return false
}

func isOverwriteMarker(y *ir.Node) bool {
	return y.Type == ir.StringType && y.String == OverwriteKey
}

// copyAddition deep copies y without merge markers.
func copyAddition(y *ir.Node) *ir.Node {
	switch y.Type {
	case ir.CompoundType:
		res := ir.NewCompound()
		for i, key := range y.Fields {
			if key == OverwriteKey {
				continue
			}
			res.Set(key, copyAddition(y.Values[i]))
		}
		return res
	case ir.ListType:
		vals := y.Values
		if n := len(vals); n > 0 && isOverwriteMarker(vals[n-1]) {
			vals = vals[:n-1]
		}
		res := ir.NewList()
		for _, v := range vals {
			res.Values = append(res.Values, copyAddition(v))
		}
		return res
	}
	return y.Clone()
}
