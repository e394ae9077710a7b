package ir

import "github.com/signadot/nbtc/ir/kpath"

// Strip removes every leaf of y for which drop returns true and reports
// how many were removed. Containers are never passed to drop; they are
// descended into. Each container is scanned fully before any of its
// entries are removed, so drop always sees the indices of the original
// tree.
func Strip(y *Node, drop func(kp *kpath.KPath, leaf *Node) bool) int {
	return strip(y, nil, drop)
}

func strip(y *Node, at *kpath.KPath, drop func(*kpath.KPath, *Node) bool) int {
	if y == nil || y.Type.IsLeaf() {
		return 0
	}
	n := 0
	var remove []int
	for i, v := range y.Values {
		var seg *kpath.KPath
		if y.Type == CompoundType {
			seg = kpath.Field(y.Fields[i])
		} else {
			seg = kpath.Index(i)
		}
		kp := at.Append(seg)
		if !v.Type.IsLeaf() {
			n += strip(v, kp, drop)
			continue
		}
		if drop(kp, v) {
			remove = append(remove, i)
		}
	}
	for j := len(remove) - 1; j >= 0; j-- {
		i := remove[j]
		if y.Type == CompoundType {
			y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		}
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
	}
	return n + len(remove)
}

// IsEmpty reports whether y is an empty string, list or compound.
func IsEmpty(y *Node) bool {
	switch y.Type {
	case StringType:
		return y.String == ""
	case CompoundType, ListType:
		return len(y.Values) == 0
	}
	return false
}
