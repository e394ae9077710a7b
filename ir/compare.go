package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Numbers compare by magnitude regardless of width and compounds compare
// by their sorted keys, so key order never makes two compounds differ.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return cmp.Compare(a.Float64, b.Float64)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	case CompoundType:
		return compareCompounds(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Number < String < List < Compound
func rank(t Type) int {
	switch t {
	case NumberType:
		return 0
	case StringType:
		return 1
	case ListType:
		return 2
	case CompoundType:
		return 3
	}
	return 100
}

func compareLists(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareCompounds(a, b *Node) int {
	keysA := slices.Sorted(slices.Values(a.Fields))
	keysB := slices.Sorted(slices.Values(b.Fields))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(Get(a, keysA[i]), Get(b, keysB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
