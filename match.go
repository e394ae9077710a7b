package nbtc

import (
	"strings"

	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/numrange"
)

// ValuesMatch reports whether the primitive pattern matches candidate.
//
// The rules apply in order:
//   - an empty string pattern matches anything
//   - two strings match when equal
//   - a number candidate matches a number pattern of equal magnitude, or
//     a string pattern "$<range>" whose range holds the magnitude
//   - nothing else matches
func ValuesMatch(candidate, pattern *ir.Node) bool {
	res := valuesMatch(candidate, pattern)
	if debug.Match() {
		debug.Logf("match %s against %s: %t\n", debug.SNBT{Node: candidate}, debug.SNBT{Node: pattern}, res)
	}
	return res
}

func valuesMatch(candidate, pattern *ir.Node) bool {
	if candidate == nil || pattern == nil {
		return false
	}
	if pattern.Type == ir.StringType && pattern.String == "" {
		return true
	}
	switch candidate.Type {
	case ir.StringType:
		return pattern.Type == ir.StringType && candidate.String == pattern.String
	case ir.NumberType:
		switch pattern.Type {
		case ir.NumberType:
			return candidate.Float64 == pattern.Float64
		case ir.StringType:
			rng, ok := strings.CutPrefix(pattern.String, "$")
			if !ok {
				return false
			}
			return numrange.Match(rng, candidate.Float64)
		}
	}
	return false
}
