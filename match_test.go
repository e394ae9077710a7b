package nbtc

import (
	"testing"

	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

type matchTest struct {
	candidate string
	pattern   string
	res       bool
}

var matchTests = []matchTest{
	{candidate: `1`, pattern: `1`, res: true},
	{candidate: `0`, pattern: `1`, res: false},
	{candidate: `1b`, pattern: `1.0d`, res: true},
	{candidate: `5L`, pattern: `5s`, res: true},
	{candidate: `hello`, pattern: `hello`, res: true},
	{candidate: `hello`, pattern: `Hello`, res: false},
	{candidate: `7`, pattern: `"$5..10"`, res: true},
	{candidate: `12`, pattern: `"$5..10"`, res: false},
	{candidate: `-100`, pattern: `"$..10"`, res: true},
	{candidate: `5`, pattern: `"$5.."`, res: true},
	{candidate: `4.5f`, pattern: `"$5.."`, res: false},
	{candidate: `7`, pattern: `"$bogus"`, res: false},
	{candidate: `7`, pattern: `"5..10"`, res: false},
	{candidate: `"$5..10"`, pattern: `"$5..10"`, res: true},
	{candidate: `"7"`, pattern: `"$5..10"`, res: false},
	{candidate: `7`, pattern: `"7"`, res: false},
	{candidate: `"7"`, pattern: `7`, res: false},
	{candidate: `{a:1}`, pattern: `{a:1}`, res: false},
	{candidate: `[1]`, pattern: `1`, res: false},
	// the empty string is a wildcard
	{candidate: `1`, pattern: `""`, res: true},
	{candidate: `abc`, pattern: `""`, res: true},
	{candidate: `{a:1}`, pattern: `""`, res: true},
	{candidate: `[]`, pattern: `""`, res: true},
	{candidate: `""`, pattern: `x`, res: false},
}

func TestValuesMatch(t *testing.T) {
	for _, mt := range matchTests {
		t.Run(mt.candidate+"~"+mt.pattern, func(t *testing.T) {
			c := parse.MustParseString(mt.candidate)
			p := parse.MustParseString(mt.pattern)
			if got := ValuesMatch(c, p); got != mt.res {
				t.Errorf("ValuesMatch(%s, %s) = %t, want %t", mt.candidate, mt.pattern, got, mt.res)
			}
		})
	}
	if ValuesMatch(nil, ir.FromString("")) || ValuesMatch(ir.FromInt(1), nil) {
		t.Error("nil sides never match")
	}
}
