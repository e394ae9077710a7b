package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbtc/ir"
)

type parseTest struct {
	in   string
	want *ir.Node
}

func TestParseSNBT(t *testing.T) {
	pts := []parseTest{
		{in: `1`, want: ir.FromInt(1)},
		{in: `3b`, want: ir.FromByte(3)},
		{in: `-4s`, want: ir.FromShort(-4)},
		{in: `9000000000`, want: ir.FromLong(9000000000)},
		{in: `12L`, want: ir.FromLong(12)},
		{in: `1.5f`, want: ir.FromFloat(1.5)},
		{in: `2.25`, want: ir.FromDouble(2.25)},
		{in: `2d`, want: ir.FromDouble(2)},
		{in: `1e3`, want: ir.FromDouble(1000)},
		{in: `true`, want: ir.FromByte(1)},
		{in: `false`, want: ir.FromByte(0)},
		{in: `hello`, want: ir.FromString("hello")},
		{in: `300b`, want: ir.FromString("300b")},
		{in: `1.5b`, want: ir.FromString("1.5b")},
		{in: `"a b"`, want: ir.FromString("a b")},
		{in: `'it\'s'`, want: ir.FromString("it's")},
		{in: `[]`, want: ir.NewList()},
		{in: `{}`, want: ir.NewCompound()},
		{in: `[1, 2,]`, want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{in: `[B; 1b, 2b]`, want: ir.FromSlice([]*ir.Node{ir.FromByte(1), ir.FromByte(2)})},
		{in: `[L;1,2]`, want: ir.FromSlice([]*ir.Node{ir.FromLong(1), ir.FromLong(2)})},
		{
			in: `{Count: 3b, display: {Name: "Sword", Lore: [a, "b c"]}, "odd key": 1}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: "Count", Val: ir.FromByte(3)},
				{Key: "display", Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: "Name", Val: ir.FromString("Sword")},
					{Key: "Lore", Val: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b c")})},
				})},
				{Key: "odd key", Val: ir.FromInt(1)},
			}),
		},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got, err := ParseString(pt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(pt.want, got); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", pt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		``,
		`{`,
		`{a}`,
		`{a:1 b:2}`,
		`[1 2]`,
		`[X;1]`,
		`[B;1.5f]`,
		`1 2`,
		`}`,
		`"open`,
		`{a:@}`,
	}
	for _, in := range bad {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseString(in); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", in, err)
			}
		})
	}
}

func TestParseDepth(t *testing.T) {
	in := strings.Repeat("[", 20) + strings.Repeat("]", 20)
	if _, err := Parse([]byte(in), MaxDepth(10)); !errors.Is(err, ir.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}
	if _, err := Parse([]byte(in), MaxDepth(20)); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	in := `
z: 1
a:
  name: x
  flag: true
  ratio: 0.5
  skip: null
list: [1, two]
`
	got, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "list"}, got.Fields); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "z", Val: ir.FromInt(1)},
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "name", Val: ir.FromString("x")},
			{Key: "flag", Val: ir.FromByte(1)},
			{Key: "ratio", Val: ir.FromDouble(0.5)},
		})},
		{Key: "list", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")})},
	})
	if !ir.Equal(got, want) {
		t.Errorf("Parse = %v, want %v", ir.ToAny(got), ir.ToAny(want))
	}
}

func TestParseJSON(t *testing.T) {
	got, err := Parse([]byte(`{"b": [1, 2.5], "a": "s"}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, got.Fields); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
	if _, err := Parse([]byte(`[1, null]`), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Errorf("null list element: %v", err)
	}
}
