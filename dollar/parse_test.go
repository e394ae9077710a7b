package dollar

import (
	"errors"
	"testing"

	"github.com/signadot/nbtc/ir"
)

func TestParseLeaf(t *testing.T) {
	tests := []struct {
		in       string
		kind     Kind
		ref      string
		path     string
		code     string
		cast     string
		fallback *ir.Node
	}{
		{in: "$base", kind: RefKind, ref: "base"},
		{in: "  $base  ", kind: RefKind, ref: "base"},
		{in: "$base.count", kind: RefKind, ref: "base", path: "count"},
		{in: "$ingredient.Items[0].id", kind: RefKind, ref: "ingredient", path: "Items[0].id"},
		{in: "$base[2]", kind: RefKind, ref: "base", path: "[2]"},
		{in: `$base."odd key".x`, kind: RefKind, ref: "base", path: `"odd key".x`},
		{in: "$_x1", kind: RefKind, ref: "_x1"},
		{in: "$base.Damage ?? 0s", kind: RefKind, ref: "base", path: "Damage", fallback: ir.FromShort(0)},
		{in: "$base.Damage as byte", kind: RefKind, ref: "base", path: "Damage", cast: "byte"},
		{in: `$base.Name ?? "no name" as string`, kind: RefKind, ref: "base", path: "Name", cast: "string", fallback: ir.FromString("no name")},
		{in: `$base.name ?? "a as int"`, kind: RefKind, ref: "base", path: "name", fallback: ir.FromString("a as int")},
		{in: `$base.x ?? "as" as string`, kind: RefKind, ref: "base", path: "x", cast: "string", fallback: ir.FromString("as")},
		{in: `$base.x ?? {a: "b as int", c: [1, 2]} as string`, kind: RefKind, ref: "base", path: "x", cast: "string",
			fallback: ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromString("b as int")}, {Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})}})},
		{in: "$base.count??0", kind: RefKind, ref: "base", path: "count", fallback: ir.FromInt(0)},
		{in: "$base[1]?? 2b", kind: RefKind, ref: "base", path: "[1]", fallback: ir.FromByte(2)},
		{in: "$[base.Count * 2]", kind: ExprKind, code: "base.Count * 2"},
		{in: "$[ base.Lore[0] ]", kind: ExprKind, code: "base.Lore[0]"},
		{in: `$[base.Name + "]"]`, kind: ExprKind, code: `base.Name + "]"`},
		{in: "$[base.Count] ?? 1 as long", kind: ExprKind, code: "base.Count", cast: "long", fallback: ir.FromInt(1)},
		{in: "Count: $[base.Count]", kind: TextKind},
		{in: "$[a] and $[b]", kind: TextKind},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := parseLeaf(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if d == nil {
				t.Fatal("parsed as plain text")
			}
			if d.Kind != tt.kind || d.Ref != tt.ref || d.Code != tt.code || d.Cast != tt.cast {
				t.Errorf("got kind=%s ref=%q code=%q cast=%q", d.Kind, d.Ref, d.Code, d.Cast)
			}
			if got := d.Path.String(); got != tt.path {
				t.Errorf("path = %q, want %q", got, tt.path)
			}
			if (d.Fallback == nil) != (tt.fallback == nil) || (d.Fallback != nil && !ir.Equal(d.Fallback, tt.fallback)) {
				t.Errorf("fallback = %v, want %v", d.Fallback, tt.fallback)
			}
			if tt.kind == ExprKind && d.program == nil {
				t.Error("program not compiled")
			}
		})
	}
}

func TestParseLeafPlain(t *testing.T) {
	for _, in := range []string{
		"",
		"plain",
		"$",
		"$5..10",
		"$..10",
		"$ 5",
		"$overwrite",
		"$$base",
		"costs $5",
		"a $$[b] c",
	} {
		d, err := parseLeaf(in)
		if err != nil || d != nil {
			t.Errorf("parseLeaf(%q) = %v, %v; want plain text", in, d, err)
		}
	}
}

func TestParseLeafErrors(t *testing.T) {
	for _, in := range []string{
		"$base.",
		"$base..x",
		"$base[x]",
		"$base[-1]",
		"$base-x",
		`$base."open`,
		"$base ??",
		"$base ?? {",
		"$base as quux",
		"$base as int long",
		`$base ?? "a" as "int"`,
		`$base ?? 1 2`,
		"$base.count?0",
		"$base.a?b",
		"$base ?? [1, 2",
		"$base extra words",
		"$[unclosed",
		"$[]",
		"$[1 +]",
		"text $[oops",
		"text $[1 +] more",
	} {
		t.Run(in, func(t *testing.T) {
			d, err := parseLeaf(in)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("parseLeaf(%q) = %v, %v; want ErrSyntax", in, d, err)
			}
		})
	}
}
