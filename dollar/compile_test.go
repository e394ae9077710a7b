package dollar

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
	"github.com/signadot/nbtc/parse"
)

func snbt(y *ir.Node) string {
	return encode.MustString(y, encode.Compact(true))
}

func TestCompile(t *testing.T) {
	tree := parse.MustParseString(`{
		id: "minecraft:diamond_sword",
		Count: "$base.Count",
		display: {
			Name: "$[base.display.Name + \"!\"]",
			Lore: ["$base.display.Lore[0]", "static", "Count: $[base.Count]"]
		},
		Price: "$5..10",
		Escaped: "$$base",
		"$": "$ingredient"
	}`)
	orig := tree.Clone()
	tmpl, err := Compile(tree)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tree, orig) {
		t.Errorf("Compile modified its input:\n%s", snbt(tree))
	}
	want := parse.MustParseString(`{
		id: "minecraft:diamond_sword",
		display: {Lore: ["$base.display.Lore[0]", "static", "Count: $[base.Count]"]},
		Price: "$5..10",
		Escaped: "$base"
	}`)
	if !ir.Equal(tmpl.Tree, want) {
		t.Errorf("compiled tree\n%s\nwant\n%s", snbt(tmpl.Tree), snbt(want))
	}

	type summary struct {
		Location string
		Kind     Kind
		InList   bool
		Merge    bool
	}
	var got []summary
	for _, d := range tmpl.Dollars {
		got = append(got, summary{d.Location.String(), d.Kind, d.InList, d.Merge})
		back, err := kpath.Parse(d.Location.String())
		if err != nil || back.String() != d.Location.String() {
			t.Errorf("location %s does not read back: %v", d.Location, err)
		}
	}
	wantDollars := []summary{
		{"Count", RefKind, false, false},
		{"display.Name", ExprKind, false, false},
		{"display.Lore[0]", RefKind, true, false},
		{"display.Lore[2]", TextKind, true, false},
		{`"$"`, RefKind, false, true},
	}
	if diff := cmp.Diff(wantDollars, got); diff != "" {
		t.Errorf("dollars (-want +got):\n%s", diff)
	}
}

func TestCompileRootExpression(t *testing.T) {
	tmpl := MustCompile(ir.FromString("$base.tag"))
	if len(tmpl.Dollars) != 1 || tmpl.Dollars[0].Location != nil {
		t.Fatalf("got %v", tmpl.Dollars)
	}
}

func TestCompileIdempotent(t *testing.T) {
	tree := parse.MustParseString(`{a: "$base.x ?? 3", b: ["$[base.y]", "$base"], c: {"$": "$base.tag"}}`)
	t1 := MustCompile(tree)
	t2 := MustCompile(tree)
	if diff := cmp.Diff(t1.Dollars, t2.Dollars,
		cmpopts.IgnoreUnexported(Dollar{}),
		cmp.Comparer(ir.Equal),
	); diff != "" {
		t.Errorf("compiles differ:\n%s", diff)
	}
	if !ir.Equal(t1.Tree, t2.Tree) {
		t.Errorf("trees differ: %s vs %s", snbt(t1.Tree), snbt(t2.Tree))
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		in       string
		location string
	}{
		{`{a: "$base."}`, "a"},
		{`{a: {b: ["ok", "$[1 +]"]}}`, "a.b[1]"},
		{`{a: "$base as quux"}`, "a"},
		{`{a: "x $[oops"}`, "a"},
		{`{"$": 5}`, `"$"`},
		{`{"$": "plain"}`, `"$"`},
		{`{"$": "Count: $[base.Count]"}`, `"$"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Compile(parse.MustParseString(tt.in))
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("got %v, want ErrSyntax", err)
			}
			var cErr *CompileError
			if !errors.As(err, &cErr) {
				t.Fatalf("got %T, want *CompileError", err)
			}
			if cErr.Location != tt.location {
				t.Errorf("location %q, want %q", cErr.Location, tt.location)
			}
		})
	}
}

func TestCompileMaxDepth(t *testing.T) {
	tree := parse.MustParseString(`{a: {b: {c: {d: "$base"}}}}`)
	if _, err := Compile(tree, MaxDepth(3)); !errors.Is(err, ir.ErrTooDeep) {
		t.Errorf("got %v, want ErrTooDeep", err)
	}
	if _, err := Compile(tree, MaxDepth(5)); err != nil {
		t.Error(err)
	}
}

func TestDollarString(t *testing.T) {
	tmpl := MustCompile(parse.MustParseString(`{a: {b: "$base.x ?? 3 as long"}}`))
	got := tmpl.Dollars[0].String()
	for _, want := range []string{"a.b", "ref", "base", "x", "?? 3", "as long"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}
}
