package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
	"github.com/signadot/nbtc/recipe"
)

func snbt(y *ir.Node) string {
	return encode.MustString(y, encode.Compact(true))
}

func TestSetRef(t *testing.T) {
	refs := map[string]*ir.Node{}
	for _, a := range []string{
		"base={Count: 3b}",
		"base.display.Name=Wand",
		"ingredient.id=minecraft:name_tag",
		"ingredient.lore=[a, b]",
	} {
		if _, err := refOptFunc(refs)(nil, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	want := map[string]string{
		"base":       `{Count: 3b, display: {Name: "Wand"}}`,
		"ingredient": `{id: "minecraft:name_tag", lore: ["a", "b"]}`,
	}
	for name, w := range want {
		if got := refs[name]; !ir.Equal(got, parse.MustParseString(w)) {
			t.Errorf("%s = %s, want %s", name, snbt(got), w)
		}
	}
	for _, bad := range []string{"noequals", "[0]=1", "base.Count.x=1"} {
		if _, err := refOptFunc(refs)(nil, bad); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestTrim(t *testing.T) {
	pattern := parse.MustParseString(`{display: {Name: ""}, Lore: ["b"]}`)
	doc := parse.MustParseString(`{display: {Name: "x", Color: 3}, Lore: ["a", "b"], Damage: 1}`)
	got := trim(pattern, doc)
	want := parse.MustParseString(`{display: {Name: "x"}, Lore: ["b"]}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %s, want %s", snbt(got), snbt(want))
	}
}

func TestMatchFunc(t *testing.T) {
	data := parse.MustParseString(`{a: 1, b: 2}`)
	pattern := parse.MustParseString(`{a: 1, c: 3}`)
	contains, _ := matchFunc("contains")
	overlap, _ := matchFunc("overlap")
	if contains(data, pattern) || !overlap(data, pattern) {
		t.Error("unexpected match results")
	}
	if _, err := matchFunc("near"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestApplyPatch(t *testing.T) {
	target := parse.MustParseString(`{Count: 3b, Damage: 2s, Lore: ["a"]}`)
	ops := parse.MustParse([]byte(`[
		{"op": "replace", "path": "/Count", "value": 300},
		{"op": "add", "path": "/Lore/-", "value": "b"},
		{"op": "remove", "path": "/Damage"}
	]`), parse.ParseJSON())
	got, err := applyPatch(target, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := parse.MustParseString(`{Count: 300, Lore: ["a", "b"]}`)
	if !ir.Equal(got, want) {
		t.Errorf("got %s, want %s", snbt(got), snbt(want))
	}

	got, err = applyPatch(target, parse.MustParse([]byte(`[{"op": "replace", "path": "/Count", "value": 5}]`), parse.ParseJSON()))
	if err != nil {
		t.Fatal(err)
	}
	if c := ir.Get(got, "Count"); c.Width != ir.ByteWidth || ir.Get(got, "Damage").Width != ir.ShortWidth {
		t.Errorf("widths not kept: %s", snbt(got))
	}
	if _, err := applyPatch(target, parse.MustParseString(`[{op: "remove", path: "/Nope"}]`)); err == nil {
		t.Error("removing a missing key succeeded")
	}
}

func TestWriteDiff(t *testing.T) {
	color.NoColor = true
	a := parse.MustParseString(`{a: 1, b: "x"}`)
	var out strings.Builder
	differs, err := writeChanges(&out, a, parse.MustParseString(`{b: "x", a: 1}`))
	if err != nil || differs || out.Len() != 0 {
		t.Errorf("reordered keys differ: %t %v %q", differs, err, out.String())
	}
	differs, err = writeChanges(&out, a, parse.MustParseString(`{a: 2, b: "x"}`))
	if err != nil || !differs {
		t.Fatalf("got %t, %v", differs, err)
	}
	if !strings.Contains(out.String(), "~ a: 1 -> 2") {
		t.Errorf("diff output %q", out.String())
	}
	out.Reset()
	differs, err = writeLines(&out, a, parse.MustParseString(`{a: 2, b: "x"}`))
	if err != nil || !differs {
		t.Fatalf("got %t, %v", differs, err)
	}
	if !strings.Contains(out.String(), "- ") || !strings.Contains(out.String(), "+ ") {
		t.Errorf("line diff output %q", out.String())
	}
}

func TestNearestID(t *testing.T) {
	recipes := []*recipe.Recipe{{ID: "name_wand"}, {ID: "sword"}, {ID: "name_want"}}
	tests := []struct{ id, want string }{
		{"name_wnd", "name_wand"},
		{"swrd", "sword"},
		{"pickaxe", ""},
	}
	for _, tt := range tests {
		if got := nearestID(recipes, tt.id); got != tt.want {
			t.Errorf("nearestID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
	_, err := pickRecipe(recipes, "swrd", nil)
	if err == nil || !strings.Contains(err.Error(), `did you mean "sword"`) {
		t.Errorf("got %v", err)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name    string
		cfg     MainConfig
		env     []string
		want    format.Format
		wantErr bool
	}{
		{name: "default", want: format.SNBTFormat},
		{name: "flag", cfg: MainConfig{Y: true}, want: format.YAMLFormat},
		{name: "env", env: []string{"HOME=/", "NBTC_FORMAT=json"}, want: format.JSONFormat},
		{name: "flag over env", cfg: MainConfig{S: true}, env: []string{"NBTC_FORMAT=yaml"}, want: format.SNBTFormat},
		{name: "two flags", cfg: MainConfig{S: true, J: true}, wantErr: true},
		{name: "bad env", env: []string{"NBTC_FORMAT=toml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.resolveFormat(tt.env)
			if tt.wantErr {
				if !errors.Is(err, cli.ErrUsage) {
					t.Errorf("got %v, want ErrUsage", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.ioFormat(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOutOpt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.snbt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	write := func(keep bool) {
		cfg := &MainConfig{}
		cc := &cli.Context{}
		if _, err := cfg.outOpt(cc, path); err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(cc.Out, "new"); err != nil {
			t.Fatal(err)
		}
		if err := cfg.CloseOut(keep); err != nil {
			t.Fatal(err)
		}
	}

	write(false)
	if d, _ := os.ReadFile(path); string(d) != "old" {
		t.Errorf("failed run replaced the output: %q", d)
	}
	write(true)
	if d, _ := os.ReadFile(path); string(d) != "new" {
		t.Errorf("got %q, want new", d)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 1 {
		t.Errorf("temporary files left: %v", entries)
	}
}
