package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/signadot/nbtc/format"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "Count", Val: ir.FromByte(3)},
		{Key: "display", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "Name", Val: ir.FromString("Sword of 1000 truths")},
			{Key: "Lore", Val: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("true")})},
		})},
		{Key: "odd key", Val: ir.FromShort(-2)},
		{Key: "Damage", Val: ir.FromFloat(1.5)},
		{Key: "Weight", Val: ir.FromDouble(2)},
		{Key: "Big", Val: ir.FromLong(1 << 40)},
		{Key: "Tags", Val: ir.FromSlice([]*ir.Node{ir.NewCompound(), ir.NewList()})},
		{Key: "num", Val: ir.FromString("12")},
		{Key: "e5", Val: ir.FromString("e5")},
	})
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(sample(), Compact(true))
	want := `{Count:3b,display:{Name:"Sword of 1000 truths",Lore:[a,"true"]},"odd key":-2s,Damage:1.5f,Weight:2d,Big:1099511627776L,Tags:[{},[]],num:"12",e5:"e5"}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	got := MustString(ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.FromString("x")}})},
	}))
	want := strings.Join([]string{
		"{",
		"  a: [1, 2],",
		"  b: {",
		"    c: x",
		"  }",
		"}",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSNBTRoundTrip(t *testing.T) {
	for _, compact := range []bool{true, false} {
		text := MustString(sample(), Compact(compact))
		back, err := parse.ParseString(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		if !ir.Equal(back, sample()) {
			t.Errorf("round trip of %q differs", text)
		}
		if again := MustString(back, Compact(compact)); again != text {
			t.Errorf("widths not preserved:\n%s\n%s", text, again)
		}
	}
}

func TestEncodeJSONYAML(t *testing.T) {
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		t.Run(f.String(), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(sample(), buf, EncodeFormat(f)); err != nil {
				t.Fatal(err)
			}
			back, err := parse.Parse(buf.Bytes(), parse.ParseFormat(f))
			if err != nil {
				t.Fatalf("parse %s: %v", buf, err)
			}
			if !ir.Equal(back, sample()) {
				t.Errorf("round trip differs:\n%s", buf)
			}
			if back.Fields[0] != "Count" || back.Fields[len(back.Fields)-1] != "e5" {
				t.Errorf("key order lost: %v", back.Fields)
			}
		})
	}
}

func TestColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	tree := ir.FromKeyVals([]ir.KeyVal{
		{Key: "n", Val: ir.FromByte(5)},
		{Key: "s", Val: ir.FromString("plain")},
		{Key: "t", Val: ir.FromString("$base.Count")},
	})
	p := NewPalette()
	got := MustString(tree, Compact(true), EncodeColors(p))
	for _, want := range []string{
		p.Paint(NumberRole, "5") + p.Suffix(ir.ByteWidth, "b"),
		p.Paint(StringRole, "plain"),
		p.Paint(TemplateRole, `"$base.Count"`),
		p.Paint(KeyRole, "n"),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}
	if p.Paint(StringRole, "x") == p.Paint(TemplateRole, "x") {
		t.Error("template strings are not told apart")
	}
	if p.Suffix(ir.ByteWidth, "b") == p.Suffix(ir.ShortWidth, "b") {
		t.Error("width suffixes are not told apart")
	}
	if p.Suffix(ir.IntWidth, "") != "" {
		t.Error("empty suffix colored")
	}
	if plain := MustString(tree, Compact(true), EncodeColors(nil)); plain != `{n:5b,s:plain,t:"$base.Count"}` {
		t.Errorf("uncolored output %q", plain)
	}
}

func TestStringRole(t *testing.T) {
	tests := map[string]Role{
		"$base":         TemplateRole,
		"x $[base.n] y": TemplateRole,
		"$5..10":        StringRole,
		"$overwrite":    StringRole,
		"$":             StringRole,
		"plain":         StringRole,
	}
	for in, want := range tests {
		if got := stringRole(in); got != want {
			t.Errorf("stringRole(%q) = %v, want %v", in, got, want)
		}
	}
}
