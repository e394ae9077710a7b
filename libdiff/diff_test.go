package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbtc/parse"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal up to key order",
			from: `{a: 1, b: {c: [1, 2]}}`,
			to:   `{b: {c: [1, 2]}, a: 1}`,
		},
		{
			name: "keys",
			from: `{a: 1, b: "x", d: {e: 1}}`,
			to:   `{a: 2, c: 3b, d: {e: 1, f: 2}}`,
			want: []string{`~ a: 1 -> 2`, `- b: x`, `+ d.f: 2`, `+ c: 3b`},
		},
		{
			name: "width",
			from: `{a: 1}`,
			to:   `{a: 1L}`,
			want: []string{`~ a: 1 -> 1L`},
		},
		{
			name: "list insert",
			from: `["a", "b", "c"]`,
			to:   `["a", "x", "b", "c"]`,
			want: []string{`+ [1]: x`},
		},
		{
			name: "list delete",
			from: `["a", "b", "c"]`,
			to:   `["a", "c"]`,
			want: []string{`- [1]: b`},
		},
		{
			name: "list replace",
			from: `["a", "b", "c"]`,
			to:   `["a", "y", "c"]`,
			want: []string{`~ [1]: b -> y`},
		},
		{
			name: "nested in list",
			from: `{Items: [{id: "a", Count: 1}, {id: "b"}]}`,
			to:   `{Items: [{id: "a", Count: 2}, {id: "b"}]}`,
			want: []string{`~ Items[0].Count: 1 -> 2`},
		},
		{
			name: "type change",
			from: `{a: [1]}`,
			to:   `{a: {b: 1}}`,
			want: []string{`~ a: [1] -> {b:1}`},
		},
		{
			name: "root",
			from: `1`,
			to:   `"1"`,
			want: []string{`~ .: 1 -> "1"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Diff(parse.MustParseString(tt.from), parse.MustParseString(tt.to))
			var got []string
			for i := range changes {
				got = append(got, changes[i].String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineDiff(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nx\nc\n")
	want := []Line{{Equal, "a"}, {Delete, "b"}, {Insert, "x"}, {Equal, "c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("not changed")
	}
	same := Lines(parse.MustParseString(`{a: 1}`), parse.MustParseString(`{a: 1}`))
	if Changed(same) {
		t.Errorf("equal trees changed: %v", same)
	}
}
