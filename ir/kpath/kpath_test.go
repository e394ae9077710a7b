package kpath

import (
	"errors"
	"reflect"
	"testing"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParseKPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *KPath
		wantErr bool
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "simple field",
			input: "a",
			want:  &KPath{Field: stringPtr("a")},
		},
		{
			name:  "nested fields",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "list index",
			input: "a[0]",
			want: &KPath{
				Field: stringPtr("a"),
				Next:  &KPath{Index: intPtr(0)},
			},
		},
		{
			name:  "leading index",
			input: "[2].name",
			want: &KPath{
				Index: intPtr(2),
				Next:  &KPath{Field: stringPtr("name")},
			},
		},
		{
			name:  "nested indices",
			input: "a[1][12]",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Index: intPtr(1),
					Next:  &KPath{Index: intPtr(12)},
				},
			},
		},
		{
			name:  "quoted field",
			input: `a."b.c"[0]`,
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b.c"),
					Next:  &KPath{Index: intPtr(0)},
				},
			},
		},
		{
			name:  "single quoted field",
			input: `'x y'`,
			want:  &KPath{Field: stringPtr("x y")},
		},
		{name: "leading dot", input: ".a", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "double dot", input: "a..b", wantErr: true},
		{name: "dot before index", input: "a.[0]", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "empty index", input: "a[]", wantErr: true},
		{name: "unterminated index", input: "a[0", wantErr: true},
		{name: "text after index", input: "a[0]b", wantErr: true},
		{name: "stray bracket", input: "a]", wantErr: true},
		{name: "unterminated quote", input: `"abc`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrSyntax) {
					t.Errorf("Parse(%q) error %v does not wrap ErrSyntax", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKPathString(t *testing.T) {
	tests := []string{
		"a",
		"a.b.c",
		"a[0]",
		"[3].x",
		"a[1][2].b",
		`"b.c"`,
		`a."x y"[0]`,
	}
	for _, in := range tests {
		kp := MustParse(in)
		if got := kp.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"a[0].b", []string{"a", "[0]", "b"}},
		{"[1][2]", []string{"[1]", "[2]"}},
		{"display.Lore[3]", []string{"display", "Lore", "[3]"}},
	}
	for _, tt := range tests {
		got := SplitPath(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParentAppend(t *testing.T) {
	kp := MustParse("a.b[2]")
	if got := kp.Parent().String(); got != "a.b" {
		t.Errorf("Parent = %q", got)
	}
	if got := kp.LastSegment().SegmentString(); got != "[2]" {
		t.Errorf("LastSegment = %q", got)
	}
	if kp.String() != "a.b[2]" {
		t.Errorf("Parent mutated the path: %q", kp.String())
	}
	if MustParse("a").Parent() != nil {
		t.Error("single segment parent should be nil")
	}
	child := kp.Append(Field("c"))
	if got := child.String(); got != "a.b[2].c" {
		t.Errorf("Append = %q", got)
	}
	if kp.Len() != 3 || child.Len() != 4 {
		t.Errorf("Len = %d, %d", kp.Len(), child.Len())
	}
	var root *KPath
	if got := root.Append(Index(1)).String(); got != "[1]" {
		t.Errorf("nil Append = %q", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct{ a, b, want string }{
		{"a", "b.c", "a.b.c"},
		{"a", "[0]", "a[0]"},
		{"", "b", "b"},
		{"a", "", "a"},
	}
	for _, tt := range tests {
		if got := Join(tt.a, tt.b); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"a.b", "a", 1},
		{"a[0]", "a[1]", -1},
		{"a.x", "a[0]", -1},
	}
	for _, tt := range tests {
		if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
