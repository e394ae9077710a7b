package numrange

import (
	"errors"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		rng  string
		v    float64
		want bool
	}{
		{"5..10", 7, true},
		{"5..10", 12, false},
		{"5..10", 5, true},
		{"5..10", 10, true},
		{"..10", -100, true},
		{"..10", 10.5, false},
		{"5..", 5, true},
		{"5..", 4.99, false},
		{"7", 7, true},
		{"7", 7.5, false},
		{"(5..10)", 5, false},
		{"(5..10)", 10, false},
		{"(5..10)", 6, true},
		{"[5..10)", 5, true},
		{"[5..10)", 10, false},
		{"-2.5..-1", -2, true},
		{" 1 .. 2 ", 1.5, true},
		{"", 0, false},
		{"a..b", 0, false},
		{"1..2..3", 2, false},
		{"(7)", 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			if got := Match(tt.rng, tt.v); got != tt.want {
				t.Errorf("Match(%q, %v) = %v, want %v", tt.rng, tt.v, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "x", "1..y", "NaN..1"} {
		if _, err := Parse(in); !errors.Is(err, ErrRange) {
			t.Errorf("Parse(%q) error = %v, want ErrRange", in, err)
		}
	}
}

func TestCached(t *testing.T) {
	a, err := Cached("1..3")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Cached("1..3")
	if a != b {
		t.Error("Cached returned distinct ranges for the same source")
	}
	if _, err := Cached("bad"); err == nil {
		t.Error("expected cached error")
	}
	if _, err := Cached("bad"); err == nil {
		t.Error("expected cached error on second lookup")
	}
}

func TestString(t *testing.T) {
	for _, in := range []string{"5..10", "..10", "5..", "7", "(1..2)", "1.5..2)"} {
		r, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := r.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
	}
}
