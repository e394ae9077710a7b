package ir

import (
	"testing"

	"github.com/signadot/nbtc/ir/kpath"
)

func TestStrip(t *testing.T) {
	tree := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromString("")},
		{Key: "b", Val: FromString("keep")},
		{Key: "c", Val: FromSlice([]*Node{FromString(""), FromString(""), FromInt(1), FromString("")})},
		{Key: "d", Val: FromKeyVals([]KeyVal{{Key: "e", Val: FromString("")}})},
	})
	var seen []string
	n := Strip(tree, func(kp *kpath.KPath, leaf *Node) bool {
		seen = append(seen, kp.String())
		return IsEmpty(leaf)
	})
	if n != 5 {
		t.Errorf("removed %d, want 5", n)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromString("keep")},
		{Key: "c", Val: FromSlice([]*Node{FromInt(1)})},
		{Key: "d", Val: NewCompound()},
	})
	if !Equal(tree, want) {
		t.Errorf("Strip = %v, want %v", ToAny(tree), ToAny(want))
	}
	wantSeen := []string{"a", "b", "c[0]", "c[1]", "c[2]", "c[3]", "d.e"}
	if len(seen) != len(wantSeen) {
		t.Fatalf("visited %v, want %v", seen, wantSeen)
	}
	for i := range seen {
		if seen[i] != wantSeen[i] {
			t.Errorf("visit %d = %q, want %q", i, seen[i], wantSeen[i])
		}
	}
}
