package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/nbtc/ir/kpath"
)

// GetTag walks all segments of kp except the last and returns the
// container reached, which is where the last segment would be looked
// up. It returns nil on a missing key, an out of range index or a
// descent into a primitive.
//
// Example:
//
//	ir.GetTag(tree, kpath.MustParse("display.Lore[0]")) // the Lore list
func GetTag(y *Node, kp *kpath.KPath) *Node {
	return Lookup(y, kp.Parent())
}

// Lookup walks every segment of kp and returns the node reached without
// copying it, or nil if the path does not exist in y. A nil kp
// addresses y itself.
func Lookup(y *Node, kp *kpath.KPath) *Node {
	res := y
	for x := kp; x != nil && res != nil; x = x.Next {
		res = step(res, x)
	}
	return res
}

func step(y *Node, seg *kpath.KPath) *Node {
	switch {
	case seg.Field != nil:
		return Get(y, *seg.Field)
	case seg.Index != nil:
		if y.Type != ListType {
			return nil
		}
		i := *seg.Index
		if i < 0 || i >= len(y.Values) {
			return nil
		}
		return y.Values[i]
	}
	return nil
}

// GetKPath navigates a tree using a path string and returns a copy of
// the node found, or nil if the path does not exist.
//
// Example:
//
//	rootNode.GetKPath("a.b[0]")
//
// Returns an error if the path is invalid.
func (y *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return Lookup(y, p).Clone(), nil
}

// ParentOrCreate returns the compound that holds the last segment of
// kp, creating missing compounds for field segments on the way. List
// indices are never created. The whole path is checked before anything
// is created, so on error y is unchanged.
func ParentOrCreate(y *Node, kp *kpath.KPath) (*Node, error) {
	if kp == nil {
		return nil, pathErr(y, kp, "empty path")
	}
	cur := y
	x := kp
	for ; x.Next != nil; x = x.Next {
		next, err := descend(y, kp, cur, x)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		cur = next
	}
	if x.Next == nil {
		if cur.Type != CompoundType {
			return nil, pathErr(y, kp, "parent is a "+cur.Type.String()+", not a Compound")
		}
		return cur, nil
	}
	// x names the first missing field; everything left must be a field.
	for rest := x; rest.Next != nil; rest = rest.Next {
		if rest.Index != nil {
			return nil, pathErr(y, kp, "index "+strconv.Itoa(*rest.Index)+" into a missing list")
		}
	}
	for ; x.Next != nil; x = x.Next {
		created := NewCompound()
		cur.Set(*x.Field, created)
		cur = created
	}
	return cur, nil
}

// descend takes one non-terminal step for ParentOrCreate. A nil node
// with a nil error means the field is missing and may be created.
func descend(root *Node, kp *kpath.KPath, cur *Node, seg *kpath.KPath) (*Node, error) {
	switch {
	case seg.Index != nil:
		if cur.Type != ListType {
			return nil, pathErr(root, kp, fmt.Sprintf("index %d into a %s", *seg.Index, cur.Type))
		}
		if *seg.Index >= len(cur.Values) {
			return nil, pathErr(root, kp, fmt.Sprintf("index %d out of range (len %d)", *seg.Index, len(cur.Values)))
		}
		next := cur.Values[*seg.Index]
		if next.Type.IsLeaf() {
			return nil, pathErr(root, kp, fmt.Sprintf("element %d is a %s", *seg.Index, next.Type))
		}
		return next, nil
	case seg.Field != nil:
		if cur.Type != CompoundType {
			return nil, pathErr(root, kp, fmt.Sprintf("field %q in a %s", *seg.Field, cur.Type))
		}
		next := Get(cur, *seg.Field)
		if next != nil && next.Type.IsLeaf() {
			return nil, pathErr(root, kp, fmt.Sprintf("field %q is a %s", *seg.Field, next.Type))
		}
		return next, nil
	}
	return nil, pathErr(root, kp, "empty segment")
}

// SetKPath stores val at kp. A trailing field is set on the compound
// returned by ParentOrCreate; a trailing index replaces an existing list
// element.
func SetKPath(y *Node, kp *kpath.KPath, val *Node) error {
	last := kp.LastSegment()
	if last == nil {
		return pathErr(y, kp, "empty path")
	}
	if last.Field != nil {
		parent, err := ParentOrCreate(y, kp)
		if err != nil {
			return err
		}
		parent.Set(*last.Field, val)
		return nil
	}
	parent := GetTag(y, kp)
	if parent == nil || parent.Type != ListType {
		return pathErr(y, kp, "parent is not a List")
	}
	if *last.Index >= len(parent.Values) {
		return pathErr(y, kp, fmt.Sprintf("index %d out of range (len %d)", *last.Index, len(parent.Values)))
	}
	parent.Values[*last.Index] = val
	return nil
}

func pathErr(y *Node, kp *kpath.KPath, reason string) *PathError {
	return &PathError{Path: kp.String(), Tree: y, Reason: reason}
}
