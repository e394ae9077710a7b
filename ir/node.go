package ir

import (
	"maps"
	"slices"
)

// Node is a tagged tree value. Compounds keep their keys in Fields and
// the corresponding values in Values, lists keep their elements in
// Values. A node owns its children; there are no back references.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string

	Width   Width
	Int64   int64
	Float64 float64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Width = y.Width
	dst.Int64 = y.Int64
	dst.Float64 = y.Float64
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

// NewCompound returns an empty compound.
func NewCompound() *Node {
	return &Node{Type: CompoundType, Fields: []string{}, Values: []*Node{}}
}

// NewList returns an empty list.
func NewList() *Node {
	return &Node{Type: ListType, Values: []*Node{}}
}

// FromMap builds a compound with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := NewCompound()
	keys := slices.Sorted(maps.Keys(yMap))
	for _, key := range keys {
		y := yMap[key]
		if y == nil {
			continue
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, y)
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != CompoundType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field] = node.Values[i]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a compound preserving the order of kvs. Later
// duplicates replace earlier ones in place and nil values are skipped.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewCompound()
	for _, kv := range kvs {
		if kv.Val == nil {
			continue
		}
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := NewList()
	for _, y := range ySlice {
		if y == nil {
			continue
		}
		res.Values = append(res.Values, y)
	}
	return res
}

// Get returns the value of field in compound y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != CompoundType {
		return nil
	}
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in y.Fields or -1.
func (y *Node) FieldIndex(field string) int {
	return slices.Index(y.Fields, field)
}

// Set stores val under field, replacing an existing value in place or
// appending a new key. It panics if y is not a compound or val is nil.
func (y *Node) Set(field string, val *Node) {
	if y.Type != CompoundType {
		panic("ir: Set on " + y.Type.String())
	}
	if val == nil {
		panic("ir: Set with nil value")
	}
	if i := y.FieldIndex(field); i != -1 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

// Delete removes field from compound y and reports whether it was there.
func (y *Node) Delete(field string) bool {
	i := y.FieldIndex(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Depth returns the nesting depth of y; a primitive has depth 1.
func (y *Node) Depth() int {
	depth, deepest := 0, 0
	_ = y.Visit(func(_ *Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return false, nil
		}
		depth++
		if depth > deepest {
			deepest = depth
		}
		return true, nil
	})
	return deepest
}
