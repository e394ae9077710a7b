package libdiff

import (
	"fmt"
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nbtc/encode"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
	Replace
)

func (o Op) String() string {
	switch o {
	case Equal:
		return " "
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is one difference between two trees. From is nil for an
// Insert and To is nil for a Delete. List indices in Path refer to the
// source list for a Delete and to the destination list otherwise.
type Change struct {
	Path *kpath.KPath
	Op   Op
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	at := c.Path.String()
	if at == "" {
		at = "."
	}
	switch c.Op {
	case Delete:
		return fmt.Sprintf("- %s: %s", at, snbt(c.From))
	case Insert:
		return fmt.Sprintf("+ %s: %s", at, snbt(c.To))
	}
	return fmt.Sprintf("~ %s: %s -> %s", at, snbt(c.From), snbt(c.To))
}

func snbt(y *ir.Node) string {
	return encode.MustString(y, encode.Compact(true))
}

// Diff returns the changes that turn from into to, in document order.
// Numbers differ when their magnitude or their width differ; key order
// is not a difference.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

func diff(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
	case from == nil:
		*res = append(*res, Change{Path: at, Op: Insert, To: to})
	case to == nil:
		*res = append(*res, Change{Path: at, Op: Delete, From: from})
	case from.Type == ir.CompoundType && to.Type == ir.CompoundType:
		diffCompound(at, from, to, res)
	case from.Type == ir.ListType && to.Type == ir.ListType:
		diffList(at, from, to, res)
	case summary(from) != summary(to):
		*res = append(*res, Change{Path: at, Op: Replace, From: from, To: to})
	}
}

func diffCompound(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	for i, field := range from.Fields {
		diff(at.Append(kpath.Field(field)), from.Values[i], ir.Get(to, field), res)
	}
	for i, field := range to.Fields {
		if ir.Get(from, field) == nil {
			*res = append(*res, Change{Path: at.Append(kpath.Field(field)), Op: Insert, To: to.Values[i]})
		}
	}
}

// diffList aligns the elements of from and to by a sequence diff of
// their summaries. Containers summarize to their type, so aligned
// containers are compared recursively. A deleted element followed by
// an inserted one becomes a Replace.
func diffList(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	m := map[string]rune{}
	diffs := diffpatch.New().DiffMainRunes(mapValues(m, from), mapValues(m, to), false)
	fi, ti := 0, 0
	var deleted []int
	flush := func() {
		for _, i := range deleted {
			*res = append(*res, Change{Path: at.Append(kpath.Index(i)), Op: Delete, From: from.Values[i]})
		}
		deleted = deleted[:0]
	}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				deleted = append(deleted, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(deleted) != 0 {
					*res = append(*res, Change{Path: at.Append(kpath.Index(ti)), Op: Replace, From: from.Values[deleted[0]], To: to.Values[ti]})
					deleted = deleted[1:]
				} else {
					*res = append(*res, Change{Path: at.Append(kpath.Index(ti)), Op: Insert, To: to.Values[ti]})
				}
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diff(at.Append(kpath.Index(ti)), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summary(node *ir.Node) string {
	switch node.Type {
	case ir.CompoundType, ir.ListType:
		return node.Type.String()
	case ir.StringType:
		return "s-" + node.String
	case ir.NumberType:
		return node.Width.String() + "-" + strconv.FormatFloat(node.Float64, 'g', -1, 64)
	}
	return "?"
}
