package dollar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
)

type compileOpts struct {
	maxDepth int
}

type CompileOption func(*compileOpts)

// MaxDepth limits the nesting of templates. The default is ir.MaxDepth.
func MaxDepth(n int) CompileOption {
	return func(o *compileOpts) { o.maxDepth = n }
}

// Compile scans tree for expressions. The returned template holds a copy
// of tree without the compound leaves that hold expressions; tree itself
// is not modified.
func Compile(tree *ir.Node, opts ...CompileOption) (*Template, error) {
	cOpts := &compileOpts{maxDepth: ir.MaxDepth}
	for _, f := range opts {
		f(cOpts)
	}
	if tree == nil {
		return nil, errors.New("nil template")
	}
	if err := ir.CheckDepth(tree, cOpts.maxDepth); err != nil {
		return nil, &CompileError{Err: err}
	}
	res := &Template{Tree: tree.Clone()}
	if err := res.scan(res.Tree, nil, false); err != nil {
		return nil, err
	}
	compoundLeaves := map[string]bool{}
	for _, d := range res.Dollars {
		if !d.InList {
			compoundLeaves[d.Location.String()] = true
		}
	}
	ir.Strip(res.Tree, func(kp *kpath.KPath, _ *ir.Node) bool {
		return compoundLeaves[kp.String()]
	})
	if debug.Compile() {
		for _, d := range res.Dollars {
			debug.Logf("compiled %s\n", d)
		}
	}
	return res, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(tree *ir.Node, opts ...CompileOption) *Template {
	t, err := Compile(tree, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) scan(y *ir.Node, at *kpath.KPath, inList bool) error {
	switch y.Type {
	case ir.CompoundType:
		for i, field := range y.Fields {
			kp := at.Append(kpath.Field(field))
			v := y.Values[i]
			if field == MergeKey {
				if err := t.scanMerge(v, kp); err != nil {
					return err
				}
				continue
			}
			if err := t.scan(v, kp, false); err != nil {
				return err
			}
		}
	case ir.ListType:
		for i, v := range y.Values {
			if err := t.scan(v, at.Append(kpath.Index(i)), true); err != nil {
				return err
			}
		}
	case ir.StringType:
		d, err := parseLeaf(y.String)
		if err != nil {
			return &CompileError{Location: at.String(), Source: y.String, Err: err}
		}
		if d == nil {
			y.String = unescape(y.String)
			return nil
		}
		d.Location = at
		d.InList = inList
		t.Dollars = append(t.Dollars, d)
	}
	return nil
}

func (t *Template) scanMerge(v *ir.Node, kp *kpath.KPath) error {
	if v.Type != ir.StringType {
		return &CompileError{Location: kp.String(), Err: fmt.Errorf("%w: %q needs an expression, got a %s", ErrSyntax, MergeKey, v.Type)}
	}
	d, err := parseLeaf(v.String)
	if err == nil && (d == nil || d.Kind == TextKind) {
		err = fmt.Errorf("%w: %q needs a reference or $[...] expression", ErrSyntax, MergeKey)
	}
	if err != nil {
		return &CompileError{Location: kp.String(), Source: v.String, Err: err}
	}
	d.Location = kp
	d.Merge = true
	t.Dollars = append(t.Dollars, d)
	return nil
}

// unescape drops the first "$" of a leading "$$".
func unescape(s string) string {
	trimmed := strings.TrimLeft(s, " \t\n")
	if !strings.HasPrefix(trimmed, "$$") {
		return s
	}
	i := len(s) - len(trimmed)
	return s[:i] + s[i+1:]
}
