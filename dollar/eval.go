package dollar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/nbtc"
	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/ir"
)

type instantiateOpts struct {
	onMiss func(d *Dollar, err error)
}

type InstantiateOption func(*instantiateOpts)

// OnMiss registers f to be called for every expression without a value,
// whether or not a fallback covers it.
func OnMiss(f func(d *Dollar, err error)) InstantiateOption {
	return func(o *instantiateOpts) { o.onMiss = f }
}

// Instantiate returns a new tree built from the template with every
// expression replaced by its value in refs. Neither the template nor
// refs are modified, and the result shares no nodes with either.
//
// Merge expressions apply before all others, so values written by the
// template always win over merged ones. A list that a merge replaced
// wholesale stays as merged and its placeholders count as misses. An
// expression without a value leaves its compound field out or drops its
// list element. If the template is itself a single expression without a
// value, the result is an empty compound.
func (t *Template) Instantiate(refs Context, opts ...InstantiateOption) *ir.Node {
	iOpts := &instantiateOpts{}
	for _, f := range opts {
		f(iOpts)
	}
	r := &run{refs: refs, opts: iOpts}
	out := t.Tree.Clone()
	lists := map[*Dollar]*ir.Node{}
	for _, d := range t.Dollars {
		if d.InList {
			lists[d] = ir.GetTag(out, d.Location)
		}
	}
	for _, d := range t.Dollars {
		if d.Merge {
			r.merge(out, d)
		}
	}
	drops := map[*ir.Node][]int{}
	for _, d := range t.Dollars {
		if d.Merge {
			continue
		}
		if d.InList {
			list := lists[d]
			if list == nil || ir.GetTag(out, d.Location) != list {
				r.miss(d, fmt.Errorf("%w: list at %q was replaced by a merge", ErrMiss, d.Location.Parent()))
				continue
			}
			i := *d.Location.LastSegment().Index
			v, ok := r.value(d)
			if !ok {
				drops[list] = append(drops[list], i)
				continue
			}
			list.Values[i] = v
			continue
		}
		v, ok := r.value(d)
		if d.Location == nil {
			if !ok {
				return ir.NewCompound()
			}
			return v
		}
		if !ok {
			continue
		}
		if err := ir.SetKPath(out, d.Location, v); err != nil {
			r.miss(d, err)
		}
	}
	for list, idxs := range drops {
		slices.Sort(idxs)
		for j := len(idxs) - 1; j >= 0; j-- {
			i := idxs[j]
			list.Values = append(list.Values[:i], list.Values[i+1:]...)
		}
	}
	return out
}

// Instantiate is t.Instantiate(refs, opts...).
func Instantiate(t *Template, refs Context, opts ...InstantiateOption) *ir.Node {
	return t.Instantiate(refs, opts...)
}

type run struct {
	refs Context
	opts *instantiateOpts
	vars map[string]any
}

func (r *run) env() map[string]any {
	if r.vars == nil {
		r.vars = env(r.refs)
	}
	return r.vars
}

func (r *run) miss(d *Dollar, err error) {
	if debug.Eval() {
		debug.Logf("miss at %s: %v\n", d.Location, err)
	}
	if r.opts.onMiss != nil {
		r.opts.onMiss(d, err)
	}
}

// value resolves d, falling back and casting as d asks. It reports false
// if there is no value to write.
func (r *run) value(d *Dollar) (*ir.Node, bool) {
	v, err := r.resolve(d)
	if err == nil && d.Cast != "" {
		v, err = cast(v, d.Cast)
	}
	if err == nil {
		if debug.Eval() {
			debug.Logf("%s = %s\n", d.Location, debug.SNBT{Node: v})
		}
		return v, true
	}
	r.miss(d, err)
	if d.Fallback == nil {
		return nil, false
	}
	v, err = cast(d.Fallback.Clone(), d.Cast)
	if err != nil {
		r.miss(d, err)
		return nil, false
	}
	return v, true
}

func (r *run) resolve(d *Dollar) (*ir.Node, error) {
	switch d.Kind {
	case RefKind:
		ref := r.refs[d.Ref]
		if ref == nil {
			return nil, fmt.Errorf("%w: no reference %q", ErrMiss, d.Ref)
		}
		v := ir.Lookup(ref, d.Path)
		if v == nil {
			return nil, fmt.Errorf("%w: %q not found in %q", ErrMiss, d.Path, d.Ref)
		}
		return v.Clone(), nil
	case ExprKind:
		return runExpr(d.program, d.Code, r.env())
	case TextKind:
		var b strings.Builder
		for _, p := range d.parts {
			if p.program == nil {
				b.WriteString(p.text)
				continue
			}
			v, err := runExpr(p.program, p.code, r.env())
			if err != nil {
				return nil, err
			}
			b.WriteString(ir.AsString(v))
		}
		return ir.FromString(b.String()), nil
	}
	return nil, fmt.Errorf("unknown expression kind %s", d.Kind)
}

// merge merges the compound d yields into the compound holding d.
func (r *run) merge(out *ir.Node, d *Dollar) {
	v, ok := r.value(d)
	if !ok {
		return
	}
	if v.Type != ir.CompoundType {
		r.miss(d, fmt.Errorf("%w: %q merges a %s, not a Compound", ErrMiss, d.Source, v.Type))
		return
	}
	target := ir.Lookup(out, d.Location.Parent())
	if target == nil || target.Type != ir.CompoundType {
		r.miss(d, fmt.Errorf("%w: no compound at %q", ErrMiss, d.Location.Parent()))
		return
	}
	if debug.Merge() {
		debug.Logf("merge %s into %s\n", debug.SNBT{Node: v}, d.Location.Parent())
	}
	nbtc.MergeInto(target, v, false)
}
