package recipe

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/nbtc"
	"github.com/signadot/nbtc/debug"
	"github.com/signadot/nbtc/dollar"
	"github.com/signadot/nbtc/ir"
)

var ErrNoMatch = errors.New("inputs do not match recipe")

// Stack is an item stack: an item id, a count and optional data.
type Stack struct {
	ID    string   `nbt:"field=id required"`
	Count int      `nbt:"field=count"`
	Data  *ir.Node `nbt:"field=data"`
}

func (s *Stack) String() string {
	if s.Data == nil {
		return fmt.Sprintf("%d %s", s.Count, s.ID)
	}
	return fmt.Sprintf("%d %s %s", s.Count, s.ID, ir.AsString(s.Data))
}

// Mode selects how an ingredient's data pattern is compared to a
// stack's data.
type Mode string

const (
	// ContainsMode requires the pattern to be contained in the data.
	ContainsMode Mode = "contains"
	// OverlapMode requires the pattern and the data to overlap.
	OverlapMode Mode = "overlap"
)

func (m *Mode) UnmarshalText(d []byte) error {
	switch v := Mode(d); v {
	case ContainsMode, OverlapMode:
		*m = v
		return nil
	}
	return fmt.Errorf("unknown mode %q, want %q or %q", d, ContainsMode, OverlapMode)
}

// Ingredient is a predicate on stacks.
type Ingredient struct {
	// Items lists the accepted item ids. Empty accepts any item.
	Items []string `nbt:"field=items"`
	// Data is matched against the stack data. nil accepts any data.
	Data *ir.Node `nbt:"field=data"`
	// Mode defaults to ContainsMode.
	Mode Mode `nbt:"field=mode"`
	// Count is the least stack count accepted; 0 means 1.
	Count int `nbt:"field=count"`
}

// Matches reports whether s satisfies the ingredient.
func (ing *Ingredient) Matches(s *Stack) bool {
	if s == nil || s.ID == "" {
		return false
	}
	if len(ing.Items) != 0 && !slices.Contains(ing.Items, s.ID) {
		return false
	}
	if s.Count < max(ing.Count, 1) {
		return false
	}
	if ing.Data == nil {
		return true
	}
	data := s.Data
	if data == nil {
		data = ir.NewCompound()
	}
	var res bool
	if ing.Mode == OverlapMode {
		res = nbtc.Overlaps(data, ing.Data)
	} else {
		res = nbtc.Contains(data, ing.Data)
	}
	if debug.Match() {
		debug.Logf("ingredient %v %s on %s: %t\n", ing.Items, ing.mode(), debug.SNBT{Node: data}, res)
	}
	return res
}

func (ing *Ingredient) mode() Mode {
	if ing.Mode == "" {
		return ContainsMode
	}
	return ing.Mode
}

// Output describes the crafted stack. Data is a template.
type Output struct {
	ID    string   `nbt:"field=id required"`
	Count int      `nbt:"field=count"`
	Data  *ir.Node `nbt:"field=data"`
}

// Recipe turns named input stacks into one output stack.
type Recipe struct {
	ID     string                 `nbt:"field=id required"`
	Inputs map[string]*Ingredient `nbt:"field=inputs required"`
	Output Output                 `nbt:"field=output required"`

	template *dollar.Template
}

// Compile checks r and compiles its output template. It must be called
// before Craft; Load calls it.
func (r *Recipe) Compile(opts ...dollar.CompileOption) error {
	if r.ID == "" {
		return &LoadError{Err: errors.New("missing id")}
	}
	if len(r.Inputs) == 0 {
		return &LoadError{Recipe: r.ID, Err: errors.New("no inputs")}
	}
	for name, ing := range r.Inputs {
		if ing == nil {
			return &LoadError{Recipe: r.ID, Err: fmt.Errorf("input %q is empty", name)}
		}
	}
	if r.Output.ID == "" {
		return &LoadError{Recipe: r.ID, Err: errors.New("output has no id")}
	}
	if r.Output.Count < 0 {
		return &LoadError{Recipe: r.ID, Err: fmt.Errorf("output count %d", r.Output.Count)}
	}
	if r.Output.Data == nil {
		r.template = nil
		return nil
	}
	tmpl, err := dollar.Compile(r.Output.Data, opts...)
	if err != nil {
		return &LoadError{Recipe: r.ID, Err: err}
	}
	r.template = tmpl
	return nil
}

// Template returns the compiled output template, nil if the output has
// no data.
func (r *Recipe) Template() *dollar.Template {
	return r.template
}

// InputNames returns the input names in sorted order.
func (r *Recipe) InputNames() []string {
	names := make([]string, 0, len(r.Inputs))
	for name := range r.Inputs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check returns an error wrapping ErrNoMatch naming the first input
// (in name order) that inputs does not satisfy.
func (r *Recipe) Check(inputs map[string]*Stack) error {
	for _, name := range r.InputNames() {
		s, ok := inputs[name]
		if !ok {
			return fmt.Errorf("%w: %s: missing input %q", ErrNoMatch, r.ID, name)
		}
		if !r.Inputs[name].Matches(s) {
			return fmt.Errorf("%w: %s: input %q does not accept %s", ErrNoMatch, r.ID, name, s)
		}
	}
	return nil
}

// Matches reports whether inputs satisfy every input of r. Inputs r
// does not name are ignored.
func (r *Recipe) Matches(inputs map[string]*Stack) bool {
	return r.Check(inputs) == nil
}

// Context returns the reference context of the output template: the
// data of each named input, or an empty compound for an input without
// data.
func (r *Recipe) Context(inputs map[string]*Stack) dollar.Context {
	res := dollar.Context{}
	for name := range r.Inputs {
		s := inputs[name]
		if s == nil || s.Data == nil {
			res[name] = ir.NewCompound()
			continue
		}
		res[name] = s.Data
	}
	return res
}

// Craft checks inputs against r and returns the output stack. The
// input stacks are not modified.
func (r *Recipe) Craft(inputs map[string]*Stack, opts ...dollar.InstantiateOption) (*Stack, error) {
	if err := r.Check(inputs); err != nil {
		return nil, err
	}
	res := &Stack{ID: r.Output.ID, Count: max(r.Output.Count, 1)}
	if r.template != nil {
		res.Data = r.template.Instantiate(r.Context(inputs), opts...)
	} else if r.Output.Data != nil {
		return nil, fmt.Errorf("recipe %s is not compiled", r.ID)
	}
	if debug.Eval() {
		debug.Logf("crafted %s: %s\n", r.ID, res)
	}
	return res, nil
}

// LoadError reports a recipe that cannot be loaded.
type LoadError struct {
	// Recipe is the recipe id, empty if it is not known.
	Recipe string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("loading recipe")
	if e.Recipe != "" {
		fmt.Fprintf(&b, " %q", e.Recipe)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
