package dollar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/ir/kpath"
)

const (
	// Sigil starts every expression.
	Sigil = "$"
	// MergeKey is the compound key whose expression merges into its
	// compound.
	MergeKey = "$"
	// Reserved is never compiled; it marks merge overwrites.
	Reserved = "$overwrite"
)

var (
	ErrSyntax = errors.New("dollar syntax")
	ErrMiss   = errors.New("dollar miss")
)

type Kind int

const (
	// RefKind reads a reference or a path inside one.
	RefKind Kind = iota
	// ExprKind runs an expr-lang program.
	ExprKind
	// TextKind interpolates expr-lang programs into a string.
	TextKind
)

func (k Kind) String() string {
	switch k {
	case RefKind:
		return "ref"
	case ExprKind:
		return "expr"
	case TextKind:
		return "text"
	}
	return "<unknown kind>"
}

// Dollar is one compiled expression bound to its location in the
// template. It is immutable after Compile.
type Dollar struct {
	// Location is the path of the leaf in the template.
	Location *kpath.KPath
	// Source is the leaf text.
	Source string
	Kind   Kind

	// Ref and Path are set for RefKind.
	Ref  string
	Path *kpath.KPath
	// Code is the expr-lang source for ExprKind.
	Code string

	// Fallback is used on a miss when not nil.
	Fallback *ir.Node
	// Cast names a conversion applied to the value, or is empty.
	Cast string

	// InList is set when the leaf is a list element. List leaves stay in
	// the compiled tree and are replaced in place; compound leaves are
	// removed from it.
	InList bool
	// Merge is set for the value of a MergeKey.
	Merge bool

	program *vm.Program
	parts   []part
}

// part is a piece of an interpolated string: literal text or a program.
type part struct {
	text    string
	code    string
	program *vm.Program
}

func (d *Dollar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Location, d.Kind)
	switch d.Kind {
	case RefKind:
		b.WriteString(" " + d.Ref)
		if d.Path != nil {
			b.WriteString(" " + d.Path.String())
		}
	case ExprKind:
		b.WriteString(" " + d.Code)
	case TextKind:
		fmt.Fprintf(&b, " %q", d.Source)
	}
	if d.Merge {
		b.WriteString(" merge")
	}
	if d.InList {
		b.WriteString(" in-list")
	}
	if d.Fallback != nil {
		b.WriteString(" ?? " + ir.AsString(d.Fallback))
	}
	if d.Cast != "" {
		b.WriteString(" as " + d.Cast)
	}
	return b.String()
}

// Context maps reference names such as "base" and "ingredient" to the
// trees expressions read from.
type Context map[string]*ir.Node

// Template is a compiled template: the tree to copy and the expressions
// to substitute into the copy.
type Template struct {
	Tree    *ir.Node
	Dollars []*Dollar
}

// CompileError reports an expression that cannot be compiled.
type CompileError struct {
	Location string
	Source   string
	Err      error
}

func (e *CompileError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("at %q: %v", e.Location, e.Err)
	}
	return fmt.Sprintf("at %q: %q: %v", e.Location, e.Source, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
