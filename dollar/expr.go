package dollar

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nbtc/ir"
)

func compileExpr(code string) (*vm.Program, error) {
	prog, err := expr.Compile(code, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrSyntax, code, err)
	}
	return prog, nil
}

// env converts a context to the variables programs see: each reference
// as plain maps, slices, strings and numbers.
func env(refs Context) map[string]any {
	res := make(map[string]any, len(refs))
	for name, tree := range refs {
		if tree == nil {
			continue
		}
		res[name] = ir.ToAny(tree)
	}
	return res
}

func runExpr(prog *vm.Program, code string, vars map[string]any) (*ir.Node, error) {
	val, err := vm.Run(prog, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrMiss, code, err)
	}
	if val == nil {
		return nil, fmt.Errorf("%w: %q evaluated to nil", ErrMiss, code)
	}
	if y, ok := val.(*ir.Node); ok {
		return y.Clone(), nil
	}
	y, err := ir.FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrMiss, code, err)
	}
	return y, nil
}
