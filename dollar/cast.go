package dollar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nbtc/ir"
)

// cast converts y as named by to. Numbers and numeric strings convert
// to any width; anything converts to string and bool.
func cast(y *ir.Node, to string) (*ir.Node, error) {
	switch to {
	case "":
		return y, nil
	case "string":
		return ir.FromString(ir.AsString(y)), nil
	case "bool":
		return ir.FromBool(ir.Truth(y)), nil
	}
	w, err := ir.ParseWidth(to)
	if err != nil {
		return nil, err
	}
	switch y.Type {
	case ir.NumberType:
		return y.Retype(w), nil
	case ir.StringType:
		s := strings.TrimSpace(y.String)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return ir.FromInteger(w, i), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ir.FromReal(w, f), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrMiss, ir.AsString(y), to)
}
