package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToAny converts y to plain Go values: map[string]any, []any, string,
// int for integer widths and float64 for float widths.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case CompoundType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	case ListType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Width.IsFloat() {
			return y.Float64
		}
		return int(y.Int64)
	default:
		panic("type")
	}
}

// FromAny converts plain Go values to a tree. Maps become compounds with
// sorted keys, booleans become bytes, ints that fit 32 bits become ints
// and larger ones longs. A nil value yields a nil node; nil list
// elements are an error and nil map values are dropped.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Node:
		return x, nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return fromInt64(int64(x)), nil
	case int8:
		return FromByte(x), nil
	case int16:
		return FromShort(x), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return fromInt64(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return fromInt64(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return FromFloat(x), nil
	case float64:
		return FromDouble(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return fromInt64(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", x, err)
		}
		return FromDouble(f), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, xv := range x {
			y, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			m[k] = y
		}
		return FromMap(m), nil
	case map[string]*Node:
		return FromMap(x), nil
	case []any:
		res := NewList()
		for i, xv := range x {
			y, err := FromAny(xv)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if y == nil {
				return nil, fmt.Errorf("[%d]: null list element", i)
			}
			res.Values = append(res.Values, y)
		}
		return res, nil
	case []string:
		res := NewList()
		for _, s := range x {
			res.Values = append(res.Values, FromString(s))
		}
		return res, nil
	case []*Node:
		return FromSlice(x), nil
	}
	return nil, fmt.Errorf("cannot convert %T to a tree value", v)
}

func fromInt64(v int64) *Node {
	if math.MinInt32 <= v && v <= math.MaxInt32 {
		return FromInt(v)
	}
	return FromLong(v)
}

func fromUint64(v uint64) *Node {
	if v > math.MaxInt64 {
		return FromDouble(float64(v))
	}
	return fromInt64(int64(v))
}

// AsString renders y as display text: strings verbatim, numbers in
// their shortest form, list elements joined by ", ". Compounds render
// as SNBT-like text.
func AsString(y *Node) string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		return numberText(y)
	case ListType:
		parts := make([]string, len(y.Values))
		for i, v := range y.Values {
			parts[i] = AsString(v)
		}
		return strings.Join(parts, ", ")
	case CompoundType:
		parts := make([]string, len(y.Fields))
		for i, f := range y.Fields {
			parts[i] = f + ":" + AsString(y.Values[i])
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		panic("type")
	}
}

func numberText(y *Node) string {
	switch y.Width {
	case FloatWidth:
		return strconv.FormatFloat(y.Float64, 'g', -1, 32)
	case DoubleWidth:
		return strconv.FormatFloat(y.Float64, 'g', -1, 64)
	}
	return strconv.FormatInt(y.Int64, 10)
}
