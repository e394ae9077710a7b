package ir

import "fmt"

type Type int

const (
	CompoundType Type = iota
	ListType
	StringType
	NumberType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		CompoundType: "Compound",
		ListType:     "List",
		StringType:   "String",
		NumberType:   "Number",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Compound": CompoundType,
		"List":     ListType,
		"String":   StringType,
		"Number":   NumberType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		CompoundType,
		ListType,
		StringType,
		NumberType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case CompoundType, ListType:
		return false
	default:
		return true
	}
}

// Width is the storage width a number was written with. It is kept so
// that values round trip through templates, but it never takes part in
// comparisons.
type Width int

const (
	IntWidth Width = iota
	ByteWidth
	ShortWidth
	LongWidth
	FloatWidth
	DoubleWidth
)

func (w Width) String() string {
	switch w {
	case ByteWidth:
		return "byte"
	case ShortWidth:
		return "short"
	case IntWidth:
		return "int"
	case LongWidth:
		return "long"
	case FloatWidth:
		return "float"
	case DoubleWidth:
		return "double"
	}
	return "<unknown width>"
}

func ParseWidth(v string) (Width, error) {
	w, ok := map[string]Width{
		"byte":   ByteWidth,
		"short":  ShortWidth,
		"int":    IntWidth,
		"long":   LongWidth,
		"float":  FloatWidth,
		"double": DoubleWidth,
	}[v]
	if ok {
		return w, nil
	}
	return 0, fmt.Errorf("unrecognized number width %q", v)
}

// IsFloat reports whether numbers of this width carry a fractional part.
func (w Width) IsFloat() bool {
	return w == FloatWidth || w == DoubleWidth
}
