package gomap

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/signadot/nbtc/ir"
	"github.com/signadot/nbtc/parse"
)

var (
	nodeType            = reflect.TypeOf((*ir.Node)(nil))
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Load parses d and fills v from the resulting tree.
func Load(d []byte, v any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(node, v)
}

// FromIR fills the value v points to from node.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromIR(node, val.Elem(), "")
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "node is nil"}
	}
	typ := val.Type()
	if typ == nodeType {
		val.Set(reflect.ValueOf(node.Clone()))
		return nil
	}
	if typ.Kind() == reflect.Pointer {
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath)
	}
	if val.CanAddr() && reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		if node.Type != ir.StringType {
			return typeError(fieldPath, "string", node)
		}
		u := val.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(node.String)); err != nil {
			return &UnmarshalError{FieldPath: fieldPath, Err: err}
		}
		return nil
	}

	switch typ.Kind() {
	case reflect.String:
		if node.Type != ir.StringType {
			return typeError(fieldPath, "string", node)
		}
		val.SetString(node.String)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := integer(node, fieldPath)
		if err != nil {
			return err
		}
		if val.OverflowInt(i) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", i, typ)}
		}
		val.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := integer(node, fieldPath)
		if err != nil {
			return err
		}
		if i < 0 || val.OverflowUint(uint64(i)) {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%d overflows %s", i, typ)}
		}
		val.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		if node.Type != ir.NumberType {
			return typeError(fieldPath, "number", node)
		}
		val.SetFloat(node.Float64)
	case reflect.Bool:
		switch {
		case node.Type == ir.NumberType:
			val.SetBool(node.Float64 != 0)
		case node.Type == ir.StringType && (node.String == "true" || node.String == "false"):
			val.SetBool(node.String == "true")
		default:
			return typeError(fieldPath, "bool", node)
		}
	case reflect.Slice:
		return fromIRToSlice(node, val, fieldPath)
	case reflect.Map:
		return fromIRToMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRToStruct(node, val, fieldPath)
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
		}
		val.Set(reflect.ValueOf(ir.ToAny(node)))
	default:
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("unsupported type: %s", typ)}
	}
	return nil
}

// integer reads an integral number. Numeric strings are accepted so
// that YAML and SNBT spellings of counts both work.
func integer(node *ir.Node, fieldPath string) (int64, error) {
	switch node.Type {
	case ir.NumberType:
		if node.Width.IsFloat() && node.Float64 != math.Trunc(node.Float64) {
			return 0, &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("%v is not an integer", node.Float64)}
		}
		return node.Int64, nil
	case ir.StringType:
		i, err := strconv.ParseInt(node.String, 10, 64)
		if err != nil {
			return 0, &UnmarshalError{FieldPath: fieldPath, Err: err}
		}
		return i, nil
	}
	return 0, typeError(fieldPath, "integer", node)
}

func fromIRToSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ListType {
		// a single value reads as a one element slice
		node = ir.FromSlice([]*ir.Node{node})
	}
	res := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
	for i, v := range node.Values {
		if err := fromIR(v, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

func fromIRToMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.CompoundType {
		return typeError(fieldPath, "compound", node)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("map key must be a string, got %s", typ.Key())}
	}
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(typ, len(node.Fields)))
	}
	for i, field := range node.Fields {
		elem := reflect.New(typ.Elem()).Elem()
		if err := fromIR(node.Values[i], elem, joinPath(fieldPath, field)); err != nil {
			return err
		}
		val.SetMapIndex(reflect.ValueOf(field).Convert(typ.Key()), elem)
	}
	return nil
}

func fromIRToStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.CompoundType {
		return typeError(fieldPath, "compound", node)
	}
	fields, err := StructFields(val.Type())
	if err != nil {
		return &UnmarshalError{FieldPath: fieldPath, Err: err}
	}
	for _, f := range fields {
		v := ir.Get(node, f.Key)
		if v == nil {
			if f.Required {
				return &UnmarshalError{FieldPath: joinPath(fieldPath, f.Key), Message: "required field is missing"}
			}
			continue
		}
		if err := fromIR(v, val.FieldByIndex(f.Index), joinPath(fieldPath, f.Key)); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(at, field string) string {
	if at == "" {
		return field
	}
	return at + "." + field
}

func typeError(fieldPath, want string, node *ir.Node) error {
	return &UnmarshalError{FieldPath: fieldPath, Message: fmt.Sprintf("expected %s, got %s", want, node.Type)}
}
