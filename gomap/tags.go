package gomap

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// TagKey is the struct tag key read by FromIR.
const TagKey = "nbt"

// FieldInfo holds what FromIR needs to know about one struct field.
type FieldInfo struct {
	// Name is the struct field name.
	Name string
	// Key is the compound key the field is read from.
	Key string
	// Index is the field index path, through embedded structs.
	Index    []int
	Required bool
}

// ParseStructTag parses a struct tag value into key-value pairs.
// Parts are separated by commas or spaces; a part without '=' is a flag
// mapped to "". Values may be single or double quoted.
//
//	ParseStructTag("field='odd key',required") // {"field": "odd key", "required": ""}
func ParseStructTag(tag string) (map[string]string, error) {
	res := map[string]string{}
	var parts []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',' || c == ' ':
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("invalid tag %q: unterminated quote", tag)
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	for _, part := range parts {
		key, value, found := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		if !found {
			res[key] = ""
			continue
		}
		res[key] = unquoteValue(strings.TrimSpace(value))
	}
	return res, nil
}

func unquoteValue(v string) string {
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

var fieldCache sync.Map // reflect.Type -> []*FieldInfo

// StructFields returns the readable fields of struct type typ. Fields
// of embedded structs are flattened into the result.
func StructFields(typ reflect.Type) ([]*FieldInfo, error) {
	if v, ok := fieldCache.Load(typ); ok {
		return v.([]*FieldInfo), nil
	}
	fields, err := structFields(typ, nil)
	if err != nil {
		return nil, err
	}
	seen := map[string]string{}
	for _, f := range fields {
		if prev, ok := seen[f.Key]; ok {
			return nil, fmt.Errorf("%s: fields %s and %s both read key %q", typ, prev, f.Name, f.Key)
		}
		seen[f.Key] = f.Name
	}
	fieldCache.Store(typ, fields)
	return fields, nil
}

func structFields(typ reflect.Type, index []int) ([]*FieldInfo, error) {
	var res []*FieldInfo
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		at := append(append([]int(nil), index...), i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			sub, err := structFields(field.Type, at)
			if err != nil {
				return nil, err
			}
			res = append(res, sub...)
			continue
		}
		if !field.IsExported() {
			continue
		}
		info := &FieldInfo{Name: field.Name, Key: field.Name, Index: at}
		tag, ok := field.Tag.Lookup(TagKey)
		if ok {
			parsed, err := ParseStructTag(tag)
			if err != nil {
				return nil, fmt.Errorf("failed to parse tag on field %s: %w", field.Name, err)
			}
			if _, omit := parsed["omit"]; omit {
				continue
			}
			if _, omit := parsed["-"]; omit {
				continue
			}
			if name, ok := parsed["field"]; ok && name != "" {
				info.Key = name
			}
			_, info.Required = parsed["required"]
		}
		res = append(res, info)
	}
	return res, nil
}
