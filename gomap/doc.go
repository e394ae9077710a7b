// Package gomap converts trees to Go values.
//
// FromIR fills a Go value from a tree by reflection, in the manner of
// encoding/json: exported struct fields are matched to compound keys by
// name or by an `nbt:"field=name"` tag, lists fill slices, compounds
// fill maps with string keys. A field of type *ir.Node receives a copy
// of the subtree unchanged, so templates and patterns keep their number
// widths.
//
// Field tags:
//
//	nbt:"field=id"        read the key "id"
//	nbt:"required"        fail if the key is missing
//	nbt:"omit"            never read the field (also nbt:"-")
//
// Example usage:
//
//	var def RecipeDef
//	err := gomap.Load(data, &def, parse.ParseYAML())
package gomap
