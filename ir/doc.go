// Package ir provides the tagged tree representation shared by the
// tree algebra, the path resolver and the template engine.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field selects which
// fields are meaningful:
//
//   - CompoundType: Fields holds the keys, Values the values at the same
//     positions. Key order is kept for iteration and output but never
//     affects equality.
//   - ListType: Values holds the elements.
//   - StringType: String holds the text.
//   - NumberType: Float64 holds the magnitude, Int64 the integral value
//     and Width the width the number was written with.
//
// Booleans are bytes holding 0 or 1. A compound never holds a nil value;
// absence is modeled by the key being absent. Nodes own their children
// and carry no parent pointers.
//
// # Creating Nodes
//
//	s := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromByte(3)
//	flag := ir.FromBool(true) // byte 1
//	c := ir.FromMap(map[string]*ir.Node{
//	    "Count": ir.FromInt(5),
//	})
//	l := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Comparing Nodes
//
// Compare and Equal compare numbers by magnitude, so a byte 1 equals a
// double 1.0, and compounds by their sorted keys.
//
// # Paths
//
// Paths are parsed by package kpath. Lookup walks a full path, GetTag
// walks all but the last segment and ParentOrCreate creates the
// compounds a write needs. Write failures are reported as *PathError,
// which wraps ErrPath, and leave the tree untouched.
//
// # Related Packages
//
//   - github.com/signadot/nbtc/ir/kpath - path parsing
//   - github.com/signadot/nbtc/parse - reading trees from text
//   - github.com/signadot/nbtc/encode - writing trees as text
package ir
