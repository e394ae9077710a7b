// Package kpath provides path parsing and rendering for tagged trees.
//
// Paths name a position inside a tree:
//   - field - Compound key (a leading field has no dot)
//   - .field - Compound key after another segment
//   - [index] - List position
//   - 'quoted.field' / "quoted.field" - keys containing path syntax
//
// # Usage
//
//	// Parse a path
//	kp, err := kpath.Parse("display.Lore[0]")
//
//	// Access path components
//	last := kp.LastSegment()
//	parent := kp.Parent()
//	child := kp.Append(kpath.Field("text"))
//
//	// Split without parsing, segments keep their brackets
//	kpath.SplitPath("display.Lore[0]") // ["display", "Lore", "[0]"]
//
// # Related Packages
//
//   - github.com/signadot/nbtc/ir - tree navigation by path
package kpath
