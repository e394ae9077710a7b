// Package encode writes trees as SNBT, YAML or JSON.
//
// # Usage
//
//	err := encode.Encode(tree, os.Stdout)
//	err := encode.Encode(tree, w, encode.EncodeFormat(format.JSONFormat))
//	err := encode.Encode(tree, w, encode.Compact(true), encode.EncodeColors(encode.NewPalette()))
//
// SNBT output reads back through package parse to an equal tree with
// the same number widths.
//
// # Related Packages
//
//   - github.com/signadot/nbtc/parse - Parse text to trees
//   - github.com/signadot/nbtc/format - Format names
package encode
