// Package format names the text formats trees are read from and written
// to.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	tree, err := parse.Parse(data, parse.ParseFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/nbtc/parse - Parse text to trees
//   - github.com/signadot/nbtc/encode - Encode trees to text
package format
