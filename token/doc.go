// Package token splits stringified tree text into tokens and holds the
// quoting rules shared by the parser, the encoder and path rendering.
//
// # Related Packages
//
//   - github.com/signadot/nbtc/parse - builds trees from tokens
//   - github.com/signadot/nbtc/encode - writes trees as text
package token
