// Package dollar compiles item data templates and instantiates them
// against the data of the items taking part in a craft.
//
// A template is a tree in which string leaves may hold dollar
// expressions. Compile scans the template once and records every
// expression with its location; Instantiate copies the template and
// writes the value of each expression at its location. A compiled
// Template is read only and may be instantiated concurrently.
//
// # Expressions
//
// A string leaf is an expression when, ignoring surrounding space, it
// has one of these forms:
//
//	$base                     the whole "base" reference
//	$base.display.Name        a sub-path into a reference
//	$ingredient.Items[0].id   list indices in sub-paths
//	$base."odd key"           quoted path fields
//	$[base.Count * 2]         an expr-lang expression over the references
//
// Either form may be followed by a fallback and a cast, in this order:
//
//	$base.Damage ?? 0s        SNBT literal used when the value is missing
//	$base.Damage as byte      convert to byte, short, int, long, float,
//	                          double, string or bool
//
// The fallback is a single SNBT value, so the leaf $base.Name ?? "a as b"
// falls back to the string "a as b". A sub-path ends at a space or a
// '?', which makes "$base.Count??0" a path with a fallback.
//
// A string containing $[...] among other text is interpolated: each
// expression is replaced by its value as text and the leaf stays a
// string.
//
// A compound key "$" holding an expression merges the compound the
// expression yields into the enclosing compound without replacing the
// keys the template writes itself. When the merge replaces a list of
// the template wholesale, the merged list stays and the expressions in
// the replaced list are misses.
//
// A $ followed by anything other than a letter, _ or [ is plain text,
// so range patterns such as "$5..10" pass through untouched. A leading
// "$$" escapes the sigil and is written as a single "$". "$overwrite" is
// reserved for merge markers and is never an expression.
//
// # Errors and misses
//
// Malformed text after a recognized sigil fails Compile with an error
// naming the location and the expression. At instantiation a missing
// reference, a missing sub-path, a failing or nil expr-lang result and a
// failed cast are misses: the fallback is used if there is one,
// otherwise the compound field is omitted or the list element dropped.
// Misses are reported through the OnMiss option and never fail
// Instantiate.
package dollar
