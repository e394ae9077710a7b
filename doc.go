// Package nbtc provides the tree algebra used by ingredient predicates
// and templates: pattern matching of primitives, structural overlap,
// structural containment and merging.
//
// In every operation the pattern side may use the empty string as a
// wildcard and "$<range>" strings to match numbers by range, see
// package numrange. Numbers compare by magnitude, never by width.
//
// Only MergeInto mutates its input; the other operations are total and
// report false on any type mismatch.
package nbtc
