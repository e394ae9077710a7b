// Package libdiff computes differences between trees.
//
// Diff reports changes by path: keys deleted, inserted or replaced in
// compounds, and elements deleted, inserted or replaced in lists, where
// list elements are aligned with a sequence diff so that an insertion
// in the middle of a list is one change. Lines diffs the SNBT text of
// two trees line by line.
package libdiff
