// Package syntax ties the tree core together with whole-tree operations.
// The node model lives in ast, the tagged-tree text form in encode, the
// shared source context in token, and expression-based node selection in
// query; this package adds rewriting of a tree through JSON patches over
// its exported-record form.
package syntax
