// Package snbt implements the stringified text form of the tag tree.
//
// The grammar is bidirectional: Parse accepts what Encode produces, plus
// optional whitespace, single- or double-quoted keys and strings, and
// numeric literals with or without a kind suffix.
package snbt
