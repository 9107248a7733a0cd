// Package wire implements the NBT binary codec: a recursive, single-pass
// reader and writer over the [type-id][name-length][name][payload] scheme,
// parameterized by format.Endianness. Recursion depth is bounded only by
// the nesting of the input.
package wire
