// Package tag implements the NBT value model: a closed set of twelve tag
// kinds forming a tree of named values. Compounds are ordered unique-keyed
// containers, lists are homogeneous sequences, and the three array kinds
// hold contiguous primitive storage whose elements are surfaced as
// synthesized proxy tags.
//
// Every tag carries a non-owning reference to its current parent container.
// Ownership is strictly tree shaped: container mutation primitives (Put,
// Append, Remove, Clear) keep child and parent linkage updated together, so
// a tag has at most one parent at any instant.
package tag
