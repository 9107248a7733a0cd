// Package edit drives mutations of a tag tree through path expressions.
//
// An Editor owns the root and a cursor, resolves paths with package path,
// and applies the write semantics shared by every front end: in-place
// overwrites, typed creation, list insertion, UUID conveniences, and
// guarded deletion with cursor repair.
package edit
