// Package path resolves slash-separated location expressions against a
// tag tree.
//
// A path is a sequence of segments: a compound key, "." (keep position,
// establish the current node as parent context), ".." (ascend), or a
// bracketed index into a list or array. A leading slash resolves from the
// root instead of the cursor, and "\/" escapes a literal slash inside a
// key. Resolution policies control how absent leaves, out-of-bounds
// indices, and failures are treated.
package path
