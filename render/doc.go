// Package render pretty-prints tag trees for terminals.
//
// Output follows the editor's display conventions: a type label, the
// quoted tag name, and the value, with containers indented two spaces
// per level. Inference mode substitutes friendlier readings for values
// that follow well-known encodings (UUID long pairs, four-int UUID
// arrays, base64-worthy byte arrays, boolean-looking bytes, embedded
// JSON strings); raw mode never substitutes.
package render
