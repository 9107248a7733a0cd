// Package format holds the selection metadata shared by every NBT codec:
// the document format (binary NBT or NBT JSON) and the byte-order variant
// used by the binary codec.
//
// # Related Packages
//
//   - github.com/nbt-format/go-nbt/wire - binary tag codec
//   - github.com/nbt-format/go-nbt/compress - compression framing
package format
