// Package nbtjson converts tag trees to and from JSON.
//
// Two shapes exist. The roundtrip shape is lossless: every key carries a
// "type:" prefix, the document is wrapped in an envelope with an "_unbted"
// version field, and it can be read back with Decode. The basic shape is a
// one-way export for human consumption: keys are sorted, byte arrays become
// base64, and UUIDs stored as Most/Least long pairs or as four-int arrays
// are collapsed to their string form.
package nbtjson
