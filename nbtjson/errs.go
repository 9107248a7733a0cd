package nbtjson

import "errors"

var (
	// ErrNotNBTJSON means the input is JSON but lacks the "_unbted"
	// envelope marker.
	ErrNotNBTJSON = errors.New("not an NBT JSON file")

	// ErrUnsupportedVersion means the envelope declares a version newer
	// than this package knows how to read.
	ErrUnsupportedVersion = errors.New("NBT JSON file of unsupported version")

	ErrMalformed = errors.New("malformed NBT JSON")

	// ErrMalformedTypePrefix means a key lacks the "type:" prefix the
	// roundtrip shape requires, or names an unknown type.
	ErrMalformedTypePrefix = errors.New("malformed type prefix")

	// ErrInvalidEmptyListType means a "list<?>" carries elements, which
	// leaves their kind unrecoverable.
	ErrInvalidEmptyListType = errors.New("list of unknown type cannot have elements")
)
