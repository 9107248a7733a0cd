package wire

import "errors"

var (
	// ErrMalformed marks structurally broken documents, such as a compound
	// whose terminator never arrives before end of input.
	ErrMalformed = errors.New("malformed document")

	// ErrUnknownTagType marks an unrecognized wire type id.
	ErrUnknownTagType = errors.New("unknown tag type")

	// ErrUnexpectedEOF marks a payload truncated mid-value.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
)
