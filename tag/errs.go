package tag

import "errors"

var (
	ErrUnknownType   = errors.New("unknown tag type")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrNotApplicable = errors.New("not applicable here")
	ErrOutOfBounds   = errors.New("index out of bounds")
)
