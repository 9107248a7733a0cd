package path

import "errors"

var (
	ErrNoSuchPath     = errors.New("no such path")
	ErrOutOfBounds    = errors.New("index out of bounds")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrNotTraversable = errors.New("not traversable")

	// ErrNotApplicable means the resolved tag exists but cannot be used
	// where it was asked for, such as a leaf where ParentsOnly demands a
	// container.
	ErrNotApplicable = errors.New("not applicable here")
)
