package edit

import "errors"

var (
	// ErrWouldOverwrite means the target exists and overwriting was not
	// allowed.
	ErrWouldOverwrite = errors.New("refusing to overwrite existing tag")

	// ErrWouldDeleteNonEmpty guards deletion of a compound that still has
	// children; pass recursive to override.
	ErrWouldDeleteNonEmpty = errors.New("refusing to delete non-empty compound")

	// ErrNeedType means a new tag was requested without a kind and none
	// could be inferred from context.
	ErrNeedType = errors.New("an explicit type must be specified to create new tags")

	ErrBadValue = errors.New("bad value")
)
