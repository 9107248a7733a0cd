package snbt

import (
	"errors"
	"fmt"
)

var (
	ErrParse    = errors.New("snbt parse error")
	ErrTrailing = fmt.Errorf("%w: trailing data after value", ErrParse)
)
