package set

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("argument out of range")
	ErrCapacity        = errors.New("destination too small")
)
