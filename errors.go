package vec

import "errors"

var (
	// ErrOutOfRange indicates a checked index access at or past the current
	// length. Returned (wrapped with index context) only by At.
	ErrOutOfRange = errors.New("vec: index out of range")
)
