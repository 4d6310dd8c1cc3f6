package collection

import "errors"

var (
	ErrLengthMismatch = errors.New("collection: keys and values must have the same length")
	ErrInvalidJSON    = errors.New("collection: invalid json")
)
