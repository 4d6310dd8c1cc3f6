package arr

import "errors"

var (
	ErrInvalidJSON = errors.New("arr: invalid json")
	ErrInvalidYAML = errors.New("arr: invalid yaml")
)
