package mines

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid board config")
	ErrOutOfBounds   = errors.New("position out of bounds")
)
