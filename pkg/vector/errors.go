package vector

import "errors"

// Codec errors
var (
	ErrInvalidComponents = errors.New("vector must have 2 or 3 components")
)
