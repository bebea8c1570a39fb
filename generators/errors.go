package generators

import "errors"

// ErrInvalidIndex is returned for positions outside a sequence's 1-based range.
var ErrInvalidIndex = errors.New("generators: index out of range")
