package pipeline

import "errors"

// ErrEmpty is returned by Reduce when the sequence yields nothing.
var ErrEmpty = errors.New("pipeline: reduce of empty sequence")
