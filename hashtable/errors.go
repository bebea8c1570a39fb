package hashtable

import "errors"

var (
	// ErrKeyNotFound is returned by Get and Delete when the key is absent.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrInvalidCapacity is returned by New when the initial capacity is not positive.
	ErrInvalidCapacity = errors.New("hashtable: capacity must be positive")
)
