package decorate

import "errors"

var (
	// ErrNegativeArity is returned when an arity below zero is requested.
	ErrNegativeArity = errors.New("decorate: arity must be non-negative")

	// ErrNilFunc is returned when a nil function is wrapped.
	ErrNilFunc = errors.New("decorate: nil function")

	// ErrTooManyArgs is returned by Apply once all arguments are bound.
	ErrTooManyArgs = errors.New("decorate: curried function is already saturated")

	// ErrNotSaturated is returned by Result while arguments are still missing.
	ErrNotSaturated = errors.New("decorate: curried function still expects arguments")

	// ErrArityMismatch is returned by an uncurried function called with the wrong argument count.
	ErrArityMismatch = errors.New("decorate: wrong number of arguments")

	// ErrMissingIsolated is returned when an isolated argument is not supplied.
	ErrMissingIsolated = errors.New("decorate: isolated argument must be provided")

	// ErrMixedSmartArgs is returned when one call uses both an evaluated default and an isolated argument.
	ErrMixedSmartArgs = errors.New("decorate: evaluated and isolated arguments cannot be mixed")
)
