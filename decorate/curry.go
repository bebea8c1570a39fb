package decorate

import "fmt"

// Curry2 turns f(a, b) into f(a)(b).
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R { return f(a, b) }
	}
}

// Curry3 turns f(a, b, c) into f(a)(b)(c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R { return f(a, b, c) })
	}
}

// Curry4 turns f(a, b, c, d) into f(a)(b)(c)(d).
func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R { return f(a, b, c, d) })
	}
}

// Uncurry2 is the inverse of Curry2.
func Uncurry2[A, B, R any](f func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R { return f(a)(b) }
}

// Uncurry3 is the inverse of Curry3.
func Uncurry3[A, B, C, R any](f func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R { return f(a)(b)(c) }
}

// Uncurry4 is the inverse of Curry4.
func Uncurry4[A, B, C, D, R any](f func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R { return f(a)(b)(c)(d) }
}

// Func is the dynamic function shape accepted by Explicit.
type Func func(args ...any) any

// Curried is a partially applied Func. Values are immutable: Apply returns
// a new Curried, so one prefix can be extended in several directions.
type Curried struct {
	fn    Func
	arity int
	args  []any
}

// Explicit curries fn, which expects exactly arity arguments.
// An arity of zero yields a value that is saturated from the start.
func Explicit(fn Func, arity int) (Curried, error) {
	if fn == nil {
		return Curried{}, fmt.Errorf("Explicit: %w", ErrNilFunc)
	}
	if arity < 0 {
		return Curried{}, fmt.Errorf("Explicit(%d): %w", arity, ErrNegativeArity)
	}

	return Curried{fn: fn, arity: arity}, nil
}

// Arity returns the total number of arguments fn expects.
func (c Curried) Arity() int {
	return c.arity
}

// Remaining returns how many arguments are still missing.
func (c Curried) Remaining() int {
	return c.arity - len(c.args)
}

// Saturated reports whether every argument has been bound.
func (c Curried) Saturated() bool {
	return c.Remaining() == 0
}

// Apply binds the next argument.
func (c Curried) Apply(arg any) (Curried, error) {
	if c.Saturated() {
		return c, fmt.Errorf("Apply: %w", ErrTooManyArgs)
	}
	args := make([]any, len(c.args), len(c.args)+1)
	copy(args, c.args)

	return Curried{fn: c.fn, arity: c.arity, args: append(args, arg)}, nil
}

// Result calls the wrapped function with the bound arguments.
func (c Curried) Result() (any, error) {
	if !c.Saturated() {
		return nil, fmt.Errorf("Result: %d of %d arguments bound: %w", len(c.args), c.arity, ErrNotSaturated)
	}
	if c.fn == nil {
		return nil, fmt.Errorf("Result: %w", ErrNilFunc)
	}

	return c.fn(c.args...), nil
}

// UncurryExplicit turns c back into a function taking all of its arguments
// at once. The returned function rejects calls with len(args) != arity.
func UncurryExplicit(c Curried, arity int) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if arity < 0 {
			return nil, fmt.Errorf("UncurryExplicit(%d): %w", arity, ErrNegativeArity)
		}
		if len(args) != arity {
			return nil, fmt.Errorf("takes exactly %d arguments but %d were given: %w", arity, len(args), ErrArityMismatch)
		}
		cur := c
		var err error
		for _, a := range args {
			if cur, err = cur.Apply(a); err != nil {
				return nil, err
			}
		}

		return cur.Result()
	}
}
