package pipeline

import "iter"

// Stage transforms one sequence into another of the same element type.
type Stage[T any] func(iter.Seq[T]) iter.Seq[T]

// Run applies stages to src in order. The result is still lazy.
func Run[T any](src iter.Seq[T], stages ...Stage[T]) iter.Seq[T] {
	out := src
	for _, s := range stages {
		out = s(out)
	}

	return out
}

// Map returns a stage applying fn to every element.
// When T and U coincide the result can be passed to Run directly.
func Map[T, U any](fn func(T) U) func(iter.Seq[T]) iter.Seq[U] {
	return func(seq iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			for v := range seq {
				if !yield(fn(v)) {
					return
				}
			}
		}
	}
}

// Filter returns a stage keeping the elements for which keep is true.
func Filter[T any](keep func(T) bool) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			for v := range seq {
				if keep(v) && !yield(v) {
					return
				}
			}
		}
	}
}

// Take returns a stage yielding at most n elements. It stops pulling from
// upstream as soon as the n-th element is yielded.
func Take[T any](n int) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			if n <= 0 {
				return
			}
			i := 0
			for v := range seq {
				if !yield(v) {
					return
				}
				i++
				if i == n {
					return
				}
			}
		}
	}
}

// Skip returns a stage dropping the first n elements.
func Skip[T any](n int) Stage[T] {
	return func(seq iter.Seq[T]) iter.Seq[T] {
		return func(yield func(T) bool) {
			i := 0
			for v := range seq {
				if i < n {
					i++
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Enumerate pairs every element with its index, counting from start.
func Enumerate[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Zip pairs elements of a and b positionally and stops at the shorter one.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(b)
		defer stop()
		for va := range a {
			vb, ok := next()
			if !ok || !yield(va, vb) {
				return
			}
		}
	}
}
