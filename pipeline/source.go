package pipeline

import (
	"iter"
	"math/rand/v2"
	"strings"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Range yields start, start+1, ..., end-1.
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// FromSlice yields the elements of s in order.
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Random yields n integers drawn uniformly from [lo, hi].
// lo and hi are swapped when given in the wrong order.
func Random(rng *rand.Rand, n, lo, hi int) iter.Seq[int] {
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo + 1

	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(lo + rng.IntN(span)) {
				return
			}
		}
	}
}

// RandomStrings yields n lowercase ASCII strings whose lengths are drawn
// uniformly from [minLen, maxLen].
func RandomStrings(rng *rand.Rand, n, minLen, maxLen int) iter.Seq[string] {
	if minLen < 0 {
		minLen = 0
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	return func(yield func(string) bool) {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.Reset()
			size := minLen + rng.IntN(maxLen-minLen+1)
			for j := 0; j < size; j++ {
				sb.WriteByte(letters[rng.IntN(len(letters))])
			}
			if !yield(sb.String()) {
				return
			}
		}
	}
}
