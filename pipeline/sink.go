package pipeline

import (
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Count drains seq and returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}

	return n
}

// Reduce folds seq with fn, seeding with the first element.
// It returns ErrEmpty when seq yields nothing.
func Reduce[T any](seq iter.Seq[T], fn func(acc, v T) T) (T, error) {
	var (
		acc  T
		seen bool
	)
	for v := range seq {
		if !seen {
			acc, seen = v, true
			continue
		}
		acc = fn(acc, v)
	}
	if !seen {
		return acc, ErrEmpty
	}

	return acc, nil
}

// Fold folds seq with fn starting from init.
func Fold[T, U any](seq iter.Seq[T], init U, fn func(acc U, v T) U) U {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}

	return acc
}

// ToSet drains seq into a thread-unsafe set.
func ToSet[T comparable](seq iter.Seq[T]) mapset.Set[T] {
	s := mapset.NewThreadUnsafeSet[T]()
	for v := range seq {
		s.Add(v)
	}

	return s
}

// ToMap drains seq into a map. Later pairs overwrite earlier ones.
func ToMap[K comparable, V any](seq iter.Seq2[K, V]) map[K]V {
	m := make(map[K]V)
	for k, v := range seq {
		m[k] = v
	}

	return m
}
