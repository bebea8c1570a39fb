package generators

import (
	"fmt"
	"iter"
)

// Primes yields 2, 3, 5, 7, ... forever. Each candidate is trial-divided by
// the primes found so far up to its square root.
func Primes() iter.Seq[int] {
	return func(yield func(int) bool) {
		var found []int
		for n := 2; ; n++ {
			prime := true
			for _, p := range found {
				if p*p > n {
					break
				}
				if n%p == 0 {
					prime = false
					break
				}
			}
			if !prime {
				continue
			}
			found = append(found, n)
			if !yield(n) {
				return
			}
		}
	}
}

// KthPrime returns the k-th prime, counting from 1.
func KthPrime(k int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("KthPrime(%d): %w", k, ErrInvalidIndex)
	}
	i := 0
	for p := range Primes() {
		i++
		if i == k {
			return p, nil
		}
	}

	return 0, nil // unreachable, Primes is infinite
}
