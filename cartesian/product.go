package cartesian

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidWorkers is returned when a non-positive worker limit is requested.
var ErrInvalidWorkers = errors.New("cartesian: worker count must be > 0")

// Option configures Sum.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers caps the number of concurrent partitions.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// Product yields every tuple of the product of sets in lexicographic order of
// input positions. The yielded slice is reused between iterations; copy it to
// keep it. An empty sets list or any empty set yields nothing.
func Product(sets ...[]int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if len(sets) == 0 {
			return
		}
		for _, s := range sets {
			if len(s) == 0 {
				return
			}
		}
		idx := make([]int, len(sets))
		tuple := make([]int, len(sets))
		for {
			for i, s := range sets {
				tuple[i] = s[idx[i]]
			}
			if !yield(tuple) {
				return
			}
			// odometer increment, last position fastest
			pos := len(sets) - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(sets[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// Sum returns the sum over all tuples of the product of the tuple's elements' sum.
func Sum(ctx context.Context, sets [][]int, opts ...Option) (int, error) {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers <= 0 {
		return 0, fmt.Errorf("Sum(workers=%d): %w", o.workers, ErrInvalidWorkers)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	for _, s := range sets {
		if len(s) == 0 {
			return 0, nil
		}
	}

	head, rest := sets[0], sets[1:]
	partials := make([]int, len(head))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, x := range head {
		g.Go(func() error {
			if len(rest) == 0 {
				partials[i] = x
				return nil
			}
			total := 0
			n := 0
			for tuple := range Product(rest...) {
				if n++; n&1023 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				total += x
				for _, v := range tuple {
					total += v
				}
			}
			partials[i] = total
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("Sum: %w", err)
	}

	sum := 0
	for _, p := range partials {
		sum += p
	}

	return sum, nil
}

// SumSets is Sum over golang-set sets. Element order inside a set does not
// affect the result.
func SumSets(ctx context.Context, sets []mapset.Set[int], opts ...Option) (int, error) {
	plain := make([][]int, len(sets))
	for i, s := range sets {
		if s == nil {
			continue
		}
		plain[i] = s.ToSlice()
	}

	return Sum(ctx, plain, opts...)
}

// PairSum sums a+b over every ordered pair (a, b) of numbers, i.e. the
// product of numbers with itself.
func PairSum(ctx context.Context, numbers []int, opts ...Option) (int, error) {
	if len(numbers) == 0 {
		return 0, nil
	}

	return Sum(ctx, [][]int{numbers, numbers}, opts...)
}

// ClosedFormSum computes Σ_i sum(S_i) · Π_{j≠i} |S_j| without enumeration.
func ClosedFormSum(sets [][]int) int {
	if len(sets) == 0 {
		return 0
	}
	total := 0
	for i, s := range sets {
		term := 0
		for _, v := range s {
			term += v
		}
		for j, other := range sets {
			if j != i {
				term *= len(other)
			}
		}
		total += term
	}

	return total
}
