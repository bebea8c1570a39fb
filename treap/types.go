package treap

import (
	"cmp"
	"errors"
	"math/rand/v2"
)

var (
	// ErrKeyNotFound is returned by Get and Delete when the key is absent.
	ErrKeyNotFound = errors.New("treap: key not found")

	// ErrMergeOrder is returned by Merge when the trees' key ranges overlap.
	ErrMergeOrder = errors.New("treap: left keys must be below right keys")

	// ErrOrderViolation is reported by Validate when in-order keys are not strictly increasing.
	ErrOrderViolation = errors.New("treap: binary search order violated")

	// ErrHeapViolation is reported by Validate when a child outranks its parent.
	ErrHeapViolation = errors.New("treap: heap order on priority violated")

	// ErrSizeMismatch is reported by Validate when the cached size is stale.
	ErrSizeMismatch = errors.New("treap: cached size does not match node count")
)

// node is a single treap vertex.
type node[K cmp.Ordered, V any] struct {
	key      K
	value    V
	priority uint64
	left     *node[K, V]
	right    *node[K, V]
}

// Option configures a Treap at construction time.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed makes priority generation deterministic.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses r for priorities. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

func defaultOptions() options {
	return options{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}
