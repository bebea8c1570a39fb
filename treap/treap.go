package treap

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
)

// Treap is an ordered map from K to V balanced by random priorities.
// The zero value is not usable; construct with New.
type Treap[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
	rng  *rand.Rand
}

// New returns an empty Treap.
func New[K cmp.Ordered, V any](opts ...Option) *Treap[K, V] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Treap[K, V]{rng: o.rng}
}

// Len returns the number of keys stored.
func (t *Treap[K, V]) Len() int {
	return t.size
}

// Set inserts key with value, or replaces the value when key already exists.
// Replacing keeps the node (and its priority) in place.
func (t *Treap[K, V]) Set(key K, value V) {
	if n := t.find(key); n != nil {
		n.value = value
		return
	}

	fresh := &node[K, V]{key: key, value: value, priority: t.rng.Uint64()}
	left, right := split(t.root, key)
	t.root = merge(merge(left, fresh), right)
	t.size++
}

// Get returns the value stored under key.
func (t *Treap[K, V]) Get(key K) (V, error) {
	if n := t.find(key); n != nil {
		return n.value, nil
	}
	var zero V

	return zero, fmt.Errorf("Get(%v): %w", key, ErrKeyNotFound)
}

// Has reports whether key is present.
func (t *Treap[K, V]) Has(key K) bool {
	return t.find(key) != nil
}

// Delete removes key from the tree.
func (t *Treap[K, V]) Delete(key K) error {
	var removed bool
	t.root, removed = remove(t.root, key)
	if !removed {
		return fmt.Errorf("Delete(%v): %w", key, ErrKeyNotFound)
	}
	t.size--

	return nil
}

// Clear drops every key.
func (t *Treap[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

// Min returns the smallest key and its value; ok is false on an empty tree.
func (t *Treap[K, V]) Min() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.left != nil {
		n = n.left
	}

	return n.key, n.value, true
}

// Max returns the largest key and its value; ok is false on an empty tree.
func (t *Treap[K, V]) Max() (key K, value V, ok bool) {
	n := t.root
	if n == nil {
		return key, value, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, n.value, true
}

// All yields key/value pairs in ascending key order.
func (t *Treap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ascend(t.root, yield)
	}
}

// Backward yields key/value pairs in descending key order.
func (t *Treap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		descend(t.root, yield)
	}
}

// Keys yields keys in ascending order.
func (t *Treap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		ascend(t.root, func(k K, _ V) bool { return yield(k) })
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Treap[K, V]) Height() int {
	return height(t.root)
}

// Split moves every key greater than key into a new Treap, leaving keys
// less than or equal to key in t. Both trees share t's random source.
func (t *Treap[K, V]) Split(key K) *Treap[K, V] {
	left, right := split(t.root, key)
	rightSize := count(right)

	t.root = left
	t.size -= rightSize

	return &Treap[K, V]{root: right, size: rightSize, rng: t.rng}
}

// Merge appends every key of other to t and empties other.
// All keys of t must be strictly below all keys of other.
func (t *Treap[K, V]) Merge(other *Treap[K, V]) error {
	if other == nil || other.root == nil {
		return nil
	}
	if t.root != nil {
		hi, _, _ := t.Max()
		lo, _, _ := other.Min()
		if hi >= lo {
			return fmt.Errorf("Merge(%v >= %v): %w", hi, lo, ErrMergeOrder)
		}
	}

	t.root = merge(t.root, other.root)
	t.size += other.size
	other.Clear()

	return nil
}

// Validate checks the ordering and heap invariants and the cached size.
func (t *Treap[K, V]) Validate() error {
	var (
		prev    K
		started bool
		err     error
		seen    int
	)
	ascend(t.root, func(k K, _ V) bool {
		if started && k <= prev {
			err = fmt.Errorf("Validate: %v after %v: %w", k, prev, ErrOrderViolation)
			return false
		}
		prev, started = k, true
		seen++
		return true
	})
	if err != nil {
		return err
	}
	if err = checkHeap(t.root); err != nil {
		return err
	}
	if seen != t.size {
		return fmt.Errorf("Validate: size %d but %d nodes reachable: %w", t.size, seen, ErrSizeMismatch)
	}

	return nil
}

func (t *Treap[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}

	return nil
}
