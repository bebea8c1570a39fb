package hashtable

import (
	"fmt"
	"iter"
)

const (
	defaultCapacity = 16

	// grow when count*loadDen >= buckets*loadNum
	loadNum = 3
	loadDen = 4
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures a Table at construction time.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	capacity int
	hasher   Hasher[K]
}

// WithCapacity sets the initial number of buckets.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) { o.capacity = n }
}

// WithHasher replaces DefaultHasher. A nil h is ignored.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(o *options[K]) {
		if h != nil {
			o.hasher = h
		}
	}
}

// Table is a hash map from K to V using separate chaining.
type Table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	count   int
	hash    Hasher[K]
}

// New returns an empty Table.
func New[K comparable, V any](opts ...Option[K]) (*Table[K, V], error) {
	o := options[K]{capacity: defaultCapacity, hasher: DefaultHasher[K]}
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", o.capacity, ErrInvalidCapacity)
	}

	return &Table[K, V]{buckets: make([][]entry[K, V], o.capacity), hash: o.hasher}, nil
}

// FromMap builds a Table holding every pair of m.
func FromMap[K comparable, V any](m map[K]V, opts ...Option[K]) (*Table[K, V], error) {
	t, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	for k, v := range m {
		t.Set(k, v)
	}

	return t, nil
}

func (t *Table[K, V]) index(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// Len returns the number of stored pairs.
func (t *Table[K, V]) Len() int {
	return t.count
}

// Cap returns the current number of buckets.
func (t *Table[K, V]) Cap() int {
	return len(t.buckets)
}

// Set stores value under key, replacing any previous value.
func (t *Table[K, V]) Set(key K, value V) {
	b := t.buckets[t.index(key)]
	for i := range b {
		if b[i].key == key {
			b[i].value = value
			return
		}
	}

	if t.count*loadDen >= len(t.buckets)*loadNum {
		t.resize(len(t.buckets) * 2)
	}
	idx := t.index(key)
	t.buckets[idx] = append(t.buckets[idx], entry[K, V]{key: key, value: value})
	t.count++
}

// Get returns the value stored under key.
func (t *Table[K, V]) Get(key K) (V, error) {
	for _, e := range t.buckets[t.index(key)] {
		if e.key == key {
			return e.value, nil
		}
	}
	var zero V

	return zero, fmt.Errorf("Get(%v): %w", key, ErrKeyNotFound)
}

// Has reports whether key is present.
func (t *Table[K, V]) Has(key K) bool {
	for _, e := range t.buckets[t.index(key)] {
		if e.key == key {
			return true
		}
	}

	return false
}

// Delete removes key.
func (t *Table[K, V]) Delete(key K) error {
	idx := t.index(key)
	b := t.buckets[idx]
	for i := range b {
		if b[i].key != key {
			continue
		}
		last := len(b) - 1
		b[i] = b[last]
		b[last] = entry[K, V]{}
		t.buckets[idx] = b[:last]
		t.count--

		return nil
	}

	return fmt.Errorf("Delete(%v): %w", key, ErrKeyNotFound)
}

// All yields every pair in bucket order. Mutating the table while
// iterating is not supported.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys yields every key in bucket order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (t *Table[K, V]) resize(n int) {
	old := t.buckets
	t.buckets = make([][]entry[K, V], n)
	for _, b := range old {
		for _, e := range b {
			idx := t.index(e.key)
			t.buckets[idx] = append(t.buckets[idx], e)
		}
	}
}
