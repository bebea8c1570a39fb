package treap

import (
	"cmp"
	"fmt"
)

// split cuts n into keys <= key and keys > key.
func split[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], *node[K, V]) {
	if n == nil {
		return nil, nil
	}
	if key < n.key {
		l, r := split(n.left, key)
		n.left = r
		return l, n
	}
	l, r := split(n.right, key)
	n.right = l

	return n, r
}

// merge joins a and b, where every key in a is below every key in b.
// The root with the higher priority wins; ties go to b.
func merge[K cmp.Ordered, V any](a, b *node[K, V]) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority > b.priority {
		a.right = merge(a.right, b)
		return a
	}
	b.left = merge(a, b.left)

	return b
}

// remove deletes key below n and reports whether it was found.
func remove[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = remove(n.left, key)
	case key > n.key:
		n.right, removed = remove(n.right, key)
	default:
		return merge(n.left, n.right), true
	}

	return n, removed
}

func ascend[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return ascend(n.left, yield) && yield(n.key, n.value) && ascend(n.right, yield)
}

func descend[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return descend(n.right, yield) && yield(n.key, n.value) && descend(n.left, yield)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

func count[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + count(n.left) + count(n.right)
}

func checkHeap[K cmp.Ordered, V any](n *node[K, V]) error {
	if n == nil {
		return nil
	}
	for _, child := range []*node[K, V]{n.left, n.right} {
		if child != nil && child.priority > n.priority {
			return fmt.Errorf("Validate: %v above %v: %w", n.key, child.key, ErrHeapViolation)
		}
	}
	if err := checkHeap(n.left); err != nil {
		return err
	}

	return checkHeap(n.right)
}
