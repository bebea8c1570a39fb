// Package treap implements a randomized balanced binary search tree (a treap,
// also known as a Cartesian tree) keyed by any ordered type.
//
// What:
//
//   - Every node carries a key, a value and a random priority.
//   - Keys obey binary-search-tree order (left < node < right).
//   - Priorities obey max-heap order (parent >= child).
//   - Insertion splits the tree at the new key and merges the pieces back
//     around the new node; deletion replaces a node by the priority-merge of
//     its children.
//
// Why:
//
//   - Random priorities keep the expected height at O(log n) without the
//     bookkeeping of AVL or red-black trees.
//   - Split and Merge are first-class operations, so range extraction and
//     concatenation of trees are cheap.
//
// Complexity (expected, n = Len()):
//
//   - Set, Get, Has, Delete: O(log n)
//   - Split, Merge:          O(log n)
//   - All, Backward, Keys:   O(n) for a full pass, O(log n) extra stack
//
// Errors:
//
//   - ErrKeyNotFound     Get/Delete on an absent key
//   - ErrMergeOrder      Merge where the left tree's max is not below the right tree's min
//   - ErrOrderViolation  Validate found keys out of order
//   - ErrHeapViolation   Validate found a child with a higher priority than its parent
//   - ErrSizeMismatch    Validate found Len() out of sync with the nodes
//
// A Treap is not safe for concurrent use; guard it externally if shared.
// Randomness is injected through WithSeed or WithRand so tests stay
// deterministic.
package treap
