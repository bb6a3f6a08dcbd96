package pairingheap3

import "errors"

// ErrEmpty is returned by Front and Pop when the heap holds no elements.
var ErrEmpty = errors.New("pairingheap3: heap is empty")

// ErrOutOfRange is returned by Iterator.Prev when decremented past Begin().
var ErrOutOfRange = errors.New("pairingheap3: iterator out of range")

// ErrInvariantViolation is wrapped with detail and returned by Validate
// whenever a structural invariant does not hold.
var ErrInvariantViolation = errors.New("pairingheap3: invariant violation")

// Less is a stateless strict-weak-order predicate; equal elements must
// compare false in both directions. Fixed at construction time; merging
// two heaps assumes equivalent comparators.
type Less[T any] func(a, b T) bool

// node is the internal link record. prev is the left sibling, or the
// parent when this node is its parent's first child (distinguishing the
// two cases requires walking up to the parent and checking down/next, as
// the validator and iterator helpers both do); next is the right sibling;
// down is the first child.
type node[T any] struct {
	prev, next, down *node[T]
	value            T
}

// Iterator is a non-owning cursor over a heap's current structural shape,
// and doubles as the handle Remove, Decrease and Readjust operate on.
type Iterator[T any] struct {
	n *node[T]
}

// Value returns the element the cursor references. Calling it on an
// AtEnd cursor is undefined.
func (it Iterator[T]) Value() T { return it.n.value }

// Set overwrites the element the cursor references in place. Callers that
// shrink the value must follow with Decrease; any other change must be
// followed by Readjust.
func (it Iterator[T]) Set(v T) { it.n.value = v }

// AtEnd reports whether the cursor is the distinguished end position.
func (it Iterator[T]) AtEnd() bool { return it.n.prev == nil }

// Equal reports whether two cursors reference the same position, treating
// any two AtEnd cursors as equal even if they came from different heaps.
func Equal[T any](a, b Iterator[T]) bool {
	return a.n == b.n || (a.n.prev == nil && b.n.prev == nil)
}
