package pairingheap2

import "errors"

// ErrEmpty is returned by Front and Pop when the heap holds no elements.
var ErrEmpty = errors.New("pairingheap2: heap is empty")

// ErrInvariantViolation is wrapped with detail and returned by Validate
// whenever a structural invariant does not hold.
var ErrInvariantViolation = errors.New("pairingheap2: invariant violation")

// Less is a stateless strict-weak-order predicate; see leftistheap2.Less
// for the exact contract (equal elements compare false both ways).
type Less[T any] func(a, b T) bool

// node is the internal link record: next (right sibling) and down (first
// child). There is no back-link, so this variant cannot support iteration
// or in-place removal.
type node[T any] struct {
	next, down *node[T]
	value      T
}

func newNode[T any](v T) *node[T] {
	return &node[T]{value: v}
}
