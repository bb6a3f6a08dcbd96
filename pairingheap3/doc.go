// Package pairingheap3 implements a mergeable min-heap using the pairing
// heap topology, extended with a parent/left-sibling back-link so nodes
// support bidirectional iteration, in-place removal, O(1)-actual
// decrease-key and readjustment after an arbitrary key change — the same
// capabilities mindistheap3 adds to the leftist family.
//
// A node's prev points at its left sibling, or at its parent if the node
// is the first child; next points at its right sibling; down at its first
// child. There is no distance field: unlike the leftist/mindist family,
// pairing topology needs none of the balancing bookkeeping to bound merge
// cost.
//
// Errors:
//
//	ErrEmpty              — Front or Pop called on an empty heap.
//	ErrOutOfRange         — Iterator.Prev called on Begin().
//	ErrInvariantViolation — returned by Validate.
package pairingheap3
