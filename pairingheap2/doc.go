// Package pairingheap2 implements a mergeable min-heap using the pairing
// heap topology: a multi-way tree where every node's children form a
// sibling list threaded through next, and down points at the first child.
//
// Nodes carry only next/down links, so this variant supports push, front,
// pop, and merge but no batch build, iteration, or decrease-key —
// pairingheap3 is the 3-link sibling for those. Merge is O(1) actual: the
// loser simply becomes the winner's new first child. Pop's cost is
// amortized O(log N), paid by the two-pass pairing rebuild of the
// popped root's children.
//
// Errors:
//
//	ErrEmpty — Front or Pop called on an empty heap.
package pairingheap2
