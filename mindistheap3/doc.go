// Package mindistheap3 implements a mergeable min-heap using the MinDist
// topology: a binary tree balanced by null-path length, like a leftist
// heap, but without the leftist ordering invariant between children. A
// merge always targets whichever child slot is lighter, left or right,
// rather than always the right one.
//
// Dropping the fixed left/right ordering means an existing node rarely
// changes sides on an update, which is what makes the bidirectional
// iterator in this package practical: iteration order survives a single
// intervening mutation well enough to remove or decrease the node under
// the cursor and keep going.
//
// Nodes carry a parent back-link, so beyond push/front/pop/merge/clear
// this variant additionally supports forward and backward iteration
// (structural order, not heap order), in-place removal, O(1)-actual
// decrease-key, and readjustment after an arbitrary key change.
//
// Errors:
//
//	ErrEmpty         — Front or Pop called on an empty heap.
//	ErrOutOfRange     — Iterator.Prev called on Begin().
//	ErrInvariantViolation — returned by Validate.
package mindistheap3
