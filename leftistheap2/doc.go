// Package leftistheap2 implements a mergeable min-heap balanced by null-path
// length ("leftist" property): for every node, the right child's null-path
// length never exceeds the left child's.
//
// Nodes carry only child links (left, right) — there is no parent/back-link,
// so this variant supports push, front, pop, merge, and a linear-time batch
// build (PushMany), but not iteration, in-place removal, or decrease-key.
// mindistheap3 is the 3-link sibling of this heap for those operations.
//
// Complexity:
//
//   - Push, Pop, Merge: O(log N) amortized, driven by the recursive merge
//     along the right spine of both trees, which the leftist property bounds
//     to O(log N).
//   - PushMany: O(N), via a bottom-up pairwise "hedge" build indexed by
//     merge rank, followed by one merge into any pre-existing root.
//   - Clear: O(N), via shred-pop destructive serialization so a heap of
//     unbounded depth never recurses on the call stack.
//
// Errors:
//
//	ErrEmpty — Front or Pop called on an empty heap.
package leftistheap2
