// Package pqtrees is a small library of four mergeable priority-queue
// (min-heap) data structures, built around the pointer-graph algorithms
// that make merging, popping and — for two of them — decreasing a key
// cheap operations on a tree instead of an array.
//
// 🚀 What is pqtrees?
//
//	A generics-based, allocation-light library that brings together:
//		• LeftistHeap2  — binary tree balanced by null-path length, O(N) batch build
//		• PairingHeap2  — multi-way sibling-list tree, O(1) merge
//		• MinDistHeap3  — leftist-style heap with parent back-links: adds
//		                  iteration, in-place removal, and O(1) decrease-key
//		• PairingHeap3  — pairing topology with the same 3-link capabilities
//
// ✨ Why choose pqtrees?
//
//   - Merge-first design — combining two heaps never touches most of either tree
//   - Iterative traversals — clear, validate, and destruction all survive
//     trees deeper than the call stack would otherwise allow; the one
//     recursive routine, leftistheap2's merge, recurses only along right
//     spines that the leftist property keeps at O(log N)
//   - Iteration that tolerates one mutation between steps — remove the
//     node under a cursor and keep walking
//   - Pure Go, one third-party dependency (testify, test-only)
//
// Under the hood, everything is organized under four top-level packages
// plus one internal helper:
//
//	leftistheap2/  — 2-link leftist heap: push, push_many, front, pop, merge, clear, validate
//	pairingheap2/  — 2-link pairing heap: push, front, pop, merge, clear, validate
//	mindistheap3/  — 3-link MinDist heap: the above plus iteration, remove, decrease, readjust
//	pairingheap3/  — 3-link pairing heap: mirror of mindistheap3 over pairing topology
//	internal/ptrset/ — closed-address pointer-hash set used only by the 2-link validators
//
// None of the four containers is safe for concurrent use, and none
// supports a persistent/functional variant — a container is meant to be
// held and mutated by exactly one owner at a time, the same way the
// standard library's container/heap is.
//
// Quick example — merge two leftist heaps and drain them in order:
//
//	a := leftistheap2.New(func(x, y int) bool { return x < y })
//	b := leftistheap2.New(func(x, y int) bool { return x < y })
//	a.PushMany([]int{5, 1, 3})
//	b.PushMany([]int{6, 2, 4})
//	a.Merge(b) // b is now empty
//	for !a.Empty() {
//		v, _ := a.Pop()
//		fmt.Println(v) // 1, 2, 3, 4, 5, 6
//	}
package pqtrees
