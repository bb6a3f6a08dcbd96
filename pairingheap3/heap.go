package pairingheap3

// Heap is a mergeable min-heap over T using the 3-link pairing topology.
// The zero value is not usable; construct with New.
type Heap[T any] struct {
	sentinel node[T]
	less     Less[T]
	size     int
}

// New returns an empty Heap ordered by less.
func New[T any](less Less[T]) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements currently held.
func (h *Heap[T]) Len() int { return h.size }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return h.sentinel.down == nil }

// Front returns the minimal element without removing it.
func (h *Heap[T]) Front() (T, error) {
	if h.sentinel.down == nil {
		var zero T
		return zero, ErrEmpty
	}
	return h.sentinel.down.value, nil
}

// cons makes b the immediate right sibling of a.
func cons[T any](a, b *node[T]) *node[T] {
	if a != nil {
		a.next = b
	}
	if b != nil {
		b.prev = a
	}
	if a != nil {
		return a
	}
	return b
}

// dunk makes b the first child of a.
func dunk[T any](a, b *node[T]) *node[T] {
	if a != nil {
		a.down = b
	}
	if b != nil {
		b.prev = a
	}
	if a != nil {
		return a
	}
	return b
}

// merge combines h1 and h2 (either may be nil). O(1) actual: the loser
// becomes the winner's new first child, pushing the winner's previous
// first child to second position.
func (h *Heap[T]) merge(h1, h2 *node[T]) *node[T] {
	var retv *node[T]
	switch {
	case h1 == nil:
		retv = h2
	case h2 == nil:
		retv = h1
	case !h.less(h2.value, h1.value):
		retv = dunk(h1, cons(h2, h1.down))
	default:
		retv = dunk(h2, cons(h1, h2.down))
	}
	if retv != nil {
		retv.prev, retv.next = nil, nil
	}
	return retv
}

// build combines a sibling list into a single tree via two-pass pairing:
// adjacent siblings merge left-to-right into a work list threaded through
// next, then that list folds right-to-left by repeated merge.
func (h *Heap[T]) build(list *node[T]) *node[T] {
	var q *node[T]
	for {
		a := list
		if a == nil {
			break
		}
		b := a.next
		if b == nil {
			break
		}
		list = b.next
		q = cons(h.merge(a, b), q)
	}
	if a := q; a != nil {
		for {
			q = a.next
			list = h.merge(a, list)
			a = q
			if a == nil {
				break
			}
		}
	} else if list != nil {
		list.prev = nil
	}
	return list
}

// Push inserts v into the heap and returns a cursor to the new node. O(1)
// actual.
func (h *Heap[T]) Push(v T) Iterator[T] {
	n := &node[T]{value: v}
	dunk(&h.sentinel, h.merge(h.sentinel.down, n))
	h.size++
	return Iterator[T]{n: n}
}

// Pop removes and returns the minimal element. Amortized O(log N).
func (h *Heap[T]) Pop() (T, error) {
	retv := h.sentinel.down
	if retv == nil {
		var zero T
		return zero, ErrEmpty
	}
	dunk(&h.sentinel, h.build(retv.down))
	retv.down, retv.next = nil, nil
	h.size--
	return retv.value, nil
}

// yield detaches the whole tree from the sentinel and returns it.
func (h *Heap[T]) yield() *node[T] {
	temp := h.sentinel.down
	h.sentinel.down = nil
	if temp != nil {
		temp.prev = nil
	}
	return temp
}

// Merge absorbs other's elements into h; other becomes empty. O(1) actual.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if h == other {
		return
	}
	dunk(&h.sentinel, h.merge(h.yield(), other.yield()))
	h.size += other.size
	other.size = 0
}

// shredPop pops one node off the tree rooted at *pref, threading its
// children onto the same pointer via prev (abused as a destruction stack
// top), leaving *pref pointing at the remaining forest. O(1) actual per
// node.
func shredPop[T any](pref **node[T]) *node[T] {
	retv := *pref
	if retv == nil {
		return nil
	}
	*pref = retv.prev
	for _, hold := range [2]*node[T]{retv.down, retv.next} {
		if hold != nil {
			hold.prev = *pref
			*pref = hold
		}
	}
	return retv
}

// Clear removes every element. O(N), iterative regardless of tree depth.
func (h *Heap[T]) Clear() {
	root := h.yield()
	h.size = 0
	for root != nil {
		_ = shredPop(&root)
	}
}

// tcut detaches the subtree rooted at n from its sibling chain, leaving
// n's own children untouched.
func (h *Heap[T]) tcut(n *node[T]) *node[T] {
	pred := n.prev
	if n == pred.next {
		cons(pred, n.next)
	} else {
		dunk(pred, n.next)
	}
	n.prev, n.next = nil, nil
	return n
}

// ncut cuts n itself out of its sibling chain, splicing the pairing-built
// merge of n's own children into the gap it leaves behind, and returns n
// as a bare singleton.
func (h *Heap[T]) ncut(n *node[T]) *node[T] {
	repl := h.build(n.down)
	pred := n.prev
	if n == pred.next {
		cons(pred, cons(repl, n.next))
	} else {
		dunk(pred, cons(repl, n.next))
	}
	n.prev, n.next, n.down = nil, nil, nil
	return n
}

// Remove cuts the node the cursor references out of the heap and returns
// a cursor to its forward-iteration successor.
func (h *Heap[T]) Remove(it Iterator[T]) Iterator[T] {
	succ := iterSucc(it.n)
	h.ncut(it.n)
	h.size--
	return Iterator[T]{n: succ}
}

// Decrease restores heap order after the caller has made the referenced
// value strictly smaller. O(1) actual. A no-op when the cursor already
// references the root, since a smaller root is trivially still the root.
func (h *Heap[T]) Decrease(it Iterator[T]) Iterator[T] {
	n := it.n
	if n != h.sentinel.down {
		dunk(&h.sentinel, h.merge(h.sentinel.down, h.tcut(n)))
	}
	return it
}

// Readjust restores heap order after an arbitrary change to the
// referenced value. Equivalent to removing the node and reinserting the
// same value.
func (h *Heap[T]) Readjust(it Iterator[T]) Iterator[T] {
	n := it.n
	dunk(&h.sentinel, h.merge(h.sentinel.down, h.ncut(n)))
	return Iterator[T]{n: n}
}
