// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

// Iterator lazily enumerates every stored (key, value) pair in the
// subtree rooted at its start node. It reifies the depth-first search as
// an explicit node stack with an incremental advance step, so one
// increment does one unit of work regardless of how many matches the
// subtree holds.
//
// The iterator is read-only but not stable across mutations: erasing or
// clearing the map while an iterator is live invalidates its remaining
// traversal.
type Iterator[V any] struct {
	stack []*node[V]
}

func newIterator[V any](start *node[V]) *Iterator[V] {
	it := &Iterator[V]{}
	if start != nil {
		it.stack = append(it.stack, start)
		it.seek()
	}
	return it
}

// expand pops the top node and pushes every child from every children
// slot. Slot order and the per-slot insertion order make this
// deterministic for a fixed structure.
func (it *Iterator[V]) expand() {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	for i := range n.children {
		cs := &n.children[i]
		for _, v := range cs.order {
			it.stack = append(it.stack, cs.m[v])
		}
	}
}

// seek expands until the top of the stack carries a payload or the
// stack empties.
func (it *Iterator[V]) seek() {
	for len(it.stack) > 0 && it.stack[len(it.stack)-1].entry == nil {
		it.expand()
	}
}

// Done reports whether the iterator is exhausted.
func (it *Iterator[V]) Done() bool {
	return len(it.stack) == 0
}

// Entry returns the (key, value) pair the iterator is positioned at.
// The returned pointer aliases the stored entry, so writing through
// Entry().Value mutates the map. Calling Entry on an exhausted iterator
// is a contract violation and panics.
func (it *Iterator[V]) Entry() *Entry[V] {
	if it.Done() {
		panic("mkm: Entry called on exhausted iterator")
	}
	return it.stack[len(it.stack)-1].entry
}

// Advance moves the iterator to the next stored pair. Advancing an
// exhausted iterator is a no-op.
func (it *Iterator[V]) Advance() {
	if it.Done() {
		return
	}
	it.expand()
	it.seek()
}

// Equal reports whether both iterators are exhausted or positioned at
// the identical node.
func (it *Iterator[V]) Equal(o *Iterator[V]) bool {
	if it.Done() || o.Done() {
		return it.Done() && o.Done()
	}
	return it.stack[len(it.stack)-1] == o.stack[len(o.stack)-1]
}

// Next returns the current pair and advances, in the familiar
// three-value iteration style:
//
//	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() { ... }
func (it *Iterator[V]) Next() (Key, V, bool) {
	if it.Done() {
		var zero V
		return nil, zero, false
	}
	e := it.Entry()
	it.Advance()
	return e.Key, e.Value, true
}
