// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

// childSet is one children collection of a node: the mapping from a
// component value to the child reached through it. Go randomizes map
// iteration order, so the insertion order of the values is kept in a
// side slice to make traversal deterministic for a fixed structure.
type childSet[V any] struct {
	order []any
	m     map[any]*node[V]
}

func (cs *childSet[V]) get(v any) *node[V] {
	return cs.m[v]
}

func (cs *childSet[V]) put(v any, n *node[V]) {
	if cs.m == nil {
		cs.m = make(map[any]*node[V])
	}
	if _, ok := cs.m[v]; !ok {
		cs.order = append(cs.order, v)
	}
	cs.m[v] = n
}

func (cs *childSet[V]) remove(v any) {
	if _, ok := cs.m[v]; !ok {
		return
	}
	delete(cs.m, v)
	for i, o := range cs.order {
		if o == v {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
}

func (cs *childSet[V]) len() int {
	return len(cs.m)
}

// node is a single vertex in the trie. children holds one childSet per
// schema slot; only the slot for the next unconsumed component type at
// this depth is ever populated. entry is non-nil iff the node sits at
// full depth and a value was inserted for exactly that key.
type node[V any] struct {
	children []childSet[V]

	entry *Entry[V]

	// parent is a non-owning back-reference, used only to remove the
	// edge leading here during erase. nil for the root.
	parent *node[V]

	// edge and edgeSlot record the component value and children slot
	// that reach this node from its parent.
	edge     any
	edgeSlot int
}

func newNode[V any](arity int) *node[V] {
	return &node[V]{children: make([]childSet[V], arity)}
}

// childFor resolves the child of n keyed by v in the children slot for
// that component's type. With create false a missing child yields nil
// and nothing is mutated; with create true a missing child is
// materialized and linked in both directions.
func (n *node[V]) childFor(slot int, v any, create bool) *node[V] {
	cs := &n.children[slot]
	if child := cs.get(v); child != nil {
		return child
	}
	if !create {
		return nil
	}
	child := newNode[V](len(n.children))
	child.parent = n
	child.edge = v
	child.edgeSlot = slot
	cs.put(v, child)
	return child
}

// clearChildren drops every children mapping of the node, releasing the
// whole subtree below it.
func (n *node[V]) clearChildren() {
	for i := range n.children {
		n.children[i] = childSet[V]{}
	}
}

// detachFromParent removes the single edge from the parent's children
// mapping that leads to n. No-op on the root.
func (n *node[V]) detachFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.children[n.edgeSlot].remove(n.edge)
	n.parent = nil
}

func (n *node[V]) numChildren() int {
	c := 0
	for i := range n.children {
		c += n.children[i].len()
	}
	return c
}
