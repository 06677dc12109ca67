// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

// walk resolves a (possibly partial) key to the node terminating the
// matching path, consuming components left to right. In lookup mode the
// walk short-circuits on the first missing edge and reports no match by
// returning nil. In create mode missing nodes are materialized along the
// way, so the walk cannot fail. An empty key resolves to the root.
func (m *Map[V]) walk(key Key, create bool) *node[V] {
	n := m.root
	for i, c := range key {
		slot := m.schema.slots[i]
		child := n.childFor(slot, c, create)
		if child == nil {
			m.logger.Debug("walk miss", "key", key.String(), "depth", i)
			return nil
		}
		n = child
	}
	m.logger.Debug("walk", "key", key.String(), "children", n.numChildren())
	return n
}
