// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"fmt"
	"strings"
)

// Dump renders the internal node graph, one line per node with its
// depth, fan-out and payload, children indented under the component
// value that reaches them. Debugging aid only; the format is not
// stable.
func (m *Map[V]) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema=%s size=%d\n", m.schema, m.size)
	m.dumpNode(&b, m.root, 0)
	return b.String()
}

func (m *Map[V]) dumpNode(b *strings.Builder, n *node[V], depth int) {
	pad := strings.Repeat("    ", depth)
	fmt.Fprintf(b, "%snode(depth=%d children=%d", pad, depth, n.numChildren())
	if n.entry != nil {
		fmt.Fprintf(b, " entry=%s: %v", n.entry.Key, n.entry.Value)
	}
	b.WriteString(")\n")
	for i := range n.children {
		cs := &n.children[i]
		for _, v := range cs.order {
			fmt.Fprintf(b, "%s  %s=%v ->\n", pad, m.schema.Type(i), v)
			m.dumpNode(b, cs.m[v], depth+1)
		}
	}
}
