// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// String renders a human-readable dump of the map in the form
//
//	2 keys, 2 elements { (1, a): 10, (2, b): 20 }
//
// "keys" is the arity of the schema, "elements" the number of stored
// values. Entries are sorted by their rendered key so the dump is
// stable regardless of insertion order. A presentation concern only;
// not part of the container contract.
func (m *Map[V]) String() string {
	rendered := make(map[string]string, m.size)
	for it := m.Iter(); !it.Done(); it.Advance() {
		e := it.Entry()
		rendered[e.Key.String()] = fmt.Sprintf("%v", e.Value)
	}
	keys := maps.Keys(rendered)
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%d keys, %d elements {", m.schema.Arity(), m.size)
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %s: %s", k, rendered[k])
	}
	b.WriteString(" }")
	return b.String()
}
