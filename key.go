// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"fmt"
	"strings"
)

// Key is an ordered tuple of heterogeneous key components. A full key
// carries all N components of its Map's Schema; a partial key carries
// any leading run of them.
type Key []any

// K is a convenience constructor for key tuples:
//
//	m.Insert(mkm.K(5, 'c', true), 1)
func K(components ...any) Key {
	return components
}

// Prefix returns the leading n components of the key.
func (k Key) Prefix(n int) Key {
	return k[:n]
}

// Clone returns an independent copy of the key tuple. Components are
// copied by value.
func (k Key) Clone() Key {
	c := make(Key, len(k))
	copy(c, k)
	return c
}

// Equal reports whether both keys hold the same components in the same
// order.
func (k Key) Equal(o Key) bool {
	if len(k) != len(o) {
		return false
	}
	for i, c := range k {
		if o[i] != c {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range k {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", c)
	}
	b.WriteByte(')')
	return b.String()
}

// fingerprint renders a collision-safe identity string for the key,
// used as the lookup-cache key. Components are separated by a unit
// separator and tagged with their dynamic type so that e.g. int(1) and
// int64(1) never collide.
func (k Key) fingerprint() string {
	var b strings.Builder
	for _, c := range k {
		fmt.Fprintf(&b, "%T=%#v\x1f", c, c)
	}
	return b.String()
}

// Entry is a stored (full key, value) pair, the payload attached to a
// depth-N node.
type Entry[V any] struct {
	Key   Key
	Value V
}
