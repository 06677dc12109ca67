// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NewWithCache returns an empty Map that additionally memoizes full-key
// lookups in an LRU cache of the given size. The cache only ever holds
// resolutions valid for the current structure; any mutation purges it,
// so it pays off for read-heavy workloads with hot keys.
func NewWithCache[V any](schema *Schema, cacheSize int) (*Map[V], error) {
	m := New[V](schema)
	c, err := lru.New[string, *node[V]](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("mkm: lookup cache: %w", err)
	}
	m.cache = c
	return m, nil
}

// lookup resolves a key in lookup mode, serving full keys from the
// cache when one is configured. Only payload-bearing resolutions are
// cached; misses and partial keys always walk the trie.
func (m *Map[V]) lookup(key Key) *node[V] {
	full := m.cache != nil && len(key) == m.schema.Arity()
	var fp string
	if full {
		fp = key.fingerprint()
		if n, ok := m.cache.Get(fp); ok {
			return n
		}
	}
	n := m.walk(key, false)
	if full && n != nil && n.entry != nil {
		m.cache.Add(fp, n)
	}
	return n
}

func (m *Map[V]) invalidate() {
	if m.cache != nil {
		m.cache.Purge()
	}
}
