// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package mkm implements an in-memory multi-key map: an associative
// container indexing values by an ordered tuple of heterogeneous key
// components, backed by a layered trie. Supplying only the first K of N
// components yields a lazy iterator over every value whose key shares
// that prefix.
package mkm

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrKeyNotFound is returned by At when no stored key matches the
// supplied full or partial key.
var ErrKeyNotFound = errors.New("key not found")

// Map is a multi-key map from key tuples matching its Schema to values
// of type V. The zero value is not usable; construct with New,
// NewWithCache or FromEntries.
//
// A Map is not safe for concurrent use; callers must serialize access.
type Map[V any] struct {
	schema *Schema
	root   *node[V]
	size   int

	// cache memoizes full-key payload resolutions. nil unless the Map
	// was built with NewWithCache. Purged on every mutation.
	cache *lru.Cache[string, *node[V]]

	logger *slog.Logger
}

// New returns an empty Map bound to the given schema.
func New[V any](schema *Schema) *Map[V] {
	if schema == nil {
		panic("mkm: nil schema")
	}
	return &Map[V]{
		schema: schema,
		root:   newNode[V](schema.Arity()),
		logger: newLogger(),
	}
}

// FromEntries builds a Map holding the given entries, equivalent to
// repeated Insert: duplicated keys keep the first value.
func FromEntries[V any](schema *Schema, entries []Entry[V]) *Map[V] {
	m := New[V](schema)
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

// Schema returns the schema the map is bound to.
func (m *Map[V]) Schema() *Schema {
	return m.schema
}

// Len returns the number of stored values.
func (m *Map[V]) Len() int {
	return m.size
}

// Empty reports whether the map holds no values.
func (m *Map[V]) Empty() bool {
	return m.size == 0
}

// Insert stores value under the given full key. It never overwrites: if
// the key is already present the existing value is kept and Insert
// returns false.
func (m *Map[V]) Insert(key Key, value V) bool {
	m.schema.checkKey(key, true)
	n := m.walk(key, true)
	if n.entry != nil {
		m.logger.Debug("insert duplicate", "key", key.String())
		return false
	}
	n.entry = &Entry[V]{Key: key.Clone(), Value: value}
	m.size++
	m.invalidate()
	m.logger.Debug("insert", "key", key.String(), "size", m.size)
	return true
}

// Find returns an iterator over every stored value whose key starts
// with the given components. Any leading run of components is accepted,
// so a full Key may be splatted in (m.Find(key...)) with identical
// behavior, and Find() with no components iterates the whole map. A key
// with no match yields an exhausted iterator.
func (m *Map[V]) Find(components ...any) *Iterator[V] {
	key := Key(components)
	m.schema.checkKey(key, false)
	return newIterator(m.lookup(key))
}

// Iter returns an iterator over the whole map.
func (m *Map[V]) Iter() *Iterator[V] {
	return newIterator(m.root)
}

// All walks every stored pair, stopping early when fn returns false.
func (m *Map[V]) All(fn func(Key, V) bool) {
	for it := m.Iter(); !it.Done(); it.Advance() {
		e := it.Entry()
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// At returns the value stored under the given key. Partial keys are
// accepted and resolve to the first match in traversal order. If
// nothing matches, At returns an error wrapping ErrKeyNotFound.
func (m *Map[V]) At(components ...any) (V, error) {
	key := Key(components)
	m.schema.checkKey(key, false)
	it := newIterator(m.lookup(key))
	if it.Done() {
		var zero V
		return zero, fmt.Errorf("mkm: at %s: %w", key, ErrKeyNotFound)
	}
	return it.Entry().Value, nil
}

// Ref returns a pointer to the value stored under the given full key,
// default-constructing and inserting a zero value if the key is absent.
// The counterpart of the C-family operator[].
func (m *Map[V]) Ref(key Key) *V {
	m.schema.checkKey(key, true)
	n := m.walk(key, true)
	if n.entry == nil {
		n.entry = &Entry[V]{Key: key.Clone()}
		m.size++
		m.invalidate()
		m.logger.Debug("ref insert", "key", key.String(), "size", m.size)
	}
	return &n.entry.Value
}

// Count returns the number of stored values whose key starts with the
// given components, by walking the Find iterator to completion.
func (m *Map[V]) Count(components ...any) int {
	c := 0
	for it := m.Find(components...); !it.Done(); it.Advance() {
		c++
	}
	return c
}

// Contains reports whether any stored key starts with the given
// components.
func (m *Map[V]) Contains(components ...any) bool {
	return !m.Find(components...).Done()
}

// Erase removes every stored value whose key starts with the given
// components and returns how many were removed. The subtree edge is
// detached from the parent of the resolved node; a key with no match is
// a no-op.
func (m *Map[V]) Erase(components ...any) int {
	key := Key(components)
	m.schema.checkKey(key, false)
	n := m.walk(key, false)
	if n == nil {
		return 0
	}
	removed := 0
	for it := newIterator(n); !it.Done(); it.Advance() {
		removed++
	}
	n.entry = nil
	n.clearChildren()
	n.detachFromParent()
	m.size -= removed
	if removed > 0 {
		m.invalidate()
	}
	m.logger.Debug("erase", "key", key.String(), "removed", removed, "size", m.size)
	return removed
}

// Clear removes everything, resetting the map to a fresh root.
func (m *Map[V]) Clear() {
	m.root = newNode[V](m.schema.Arity())
	m.size = 0
	m.invalidate()
	m.logger.Debug("clear")
}

// Merge moves every insertable element of other into m, removing from
// other only what was actually moved. Elements whose key already exists
// in m stay untouched in other. Both maps must share an equal schema.
func (m *Map[V]) Merge(other *Map[V]) {
	if other == m {
		return
	}
	m.checkSameSchema(other)
	// Snapshot first so other's traversal is not disturbed by the
	// erases below.
	entries := other.entries()
	for _, e := range entries {
		if m.Insert(e.Key, e.Value) {
			other.Erase(e.Key...)
		}
	}
}

// Swap exchanges the contents of both maps in O(1). Live iterators keep
// pointing at their nodes, which now belong to the swapped-in instance.
// Both maps must share an equal schema.
func (m *Map[V]) Swap(other *Map[V]) {
	if other == m {
		return
	}
	m.checkSameSchema(other)
	m.root, other.root = other.root, m.root
	m.size, other.size = other.size, m.size
	m.cache, other.cache = other.cache, m.cache
}

// Copy returns a deep copy of the map, rebuilt by inserting each
// element fresh. Values of pointer-like types still alias the
// originals.
func (m *Map[V]) Copy() *Map[V] {
	c := New[V](m.schema)
	c.logger = m.logger
	for it := m.Iter(); !it.Done(); it.Advance() {
		e := it.Entry()
		c.Insert(e.Key, e.Value)
	}
	return c
}

// Equal reports deep value equality: equal schemas, equal size, and
// every key of one resolving to a deeply equal value in the other.
func (m *Map[V]) Equal(other *Map[V]) bool {
	return m.EqualFunc(other, func(a, b V) bool {
		return reflect.DeepEqual(a, b)
	})
}

// EqualFunc is Equal with a caller-supplied value comparison.
func (m *Map[V]) EqualFunc(other *Map[V], eq func(a, b V) bool) bool {
	if other == m {
		return true
	}
	if other == nil || m.size != other.size || !m.schema.Equal(other.schema) {
		return false
	}
	for it := other.Iter(); !it.Done(); it.Advance() {
		e := it.Entry()
		n := m.lookup(e.Key)
		if n == nil || n.entry == nil || !eq(n.entry.Value, e.Value) {
			return false
		}
	}
	return true
}

func (m *Map[V]) entries() []Entry[V] {
	es := make([]Entry[V], 0, m.size)
	for it := m.Iter(); !it.Done(); it.Advance() {
		es = append(es, *it.Entry())
	}
	return es
}

func (m *Map[V]) checkSameSchema(other *Map[V]) {
	if !m.schema.Equal(other.schema) {
		panic(fmt.Sprintf("mkm: schema mismatch: %s vs %s", m.schema, other.schema))
	}
}
