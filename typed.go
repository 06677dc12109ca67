// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

// Typed front-ends for the common arities. They wrap the dynamic Map
// and push key typing back to compile time: a Map3[int, rune, bool, V]
// only accepts (int, rune, bool) keys, with prefix lookups typed per
// prefix length. Unwrap exposes the dynamic Map for anything not
// covered here.

// Map2 is a Map with a typed two-component key.
type Map2[K1, K2 comparable, V any] struct {
	m *Map[V]
}

// NewMap2 returns an empty typed map keyed by (K1, K2).
func NewMap2[K1, K2 comparable, V any]() *Map2[K1, K2, V] {
	return &Map2[K1, K2, V]{m: New[V](SchemaOf2[K1, K2]())}
}

// Key builds the full key tuple.
func (t *Map2[K1, K2, V]) Key(k1 K1, k2 K2) Key {
	return Key{k1, k2}
}

func (t *Map2[K1, K2, V]) Insert(k1 K1, k2 K2, value V) bool {
	return t.m.Insert(Key{k1, k2}, value)
}

func (t *Map2[K1, K2, V]) At(k1 K1, k2 K2) (V, error) {
	return t.m.At(k1, k2)
}

func (t *Map2[K1, K2, V]) Ref(k1 K1, k2 K2) *V {
	return t.m.Ref(Key{k1, k2})
}

func (t *Map2[K1, K2, V]) Find(k1 K1, k2 K2) *Iterator[V] {
	return t.m.Find(k1, k2)
}

func (t *Map2[K1, K2, V]) FindPrefix(k1 K1) *Iterator[V] {
	return t.m.Find(k1)
}

func (t *Map2[K1, K2, V]) Contains(k1 K1, k2 K2) bool {
	return t.m.Contains(k1, k2)
}

func (t *Map2[K1, K2, V]) ContainsPrefix(k1 K1) bool {
	return t.m.Contains(k1)
}

func (t *Map2[K1, K2, V]) CountPrefix(k1 K1) int {
	return t.m.Count(k1)
}

func (t *Map2[K1, K2, V]) Erase(k1 K1, k2 K2) int {
	return t.m.Erase(k1, k2)
}

func (t *Map2[K1, K2, V]) ErasePrefix(k1 K1) int {
	return t.m.Erase(k1)
}

func (t *Map2[K1, K2, V]) Len() int          { return t.m.Len() }
func (t *Map2[K1, K2, V]) Empty() bool       { return t.m.Empty() }
func (t *Map2[K1, K2, V]) Clear()            { t.m.Clear() }
func (t *Map2[K1, K2, V]) Iter() *Iterator[V] { return t.m.Iter() }

// Unwrap returns the underlying dynamic Map.
func (t *Map2[K1, K2, V]) Unwrap() *Map[V] { return t.m }

// Map3 is a Map with a typed three-component key.
type Map3[K1, K2, K3 comparable, V any] struct {
	m *Map[V]
}

// NewMap3 returns an empty typed map keyed by (K1, K2, K3).
func NewMap3[K1, K2, K3 comparable, V any]() *Map3[K1, K2, K3, V] {
	return &Map3[K1, K2, K3, V]{m: New[V](SchemaOf3[K1, K2, K3]())}
}

// Key builds the full key tuple.
func (t *Map3[K1, K2, K3, V]) Key(k1 K1, k2 K2, k3 K3) Key {
	return Key{k1, k2, k3}
}

func (t *Map3[K1, K2, K3, V]) Insert(k1 K1, k2 K2, k3 K3, value V) bool {
	return t.m.Insert(Key{k1, k2, k3}, value)
}

func (t *Map3[K1, K2, K3, V]) At(k1 K1, k2 K2, k3 K3) (V, error) {
	return t.m.At(k1, k2, k3)
}

func (t *Map3[K1, K2, K3, V]) Ref(k1 K1, k2 K2, k3 K3) *V {
	return t.m.Ref(Key{k1, k2, k3})
}

func (t *Map3[K1, K2, K3, V]) Find(k1 K1, k2 K2, k3 K3) *Iterator[V] {
	return t.m.Find(k1, k2, k3)
}

func (t *Map3[K1, K2, K3, V]) FindPrefix1(k1 K1) *Iterator[V] {
	return t.m.Find(k1)
}

func (t *Map3[K1, K2, K3, V]) FindPrefix2(k1 K1, k2 K2) *Iterator[V] {
	return t.m.Find(k1, k2)
}

func (t *Map3[K1, K2, K3, V]) Contains(k1 K1, k2 K2, k3 K3) bool {
	return t.m.Contains(k1, k2, k3)
}

func (t *Map3[K1, K2, K3, V]) ContainsPrefix1(k1 K1) bool {
	return t.m.Contains(k1)
}

func (t *Map3[K1, K2, K3, V]) ContainsPrefix2(k1 K1, k2 K2) bool {
	return t.m.Contains(k1, k2)
}

func (t *Map3[K1, K2, K3, V]) CountPrefix1(k1 K1) int {
	return t.m.Count(k1)
}

func (t *Map3[K1, K2, K3, V]) CountPrefix2(k1 K1, k2 K2) int {
	return t.m.Count(k1, k2)
}

func (t *Map3[K1, K2, K3, V]) Erase(k1 K1, k2 K2, k3 K3) int {
	return t.m.Erase(k1, k2, k3)
}

func (t *Map3[K1, K2, K3, V]) ErasePrefix1(k1 K1) int {
	return t.m.Erase(k1)
}

func (t *Map3[K1, K2, K3, V]) ErasePrefix2(k1 K1, k2 K2) int {
	return t.m.Erase(k1, k2)
}

func (t *Map3[K1, K2, K3, V]) Len() int           { return t.m.Len() }
func (t *Map3[K1, K2, K3, V]) Empty() bool        { return t.m.Empty() }
func (t *Map3[K1, K2, K3, V]) Clear()             { t.m.Clear() }
func (t *Map3[K1, K2, K3, V]) Iter() *Iterator[V] { return t.m.Iter() }

// Unwrap returns the underlying dynamic Map.
func (t *Map3[K1, K2, K3, V]) Unwrap() *Map[V] { return t.m }

// Map4 is a Map with a typed four-component key.
type Map4[K1, K2, K3, K4 comparable, V any] struct {
	m *Map[V]
}

// NewMap4 returns an empty typed map keyed by (K1, K2, K3, K4).
func NewMap4[K1, K2, K3, K4 comparable, V any]() *Map4[K1, K2, K3, K4, V] {
	return &Map4[K1, K2, K3, K4, V]{m: New[V](SchemaOf4[K1, K2, K3, K4]())}
}

// Key builds the full key tuple.
func (t *Map4[K1, K2, K3, K4, V]) Key(k1 K1, k2 K2, k3 K3, k4 K4) Key {
	return Key{k1, k2, k3, k4}
}

func (t *Map4[K1, K2, K3, K4, V]) Insert(k1 K1, k2 K2, k3 K3, k4 K4, value V) bool {
	return t.m.Insert(Key{k1, k2, k3, k4}, value)
}

func (t *Map4[K1, K2, K3, K4, V]) At(k1 K1, k2 K2, k3 K3, k4 K4) (V, error) {
	return t.m.At(k1, k2, k3, k4)
}

func (t *Map4[K1, K2, K3, K4, V]) Ref(k1 K1, k2 K2, k3 K3, k4 K4) *V {
	return t.m.Ref(Key{k1, k2, k3, k4})
}

func (t *Map4[K1, K2, K3, K4, V]) Find(k1 K1, k2 K2, k3 K3, k4 K4) *Iterator[V] {
	return t.m.Find(k1, k2, k3, k4)
}

func (t *Map4[K1, K2, K3, K4, V]) FindPrefix1(k1 K1) *Iterator[V] {
	return t.m.Find(k1)
}

func (t *Map4[K1, K2, K3, K4, V]) FindPrefix2(k1 K1, k2 K2) *Iterator[V] {
	return t.m.Find(k1, k2)
}

func (t *Map4[K1, K2, K3, K4, V]) FindPrefix3(k1 K1, k2 K2, k3 K3) *Iterator[V] {
	return t.m.Find(k1, k2, k3)
}

func (t *Map4[K1, K2, K3, K4, V]) Contains(k1 K1, k2 K2, k3 K3, k4 K4) bool {
	return t.m.Contains(k1, k2, k3, k4)
}

func (t *Map4[K1, K2, K3, K4, V]) CountPrefix1(k1 K1) int {
	return t.m.Count(k1)
}

func (t *Map4[K1, K2, K3, K4, V]) CountPrefix2(k1 K1, k2 K2) int {
	return t.m.Count(k1, k2)
}

func (t *Map4[K1, K2, K3, K4, V]) CountPrefix3(k1 K1, k2 K2, k3 K3) int {
	return t.m.Count(k1, k2, k3)
}

func (t *Map4[K1, K2, K3, K4, V]) Erase(k1 K1, k2 K2, k3 K3, k4 K4) int {
	return t.m.Erase(k1, k2, k3, k4)
}

func (t *Map4[K1, K2, K3, K4, V]) ErasePrefix1(k1 K1) int {
	return t.m.Erase(k1)
}

func (t *Map4[K1, K2, K3, K4, V]) ErasePrefix2(k1 K1, k2 K2) int {
	return t.m.Erase(k1, k2)
}

func (t *Map4[K1, K2, K3, K4, V]) ErasePrefix3(k1 K1, k2 K2, k3 K3) int {
	return t.m.Erase(k1, k2, k3)
}

func (t *Map4[K1, K2, K3, K4, V]) Len() int           { return t.m.Len() }
func (t *Map4[K1, K2, K3, K4, V]) Empty() bool        { return t.m.Empty() }
func (t *Map4[K1, K2, K3, K4, V]) Clear()             { t.m.Clear() }
func (t *Map4[K1, K2, K3, K4, V]) Iter() *Iterator[V] { return t.m.Iter() }

// Unwrap returns the underlying dynamic Map.
func (t *Map4[K1, K2, K3, K4, V]) Unwrap() *Map[V] { return t.m }
