// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"fmt"
	"reflect"
	"strings"
)

// Schema describes the ordered component types of a key tuple. Every Map
// is bound to one Schema at construction; all keys handed to that Map
// must match it positionally.
//
// A Schema for (int, rune, bool) accepts full keys like (5, 'c', true)
// and partial keys (5) or (5, 'c').
type Schema struct {
	types []reflect.Type

	// slots[i] is the children slot used for position i. A component type
	// always resolves to its first occurrence, so duplicated types share
	// one slot.
	slots []int
}

// NewSchema builds a Schema from the ordered component types. All types
// must be comparable since they are used as map keys inside the trie.
func NewSchema(componentTypes ...reflect.Type) *Schema {
	if len(componentTypes) == 0 {
		panic("mkm: schema needs at least one key component type")
	}
	s := &Schema{
		types: make([]reflect.Type, len(componentTypes)),
		slots: make([]int, len(componentTypes)),
	}
	for i, t := range componentTypes {
		if t == nil {
			panic(fmt.Sprintf("mkm: schema component %d is nil", i))
		}
		if !t.Comparable() {
			panic(fmt.Sprintf("mkm: schema component %d (%s) is not comparable", i, t))
		}
		s.types[i] = t
		s.slots[i] = i
		for j := 0; j < i; j++ {
			if s.types[j] == t {
				s.slots[i] = j
				break
			}
		}
	}
	return s
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SchemaOf2 builds the Schema for a two-component key.
func SchemaOf2[K1, K2 comparable]() *Schema {
	return NewSchema(typeOf[K1](), typeOf[K2]())
}

// SchemaOf3 builds the Schema for a three-component key.
func SchemaOf3[K1, K2, K3 comparable]() *Schema {
	return NewSchema(typeOf[K1](), typeOf[K2](), typeOf[K3]())
}

// SchemaOf4 builds the Schema for a four-component key.
func SchemaOf4[K1, K2, K3, K4 comparable]() *Schema {
	return NewSchema(typeOf[K1](), typeOf[K2](), typeOf[K3](), typeOf[K4]())
}

// Arity returns the number of key components N.
func (s *Schema) Arity() int {
	return len(s.types)
}

// Type returns the component type at position i.
func (s *Schema) Type(i int) reflect.Type {
	return s.types[i]
}

// Equal reports whether both schemas describe the same ordered component
// types.
func (s *Schema) Equal(o *Schema) bool {
	if s == o {
		return true
	}
	if o == nil || len(s.types) != len(o.types) {
		return false
	}
	for i, t := range s.types {
		if o.types[i] != t {
			return false
		}
	}
	return true
}

// slotFor resolves a component type to its children slot, the index of
// the type's first occurrence in the schema.
func (s *Schema) slotFor(t reflect.Type) (int, bool) {
	for i, st := range s.types {
		if st == t {
			return s.slots[i], true
		}
	}
	return 0, false
}

// checkKey validates a key against the schema. Full keys must supply all
// components; partial keys may supply any leading run, including none.
// A mismatch is a caller contract violation and panics.
func (s *Schema) checkKey(key Key, full bool) {
	if full && len(key) != len(s.types) {
		panic(fmt.Sprintf("mkm: key %s has %d components, schema wants %d", key, len(key), len(s.types)))
	}
	if len(key) > len(s.types) {
		panic(fmt.Sprintf("mkm: key %s has %d components, schema allows at most %d", key, len(key), len(s.types)))
	}
	for i, c := range key {
		if c == nil {
			panic(fmt.Sprintf("mkm: key component %d is nil", i))
		}
		if ct := reflect.TypeOf(c); ct != s.types[i] {
			panic(fmt.Sprintf("mkm: key component %d is %s, schema wants %s", i, ct, s.types[i]))
		}
	}
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}
