// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package mkm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithCache_InvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewWithCache[int](SchemaOf2[int, rune](), 0)
	require.Error(t, err)
	_, err = NewWithCache[int](SchemaOf2[int, rune](), -3)
	require.Error(t, err)
}

func TestCache_FullKeyLookups(t *testing.T) {
	t.Parallel()

	m, err := NewWithCache[int](SchemaOf3[int, rune, bool](), 16)
	require.NoError(t, err)

	require.True(t, m.Insert(K(5, 'c', true), 1))
	require.True(t, m.Insert(K(5, 'c', false), 2))

	// Repeated lookups hit the memoized node and keep agreeing with
	// the trie walk.
	for i := 0; i < 3; i++ {
		v, err := m.At(5, 'c', true)
		require.NoError(t, err)
		require.Equal(t, 1, v)
	}
	require.Equal(t, 1, m.Count(5, 'c', true))
	require.True(t, m.Contains(5, 'c', true))
}

func TestCache_InvalidatedByMutation(t *testing.T) {
	t.Parallel()

	m, err := NewWithCache[int](SchemaOf3[int, rune, bool](), 16)
	require.NoError(t, err)

	require.True(t, m.Insert(K(5, 'c', true), 1))
	v, err := m.At(5, 'c', true)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	// Erase must not leave a stale cached resolution behind.
	require.Equal(t, 1, m.Erase(5, 'c', true))
	_, err = m.At(5, 'c', true)
	require.True(t, errors.Is(err, ErrKeyNotFound))

	// Same for Clear.
	require.True(t, m.Insert(K(5, 'c', true), 7))
	_, err = m.At(5, 'c', true)
	require.NoError(t, err)
	m.Clear()
	_, err = m.At(5, 'c', true)
	require.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestCache_MissesAreNotCached(t *testing.T) {
	t.Parallel()

	m, err := NewWithCache[int](SchemaOf2[int, rune](), 16)
	require.NoError(t, err)

	_, err = m.At(1, 'a')
	require.True(t, errors.Is(err, ErrKeyNotFound))

	// Inserting after a miss must be observable immediately.
	require.True(t, m.Insert(K(1, 'a'), 1))
	v, err := m.At(1, 'a')
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestCache_SurvivesSwap(t *testing.T) {
	t.Parallel()

	a, err := NewWithCache[int](SchemaOf2[int, rune](), 16)
	require.NoError(t, err)
	b := New[int](SchemaOf2[int, rune]())

	require.True(t, a.Insert(K(1, 'a'), 1))
	require.True(t, b.Insert(K(2, 'b'), 2))

	v, err := a.At(1, 'a')
	require.NoError(t, err)
	require.Equal(t, 1, v)

	a.Swap(b)

	// The cache moved with the structure it describes.
	v, err = b.At(1, 'a')
	require.NoError(t, err)
	require.Equal(t, 1, v)
	_, err = a.At(1, 'a')
	require.True(t, errors.Is(err, ErrKeyNotFound))
	v, err = a.At(2, 'b')
	require.NoError(t, err)
	require.Equal(t, 2, v)
}
