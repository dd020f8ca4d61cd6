// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type id int

func TestInsertRemove(t *testing.T) {
	var m Map[id, string]
	a := m.Insert("a")
	b := m.Insert("b")
	c := m.Insert("c")
	require.Equal(t, []id{0, 1, 2}, []id{a, b, c})
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "b", *m.Get(b))

	s, ok := m.Remove(a)
	require.True(t, ok)
	assert.Equal(t, "a", s)
	assert.False(t, m.Has(a))
	assert.Nil(t, m.Get(a))
	// Remaining identifiers are stable after the swap.
	assert.Equal(t, "b", *m.Get(b))
	assert.Equal(t, "c", *m.Get(c))

	_, ok = m.Remove(a)
	assert.False(t, ok)

	d := m.Insert("d")
	assert.Equal(t, a, d, "identifiers are recycled")
	assert.Equal(t, "d", *m.Get(d))
	assert.Equal(t, 3, m.Len())
}

func TestGrow(t *testing.T) {
	var m Map[id, int]
	for i := 0; i < 200; i++ {
		require.Equal(t, id(i), m.Insert(i))
	}
	for _, e := range m.Entries() {
		assert.Equal(t, int(e.ID), e.Data)
	}
	for i := 0; i < 200; i += 2 {
		m.Remove(id(i))
	}
	assert.Equal(t, 100, m.Len())
	for i := 1; i < 200; i += 2 {
		assert.Equal(t, i, *m.Get(id(i)))
	}
}

func TestClear(t *testing.T) {
	var m Map[id, int]
	m.Insert(1)
	m.Insert(2)
	m.Clear()
	assert.Zero(t, m.Len())
	assert.False(t, m.Has(0))
	assert.Equal(t, id(0), m.Insert(3))
}
