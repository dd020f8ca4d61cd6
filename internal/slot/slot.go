// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package slot implements an arena that addresses its
// elements through stable integer identifiers.
package slot

import (
	"github.com/gviegas/interact/internal/bitvec"
)

// Entry is what a Map stores.
type Entry[I ~int, D any] struct {
	Data D
	ID   I
}

// Map stores data of type D with identifiers of type I.
// Identifiers remain valid until removed and are then
// recycled by later insertions. Data is kept densely
// packed, so removal may reorder Entries.
// The zero value is an empty map ready for use.
type Map[I ~int, D any] struct {
	ids   []int
	idMap bitvec.V[uint32]
	data  []Entry[I, D]
}

// Insert inserts data into m.
// It returns an I value that identifies data in m.
func (m *Map[I, D]) Insert(data D) I {
	if m.idMap.Rem() == 0 {
		n := 1 + m.idMap.Len()/64
		m.ids = append(m.ids, make([]int, n*32)...)
		m.idMap.Grow(n)
	}
	idx, ok := m.idMap.Search()
	if !ok {
		// Should never happen.
		panic("slot: unexpected failure from bitvec.V.Search")
	}
	m.idMap.Set(idx)
	id := I(idx)
	m.ids[id] = len(m.data)
	m.data = append(m.data, Entry[I, D]{data, id})
	return id
}

// Remove removes the data identified by id.
// It returns the removed data and whether id belonged
// to m.
func (m *Map[I, D]) Remove(id I) (data D, ok bool) {
	if !m.Has(id) {
		return
	}
	d := m.ids[id]
	data = m.data[d].Data
	last := len(m.data) - 1
	if d < last {
		swap := m.data[last].ID
		m.ids[swap] = d
		m.data[d] = m.data[last]
	}
	m.ids[id] = -1
	m.idMap.Unset(int(id))
	m.data[last] = Entry[I, D]{}
	m.data = m.data[:last]
	return data, true
}

// Has returns whether id identifies data in m.
func (m *Map[I, _]) Has(id I) bool { return m.idMap.IsSet(int(id)) }

// Get returns a pointer to the data identified by id,
// or nil if id does not belong to m.
// The pointer is invalidated by calls to Insert and
// Remove.
func (m *Map[I, D]) Get(id I) *D {
	if !m.Has(id) {
		return nil
	}
	return &m.data[m.ids[id]].Data
}

// Entries returns the entries of m.
// The slice aliases m's storage and must not be
// mutated by the caller.
func (m *Map[I, D]) Entries() []Entry[I, D] { return m.data }

// Len returns the number of entries in m.
func (m *Map[_, _]) Len() int { return len(m.data) }

// Clear removes every entry from m.
func (m *Map[I, D]) Clear() {
	clear(m.data)
	m.data = m.data[:0]
	m.idMap.Clear()
}
