// Package idmap implements the §4.D indexed hash-identity map: a hash map
// from key to a dense, sequentially-assigned index, augmented by an
// append-only vector that stores each inserted key at its index so that
// GetByIndex is O(1).
//
// This is the workhorse behind every hash-consing factory in package
// formalism (§4.G); indices assigned here are never reused and never move.
package idmap

import "github.com/simon-stahlberg/mimir-sub009/internal/arena"

// Map is a hash-identity map from K to a dense int index.
//
// The zero Map is empty and ready to use. A Map is not safe for concurrent
// mutation; see §5.
type Map[K comparable, V any] struct {
	index  map[K]int
	keys   *arena.Arena[K]
	values *arena.Arena[V]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index:  make(map[K]int),
		keys:   arena.New[K](0),
		values: arena.New[V](0),
	}
}

// Len returns the number of distinct keys inserted so far.
func (m *Map[K, V]) Len() int {
	if m.index == nil {
		return 0
	}
	return len(m.index)
}

// Insert assigns k a dense index the first time it is seen, storing value
// alongside it. Subsequent calls with an equal key return the original index
// and leave the stored value untouched — Insert never overwrites.
//
// Returns the key's index and whether this call actually inserted it.
func (m *Map[K, V]) Insert(k K, value V) (index int, inserted bool) {
	m.init()
	if idx, ok := m.index[k]; ok {
		return idx, false
	}

	idx := m.keys.Alloc(1)
	*m.keys.At(idx) = k
	vidx := m.values.Alloc(1)
	*m.values.At(vidx) = value
	if idx != vidx {
		panic("idmap: key and value arenas diverged")
	}

	m.index[k] = idx
	return idx, true
}

// Lookup returns the index assigned to k, if any.
func (m *Map[K, V]) Lookup(k K) (index int, ok bool) {
	if m.index == nil {
		return 0, false
	}
	idx, ok := m.index[k]
	return idx, ok
}

// GetByIndex returns the key and value stored at the given dense index.
func (m *Map[K, V]) GetByIndex(index int) (K, V) {
	return *m.keys.At(index), *m.values.At(index)
}

// KeyAt returns the key stored at the given dense index.
func (m *Map[K, V]) KeyAt(index int) K {
	return *m.keys.At(index)
}

// ValueAt returns the value stored at the given dense index.
func (m *Map[K, V]) ValueAt(index int) V {
	return *m.values.At(index)
}

// SetValueAt overwrites the value stored at the given dense index, without
// touching the key or index assignment. Used when a value needs to be
// patched in place after insertion (e.g. a repository backfilling a derived
// field once its dependencies have themselves been interned).
func (m *Map[K, V]) SetValueAt(index int, value V) {
	*m.values.At(index) = value
}

// All iterates over every (index, key, value) triple in insertion order,
// matching the ordering guarantee in §5: "iteration of dense index ranges
// yields insertion order."
func (m *Map[K, V]) All(yield func(index int, key K, value V) bool) {
	for i := 0; i < m.Len(); i++ {
		k, v := m.GetByIndex(i)
		if !yield(i, k, v) {
			return
		}
	}
}

func (m *Map[K, V]) init() {
	if m.index == nil {
		m.index = make(map[K]int)
		m.keys = arena.New[K](0)
		m.values = arena.New[V](0)
	}
}
