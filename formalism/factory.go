package formalism

import "github.com/simon-stahlberg/mimir-sub009/idmap"

// Factory is the §4.G "one factory per entity kind": a hash-consing map
// from an entity's comparable structural value to the dense index assigned
// to its unique representative, built directly on the indexed
// hash-identity map of §4.D.
type Factory[K comparable] struct {
	m *idmap.Map[K, K]
}

func newFactory[K comparable]() *Factory[K] {
	return &Factory[K]{m: idmap.New[K, K]()}
}

// Intern returns the dense index of k's unique representative, inserting it
// if this is the first time a structurally-equal value has been seen.
func (f *Factory[K]) Intern(k K) int {
	idx, _ := f.m.Insert(k, k)
	return idx
}

// At returns the value stored at a dense index.
func (f *Factory[K]) At(i int) K { return f.m.KeyAt(i) }

// Len returns how many distinct values have been interned.
func (f *Factory[K]) Len() int { return f.m.Len() }

// Lookup reports the index of k, if it has already been interned.
func (f *Factory[K]) Lookup(k K) (int, bool) { return f.m.Lookup(k) }

// All iterates every (index, value) pair in insertion order.
func (f *Factory[K]) All(yield func(index int, value K) bool) {
	f.m.All(func(index int, value K, _ K) bool { return yield(index, value) })
}
