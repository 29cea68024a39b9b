package formalism

import "github.com/simon-stahlberg/mimir-sub009/internal/arena"

// ChildPool is the shared arena every variable-length field in this package
// slices into: an entity that would otherwise need a []int field (breaking
// Go map-key comparability, which the hash-consing Factory below depends
// on) instead stores a (Start, Len) pair indexing into one repository-wide
// pool of child indices. This is the "arena of entities indexed by integer"
// adaptation called for in §9 ("Cyclic references ... use an arena of
// entities indexed by integer"), generalized here to any same-repository
// list field rather than just tree back-edges.
type ChildPool struct {
	arena *arena.Arena[int]
	// ranges maps a list's content to the start of the range it was first
	// written at, so equal lists share one (start, len) pair.
	ranges map[string]int
}

func newChildPool() *ChildPool {
	return &ChildPool{arena: arena.New[int](0)}
}

// Put returns the (start, len) range holding ids. The ids are copied into
// the pool only the first time a list with this content is stored; an equal
// list stored later gets the same range back.
func (p *ChildPool) Put(ids []int) (start, length int) {
	if len(ids) == 0 {
		return 0, 0
	}
	key := make([]byte, 0, 8*len(ids))
	for _, id := range ids {
		for s := 0; s < 64; s += 8 {
			key = append(key, byte(id>>s))
		}
	}
	if start, ok := p.ranges[string(key)]; ok {
		return start, len(ids)
	}
	start = p.arena.Alloc(len(ids))
	for i, id := range ids {
		*p.arena.At(start + i) = id
	}
	if p.ranges == nil {
		p.ranges = make(map[string]int)
	}
	p.ranges[string(key)] = start
	return start, len(ids)
}

// Get returns a fresh copy of the ids stored at (start, length); mutating it
// does not affect the pool.
func (p *ChildPool) Get(start, length int) []int {
	if length == 0 {
		return nil
	}
	out := make([]int, length)
	for i := 0; i < length; i++ {
		out[i] = *p.arena.At(start + i)
	}
	return out
}
