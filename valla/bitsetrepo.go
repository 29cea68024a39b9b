package valla

import (
	"fmt"
	"math/bits"

	"github.com/simon-stahlberg/mimir-sub009/bitset"
)

// bitsetRepo is the ordering-bitset uniqueness table described in §4.C/§4.E:
// it deduplicates ordering bitsets by content, so that two roots built from
// differently-ordered insertions of the same set end up pointing at the
// exact same bitset.Allocation rather than two content-identical copies.
type bitsetRepo struct {
	pool   bitset.Pool
	byKey  map[string]int
	allocs []bitset.Allocation
}

func newBitsetRepo() *bitsetRepo {
	return &bitsetRepo{byKey: make(map[string]int)}
}

// intern allocates an nBits-wide bitset with the given bits set, then
// deduplicates it against everything interned so far. If an identical
// bitset already exists, the speculative allocation is rolled back via
// bitset.Pool.Pop and the existing index is returned.
func (r *bitsetRepo) intern(nBits int, setBits []int) int {
	a := r.pool.Allocate(nBits)
	for _, b := range setBits {
		a.Set(b, true)
	}
	key := allocKey(a)
	if idx, ok := r.byKey[key]; ok {
		r.pool.Pop(a)
		return idx
	}
	idx := len(r.allocs)
	r.allocs = append(r.allocs, a)
	r.byKey[key] = idx
	return idx
}

func (r *bitsetRepo) get(index int) bitset.Allocation {
	return r.allocs[index]
}

func allocKey(a bitset.Allocation) string {
	return fmt.Sprintf("%d:%v", a.Len(), a.Words())
}

// bitCeil returns the smallest power of two >= n, for n >= 0 (bitCeil(0) == 0).
func bitCeil(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
