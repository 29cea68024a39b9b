package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/bitset"
)

func TestAllocateGetSet(t *testing.T) {
	var p bitset.Pool
	a := p.Allocate(10)
	require.Equal(t, 10, a.Len())

	for b := 0; b < 10; b++ {
		require.False(t, a.Get(b))
	}

	a.Set(3, true)
	a.Set(9, true)
	require.True(t, a.Get(3))
	require.True(t, a.Get(9))
	require.False(t, a.Get(4))
}

func TestAllocationsDoNotOverlap(t *testing.T) {
	var p bitset.Pool
	a := p.Allocate(5)
	b := p.Allocate(5)

	a.Set(0, true)
	require.False(t, b.Get(0))
}

func TestPopRollsBackMostRecentAllocation(t *testing.T) {
	var p bitset.Pool
	a := p.Allocate(5)
	a.Set(0, true)

	b := p.Allocate(5)
	p.Pop(b)

	c := p.Allocate(5)
	require.False(t, c.Get(0))

	// a's contents are untouched by the Pop/re-Allocate cycle.
	require.True(t, a.Get(0))
}

func TestEqualComparesContentNotIdentity(t *testing.T) {
	var p1, p2 bitset.Pool
	a := p1.Allocate(70)
	b := p2.Allocate(70)

	a.Set(65, true)
	b.Set(65, true)
	require.True(t, a.Equal(b))

	b.Set(2, true)
	require.False(t, a.Equal(b))
}

func TestGrowthAcrossManySegments(t *testing.T) {
	var p bitset.Pool
	allocs := make([]bitset.Allocation, 0, 1000)
	for i := range 1000 {
		a := p.Allocate(64)
		a.Set(i%64, true)
		allocs = append(allocs, a)
	}
	for i, a := range allocs {
		require.True(t, a.Get(i%64))
	}
}
