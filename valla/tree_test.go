package valla_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/valla"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]int{
		nil,
		{5},
		{1, 3},
		{1, 3, 7},
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{2, 4, 9, 15, 16, 100, 101},
	}
	for _, c := range cases {
		tr := valla.NewTree()
		_, root := tr.Insert(c)
		got := tr.Read(root)
		if len(c) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, c, got)
		}
	}
}

// Scenario 1 of §8: encoding the same sorted state twice from different
// builders yields the same (tree_index, size, ordering) triple.
func TestSameContentSharesRoot(t *testing.T) {
	tr := valla.NewTree()
	i1, r1 := tr.Insert([]int{1, 3, 7})
	i2, r2 := tr.Insert([]int{1, 3, 7})
	require.Equal(t, i1, i2)
	require.Equal(t, r1, r2)
}

// Scenario 2 of §8: two insertion orders of the same set, after each side
// independently sorts before insertion, produce the same root.
func TestPermutedInsertionSharesRoot(t *testing.T) {
	tr := valla.NewTree()
	a := []int{1, 3}
	b := []int{3, 1}
	sort.Ints(b)
	_, r1 := tr.Insert(a)
	_, r2 := tr.Insert(b)
	require.Equal(t, r1, r2)
}

func TestEmptyIsPreInsertedAtIndexZero(t *testing.T) {
	tr := valla.NewTree()
	idx, root := tr.Insert(nil)
	require.Equal(t, 0, idx)
	require.Equal(t, valla.Empty, root)
}

func TestRootIndicesStableAcrossManyInserts(t *testing.T) {
	tr := valla.NewTree()
	rng := rand.New(rand.NewSource(1))
	indices := make([]int, 0, 500)
	sets := make([][]int, 0, 500)
	for i := 0; i < 500; i++ {
		n := rng.Intn(20)
		set := make(map[int]struct{}, n)
		for len(set) < n {
			set[rng.Intn(1000)] = struct{}{}
		}
		vals := make([]int, 0, n)
		for v := range set {
			vals = append(vals, v)
		}
		sort.Ints(vals)
		idx, _ := tr.Insert(vals)
		indices = append(indices, idx)
		sets = append(sets, vals)
	}

	// Forces several internal-table rehashes; every previously-assigned
	// root index must still resolve to the same decoded content.
	for i, idx := range indices {
		root := tr.RootAt(idx)
		require.Equal(t, sets[i], tr.Read(root))
	}
}

func TestDistinctSetsGetDistinctRoots(t *testing.T) {
	tr := valla.NewTree()
	i1, _ := tr.Insert([]int{1, 2, 3})
	i2, _ := tr.Insert([]int{1, 2, 4})
	require.NotEqual(t, i1, i2)
}
