package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/internal/arena"
)

func TestAllocStableIndices(t *testing.T) {
	a := arena.New[int](4)

	i0 := a.Alloc(1)
	*a.At(i0) = 10

	i1 := a.Alloc(1)
	*a.At(i1) = 20

	i2 := a.Alloc(3)
	*a.At(i2) = 30

	require.Equal(t, 10, *a.At(i0))
	require.Equal(t, 20, *a.At(i1))
	require.Equal(t, 30, *a.At(i2))
	require.Equal(t, 5, a.Len())
}

func TestResetInvalidatesLength(t *testing.T) {
	a := arena.New[int](0)
	a.Alloc(10)
	require.Equal(t, 10, a.Len())

	a.Reset()
	require.Equal(t, 0, a.Len())

	i := a.Alloc(1)
	require.Equal(t, 0, i)
}

func TestGrowthPreservesPriorIndices(t *testing.T) {
	a := arena.New[int](2)
	var indices []int
	for i := range 20 {
		idx := a.Alloc(1)
		*a.At(idx) = i
		indices = append(indices, idx)
	}

	for i, idx := range indices {
		require.Equal(t, i, *a.At(idx))
	}
}
