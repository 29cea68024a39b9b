package valla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableInsertDedups(t *testing.T) {
	tb := NewTable(16)
	s := Slot{Left: Leaf(1), Right: Leaf(2)}
	i1, ins1 := tb.Insert(s)
	i2, ins2 := tb.Insert(s)
	require.True(t, ins1)
	require.False(t, ins2)
	require.Equal(t, i1, i2)
}

func TestTableGrowPreservesContentAndReferences(t *testing.T) {
	tb := NewTable(16) // capacity 16, rehashes well before 200 inserts
	leafIdx, _ := tb.Insert(Slot{Left: Leaf(0), Right: Leaf(1)})

	var parents []int
	// Table indices move on every rehash; keep the recorded parent indices
	// current the same way Tree keeps its root Refs current.
	tb.onRemap = func(oldToNew []int) {
		for i, p := range parents {
			parents[i] = oldToNew[p]
		}
	}
	for i := 0; i < 200; i++ {
		idx, _ := tb.Insert(Slot{Left: Node(leafIdx), Right: Leaf(i + 2)})
		parents = append(parents, idx)
		// leafIdx must keep pointing at a Table index whose slot is still
		// (Leaf(0), Leaf(1)) even though it may have moved during grow.
		leafSlot := tb.At(func() int {
			idx, ok := tb.Lookup(Slot{Left: Leaf(0), Right: Leaf(1)})
			require.True(t, ok)
			return idx
		}())
		require.Equal(t, Slot{Left: Leaf(0), Right: Leaf(1)}, leafSlot)
		leafIdx, _ = tb.Lookup(Slot{Left: Leaf(0), Right: Leaf(1)})
	}

	for i, idx := range parents {
		s := tb.At(idx)
		require.True(t, s.Left.IsInternal)
		require.Equal(t, Leaf(i+2), s.Right)
	}
}

func TestTableLookupMiss(t *testing.T) {
	tb := NewTable(16)
	_, ok := tb.Lookup(Slot{Left: Leaf(9), Right: Leaf(10)})
	require.False(t, ok)
}
