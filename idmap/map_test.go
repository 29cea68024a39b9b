package idmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/idmap"
)

func TestInsertAssignsSequentialIndices(t *testing.T) {
	m := idmap.New[string, int]()

	i0, ins0 := m.Insert("a", 100)
	require.True(t, ins0)
	require.Equal(t, 0, i0)

	i1, ins1 := m.Insert("b", 200)
	require.True(t, ins1)
	require.Equal(t, 1, i1)

	i2, ins2 := m.Insert("a", 999) // duplicate key, value ignored
	require.False(t, ins2)
	require.Equal(t, 0, i2)

	k, v := m.GetByIndex(0)
	require.Equal(t, "a", k)
	require.Equal(t, 100, v)
}

func TestLookup(t *testing.T) {
	m := idmap.New[string, int]()
	m.Insert("x", 1)

	idx, ok := m.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 0, idx)

	_, ok = m.Lookup("y")
	require.False(t, ok)
}

func TestAllYieldsInsertionOrder(t *testing.T) {
	m := idmap.New[string, int]()
	m.Insert("c", 3)
	m.Insert("a", 1)
	m.Insert("b", 2)

	var keys []string
	m.All(func(index int, key string, value int) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestZeroValueReady(t *testing.T) {
	var m idmap.Map[int, string]
	idx, inserted := m.Insert(42, "hi")
	require.True(t, inserted)
	require.Equal(t, 0, idx)
	require.Equal(t, 1, m.Len())
}
