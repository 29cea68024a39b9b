package flatter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/flatter"
)

func TestComputeTupleLayoutInsertsAlignmentPadding(t *testing.T) {
	tag := flatter.Tuple(flatter.Uint8Tag, flatter.Uint32Tag)
	layout, fo := flatter.ComputeTupleLayout(tag.Fields)
	require.Equal(t, 0, fo.Offsets[0])
	require.Equal(t, 4, fo.Offsets[1]) // padded up to uint32's alignment
	require.Equal(t, 8, layout.Size)
	require.Equal(t, 4, layout.Align)
}

func TestDynamicDetection(t *testing.T) {
	static := flatter.Tuple(flatter.Uint8Tag, flatter.Uint32Tag)
	require.False(t, static.Dynamic())

	withVector := flatter.Tuple(flatter.Uint8Tag, flatter.Vector(flatter.Uint32Tag))
	require.True(t, withVector.Dynamic())

	nested := flatter.Tuple(withVector, flatter.Uint8Tag)
	require.True(t, nested.Dynamic())
}
