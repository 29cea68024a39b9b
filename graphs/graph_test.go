package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/graphs"
)

func TestStaticGraphForwardAdjacency(t *testing.T) {
	g := graphs.NewStaticGraph(3, nil, []graphs.Edge{
		{Source: 0, Target: 1, Label: -1},
		{Source: 0, Target: 2, Label: -1},
		{Source: 1, Target: 2, Label: -1},
	})
	require.Len(t, g.OutEdges(0), 2)
	require.Len(t, g.OutEdges(1), 1)
	require.Len(t, g.OutEdges(2), 0)
}

func TestBidirectionalGraphIndexesIncoming(t *testing.T) {
	g := graphs.NewBidirectionalGraph(3, nil, []graphs.Edge{
		{Source: 0, Target: 2, Label: -1},
		{Source: 1, Target: 2, Label: -1},
	})
	require.Len(t, g.InEdges(2), 2)
	require.Len(t, g.InEdges(0), 0)
}

func TestDynamicGraphRemoveEdge(t *testing.T) {
	g := graphs.NewDynamicGraph(2)
	e := graphs.Edge{Source: 0, Target: 1, Label: -1}
	g.AddEdge(e)
	require.Len(t, g.OutEdges(0), 1)
	require.True(t, g.RemoveEdge(e))
	require.Len(t, g.OutEdges(0), 0)
	require.Len(t, g.InEdges(1), 0)
}

func TestDynamicGraphToStaticPreservesEdges(t *testing.T) {
	g := graphs.NewDynamicGraph(2)
	g.AddEdge(graphs.Edge{Source: 0, Target: 1, Label: -1})
	static := g.ToStatic()
	require.Len(t, static.OutEdges(0), 1)
}

func TestColorRefineDistinguishesAsymmetricVertices(t *testing.T) {
	// A path 0 -> 1 -> 2, refined over out-edges: 2 has no out-neighbour and
	// splits off first; then 0 (pointing at 1) and 1 (pointing at 2) differ,
	// so all three colors differ.
	g := graphs.NewStaticGraph(3, nil, []graphs.Edge{
		{Source: 0, Target: 1, Label: -1},
		{Source: 1, Target: 2, Label: -1},
	})
	cert := graphs.ColorRefine(g)
	require.Equal(t, 3, len(uniqueInts(cert.Colors)))
}

func TestColorRefineMergesSymmetricVertices(t *testing.T) {
	// Two vertices with no edges and no labels are indistinguishable.
	g := graphs.NewStaticGraph(2, nil, nil)
	cert := graphs.ColorRefine(g)
	require.Equal(t, cert.Colors[0], cert.Colors[1])
}

func TestKFWLProducesStableCertificate(t *testing.T) {
	g := graphs.NewStaticGraph(3, nil, []graphs.Edge{
		{Source: 0, Target: 1, Label: -1},
		{Source: 1, Target: 2, Label: -1},
	})
	cert := graphs.KFWL(g, 2)
	require.NotEmpty(t, cert.Colors)
	require.NotEmpty(t, cert.Histogram)
}

func TestSparseNautyBridgeComputesPermutationBetweenIsomorphicGraphs(t *testing.T) {
	// g1: 0->1. g2: 1->0 (same graph, vertices swapped).
	g1 := graphs.NewStaticGraph(2, nil, []graphs.Edge{{Source: 0, Target: 1, Label: -1}})
	g2 := graphs.NewStaticGraph(2, nil, []graphs.Edge{{Source: 1, Target: 0, Label: -1}})

	var bridge graphs.SparseNautyBridge
	mapping, err := bridge.ComputePermutation(g1, g2)
	require.NoError(t, err)
	require.Equal(t, 1, mapping[0])
	require.Equal(t, 0, mapping[1])
}

func TestSparseNautyBridgeRejectsNonIsomorphicGraphs(t *testing.T) {
	g1 := graphs.NewStaticGraph(2, nil, []graphs.Edge{{Source: 0, Target: 1, Label: -1}})
	g2 := graphs.NewStaticGraph(2, nil, nil)

	var bridge graphs.SparseNautyBridge
	_, err := bridge.ComputePermutation(g1, g2)
	require.Error(t, err)
}

func TestKFWLWithOptionsRejectsArityOverBudget(t *testing.T) {
	g := graphs.NewStaticGraph(3, nil, []graphs.Edge{
		{Source: 0, Target: 1, Label: -1},
	})
	_, err := graphs.KFWLWithOptions(g, 3, graphs.Options{MaxK: 2})
	require.ErrorIs(t, err, graphs.ErrOutOfBudget)

	cert, err := graphs.KFWLWithOptions(g, 2, graphs.Options{MaxK: 2})
	require.NoError(t, err)
	require.NotEmpty(t, cert.Colors)
}

func uniqueInts(xs []int) map[int]bool {
	out := make(map[int]bool)
	for _, x := range xs {
		out[x] = true
	}
	return out
}
