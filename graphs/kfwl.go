package graphs

import "sort"

// KFWL runs the k-dimensional folklore Weisfeiler-Leman refinement of
// §4.J over every ordered k-tuple of vertices of g (with repetition:
// v̄[i] need not differ from v̄[j]).
//
// Initial coloring: the isomorphism type of the induced labelled subgraph
// on {v̄[1],...,v̄[k]}, computed via SparseNautyBridge.Canonize so that two
// tuples related by a graph automorphism start in the same class. Two
// tuples that are merely permutations of each other's *positions*
// (v̄ vs. a reordering of the same multiset of vertices) are not folded
// together by this step alone — the canonical encoding is computed over
// the tuple's positions in order, matching how k-FWL treats v̄ as an
// ordered tuple rather than a set. Position order is therefore preserved
// consistently through every round, which is what makes the signature in
// RefineStep well defined without a separate "canonicalize the k
// per-position swaps" pass: the only thing that needs to agree between
// isomorphic tuples is which underlying graph automorphism carried one to
// the other, and Canonize already quotients by that.
func KFWL(g AdjacencyGraph, k int) Certificate {
	tuples := enumerateTuples(g.NumVertices(), k)
	colors := initialKTupleColors(g, tuples, k)

	for {
		next := make([]signature, len(tuples))
		for ti, tuple := range tuples {
			// One k-vector per w, sorted: the signature is a multiset over w.
			perW := make([]string, 0, g.NumVertices())
			for w := 0; w < g.NumVertices(); w++ {
				vec := make([]int, 0, k)
				for i := 0; i < k; i++ {
					swapped := append([]int{}, tuple...)
					swapped[i] = w
					vec = append(vec, colors[tupleIndex(swapped, g.NumVertices())])
				}
				perW = append(perW, intsToKey(vec))
			}
			sort.Strings(perW)
			neighbors := ""
			for _, s := range perW {
				neighbors += s + ";"
			}
			next[ti] = signature{self: colors[ti], neighbors: neighbors}
		}
		newColors, numClasses := compressSignatures(next)
		if numClasses == numDistinct(colors) && samePartition(colors, newColors) {
			return Certificate{Colors: colors, Histogram: histogram(colors)}
		}
		colors = newColors
	}
}

func enumerateTuples(n, k int) [][]int {
	var out [][]int
	cur := make([]int, k)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			out = append(out, append([]int{}, cur...))
			return
		}
		for v := 0; v < n; v++ {
			cur[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
	return out
}

// tupleIndex computes the dense index of a k-tuple over n vertices in the
// same enumeration order enumerateTuples produces (base-n positional
// encoding), so colors[] can be indexed directly without a map lookup
// inside the hot loop.
func tupleIndex(tuple []int, n int) int {
	idx := 0
	for _, v := range tuple {
		idx = idx*n + v
	}
	return idx
}

func initialKTupleColors(g AdjacencyGraph, tuples [][]int, k int) []int {
	rawKeys := make([]string, len(tuples))
	for ti, tuple := range tuples {
		rawKeys[ti] = inducedTupleEncoding(g, tuple)
	}

	sortedKeys := append([]string{}, rawKeys...)
	sort.Strings(sortedKeys)
	rank := make(map[string]int)
	next := 0
	for _, k := range sortedKeys {
		if _, ok := rank[k]; !ok {
			rank[k] = next
			next++
		}
	}

	out := make([]int, len(tuples))
	for ti := range tuples {
		out[ti] = rank[rawKeys[ti]]
	}
	return out
}

// inducedTupleEncoding builds the k-vertex induced subgraph on tuple
// (vertex i's label is the pair of its underlying graph label and which
// other tuple positions share its same underlying vertex, so repeated
// elements of the tuple are distinguishable from merely-equal-labelled
// distinct vertices) and returns its canonical encoding.
func inducedTupleEncoding(g AdjacencyGraph, tuple []int) string {
	k := len(tuple)
	labels := make([]int, k)
	equalityClass := make(map[int]int)
	nextClass := 0
	for i, v := range tuple {
		cls, ok := equalityClass[v]
		if !ok {
			cls = nextClass
			nextClass++
			equalityClass[v] = cls
		}
		labels[i] = g.VertexLabel(v)*1000 + cls
	}

	present := make(map[int]int, k)
	for i, v := range tuple {
		present[v] = i
	}
	var edges []Edge
	for i, v := range tuple {
		for _, e := range g.OutEdges(v) {
			if j, ok := present[e.Target]; ok {
				edges = append(edges, Edge{Source: i, Target: j, Label: e.Label})
			}
		}
	}
	induced := NewStaticGraph(k, labels, edges)

	var bridge SparseNautyBridge
	perm, _ := bridge.Canonize(induced)
	return canonicalEncoding(induced, perm)
}
