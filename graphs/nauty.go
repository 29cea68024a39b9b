package graphs

import (
	"fmt"
	"sort"
)

// SparseNautyBridge is the §4.J "sparse nauty bridge" substitute: nothing
// in the example pack wraps the real nauty C library (no cgo binding
// appears anywhere in it), so canonical labelling is computed directly in
// Go instead of bridging to an external graph-automorphism library. This
// is an explicit Open Question resolution, not an oversight — see
// DESIGN.md.
//
// Canonize performs exhaustive individualization-refinement: color
// refinement first collapses as much symmetry as it can for free, then
// every remaining tie within a non-singleton color class is broken by
// brute-force search over the vertices in that class, keeping whichever
// choice yields the lexicographically smallest canonical adjacency
// encoding. This is exponential in the size of the largest non-singleton
// refinement class, which is acceptable for k-FWL's use (inducing a
// canonical isomorphism type on a k-tuple, k small) but would need a
// real nauty binding to scale to graphs with large automorphism groups.
type SparseNautyBridge struct{}

// Canonize returns a canonical permutation π (π[original vertex] =
// canonical position) and its inverse, such that relabelling g by π
// yields the same adjacency encoding for every graph isomorphic to g.
func (SparseNautyBridge) Canonize(g AdjacencyGraph) (perm, inverse []int) {
	n := g.NumVertices()
	classes := refinementClasses(g)

	best := (*canonAttempt)(nil)
	searchCanonical(g, classes, nil, &best)

	perm = make([]int, n)
	inverse = make([]int, n)
	for pos, v := range best.order {
		perm[v] = pos
		inverse[pos] = v
	}
	return perm, inverse
}

// ComputePermutation yields the relabelling that maps source's canonical
// form onto target's, given that the two are isomorphic (equal canonical
// adjacency encodings); §4.J requires the bridge throw if nauty reports
// non-equal canonical forms, mirrored here as a returned error.
func (b SparseNautyBridge) ComputePermutation(source, target AdjacencyGraph) ([]int, error) {
	srcPerm, _ := b.Canonize(source)
	tgtPerm, tgtInverse := b.Canonize(target)

	if canonicalEncoding(source, srcPerm) != canonicalEncoding(target, tgtPerm) {
		return nil, fmt.Errorf("graphs: source and target have non-equal canonical forms")
	}

	n := source.NumVertices()
	mapping := make([]int, n)
	for v := 0; v < n; v++ {
		mapping[v] = tgtInverse[srcPerm[v]]
	}
	return mapping, nil
}

type canonAttempt struct {
	order    []int
	encoding string
}

// refinementClasses groups vertices by their stable 1-WL color, in
// ascending color order, as the starting partition individualization
// refines further.
func refinementClasses(g AdjacencyGraph) [][]int {
	cert := ColorRefine(g)
	byColor := make(map[int][]int)
	for v, c := range cert.Colors {
		byColor[c] = append(byColor[c], v)
	}
	colors := make([]int, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Ints(colors)
	out := make([][]int, len(colors))
	for i, c := range colors {
		out[i] = byColor[c]
	}
	return out
}

// searchCanonical individualizes the first non-singleton class in
// classes, branching over each of its vertices, until every class is a
// singleton (a total vertex order), then records the resulting encoding
// if it's the smallest seen so far.
func searchCanonical(g AdjacencyGraph, classes [][]int, prefix []int, best **canonAttempt) {
	splitIdx := -1
	for i, cls := range classes {
		if len(cls) > 1 {
			splitIdx = i
			break
		}
	}
	if splitIdx < 0 {
		order := make([]int, 0, g.NumVertices())
		order = append(order, prefix...)
		for _, cls := range classes {
			order = append(order, cls...)
		}
		perm := make([]int, g.NumVertices())
		for pos, v := range order {
			perm[v] = pos
		}
		enc := canonicalEncoding(g, perm)
		if *best == nil || enc < (*best).encoding {
			*best = &canonAttempt{order: order, encoding: enc}
		}
		return
	}

	cls := classes[splitIdx]
	for _, v := range cls {
		rest := make([]int, 0, len(cls)-1)
		for _, u := range cls {
			if u != v {
				rest = append(rest, u)
			}
		}
		next := make([][]int, 0, len(classes)+1)
		next = append(next, classes[:splitIdx]...)
		next = append(next, []int{v})
		if len(rest) > 0 {
			next = append(next, rest)
		}
		next = append(next, classes[splitIdx+1:]...)

		searchCanonical(g, next, append(append([]int{}, prefix...), v), best)
	}
}

// canonicalEncoding renders g's adjacency relation, relabelled by perm
// (perm[original vertex] = canonical position), as a string sortable
// lexicographically: the same graph under two isomorphic labellings
// produces the same encoding iff perm maps them to the same canonical
// order.
func canonicalEncoding(g AdjacencyGraph, perm []int) string {
	n := g.NumVertices()
	labels := make([]int, n)
	for v := 0; v < n; v++ {
		labels[perm[v]] = g.VertexLabel(v)
	}

	type relabelled struct{ s, t, label int }
	var edges []relabelled
	for v := 0; v < n; v++ {
		for _, e := range g.OutEdges(v) {
			edges = append(edges, relabelled{s: perm[e.Source], t: perm[e.Target], label: e.Label})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].s != edges[j].s {
			return edges[i].s < edges[j].s
		}
		if edges[i].t != edges[j].t {
			return edges[i].t < edges[j].t
		}
		return edges[i].label < edges[j].label
	})

	out := "V:"
	for _, l := range labels {
		out += itoa(l) + ","
	}
	out += "|E:"
	for _, e := range edges {
		out += fmt.Sprintf("(%d,%d,%d)", e.s, e.t, e.label)
	}
	return out
}
