package graphs

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// parallelSignatureThreshold is the vertex count at or above which ColorRefine
// computes each round's per-vertex signature across an errgroup instead of
// a single goroutine; below it the fan-out overhead isn't worth paying.
const parallelSignatureThreshold = 512

// AdjacencyGraph is the minimal read interface color refinement and k-FWL
// need, satisfied by StaticGraph, BidirectionalGraph and DynamicGraph
// alike.
type AdjacencyGraph interface {
	NumVertices() int
	VertexLabel(v int) int
	OutEdges(v int) []Edge
}

// Certificate is the output of a canonical-labelling pass: the stable
// partition's color histogram (vertex count per final color, in ascending
// color order) plus the per-vertex color assignment it was derived from.
// Two graphs with equal certificates (same histogram) are 1-WL
// equivalent; the converse does not hold in general (1-WL cannot
// distinguish every pair of non-isomorphic graphs).
type Certificate struct {
	Colors    []int
	Histogram []int // count of vertices at each color, indexed by color
}

// ColorRefine runs 1-WL (§4.J) to a fixed point, starting from the vertex
// labels (g.VertexLabel) and refining each round by the sorted colors of a
// vertex's out-neighbours.
func ColorRefine(g AdjacencyGraph) Certificate {
	n := g.NumVertices()
	colors := make([]int, n)
	for v := 0; v < n; v++ {
		colors[v] = g.VertexLabel(v)
	}
	colors = compressColors(colors)

	for {
		next := make([]signature, n)
		computeSignature := func(v int) {
			neighborColors := make([]int, 0, len(g.OutEdges(v)))
			for _, e := range g.OutEdges(v) {
				neighborColors = append(neighborColors, colors[e.Target])
			}
			sort.Ints(neighborColors)
			next[v] = signature{self: colors[v], neighbors: intsToKey(neighborColors)}
		}
		if n >= parallelSignatureThreshold {
			// Each goroutine only ever writes next[v] for its own v and only
			// reads the round's frozen colors slice, so this is safe under
			// the single-writer-per-index discipline without extra locking.
			var group errgroup.Group
			for v := 0; v < n; v++ {
				v := v
				group.Go(func() error {
					computeSignature(v)
					return nil
				})
			}
			_ = group.Wait()
		} else {
			for v := 0; v < n; v++ {
				computeSignature(v)
			}
		}
		newColors, numClasses := compressSignatures(next)
		if numClasses == numDistinct(colors) && samePartition(colors, newColors) {
			return Certificate{Colors: colors, Histogram: histogram(colors)}
		}
		colors = newColors
	}
}

type signature struct {
	self      int
	neighbors string
}

// compressColors maps an arbitrary []int labelling to a canonical
// 0..k-1 range, assigning compressed colors in ascending order of the
// original label so the mapping depends only on relative order, not on
// the caller's label values.
func compressColors(raw []int) []int {
	sorted := append([]int{}, raw...)
	sort.Ints(sorted)
	rank := make(map[int]int)
	next := 0
	for _, v := range sorted {
		if _, ok := rank[v]; !ok {
			rank[v] = next
			next++
		}
	}
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = rank[v]
	}
	return out
}

// compressSignatures maps each vertex's (self-color, sorted-neighbor-
// colors) signature onto a fresh compressed color, with ties broken by
// lexicographic signature order so the mapping from histogram signature
// to color is canonical (§4.J: "output the canonical mapping from
// histogram signature to compressed color").
func compressSignatures(sigs []signature) ([]int, int) {
	type keyed struct {
		key string
		idx int
	}
	keys := make([]keyed, len(sigs))
	for i, s := range sigs {
		keys[i] = keyed{key: sigKey(s), idx: i}
	}
	uniq := append([]keyed{}, keys...)
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].key < uniq[j].key })

	rank := make(map[string]int)
	next := 0
	for _, k := range uniq {
		if _, ok := rank[k.key]; !ok {
			rank[k.key] = next
			next++
		}
	}
	out := make([]int, len(sigs))
	for i, k := range keys {
		out[i] = rank[k.key]
	}
	return out, next
}

func sigKey(s signature) string {
	return itoa(s.self) + "|" + s.neighbors
}

func intsToKey(xs []int) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += ","
		}
		out += itoa(x)
	}
	return out
}

func itoa(x int) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var buf [20]byte
	i := len(buf)
	for x > 0 {
		i--
		buf[i] = byte('0' + x%10)
		x /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func numDistinct(colors []int) int {
	seen := make(map[int]bool)
	for _, c := range colors {
		seen[c] = true
	}
	return len(seen)
}

// samePartition reports whether old and new induce the same equivalence
// classes over vertex indices (refinement has stabilized), independent of
// the two colorings' actual numeric values.
func samePartition(old, new []int) bool {
	if len(old) != len(new) {
		return false
	}
	oldToNew := make(map[int]int)
	newToOld := make(map[int]int)
	for i := range old {
		if m, ok := oldToNew[old[i]]; ok {
			if m != new[i] {
				return false
			}
		} else {
			oldToNew[old[i]] = new[i]
		}
		if m, ok := newToOld[new[i]]; ok {
			if m != old[i] {
				return false
			}
		} else {
			newToOld[new[i]] = old[i]
		}
	}
	return true
}

func histogram(colors []int) []int {
	maxColor := -1
	for _, c := range colors {
		if c > maxColor {
			maxColor = c
		}
	}
	hist := make([]int, maxColor+1)
	for _, c := range colors {
		hist[c]++
	}
	return hist
}
