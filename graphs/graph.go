// Package graphs implements the §4.J graph core: static and dynamic
// directed graphs with typed vertex/edge properties, plus the canonical
// labelling machinery (color refinement, k-FWL, and the nauty bridge
// substitute) built on top of them.
package graphs

// Edge is a directed edge (Source, Target), optionally carrying a property
// index into a caller-owned side table (mirroring how formalism keeps
// variable-length payloads out of hash-consed structs: a graph here only
// ever stores integers).
type Edge struct {
	Source, Target int
	Label          int // caller-defined edge property tag, -1 if none
}

// StaticGraph is an immutable graph built once via NewStaticGraph and
// indexed by source vertex for O(deg) forward adjacency walks, per §4.J.
type StaticGraph struct {
	numVertices  int
	vertexLabels []int // caller-defined vertex property tag per vertex, -1 if none
	edges        []Edge
	outStart     []int // CSR-style offsets into edges, len == numVertices+1
}

// NewStaticGraph builds a forward-indexed static graph from an explicit
// vertex count and edge list. vertexLabels may be nil (all vertices
// untagged); edges need not be sorted by source.
func NewStaticGraph(numVertices int, vertexLabels []int, edges []Edge) *StaticGraph {
	g := &StaticGraph{numVertices: numVertices, edges: make([]Edge, len(edges))}
	if vertexLabels != nil {
		g.vertexLabels = append([]int{}, vertexLabels...)
	} else {
		g.vertexLabels = make([]int, numVertices)
		for i := range g.vertexLabels {
			g.vertexLabels[i] = -1
		}
	}

	degree := make([]int, numVertices+1)
	for _, e := range edges {
		degree[e.Source]++
	}
	g.outStart = make([]int, numVertices+1)
	for v := 0; v < numVertices; v++ {
		g.outStart[v+1] = g.outStart[v] + degree[v]
	}

	cursor := append([]int{}, g.outStart...)
	for _, e := range edges {
		g.edges[cursor[e.Source]] = e
		cursor[e.Source]++
	}
	return g
}

func (g *StaticGraph) NumVertices() int { return g.numVertices }
func (g *StaticGraph) VertexLabel(v int) int { return g.vertexLabels[v] }

// OutEdges returns the edges with the given source, in insertion order.
func (g *StaticGraph) OutEdges(v int) []Edge {
	return g.edges[g.outStart[v]:g.outStart[v+1]]
}

// BidirectionalGraph additionally indexes by target, for algorithms (color
// refinement on an undirected closure, reverse reachability) that need
// O(deg) access to incoming edges too.
type BidirectionalGraph struct {
	*StaticGraph
	inStart int
	inEdges []Edge
	inIndex []int
}

func NewBidirectionalGraph(numVertices int, vertexLabels []int, edges []Edge) *BidirectionalGraph {
	fwd := NewStaticGraph(numVertices, vertexLabels, edges)
	g := &BidirectionalGraph{StaticGraph: fwd}

	degree := make([]int, numVertices+1)
	for _, e := range edges {
		degree[e.Target]++
	}
	starts := make([]int, numVertices+1)
	for v := 0; v < numVertices; v++ {
		starts[v+1] = starts[v] + degree[v]
	}
	g.inIndex = starts
	g.inEdges = make([]Edge, len(edges))
	cursor := append([]int{}, starts...)
	for _, e := range edges {
		g.inEdges[cursor[e.Target]] = e
		cursor[e.Target]++
	}
	return g
}

func (g *BidirectionalGraph) InEdges(v int) []Edge {
	return g.inEdges[g.inIndex[v]:g.inIndex[v+1]]
}

// DynamicGraph allows edge removal after construction, maintaining its
// adjacency index incrementally rather than rebuilding a CSR layout, per
// §4.J ("dynamic graphs allow removal and maintain the adjacency index
// incrementally").
type DynamicGraph struct {
	numVertices  int
	vertexLabels []int
	out          [][]Edge // adjacency lists, index by source
	in           [][]Edge // adjacency lists, index by target
}

func NewDynamicGraph(numVertices int) *DynamicGraph {
	g := &DynamicGraph{
		numVertices:  numVertices,
		vertexLabels: make([]int, numVertices),
		out:          make([][]Edge, numVertices),
		in:           make([][]Edge, numVertices),
	}
	for i := range g.vertexLabels {
		g.vertexLabels[i] = -1
	}
	return g
}

func (g *DynamicGraph) NumVertices() int     { return g.numVertices }
func (g *DynamicGraph) VertexLabel(v int) int { return g.vertexLabels[v] }
func (g *DynamicGraph) SetVertexLabel(v, label int) { g.vertexLabels[v] = label }

func (g *DynamicGraph) AddEdge(e Edge) {
	g.out[e.Source] = append(g.out[e.Source], e)
	g.in[e.Target] = append(g.in[e.Target], e)
}

// RemoveEdge removes the first edge matching (source, target, label) found
// in source's adjacency list, and its mirror in target's.
func (g *DynamicGraph) RemoveEdge(e Edge) bool {
	out := g.out[e.Source]
	idx := -1
	for i, cand := range out {
		if cand == e {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	g.out[e.Source] = append(out[:idx], out[idx+1:]...)

	in := g.in[e.Target]
	for i, cand := range in {
		if cand == e {
			g.in[e.Target] = append(in[:i], in[i+1:]...)
			break
		}
	}
	return true
}

func (g *DynamicGraph) OutEdges(v int) []Edge { return g.out[v] }
func (g *DynamicGraph) InEdges(v int) []Edge  { return g.in[v] }

// ToStatic freezes the current edge set into an immutable StaticGraph,
// e.g. once a dynamic construction phase (grounding, reachability pruning)
// has settled and the graph moves into the read-heavy search phase.
func (g *DynamicGraph) ToStatic() *StaticGraph {
	var edges []Edge
	for v := 0; v < g.numVertices; v++ {
		edges = append(edges, g.out[v]...)
	}
	return NewStaticGraph(g.numVertices, g.vertexLabels, edges)
}
