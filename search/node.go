package search

// Status is a search node's place in the A*/BrFS lifecycle (§4.K).
type Status uint8

const (
	New Status = iota
	Open
	Closed
	DeadEnd
)

// Node is the per-state bookkeeping A*/BrFS maintain: best known cost,
// heuristic estimate, and the parent pointer/action needed to reconstruct
// a plan once the goal is popped.
type Node struct {
	Status         Status
	G              float64
	H              float64
	HasH           bool // false until heuristic(state) has been computed at least once
	ParentState    int  // -1 if this is the start state
	CreatingAction int  // -1 if this is the start state
}

func newNode() Node {
	return Node{Status: New, ParentState: -1, CreatingAction: -1}
}

// F returns g+h; callers must only call this once HasH is true.
func (n Node) F() float64 { return n.G + n.H }
