package search

import "github.com/simon-stahlberg/mimir-sub009/valla"

// StateRepository maps a ground state — the sorted set of ground atom
// indices currently true — onto a dense, content-hashed state index via
// valla.Tree, the canonical set encoder. Two states with the same true
// atoms always collapse onto the same state index, which is what lets
// the pruning strategy's default "prune duplicate states" policy (§4.K)
// be a single Tree.Insert call.
type StateRepository struct {
	facts *valla.Tree
	nodes []Node
}

func NewStateRepository() *StateRepository {
	return &StateRepository{facts: valla.NewTree()}
}

// Intern registers a state (given as its sorted true-ground-atom-index
// set) and returns its dense state index, allocating a fresh Node the
// first time the state is seen.
func (sr *StateRepository) Intern(trueAtoms []int) int {
	idx, _ := sr.facts.Insert(trueAtoms)
	for len(sr.nodes) <= idx {
		sr.nodes = append(sr.nodes, newNode())
	}
	return idx
}

// TrueAtoms reads back the ground atom indices a previously interned
// state index stands for.
func (sr *StateRepository) TrueAtoms(stateIdx int) []int {
	return sr.facts.Read(sr.facts.RootAt(stateIdx))
}

func (sr *StateRepository) Node(stateIdx int) Node     { return sr.nodes[stateIdx] }
func (sr *StateRepository) SetNode(stateIdx int, n Node) { sr.nodes[stateIdx] = n }

func (sr *StateRepository) NumStates() int { return sr.facts.NumRoots() }
