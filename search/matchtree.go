package search

import (
	"sort"

	"github.com/simon-stahlberg/mimir-sub009/flatter"
)

// GroundedAction is one fully grounded action instance: its split
// precondition (ground atoms required true / required false), its cost,
// and the add/delete ground atom indices its effect applies.
type GroundedAction struct {
	PreconditionPositive []int
	PreconditionNegative []int
	Cost                 float64
	EffectsAdd           []int
	EffectsDelete        []int
}

// MatchTree is the §4.K applicable-action generator: a discrimination
// tree over ground-atom truth values, built once per grounded task, that
// narrows the set of candidate actions to test as the state is walked
// down the tree instead of re-checking every action's full precondition
// against every state.
type MatchTree struct {
	actions []GroundedAction
	root    *matchNode
}

type matchNode struct {
	// Atom == -1 marks a leaf: candidates holds every action whose
	// precondition is now fully discriminated down this path.
	Atom       int
	WhenTrue   *matchNode
	WhenFalse  *matchNode
	Candidates []int
}

// BuildMatchTree compiles a match tree over actions, splitting at each
// level on the precondition atom mentioned (positively or negatively) by
// the largest number of not-yet-discriminated actions, per the usual
// match-tree construction heuristic (maximize the expected branching
// factor reduction per level).
func BuildMatchTree(actions []GroundedAction) *MatchTree {
	all := make([]int, len(actions))
	for i := range all {
		all[i] = i
	}
	return &MatchTree{actions: actions, root: buildNode(actions, all, make(map[int]bool))}
}

func buildNode(actions []GroundedAction, candidates []int, fixed map[int]bool) *matchNode {
	splitAtom := pickSplitAtom(actions, candidates, fixed)
	if splitAtom < 0 {
		return &matchNode{Atom: -1, Candidates: candidates}
	}

	var whenTrue, whenFalse []int
	for _, idx := range candidates {
		a := actions[idx]
		if contains(a.PreconditionNegative, splitAtom) {
			whenFalse = append(whenFalse, idx)
			continue
		}
		if contains(a.PreconditionPositive, splitAtom) {
			whenTrue = append(whenTrue, idx)
			continue
		}
		// splitAtom doesn't constrain this action; it survives down
		// both branches.
		whenTrue = append(whenTrue, idx)
		whenFalse = append(whenFalse, idx)
	}

	nextFixed := make(map[int]bool, len(fixed)+1)
	for k := range fixed {
		nextFixed[k] = true
	}
	nextFixed[splitAtom] = true

	return &matchNode{
		Atom:      splitAtom,
		WhenTrue:  buildNode(actions, whenTrue, nextFixed),
		WhenFalse: buildNode(actions, whenFalse, nextFixed),
	}
}

// pickSplitAtom returns the not-yet-fixed atom mentioned by the most
// candidates, or -1 once at most one candidate is left or every atom the
// candidates mention has already been split on.
func pickSplitAtom(actions []GroundedAction, candidates []int, fixed map[int]bool) int {
	if len(candidates) <= 1 {
		return -1
	}
	counts := make(map[int]int)
	for _, idx := range candidates {
		a := actions[idx]
		for _, atom := range a.PreconditionPositive {
			if !fixed[atom] {
				counts[atom]++
			}
		}
		for _, atom := range a.PreconditionNegative {
			if !fixed[atom] {
				counts[atom]++
			}
		}
	}
	best, bestCount := -1, 0
	atoms := make([]int, 0, len(counts))
	for atom := range counts {
		atoms = append(atoms, atom)
	}
	sort.Ints(atoms) // deterministic tie-break: lowest atom index wins
	for _, atom := range atoms {
		if counts[atom] > bestCount {
			best, bestCount = atom, counts[atom]
		}
	}
	return best
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Applicable walks the match tree once per call, collecting every
// candidate action at the reached leaf whose full precondition (not just
// the atoms split on) holds in trueAtoms, and materializes its successor
// state.
func (mt *MatchTree) Applicable(trueAtoms []int) []Action {
	trueSet := make(map[int]bool, len(trueAtoms))
	for _, a := range trueAtoms {
		trueSet[a] = true
	}

	var out []Action
	node := mt.root
	var walk func(n *matchNode)
	walk = func(n *matchNode) {
		if n.Atom == -1 {
			for _, idx := range n.Candidates {
				a := mt.actions[idx]
				if actionApplicable(a, trueSet) {
					out = append(out, Action{Cost: a.Cost, Successor: applyEffect(trueAtoms, a)})
				}
			}
			return
		}
		if trueSet[n.Atom] {
			walk(n.WhenTrue)
		} else {
			walk(n.WhenFalse)
		}
	}
	walk(node)
	return out
}

func actionApplicable(a GroundedAction, trueSet map[int]bool) bool {
	for _, atom := range a.PreconditionPositive {
		if !trueSet[atom] {
			return false
		}
	}
	for _, atom := range a.PreconditionNegative {
		if trueSet[atom] {
			return false
		}
	}
	return true
}

func applyEffect(trueAtoms []int, a GroundedAction) []int {
	del := make(map[int]bool, len(a.EffectsDelete))
	for _, atom := range a.EffectsDelete {
		del[atom] = true
	}
	add := make(map[int]bool, len(a.EffectsAdd))
	for _, atom := range a.EffectsAdd {
		add[atom] = true
	}

	out := make([]int, 0, len(trueAtoms)+len(a.EffectsAdd))
	for _, atom := range trueAtoms {
		if del[atom] {
			continue
		}
		if add[atom] {
			add[atom] = false
		}
		out = append(out, atom)
	}
	for _, atom := range a.EffectsAdd {
		if add[atom] {
			out = append(out, atom)
			add[atom] = false
		}
	}
	sort.Ints(out)
	return out
}

// --- wire format ------------------------------------------------------

// matchNodeTag's WhenTrue/WhenFalse fields are a node's own serialized
// bytes rather than a nested Tag, since a Tag literal can't describe a
// self-referential tuple directly; this keeps the wire format flat and
// self-similar (each node's children are just more bytes of the same
// shape) instead of needing a separate node table.
var matchNodeTag = flatter.Tuple(
	flatter.Int32Tag,                 // Atom; -1 marks a leaf
	flatter.Vector(flatter.Int32Tag), // Candidates, populated only at a leaf
	flatter.Vector(flatter.Uint8Tag), // WhenTrue subtree bytes
	flatter.Vector(flatter.Uint8Tag), // WhenFalse subtree bytes
)

// Serialize renders the match tree as a flat buffer: each node is a tuple
// of (atom, candidates, whenTrue bytes, whenFalse bytes), with the two
// child fields holding the nested node's own serialized bytes so the
// format is self-similar and needs no separate node table.
func (mt *MatchTree) Serialize() []byte {
	return serializeNode(mt.root)
}

func serializeNode(n *matchNode) []byte {
	b := flatter.NewTupleBuilder(matchNodeTag)
	b.SetField(0, flatter.NewInt32(int32(n.Atom)))

	candidates := flatter.NewVectorBuilder(flatter.Int32Tag)
	for _, c := range n.Candidates {
		candidates.Append(flatter.NewInt32(int32(c)))
	}
	b.SetField(1, candidates)

	whenTrueBytes := flatter.NewVectorBuilder(flatter.Uint8Tag)
	whenFalseBytes := flatter.NewVectorBuilder(flatter.Uint8Tag)
	if n.Atom != -1 {
		for _, by := range serializeNode(n.WhenTrue) {
			whenTrueBytes.Append(flatter.NewUint8(by))
		}
		for _, by := range serializeNode(n.WhenFalse) {
			whenFalseBytes.Append(flatter.NewUint8(by))
		}
	}
	b.SetField(2, whenTrueBytes)
	b.SetField(3, whenFalseBytes)

	return b.Finish()
}

// LoadMatchTree reconstructs a MatchTree from bytes written by Serialize.
// actions must be the same slice (by content) the tree was originally
// built over, since Candidates only stores indices into it.
func LoadMatchTree(data []byte, actions []GroundedAction) *MatchTree {
	return &MatchTree{actions: actions, root: deserializeNode(data)}
}

func deserializeNode(data []byte) *matchNode {
	v := flatter.NewView(matchNodeTag, data)
	atom := int(v.Field(0).Int32())

	candidatesView := v.Field(1)
	candidates := make([]int, candidatesView.Len())
	for i := range candidates {
		candidates[i] = int(candidatesView.Index(i).Int32())
	}

	if atom == -1 {
		return &matchNode{Atom: -1, Candidates: candidates}
	}

	whenTrueView := v.Field(2)
	whenTrueBytes := make([]byte, whenTrueView.Len())
	for i := range whenTrueBytes {
		whenTrueBytes[i] = whenTrueView.Index(i).Uint8()
	}
	whenFalseView := v.Field(3)
	whenFalseBytes := make([]byte, whenFalseView.Len())
	for i := range whenFalseBytes {
		whenFalseBytes[i] = whenFalseView.Index(i).Uint8()
	}

	return &matchNode{
		Atom:      atom,
		WhenTrue:  deserializeNode(whenTrueBytes),
		WhenFalse: deserializeNode(whenFalseBytes),
	}
}
