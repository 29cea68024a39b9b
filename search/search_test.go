package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/search"
)

func TestOpenListPopsInPriorityOrder(t *testing.T) {
	ol := search.NewOpenList()
	ol.Push(3, 30)
	ol.Push(1, 10)
	ol.Push(2, 20)

	require.Equal(t, 10, ol.Pop())
	require.Equal(t, 20, ol.Pop())
	require.Equal(t, 30, ol.Pop())
	require.Equal(t, 0, ol.Len())
}

func TestStateRepositoryInternsIdenticalStatesToSameIndex(t *testing.T) {
	sr := search.NewStateRepository()
	i1 := sr.Intern([]int{3, 1, 7})
	i2 := sr.Intern([]int{1, 3, 7})
	require.Equal(t, i1, i2)
	require.ElementsMatch(t, []int{1, 3, 7}, sr.TrueAtoms(i1))
}

// chainGoal is reached once its target atom is true; StaticallyReachable
// always reports true.
type chainGoal struct{ target int }

func (g chainGoal) StaticallyReachable() bool { return true }
func (g chainGoal) IsGoal(trueAtoms []int) bool {
	for _, a := range trueAtoms {
		if a == g.target {
			return true
		}
	}
	return false
}

type zeroHeuristic struct{}

func (zeroHeuristic) Estimate([]int) float64 { return 0 }

// chainActions represents a three-state chain 0 -> 1 -> 2, each action
// costing 1, atom i meaning "at state i".
type chainActions struct{}

func (chainActions) Applicable(trueAtoms []int) []search.Action {
	at := -1
	for _, a := range trueAtoms {
		if a >= 0 {
			at = a
		}
	}
	if at >= 2 {
		return nil
	}
	return []search.Action{{Cost: 1, Successor: []int{at + 1}}}
}

func TestFindSolutionSolvesChain(t *testing.T) {
	sr := search.NewStateRepository()
	metrics := search.NewMetrics(100)
	result := search.FindSolution(
		sr,
		[]int{0},
		chainActions{},
		zeroHeuristic{},
		chainGoal{target: 2},
		search.DefaultPruning{},
		search.NoOpEventHandler{},
		metrics,
		nil,
	)
	require.Equal(t, search.Solved, result.Status)
	require.Len(t, result.PlanActions, 2)
	require.InDelta(t, 1.0, metrics.MeanBranchingFactor(), 1e-9)
}

type unreachableGoal struct{}

func (unreachableGoal) StaticallyReachable() bool    { return false }
func (unreachableGoal) IsGoal(trueAtoms []int) bool { return false }

func TestFindSolutionReportsStaticallyUnsolvable(t *testing.T) {
	sr := search.NewStateRepository()
	result := search.FindSolution(
		sr, []int{0}, chainActions{}, zeroHeuristic{}, unreachableGoal{}, search.DefaultPruning{}, search.NoOpEventHandler{}, nil, nil,
	)
	require.Equal(t, search.StaticallyUnsolvable, result.Status)
}

func TestFindSolutionRespectsMaxExpansions(t *testing.T) {
	sr := search.NewStateRepository()
	opts := search.NewOptions()
	opts.MaxExpansions = 1
	result := search.FindSolution(
		sr, []int{0}, chainActions{}, zeroHeuristic{}, chainGoal{target: 2}, search.DefaultPruning{}, search.NoOpEventHandler{}, nil, &opts,
	)
	require.Equal(t, search.OutOfBudget, result.Status)
	require.Equal(t, 1, result.Expansions)
}

func TestNewOptionsGeneratesDistinctSessionIDs(t *testing.T) {
	a := search.NewOptions()
	b := search.NewOptions()
	require.NotEqual(t, a.SessionID, b.SessionID)
}

func TestMatchTreeFindsApplicableActions(t *testing.T) {
	actions := []search.GroundedAction{
		{PreconditionPositive: []int{1}, Cost: 1, EffectsAdd: []int{2}},
		{PreconditionPositive: []int{5}, Cost: 1, EffectsAdd: []int{6}},
	}
	tree := search.BuildMatchTree(actions)

	applicable := tree.Applicable([]int{1})
	require.Len(t, applicable, 1)
	require.Equal(t, []int{1, 2}, applicable[0].Successor)
}

func TestMatchTreeSerializeRoundTrip(t *testing.T) {
	actions := []search.GroundedAction{
		{PreconditionPositive: []int{1}, Cost: 1, EffectsAdd: []int{2}},
		{PreconditionNegative: []int{1}, Cost: 1, EffectsAdd: []int{3}},
	}
	tree := search.BuildMatchTree(actions)
	data := tree.Serialize()

	loaded := search.LoadMatchTree(data, actions)
	require.Equal(t, tree.Applicable([]int{1}), loaded.Applicable([]int{1}))
	require.Equal(t, tree.Applicable(nil), loaded.Applicable(nil))
}
