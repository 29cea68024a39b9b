package search

// ResultStatus reports how FindSolution concluded.
type ResultStatus uint8

const (
	Solved ResultStatus = iota
	Unsolvable
	StaticallyUnsolvable
	Exhausted
	Cancelled
	OutOfBudget
)

// Result is the outcome of a FindSolution call: on Solved, PlanActions
// holds the creating-action index of each step from start to goal, in
// order.
type Result struct {
	Status      ResultStatus
	PlanStates  []int // state indices from start to goal, inclusive
	PlanActions []int // CreatingAction of each non-start state on PlanStates
	Expansions  int
}

// FindSolution implements the A* loop (BrFS is the special case of a
// Heuristic that always estimates zero and a priority of g alone — callers
// get that by passing a zero Heuristic, since f = g+0 = g). metrics may be
// nil; when non-nil, it is updated with one branching-factor and f-value
// sample per expansion. opts may be nil for an unbounded search;
// FindSolution reads only opts.MaxExpansions.
func FindSolution(
	repo *StateRepository,
	startAtoms []int,
	actions ApplicableActionGenerator,
	heuristic Heuristic,
	goal GoalStrategy,
	pruning PruningStrategy,
	events EventHandler,
	metrics *Metrics,
	opts *Options,
) Result {
	if !goal.StaticallyReachable() {
		return Result{Status: StaticallyUnsolvable}
	}

	maxExpansions := 0
	if opts != nil {
		maxExpansions = opts.MaxExpansions
	}

	startIdx := repo.Intern(startAtoms)
	if pruning.PruneInitial(startIdx) {
		return Result{Status: Unsolvable}
	}

	h0 := heuristic.Estimate(startAtoms)
	repo.SetNode(startIdx, Node{Status: Open, G: 0, H: h0, HasH: true, ParentState: -1, CreatingAction: -1})

	open := NewOpenList()
	open.Push(h0, startIdx)

	expansions := 0
	for open.Len() > 0 {
		if maxExpansions > 0 && expansions >= maxExpansions {
			return Result{Status: OutOfBudget, Expansions: expansions}
		}
		if events.OnExpansion(expansions) == Stop {
			return Result{Status: Cancelled, Expansions: expansions}
		}

		stateIdx := open.Pop()
		node := repo.Node(stateIdx)
		if node.Status == Closed {
			continue
		}
		node.Status = Closed
		repo.SetNode(stateIdx, node)
		expansions++

		trueAtoms := repo.TrueAtoms(stateIdx)
		if goal.IsGoal(trueAtoms) {
			return reconstructPlan(repo, stateIdx, expansions)
		}

		successors := actions.Applicable(trueAtoms)
		metrics.recordExpansion(len(successors), node.G+node.H)

		for actionIdx, action := range successors {
			successorIdx := repo.Intern(action.Successor)
			if pruning.PruneSuccessor(stateIdx, successorIdx) {
				continue
			}

			successor := repo.Node(successorIdx)
			tentativeG := node.G + action.Cost
			if successor.Status != New && tentativeG >= successor.G {
				continue
			}

			successor.ParentState = stateIdx
			successor.CreatingAction = actionIdx
			successor.G = tentativeG
			if !successor.HasH {
				successor.H = heuristic.Estimate(action.Successor)
				successor.HasH = true
			}
			if successor.Status != Closed {
				successor.Status = Open
			}
			repo.SetNode(successorIdx, successor)
			open.Push(successor.G+successor.H, successorIdx)
		}
	}

	return Result{Status: Exhausted, Expansions: expansions}
}

func reconstructPlan(repo *StateRepository, goalIdx int, expansions int) Result {
	var states []int
	var actions []int
	for idx := goalIdx; idx != -1; {
		states = append(states, idx)
		node := repo.Node(idx)
		if node.ParentState == -1 {
			break
		}
		actions = append(actions, node.CreatingAction)
		idx = node.ParentState
	}
	reverseInts(states)
	reverseInts(actions)
	return Result{Status: Solved, PlanStates: states, PlanActions: actions, Expansions: expansions}
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
