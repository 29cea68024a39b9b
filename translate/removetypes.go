package translate

import (
	"fmt"

	"github.com/simon-stahlberg/mimir-sub009/formalism"
)

// RemoveTypes implements §4.I.1: every PDDL type becomes a unary static
// predicate type_<name>(?x), and every object's type membership (including
// its supertypes) becomes a ground fact in the problem's initial state.
//
// There is no parser in this repository to derive an object's ancestor
// types from a `(:types ...)` hierarchy, so the type-to-object mapping is
// taken as an input rather than computed here: Ancestors maps an object
// index to the full list of type names it is declared to have (direct and
// inherited). Supplying only direct types degrades gracefully — the
// resulting encoding is simply untyped with respect to supertype
// reasoning, never incorrect.
type RemoveTypes struct {
	repo      *formalism.Repository
	Ancestors map[int][]string

	predicateOf map[string]int
}

func NewRemoveTypes(repo *formalism.Repository, ancestors map[int][]string) *RemoveTypes {
	return &RemoveTypes{repo: repo, Ancestors: ancestors, predicateOf: make(map[string]int)}
}

// typePredicate returns the static predicate index for a type name,
// interning a fresh type_<name> predicate the first time it is seen.
func (rt *RemoveTypes) typePredicate(name string) int {
	if idx, ok := rt.predicateOf[name]; ok {
		return idx
	}
	idx := rt.repo.InternPredicate(formalism.PredicateStatic, fmt.Sprintf("type_%s", name), 1)
	rt.predicateOf[name] = idx
	return idx
}

// Run rewrites domain and problem, returning the new domain/problem
// indices plus the static predicate indices it introduced; those are
// already included in the new domain's static predicate list.
func (rt *RemoveTypes) Run(domain formalism.Domain, domainIdx int, problem formalism.Problem) (newDomainIdx, newProblemIdx int, newPredicates []int) {
	objects := rt.repo.ProblemObjects(problem)
	var initialLiterals []int
	initialLiterals = append(initialLiterals, rt.repo.ProblemInitialLiterals(problem)...)

	for _, objIdx := range objects {
		for _, typeName := range rt.Ancestors[objIdx] {
			predIdx := rt.typePredicate(typeName)
			atomIdx := rt.repo.InternGroundAtom(formalism.PredicateStatic, predIdx, []int{objIdx})
			litIdx := rt.repo.InternGroundLiteral(true, formalism.PredicateStatic, atomIdx)
			initialLiterals = append(initialLiterals, litIdx)
		}
	}

	for _, constIdx := range rt.repo.DomainConstants(domain) {
		for _, typeName := range rt.Ancestors[constIdx] {
			rt.typePredicate(typeName)
		}
	}

	newPredicates = make([]int, 0, len(rt.predicateOf))
	for _, idx := range rt.predicateOf {
		newPredicates = append(newPredicates, idx)
	}

	newDomainIdx = rt.repo.InternDomain(formalism.DomainSpec{
		Name:                 domain.Name,
		RequirementsIdx:      domain.RequirementsIdx,
		TypeIdxs:             nil,
		StaticPredicateIdxs:  append(append([]int{}, rt.repo.DomainStaticPredicates(domain)...), newPredicates...),
		FluentPredicateIdxs:  rt.repo.DomainFluentPredicates(domain),
		DerivedPredicateIdxs: rt.repo.DomainDerivedPredicates(domain),
		FunctionSkeletonIdxs: rt.repo.DomainFunctionSkeletons(domain),
		ConstantIdxs:         rt.repo.DomainConstants(domain),
		ActionIdxs:           rt.repo.DomainActions(domain),
		AxiomIdxs:            rt.repo.DomainAxioms(domain),
	})

	newProblemIdx = rt.repo.InternProblem(formalism.ProblemSpec{
		Name:               problem.Name,
		DomainIdx:          newDomainIdx,
		ObjectIdxs:         objects,
		InitialLiteralIdxs: initialLiterals,
		InitialValueIdxs:   rt.repo.ProblemInitialValues(problem),
		GoalIdxs:           rt.repo.ProblemGoal(problem),
		MetricIdx:          problem.MetricIdx,
	})

	return newDomainIdx, newProblemIdx, newPredicates
}
