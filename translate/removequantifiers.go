package translate

import (
	"fmt"

	"github.com/simon-stahlberg/mimir-sub009/formalism"
)

// RemoveUniversalQuantifiers replaces every ∀x.φ node in a precondition or
// goal with a reference to a fresh derived predicate, adding to the domain
// an axiom whose body encodes ¬∃x.¬φ in NNF — the rewrite in §4.I.3.
//
// The derived predicate closes over the enclosing action/axiom's full
// parameter list rather than only φ's free variables; this over-
// approximates the predicate's arity but changes nothing semantically
// (unused parameters don't affect when the axiom body is satisfied), and
// avoids needing a free-variable analysis pass. See DESIGN.md.
type RemoveUniversalQuantifiers struct {
	repo         *formalism.Repository
	freeParams   []int
	counter      *int
	cached       Cached
	NewAxioms    []int
	NewPredicates []int
}

// NewRemoveUniversalQuantifiers prepares a translator instance for one
// action/axiom body. counter is shared (and advanced) across every
// instance created for the same domain, so derived predicate names never
// collide.
func NewRemoveUniversalQuantifiers(repo *formalism.Repository, enclosingParams []int, counter *int) *RemoveUniversalQuantifiers {
	q := &RemoveUniversalQuantifiers{repo: repo, freeParams: enclosingParams, counter: counter}
	q.cached.Transform = q.transform
	return q
}

func (q *RemoveUniversalQuantifiers) Prepare(repo *formalism.Repository, idx int) { q.cached.Prepare(repo, idx) }

func (q *RemoveUniversalQuantifiers) Run(repo *formalism.Repository, idx int) int { return q.cached.Run(repo, idx) }

func (q *RemoveUniversalQuantifiers) transform(repo *formalism.Repository, idx int) int {
	c := repo.Conditions.At(idx)
	if c.Kind != formalism.CondForall {
		return idx
	}

	params := repo.ConditionParams(c)
	negated := repo.InternConditionNot(repo.InternConditionExists(params, repo.InternConditionNot(c.Body)))
	nnf := NewToNNF().Run(repo, negated)

	*q.counter++
	predName := fmt.Sprintf("forall$%d", *q.counter)
	predIdx := repo.InternPredicate(formalism.PredicateDerived, predName, len(q.freeParams))

	terms := make([]int, len(q.freeParams))
	for i, v := range q.freeParams {
		terms[i] = repo.InternVariableTerm(v)
	}
	atomIdx := repo.InternAtom(formalism.PredicateDerived, predIdx, terms)

	body := FlattenConjunctionToLiterals(repo, nnf)
	axiomIdx := repo.InternAxiom(q.freeParams, atomIdx, body)
	q.NewAxioms = append(q.NewAxioms, axiomIdx)
	q.NewPredicates = append(q.NewPredicates, predIdx)

	return repo.InternConditionLiteral(repo.InternLiteral(true, formalism.PredicateDerived, atomIdx))
}
