// Package translate implements the §4.H translator framework and the six
// concrete §4.I translators that rewrite a parsed domain/problem into
// successive normal forms on the way to a Problem the search kernel (package
// search) can consume directly.
package translate

import "github.com/simon-stahlberg/mimir-sub009/formalism"

// ConditionTransform rewrites one Condition index into another, within repo.
// A Translator supplies one of these per entity kind it cares about; every
// other kind is routed through the base class's generic recursion, per
// §4.H's "derived translator overrides transform_impl for the kinds it
// cares about."
type ConditionTransform func(repo *formalism.Repository, conditionIdx int) int

// Translator is the common shape every concrete translator in this package
// satisfies: Run prepares (a no-op unless the translator needs to collect
// information via a first pass) then transforms the given condition,
// returning the rewritten Condition index.
type Translator interface {
	Prepare(repo *formalism.Repository, conditionIdx int)
	Run(repo *formalism.Repository, conditionIdx int) int
}

// Recursive is the "Recursive translator" base variant of §4.H: it
// transforms every node every time it is visited, with no memoization.
// Concrete translators embed Recursive and set Transform to their own
// per-kind rewrite rule; the zero value of an unset case is the identity.
type Recursive struct {
	// Transform rewrites one Condition node, after its children have
	// already been rewritten (post-order) — the base recursion in Recurse
	// handles descending into children; Transform only ever sees a node
	// whose immediate children are already the targets of their own
	// rewritten indices.
	Transform ConditionTransform
}

func (t *Recursive) Prepare(*formalism.Repository, int) {}

func (t *Recursive) Run(repo *formalism.Repository, conditionIdx int) int {
	return t.recurse(repo, conditionIdx)
}

func (t *Recursive) recurse(repo *formalism.Repository, idx int) int {
	c := repo.Conditions.At(idx)
	var rebuilt int
	switch c.Kind {
	case formalism.CondLiteral:
		rebuilt = idx
	case formalism.CondAnd:
		rebuilt = repo.InternConditionAnd(t.recurseAll(repo, repo.ConditionChildren(c)))
	case formalism.CondOr:
		rebuilt = repo.InternConditionOr(t.recurseAll(repo, repo.ConditionChildren(c)))
	case formalism.CondNot:
		rebuilt = repo.InternConditionNot(t.recurse(repo, c.Operand))
	case formalism.CondExists:
		rebuilt = repo.InternConditionExists(repo.ConditionParams(c), t.recurse(repo, c.Body))
	case formalism.CondForall:
		rebuilt = repo.InternConditionForall(repo.ConditionParams(c), t.recurse(repo, c.Body))
	}
	if t.Transform != nil {
		rebuilt = t.Transform(repo, rebuilt)
	}
	return rebuilt
}

func (t *Recursive) recurseAll(repo *formalism.Repository, idxs []int) []int {
	out := make([]int, len(idxs))
	for i, idx := range idxs {
		out[i] = t.recurse(repo, idx)
	}
	return out
}

// Cached is the "Cached recursive translator" base variant of §4.H: it
// memoizes source -> target per entity, so a sub-term shared by several
// parents is rebuilt exactly once. This is what makes a translator
// idempotent-after-NNF cheap to run repeatedly: re-running it over
// already-normalized input hits the cache on every node and returns the
// same indices unchanged.
type Cached struct {
	Transform ConditionTransform
	memo      map[int]int
}

func (t *Cached) Prepare(*formalism.Repository, int) {
	if t.memo == nil {
		t.memo = make(map[int]int)
	}
}

func (t *Cached) Run(repo *formalism.Repository, conditionIdx int) int {
	if t.memo == nil {
		t.memo = make(map[int]int)
	}
	return t.recurse(repo, conditionIdx)
}

func (t *Cached) recurse(repo *formalism.Repository, idx int) int {
	if out, ok := t.memo[idx]; ok {
		return out
	}
	c := repo.Conditions.At(idx)
	var rebuilt int
	switch c.Kind {
	case formalism.CondLiteral:
		rebuilt = idx
	case formalism.CondAnd:
		rebuilt = repo.InternConditionAnd(t.recurseAll(repo, repo.ConditionChildren(c)))
	case formalism.CondOr:
		rebuilt = repo.InternConditionOr(t.recurseAll(repo, repo.ConditionChildren(c)))
	case formalism.CondNot:
		rebuilt = repo.InternConditionNot(t.recurse(repo, c.Operand))
	case formalism.CondExists:
		rebuilt = repo.InternConditionExists(repo.ConditionParams(c), t.recurse(repo, c.Body))
	case formalism.CondForall:
		rebuilt = repo.InternConditionForall(repo.ConditionParams(c), t.recurse(repo, c.Body))
	}
	if t.Transform != nil {
		rebuilt = t.Transform(repo, rebuilt)
	}
	t.memo[idx] = rebuilt
	return rebuilt
}

func (t *Cached) recurseAll(repo *formalism.Repository, idxs []int) []int {
	out := make([]int, len(idxs))
	for i, idx := range idxs {
		out[i] = t.recurse(repo, idx)
	}
	return out
}
