package translate

import "github.com/simon-stahlberg/mimir-sub009/formalism"

// nnfKey memoizes a (condition, currently-negated?) pair, since the same
// sub-condition can be visited once under positive polarity and once under
// negated polarity by different callers (e.g. two sibling Not nodes
// wrapping a shared child).
type nnfKey struct {
	idx    int
	negate bool
}

// ToNNF pushes negation down to the literals of a condition, applying the
// rewrite rules of §4.I.2 to a fixed point in a single top-down pass:
//
//	¬(A∧B) ≡ ¬A∨¬B      ¬(A∨B) ≡ ¬A∧¬B      ¬¬A ≡ A
//	¬∃x.A  ≡ ∀x.¬A       ¬∀x.A  ≡ ∃x.¬A
//
// Implication is not a node the Condition variant models (PDDL conditions
// are built from and/or/not/exists/forall/literal only; any A→B the parser
// produces is expected to already be desugared to ¬A∨B before reaching
// this translator), so that rule has no work to do here.
//
// ToNNF is idempotent after one run: re-running it over an already-NNF
// condition never encounters a Not wrapping anything but a literal, and the
// base cases for And/Or/Exists/Forall under negate=false simply rebuild the
// same node from already-converged children, which the memo table turns
// into an index-for-index no-op.
type ToNNF struct {
	memo map[nnfKey]int
}

func NewToNNF() *ToNNF {
	return &ToNNF{memo: make(map[nnfKey]int)}
}

func (t *ToNNF) Prepare(*formalism.Repository, int) {}

func (t *ToNNF) Run(repo *formalism.Repository, conditionIdx int) int {
	if t.memo == nil {
		t.memo = make(map[nnfKey]int)
	}
	return t.convert(repo, conditionIdx, false)
}

func (t *ToNNF) convert(repo *formalism.Repository, idx int, negate bool) int {
	key := nnfKey{idx, negate}
	if out, ok := t.memo[key]; ok {
		return out
	}

	c := repo.Conditions.At(idx)
	var out int
	switch c.Kind {
	case formalism.CondLiteral:
		lit := repo.Literals.At(c.LiteralIdx)
		pos := lit.Positive
		if negate {
			pos = !pos
		}
		newLit := repo.InternLiteral(pos, lit.AtomKind, lit.AtomIdx)
		out = repo.InternConditionLiteral(newLit)

	case formalism.CondAnd:
		children := t.convertAll(repo, repo.ConditionChildren(c), negate)
		if negate {
			out = repo.InternConditionOr(children)
		} else {
			out = repo.InternConditionAnd(children)
		}

	case formalism.CondOr:
		children := t.convertAll(repo, repo.ConditionChildren(c), negate)
		if negate {
			out = repo.InternConditionAnd(children)
		} else {
			out = repo.InternConditionOr(children)
		}

	case formalism.CondNot:
		out = t.convert(repo, c.Operand, !negate)

	case formalism.CondExists:
		params := repo.ConditionParams(c)
		body := t.convert(repo, c.Body, negate)
		if negate {
			out = repo.InternConditionForall(params, body)
		} else {
			out = repo.InternConditionExists(params, body)
		}

	case formalism.CondForall:
		params := repo.ConditionParams(c)
		body := t.convert(repo, c.Body, negate)
		if negate {
			out = repo.InternConditionExists(params, body)
		} else {
			out = repo.InternConditionForall(params, body)
		}
	}

	t.memo[key] = out
	return out
}

func (t *ToNNF) convertAll(repo *formalism.Repository, idxs []int, negate bool) []int {
	out := make([]int, len(idxs))
	for i, idx := range idxs {
		out[i] = t.convert(repo, idx, negate)
	}
	return out
}

// FlattenConjunctionToLiterals reads off the Literal indices of a condition
// made only of CondLiteral and CondAnd nodes — the shape Action/Axiom
// bodies are stored in. Any other node kind panics; to-NNF plus
// remove-universal-quantifiers leave CondOr and CondExists in place, so a
// condition holding a disjunction or existential panics even after both.
func FlattenConjunctionToLiterals(repo *formalism.Repository, idx int) []int {
	c := repo.Conditions.At(idx)
	switch c.Kind {
	case formalism.CondLiteral:
		return []int{c.LiteralIdx}
	case formalism.CondAnd:
		var out []int
		for _, ch := range repo.ConditionChildren(c) {
			out = append(out, FlattenConjunctionToLiterals(repo, ch)...)
		}
		return out
	default:
		panic("translate: condition is not in flat conjunctive form (run ToNNF and RemoveUniversalQuantifiers first)")
	}
}
