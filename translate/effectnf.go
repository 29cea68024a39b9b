package translate

import "github.com/simon-stahlberg/mimir-sub009/formalism"

// NormalizeEffect walks a lifted EffectExpr tree (§4.I.4) and classifies
// every leaf literal as either an unconditional EffectStrips or, if it sits
// under a When or inside a Forall, an EffectConditional carrying the
// quantified parameters and guard conditions accumulated on the way down.
//
// This mirrors the shape of FlattenConjunctionToLiterals: a plain recursive
// walk with no memoization, since an effect tree is not expected to share
// structure the way conditions (hash-consed through exists/forall) do.
func NormalizeEffect(repo *formalism.Repository, effectIdx int) (strips, conditional []int) {
	normalizeEffectInto(repo, effectIdx, nil, nil, &strips, &conditional)
	return strips, conditional
}

func normalizeEffectInto(repo *formalism.Repository, idx int, params, conditions []int, strips, conditional *[]int) {
	e := repo.EffectExprs.At(idx)
	switch e.Kind {
	case formalism.EffectLiteral:
		if len(params) == 0 && len(conditions) == 0 {
			*strips = append(*strips, repo.InternEffectStrips(e.Positive, e.AtomIdx))
			return
		}
		*conditional = append(*conditional, repo.InternEffectConditional(params, conditions, e.Positive, e.AtomIdx))

	case formalism.EffectAnd:
		for _, child := range repo.EffectExprChildren(e) {
			normalizeEffectInto(repo, child, params, conditions, strips, conditional)
		}

	case formalism.EffectForall:
		childParams := append(append([]int{}, params...), repo.EffectExprParams(e)...)
		normalizeEffectInto(repo, e.Body, childParams, conditions, strips, conditional)

	case formalism.EffectWhen:
		childConditions := append(append([]int{}, conditions...), FlattenConjunctionToLiterals(repo, e.Condition)...)
		normalizeEffectInto(repo, e.Effect, params, childConditions, strips, conditional)
	}
}
