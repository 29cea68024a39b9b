// Package mimir ties the symbolic front-end, the translator pipeline and
// the search kernel contracts together for a domain/problem already built
// into a formalism.Repository: CompileCondition runs a condition through
// to-NNF and remove-universal-quantifiers and flattens it into a Literal
// list, CompileEffect runs an effect through effect-normal-form (and,
// optionally, delete-relaxation), and Dualize applies positive-normal-form
// to a compiled condition/effect pair. Remove-types is not run here; see
// translate.RemoveTypes.
package mimir

import (
	"github.com/simon-stahlberg/mimir-sub009/formalism"
	"github.com/simon-stahlberg/mimir-sub009/translate"
)

// CompiledCondition is a Condition tree reduced to the flat,
// quantifier-free Literal-index list Action.Precondition and
// Axiom.Body expect, plus any derived predicates/axioms
// RemoveUniversalQuantifiers had to introduce along the way.
type CompiledCondition struct {
	Literals      []int
	NewAxioms     []int
	NewPredicates []int
}

// CompileCondition runs the to-NNF / remove-universal-quantifiers stage of
// the translator pipeline over a single raw condition tree (an action
// precondition or an axiom body), closing any introduced derived
// predicate over enclosingParams. counter must be the same *int across
// every CompileCondition call for one domain, so derived predicate names
// never collide (see translate.RemoveUniversalQuantifiers).
func CompileCondition(repo *formalism.Repository, conditionIdx int, enclosingParams []int, counter *int) CompiledCondition {
	nnf := translate.NewToNNF().Run(repo, conditionIdx)

	rq := translate.NewRemoveUniversalQuantifiers(repo, enclosingParams, counter)
	rewritten := rq.Run(repo, nnf)

	return CompiledCondition{
		Literals:      translate.FlattenConjunctionToLiterals(repo, rewritten),
		NewAxioms:     rq.NewAxioms,
		NewPredicates: rq.NewPredicates,
	}
}

// CompiledEffect is an action effect reduced to effect-normal-form: every
// leaf classified as either an unconditional strips effect or a guarded
// conditional one, per translate.NormalizeEffect.
type CompiledEffect struct {
	Strips      []int
	Conditional []int
}

// CompileEffect runs effect-normal-form, and then (when relaxed is true)
// delete-relaxation, over a raw action effect.
func CompileEffect(repo *formalism.Repository, effectIdx int, relaxed bool) CompiledEffect {
	strips, conditional := translate.NormalizeEffect(repo, effectIdx)
	if relaxed {
		strips, conditional = translate.DeleteRelaxation(repo, strips, conditional)
	}
	return CompiledEffect{Strips: strips, Conditional: conditional}
}

// Dualize runs positive-normal-form over a compiled condition and effect
// pair sharing one PositiveNormalForm instance (so dual predicates for the
// same base predicate are interned once per domain, not once per action).
func Dualize(pnf *translate.PositiveNormalForm, repo *formalism.Repository, cond CompiledCondition, eff CompiledEffect) (CompiledCondition, CompiledEffect) {
	dualLiterals := make([]int, len(cond.Literals))
	for i, lit := range cond.Literals {
		// RewriteCondition operates on Condition indices, so each flat
		// Literal index is wrapped in a CondLiteral node and unwrapped
		// again after rewriting.
		wrapped := repo.InternConditionLiteral(lit)
		rewritten := pnf.RewriteCondition(repo, wrapped)
		dualLiterals[i] = repo.Conditions.At(rewritten).LiteralIdx
	}
	cond.Literals = dualLiterals

	strips, conditional := pnf.AugmentEffects(repo, eff.Strips, eff.Conditional)
	eff.Strips, eff.Conditional = strips, conditional
	return cond, eff
}
