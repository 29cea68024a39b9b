package mimir_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mimir "github.com/simon-stahlberg/mimir-sub009"
	"github.com/simon-stahlberg/mimir-sub009/formalism"
	"github.com/simon-stahlberg/mimir-sub009/translate"
)

func literalCondition(r *formalism.Repository, kind formalism.PredicateKind, name string, positive bool) int {
	p := r.InternPredicate(kind, name, 0)
	a := r.InternAtom(kind, p, nil)
	l := r.InternLiteral(positive, kind, a)
	return r.InternConditionLiteral(l)
}

// TestCompileConditionFlattensQuantifierFreeConjunction exercises the
// to-NNF + flatten stage alone (no quantifier to eliminate): a negated
// disjunction should come back as a flat two-literal conjunction, both
// negated.
func TestCompileConditionFlattensQuantifierFreeConjunction(t *testing.T) {
	r := formalism.NewRepository()
	on := literalCondition(r, formalism.PredicateStatic, "on", true)
	clear := literalCondition(r, formalism.PredicateStatic, "clear", true)
	not := r.InternConditionNot(r.InternConditionOr([]int{on, clear}))

	counter := new(int)
	compiled := mimir.CompileCondition(r, not, nil, counter)

	require.Len(t, compiled.Literals, 2)
	require.Empty(t, compiled.NewAxioms)
	for _, litIdx := range compiled.Literals {
		require.False(t, r.Literals.At(litIdx).Positive)
	}
}

// TestCompileConditionIntroducesAxiomForUniversalQuantifier exercises the
// full to-NNF + remove-universal-quantifiers + flatten pipeline over a
// precondition containing a forall, mirroring what an action's raw parsed
// precondition would look like before Action.Precondition is populated.
func TestCompileConditionIntroducesAxiomForUniversalQuantifier(t *testing.T) {
	r := formalism.NewRepository()
	x := r.InternVariable("x")
	a := r.InternVariable("a")
	on := literalCondition(r, formalism.PredicateStatic, "on", true)
	forall := r.InternConditionForall([]int{x}, on)

	counter := new(int)
	compiled := mimir.CompileCondition(r, forall, []int{x, a}, counter)

	require.Len(t, compiled.Literals, 1)
	require.Len(t, compiled.NewAxioms, 1)
	lit := r.Literals.At(compiled.Literals[0])
	require.True(t, lit.Positive)
	require.Equal(t, formalism.PredicateDerived, lit.AtomKind)
}

func TestCompileEffectSplitsStripsAndConditional(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateFluent, "holding", 0)
	atom := r.InternAtom(formalism.PredicateFluent, p, nil)
	unconditional := r.InternEffectLiteral(true, atom)

	guardP := r.InternPredicate(formalism.PredicateStatic, "ready", 0)
	guardAtom := r.InternAtom(formalism.PredicateStatic, guardP, nil)
	guardLit := r.InternLiteral(true, formalism.PredicateStatic, guardAtom)
	guardCond := r.InternConditionLiteral(guardLit)
	when := r.InternEffectWhen(guardCond, r.InternEffectLiteral(false, atom))

	and := r.InternEffectAnd([]int{unconditional, when})

	compiled := mimir.CompileEffect(r, and, false)
	require.Len(t, compiled.Strips, 1)
	require.Len(t, compiled.Conditional, 1)

	relaxed := mimir.CompileEffect(r, and, true)
	require.Len(t, relaxed.Strips, 1)
	require.Empty(t, relaxed.Conditional)
}

func TestDualizeRewritesNegativeLiteralsAndMirrorsEffects(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateFluent, "on", 0)
	atom := r.InternAtom(formalism.PredicateFluent, p, nil)
	negLit := r.InternLiteral(false, formalism.PredicateFluent, atom)

	counter := new(int)
	cond := mimir.CompiledCondition{Literals: []int{negLit}}
	eff := mimir.CompileEffect(r, r.InternEffectLiteral(true, atom), false)
	_ = counter

	pnf := translate.NewPositiveNormalForm(r)
	dualCond, dualEff := mimir.Dualize(pnf, r, cond, eff)

	require.Len(t, dualCond.Literals, 1)
	rewritten := r.Literals.At(dualCond.Literals[0])
	require.True(t, rewritten.Positive)
	rewrittenAtom := r.Atoms.At(rewritten.AtomIdx)
	require.Equal(t, "not_on", r.Predicates.At(rewrittenAtom.PredicateIndex).Name)

	// the original positive strips effect on `on` should now have a
	// mirrored negative strips effect on `not_on` appended.
	require.Len(t, dualEff.Strips, 2)
}
