package translate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-stahlberg/mimir-sub009/formalism"
	"github.com/simon-stahlberg/mimir-sub009/translate"
)

// literalCondition builds a CondLiteral node for a zero-arity static atom
// named name, with the given polarity, returning the Condition index.
func literalCondition(r *formalism.Repository, name string, positive bool) int {
	p := r.InternPredicate(formalism.PredicateStatic, name, 0)
	a := r.InternAtom(formalism.PredicateStatic, p, nil)
	l := r.InternLiteral(positive, formalism.PredicateStatic, a)
	return r.InternConditionLiteral(l)
}

func TestToNNFPushesNegationToLiterals(t *testing.T) {
	r := formalism.NewRepository()
	on := literalCondition(r, "on", true)
	clear := literalCondition(r, "clear", true)

	// not (on and clear) -> (not on) or (not clear)
	and := r.InternConditionAnd([]int{on, clear})
	not := r.InternConditionNot(and)

	out := translate.NewToNNF().Run(r, not)
	c := r.Conditions.At(out)
	require.Equal(t, formalism.CondOr, c.Kind)

	for _, childIdx := range r.ConditionChildren(c) {
		child := r.Conditions.At(childIdx)
		require.Equal(t, formalism.CondLiteral, child.Kind)
		lit := r.Literals.At(child.LiteralIdx)
		require.False(t, lit.Positive)
	}
}

func TestToNNFSwapsExistsForallUnderNegation(t *testing.T) {
	r := formalism.NewRepository()
	x := r.InternVariable("x")

	// not (forall x. on(x,a) or clear(x)) -> exists x. (not on(x,a)) and (not clear(x))
	on := literalCondition(r, "on", true)
	clear := literalCondition(r, "clear", true)
	or := r.InternConditionOr([]int{on, clear})
	forall := r.InternConditionForall([]int{x}, or)
	not := r.InternConditionNot(forall)

	out := translate.NewToNNF().Run(r, not)
	c := r.Conditions.At(out)
	require.Equal(t, formalism.CondExists, c.Kind)

	body := r.Conditions.At(c.Body)
	require.Equal(t, formalism.CondAnd, body.Kind)
	for _, childIdx := range r.ConditionChildren(body) {
		child := r.Conditions.At(childIdx)
		require.Equal(t, formalism.CondLiteral, child.Kind)
		lit := r.Literals.At(child.LiteralIdx)
		require.False(t, lit.Positive)
	}
}

func TestToNNFDoubleNegationElimination(t *testing.T) {
	r := formalism.NewRepository()
	on := literalCondition(r, "on", true)
	not := r.InternConditionNot(r.InternConditionNot(on))

	out := translate.NewToNNF().Run(r, not)
	require.Equal(t, on, out, "double negation of a literal round-trips to the same node")
}

func TestToNNFIsIdempotent(t *testing.T) {
	r := formalism.NewRepository()
	on := literalCondition(r, "on", true)
	clear := literalCondition(r, "clear", true)
	and := r.InternConditionAnd([]int{on, clear})

	once := translate.NewToNNF().Run(r, and)
	twice := translate.NewToNNF().Run(r, once)
	require.Equal(t, once, twice)
}

func TestRemoveUniversalQuantifiersIntroducesDerivedAxiom(t *testing.T) {
	r := formalism.NewRepository()
	x := r.InternVariable("x")
	a := r.InternVariable("a")

	on := literalCondition(r, "on", true)
	clear := literalCondition(r, "clear", true)
	or := r.InternConditionOr([]int{on, clear})
	forall := r.InternConditionForall([]int{x}, or)

	counter := new(int)
	q := translate.NewRemoveUniversalQuantifiers(r, []int{x, a}, counter)
	out := q.Run(r, forall)

	c := r.Conditions.At(out)
	require.Equal(t, formalism.CondLiteral, c.Kind)
	lit := r.Literals.At(c.LiteralIdx)
	require.True(t, lit.Positive)
	require.Equal(t, formalism.PredicateDerived, lit.AtomKind)

	require.Len(t, q.NewAxioms, 1)
	axiom := r.Axioms.At(q.NewAxioms[0])
	require.Equal(t, []int{x, a}, r.AxiomParams(axiom))
}

func TestNormalizeEffectClassifiesUnconditionalAndConditional(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateFluent, "holding", 0)
	atom := r.InternAtom(formalism.PredicateFluent, p, nil)
	unconditional := r.InternEffectLiteral(true, atom)

	guardP := r.InternPredicate(formalism.PredicateStatic, "ready", 0)
	guardAtom := r.InternAtom(formalism.PredicateStatic, guardP, nil)
	guardLit := r.InternLiteral(true, formalism.PredicateStatic, guardAtom)
	guardCond := r.InternConditionLiteral(guardLit)

	q := r.InternVariable("x")
	conditionalBody := r.InternEffectForall([]int{q}, r.InternEffectLiteral(false, atom))
	when := r.InternEffectWhen(guardCond, conditionalBody)

	and := r.InternEffectAnd([]int{unconditional, when})

	strips, conditional := translate.NormalizeEffect(r, and)
	require.Len(t, strips, 1)
	require.Len(t, conditional, 1)

	s := r.EffectsStrips.At(strips[0])
	require.True(t, s.Positive)

	cond := r.EffectsConditional.At(conditional[0])
	require.False(t, cond.Positive)
	require.Equal(t, []int{q}, r.Children().Get(cond.ParamsStart, cond.ParamsLen))
	require.Equal(t, []int{guardLit}, r.Children().Get(cond.ConditionStart, cond.ConditionLen))
}

func TestPositiveNormalFormRewritesNegativeLiteral(t *testing.T) {
	r := formalism.NewRepository()
	on := literalCondition(r, "on", false)

	pnf := translate.NewPositiveNormalForm(r)
	out := pnf.RewriteCondition(r, on)

	c := r.Conditions.At(out)
	require.Equal(t, formalism.CondLiteral, c.Kind)
	lit := r.Literals.At(c.LiteralIdx)
	require.True(t, lit.Positive)

	atom := r.Atoms.At(lit.AtomIdx)
	pred := r.Predicates.At(atom.PredicateIndex)
	require.Equal(t, "not_on", pred.Name)
}

func TestPositiveNormalFormCompletesInitialState(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateStatic, "on", 1)
	a := r.InternObject("a")
	b := r.InternObject("b")

	atomA := r.InternGroundAtom(formalism.PredicateStatic, p, []int{a})
	litA := r.InternGroundLiteral(true, formalism.PredicateStatic, atomA)

	// dualize "on" by rewriting a negative condition over it
	v := r.InternVariable("x")
	term := r.InternVariableTerm(v)
	liftedAtom := r.InternAtom(formalism.PredicateStatic, p, []int{term})
	negLit := r.InternLiteral(false, formalism.PredicateStatic, liftedAtom)
	negCond := r.InternConditionLiteral(negLit)

	pnf := translate.NewPositiveNormalForm(r)
	_ = pnf.RewriteCondition(r, negCond)

	completed := pnf.CompleteInitialState(r, []int{a, b}, []int{litA})
	require.Len(t, completed, 2, "on(a) stays true, not_on(b) is added for the object absent from on")

	foundNotOnB := false
	for _, litIdx := range completed {
		gl := r.GroundLiterals.At(litIdx)
		if gl.GroundAtomIdx == atomA {
			continue
		}
		ga := r.GroundAtoms.At(gl.GroundAtomIdx)
		pred := r.Predicates.At(ga.PredicateIndex)
		require.Equal(t, "not_on", pred.Name)
		require.Equal(t, []int{b}, r.GroundAtomObjects(ga))
		foundNotOnB = true
	}
	require.True(t, foundNotOnB)
}

func TestDeleteRelaxationDropsDeleteEffects(t *testing.T) {
	r := formalism.NewRepository()
	p := r.InternPredicate(formalism.PredicateFluent, "holding", 0)
	atom := r.InternAtom(formalism.PredicateFluent, p, nil)

	add := r.InternEffectStrips(true, atom)
	del := r.InternEffectStrips(false, atom)

	strips, _ := translate.DeleteRelaxation(r, []int{add, del}, nil)
	require.Equal(t, []int{add}, strips)
}
