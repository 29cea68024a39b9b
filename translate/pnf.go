package translate

import (
	"fmt"

	"github.com/simon-stahlberg/mimir-sub009/formalism"
)

// PositiveNormalForm implements §4.I.5: every negative literal ¬p(...) is
// rewritten to a positive literal not_p(...) over a fresh dual predicate,
// so preconditions and goals never need to represent negation directly.
// Dual predicates must then be kept consistent with their positive
// counterpart wherever truth can change (action effects) and wherever
// truth is first established (the initial state) — AugmentEffects and
// CompleteInitialState do those two jobs respectively.
//
// The spec leaves open how aggressively to maintain ¬p once reachable
// states beyond the initial one are considered; this implementation
// resolves that by scoping completion to the initial state only — the
// search kernel's own successor generator is responsible for keeping a
// ground-fluent's dual in sync with it on every effect application, the
// same way AugmentEffects keeps an action's own effect list in sync. A
// full reachable-state enumeration would require running the grounding
// and search machinery just to normalize a formula, which defeats the
// purpose of a translator stage. See DESIGN.md.
type PositiveNormalForm struct {
	repo    *formalism.Repository
	dualOf  map[int]int // positive predicate index -> its not_ dual
	cached  Cached
}

func NewPositiveNormalForm(repo *formalism.Repository) *PositiveNormalForm {
	pnf := &PositiveNormalForm{repo: repo, dualOf: make(map[int]int)}
	pnf.cached.Transform = pnf.transform
	return pnf
}

// dualPredicate returns the not_<name> predicate paired with predIdx,
// interning it (same kind and arity as the original) the first time a
// negative literal over predIdx is encountered.
func (pnf *PositiveNormalForm) dualPredicate(kind formalism.PredicateKind, predIdx int) int {
	if dual, ok := pnf.dualOf[predIdx]; ok {
		return dual
	}
	p := pnf.repo.Predicates.At(predIdx)
	dual := pnf.repo.InternPredicate(kind, fmt.Sprintf("not_%s", p.Name), p.Arity)
	pnf.dualOf[predIdx] = dual
	return dual
}

func (pnf *PositiveNormalForm) transform(repo *formalism.Repository, idx int) int {
	c := repo.Conditions.At(idx)
	if c.Kind != formalism.CondLiteral {
		return idx
	}
	lit := repo.Literals.At(c.LiteralIdx)
	if lit.Positive {
		return idx
	}
	atom := repo.Atoms.At(lit.AtomIdx)
	dualPredIdx := pnf.dualPredicate(lit.AtomKind, atom.PredicateIndex)
	dualAtomIdx := repo.InternAtom(lit.AtomKind, dualPredIdx, repo.AtomTerms(atom))
	newLit := repo.InternLiteral(true, lit.AtomKind, dualAtomIdx)
	return repo.InternConditionLiteral(newLit)
}

// RewriteCondition rewrites every negative literal reachable from
// conditionIdx into a positive literal over its dual predicate.
func (pnf *PositiveNormalForm) RewriteCondition(repo *formalism.Repository, conditionIdx int) int {
	return pnf.cached.Run(repo, conditionIdx)
}

// AugmentEffects appends, for every EffectStrips in stripsIdxs, a mirrored
// EffectStrips over the dual predicate with the opposite add/delete
// polarity — so applying the action keeps a ground fluent and
// its not_ dual in lockstep. EffectConditional entries are mirrored the
// same way, over the same guard.
func (pnf *PositiveNormalForm) AugmentEffects(repo *formalism.Repository, stripsIdxs, conditionalIdxs []int) (newStrips, newConditional []int) {
	newStrips = append([]int{}, stripsIdxs...)
	for _, idx := range stripsIdxs {
		e := repo.EffectsStrips.At(idx)
		atom := repo.Atoms.At(e.AtomIdx)
		dualPredIdx := pnf.dualPredicate(atom.Kind, atom.PredicateIndex)
		dualAtomIdx := repo.InternAtom(atom.Kind, dualPredIdx, repo.AtomTerms(atom))
		newStrips = append(newStrips, repo.InternEffectStrips(!e.Positive, dualAtomIdx))
	}

	newConditional = append([]int{}, conditionalIdxs...)
	for _, idx := range conditionalIdxs {
		e := repo.EffectsConditional.At(idx)
		atom := repo.Atoms.At(e.AtomIdx)
		dualPredIdx := pnf.dualPredicate(atom.Kind, atom.PredicateIndex)
		dualAtomIdx := repo.InternAtom(atom.Kind, dualPredIdx, repo.AtomTerms(atom))
		params := repo.Children().Get(e.ParamsStart, e.ParamsLen)
		conditions := repo.Children().Get(e.ConditionStart, e.ConditionLen)
		newConditional = append(newConditional, repo.InternEffectConditional(params, conditions, !e.Positive, dualAtomIdx))
	}
	return newStrips, newConditional
}

// CompleteInitialState adds, for every predicate dualized so far, a
// not_p(o1,...,on) ground literal to the initial state for each object
// tuple of the predicate's arity that is absent from the positive initial
// literals — the closed-world completion described above, scoped to the
// problem's single initial state.
func (pnf *PositiveNormalForm) CompleteInitialState(repo *formalism.Repository, objects, initialLiterals []int) []int {
	positive := make(map[int]bool) // GroundAtom index -> true
	for _, litIdx := range initialLiterals {
		lit := repo.GroundLiterals.At(litIdx)
		if lit.Positive {
			positive[lit.GroundAtomIdx] = true
		}
	}

	out := append([]int{}, initialLiterals...)
	for predIdx, dualIdx := range pnf.dualOf {
		pred := repo.Predicates.At(predIdx)
		for _, tuple := range cartesianPower(objects, pred.Arity) {
			groundAtomIdx := repo.InternGroundAtom(pred.Kind, predIdx, tuple)
			if positive[groundAtomIdx] {
				continue
			}
			dualAtomIdx := repo.InternGroundAtom(pred.Kind, dualIdx, tuple)
			out = append(out, repo.InternGroundLiteral(true, pred.Kind, dualAtomIdx))
		}
	}
	return out
}

// cartesianPower enumerates every length-n tuple drawn from objects, with
// repetition, in lexicographic order over objects' index positions.
func cartesianPower(objects []int, n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var out [][]int
	var rec func(prefix []int)
	rec = func(prefix []int) {
		if len(prefix) == n {
			out = append(out, append([]int{}, prefix...))
			return
		}
		for _, o := range objects {
			rec(append(prefix, o))
		}
	}
	rec(nil)
	return out
}
