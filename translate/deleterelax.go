package translate

import "github.com/simon-stahlberg/mimir-sub009/formalism"

// DeleteRelaxation implements §4.I.6: the delete-relaxed counterpart of an
// action's effect set keeps only add effects, dropping every delete effect
// (Positive == false) and any conditional effect that deletes. A heuristic
// built over the relaxed task runs its fixpoint over exactly this reduced
// effect set.
func DeleteRelaxation(repo *formalism.Repository, stripsIdxs, conditionalIdxs []int) (relaxedStrips, relaxedConditional []int) {
	for _, idx := range stripsIdxs {
		if repo.EffectsStrips.At(idx).Positive {
			relaxedStrips = append(relaxedStrips, idx)
		}
	}
	for _, idx := range conditionalIdxs {
		if repo.EffectsConditional.At(idx).Positive {
			relaxedConditional = append(relaxedConditional, idx)
		}
	}
	return relaxedStrips, relaxedConditional
}
