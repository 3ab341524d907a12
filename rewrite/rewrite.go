package rewrite

import (
	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/pattern"
)

// Apply locates the skip-th embedding of before in host, then rewrites
// host (on a clone) to the shape described by after at that embedding,
// returning the mutated clone. Returns pattern.ErrPatternNotFound if no
// such embedding exists, or ErrNotImplemented if before and after differ
// in shape.
func Apply(host, before, after *automaton.Automaton, skip int) (*automaton.Automaton, error) {
	if before.NumStates() != after.NumStates() || before.AlphabetSize() != after.AlphabetSize() {
		return nil, ErrNotImplemented
	}

	emb, err := pattern.FindEmbedding(host, before, skip)
	if err != nil {
		return nil, err
	}

	mutated := host.Clone()
	applyAt(mutated, after, emb)
	return mutated, nil
}

// applyAt overwrites mutated's transitions at every (pattern state,
// pattern symbol) cell named by emb, translating after's targets through
// the embedding's state map.
func applyAt(mutated, after *automaton.Automaton, emb *pattern.Embedding) {
	for i := 0; i < after.NumStates(); i++ {
		s := emb.StateMap[i]
		for j := 0; j < after.AlphabetSize(); j++ {
			symIdx := emb.SymbolMap[j]
			target := after.RawTransition(i, j)
			if target == automaton.Dummy {
				mutated.SetRawTransitionForRewrite(s, symIdx, automaton.Dummy)
			} else {
				mutated.SetRawTransitionForRewrite(s, symIdx, emb.StateMap[target])
			}
		}
	}
}
