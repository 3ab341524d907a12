package pattern

import (
	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/enumerator"
)

// FindEmbedding returns the skip-th (zero-indexed) embedding of pat into
// host in the deterministic lexicographic order documented in doc.go, or
// ErrPatternNotFound if fewer than skip+1 embeddings exist.
//
// Immediate ErrPatternNotFound if |Q_pattern| > |Q_host| or
// |Σ_pattern| > |Σ_host|, per spec.
func FindEmbedding(host, pat *automaton.Automaton, skip int) (*Embedding, error) {
	if pat.NumStates() > host.NumStates() {
		return nil, ErrPatternNotFound
	}
	if pat.AlphabetSize() > host.AlphabetSize() {
		return nil, ErrPatternNotFound
	}

	stateEnum := enumerator.New(pat.NumStates(), host.NumStates()-1)
	for {
		stateMap, err := stateEnum.Next()
		if err != nil {
			return nil, ErrPatternNotFound
		}

		symbolEnum := enumerator.New(pat.AlphabetSize(), host.AlphabetSize()-1)
		for {
			symbolMap, err := symbolEnum.Next()
			if err != nil {
				break // exhausted this state map's symbol maps
			}
			if !isEmbedding(host, pat, stateMap, symbolMap) {
				continue
			}
			if skip > 0 {
				skip--
				continue
			}
			return &Embedding{
				StateMap:  append([]int(nil), stateMap...),
				SymbolMap: append([]int(nil), symbolMap...),
			}, nil
		}
	}
}

// isEmbedding checks the embedding predicate for every pattern (state,
// symbol) cell: either the pattern cell is ⊥ (wildcard, always satisfied)
// or the host transition at the mapped cell lands on the mapped target
// state.
func isEmbedding(host, pat *automaton.Automaton, stateMap, symbolMap []int) bool {
	for i := 0; i < pat.NumStates(); i++ {
		for j := 0; j < pat.AlphabetSize(); j++ {
			p := pat.RawTransition(i, j)
			if p == automaton.Dummy {
				continue
			}
			h := host.RawTransition(stateMap[i], symbolMap[j])
			if h == automaton.Dummy || h != stateMap[p] {
				return false
			}
		}
	}
	return true
}
