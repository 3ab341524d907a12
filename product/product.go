package product

import (
	"github.com/oprepair/oprepair/automaton"
)

// Product constructs the synchronous parallel composition of a and b.
//
// Complexity: O(|Q_a|·|Q_b|·|Σ_a ∪ Σ_b|).
func Product(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	alphabet := unionAlphabet(a, b)
	qB := b.NumStates()
	numStates := a.NumStates() * qB

	trans := make([]int, numStates*len(alphabet))
	for i := range trans {
		trans[i] = automaton.Dummy
	}

	for qa := 0; qa < a.NumStates(); qa++ {
		for qb := 0; qb < qB; qb++ {
			encoded := encode(qa, qb, qB)
			for symIdx, sym := range alphabet {
				tA, okA := stepOrStutter(a, qa, sym)
				tB, okB := stepOrStutter(b, qb, sym)
				if !okA || !okB {
					continue // one side has no transition: ⊥ in the product
				}
				trans[encoded*len(alphabet)+symIdx] = encode(tA, tB, qB)
			}
		}
	}

	initial := encode(a.Initial(), b.Initial(), qB)

	var finals []int
	for qa := 0; qa < a.NumStates(); qa++ {
		if !a.IsFinal(qa) {
			continue
		}
		for qb := 0; qb < qB; qb++ {
			if b.IsFinal(qb) {
				finals = append(finals, encode(qa, qb, qB))
			}
		}
	}

	return automaton.New(numStates, alphabet, initial, finals, trans)
}

// encode maps (qa, qb) to the product's dense state index a*qBSize+b.
func encode(qa, qb, qBSize int) int {
	return qa*qBSize + qb
}

// stepOrStutter returns the result of stepping a on sym from q, or
// (q, true) if sym is absent from a's alphabet (the "absent symbol
// leaves the state unchanged" stutter rule). Returns ok=false only when
// sym is present but leads to ⊥.
func stepOrStutter(a *automaton.Automaton, q int, sym string) (int, bool) {
	idx, err := a.SymbolIndex(sym)
	if err != nil {
		return q, true // private event of the other side: stutter
	}
	t := a.RawTransition(q, idx)
	if t == automaton.Dummy {
		return 0, false
	}
	return t, true
}

// unionAlphabet returns Σ_a followed by any symbol of Σ_b not already in
// Σ_a, giving a deterministic ordering for the product's alphabet.
func unionAlphabet(a, b *automaton.Automaton) []string {
	seen := make(map[string]bool, a.AlphabetSize()+b.AlphabetSize())
	out := make([]string, 0, a.AlphabetSize()+b.AlphabetSize())
	for _, s := range a.Alphabet() {
		seen[s] = true
		out = append(out, s)
	}
	for _, s := range b.Alphabet() {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
