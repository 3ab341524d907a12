package automaton

// Dummy is the exported sentinel for "no transition" (⊥) at the encoded
// transition-table boundary. It is never a valid state index.
const Dummy = -1

// Automaton is a deterministic finite automaton with a partial transition
// function, represented as a dense row-major table.
//
// Automaton is immutable once constructed; every mutator in this module
// (see package rewrite) operates on a Clone and returns it, so the input
// to any search step is never written to.
type Automaton struct {
	numStates int
	alphabet  []string          // Σ, ordered, unique names
	symIndex  map[string]int    // name -> index into alphabet
	initial   int               // q0
	finals    map[int]bool      // F
	trans     []int             // dense table, len == numStates*len(alphabet)
}

// NumStates reports |Q|.
func (a *Automaton) NumStates() int { return a.numStates }

// Alphabet returns Σ in its canonical order. The returned slice must not
// be mutated by callers.
func (a *Automaton) Alphabet() []string { return a.alphabet }

// AlphabetSize reports |Σ|.
func (a *Automaton) AlphabetSize() int { return len(a.alphabet) }

// Initial reports q0.
func (a *Automaton) Initial() int { return a.initial }

// IsFinal reports whether q ∈ F.
func (a *Automaton) IsFinal(q int) bool { return a.finals[q] }

// cellIndex computes the dense-table offset for (state, symbolIndex) as
// state*alphabetSize+symbolIndex, applied uniformly everywhere a cell is
// addressed — never num_states*state+symbolIndex.
func (a *Automaton) cellIndex(state, symIdx int) int {
	return state*len(a.alphabet) + symIdx
}

// RawTransition returns the encoded transition value (a state index, or
// Dummy) at (state, symbolIndex) without bounds or symbol validation. It
// exists for components (pattern, rewrite) that already hold validated
// indices and want to avoid repeated name lookups.
func (a *Automaton) RawTransition(state, symIdx int) int {
	return a.trans[a.cellIndex(state, symIdx)]
}

// setRawTransition overwrites the encoded transition at (state, symIdx).
// Unexported: it is reached only through SetRawTransitionForRewrite, which
// package rewrite calls on a Clone it owns.
func (a *Automaton) setRawTransition(state, symIdx, value int) {
	a.trans[a.cellIndex(state, symIdx)] = value
}
