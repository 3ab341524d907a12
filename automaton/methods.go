package automaton

// SymbolIndex returns the local index of name within Σ, or ErrInvalidSymbol
// if name is not present. Symbol names are matched by identity, never by
// index, across distinct automata.
//
// Complexity: O(1).
func (a *Automaton) SymbolIndex(name string) (int, error) {
	idx, ok := a.symIndex[name]
	if !ok {
		return 0, ErrInvalidSymbol
	}
	return idx, nil
}

// Step consumes a single symbol from state q and returns the resulting
// state, or Dummy if δ(q, name) is undefined. Returns ErrInvalidSymbol if
// name is not in Σ; ErrInvalidArg if q is out of range.
//
// Complexity: O(1).
func (a *Automaton) Step(q int, name string) (int, error) {
	if q < 0 || q >= a.numStates {
		return 0, ErrInvalidArg
	}
	idx, err := a.SymbolIndex(name)
	if err != nil {
		return 0, err
	}
	return a.RawTransition(q, idx), nil
}

// RunTrace consumes trace left to right from q0 and reports whether the
// automaton accepts it. The trace rejects (returns false, nil) as soon as
// a ⊥ transition is taken; it errors if trace names a symbol absent from
// Σ. The final verdict, when consumption completes, is membership in F.
//
// Complexity: O(len(trace)).
func (a *Automaton) RunTrace(trace []string) (bool, error) {
	q := a.initial
	for _, sym := range trace {
		next, err := a.Step(q, sym)
		if err != nil {
			return false, err
		}
		if next == Dummy {
			return false, nil
		}
		q = next
	}
	return a.IsFinal(q), nil
}
