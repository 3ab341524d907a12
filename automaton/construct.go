package automaton

// New constructs an Automaton from explicit sizes, an initial state, a set
// of final states, an ordered alphabet, and a row-major transition table
// using the Dummy sentinel (-1) for "no transition".
//
// transitions must have length numStates*len(alphabet); transitions[i] is
// the encoded target for state i/len(alphabet) on symbol i%len(alphabet).
//
// Returns ErrInvalidArg if:
//   - numStates <= 0 or len(alphabet) == 0,
//   - len(transitions) != numStates*len(alphabet),
//   - alphabet contains a duplicate name,
//   - initial is outside [0, numStates),
//   - any final state is outside [0, numStates),
//   - any transitions entry is neither Dummy nor in [0, numStates).
//
// Complexity: O(numStates*len(alphabet)).
func New(numStates int, alphabet []string, initial int, finals []int, transitions []int) (*Automaton, error) {
	if numStates <= 0 || len(alphabet) == 0 {
		return nil, ErrInvalidArg
	}
	if len(transitions) != numStates*len(alphabet) {
		return nil, ErrInvalidArg
	}
	if initial < 0 || initial >= numStates {
		return nil, ErrInvalidArg
	}

	symIndex := make(map[string]int, len(alphabet))
	for i, name := range alphabet {
		if _, dup := symIndex[name]; dup {
			return nil, ErrInvalidArg
		}
		symIndex[name] = i
	}

	finalSet := make(map[int]bool, len(finals))
	for _, f := range finals {
		if f < 0 || f >= numStates {
			return nil, ErrInvalidArg
		}
		finalSet[f] = true
	}

	for _, t := range transitions {
		if t != Dummy && (t < 0 || t >= numStates) {
			return nil, ErrInvalidArg
		}
	}

	alphaCopy := make([]string, len(alphabet))
	copy(alphaCopy, alphabet)
	transCopy := make([]int, len(transitions))
	copy(transCopy, transitions)

	return &Automaton{
		numStates: numStates,
		alphabet:  alphaCopy,
		symIndex:  symIndex,
		initial:   initial,
		finals:    finalSet,
		trans:     transCopy,
	}, nil
}
