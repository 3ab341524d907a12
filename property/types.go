package property

import "github.com/oprepair/oprepair/automaton"

// Mode selects how a property interprets a symbol absent from its own
// alphabet (or a ⊥ property transition). NOP is the only mode exercised
// by the core search loop; ERROR is reserved for future use and is
// currently treated identically to NOP.
type Mode int

const (
	// NOP treats an unrecognized or ⊥ property symbol as a no-op: the
	// property's state is left unchanged.
	NOP Mode = iota
	// ERROR is reserved; this implementation treats it the same as NOP.
	ERROR
)

// checkState is a node in the synchronous product traversed by the BFS:
// a (host state, property state) pair, also used as the visited-set key.
type checkState struct {
	host int
	prop int
}

// Property pairs a safety-specification automaton with the set of its
// states that constitute a violation, plus the interpretation mode for
// symbols it does not recognize.
type Property struct {
	sim         *automaton.Automaton
	mode        Mode
	errorStates map[int]bool
}

// New constructs a Property from a property automaton, an interpretation
// mode, and the set of states whose reachability constitutes a
// violation.
func New(sim *automaton.Automaton, mode Mode, errorStates []int) *Property {
	set := make(map[int]bool, len(errorStates))
	for _, s := range errorStates {
		set[s] = true
	}
	return &Property{sim: sim, mode: mode, errorStates: set}
}
