package library

import "github.com/oprepair/oprepair/automaton"

var alphabet = []string{"A", "B"}

// threeState builds a 3-state, 2-symbol automaton from a literal
// transition table, state-major: {state0: [A-target, B-target], ...},
// through automaton.Builder: every cell here is a compile-time literal,
// exactly the case Builder's panic-on-misuse constructor is meant for.
func threeState(table [3][2]int) (*automaton.Automaton, error) {
	b := automaton.NewBuilder(3, alphabet)
	for state, row := range table {
		b.Apply(
			automaton.WithTransition(state, alphabet[0], row[0]),
			automaton.WithTransition(state, alphabet[1], row[1]),
		)
	}
	return b.Build()
}

const dummy = automaton.Dummy

// Init builds the six failure-pattern mappings in the fixed order:
// premature-start, delay-start, omission, reversal, intrusion,
// repetition. Returns an error only if one of the literal tables below
// is internally inconsistent (it never is; the error return exists so
// callers can treat library construction like any other fallible
// automaton assembly, matching the external interface's
// pattern_library_init(out_list) contract).
func Init() ([]PatternMap, error) {
	var maps []PatternMap

	add := func(name string, before, after [3][2]int) error {
		b, err := threeState(before)
		if err != nil {
			return err
		}
		a, err := threeState(after)
		if err != nil {
			return err
		}
		maps = append(maps, PatternMap{Name: name, Before: b, After: a})
		return nil
	}

	pre := [3][2]int{{1, dummy}, {dummy, 2}, {dummy, dummy}}

	if err := add("premature-start", pre,
		[3][2]int{{1, 1}, {dummy, 2}, {dummy, dummy}}); err != nil {
		return nil, err
	}
	if err := add("delay-start", pre,
		[3][2]int{{1, dummy}, {2, 2}, {dummy, dummy}}); err != nil {
		return nil, err
	}
	if err := add("omission", pre,
		[3][2]int{{2, 2}, {dummy, 2}, {dummy, dummy}}); err != nil {
		return nil, err
	}
	if err := add("reversal", pre,
		[3][2]int{{1, 1}, {2, 2}, {dummy, dummy}}); err != nil {
		return nil, err
	}
	if err := add("intrusion",
		[3][2]int{{1, dummy}, {dummy, dummy}, {dummy, dummy}},
		[3][2]int{{1, 1}, {2, dummy}, {dummy, dummy}}); err != nil {
		return nil, err
	}
	if err := add("repetition", pre,
		[3][2]int{{0, 1}, {0, 2}, {dummy, dummy}}); err != nil {
		return nil, err
	}

	return maps, nil
}
