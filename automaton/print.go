package automaton

import (
	"fmt"
	"io"
)

// Print emits a human-readable representation of a to w: one line per
// state listing its outgoing transitions by symbol name, "->DUMMY" for ⊥.
// This format is for debugging only and is not a stable, parseable
// contract.
func (a *Automaton) Print(w io.Writer) {
	fmt.Fprintf(w, "automaton: %d states, initial=%d, finals=%v\n", a.numStates, a.initial, sortedFinals(a.finals))
	for q := 0; q < a.numStates; q++ {
		fmt.Fprintf(w, "  %d:", q)
		for idx, name := range a.alphabet {
			t := a.RawTransition(q, idx)
			if t == Dummy {
				fmt.Fprintf(w, " %s->DUMMY", name)
			} else {
				fmt.Fprintf(w, " %s->%d", name, t)
			}
		}
		fmt.Fprintln(w)
	}
}

func sortedFinals(finals map[int]bool) []int {
	out := make([]int, 0, len(finals))
	for f := range finals {
		out = append(out, f)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
