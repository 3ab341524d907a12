// Package ltsa loads an Automaton from the line-oriented LTSA text
// format below. It is an external collaborator to the core engine — the
// core itself never depends on file I/O or this format — kept here as a
// thin, independently-testable package so cmd/oprepair and the example
// fixtures have a real loader rather than a hand-waved one.
//
// Format
//
//   - Lines 1-3: header, ignored.
//   - Line 4: an integer, num_states.
//   - Lines 5-7: header, ignored.
//   - Body: one block per state, each line one of:
//   - "… (name -> Qn"       (single symbol transition)
//   - "… | name -> Qn"      (alternative single symbol transition)
//   - "… {n1, n2, …} -> Qn" (comma-separated symbol group, same target)
//   - "… STOP"              (sink: self-loops on every alphabet symbol)
//
// A trailing comma on a line advances to the next state; the final
// state's line has no trailing comma. The alphabet accumulates in
// first-appearance order across the whole file. STOP states self-loop on
// every symbol of the *final* alphabet (resolved once the whole file has
// been scanned), so they are recorded and patched in a second pass.
// Unlisted (state, symbol) pairs default to ⊥. Final states are not
// represented in this format; the loaded Automaton has an empty F.
package ltsa
