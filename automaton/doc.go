// Package automaton provides the core DFA data model for the operator,
// machine, and property automata: a dense, partial-transition-function
// representation with construction, deep copy, single-symbol step, trace
// acceptance, and a debug pretty-printer.
//
// What
//
//   - Q = {0, …, n-1}: states identified by index.
//   - Σ: an ordered sequence of distinct symbol names; symbols have
//     identity by name, not by index — index is only a local handle.
//   - δ: Q × Σ → Q ∪ {⊥}, stored as a dense row-major table so Step is O(1).
//   - ⊥ (Dummy) denotes "no transition". In a pattern automaton a ⊥ cell
//     also acts as a wildcard during embedding search (see package pattern).
//
// Why
//
//   - Dense tables give O(1) step and are small for the automaton sizes
//     this engine targets (at most a few hundred states); a sparse map
//     would add hashing overhead for no benefit at this scale.
//
// Determinism
//
//	Automaton is immutable once constructed except via package rewrite,
//	which always returns a fresh Automaton from a cloned host. Clone is a
//	full deep copy; mutating a clone never affects its source.
//
// Complexity (n = states, k = |Σ|)
//
//   - Step:      O(1)
//   - RunTrace:  O(len(trace))
//   - Clone:     O(n·k)
package automaton
