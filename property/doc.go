// Package property implements bounded reachability checking over the
// synchronous product of a host automaton and a safety-property
// automaton: a BFS that detects whether any path from the initial states
// reaches a designated error state.
//
// What
//
//   - Check performs BFS from (q0_host, q0_property) using host's
//     alphabet only. A symbol absent from the property's alphabet, or one
//     that leads to ⊥ in the property, is interpreted as NOP: the
//     property stutters (its state is unchanged) rather than blocking.
//   - If the host has no transition for a symbol, that edge is simply
//     skipped (the host cannot take it; it does not cause a violation).
//   - Reaching any state in the caller's error-state set is a violation.
//
// Determinism & Cancellation
//
//	Check takes a context.Context instead of relying on a process-wide
//	timer: it polls ctx between frontier expansions and returns "holds"
//	(true, nil) on cancellation or deadline — a timeout is never reported
//	as a counterexample, erring toward the conservative answer.
//
// Complexity
//
//	Time and memory O(|Q_host|·|Q_property|), the size of the visited
//	set; each (host, property) pair is enqueued at most once.
package property
