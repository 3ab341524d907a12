// Package rewrite applies a (before, after) pattern pair at a located
// embedding, mutating a cloned host automaton's transition table.
//
// What
//
//   - Apply locates the skip-th embedding of before in host (package
//     pattern), then overwrites host transitions at exactly the
//     embedding's (state, symbol) cells with the shape described by
//     after. Cells outside the embedding are untouched.
//   - Only same-shape pattern pairs are supported (equal state counts,
//     equal alphabet sizes); anything else is ErrNotImplemented rather
//     than attempting a partial or resized rewrite.
//   - An after cell that is ⊥ deletes whatever host edge previously
//     existed there — this is intended, not a bug: it is how patterns
//     like omission and reversal remove an operator's original edge.
//
// Determinism
//
//	Apply never mutates its host argument; it clones first (package
//	automaton), so the caller's input is always safe to reuse.
package rewrite
