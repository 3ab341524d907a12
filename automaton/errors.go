package automaton

import "errors"

// Sentinel errors for the automaton package. Callers MUST branch with
// errors.Is, never string comparison.
var (
	// ErrInvalidArg indicates a shape or range violation at construction:
	// an out-of-range initial state, a final state outside Q, a transition
	// target outside Q ∪ {Dummy}, or a malformed transition table.
	ErrInvalidArg = errors.New("automaton: invalid argument")

	// ErrInvalidSymbol indicates a symbol name not present in Σ.
	ErrInvalidSymbol = errors.New("automaton: unknown symbol")
)
