// Package oprepair is a human-operator DFA repair engine.
//
// 🚀 What is oprepair?
//
//	A single-purpose Go toolkit for discovering how a human-operator
//	procedure (modeled as a DFA) can drift into a safety-property
//	violation when composed with a machine's own DFA:
//
//	  • automaton   — deterministic automaton data model, step, trace
//	  • pattern     — locate a failure-pattern shape inside an operator
//	  • rewrite     — apply a (before, after) pattern pair at a located site
//	  • product     — synchronous parallel composition over a union alphabet
//	  • property    — bounded, cancellable reachability check against a
//	                  safety-property DFA
//	  • search      — iterative-deepening search over pattern/embedding
//	                  trials, reporting every violating rewrite sequence
//
// ✨ Why oprepair?
//
//   - Deterministic    — every search replays identically for the same inputs
//   - Cancellable      — property checks run under context.Context deadlines,
//     never a process-wide timer
//   - Grounded         — the six failure patterns (premature-start,
//     delay-start, omission, reversal, intrusion, repetition) come from the
//     human-reliability literature, not invented heuristics
//
// Under the hood, everything is organized as:
//
//	automaton/  — DFA type, construction, clone, step, trace, pretty-print
//	enumerator/ — lexicographically-next distinct-value tuple generator
//	pattern/    — k-th injective labeled-subgraph embedding search
//	rewrite/    — pattern-pair application at a located embedding
//	product/    — synchronous parallel composition with symbol stuttering
//	property/   — bounded BFS safety-property checker
//	library/    — the six built-in failure patterns
//	search/     — the top-level iterative-deepening modification search
//	ltsa/       — LTSA text-format automaton loader
//	config/     — functional-options run configuration
//	obslog/     — structured logging wrapper
//	cmd/oprepair/ — demonstration CLI
//
//	go get github.com/oprepair/oprepair
package oprepair
