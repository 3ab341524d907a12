// Package search implements the iterative-deepening ModificationSearch:
// enumerating multisets of pattern applications up to a bounded depth,
// composing each resulting operator with a machine, and reporting which
// compositions violate a safety property.
//
// What
//
//   - A search frontier is trial[0..depth), where trial[d] names a
//     (pattern index, embedding index) pair. Level 0 rewrites a clone of
//     the input operator; level d (d>0) rewrites a clone of level d-1's
//     result.
//   - At each level, patterns are tried in library order; for each
//     pattern, embeddings are tried by increasing skip index up to
//     LimitPerLevel before moving to the next pattern. When a level's
//     patterns are all exhausted, the search backtracks to the previous
//     level and advances its trial.
//   - Once a full trial of length depth produces a rewritten operator, it
//     is composed with the machine (package product) and property-checked
//     (package property); every violator is emitted to the caller's sink.
//
// Failure semantics
//
//	A structural composition failure is fatal only to that branch: it is
//	logged and treated as no-violator, never aborting the overall search.
//	A property-check timeout is treated as "does not violate" —
//	conservative, matching package property's own contract.
//
// Determinism
//
//	For fixed inputs, ModificationSearch traverses (level, pattern,
//	embedding) triples in a fixed DFS order, so the set of violators
//	produced is reproducible run to run — the order in which they are
//	emitted to the sink is not itself part of the contract; only the set
//	of violators found is.
package search
