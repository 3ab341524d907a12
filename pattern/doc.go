// Package pattern locates the k-th injective embedding of a small pattern
// automaton as a labeled subgraph inside a larger host automaton — a form
// of subgraph monomorphism restricted by edge (symbol) labels.
//
// What
//
//   - An embedding is a pair (stateMap, symbolMap) of injective functions
//     from the pattern's states and symbols into the host's, such that for
//     every pattern state i and pattern symbol j, the host transition at
//     (stateMap[i], symbolMap[j]) either (a) lands on stateMap[p] where p
//     is the pattern's own target for (i,j), or (b) the pattern cell (i,j)
//     is ⊥, which acts as a wildcard permitting any host transition there
//     — including ⊥.
//
// Why
//
//	Pattern ⊥ as a wildcard is what lets the after-pattern (see package
//	rewrite) introduce brand-new edges on a later rewrite: the
//	before-pattern under-constrains a cell, and the after-pattern
//	specifies the shape that should exist there once rewritten.
//
// Determinism
//
//	Enumeration is lexicographic: the outer loop ranges over distinct
//	state-map tuples (package enumerator, base = host state count), the
//	inner loop over distinct symbol-map tuples (base = host alphabet
//	size), for each state map in turn. skip selects the zero-indexed
//	embedding in that order.
//
// Complexity (n = host states, m = host symbols, k = pattern states,
// l = pattern symbols)
//
//	Worst case O(P(n,k) · P(m,l) · k·l) where P is the falling factorial —
//	acceptable because k << n and l << m for the automaton sizes this
//	engine targets.
package pattern
