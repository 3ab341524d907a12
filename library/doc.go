// Package library is the catalog of the six hard-coded human-error
// failure patterns — data, not logic — each a (before, after) pair of
// 3-state, 2-symbol ({"A","B"}) automata with Dummy acting as a wildcard
// in before and an edge-deletion marker in after.
//
// The transition tables are literal constants transcribed from the
// corpus this specification was distilled from (original_source/
// pattern_lib.cpp), expressed here with automaton.Builder rather than as
// raw DFA.h struct literals. This package is the only user of Builder;
// the module's other packages call automaton.New directly.
package library
