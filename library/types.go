package library

import "github.com/oprepair/oprepair/automaton"

// PatternMap names a (before, after) pattern pair, mirroring the
// source's pattern_map_t: a name plus the two automata that rewrite.Apply
// consumes.
type PatternMap struct {
	Name   string
	Before *automaton.Automaton
	After  *automaton.Automaton
}
