package search

import "github.com/oprepair/oprepair/automaton"

// Outcome reports whether a ModificationSearch run found at least one
// violator.
type Outcome int

const (
	// NotFound indicates no rewritten operator violated the property.
	NotFound Outcome = iota
	// Success indicates at least one violator was found and emitted.
	Success
)

// String renders Outcome for logging and test failure messages.
func (o Outcome) String() string {
	if o == Success {
		return "Success"
	}
	return "NotFound"
}

// Trial names one (pattern, embedding) application within a violator's
// rewrite sequence.
type Trial struct {
	PatternIndex   int
	EmbeddingIndex int
}

// Violator is one rewritten operator whose composition with the machine
// violates the property, along with the trial sequence that produced it.
type Violator struct {
	Operator *automaton.Automaton
	Depth    int
	Trials   []Trial
}

// ViolatorSink receives each violator as it is found. The caller decides
// storage (print, collect, write to a directory); the engine never
// chooses a storage location itself.
type ViolatorSink func(Violator)
