package pattern

// Embedding maps a pattern automaton's own state/symbol enumeration into
// a host automaton. StateMap[i] is the host state matched to pattern
// state i; SymbolMap[j] is the host alphabet index matched to pattern
// symbol j.
type Embedding struct {
	StateMap  []int
	SymbolMap []int
}
