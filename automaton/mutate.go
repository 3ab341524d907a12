package automaton

// SetRawTransitionForRewrite overwrites the encoded transition at
// (state, symIdx). It exists solely for package rewrite, which always
// calls it on a freshly-Cloned Automaton it owns exclusively — Automaton
// is otherwise immutable once constructed, per package doc.go.
func (a *Automaton) SetRawTransitionForRewrite(state, symIdx, value int) {
	a.setRawTransition(state, symIdx, value)
}
