package automaton

// Builder assembles an Automaton incrementally from compile-time literal
// cells, the way package library constructs its six built-in patterns.
// It is grounded on the functional-options idiom used throughout this
// corpus's builder package: NewBuilder panics on programmer mistakes (a
// non-positive state count or an empty alphabet supplied literally in
// code); the Option constructors themselves do not validate, while runtime
// data issues (a malformed transition loaded from a file,
// as in package ltsa) surface through New's ErrInvalidArg instead —
// Builder is deliberately not used there.
type Builder struct {
	numStates int
	alphabet  []string
	initial   int
	finals    []int
	trans     []int
}

// Option customizes a Builder before Build assembles the Automaton.
type Option func(*Builder)

// NewBuilder creates a Builder for an automaton with the given number of
// states and alphabet. All (state, symbol) cells default to Dummy.
// Panics if numStates <= 0 or alphabet is empty: these are programmer
// errors, never runtime data errors.
func NewBuilder(numStates int, alphabet []string) *Builder {
	if numStates <= 0 {
		panic("automaton: NewBuilder(numStates<=0)")
	}
	if len(alphabet) == 0 {
		panic("automaton: NewBuilder(empty alphabet)")
	}
	alphaCopy := make([]string, len(alphabet))
	copy(alphaCopy, alphabet)
	trans := make([]int, numStates*len(alphabet))
	for i := range trans {
		trans[i] = Dummy
	}
	return &Builder{
		numStates: numStates,
		alphabet:  alphaCopy,
		trans:     trans,
	}
}

// WithInitial sets q0.
func WithInitial(q int) Option {
	return func(b *Builder) { b.initial = q }
}

// WithFinals marks the given states as final.
func WithFinals(qs ...int) Option {
	return func(b *Builder) { b.finals = append(b.finals, qs...) }
}

// WithTransition sets δ(state, symbol) = target (use Dummy to leave
// unset, which is also the default). It is a no-op if symbol is absent
// from the builder's alphabet, and Build does not report that case; a
// target outside the state range surfaces as Build's ErrInvalidArg.
func WithTransition(state int, symbol string, target int) Option {
	return func(b *Builder) {
		for idx, name := range b.alphabet {
			if name == symbol {
				b.trans[state*len(b.alphabet)+idx] = target
				return
			}
		}
	}
}

// Apply mutates the Builder with opts, in order.
func (b *Builder) Apply(opts ...Option) *Builder {
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build finalizes the Builder into an Automaton, validating shape exactly
// as New does.
func (b *Builder) Build() (*Automaton, error) {
	return New(b.numStates, b.alphabet, b.initial, b.finals, b.trans)
}
