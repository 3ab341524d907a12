package property_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/property"
)

// propFive builds the Scenario 6 property: 6 states in a line on "A",
// δ(i,A)=i+1 for i<5, δ(5,A)=⊥. Error state is {5}.
func propFive(t *testing.T) *automaton.Automaton {
	t.Helper()
	trans := make([]int, 6)
	for i := 0; i < 5; i++ {
		trans[i] = i + 1
	}
	trans[5] = automaton.Dummy
	a, err := automaton.New(6, []string{"A"}, 0, nil, trans)
	require.NoError(t, err)
	return a
}

func TestCheck_Scenario6_Violated(t *testing.T) {
	// host: a 6-state chain on "A" long enough to drive the property to
	// state 5.
	trans := make([]int, 6)
	for i := 0; i < 5; i++ {
		trans[i] = i + 1
	}
	trans[5] = automaton.Dummy
	host, err := automaton.New(6, []string{"A"}, 0, nil, trans)
	require.NoError(t, err)

	p := property.New(propFive(t), property.NOP, []int{5})
	holds, err := p.Check(context.Background(), host)
	require.NoError(t, err)
	assert.False(t, holds, "length-5 'A' trace must reach the error state")
}

func TestCheck_Scenario6_Holds(t *testing.T) {
	// host: a single self-loop-free 2-state automaton whose "A" moves
	// never form a length-5 path (it dead-ends after one step).
	host, err := automaton.New(2, []string{"A"}, 0, nil, []int{1, automaton.Dummy})
	require.NoError(t, err)

	p := property.New(propFive(t), property.NOP, []int{5})
	holds, err := p.Check(context.Background(), host)
	require.NoError(t, err)
	assert.True(t, holds)
}

// TestCheck_TimeoutConservatism checks testable property 9: an already
// cancelled context must yield "holds", never "violated".
func TestCheck_TimeoutConservatism(t *testing.T) {
	trans := make([]int, 6)
	for i := 0; i < 5; i++ {
		trans[i] = i + 1
	}
	trans[5] = automaton.Dummy
	host, err := automaton.New(6, []string{"A"}, 0, nil, trans)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already done before Check starts its loop

	p := property.New(propFive(t), property.NOP, []int{5})
	holds, err := p.Check(ctx, host)
	require.NoError(t, err)
	assert.True(t, holds, "a cancelled context must never report a counterexample")
}

func TestCheck_InitialErrorStateIsViolation(t *testing.T) {
	// host's only symbol "B" is private to the host; the property never
	// steps on it.
	host, err := automaton.New(2, []string{"B"}, 0, nil, []int{1, 0})
	require.NoError(t, err)

	prop, err := automaton.New(1, []string{"A"}, 0, nil, []int{automaton.Dummy})
	require.NoError(t, err)

	p := property.New(prop, property.NOP, []int{0})
	// The property's initial state 0 is itself an error state; Check
	// reports that before taking any step.
	holds, err := p.Check(context.Background(), host)
	require.NoError(t, err)
	assert.False(t, holds)
}

func TestCheck_RespectsDeadline(t *testing.T) {
	host, err := automaton.New(1, []string{"A"}, 0, nil, []int{automaton.Dummy})
	require.NoError(t, err)
	prop, err := automaton.New(1, []string{"A"}, 0, nil, []int{automaton.Dummy})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	p := property.New(prop, property.NOP, nil)
	holds, err := p.Check(ctx, host)
	require.NoError(t, err)
	assert.True(t, holds)
}
