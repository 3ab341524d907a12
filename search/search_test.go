package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/config"
	"github.com/oprepair/oprepair/library"
	"github.com/oprepair/oprepair/property"
	"github.com/oprepair/oprepair/search"
)

// buildScenario constructs an operator shaped exactly like the
// premature-start pattern's before-shape, a trivial pass-through
// machine, and a property that is violated as soon as the host takes any
// "B" step (the property ignores "A"). premature-start, the first pattern
// tried, adds a "B" edge out of the initial state, so its rewrite is the
// first violator emitted.
func buildScenario(t *testing.T) (operator, machine *automaton.Automaton, prop *property.Property) {
	t.Helper()

	var err error
	operator, err = automaton.New(3, []string{"A", "B"}, 0, nil, []int{
		1, automaton.Dummy,
		automaton.Dummy, 2,
		automaton.Dummy, automaton.Dummy,
	})
	require.NoError(t, err)

	machine, err = automaton.New(1, []string{"A", "B"}, 0, []int{0}, []int{0, 0})
	require.NoError(t, err)

	sim, err := automaton.New(2, []string{"B"}, 0, nil, []int{1, automaton.Dummy})
	require.NoError(t, err)
	prop = property.New(sim, property.NOP, []int{1})

	return operator, machine, prop
}

func TestSearch_FindsPrematureStartViolator(t *testing.T) {
	operator, machine, prop := buildScenario(t)
	patterns, err := library.Init()
	require.NoError(t, err)

	cfg := config.DefaultConfig(
		config.WithDepth(1),
		config.WithLimitPerLevel(8),
		config.WithPropertyDeadline(time.Second),
	)

	var found []search.Violator
	outcome, err := search.Search(context.Background(), operator, machine, prop, patterns, cfg,
		func(v search.Violator) { found = append(found, v) })

	require.NoError(t, err)
	assert.Equal(t, search.Success, outcome)
	require.NotEmpty(t, found)
	assert.Equal(t, 1, found[0].Depth)
	assert.Equal(t, "premature-start", patterns[found[0].Trials[0].PatternIndex].Name)
}

func TestSearch_NotFoundWhenNoPatternApplies(t *testing.T) {
	_, machine, prop := buildScenario(t)

	// A host too small for any 3-state pattern to embed:
	// |Q_pattern| > |Q_host| is an immediate non-match.
	tiny, err := automaton.New(2, []string{"A", "B"}, 0, nil, []int{
		automaton.Dummy, automaton.Dummy,
		automaton.Dummy, automaton.Dummy,
	})
	require.NoError(t, err)

	patterns, err := library.Init()
	require.NoError(t, err)
	cfg := config.DefaultConfig(config.WithDepth(1))

	outcome, err := search.Search(context.Background(), tiny, machine, prop, patterns, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, search.NotFound, outcome)
}

func TestSearch_EmptyPatternList(t *testing.T) {
	operator, machine, prop := buildScenario(t)
	cfg := config.DefaultConfig(config.WithDepth(1))

	_, err := search.Search(context.Background(), operator, machine, prop, nil, cfg, nil)
	assert.ErrorIs(t, err, search.ErrNoPatterns)
}
