package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/library"
)

func TestInit_SixPatternsInOrder(t *testing.T) {
	maps, err := library.Init()
	require.NoError(t, err)
	require.Len(t, maps, 6)

	wantNames := []string{
		"premature-start", "delay-start", "omission",
		"reversal", "intrusion", "repetition",
	}
	for i, m := range maps {
		assert.Equal(t, wantNames[i], m.Name)
		assert.Equal(t, 3, m.Before.NumStates())
		assert.Equal(t, 3, m.After.NumStates())
		assert.Equal(t, 2, m.Before.AlphabetSize())
		assert.Equal(t, 2, m.After.AlphabetSize())
	}
}

func TestInit_ReversalShape(t *testing.T) {
	maps, err := library.Init()
	require.NoError(t, err)

	var reversal library.PatternMap
	for _, m := range maps {
		if m.Name == "reversal" {
			reversal = m
		}
	}
	require.NotEmpty(t, reversal.Name)

	after := reversal.After
	a, err := after.Step(0, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	b, err := after.Step(1, "B")
	require.NoError(t, err)
	assert.Equal(t, 2, b)
}
