package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/pattern"
)

// fourCycle builds the Scenario 2 host: a 4-state cycle over {A,B} with
// δ(i,A)=(i+1)%4, δ(i,B)=(i-1+4)%4.
func fourCycle(t *testing.T) *automaton.Automaton {
	t.Helper()
	trans := make([]int, 0, 8)
	for i := 0; i < 4; i++ {
		trans = append(trans, (i+1)%4, (i-1+4)%4)
	}
	a, err := automaton.New(4, []string{"A", "B"}, 0, nil, trans)
	require.NoError(t, err)
	return a
}

// linearThree builds the Scenario 2 pattern: {0:[1,⊥], 1:[2,⊥], 2:[⊥,⊥]}.
// It embeds in fourCycle as three consecutive states under "A" (or under
// "B", with the symbol map swapped). A pattern that also required the
// second symbol to reach the same state could not embed there, since the
// symbol map is injective and "A" and "B" lead in opposite directions.
func linearThree(t *testing.T) *automaton.Automaton {
	t.Helper()
	a, err := automaton.New(3, []string{"A", "B"}, 0, nil, []int{
		1, automaton.Dummy,
		2, automaton.Dummy,
		automaton.Dummy, automaton.Dummy,
	})
	require.NoError(t, err)
	return a
}

func TestFindEmbedding_Scenario2(t *testing.T) {
	host := fourCycle(t)
	pat := linearThree(t)

	emb, err := pattern.FindEmbedding(host, pat, 0)
	require.NoError(t, err)

	// Every pattern state/symbol cell must satisfy the embedding predicate.
	for i := 0; i < pat.NumStates(); i++ {
		for j := 0; j < pat.AlphabetSize(); j++ {
			p := pat.RawTransition(i, j)
			if p == automaton.Dummy {
				continue
			}
			h := host.RawTransition(emb.StateMap[i], emb.SymbolMap[j])
			assert.NotEqual(t, automaton.Dummy, h)
			assert.Equal(t, emb.StateMap[p], h)
		}
	}
}

func TestFindEmbedding_Scenario3_NoEmbedding(t *testing.T) {
	host, err := automaton.New(2, []string{"A", "B"}, 0, nil, []int{
		1, automaton.Dummy,
		automaton.Dummy, automaton.Dummy,
	})
	require.NoError(t, err)
	pat := linearThree(t)

	_, err = pattern.FindEmbedding(host, pat, 0)
	assert.ErrorIs(t, err, pattern.ErrPatternNotFound)
}

func TestFindEmbedding_EnumerationIsStrictlyIncreasing(t *testing.T) {
	host := fourCycle(t)
	pat := linearThree(t)

	var prior *pattern.Embedding
	for k := 0; k < 3; k++ {
		emb, err := pattern.FindEmbedding(host, pat, k)
		require.NoError(t, err)
		if prior != nil {
			byState := compareInts(prior.StateMap, emb.StateMap)
			increasing := byState < 0 || (byState == 0 && compareInts(prior.SymbolMap, emb.SymbolMap) < 0)
			assert.True(t, increasing, "successive skips must be lexicographically increasing")
		}
		prior = emb
	}
}

// compareInts orders two equal-length tuples lexicographically, returning
// -1, 0, or 1.
func compareInts(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
