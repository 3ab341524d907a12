package enumerator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/enumerator"
)

func TestNext_FirstCallIsSmallestDistinctTuple(t *testing.T) {
	e := enumerator.New(2, 3)
	v, err := e.Next()
	require.NoError(t, err)
	// k=2 over {0,1,2,3}: all-zero has a duplicate, so the first distinct
	// tuple lexicographically is [0,1].
	assert.Equal(t, []int{0, 1}, v)
}

func TestNext_StrictlyIncreasingUntilExhausted(t *testing.T) {
	e := enumerator.New(2, 2) // {0,1,2}, distinct pairs: 6 permutations
	var seen [][]int
	for {
		v, err := e.Next()
		if err != nil {
			assert.ErrorIs(t, err, enumerator.ErrExhausted)
			break
		}
		cp := append([]int(nil), v...)
		seen = append(seen, cp)
	}
	assert.Equal(t, [][]int{
		{0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1},
	}, seen)
}

func TestNext_SingleElementTuple(t *testing.T) {
	e := enumerator.New(1, 1)
	v, err := e.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, v)

	v, err = e.Next()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v)

	_, err = e.Next()
	assert.ErrorIs(t, err, enumerator.ErrExhausted)
}
