package ltsa_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oprepair/oprepair/ltsa"
)

const sample = `== header line 1
== header line 2
== header line 3
3
-- header line 5
-- header line 6
-- header line 7
  (open -> Q1
  | close -> Q2,
  STOP
  {a, b} -> Q2
`

func TestParse_ThreeStateFixture(t *testing.T) {
	a, err := ltsa.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Equal(t, 3, a.NumStates())
	require.Equal(t, 4, a.AlphabetSize())

	openIdx, err := a.SymbolIndex("open")
	require.NoError(t, err)
	closeIdx, err := a.SymbolIndex("close")
	require.NoError(t, err)
	aIdx, err := a.SymbolIndex("a")
	require.NoError(t, err)
	bIdx, err := a.SymbolIndex("b")
	require.NoError(t, err)

	assert.Equal(t, 1, a.RawTransition(0, openIdx))
	assert.Equal(t, 2, a.RawTransition(0, closeIdx))

	// State 1 is a sink: every symbol self-loops.
	for _, s := range []int{openIdx, closeIdx, aIdx, bIdx} {
		assert.Equal(t, 1, a.RawTransition(1, s))
	}

	assert.Equal(t, 2, a.RawTransition(2, aIdx))
	assert.Equal(t, 2, a.RawTransition(2, bIdx))
	assert.Equal(t, automatonDummy, a.RawTransition(2, openIdx))
}

// automatonDummy mirrors automaton.Dummy without importing the package
// twice under a different name; kept local to this test file.
const automatonDummy = -1

func TestParse_MissingNumStatesIsMalformed(t *testing.T) {
	bad := "l1\nl2\nl3\nnot-a-number\nl5\nl6\nl7\n"
	_, err := ltsa.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, ltsa.ErrMalformed)
}

func TestParse_UnrecognizedLineIsMalformed(t *testing.T) {
	bad := `h1
h2
h3
1
h5
h6
h7
this line matches nothing
`
	_, err := ltsa.Parse(strings.NewReader(bad))
	assert.ErrorIs(t, err, ltsa.ErrMalformed)
}
