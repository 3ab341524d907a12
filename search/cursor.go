package search

import (
	"errors"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/library"
	"github.com/oprepair/oprepair/pattern"
	"github.com/oprepair/oprepair/rewrite"
)

// levelCursor enumerates successive rewrites of a single search level:
// pattern 0's embeddings in increasing order up to limitPerLevel, then
// pattern 1's, and so on — a (pattern_index, skip_count) enumeration.
type levelCursor struct {
	patterns      []library.PatternMap
	limitPerLevel int
	patternIdx    int
	embeddingIdx  int
}

func newLevelCursor(patterns []library.PatternMap, limitPerLevel int) *levelCursor {
	return &levelCursor{patterns: patterns, limitPerLevel: limitPerLevel}
}

// next attempts the cursor's current (pattern, embedding) trial against
// host, advances internal state for the following call, and reports
// whether a rewrite was produced. It returns ok=false once every pattern
// has been tried (or abandoned via limitPerLevel) with no further
// rewrite available at this level.
func (c *levelCursor) next(host *automaton.Automaton) (mutated *automaton.Automaton, trial Trial, ok bool) {
	for c.patternIdx < len(c.patterns) {
		if c.embeddingIdx >= c.limitPerLevel {
			c.patternIdx++
			c.embeddingIdx = 0
			continue
		}

		pm := c.patterns[c.patternIdx]
		embeddingIdx := c.embeddingIdx
		c.embeddingIdx++

		out, err := rewrite.Apply(host, pm.Before, pm.After, embeddingIdx)
		trial = Trial{PatternIndex: c.patternIdx, EmbeddingIndex: embeddingIdx}
		if err == nil {
			return out, trial, true
		}
		if errors.Is(err, pattern.ErrPatternNotFound) || errors.Is(err, rewrite.ErrNotImplemented) {
			// No more embeddings for this pattern (or it can never
			// apply): move to the next pattern, starting over.
			c.patternIdx++
			c.embeddingIdx = 0
			continue
		}
		// Any other error is a structural failure specific to this
		// attempt; treat it the same as "no embedding here" and keep
		// trying the same pattern's next embedding index.
	}
	return nil, Trial{}, false
}
