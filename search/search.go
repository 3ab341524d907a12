package search

import (
	"context"

	"github.com/oprepair/oprepair/automaton"
	"github.com/oprepair/oprepair/config"
	"github.com/oprepair/oprepair/library"
	"github.com/oprepair/oprepair/obslog"
	"github.com/oprepair/oprepair/product"
	"github.com/oprepair/oprepair/property"
)

// Search enumerates rewrite sequences of exactly cfg.Depth pattern
// applications against operator, composes each resulting automaton with
// machine, and property-checks the composition. Every violator is
// delivered to sink. Returns Success if at least one violator was found,
// NotFound otherwise.
func Search(
	ctx context.Context,
	operator, machine *automaton.Automaton,
	prop *property.Property,
	patterns []library.PatternMap,
	cfg config.RunConfig,
	sink ViolatorSink,
) (Outcome, error) {
	if len(patterns) == 0 {
		return NotFound, ErrNoPatterns
	}

	log := obslog.New(cfg.Logger)
	outcome := NotFound

	// base[d] holds the rewritten operator produced at level d (1-indexed
	// by number of applications so far); base[0] is the untouched input.
	base := make([]*automaton.Automaton, cfg.Depth+1)
	base[0] = operator

	cursors := make([]*levelCursor, cfg.Depth)
	cursors[0] = newLevelCursor(patterns, cfg.LimitPerLevel)

	trials := make([]Trial, cfg.Depth)

	level := 0
	for {
		select {
		case <-ctx.Done():
			return outcome, nil
		default:
		}

		mutated, trial, ok := cursors[level].next(base[level])
		if !ok {
			if level == 0 {
				break
			}
			level--
			continue
		}

		trials[level] = trial
		base[level+1] = mutated
		log.Debug("applied pattern", "level", level, "pattern", trial.PatternIndex, "embedding", trial.EmbeddingIndex)

		if level < cfg.Depth-1 {
			level++
			cursors[level] = newLevelCursor(patterns, cfg.LimitPerLevel)
			continue
		}

		// level == cfg.Depth-1: a full trial sequence is assembled.
		if found := checkTrial(ctx, mutated, machine, prop, cfg, log, trials, sink); found {
			outcome = Success
		}
		// Stay at this level; the next loop iteration advances
		// cursors[level] to the following embedding/pattern.
	}

	return outcome, nil
}

// checkTrial composes the fully-rewritten operator with machine,
// property-checks it under cfg.PropertyDeadline, and emits a Violator to
// sink if the property is violated. Composition failure is logged and
// treated as no-violator, never fatal to the overall search.
func checkTrial(
	ctx context.Context,
	rewrittenOperator, machine *automaton.Automaton,
	prop *property.Property,
	cfg config.RunConfig,
	log *obslog.Logger,
	trials []Trial,
	sink ViolatorSink,
) bool {
	composed, err := product.Product(rewrittenOperator, machine)
	if err != nil {
		log.Warning("composition failed", "error", err)
		return false
	}

	checkCtx, cancel := context.WithTimeout(ctx, cfg.PropertyDeadline)
	defer cancel()

	holds, err := prop.Check(checkCtx, composed)
	if err != nil {
		log.Warning("property check failed", "error", err)
		return false
	}
	if holds {
		return false
	}

	trialsCopy := make([]Trial, len(trials))
	copy(trialsCopy, trials)
	log.Info("violator found", "depth", len(trialsCopy))
	if sink != nil {
		sink(Violator{
			Operator: rewrittenOperator,
			Depth:    len(trialsCopy),
			Trials:   trialsCopy,
		})
	}
	return true
}
