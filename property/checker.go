package property

import (
	"context"

	"github.com/oprepair/oprepair/automaton"
)

// Check runs BFS over the synchronous product of host and the property
// automaton, starting from (host.Initial(), sim.Initial()). It returns
// (false, nil) — "violated" — as soon as a property error state is
// reached, (true, nil) — "holds" — if the search exhausts without
// reaching one, and (true, nil) if ctx is cancelled or its deadline
// fires first (a timeout is never reported as a counterexample).
//
// Complexity: O(|Q_host|·|Q_property|).
func (p *Property) Check(ctx context.Context, host *automaton.Automaton) (bool, error) {
	start := checkState{host: host.Initial(), prop: p.sim.Initial()}
	if p.errorStates[start.prop] {
		return false, nil
	}

	visited := map[checkState]bool{start: true}
	queue := []checkState{start}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return true, nil // conservative: timeout/cancellation never a counterexample
		default:
		}

		cur := queue[0]
		queue = queue[1:]

		for _, sym := range host.Alphabet() {
			nextHost, err := host.Step(cur.host, sym)
			if err != nil || nextHost == automaton.Dummy {
				continue // host cannot take this edge
			}

			nextProp := p.stepOrStutter(cur.prop, sym)
			if p.errorStates[nextProp] {
				return false, nil
			}

			next := checkState{host: nextHost, prop: nextProp}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return true, nil
}

// stepOrStutter steps the property automaton on sym from q, returning q
// unchanged (NOP) if sym is absent from the property's alphabet or leads
// to ⊥ there. Mode ERROR is currently treated identically to NOP.
func (p *Property) stepOrStutter(q int, sym string) int {
	idx, err := p.sim.SymbolIndex(sym)
	if err != nil {
		return q
	}
	next := p.sim.RawTransition(q, idx)
	if next == automaton.Dummy {
		return q
	}
	return next
}
