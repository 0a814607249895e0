package loadflow

import "math"

const (
	// participation below this is treated as exhausted, in MW
	distributionEpsilon = 1e-6
	// reactive limit violations smaller than this are ignored, in MVar
	reactiveEpsilon = 1e-4
)

// distributeSlack spreads mismatch MW over the generators of the component
// in proportion to their maximum active power, keeping every generator
// within [MinP, MaxP]. It returns the MW actually distributed.
func (s *system) distributeSlack(mismatch float64) float64 {
	active := make([]*genState, 0, len(s.gens))
	for _, g := range s.gens {
		if g.g.MaxP > 0 && g.g.MaxP > g.g.MinP {
			active = append(active, g)
		}
	}

	remaining := mismatch
	for math.Abs(remaining) > distributionEpsilon && len(active) > 0 {
		total := 0.0
		for _, g := range active {
			total += g.g.MaxP
		}

		next := active[:0]
		round := remaining
		for _, g := range active {
			want := g.p + round*g.g.MaxP/total
			got := math.Min(math.Max(want, g.g.MinP), g.g.MaxP)
			remaining -= got - g.p
			g.p = got
			if got == want {
				next = append(next, g)
			}
		}
		active = next
	}
	return mismatch - remaining
}

// checkReactiveLimits moves regulated buses whose reactive generation left
// the limits of their generators to PQ, with the generators at the violated
// limit. The slack bus keeps its voltage. It returns the number of buses
// switched.
func (s *system) checkReactiveLimits() int {
	switched := 0
	for i, nd := range s.nodes {
		if nd.kind != busPV {
			continue
		}
		_, q := s.injection(i)
		gen := q*s.baseMVA + nd.loadQ
		minQ, maxQ := nd.reactiveRange()
		switch {
		case gen > maxQ+reactiveEpsilon:
			nd.qFixed = maxQ
			nd.atMaxQ = true
		case gen < minQ-reactiveEpsilon:
			nd.qFixed = minQ
		default:
			continue
		}
		nd.kind = busPQ
		nd.switched = true
		switched++
	}
	return switched
}
