package nad

import (
	"fmt"

	"github.com/bft-labs/gridsim/internal/domain"
)

// vertex is a voltage level node.
type vertex struct {
	vl    *domain.VoltageLevel
	sub   *domain.Substation
	buses []*domain.Bus
	x, y  float64
}

// edge is a branch between two voltage levels. Branches sharing the same
// pair of nodes get distinct offsets so they are drawn side by side.
type edge struct {
	br     *domain.Branch
	a, b   int
	offset float64
}

type graph struct {
	vertices []*vertex
	edges    []*edge
}

// parallelSpacing is the distance between parallel edges, in px.
const parallelSpacing = 12

// buildGraph collects the voltage levels and the branches between them, in
// network order. Branches inside a single voltage level are not drawn.
func buildGraph(n *domain.Network) (*graph, error) {
	g := &graph{}
	index := make(map[string]int, len(n.VoltageLevels))
	for i, vl := range n.VoltageLevels {
		sub, _ := n.Substation(vl.SubstationID)
		g.vertices = append(g.vertices, &vertex{vl: vl, sub: sub, buses: n.BusesOf(vl.ID)})
		index[vl.ID] = i
	}

	type pair struct{ lo, hi int }
	parallel := make(map[pair][]*edge)
	var order []pair
	for _, br := range n.Branches {
		vl1, ok1 := n.BusVoltageLevel(br.Bus1ID)
		vl2, ok2 := n.BusVoltageLevel(br.Bus2ID)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: branch %s: dangling bus", domain.ErrInvalidNetwork, br.ID)
		}
		a, b := index[vl1.ID], index[vl2.ID]
		if a == b {
			continue
		}
		e := &edge{br: br, a: a, b: b}
		g.edges = append(g.edges, e)

		key := pair{a, b}
		if b < a {
			key = pair{b, a}
		}
		if _, seen := parallel[key]; !seen {
			order = append(order, key)
		}
		parallel[key] = append(parallel[key], e)
	}

	for _, key := range order {
		group := parallel[key]
		mid := float64(len(group)-1) / 2
		for i, e := range group {
			e.offset = (float64(i) - mid) * parallelSpacing
			// offsets are measured from the lower node, flip for reversed edges
			if e.a != key.lo {
				e.offset = -e.offset
			}
		}
	}
	return g, nil
}

// label returns the display text of an element.
func (p Parameters) label(id, name string) string {
	if p.IDDisplayed || name == "" {
		return id
	}
	return name
}
