// Package network builds the standard test networks and computes their
// topology.
package network

import (
	"fmt"
	"sort"

	"github.com/bft-labs/gridsim/internal/domain"
)

// busSpec describes a bus of a tabular case.
type busSpec struct {
	num      int
	nominalV float64
	pd, qd   float64 // load MW, MVar
	gs, bs   float64 // shunt MW, MVar at 1 pu
}

// branchSpec describes a line or transformer of a tabular case.
// A zero ratio means a line unless the two buses have different nominal
// voltages.
type branchSpec struct {
	from, to  int
	r, x, b   float64
	ratio     float64
	angle     float64
	transform bool
}

// genSpec describes a generator of a tabular case.
type genSpec struct {
	bus        int
	pg         float64
	qmax, qmin float64
	vg         float64
	pmax       float64
}

// caseSpec is a tabular case in the usual bus/branch/gen layout.
type caseSpec struct {
	id       string
	name     string
	baseMVA  float64
	slack    int // reference bus number, 0 when the solver picks one
	buses    []busSpec
	branches []branchSpec
	gens     []genSpec
}

func busID(num int) string          { return fmt.Sprintf("B%d", num) }
func voltageLevelID(num int) string { return fmt.Sprintf("VL%d", num) }
func substationID(num int) string   { return fmt.Sprintf("S%d", num) }

// build turns a case into a Network.
//
// Each bus gets its own voltage level. Buses joined by transformers share a
// substation, named after the lowest bus number of the group.
func (c caseSpec) build() (*domain.Network, error) {
	n := domain.NewNetwork(c.id, c.name, c.baseMVA)

	nominal := make(map[int]float64, len(c.buses))
	for _, b := range c.buses {
		nominal[b.num] = b.nominalV
	}

	groups := newUnionFind()
	for _, b := range c.buses {
		groups.add(b.num)
	}
	for _, br := range c.branches {
		if c.isTransformer(br, nominal) {
			groups.union(br.from, br.to)
		}
	}

	// Substations in order of their lowest bus number
	roots := make(map[int]bool)
	for _, b := range c.buses {
		roots[groups.find(b.num)] = true
	}
	ordered := make([]int, 0, len(roots))
	for r := range roots {
		ordered = append(ordered, r)
	}
	sort.Ints(ordered)
	for _, r := range ordered {
		if err := n.AddSubstation(&domain.Substation{ID: substationID(r), Name: fmt.Sprintf("Substation %d", r)}); err != nil {
			return nil, err
		}
	}

	for _, b := range c.buses {
		vl := &domain.VoltageLevel{
			ID:           voltageLevelID(b.num),
			Name:         fmt.Sprintf("Bus %d %.0fkV", b.num, b.nominalV),
			SubstationID: substationID(groups.find(b.num)),
			NominalV:     b.nominalV,
		}
		if err := n.AddVoltageLevel(vl); err != nil {
			return nil, err
		}
		if err := n.AddBus(&domain.Bus{ID: busID(b.num), Name: fmt.Sprintf("Bus %d", b.num), VoltageLevelID: vl.ID}); err != nil {
			return nil, err
		}
		if b.pd != 0 || b.qd != 0 {
			if err := n.AddLoad(&domain.Load{ID: fmt.Sprintf("LOAD%d", b.num), BusID: busID(b.num), P0: b.pd, Q0: b.qd}); err != nil {
				return nil, err
			}
		}
		if b.gs != 0 || b.bs != 0 {
			if err := n.AddShunt(&domain.ShuntCompensator{ID: fmt.Sprintf("SHUNT%d", b.num), BusID: busID(b.num), G: b.gs, B: b.bs}); err != nil {
				return nil, err
			}
		}
	}

	seen := make(map[string]int)
	for _, br := range c.branches {
		kind := domain.BranchLine
		prefix := "L"
		if c.isTransformer(br, nominal) {
			kind = domain.BranchTransformer
			prefix = "T"
		}
		id := fmt.Sprintf("%s%d-%d", prefix, br.from, br.to)
		seen[id]++
		if seen[id] > 1 {
			id = fmt.Sprintf("%s-%d", id, seen[id])
		}
		ratio := br.ratio
		if ratio == 0 {
			ratio = 1
		}
		err := n.AddBranch(&domain.Branch{
			ID:         id,
			Name:       id,
			Kind:       kind,
			Bus1ID:     busID(br.from),
			Bus2ID:     busID(br.to),
			R:          br.r,
			X:          br.x,
			B:          br.b,
			Ratio:      ratio,
			PhaseShift: br.angle,
			Connected:  true,
		})
		if err != nil {
			return nil, err
		}
	}

	genCount := make(map[int]int)
	for _, g := range c.gens {
		genCount[g.bus]++
		id := fmt.Sprintf("GEN%d", g.bus)
		if genCount[g.bus] > 1 {
			id = fmt.Sprintf("%s-%d", id, genCount[g.bus])
		}
		err := n.AddGenerator(&domain.Generator{
			ID:                 id,
			BusID:              busID(g.bus),
			TargetP:            g.pg,
			MinP:               0,
			MaxP:               g.pmax,
			TargetV:            g.vg,
			MinQ:               g.qmin,
			MaxQ:               g.qmax,
			VoltageRegulatorOn: true,
		})
		if err != nil {
			return nil, err
		}
	}

	if c.slack != 0 {
		n.SlackBusID = busID(c.slack)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func (c caseSpec) isTransformer(br branchSpec, nominal map[int]float64) bool {
	return br.transform || br.ratio != 0 || br.angle != 0 || nominal[br.from] != nominal[br.to]
}

// unionFind groups integers into disjoint sets.
type unionFind struct {
	parent map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int]int)}
}

func (u *unionFind) add(x int) {
	if _, ok := u.parent[x]; !ok {
		u.parent[x] = x
	}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// union keeps the smaller root so group names are stable.
func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
}
