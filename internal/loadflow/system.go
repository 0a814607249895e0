package loadflow

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/bft-labs/gridsim/internal/domain"
)

type busType int

const (
	busPQ busType = iota
	busPV
	busSlack
)

func (t busType) String() string {
	switch t {
	case busPV:
		return "PV"
	case busSlack:
		return "SLACK"
	default:
		return "PQ"
	}
}

// entry is one non-zero of a bus admittance matrix row.
type entry struct {
	k int
	y complex128
}

// genState is a generator with its working active power target in MW.
type genState struct {
	g *domain.Generator
	p float64
}

// node is a bus of the component being solved.
type node struct {
	bus  *domain.Bus
	kind busType

	// switched marks a regulated bus moved to PQ by a reactive limit, with
	// its generators at qFixed MVar.
	switched bool
	qFixed   float64
	atMaxQ   bool

	vTarget float64
	loadP   float64
	loadQ   float64
	nomV    float64
	gens    []*genState

	v     float64
	theta float64

	row []entry
	yii complex128
}

// branchModel is a connected branch in pi form, in pu.
type branchModel struct {
	br                 *domain.Branch
	f, t               int
	yff, yft, ytf, ytt complex128
}

// system is one connected component ready to be solved.
type system struct {
	baseMVA  float64
	nodes    []*node
	index    map[string]int
	branches []branchModel
	gens     []*genState
	slack    int
	slackGen *genState
}

// newSystem builds the admittance model of one island. It returns false
// when the island has no voltage regulating generator to act as slack.
func newSystem(n *domain.Network, buses []*domain.Bus) (*system, bool) {
	s := &system{
		baseMVA: n.BaseMVA,
		index:   make(map[string]int, len(buses)),
		slack:   -1,
	}
	for i, b := range buses {
		vl, _ := n.BusVoltageLevel(b.ID)
		s.nodes = append(s.nodes, &node{bus: b, kind: busPQ, nomV: vl.NominalV, v: 1})
		s.index[b.ID] = i
	}

	for _, l := range n.Loads {
		if i, ok := s.index[l.BusID]; ok {
			s.nodes[i].loadP += l.P0
			s.nodes[i].loadQ += l.Q0
		}
	}

	for _, g := range n.Generators {
		i, ok := s.index[g.BusID]
		if !ok {
			continue
		}
		gs := &genState{g: g, p: g.TargetP}
		s.gens = append(s.gens, gs)
		nd := s.nodes[i]
		nd.gens = append(nd.gens, gs)
		if !g.VoltageRegulatorOn {
			continue
		}
		if nd.kind == busPQ {
			nd.kind = busPV
			nd.vTarget = g.TargetV
		}
		if s.slackGen == nil || g.MaxP > s.slackGen.g.MaxP {
			s.slackGen = gs
			s.slack = i
		}
	}
	if s.slackGen == nil {
		return s, false
	}
	if i, ok := s.index[n.SlackBusID]; ok {
		for _, gs := range s.nodes[i].gens {
			if gs.g.VoltageRegulatorOn {
				s.slackGen, s.slack = gs, i
				break
			}
		}
	}
	s.nodes[s.slack].kind = busSlack

	rows := make([]map[int]complex128, len(s.nodes))
	for i := range rows {
		rows[i] = make(map[int]complex128)
	}
	for _, br := range n.Branches {
		if !br.Connected {
			continue
		}
		f, okf := s.index[br.Bus1ID]
		t, okt := s.index[br.Bus2ID]
		if !okf || !okt {
			continue
		}
		m := piModel(br)
		m.f, m.t = f, t
		s.branches = append(s.branches, m)
		rows[f][f] += m.yff
		rows[f][t] += m.yft
		rows[t][f] += m.ytf
		rows[t][t] += m.ytt
	}
	for _, sh := range n.Shunts {
		if i, ok := s.index[sh.BusID]; ok {
			rows[i][i] += complex(sh.G, sh.B) / complex(s.baseMVA, 0)
		}
	}

	for i, nd := range s.nodes {
		cols := make([]int, 0, len(rows[i]))
		for k := range rows[i] {
			cols = append(cols, k)
		}
		sort.Ints(cols)
		for _, k := range cols {
			nd.row = append(nd.row, entry{k: k, y: rows[i][k]})
		}
		nd.yii = rows[i][i]
	}
	return s, true
}

// piModel returns the branch admittances with the tap on side 1:
// a ratio t = ratio*e^(j*shift) seen from bus 1.
func piModel(br *domain.Branch) branchModel {
	ys := 1 / complex(br.R, br.X)
	ych := complex(0, br.B/2)
	ratio := br.Ratio
	if ratio == 0 {
		ratio = 1
	}
	tap := cmplx.Rect(ratio, br.PhaseShift*math.Pi/180)
	return branchModel{
		br:  br,
		yff: (ys + ych) / complex(ratio*ratio, 0),
		yft: -ys / cmplx.Conj(tap),
		ytf: -ys / tap,
		ytt: ys + ych,
	}
}

// initUniform sets the flat start.
func (s *system) initUniform() {
	for _, nd := range s.nodes {
		nd.theta = 0
		nd.v = 1
		if nd.kind != busPQ {
			nd.v = nd.vTarget
		}
	}
}

// injection returns the power flowing from bus i into the network, in pu.
func (s *system) injection(i int) (p, q float64) {
	nd := s.nodes[i]
	for _, e := range nd.row {
		other := s.nodes[e.k]
		th := nd.theta - other.theta
		sin, cos := math.Sincos(th)
		g, b := real(e.y), imag(e.y)
		p += other.v * (g*cos + b*sin)
		q += other.v * (g*sin - b*cos)
	}
	return nd.v * p, nd.v * q
}

// specP returns the scheduled active injection at bus i, in pu.
func (s *system) specP(i int) float64 {
	nd := s.nodes[i]
	p := -nd.loadP
	for _, g := range nd.gens {
		p += g.p
	}
	return p / s.baseMVA
}

// specQ returns the scheduled reactive injection at PQ bus i, in pu.
// Generators that do not regulate voltage produce no reactive power.
func (s *system) specQ(i int) float64 {
	nd := s.nodes[i]
	q := -nd.loadQ
	if nd.switched {
		q += nd.qFixed
	}
	return q / s.baseMVA
}

// slackMismatch returns the active power, in MW, the slack bus produces
// beyond the targets of its generators.
func (s *system) slackMismatch() float64 {
	p, _ := s.injection(s.slack)
	return (p - s.specP(s.slack)) * s.baseMVA
}

// reactiveRange sums the limits of the regulating generators at bus i.
func (nd *node) reactiveRange() (minQ, maxQ float64) {
	for _, g := range nd.gens {
		if g.g.VoltageRegulatorOn {
			minQ += g.g.MinQ
			maxQ += g.g.MaxQ
		}
	}
	return minQ, maxQ
}
