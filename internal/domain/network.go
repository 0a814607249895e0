package domain

import (
	"fmt"
	"math"
)

// DefaultBaseMVA is the system base used by the built-in cases.
const DefaultBaseMVA = 100.0

// Network is an in-memory electrical grid: its containment hierarchy,
// branches and injections, plus the state written by a load flow.
//
// Elements are kept in insertion order so that every consumer iterating a
// Network sees the same sequence. Use the Add methods to populate it; they
// maintain the id indexes.
type Network struct {
	ID      string
	Name    string
	BaseMVA float64

	// SlackBusID names the reference bus of the case. A load flow uses it
	// for the component holding it when the bus has a voltage regulating
	// generator. Empty lets the solver choose.
	SlackBusID string

	Substations   []*Substation
	VoltageLevels []*VoltageLevel
	Buses         []*Bus
	Branches      []*Branch
	Generators    []*Generator
	Loads         []*Load
	Shunts        []*ShuntCompensator

	ids           map[string]struct{}
	substations   map[string]*Substation
	voltageLevels map[string]*VoltageLevel
	buses         map[string]*Bus
	branches      map[string]*Branch
}

// NewNetwork creates an empty network with the given id and base MVA.
func NewNetwork(id, name string, baseMVA float64) *Network {
	return &Network{
		ID:            id,
		Name:          name,
		BaseMVA:       baseMVA,
		ids:           make(map[string]struct{}),
		substations:   make(map[string]*Substation),
		voltageLevels: make(map[string]*VoltageLevel),
		buses:         make(map[string]*Bus),
		branches:      make(map[string]*Branch),
	}
}

func (n *Network) claim(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidNetwork)
	}
	if _, ok := n.ids[id]; ok {
		return fmt.Errorf("%w: duplicate id %q", ErrInvalidNetwork, id)
	}
	n.ids[id] = struct{}{}
	return nil
}

// AddSubstation appends a substation.
func (n *Network) AddSubstation(s *Substation) error {
	if err := n.claim(s.ID); err != nil {
		return err
	}
	n.Substations = append(n.Substations, s)
	n.substations[s.ID] = s
	return nil
}

// AddVoltageLevel appends a voltage level. Its substation must exist.
func (n *Network) AddVoltageLevel(vl *VoltageLevel) error {
	if _, ok := n.substations[vl.SubstationID]; !ok {
		return fmt.Errorf("%w: voltage level %s: unknown substation %q", ErrInvalidNetwork, vl.ID, vl.SubstationID)
	}
	if err := n.claim(vl.ID); err != nil {
		return err
	}
	n.VoltageLevels = append(n.VoltageLevels, vl)
	n.voltageLevels[vl.ID] = vl
	return nil
}

// AddBus appends a bus with unsolved state. Its voltage level must exist.
func (n *Network) AddBus(b *Bus) error {
	if _, ok := n.voltageLevels[b.VoltageLevelID]; !ok {
		return fmt.Errorf("%w: bus %s: unknown voltage level %q", ErrInvalidNetwork, b.ID, b.VoltageLevelID)
	}
	if err := n.claim(b.ID); err != nil {
		return err
	}
	b.resetState()
	n.Buses = append(n.Buses, b)
	n.buses[b.ID] = b
	return nil
}

// AddBranch appends a line or transformer. Both buses must exist.
func (n *Network) AddBranch(br *Branch) error {
	if err := n.checkBus(br.ID, br.Bus1ID); err != nil {
		return err
	}
	if err := n.checkBus(br.ID, br.Bus2ID); err != nil {
		return err
	}
	if br.Bus1ID == br.Bus2ID {
		return fmt.Errorf("%w: branch %s connects bus %s to itself", ErrInvalidNetwork, br.ID, br.Bus1ID)
	}
	if err := n.claim(br.ID); err != nil {
		return err
	}
	br.resetState()
	n.Branches = append(n.Branches, br)
	n.branches[br.ID] = br
	return nil
}

// AddGenerator appends a generator.
func (n *Network) AddGenerator(g *Generator) error {
	if err := n.checkBus(g.ID, g.BusID); err != nil {
		return err
	}
	if err := n.claim(g.ID); err != nil {
		return err
	}
	g.resetState()
	n.Generators = append(n.Generators, g)
	return nil
}

// AddLoad appends a load.
func (n *Network) AddLoad(l *Load) error {
	if err := n.checkBus(l.ID, l.BusID); err != nil {
		return err
	}
	if err := n.claim(l.ID); err != nil {
		return err
	}
	n.Loads = append(n.Loads, l)
	return nil
}

// AddShunt appends a shunt compensator.
func (n *Network) AddShunt(s *ShuntCompensator) error {
	if err := n.checkBus(s.ID, s.BusID); err != nil {
		return err
	}
	if err := n.claim(s.ID); err != nil {
		return err
	}
	n.Shunts = append(n.Shunts, s)
	return nil
}

func (n *Network) checkBus(owner, busID string) error {
	if _, ok := n.buses[busID]; !ok {
		return fmt.Errorf("%w: %s: unknown bus %q", ErrInvalidNetwork, owner, busID)
	}
	return nil
}

// Substation returns the substation with the given id.
func (n *Network) Substation(id string) (*Substation, bool) {
	s, ok := n.substations[id]
	return s, ok
}

// VoltageLevel returns the voltage level with the given id.
func (n *Network) VoltageLevel(id string) (*VoltageLevel, bool) {
	vl, ok := n.voltageLevels[id]
	return vl, ok
}

// Bus returns the bus with the given id.
func (n *Network) Bus(id string) (*Bus, bool) {
	b, ok := n.buses[id]
	return b, ok
}

// Branch returns the line or transformer with the given id.
func (n *Network) Branch(id string) (*Branch, bool) {
	br, ok := n.branches[id]
	return br, ok
}

// BusVoltageLevel returns the voltage level a bus belongs to.
func (n *Network) BusVoltageLevel(busID string) (*VoltageLevel, bool) {
	b, ok := n.buses[busID]
	if !ok {
		return nil, false
	}
	return n.VoltageLevel(b.VoltageLevelID)
}

// BusesOf returns the buses of a voltage level in insertion order.
func (n *Network) BusesOf(voltageLevelID string) []*Bus {
	var out []*Bus
	for _, b := range n.Buses {
		if b.VoltageLevelID == voltageLevelID {
			out = append(out, b)
		}
	}
	return out
}

// Lines returns the branches of kind BranchLine.
func (n *Network) Lines() []*Branch {
	return n.branchesOfKind(BranchLine)
}

// Transformers returns the branches of kind BranchTransformer.
func (n *Network) Transformers() []*Branch {
	return n.branchesOfKind(BranchTransformer)
}

func (n *Network) branchesOfKind(kind BranchKind) []*Branch {
	var out []*Branch
	for _, br := range n.Branches {
		if br.Kind == kind {
			out = append(out, br)
		}
	}
	return out
}

// Validate checks the structural invariants the Add methods cannot see on
// their own: a positive base and electrically meaningful parameters.
func (n *Network) Validate() error {
	if n.BaseMVA <= 0 {
		return fmt.Errorf("%w: base MVA must be positive, got %v", ErrInvalidNetwork, n.BaseMVA)
	}
	if len(n.Buses) == 0 {
		return fmt.Errorf("%w: no buses", ErrInvalidNetwork)
	}
	if n.SlackBusID != "" {
		if _, ok := n.buses[n.SlackBusID]; !ok {
			return fmt.Errorf("%w: unknown slack bus %s", ErrInvalidNetwork, n.SlackBusID)
		}
	}
	for _, vl := range n.VoltageLevels {
		if vl.NominalV <= 0 {
			return fmt.Errorf("%w: voltage level %s: nominal voltage must be positive", ErrInvalidNetwork, vl.ID)
		}
	}
	for _, br := range n.Branches {
		if br.R == 0 && br.X == 0 {
			return fmt.Errorf("%w: branch %s: zero impedance", ErrInvalidNetwork, br.ID)
		}
		if br.Kind == BranchTransformer && br.Ratio <= 0 {
			return fmt.Errorf("%w: transformer %s: ratio must be positive", ErrInvalidNetwork, br.ID)
		}
	}
	for _, g := range n.Generators {
		if g.VoltageRegulatorOn && g.TargetV <= 0 {
			return fmt.Errorf("%w: generator %s: target voltage must be positive", ErrInvalidNetwork, g.ID)
		}
		if g.MinQ > g.MaxQ {
			return fmt.Errorf("%w: generator %s: min Q above max Q", ErrInvalidNetwork, g.ID)
		}
	}
	return nil
}

// ResetState clears every value written by a load flow.
func (n *Network) ResetState() {
	for _, b := range n.Buses {
		b.resetState()
	}
	for _, br := range n.Branches {
		br.resetState()
	}
	for _, g := range n.Generators {
		g.resetState()
	}
}

// Stats summarizes the network composition.
type Stats struct {
	Substations   int `json:"substations"`
	VoltageLevels int `json:"voltage_levels"`
	Buses         int `json:"buses"`
	Lines         int `json:"lines"`
	Transformers  int `json:"transformers"`
	Generators    int `json:"generators"`
	Loads         int `json:"loads"`
	Shunts        int `json:"shunts"`
}

// Branches returns the total number of lines and transformers.
func (s Stats) Branches() int { return s.Lines + s.Transformers }

// Stats counts the network elements.
func (n *Network) Stats() Stats {
	st := Stats{
		Substations:   len(n.Substations),
		VoltageLevels: len(n.VoltageLevels),
		Buses:         len(n.Buses),
		Generators:    len(n.Generators),
		Loads:         len(n.Loads),
		Shunts:        len(n.Shunts),
	}
	for _, br := range n.Branches {
		if br.Kind == BranchTransformer {
			st.Transformers++
		} else {
			st.Lines++
		}
	}
	return st
}

// TotalLoad returns the active and reactive power consumed by all loads.
func (n *Network) TotalLoad() (p, q float64) {
	for _, l := range n.Loads {
		p += l.P0
		q += l.Q0
	}
	return p, q
}

// TotalGeneration returns the solved active and reactive generation.
// Unsolved generators are skipped.
func (n *Network) TotalGeneration() (p, q float64) {
	for _, g := range n.Generators {
		if math.IsNaN(g.P) {
			continue
		}
		p += g.P
		q += g.Q
	}
	return p, q
}
