package domain

import "math"

// Substation groups voltage levels that share a physical site.
type Substation struct {
	ID      string
	Name    string
	Country string
}

// VoltageLevel is a set of buses at one nominal voltage inside a substation.
type VoltageLevel struct {
	ID           string
	Name         string
	SubstationID string

	// NominalV is the nominal voltage in kV.
	NominalV float64
}

// Bus is an electrical node.
type Bus struct {
	ID             string
	Name           string
	VoltageLevelID string

	// V is the solved voltage magnitude in per-unit.
	V float64
	// Angle is the solved voltage angle in degrees.
	Angle float64
	// Component is the connected component number, -1 until computed.
	Component int
}

func (b *Bus) resetState() {
	b.V = math.NaN()
	b.Angle = math.NaN()
	b.Component = -1
}

// Solved reports whether a load flow has written a voltage for the bus.
func (b *Bus) Solved() bool {
	return !math.IsNaN(b.V)
}

// BranchKind distinguishes lines from transformers.
type BranchKind int

const (
	BranchLine BranchKind = iota
	BranchTransformer
)

// String returns the IIDM-style name of the kind.
func (k BranchKind) String() string {
	switch k {
	case BranchLine:
		return "LINE"
	case BranchTransformer:
		return "TWO_WINDINGS_TRANSFORMER"
	default:
		return "UNKNOWN"
	}
}

// Branch is a line or a two-winding transformer, modelled as a pi section
// with an ideal transformer on side 1.
type Branch struct {
	ID     string
	Name   string
	Kind   BranchKind
	Bus1ID string
	Bus2ID string

	// R and X are the series resistance and reactance in per-unit.
	R float64
	X float64
	// B is the total line charging susceptance in per-unit.
	B float64
	// Ratio is the off-nominal turns ratio on side 1. Lines use 1.
	Ratio float64
	// PhaseShift is the transformer phase shift in degrees.
	PhaseShift float64

	Connected bool

	// Solved flows, positive when entering the branch. MW, MVar, A.
	P1, Q1 float64
	P2, Q2 float64
	I1, I2 float64
}

func (br *Branch) resetState() {
	nan := math.NaN()
	br.P1, br.Q1, br.P2, br.Q2, br.I1, br.I2 = nan, nan, nan, nan, nan, nan
}

// Losses returns the active power lost in the branch, in MW.
func (br *Branch) Losses() float64 {
	return br.P1 + br.P2
}

// Generator injects power at a bus. P and Q follow the generator sign
// convention: positive when produced.
type Generator struct {
	ID    string
	Name  string
	BusID string

	TargetP float64
	MinP    float64
	MaxP    float64
	// TargetV is the regulated voltage in per-unit.
	TargetV            float64
	MinQ               float64
	MaxQ               float64
	VoltageRegulatorOn bool

	P float64
	Q float64
}

func (g *Generator) resetState() {
	g.P = math.NaN()
	g.Q = math.NaN()
}

// Load consumes constant power at a bus.
type Load struct {
	ID    string
	Name  string
	BusID string

	P0 float64
	Q0 float64
}

// ShuntCompensator is a fixed admittance to ground. G and B are the MW and
// MVar drawn (G) or injected (B, capacitive positive) at 1 pu voltage.
type ShuntCompensator struct {
	ID    string
	Name  string
	BusID string

	G float64
	B float64
}
