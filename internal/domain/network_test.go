package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoBusNetwork(t *testing.T) *Network {
	t.Helper()
	n := NewNetwork("two", "two buses", DefaultBaseMVA)
	require.NoError(t, n.AddSubstation(&Substation{ID: "S1"}))
	require.NoError(t, n.AddVoltageLevel(&VoltageLevel{ID: "VL1", SubstationID: "S1", NominalV: 138}))
	require.NoError(t, n.AddVoltageLevel(&VoltageLevel{ID: "VL2", SubstationID: "S1", NominalV: 69}))
	require.NoError(t, n.AddBus(&Bus{ID: "B1", VoltageLevelID: "VL1"}))
	require.NoError(t, n.AddBus(&Bus{ID: "B2", VoltageLevelID: "VL2"}))
	require.NoError(t, n.AddBranch(&Branch{ID: "T1", Kind: BranchTransformer, Bus1ID: "B1", Bus2ID: "B2", X: 0.05, Ratio: 1, Connected: true}))
	require.NoError(t, n.AddGenerator(&Generator{ID: "G1", BusID: "B1", TargetP: 50, MaxP: 100, TargetV: 1.02, MinQ: -30, MaxQ: 30, VoltageRegulatorOn: true}))
	require.NoError(t, n.AddLoad(&Load{ID: "LD2", BusID: "B2", P0: 48, Q0: 12}))
	return n
}

func TestNetwork_Add(t *testing.T) {
	tests := []struct {
		name string
		add  func(n *Network) error
	}{
		{"duplicate id across kinds", func(n *Network) error {
			return n.AddLoad(&Load{ID: "B1", BusID: "B1"})
		}},
		{"empty id", func(n *Network) error {
			return n.AddSubstation(&Substation{})
		}},
		{"unknown substation", func(n *Network) error {
			return n.AddVoltageLevel(&VoltageLevel{ID: "VL9", SubstationID: "S9", NominalV: 20})
		}},
		{"unknown voltage level", func(n *Network) error {
			return n.AddBus(&Bus{ID: "B9", VoltageLevelID: "VL9"})
		}},
		{"unknown branch bus", func(n *Network) error {
			return n.AddBranch(&Branch{ID: "L9", Bus1ID: "B1", Bus2ID: "B9", X: 0.1})
		}},
		{"self loop", func(n *Network) error {
			return n.AddBranch(&Branch{ID: "L9", Bus1ID: "B1", Bus2ID: "B1", X: 0.1})
		}},
		{"unknown generator bus", func(n *Network) error {
			return n.AddGenerator(&Generator{ID: "G9", BusID: "B9"})
		}},
		{"unknown shunt bus", func(n *Network) error {
			return n.AddShunt(&ShuntCompensator{ID: "SH9", BusID: "B9"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := twoBusNetwork(t)
			err := tt.add(n)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNetwork))
		})
	}
}

func TestNetwork_Lookups(t *testing.T) {
	n := twoBusNetwork(t)

	b, ok := n.Bus("B2")
	require.True(t, ok)
	assert.False(t, b.Solved())
	assert.Equal(t, -1, b.Component)

	vl, ok := n.BusVoltageLevel("B2")
	require.True(t, ok)
	assert.Equal(t, 69.0, vl.NominalV)
	assert.Len(t, n.BusesOf("VL1"), 1)

	_, ok = n.Branch("missing")
	assert.False(t, ok)
	assert.Len(t, n.Transformers(), 1)
	assert.Empty(t, n.Lines())

	st := n.Stats()
	assert.Equal(t, Stats{Substations: 1, VoltageLevels: 2, Buses: 2, Transformers: 1, Generators: 1, Loads: 1}, st)
	assert.Equal(t, 1, st.Branches())

	p, q := n.TotalLoad()
	assert.Equal(t, 48.0, p)
	assert.Equal(t, 12.0, q)
	gp, _ := n.TotalGeneration()
	assert.Zero(t, gp)
}

func TestNetwork_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *Network)
	}{
		{"base", func(n *Network) { n.BaseMVA = 0 }},
		{"zero impedance", func(n *Network) { n.Branches[0].X = 0 }},
		{"transformer ratio", func(n *Network) { n.Branches[0].Ratio = 0 }},
		{"target voltage", func(n *Network) { n.Generators[0].TargetV = 0 }},
		{"reactive limits", func(n *Network) { n.Generators[0].MinQ = 40 }},
		{"nominal voltage", func(n *Network) { n.VoltageLevels[0].NominalV = -1 }},
		{"slack bus", func(n *Network) { n.SlackBusID = "B9" }},
	}

	require.NoError(t, twoBusNetwork(t).Validate())
	require.ErrorIs(t, NewNetwork("empty", "", 100).Validate(), ErrInvalidNetwork)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := twoBusNetwork(t)
			tt.mutate(n)
			require.ErrorIs(t, n.Validate(), ErrInvalidNetwork)
		})
	}
}

func TestNetwork_ResetState(t *testing.T) {
	n := twoBusNetwork(t)
	n.Buses[0].V, n.Buses[0].Angle, n.Buses[0].Component = 1.02, 0, 0
	n.Branches[0].P1 = 48
	n.Generators[0].P = 48

	n.ResetState()

	assert.False(t, n.Buses[0].Solved())
	assert.Equal(t, -1, n.Buses[0].Component)
	assert.True(t, math.IsNaN(n.Branches[0].P1))
	assert.True(t, math.IsNaN(n.Generators[0].P))
}

func TestLoadFlowResult(t *testing.T) {
	r := LoadFlowResult{Components: []ComponentResult{
		{ComponentNum: 0, Status: StatusConverged, Iterations: 4},
		{ComponentNum: 1, Status: StatusNoCalculation},
		{ComponentNum: 2, Status: StatusConverged, Iterations: 1},
	}}
	assert.True(t, r.Converged())
	assert.Equal(t, 5, r.Iterations())

	r.Components[0].Status = StatusMaxIterationReached
	assert.False(t, r.Converged())

	_, ok := LoadFlowResult{}.Main()
	assert.False(t, ok)
	assert.Equal(t, "TWO_WINDINGS_TRANSFORMER", BranchTransformer.String())
	assert.Equal(t, "LINE", BranchLine.String())
}
