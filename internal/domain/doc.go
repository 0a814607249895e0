// Package domain contains the core entities of gridsim: the electrical
// network, its equipment and the load-flow results attached to it.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, logging, rendering) and holds only
// the data model and its invariants.
//
// # Entities
//
//   - [Network]: the grid, owning every element below
//   - [Substation], [VoltageLevel], [Bus]: the containment hierarchy
//   - [Line], [Transformer]: branches between two buses
//   - [Generator], [Load], [ShuntCompensator]: injections at one bus
//   - [LoadFlowResult]: per connected component solver outcome
//
// # Units
//
// Impedances and admittances are per-unit on [Network.BaseMVA]. Powers are
// MW and MVar, nominal voltages kV, angles degrees and currents amperes.
// Solved values are NaN until a load flow has written them.
package domain
