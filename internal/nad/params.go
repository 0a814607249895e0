// Package nad draws network-area diagrams: one node per voltage level, one
// edge per line or transformer, placed by a seeded force-directed layout
// and written as SVG.
package nad

import (
	"fmt"

	"github.com/bft-labs/gridsim/internal/domain"
)

// Parameters control what a diagram shows and how it is laid out.
type Parameters struct {
	// EdgeNameDisplayed writes the branch name at the middle of each edge.
	EdgeNameDisplayed bool
	// IDDisplayed uses element ids instead of names in every label.
	IDDisplayed bool
	// EdgeInfoAlongEdge rotates the flow values to follow their edge.
	EdgeInfoAlongEdge bool
	// BusLegend writes the voltage and angle of each bus under its node.
	BusLegend bool
	// SubstationDescriptionDisplayed adds the substation name to node labels.
	SubstationDescriptionDisplayed bool

	PowerValuePrecision   int
	AngleValuePrecision   int
	CurrentValuePrecision int
	VoltageValuePrecision int

	// Width and Height of the canvas in px. Zero sizes the canvas from the
	// number of voltage levels.
	Width  int
	Height int
	// LayoutIterations is the number of force-directed steps.
	LayoutIterations int
	// Seed fixes the initial positions, so a network always gets the same
	// drawing.
	Seed int64
}

// Default layout settings.
const (
	DefaultLayoutIterations = 300
	DefaultSeed             = 1
)

// DefaultParameters returns the diagram settings used when nothing is
// configured.
func DefaultParameters() Parameters {
	return Parameters{
		EdgeNameDisplayed:              true,
		IDDisplayed:                    false,
		EdgeInfoAlongEdge:              true,
		BusLegend:                      true,
		SubstationDescriptionDisplayed: true,
		PowerValuePrecision:            1,
		AngleValuePrecision:            1,
		CurrentValuePrecision:          0,
		VoltageValuePrecision:          1,
		LayoutIterations:               DefaultLayoutIterations,
		Seed:                           DefaultSeed,
	}
}

// Validate checks that the parameters can drive a drawing.
func (p Parameters) Validate() error {
	precisions := []struct {
		name  string
		value int
	}{
		{"power", p.PowerValuePrecision},
		{"angle", p.AngleValuePrecision},
		{"current", p.CurrentValuePrecision},
		{"voltage", p.VoltageValuePrecision},
	}
	for _, pr := range precisions {
		if pr.value < 0 || pr.value > 6 {
			return fmt.Errorf("%w: %s value precision must be between 0 and 6, got %d", domain.ErrInvalidConfig, pr.name, pr.value)
		}
	}
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("%w: diagram size must not be negative", domain.ErrInvalidConfig)
	}
	if p.LayoutIterations <= 0 {
		return fmt.Errorf("%w: layout iterations must be positive", domain.ErrInvalidConfig)
	}
	return nil
}
