// Package loadflow computes the steady state of a network with a polar
// Newton-Raphson AC load flow, or a linear DC load flow.
package loadflow

import (
	"fmt"

	"github.com/bft-labs/gridsim/internal/domain"
)

// VoltageInitMode selects the starting point of the Newton iterations.
type VoltageInitMode string

const (
	// VoltageInitUniform starts from 1 pu on PQ buses, the target voltage on
	// regulated buses and zero angles.
	VoltageInitUniform VoltageInitMode = "uniform"
	// VoltageInitDC takes the angles from a DC load flow.
	VoltageInitDC VoltageInitMode = "dc"
)

// Default solver settings.
const (
	DefaultTolerance          = 1e-6
	DefaultMaxIterations      = 15
	DefaultMaxOuterIterations = 20
	// DefaultSlackMismatch is the slack active power, in MW, above which it
	// is distributed over the generators.
	DefaultSlackMismatch = 1.0
)

// Parameters configures a load flow.
type Parameters struct {
	// DC solves the linear DC approximation only.
	DC bool
	// VoltageInit is the Newton starting point. Ignored in DC mode.
	VoltageInit VoltageInitMode
	// Tolerance is the largest bus power mismatch, in pu, accepted as
	// converged.
	Tolerance float64
	// MaxIterations bounds Newton iterations per outer iteration.
	MaxIterations int
	// MaxOuterIterations bounds slack distribution and reactive limit rounds.
	MaxOuterIterations int
	// DistributedSlack spreads the slack active power over generators in
	// proportion to their maximum active power.
	DistributedSlack bool
	// SlackMismatch is the distribution threshold in MW.
	SlackMismatch float64
	// ReactiveLimits switches regulated buses to fixed reactive power when
	// a generator limit is reached.
	ReactiveLimits bool
}

// DefaultParameters returns the settings used when nothing is configured.
func DefaultParameters() Parameters {
	return Parameters{
		VoltageInit:        VoltageInitUniform,
		Tolerance:          DefaultTolerance,
		MaxIterations:      DefaultMaxIterations,
		MaxOuterIterations: DefaultMaxOuterIterations,
		DistributedSlack:   true,
		SlackMismatch:      DefaultSlackMismatch,
		ReactiveLimits:     true,
	}
}

// Validate checks that the parameters can drive a solve.
func (p Parameters) Validate() error {
	if p.VoltageInit != VoltageInitUniform && p.VoltageInit != VoltageInitDC {
		return fmt.Errorf("%w: voltage init mode must be %q or %q, got %q",
			domain.ErrInvalidConfig, VoltageInitUniform, VoltageInitDC, p.VoltageInit)
	}
	if p.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive", domain.ErrInvalidConfig)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations must be positive", domain.ErrInvalidConfig)
	}
	if p.MaxOuterIterations <= 0 {
		return fmt.Errorf("%w: max outer iterations must be positive", domain.ErrInvalidConfig)
	}
	if p.SlackMismatch < 0 {
		return fmt.Errorf("%w: slack mismatch must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}
