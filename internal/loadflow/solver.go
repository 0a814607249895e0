package loadflow

import (
	"context"
	"errors"
	"fmt"
	"math"

	logadapter "github.com/bft-labs/gridsim/internal/adapters/log"
	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/network"
	"github.com/bft-labs/gridsim/internal/ports"
)

// Solver runs load flows with fixed parameters.
// It implements ports.LoadFlowSolver.
type Solver struct {
	params Parameters
	logger ports.Logger
}

// NewSolver creates a solver. A nil logger discards log output.
func NewSolver(params Parameters, logger ports.Logger) (*Solver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logadapter.NewNoopLogger()
	}
	return &Solver{params: params, logger: logger}, nil
}

// Parameters returns the solver settings.
func (s *Solver) Parameters() Parameters {
	return s.params
}

// Run solves every connected component of the network and writes the
// solved state back into it. Components are solved independently, each
// with its own slack bus. A component without a voltage regulating
// generator is not calculated and keeps NaN voltages.
//
// The returned error wraps domain.ErrNotConverged when the main component
// does not converge, and domain.ErrNoSlackBus when it cannot be calculated.
// The result is returned in both cases.
func (s *Solver) Run(ctx context.Context, n *domain.Network) (domain.LoadFlowResult, error) {
	n.ResetState()
	islands := network.ConnectedComponents(n)

	var result domain.LoadFlowResult
	var mainCause error
	for num, buses := range islands {
		cr := domain.ComponentResult{ComponentNum: num, BusCount: len(buses)}

		sys, ok := newSystem(n, buses)
		if !ok {
			cr.Status = domain.StatusNoCalculation
			cr.StatusText = "no voltage regulating generator"
			result.Components = append(result.Components, cr)
			continue
		}
		cr.SlackBusID = sys.nodes[sys.slack].bus.ID

		var cause error
		if s.params.DC {
			cause = s.solveDC(sys, &cr)
		} else {
			cause = s.solveAC(ctx, sys, &cr)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if num == 0 {
			mainCause = cause
		}
		result.Components = append(result.Components, cr)

		s.logger.Debug("component solved",
			ports.Int("component", num),
			ports.Int("buses", cr.BusCount),
			ports.String("status", string(cr.Status)),
			ports.Int("iterations", cr.Iterations),
			ports.String("slack_bus", cr.SlackBusID),
			ports.Float64("slack_mismatch_mw", cr.SlackBusActivePowerMismatch),
		)
		if num > 0 && cr.Status != domain.StatusConverged {
			s.logger.Warn("component did not converge",
				ports.Int("component", num),
				ports.String("status", string(cr.Status)),
				ports.String("reason", cr.StatusText),
			)
		}
	}

	main, ok := result.Main()
	switch {
	case !ok:
		return result, fmt.Errorf("%w: network has no buses", domain.ErrInvalidNetwork)
	case main.Status == domain.StatusNoCalculation:
		return result, fmt.Errorf("%w: main component", domain.ErrNoSlackBus)
	case main.Status != domain.StatusConverged && mainCause != nil:
		return result, fmt.Errorf("%w: main component %s: %w", domain.ErrNotConverged, main.Status, mainCause)
	case main.Status != domain.StatusConverged:
		return result, fmt.Errorf("%w: main component %s: %s", domain.ErrNotConverged, main.Status, main.StatusText)
	}
	return result, nil
}

// solveAC runs Newton-Raphson inside the outer loops: slack distribution
// first, then reactive limits, until neither changes the system.
// The returned error is the cause of a failed solve, also summarized in cr.
func (s *Solver) solveAC(ctx context.Context, sys *system, cr *domain.ComponentResult) error {
	sys.initUniform()
	if s.params.VoltageInit == VoltageInitDC {
		if err := sys.dcAngles(); err != nil {
			sys.initUniform()
			s.logger.Debug("dc voltage init failed, using flat start", ports.Err(err))
		}
	}

	for outer := 0; ; outer++ {
		iters, err := sys.newton(ctx, s.params)
		cr.Iterations += iters
		if err != nil {
			cr.Status, cr.StatusText = statusOf(err)
			cr.SlackBusActivePowerMismatch = math.NaN()
			return err
		}

		changed := false
		if s.params.DistributedSlack {
			if mismatch := sys.slackMismatch(); math.Abs(mismatch) > s.params.SlackMismatch {
				if d := sys.distributeSlack(mismatch); d != 0 {
					cr.DistributedActivePower += d
					changed = true
				}
			}
		}
		if !changed && s.params.ReactiveLimits {
			if switched := sys.checkReactiveLimits(); switched > 0 {
				s.logger.Debug("buses switched to PQ", ports.Int("count", switched))
				changed = true
			}
		}

		if !changed {
			cr.Status = domain.StatusConverged
			break
		}
		if outer+1 >= s.params.MaxOuterIterations {
			cr.Status = domain.StatusMaxIterationReached
			cr.StatusText = "outer loop iterations exhausted"
			break
		}
	}

	cr.SlackBusActivePowerMismatch = sys.slackMismatch()
	if cr.Status == domain.StatusConverged {
		sys.writeAC()
	}
	return nil
}

// solveDC runs the linear approximation, distributing the slack once.
func (s *Solver) solveDC(sys *system, cr *domain.ComponentResult) error {
	if err := sys.dcAngles(); err != nil {
		cr.Status, cr.StatusText = statusOf(err)
		return err
	}
	cr.Iterations = 1

	if s.params.DistributedSlack {
		if mismatch := sys.dcSlackMismatch(); math.Abs(mismatch) > s.params.SlackMismatch {
			cr.DistributedActivePower = sys.distributeSlack(mismatch)
			if err := sys.dcAngles(); err != nil {
				cr.Status, cr.StatusText = statusOf(err)
				return err
			}
			cr.Iterations++
		}
	}

	cr.Status = domain.StatusConverged
	cr.SlackBusActivePowerMismatch = sys.dcSlackMismatch()
	sys.writeDC()
	return nil
}

func statusOf(err error) (domain.ComponentStatus, string) {
	switch {
	case errors.Is(err, errMaxIterations):
		return domain.StatusMaxIterationReached, err.Error()
	default:
		return domain.StatusFailed, err.Error()
	}
}
