package ports

import (
	"context"
	"time"

	"github.com/bft-labs/gridsim/internal/domain"
)

// NetworkFactory produces a network instance.
// Implementations must be deterministic for a given configuration.
type NetworkFactory interface {
	Create(ctx context.Context) (*domain.Network, error)
}

// LoadFlowSolver computes the steady state of a network.
// Run mutates the network in place: bus voltages, branch flows and
// generator outputs are written on success. A non-converged main component
// is reported as an error wrapping domain.ErrNotConverged.
type LoadFlowSolver interface {
	Run(ctx context.Context, network *domain.Network) (domain.LoadFlowResult, error)
}

// DiagramRenderer draws a network to a file.
// The file at path is replaced only when drawing succeeds; on error no
// partial file is left behind. Returns the number of bytes written.
type DiagramRenderer interface {
	Draw(ctx context.Context, network *domain.Network, path string) (int64, error)
}

// FileWriter writes a whole file atomically.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// Recorder receives pipeline measurements.
// Implementations must be safe for concurrent use.
type Recorder interface {
	ObserveStep(step string, status string, duration time.Duration)
	ObserveRun(status string, duration time.Duration)
	ObserveNetwork(stats domain.Stats)
	ObserveLoadFlow(result domain.LoadFlowResult)
	ObserveDiagram(bytes int64)
}
