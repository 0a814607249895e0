package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	logadapter "github.com/bft-labs/gridsim/internal/adapters/log"
	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/ports"
)

// DefaultOutputPath is the diagram written when no output is configured,
// relative to the working directory.
const DefaultOutputPath = "single-eu.svg"

// Pipeline steps, in execution order.
const (
	StepCreateNetwork = "create_network"
	StepRunLoadFlow   = "run_loadflow"
	StepDrawDiagram   = "draw_diagram"
)

// Metric statuses of steps and runs.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// stepLabels prefix step errors.
var stepLabels = map[string]string{
	StepCreateNetwork: "create network",
	StepRunLoadFlow:   "run load flow",
	StepDrawDiagram:   "draw diagram",
}

// RunnerConfig contains configuration for the runner.
type RunnerConfig struct {
	// OutputPath is where the diagram is written. Empty means DefaultOutputPath.
	OutputPath string
}

// StepTiming is the wall time of one pipeline step.
type StepTiming struct {
	Step     string        `json:"step"`
	Duration time.Duration `json:"duration"`
}

// Report describes one pipeline run.
type Report struct {
	RunID        string                `json:"run_id"`
	NetworkID    string                `json:"network_id"`
	Buses        int                   `json:"buses"`
	Branches     int                   `json:"branches"`
	LoadFlow     domain.LoadFlowResult `json:"loadflow"`
	OutputPath   string                `json:"output_path"`
	BytesWritten int64                 `json:"bytes_written"`
	Steps        []StepTiming          `json:"steps"`
	Duration     time.Duration         `json:"duration"`
}

// Runner creates a network, solves its load flow and draws it, once per Run.
type Runner struct {
	config   RunnerConfig
	factory  ports.NetworkFactory
	solver   ports.LoadFlowSolver
	renderer ports.DiagramRenderer
	logger   ports.Logger
	recorder ports.Recorder
}

// NewRunner creates a new runner with the given dependencies.
// A nil logger discards logs and a nil recorder discards measurements.
func NewRunner(
	config RunnerConfig,
	factory ports.NetworkFactory,
	solver ports.LoadFlowSolver,
	renderer ports.DiagramRenderer,
	logger ports.Logger,
	recorder ports.Recorder,
) *Runner {
	if config.OutputPath == "" {
		config.OutputPath = DefaultOutputPath
	}
	if logger == nil {
		logger = logadapter.NewNoopLogger()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Runner{
		config:   config,
		factory:  factory,
		solver:   solver,
		renderer: renderer,
		logger:   logger,
		recorder: recorder,
	}
}

// OutputPath returns the path the diagram is written to.
func (r *Runner) OutputPath() string {
	return r.config.OutputPath
}

// Run executes the pipeline: create the network, run the load flow, draw the
// diagram. Each step starts only when the previous one succeeded. The first
// error stops the run and is returned wrapped with the step name; the report
// holds whatever was completed.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{
		RunID:      uuid.NewString(),
		OutputPath: r.config.OutputPath,
	}
	runID := ports.String("run_id", report.RunID)
	r.logger.Info("run started", runID, ports.String("output", report.OutputPath))

	var network *domain.Network
	err := r.step(ctx, &report, StepCreateNetwork, func(ctx context.Context) error {
		n, err := r.factory.Create(ctx)
		if err != nil {
			return err
		}
		network = n
		return nil
	})
	if err != nil {
		return r.finish(report, start, err)
	}

	stats := network.Stats()
	report.NetworkID = network.ID
	report.Buses = stats.Buses
	report.Branches = stats.Branches()
	r.recorder.ObserveNetwork(stats)
	r.logger.Info("network created",
		runID,
		ports.String("network", network.ID),
		ports.Int("buses", stats.Buses),
		ports.Int("branches", stats.Branches()),
		ports.Int("generators", stats.Generators),
		ports.Int("loads", stats.Loads),
	)

	err = r.step(ctx, &report, StepRunLoadFlow, func(ctx context.Context) error {
		result, err := r.solver.Run(ctx, network)
		report.LoadFlow = result
		r.recorder.ObserveLoadFlow(result)
		return err
	})
	if err != nil {
		return r.finish(report, start, err)
	}
	if main, ok := report.LoadFlow.Main(); ok {
		r.logger.Info("load flow finished",
			runID,
			ports.String("status", string(main.Status)),
			ports.Int("iterations", report.LoadFlow.Iterations()),
			ports.Int("components", len(report.LoadFlow.Components)),
			ports.Float64("slack_mismatch_mw", main.SlackBusActivePowerMismatch),
		)
	}

	err = r.step(ctx, &report, StepDrawDiagram, func(ctx context.Context) error {
		written, err := r.renderer.Draw(ctx, network, r.config.OutputPath)
		if err != nil {
			return err
		}
		report.BytesWritten = written
		r.recorder.ObserveDiagram(written)
		return nil
	})
	return r.finish(report, start, err)
}

// step runs one pipeline step with timing, logging and metrics.
func (r *Runner) step(ctx context.Context, report *Report, name string, fn func(context.Context) error) error {
	runID := ports.String("run_id", report.RunID)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", stepLabels[name], err)
	}

	r.logger.Debug("step started", runID, ports.String("step", name))
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	report.Steps = append(report.Steps, StepTiming{Step: name, Duration: elapsed})

	if err != nil {
		r.recorder.ObserveStep(name, StatusFailure, elapsed)
		r.logger.Error("step failed", runID, ports.String("step", name), ports.Duration("duration", elapsed), ports.Err(err))
		return fmt.Errorf("%s: %w", stepLabels[name], err)
	}
	r.recorder.ObserveStep(name, StatusSuccess, elapsed)
	r.logger.Debug("step finished", runID, ports.String("step", name), ports.Duration("duration", elapsed))
	return nil
}

func (r *Runner) finish(report Report, start time.Time, err error) (Report, error) {
	report.Duration = time.Since(start)
	runID := ports.String("run_id", report.RunID)
	if err != nil {
		r.recorder.ObserveRun(StatusFailure, report.Duration)
		r.logger.Error("run failed", runID, ports.Duration("duration", report.Duration), ports.Err(err))
		return report, err
	}
	r.recorder.ObserveRun(StatusSuccess, report.Duration)
	r.logger.Info("run finished",
		runID,
		ports.String("output", report.OutputPath),
		ports.Any("bytes", report.BytesWritten),
		ports.Duration("duration", report.Duration),
	)
	return report, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveStep(string, string, time.Duration) {}
func (nopRecorder) ObserveRun(string, time.Duration)          {}
func (nopRecorder) ObserveNetwork(domain.Stats)               {}
func (nopRecorder) ObserveLoadFlow(domain.LoadFlowResult)     {}
func (nopRecorder) ObserveDiagram(int64)                      {}
