package metrics

import (
	"time"

	"github.com/bft-labs/gridsim/internal/domain"
)

// ObserveRun records a finished pipeline run.
func (r *Registry) ObserveRun(status string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.RunDuration.Observe(duration.Seconds())
}

// ObserveStep records a finished pipeline step.
func (r *Registry) ObserveStep(step, status string, duration time.Duration) {
	r.StepsTotal.WithLabelValues(step, status).Inc()
	r.StepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// ObserveNetwork updates the network size gauges.
func (r *Registry) ObserveNetwork(stats domain.Stats) {
	r.NetworkBuses.Set(float64(stats.Buses))
	r.NetworkVoltageLevels.Set(float64(stats.VoltageLevels))
	r.NetworkBranches.WithLabelValues("line").Set(float64(stats.Lines))
	r.NetworkBranches.WithLabelValues("transformer").Set(float64(stats.Transformers))
	r.NetworkInjections.WithLabelValues("generator").Set(float64(stats.Generators))
	r.NetworkInjections.WithLabelValues("load").Set(float64(stats.Loads))
	r.NetworkInjections.WithLabelValues("shunt").Set(float64(stats.Shunts))
}

// ObserveLoadFlow records the outcome of a load flow.
func (r *Registry) ObserveLoadFlow(result domain.LoadFlowResult) {
	r.LoadFlowIterations.Observe(float64(result.Iterations()))
	for _, c := range result.Components {
		r.LoadFlowComponents.WithLabelValues(string(c.Status)).Inc()
	}
	if main, ok := result.Main(); ok && main.Status == domain.StatusConverged {
		r.LoadFlowSlackMW.Set(main.SlackBusActivePowerMismatch)
		r.LoadFlowDistributed.Set(main.DistributedActivePower)
	}
}

// ObserveDiagram records the size of a written diagram.
func (r *Registry) ObserveDiagram(bytes int64) {
	r.DiagramBytes.Set(float64(bytes))
}
