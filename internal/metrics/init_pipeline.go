package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPipelineMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsim_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridsim_run_duration_seconds",
			Help:    "Pipeline run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	r.StepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsim_steps_total",
			Help: "Total number of pipeline steps by step and status",
		},
		[]string{"step", "status"},
	)

	r.StepDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridsim_step_duration_seconds",
			Help:    "Pipeline step duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		[]string{"step"},
	)
}

func (r *Registry) initNetworkMetrics() {
	r.NetworkBuses = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_network_buses",
			Help: "Number of buses in the last created network",
		},
	)

	r.NetworkVoltageLevels = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_network_voltage_levels",
			Help: "Number of voltage levels in the last created network",
		},
	)

	r.NetworkBranches = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridsim_network_branches",
			Help: "Number of branches in the last created network by kind",
		},
		[]string{"kind"},
	)

	r.NetworkInjections = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridsim_network_injections",
			Help: "Number of injections in the last created network by kind",
		},
		[]string{"kind"},
	)
}

func (r *Registry) initDiagramMetrics() {
	r.DiagramBytes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_diagram_bytes",
			Help: "Size of the last written diagram in bytes",
		},
	)
}
