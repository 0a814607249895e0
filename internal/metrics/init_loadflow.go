package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoadFlowMetrics() {
	r.LoadFlowIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridsim_loadflow_iterations",
			Help:    "Newton iterations per load flow",
			Buckets: prometheus.LinearBuckets(1, 2, 10),
		},
	)

	r.LoadFlowComponents = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridsim_loadflow_components_total",
			Help: "Connected components solved by status",
		},
		[]string{"status"},
	)

	r.LoadFlowSlackMW = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_loadflow_slack_mismatch_mw",
			Help: "Slack bus active power mismatch of the main component in MW",
		},
	)

	r.LoadFlowDistributed = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "gridsim_loadflow_distributed_active_power_mw",
			Help: "Active power distributed over generators in the main component in MW",
		},
	)
}
