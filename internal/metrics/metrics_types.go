// Package metrics exposes pipeline measurements to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the application
type Registry struct {
	// Pipeline Metrics
	RunsTotal    *prometheus.CounterVec
	RunDuration  prometheus.Histogram
	StepsTotal   *prometheus.CounterVec
	StepDuration *prometheus.HistogramVec

	// Network Metrics
	NetworkBuses         prometheus.Gauge
	NetworkVoltageLevels prometheus.Gauge
	NetworkBranches      *prometheus.GaugeVec
	NetworkInjections    *prometheus.GaugeVec

	// Load Flow Metrics
	LoadFlowIterations  prometheus.Histogram
	LoadFlowComponents  *prometheus.CounterVec
	LoadFlowSlackMW     prometheus.Gauge
	LoadFlowDistributed prometheus.Gauge

	// Diagram Metrics
	DiagramBytes prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initPipelineMetrics()
	r.initNetworkMetrics()
	r.initLoadFlowMetrics()
	r.initDiagramMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
