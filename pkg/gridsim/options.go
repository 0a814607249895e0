package gridsim

import (
	"context"

	logadapter "github.com/bft-labs/gridsim/internal/adapters/log"
	"github.com/bft-labs/gridsim/internal/metrics"
	"github.com/bft-labs/gridsim/internal/ports"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// NetworkFactory produces the network of each run.
type NetworkFactory = ports.NetworkFactory

// LoadFlowSolver solves a network in place.
type LoadFlowSolver = ports.LoadFlowSolver

// DiagramRenderer draws a solved network to a file.
type DiagramRenderer = ports.DiagramRenderer

// MetricsRegistry collects pipeline metrics.
type MetricsRegistry = metrics.Registry

// NewMetricsRegistry creates a registry independent of the process default.
func NewMetricsRegistry() *MetricsRegistry {
	return metrics.NewRegistry()
}

// ConfigLoader returns a fresh configuration. It is called before each
// triggered run in watch mode.
type ConfigLoader func(ctx context.Context) (Config, error)

// Option configures optional behavior of Gridsim.
type Option func(*options)

// options holds the optional configuration for a Gridsim instance.
type options struct {
	logger       ports.Logger
	eventHandler EventHandler
	plugins      []Plugin
	metrics      *metrics.Registry
	loader       ConfigLoader
	factory      ports.NetworkFactory
	solver       ports.LoadFlowSolver
	renderer     ports.DiagramRenderer
}

// defaultOptions returns options with a no-op logger and nothing else set.
func defaultOptions() options {
	return options{
		logger: logadapter.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler sets a handler for gridsim events.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithPlugin registers a plugin to be initialized when watching starts.
// Plugins are initialized in registration order and shutdown in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, plugin)
	}
}

// WithMetrics records pipeline metrics in the given registry.
// When Config.MetricsAddr is set and no registry is given, a new one is
// created.
func WithMetrics(registry *MetricsRegistry) Option {
	return func(o *options) {
		o.metrics = registry
	}
}

// WithConfigLoader reloads the configuration before each triggered run in
// watch mode.
func WithConfigLoader(loader ConfigLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithNetworkFactory replaces the built-in network factory. Config.Network
// is then ignored.
func WithNetworkFactory(factory NetworkFactory) Option {
	return func(o *options) {
		o.factory = factory
	}
}

// WithSolver replaces the built-in load-flow solver. Config.LoadFlow is then
// ignored.
func WithSolver(solver LoadFlowSolver) Option {
	return func(o *options) {
		o.solver = solver
	}
}

// WithRenderer replaces the built-in diagram renderer. Config.Diagram is then
// ignored.
func WithRenderer(renderer DiagramRenderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}
