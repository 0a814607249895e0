package gridsim

import "context"

// Plugin extends watch mode.
// Plugins are initialized in registration order when Watch starts and shut
// down in reverse order when it returns.
type Plugin interface {
	// Name returns the plugin identifier used in logs.
	Name() string

	// Initialize starts the plugin. ctx is canceled when watching stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and waits for its goroutines.
	Shutdown(ctx context.Context) error
}

// PluginConfig is passed to plugins on initialization.
type PluginConfig struct {
	// ConfigPath is the configuration file in use, empty when none.
	ConfigPath string

	// OutputPath is the diagram file written by each run.
	OutputPath string

	Logger Logger

	// Trigger requests a pipeline run. It never blocks; requests made while
	// one is pending are merged.
	Trigger func()
}
