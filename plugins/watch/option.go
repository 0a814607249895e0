package watch

import "github.com/bft-labs/gridsim/pkg/gridsim"

// WithWatcher returns a gridsim Option that re-runs the pipeline when the
// configuration file changes.
//
// Usage:
//
//	g, err := gridsim.New(cfg,
//	    watch.WithWatcher(watch.Config{
//	        DebounceDelay: 200 * time.Millisecond,
//	    }),
//	)
func WithWatcher(cfg Config) gridsim.Option {
	return gridsim.WithPlugin(New(cfg))
}

// WithDefaultWatcher returns a gridsim Option that watches the configuration
// file with default settings (debounce 500ms).
func WithDefaultWatcher() gridsim.Option {
	return WithWatcher(DefaultConfig())
}
