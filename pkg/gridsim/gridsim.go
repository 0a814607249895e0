package gridsim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bft-labs/gridsim/internal/app"
	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/loadflow"
	"github.com/bft-labs/gridsim/internal/nad"
	"github.com/bft-labs/gridsim/internal/network"
	"github.com/bft-labs/gridsim/internal/ports"
)

// Gridsim runs the create, solve and draw pipeline.
// Use New() to create an instance, then Run() for a single pass or Watch()
// to keep re-running on triggers.
type Gridsim struct {
	opts      options
	logger    ports.Logger
	lifecycle *app.Lifecycle
	emitter   *eventEmitter
	triggers  chan struct{}

	// mu guards config and runner, and serializes runs.
	mu     sync.Mutex
	config Config
	runner *app.Runner
}

// New creates a new Gridsim instance with the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config, opts ...Option) (*Gridsim, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = defaultOptions().logger
	}
	if o.metrics == nil && cfg.MetricsAddr != "" {
		o.metrics = NewMetricsRegistry()
	}

	emitter := &eventEmitter{handler: o.eventHandler}
	g := &Gridsim{
		opts:      o,
		logger:    o.logger,
		lifecycle: app.NewLifecycle(o.logger, emitter),
		emitter:   emitter,
		triggers:  make(chan struct{}, 1),
	}

	runner, err := g.newRunner(cfg)
	if err != nil {
		return nil, err
	}
	g.config = cfg
	g.runner = runner
	return g, nil
}

// newRunner wires the collaborators for cfg. Injected collaborators win over
// the built-in ones.
func (g *Gridsim) newRunner(cfg Config) (*app.Runner, error) {
	factory := g.opts.factory
	if factory == nil {
		f, err := network.NewFactory(cfg.Network)
		if err != nil {
			return nil, err
		}
		factory = f
	}

	solver := g.opts.solver
	if solver == nil {
		s, err := loadflow.NewSolver(cfg.LoadFlow, g.logger)
		if err != nil {
			return nil, err
		}
		solver = s
	}

	renderer := g.opts.renderer
	if renderer == nil {
		r, err := nad.NewRenderer(cfg.Diagram, nad.WithLogger(g.logger))
		if err != nil {
			return nil, err
		}
		renderer = r
	}

	var recorder ports.Recorder
	if g.opts.metrics != nil {
		recorder = g.opts.metrics
	}

	return app.NewRunner(app.RunnerConfig{OutputPath: cfg.OutputPath}, factory, solver, renderer, g.logger, recorder), nil
}

// Config returns the configuration in use.
func (g *Gridsim) Config() Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config
}

// Run executes the pipeline once: create the network, run the load flow and
// draw the diagram. Concurrent calls run one after the other.
func (g *Gridsim) Run(ctx context.Context) (Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	report, err := g.runner.Run(ctx)
	g.emitter.onRunComplete(report, err)
	return report, err
}

// Trigger requests a run while watching. It never blocks; requests made
// while one is pending are merged.
func (g *Gridsim) Trigger() {
	select {
	case g.triggers <- struct{}{}:
	default:
	}
}

// Status returns the current watch mode state.
func (g *Gridsim) Status() State {
	return g.lifecycle.State()
}

// Watch runs the pipeline once, then again on every Trigger, until ctx is
// canceled or Stop is called. Failed runs are logged and do not end watch
// mode. Returns domain.ErrAlreadyWatching when called while watching.
func (g *Gridsim) Watch(ctx context.Context) error {
	if err := g.lifecycle.TransitionTo(app.StateStarting, "Watch() called"); err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.lifecycle.SetCancel(cancel)
	defer g.lifecycle.Finish()

	cfg := g.Config()
	pluginCfg := PluginConfig{
		ConfigPath: cfg.ConfigPath,
		OutputPath: cfg.OutputPath,
		Logger:     g.logger,
		Trigger:    g.Trigger,
	}
	for i, p := range g.opts.plugins {
		if err := p.Initialize(watchCtx, pluginCfg); err != nil {
			g.logger.Error("plugin initialization failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
			cancel()
			g.shutdownPlugins(g.opts.plugins[:i])
			_ = g.lifecycle.TransitionTo(app.StateFailed, "plugin init failed: "+p.Name())
			return fmt.Errorf("initialize plugin %s: %w", p.Name(), err)
		}
		g.logger.Info("plugin initialized", ports.String("plugin", p.Name()))
	}

	if g.opts.metrics != nil && cfg.MetricsAddr != "" {
		registry, addr := g.opts.metrics, cfg.MetricsAddr
		g.lifecycle.Go(func() {
			g.logger.Info("serving metrics", ports.String("addr", addr))
			if err := registry.Serve(watchCtx, addr); err != nil {
				g.logger.Error("metrics server stopped", ports.Err(err))
			}
		})
	}

	if err := g.lifecycle.TransitionTo(app.StateWatching, "plugins initialized"); err != nil {
		cancel()
		return g.stop()
	}

	if _, err := g.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
		g.logger.Error("pipeline run failed", ports.Err(err))
	}

	g.lifecycle.Go(func() {
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-g.triggers:
				g.rerun(watchCtx)
			}
		}
	})

	<-watchCtx.Done()
	return g.stop()
}

// Stop ends watch mode and waits until Watch has returned, with its workers
// and plugins stopped, or until ctx is done.
func (g *Gridsim) Stop(ctx context.Context) error {
	if !g.lifecycle.CanStop() {
		return domain.ErrNotWatching
	}
	done := g.lifecycle.Done()
	g.lifecycle.Cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gridsim) stop() error {
	_ = g.lifecycle.TransitionTo(app.StateStopping, "watch canceled")

	err := g.lifecycle.WaitWithTimeout(app.ShutdownTimeout)
	g.shutdownPlugins(g.opts.plugins)

	if err != nil {
		_ = g.lifecycle.TransitionTo(app.StateFailed, "shutdown timeout")
		return err
	}
	_ = g.lifecycle.TransitionTo(app.StateIdle, "graceful shutdown")
	return nil
}

// shutdownPlugins stops plugins in reverse order.
func (g *Gridsim) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			g.logger.Error("plugin shutdown failed",
				ports.String("plugin", p.Name()),
				ports.Err(err))
		} else {
			g.logger.Info("plugin shutdown complete", ports.String("plugin", p.Name()))
		}
	}
}

// rerun reloads the configuration when a loader is set, then runs.
func (g *Gridsim) rerun(ctx context.Context) {
	if g.opts.loader != nil {
		if err := g.reload(ctx); err != nil {
			g.logger.Error("config reload failed, keeping previous configuration", ports.Err(err))
		}
	}
	if _, err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		g.logger.Error("pipeline run failed", ports.Err(err))
	}
}

func (g *Gridsim) reload(ctx context.Context) error {
	cfg, err := g.opts.loader(ctx)
	if err != nil {
		return err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	runner, err := g.newRunner(cfg)
	if err != nil {
		return err
	}

	g.mu.Lock()
	g.config = cfg
	g.runner = runner
	g.mu.Unlock()

	g.logger.Info("configuration reloaded",
		ports.String("network", cfg.Network),
		ports.String("output", cfg.OutputPath))
	return nil
}
