// Package watch re-runs the gridsim pipeline when its configuration file
// changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/gridsim/pkg/gridsim"
	gridlog "github.com/bft-labs/gridsim/pkg/log"
)

// DefaultDebounceDelay is the quiet time after the last change before a
// run is triggered.
const DefaultDebounceDelay = 500 * time.Millisecond

// Plugin watches the configuration file and triggers a run after it is
// written. Bursts of events, as produced by editors saving a file, trigger
// a single run.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	path          string
	debounceDelay time.Duration

	// Runtime state
	configPath string
	logger     gridsim.Logger
	trigger    func()
	watcher    *fsnotify.Watcher
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	debounce   *time.Timer
}

// Config holds configuration options for the watch plugin.
type Config struct {
	// Path is the file to watch. Empty watches the configuration file
	// gridsim was started with.
	Path string

	// DebounceDelay is the delay to wait after a file change before running.
	// Default: 500 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: DefaultDebounceDelay,
	}
}

// New creates a new watch plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	return &Plugin{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "watch"
}

// Initialize starts watching the configuration file directory.
// Without a file to watch the plugin stays idle.
func (p *Plugin) Initialize(ctx context.Context, cfg gridsim.PluginConfig) error {
	path := p.path
	if path == "" {
		path = cfg.ConfigPath
	}

	p.mu.Lock()
	p.logger = cfg.Logger
	p.trigger = cfg.Trigger
	p.mu.Unlock()

	if path == "" {
		p.logger.Warn("watch plugin disabled: no configuration file")
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.configPath = abs
	p.watcher = watcher
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("watching configuration file", gridlog.String("path", abs))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	return nil
}

// Shutdown stops the watcher and any pending trigger.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	cancel := p.cancel
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop forwards changes of the configuration file to the debouncer.
func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != p.configPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.logger.Debug("configuration file changed", gridlog.String("op", event.Op.String()))
			p.debounceTrigger(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("watcher error", gridlog.Err(err))
		}
	}
}

func (p *Plugin) debounceTrigger(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	trigger := p.trigger
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		p.logger.Info("configuration changed, re-running pipeline")
		trigger()
	})
}

// Ensure Plugin implements gridsim.Plugin.
var _ gridsim.Plugin = (*Plugin)(nil)
