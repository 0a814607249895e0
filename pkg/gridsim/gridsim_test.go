package gridsim_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/network"
	"github.com/bft-labs/gridsim/pkg/gridsim"
)

type countingFactory struct {
	mu    sync.Mutex
	calls int
}

func (f *countingFactory) Create(ctx context.Context) (*domain.Network, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return network.CreateIEEE14()
}

type countingSolver struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSolver) Run(ctx context.Context, n *domain.Network) (domain.LoadFlowResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return domain.LoadFlowResult{Components: []domain.ComponentResult{
		{ComponentNum: 0, Status: domain.StatusConverged, BusCount: len(n.Buses)},
	}}, nil
}

type recordingRenderer struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingRenderer) Draw(ctx context.Context, n *domain.Network, path string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return 100, nil
}

func (r *recordingRenderer) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.paths...)
}

// runEvents forwards run events to a channel.
type runEvents struct {
	gridsim.BaseEventHandler
	ch chan gridsim.RunEvent
}

func newRunEvents() *runEvents {
	return &runEvents{ch: make(chan gridsim.RunEvent, 16)}
}

func (h *runEvents) OnRunComplete(e gridsim.RunEvent) {
	h.ch <- e
}

func (h *runEvents) wait(t *testing.T) gridsim.RunEvent {
	t.Helper()
	select {
	case e := <-h.ch:
		return e
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a run")
		return gridsim.RunEvent{}
	}
}

// orderPlugin records initialization and shutdown into a shared log.
type orderPlugin struct {
	name    string
	log     *[]string
	mu      *sync.Mutex
	initErr error
	cfg     gridsim.PluginConfig
}

func (p *orderPlugin) Name() string { return p.name }

func (p *orderPlugin) Initialize(ctx context.Context, cfg gridsim.PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.log = append(*p.log, "init:"+p.name)
	p.cfg = cfg
	return p.initErr
}

func (p *orderPlugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.log = append(*p.log, "shutdown:"+p.name)
	return nil
}

func (p *orderPlugin) trigger() {
	p.mu.Lock()
	trigger := p.cfg.Trigger
	p.mu.Unlock()
	trigger()
}

func TestNew_Defaults(t *testing.T) {
	g, err := gridsim.New(gridsim.Config{})
	require.NoError(t, err)

	cfg := g.Config()
	assert.Equal(t, "ieee300", cfg.Network)
	assert.Equal(t, "single-eu.svg", cfg.OutputPath)
	assert.Equal(t, gridsim.DefaultConfig().LoadFlow, cfg.LoadFlow)
	assert.Equal(t, gridsim.DefaultConfig().Diagram, cfg.Diagram)
	assert.Equal(t, gridsim.StateIdle, g.Status())
	assert.Equal(t, []string{"ieee14", "ieee300"}, gridsim.Networks())
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*gridsim.Config)
		wantErr error
	}{
		{
			name:    "unknown network",
			modify:  func(c *gridsim.Config) { c.Network = "ieee118" },
			wantErr: domain.ErrUnknownNetwork,
		},
		{
			name:    "negative tolerance",
			modify:  func(c *gridsim.Config) { c.LoadFlow.Tolerance = -1 },
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "precision out of range",
			modify:  func(c *gridsim.Config) { c.Diagram.AngleValuePrecision = 9 },
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := gridsim.DefaultConfig()
			tt.modify(&cfg)
			_, err := gridsim.New(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_WritesDiagram(t *testing.T) {
	cfg := gridsim.DefaultConfig()
	cfg.Network = "ieee14"
	cfg.OutputPath = filepath.Join(t.TempDir(), "ieee14.svg")
	events := newRunEvents()

	g, err := gridsim.New(cfg, gridsim.WithEventHandler(events))
	require.NoError(t, err)

	report, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.LoadFlow.Converged())
	assert.Equal(t, 14, report.Buses)

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, report.BytesWritten, int64(len(data)))
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))

	e := events.wait(t)
	assert.NoError(t, e.Err)
	assert.Equal(t, report.RunID, e.Report.RunID)
}

func TestRun_InjectedCollaborators(t *testing.T) {
	factory := &countingFactory{}
	solver := &countingSolver{}
	renderer := &recordingRenderer{}

	g, err := gridsim.New(gridsim.Config{OutputPath: "custom.svg"},
		gridsim.WithNetworkFactory(factory),
		gridsim.WithSolver(solver),
		gridsim.WithRenderer(renderer),
	)
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, factory.calls)
	assert.Equal(t, 1, solver.calls)
	assert.Equal(t, []string{"custom.svg"}, renderer.Paths())
}

func TestWatch_RunsOnTrigger(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	first := &orderPlugin{name: "first", log: &log, mu: &mu}
	second := &orderPlugin{name: "second", log: &log, mu: &mu}
	renderer := &recordingRenderer{}
	events := newRunEvents()

	g, err := gridsim.New(gridsim.Config{Network: "ieee14", ConfigPath: "/etc/gridsim.toml"},
		gridsim.WithSolver(&countingSolver{}),
		gridsim.WithRenderer(renderer),
		gridsim.WithEventHandler(events),
		gridsim.WithPlugin(first),
		gridsim.WithPlugin(second),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	// Initial run
	require.NoError(t, events.wait(t).Err)
	assert.Equal(t, gridsim.StateWatching, g.Status())
	assert.ErrorIs(t, g.Watch(ctx), domain.ErrAlreadyWatching)

	first.mu.Lock()
	assert.Equal(t, "/etc/gridsim.toml", first.cfg.ConfigPath)
	assert.Equal(t, "single-eu.svg", first.cfg.OutputPath)
	first.mu.Unlock()

	second.trigger()
	require.NoError(t, events.wait(t).Err)
	assert.Len(t, renderer.Paths(), 2)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStop()
	require.NoError(t, g.Stop(stopCtx))
	assert.Equal(t, gridsim.StateIdle, g.Status())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after Stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"init:first", "init:second", "shutdown:second", "shutdown:first"}, log)
	assert.Equal(t, gridsim.StateIdle, g.Status())
}

func TestWatch_ReloadsConfig(t *testing.T) {
	renderer := &recordingRenderer{}
	events := newRunEvents()
	reloads := 0

	loader := func(ctx context.Context) (gridsim.Config, error) {
		reloads++
		if reloads == 2 {
			return gridsim.Config{Network: "unknown"}, nil
		}
		return gridsim.Config{Network: "ieee14", OutputPath: "reloaded.svg"}, nil
	}

	g, err := gridsim.New(gridsim.Config{Network: "ieee14", OutputPath: "initial.svg"},
		gridsim.WithSolver(&countingSolver{}),
		gridsim.WithRenderer(renderer),
		gridsim.WithEventHandler(events),
		gridsim.WithConfigLoader(loader),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()

	events.wait(t)
	g.Trigger()
	events.wait(t)
	// A failing reload keeps the previous configuration
	g.Trigger()
	events.wait(t)

	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{"initial.svg", "reloaded.svg", "reloaded.svg"}, renderer.Paths())
	assert.Equal(t, "ieee14", g.Config().Network)
}

func TestWatch_PluginInitFailure(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	initErr := errors.New("watcher unavailable")
	ok := &orderPlugin{name: "ok", log: &log, mu: &mu}
	bad := &orderPlugin{name: "bad", log: &log, mu: &mu, initErr: initErr}
	renderer := &recordingRenderer{}

	g, err := gridsim.New(gridsim.Config{Network: "ieee14"},
		gridsim.WithSolver(&countingSolver{}),
		gridsim.WithRenderer(renderer),
		gridsim.WithPlugin(ok),
		gridsim.WithPlugin(bad),
	)
	require.NoError(t, err)

	err = g.Watch(context.Background())
	assert.ErrorIs(t, err, initErr)
	assert.Contains(t, err.Error(), "initialize plugin bad")
	assert.Equal(t, gridsim.StateFailed, g.Status())
	assert.Empty(t, renderer.Paths())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"init:ok", "init:bad", "shutdown:ok"}, log)
}

func TestStop_NotWatching(t *testing.T) {
	g, err := gridsim.New(gridsim.Config{Network: "ieee14"})
	require.NoError(t, err)
	assert.ErrorIs(t, g.Stop(context.Background()), domain.ErrNotWatching)
}

func TestWatch_ServesMetrics(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	events := newRunEvents()
	g, err := gridsim.New(gridsim.Config{Network: "ieee14", MetricsAddr: addr},
		gridsim.WithSolver(&countingSolver{}),
		gridsim.WithRenderer(&recordingRenderer{}),
		gridsim.WithEventHandler(events),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Watch(ctx) }()
	events.wait(t)

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(b)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	assert.Contains(t, body, `gridsim_runs_total{status="success"} 1`)
	assert.Contains(t, body, "gridsim_network_buses 14")

	cancel()
	require.NoError(t, <-done)
}
