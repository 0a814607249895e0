package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/bft-labs/gridsim/internal/domain"
	"github.com/bft-labs/gridsim/internal/ports"
)

var _ ports.Recorder = (*Registry)(nil)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.RunsTotal == nil || r.StepDuration == nil || r.LoadFlowComponents == nil || r.DiagramBytes == nil {
		t.Error("metrics not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestObserveRunAndSteps(t *testing.T) {
	r := NewRegistry()

	r.ObserveStep("create_network", "success", 10*time.Millisecond)
	r.ObserveStep("run_load_flow", "success", 200*time.Millisecond)
	r.ObserveStep("draw_diagram", "error", 5*time.Millisecond)
	r.ObserveRun("error", 215*time.Millisecond)
	r.ObserveRun("success", 300*time.Millisecond)
	r.ObserveRun("success", 310*time.Millisecond)

	c, err := r.StepsTotal.GetMetricWithLabelValues("draw_diagram", "error")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("draw_diagram errors = %v, want 1", got)
	}

	c, err = r.RunsTotal.GetMetricWithLabelValues("success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 2 {
		t.Errorf("successful runs = %v, want 2", got)
	}

	var m dto.Metric
	if err := r.RunDuration.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := m.GetHistogram().GetSampleCount(); got != 3 {
		t.Errorf("run duration samples = %v, want 3", got)
	}
}

func TestObserveNetwork(t *testing.T) {
	r := NewRegistry()
	r.ObserveNetwork(domain.Stats{Buses: 300, VoltageLevels: 300, Lines: 304, Transformers: 107, Generators: 69, Loads: 201, Shunts: 29})

	if got := gaugeValue(t, r.NetworkBuses); got != 300 {
		t.Errorf("buses = %v, want 300", got)
	}
	if got := gaugeValue(t, r.NetworkBranches.WithLabelValues("transformer")); got != 107 {
		t.Errorf("transformers = %v, want 107", got)
	}
	if got := gaugeValue(t, r.NetworkInjections.WithLabelValues("shunt")); got != 29 {
		t.Errorf("shunts = %v, want 29", got)
	}
}

func TestObserveLoadFlow(t *testing.T) {
	r := NewRegistry()
	r.ObserveLoadFlow(domain.LoadFlowResult{Components: []domain.ComponentResult{
		{ComponentNum: 0, Status: domain.StatusConverged, Iterations: 4, SlackBusActivePowerMismatch: 0.4, DistributedActivePower: -52},
		{ComponentNum: 1, Status: domain.StatusNoCalculation},
	}})

	c, err := r.LoadFlowComponents.GetMetricWithLabelValues(string(domain.StatusNoCalculation))
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, c); got != 1 {
		t.Errorf("NO_CALCULATION components = %v, want 1", got)
	}
	if got := gaugeValue(t, r.LoadFlowDistributed); got != -52 {
		t.Errorf("distributed = %v, want -52", got)
	}

	var m dto.Metric
	if err := r.LoadFlowIterations.Write(&m); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if got := m.GetHistogram().GetSampleSum(); got != 4 {
		t.Errorf("iterations sum = %v, want 4", got)
	}
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.ObserveDiagram(12345)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "gridsim_diagram_bytes 12345") {
		t.Errorf("diagram gauge missing from output:\n%s", rec.Body.String())
	}
}

func TestServe(t *testing.T) {
	r := NewRegistry()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		cancel()
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "gridsim_network_buses 0") {
		t.Errorf("unexpected metrics output:\n%s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestServe_BadAddress(t *testing.T) {
	r := NewRegistry()
	if err := r.Serve(context.Background(), "256.0.0.1:bad"); err == nil {
		t.Fatal("expected listen error")
	}
}
