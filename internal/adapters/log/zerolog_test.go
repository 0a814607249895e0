package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/gridsim/internal/ports"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapter(zerolog.New(&buf))

	z.Info("solved",
		ports.String("network", "ieee300"),
		ports.Int("iterations", 4),
		ports.Float64("mismatch", 0.25),
		ports.Bool("converged", true),
		ports.Duration("took", 2*time.Second),
		ports.Err(errors.New("boom")),
		ports.Any("counts", map[string]int{"buses": 300}),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (%s)", err, buf.String())
	}

	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["message"] != "solved" {
		t.Errorf("message = %v, want solved", entry["message"])
	}
	if entry["network"] != "ieee300" {
		t.Errorf("network = %v, want ieee300", entry["network"])
	}
	if entry["iterations"] != float64(4) {
		t.Errorf("iterations = %v, want 4", entry["iterations"])
	}
	if entry["converged"] != true {
		t.Errorf("converged = %v, want true", entry["converged"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	counts, ok := entry["counts"].(map[string]interface{})
	if !ok || counts["buses"] != float64(300) {
		t.Errorf("counts = %v, want buses=300", entry["counts"])
	}
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	z := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))

	z.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug entry written at info level: %s", buf.String())
	}

	z.Error("shown")
	if buf.Len() == 0 {
		t.Fatal("error entry not written")
	}
}
