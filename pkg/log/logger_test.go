package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Info("run finished",
		String("network", "ieee300cdf"),
		Int("buses", 300),
		Float64("mismatch", 0.5),
		Bool("converged", true),
		Duration("took", 2*time.Second),
		Err(errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{
		`"message":"run finished"`,
		`"network":"ieee300cdf"`,
		`"buses":300`,
		`"converged":true`,
		`"error":"boom"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.Debug("a")
	logger.Info("b", String("k", "v"))
	logger.Warn("c")
	logger.Error("d", Err(errors.New("e")))
}
