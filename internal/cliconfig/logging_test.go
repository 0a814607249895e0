package cliconfig

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		wantJSON bool
		wantLog  bool
		wantErr  bool
	}{
		{name: "json info", level: "info", format: "json", wantJSON: true, wantLog: true},
		{name: "console info", level: "info", format: "console", wantLog: true},
		{name: "level filters", level: "error", format: "json"},
		{name: "bad level", level: "loud", format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewLogger(&buf, tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			l.Info().Str("network", "ieee14").Msg("network created")

			out := buf.String()
			if !tt.wantLog {
				if out != "" {
					t.Errorf("output = %q, want nothing", out)
				}
				return
			}
			if !strings.Contains(out, "network created") {
				t.Errorf("output = %q, want message", out)
			}
			if tt.wantJSON {
				var entry map[string]any
				if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
					t.Fatalf("output is not JSON: %v", err)
				}
				if entry["network"] != "ieee14" {
					t.Errorf("network field = %v, want ieee14", entry["network"])
				}
			}
		})
	}
}
