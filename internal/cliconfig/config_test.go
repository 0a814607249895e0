package cliconfig

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/gridsim/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Network != "ieee300" {
		t.Errorf("Network = %v, want ieee300", cfg.Network)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %v, want %v", cfg.Output, DefaultOutput)
	}
	if cfg.Mode != "ac" {
		t.Errorf("Mode = %v, want ac", cfg.Mode)
	}
	if !cfg.EdgeNameDisplayed || cfg.IDDisplayed || !cfg.EdgeInfoAlongEdge {
		t.Errorf("edge display = %v/%v/%v, want true/false/true", cfg.EdgeNameDisplayed, cfg.IDDisplayed, cfg.EdgeInfoAlongEdge)
	}
	if cfg.CurrentValuePrecision != 0 || cfg.PowerValuePrecision != 1 {
		t.Errorf("precisions = %d/%d, want 0/1", cfg.CurrentValuePrecision, cfg.PowerValuePrecision)
	}
	if cfg.WatchDebounce != 500*time.Millisecond {
		t.Errorf("WatchDebounce = %v, want 500ms", cfg.WatchDebounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:   "ieee14 in dc mode",
			modify: func(c *Config) { c.Network = "ieee14"; c.Mode = "dc" },
		},
		{
			name:    "unknown network",
			modify:  func(c *Config) { c.Network = "ieee57" },
			wantErr: "Network: must be one of",
		},
		{
			name:    "missing output",
			modify:  func(c *Config) { c.Output = "" },
			wantErr: "Output: field is required",
		},
		{
			name:    "bad log level",
			modify:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "LogLevel",
		},
		{
			name:    "bad mode",
			modify:  func(c *Config) { c.Mode = "hvdc" },
			wantErr: "Mode",
		},
		{
			name:    "zero tolerance",
			modify:  func(c *Config) { c.Tolerance = 0 },
			wantErr: "Tolerance: must be greater than 0",
		},
		{
			name:    "zero iterations",
			modify:  func(c *Config) { c.MaxIterations = 0 },
			wantErr: "MaxIterations: must be at least 1",
		},
		{
			name:    "precision too large",
			modify:  func(c *Config) { c.AngleValuePrecision = 7 },
			wantErr: "AngleValuePrecision: must not exceed 6",
		},
		{
			name:    "negative precision",
			modify:  func(c *Config) { c.PowerValuePrecision = -1 },
			wantErr: "PowerValuePrecision: must be at least 0",
		},
		{
			name:    "bad metrics address",
			modify:  func(c *Config) { c.Watch = true; c.MetricsAddr = "localhost" },
			wantErr: "MetricsAddr: must be host:port",
		},
		{
			name:    "metrics address without watch",
			modify:  func(c *Config) { c.MetricsAddr = "127.0.0.1:9090" },
			wantErr: "requires watch mode",
		},
		{
			name:   "metrics address in watch mode",
			modify: func(c *Config) { c.Watch = true; c.MetricsAddr = "127.0.0.1:9090" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
