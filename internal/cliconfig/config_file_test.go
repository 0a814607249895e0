package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	falseVal := false
	zero := 0
	seed := int64(42)

	tests := []struct {
		name    string
		file    func() FileConfig
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "applies top level values",
			file: func() FileConfig {
				return FileConfig{Network: "ieee14", Output: "/tmp/out.svg", LogLevel: "debug", WatchDebounce: "2s", Watch: &trueVal}
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Network != "ieee14" {
					t.Errorf("Network = %v, want ieee14", cfg.Network)
				}
				if cfg.Output != "/tmp/out.svg" {
					t.Errorf("Output = %v, want /tmp/out.svg", cfg.Output)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
				}
				if cfg.WatchDebounce != 2*time.Second {
					t.Errorf("WatchDebounce = %v, want 2s", cfg.WatchDebounce)
				}
				if !cfg.Watch {
					t.Error("Watch = false, want true")
				}
			},
		},
		{
			name: "applies load flow section",
			file: func() FileConfig {
				var fc FileConfig
				fc.LoadFlow.Mode = "dc"
				fc.LoadFlow.Tolerance = 1e-8
				fc.LoadFlow.MaxIterations = 30
				fc.LoadFlow.DistributedSlack = &falseVal
				return fc
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.Mode != "dc" {
					t.Errorf("Mode = %v, want dc", cfg.Mode)
				}
				if cfg.Tolerance != 1e-8 {
					t.Errorf("Tolerance = %v, want 1e-8", cfg.Tolerance)
				}
				if cfg.MaxIterations != 30 {
					t.Errorf("MaxIterations = %v, want 30", cfg.MaxIterations)
				}
				if cfg.DistributedSlack {
					t.Error("DistributedSlack = true, want false")
				}
				if !cfg.ReactiveLimits {
					t.Error("ReactiveLimits = false, want default true")
				}
			},
		},
		{
			name: "zero precision and seed from diagram section",
			file: func() FileConfig {
				var fc FileConfig
				fc.Diagram.PowerValuePrecision = &zero
				fc.Diagram.IDDisplayed = &trueVal
				fc.Diagram.Seed = &seed
				return fc
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.PowerValuePrecision != 0 {
					t.Errorf("PowerValuePrecision = %v, want 0", cfg.PowerValuePrecision)
				}
				if !cfg.IDDisplayed {
					t.Error("IDDisplayed = false, want true")
				}
				if cfg.DiagramSeed != 42 {
					t.Errorf("DiagramSeed = %v, want 42", cfg.DiagramSeed)
				}
			},
		},
		{
			name: "respects changed flags",
			file: func() FileConfig {
				fc := FileConfig{Network: "ieee14", Output: "file.svg"}
				fc.Diagram.PowerValuePrecision = &zero
				return fc
			},
			changed: map[string]bool{"network": true, "power-precision": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.Network != "ieee300" {
					t.Errorf("Network = %v, want ieee300 (flag was set)", cfg.Network)
				}
				if cfg.Output != "file.svg" {
					t.Errorf("Output = %v, want file.svg", cfg.Output)
				}
				if cfg.PowerValuePrecision != 1 {
					t.Errorf("PowerValuePrecision = %v, want 1 (flag was set)", cfg.PowerValuePrecision)
				}
			},
		},
		{
			name: "invalid duration",
			file: func() FileConfig {
				return FileConfig{WatchDebounce: "soon"}
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyFileConfig(&cfg, tt.file(), tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `
network = "ieee14"
output = "grid.svg"

[loadflow]
mode = "dc"
max_iterations = 25
reactive_limits = false

[diagram]
angle_value_precision = 0
bus_legend = false
`,
		},
		{
			name: "yaml",
			file: "config.yaml",
			content: `
network: ieee14
output: grid.svg
loadflow:
  mode: dc
  max_iterations: 25
  reactive_limits: false
diagram:
  angle_value_precision: 0
  bus_legend: false
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}

			fc, err := LoadFileConfig(path)
			if err != nil {
				t.Fatalf("LoadFileConfig() error = %v", err)
			}
			if fc.Network != "ieee14" {
				t.Errorf("Network = %v, want ieee14", fc.Network)
			}
			if fc.Output != "grid.svg" {
				t.Errorf("Output = %v, want grid.svg", fc.Output)
			}
			if fc.LoadFlow.Mode != "dc" {
				t.Errorf("LoadFlow.Mode = %v, want dc", fc.LoadFlow.Mode)
			}
			if fc.LoadFlow.MaxIterations != 25 {
				t.Errorf("LoadFlow.MaxIterations = %v, want 25", fc.LoadFlow.MaxIterations)
			}
			if fc.LoadFlow.ReactiveLimits == nil || *fc.LoadFlow.ReactiveLimits {
				t.Errorf("LoadFlow.ReactiveLimits = %v, want false", fc.LoadFlow.ReactiveLimits)
			}
			if fc.Diagram.AngleValuePrecision == nil || *fc.Diagram.AngleValuePrecision != 0 {
				t.Errorf("Diagram.AngleValuePrecision = %v, want 0", fc.Diagram.AngleValuePrecision)
			}
			if fc.Diagram.BusLegend == nil || *fc.Diagram.BusLegend {
				t.Errorf("Diagram.BusLegend = %v, want false", fc.Diagram.BusLegend)
			}
			if fc.Diagram.PowerValuePrecision != nil {
				t.Errorf("Diagram.PowerValuePrecision = %v, want nil", *fc.Diagram.PowerValuePrecision)
			}
		})
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "invalid.toml", "network = \"ieee14\"\nthis is not valid toml\n"},
		{"yaml", "invalid.yml", "network: [ieee14\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to create test config file: %v", err)
			}
			_, err := LoadFileConfig(path)
			if err == nil {
				t.Fatal("LoadFileConfig() expected error for invalid content")
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("LoadFileConfig() error = %v, want it to name the file", err)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".gridsim") {
		t.Errorf("DefaultConfigPath() = %v, should contain .gridsim", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
