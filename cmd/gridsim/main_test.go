package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/gridsim/internal/cliconfig"
	"github.com/bft-labs/gridsim/pkg/gridsim"
)

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.toml")
	content := `
network = "ieee14"
output = "file.svg"

[loadflow]
mode = "dc"
`
	if err := os.WriteFile(cfgFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("GRIDSIM_OUTPUT", "env.svg")

	base := cliconfig.DefaultConfig()
	base.Mode = "ac" // --mode ac on the command line
	changed := map[string]bool{"mode": true}

	cfg, err := resolveConfig(base, cfgFile, changed)
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Network != "ieee14" {
		t.Errorf("Network = %v, want ieee14 (file)", cfg.Network)
	}
	if cfg.Output != "env.svg" {
		t.Errorf("Output = %v, want env.svg (env)", cfg.Output)
	}
	if cfg.Mode != "ac" {
		t.Errorf("Mode = %v, want ac (flag)", cfg.Mode)
	}
}

func TestResolveConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad file", content: "network = \n"},
		{name: "invalid value", content: `network = "ieee57"`},
		{name: "bad env", content: `network = "ieee14"`, env: map[string]string{"GRIDSIM_MAX_ITERATIONS": "lots"}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile := filepath.Join(dir, "config"+string(rune('a'+i))+".toml")
			if err := os.WriteFile(cfgFile, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := resolveConfig(cliconfig.DefaultConfig(), cfgFile, map[string]bool{}); err == nil {
				t.Error("resolveConfig() error = nil, want error")
			}
		})
	}
}

func TestResolveConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := resolveConfig(cliconfig.DefaultConfig(), filepath.Join(t.TempDir(), "none.toml"), map[string]bool{})
	if err != nil {
		t.Fatalf("resolveConfig() error = %v", err)
	}
	if cfg.Network != "ieee300" || cfg.Output != "single-eu.svg" {
		t.Errorf("Network/Output = %v/%v, want ieee300/single-eu.svg", cfg.Network, cfg.Output)
	}
}

func TestToLibraryConfig(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.Mode = "dc"
	cfg.VoltageInit = "dc"
	cfg.CurrentValuePrecision = 2
	cfg.DiagramSeed = 9
	cfg.MetricsAddr = "127.0.0.1:9102"

	lib := toLibraryConfig(cfg, "/etc/gridsim.toml")

	if !lib.LoadFlow.DC {
		t.Error("LoadFlow.DC = false, want true")
	}
	if lib.LoadFlow.VoltageInit != gridsim.VoltageInitDC {
		t.Errorf("VoltageInit = %v, want dc", lib.LoadFlow.VoltageInit)
	}
	if lib.Diagram.CurrentValuePrecision != 2 || lib.Diagram.Seed != 9 {
		t.Errorf("Diagram precision/seed = %d/%d, want 2/9", lib.Diagram.CurrentValuePrecision, lib.Diagram.Seed)
	}
	if lib.ConfigPath != "/etc/gridsim.toml" || lib.MetricsAddr != "127.0.0.1:9102" {
		t.Errorf("ConfigPath/MetricsAddr = %v/%v", lib.ConfigPath, lib.MetricsAddr)
	}
	if lib.OutputPath != "single-eu.svg" || lib.Network != "ieee300" {
		t.Errorf("OutputPath/Network = %v/%v", lib.OutputPath, lib.Network)
	}
	if err := lib.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestExampleUsage_Indented(t *testing.T) {
	lines := strings.Split(exampleUsage, "\n")
	if len(lines) < 2 {
		t.Fatalf("example has %d lines", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "  gridsim") {
			t.Errorf("example line %q is not indented like the others", l)
		}
	}
}
