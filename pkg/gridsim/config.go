package gridsim

import (
	"fmt"

	"github.com/bft-labs/gridsim/internal/app"
	"github.com/bft-labs/gridsim/internal/loadflow"
	"github.com/bft-labs/gridsim/internal/nad"
	"github.com/bft-labs/gridsim/internal/network"
)

// LoadFlowParameters configures the load-flow solver.
type LoadFlowParameters = loadflow.Parameters

// VoltageInitMode selects the starting point of the AC load flow.
type VoltageInitMode = loadflow.VoltageInitMode

// Voltage initialization modes.
const (
	VoltageInitUniform = loadflow.VoltageInitUniform
	VoltageInitDC      = loadflow.VoltageInitDC
)

// DiagramParameters configures the network-area diagram.
type DiagramParameters = nad.Parameters

// Report describes one pipeline run.
type Report = app.Report

// DefaultOutputPath is the diagram file written when none is configured.
const DefaultOutputPath = app.DefaultOutputPath

// Config holds the pipeline configuration.
type Config struct {
	// Network names the built-in case: "ieee300" (default) or "ieee14".
	Network string

	// OutputPath is the diagram file. Relative paths resolve against the
	// working directory. An existing file is replaced.
	OutputPath string

	LoadFlow LoadFlowParameters
	Diagram  DiagramParameters

	// ConfigPath is the configuration file watched in watch mode.
	ConfigPath string

	// MetricsAddr, when set, serves Prometheus metrics at /metrics while
	// watching.
	MetricsAddr string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Network:    network.DefaultCase,
		OutputPath: DefaultOutputPath,
		LoadFlow:   loadflow.DefaultParameters(),
		Diagram:    nad.DefaultParameters(),
	}
}

// SetDefaults fills empty fields. Parameters left at their zero value get
// their defaults as a whole.
func (c *Config) SetDefaults() {
	if c.Network == "" {
		c.Network = network.DefaultCase
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.LoadFlow == (LoadFlowParameters{}) {
		c.LoadFlow = loadflow.DefaultParameters()
	}
	if c.Diagram == (DiagramParameters{}) {
		c.Diagram = nad.DefaultParameters()
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := network.NewFactory(c.Network); err != nil {
		return err
	}
	if err := c.LoadFlow.Validate(); err != nil {
		return fmt.Errorf("loadflow: %w", err)
	}
	if err := c.Diagram.Validate(); err != nil {
		return fmt.Errorf("diagram: %w", err)
	}
	return nil
}

// Networks returns the names of the built-in networks.
func Networks() []string {
	return network.Cases()
}
