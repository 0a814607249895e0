package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config but uses strings for durations and pointers for
// values whose zero is meaningful. The same keys work in TOML and YAML.
type FileConfig struct {
	Network   string `toml:"network" yaml:"network"`
	Output    string `toml:"output" yaml:"output"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`

	LoadFlow struct {
		Mode             string  `toml:"mode" yaml:"mode"`
		VoltageInit      string  `toml:"voltage_init" yaml:"voltage_init"`
		Tolerance        float64 `toml:"tolerance" yaml:"tolerance"`
		MaxIterations    int     `toml:"max_iterations" yaml:"max_iterations"`
		DistributedSlack *bool   `toml:"distributed_slack" yaml:"distributed_slack"`
		ReactiveLimits   *bool   `toml:"reactive_limits" yaml:"reactive_limits"`
	} `toml:"loadflow" yaml:"loadflow"`

	Diagram struct {
		EdgeNameDisplayed              *bool  `toml:"edge_name_displayed" yaml:"edge_name_displayed"`
		IDDisplayed                    *bool  `toml:"id_displayed" yaml:"id_displayed"`
		EdgeInfoAlongEdge              *bool  `toml:"edge_info_along_edge" yaml:"edge_info_along_edge"`
		BusLegend                      *bool  `toml:"bus_legend" yaml:"bus_legend"`
		SubstationDescriptionDisplayed *bool  `toml:"substation_description_displayed" yaml:"substation_description_displayed"`
		PowerValuePrecision            *int   `toml:"power_value_precision" yaml:"power_value_precision"`
		AngleValuePrecision            *int   `toml:"angle_value_precision" yaml:"angle_value_precision"`
		CurrentValuePrecision          *int   `toml:"current_value_precision" yaml:"current_value_precision"`
		VoltageValuePrecision          *int   `toml:"voltage_value_precision" yaml:"voltage_value_precision"`
		LayoutIterations               int    `toml:"layout_iterations" yaml:"layout_iterations"`
		Seed                           *int64 `toml:"seed" yaml:"seed"`
	} `toml:"diagram" yaml:"diagram"`

	Watch         *bool  `toml:"watch" yaml:"watch"`
	WatchDebounce string `toml:"watch_debounce" yaml:"watch_debounce"`
	MetricsAddr   string `toml:"metrics_addr" yaml:"metrics_addr"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.gridsim/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".gridsim", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("network", fc.Network, &cfg.Network)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	lf := fc.LoadFlow
	s.setString("mode", lf.Mode, &cfg.Mode)
	s.setString("voltage-init", lf.VoltageInit, &cfg.VoltageInit)
	s.setFloat("tolerance", lf.Tolerance, &cfg.Tolerance)
	s.setInt("max-iterations", lf.MaxIterations, &cfg.MaxIterations)
	s.setBool("distributed-slack", lf.DistributedSlack, &cfg.DistributedSlack)
	s.setBool("reactive-limits", lf.ReactiveLimits, &cfg.ReactiveLimits)

	d := fc.Diagram
	s.setBool("edge-name-displayed", d.EdgeNameDisplayed, &cfg.EdgeNameDisplayed)
	s.setBool("id-displayed", d.IDDisplayed, &cfg.IDDisplayed)
	s.setBool("edge-info-along-edge", d.EdgeInfoAlongEdge, &cfg.EdgeInfoAlongEdge)
	s.setBool("bus-legend", d.BusLegend, &cfg.BusLegend)
	s.setBool("substation-description-displayed", d.SubstationDescriptionDisplayed, &cfg.SubstationDescriptionDisplayed)
	s.setOptionalInt("power-precision", d.PowerValuePrecision, &cfg.PowerValuePrecision)
	s.setOptionalInt("angle-precision", d.AngleValuePrecision, &cfg.AngleValuePrecision)
	s.setOptionalInt("current-precision", d.CurrentValuePrecision, &cfg.CurrentValuePrecision)
	s.setOptionalInt("voltage-precision", d.VoltageValuePrecision, &cfg.VoltageValuePrecision)
	s.setInt("layout-iterations", d.LayoutIterations, &cfg.LayoutIterations)
	s.setInt64("diagram-seed", d.Seed, &cfg.DiagramSeed)

	s.setBool("watch", fc.Watch, &cfg.Watch)
	if err := s.setDuration("watch-debounce", fc.WatchDebounce, &cfg.WatchDebounce); err != nil {
		return err
	}
	s.setString("metrics-addr", fc.MetricsAddr, &cfg.MetricsAddr)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
