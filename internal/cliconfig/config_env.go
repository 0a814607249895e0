package cliconfig

import "os"

// ApplyEnvConfig applies GRIDSIM_* environment variables to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("network", os.Getenv("GRIDSIM_NETWORK"), &cfg.Network)
	s.setString("output", os.Getenv("GRIDSIM_OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv("GRIDSIM_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("GRIDSIM_LOG_FORMAT"), &cfg.LogFormat)

	s.setString("mode", os.Getenv("GRIDSIM_MODE"), &cfg.Mode)
	s.setString("voltage-init", os.Getenv("GRIDSIM_VOLTAGE_INIT"), &cfg.VoltageInit)
	if err := s.setFloatFromString("tolerance", os.Getenv("GRIDSIM_TOLERANCE"), &cfg.Tolerance); err != nil {
		return err
	}
	if err := s.setIntFromString("max-iterations", os.Getenv("GRIDSIM_MAX_ITERATIONS"), &cfg.MaxIterations); err != nil {
		return err
	}
	s.setBoolFromString("distributed-slack", os.Getenv("GRIDSIM_DISTRIBUTED_SLACK"), &cfg.DistributedSlack)
	s.setBoolFromString("reactive-limits", os.Getenv("GRIDSIM_REACTIVE_LIMITS"), &cfg.ReactiveLimits)

	s.setBoolFromString("edge-name-displayed", os.Getenv("GRIDSIM_EDGE_NAME_DISPLAYED"), &cfg.EdgeNameDisplayed)
	s.setBoolFromString("id-displayed", os.Getenv("GRIDSIM_ID_DISPLAYED"), &cfg.IDDisplayed)
	s.setBoolFromString("edge-info-along-edge", os.Getenv("GRIDSIM_EDGE_INFO_ALONG_EDGE"), &cfg.EdgeInfoAlongEdge)
	s.setBoolFromString("bus-legend", os.Getenv("GRIDSIM_BUS_LEGEND"), &cfg.BusLegend)
	s.setBoolFromString("substation-description-displayed", os.Getenv("GRIDSIM_SUBSTATION_DESCRIPTION_DISPLAYED"), &cfg.SubstationDescriptionDisplayed)

	precisions := []struct {
		flag, env string
		dst       *int
	}{
		{"power-precision", "GRIDSIM_POWER_VALUE_PRECISION", &cfg.PowerValuePrecision},
		{"angle-precision", "GRIDSIM_ANGLE_VALUE_PRECISION", &cfg.AngleValuePrecision},
		{"current-precision", "GRIDSIM_CURRENT_VALUE_PRECISION", &cfg.CurrentValuePrecision},
		{"voltage-precision", "GRIDSIM_VOLTAGE_VALUE_PRECISION", &cfg.VoltageValuePrecision},
	}
	for _, p := range precisions {
		if err := s.setOptionalIntFromString(p.flag, os.Getenv(p.env), p.dst); err != nil {
			return err
		}
	}
	if err := s.setIntFromString("layout-iterations", os.Getenv("GRIDSIM_LAYOUT_ITERATIONS"), &cfg.LayoutIterations); err != nil {
		return err
	}
	if err := s.setInt64FromString("diagram-seed", os.Getenv("GRIDSIM_DIAGRAM_SEED"), &cfg.DiagramSeed); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("GRIDSIM_WATCH"), &cfg.Watch)
	if err := s.setDuration("watch-debounce", os.Getenv("GRIDSIM_WATCH_DEBOUNCE"), &cfg.WatchDebounce); err != nil {
		return err
	}
	s.setString("metrics-addr", os.Getenv("GRIDSIM_METRICS_ADDR"), &cfg.MetricsAddr)

	return nil
}
