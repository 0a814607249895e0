// Package cliconfig loads the gridsim command configuration from defaults,
// a config file, GRIDSIM_* environment variables and flags.
package cliconfig

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bft-labs/gridsim/internal/domain"
)

// DefaultOutput is the diagram file written in the working directory.
const DefaultOutput = "single-eu.svg"

// Config holds CLI configuration for gridsim.
type Config struct {
	Network string `json:"network" validate:"required,oneof=ieee14 ieee300"`
	Output  string `json:"output" validate:"required"`

	LogLevel  string `json:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" validate:"oneof=console json"`

	// Load flow
	Mode             string  `json:"mode" validate:"oneof=ac dc"`
	VoltageInit      string  `json:"voltage_init" validate:"oneof=uniform dc"`
	Tolerance        float64 `json:"tolerance" validate:"gt=0,lt=1"`
	MaxIterations    int     `json:"max_iterations" validate:"min=1,max=1000"`
	DistributedSlack bool    `json:"distributed_slack"`
	ReactiveLimits   bool    `json:"reactive_limits"`

	// Diagram
	EdgeNameDisplayed              bool  `json:"edge_name_displayed"`
	IDDisplayed                    bool  `json:"id_displayed"`
	EdgeInfoAlongEdge              bool  `json:"edge_info_along_edge"`
	BusLegend                      bool  `json:"bus_legend"`
	SubstationDescriptionDisplayed bool  `json:"substation_description_displayed"`
	PowerValuePrecision            int   `json:"power_value_precision" validate:"min=0,max=6"`
	AngleValuePrecision            int   `json:"angle_value_precision" validate:"min=0,max=6"`
	CurrentValuePrecision          int   `json:"current_value_precision" validate:"min=0,max=6"`
	VoltageValuePrecision          int   `json:"voltage_value_precision" validate:"min=0,max=6"`
	LayoutIterations               int   `json:"layout_iterations" validate:"min=1,max=10000"`
	DiagramSeed                    int64 `json:"diagram_seed"`

	// Watch mode
	Watch         bool          `json:"watch"`
	WatchDebounce time.Duration `json:"watch_debounce" validate:"gt=0"`
	MetricsAddr   string        `json:"metrics_addr" validate:"omitempty,hostname_port"`
}

// DefaultConfig returns a Config with default values.
// The defaults create the 300-bus network, run an AC load flow and write
// single-eu.svg.
func DefaultConfig() Config {
	return Config{
		Network:                        "ieee300",
		Output:                         DefaultOutput,
		LogLevel:                       "info",
		LogFormat:                      "console",
		Mode:                           "ac",
		VoltageInit:                    "uniform",
		Tolerance:                      1e-6,
		MaxIterations:                  15,
		DistributedSlack:               true,
		ReactiveLimits:                 true,
		EdgeNameDisplayed:              true,
		EdgeInfoAlongEdge:              true,
		BusLegend:                      true,
		SubstationDescriptionDisplayed: true,
		PowerValuePrecision:            1,
		AngleValuePrecision:            1,
		CurrentValuePrecision:          0,
		VoltageValuePrecision:          1,
		LayoutIterations:               300,
		DiagramSeed:                    1,
		WatchDebounce:                  500 * time.Millisecond,
	}
}

var validate = validator.New()

// Validate checks the configuration for errors.
// Returned errors wrap domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, formatValidationError(err))
	}
	if c.MetricsAddr != "" && !c.Watch {
		return fmt.Errorf("%w: metrics-addr requires watch mode", domain.ErrInvalidConfig)
	}
	return nil
}

// formatValidationError turns the first validator failure into a readable error.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	field, param := e.Field(), e.Param()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %q", field, param, fmt.Sprint(e.Value()))
	case "min":
		return fmt.Errorf("%s: must be at least %s", field, param)
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, param)
	case "max":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "lt":
		return fmt.Errorf("%s: must be less than %s", field, param)
	case "hostname_port":
		return fmt.Errorf("%s: must be host:port, got %q", field, fmt.Sprint(e.Value()))
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setOptionalInt sets an int value from a pointer, zero included, if not nil
// and flag not changed.
func (s *configSetter) setOptionalInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setInt64 sets an int64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt64(flag string, value *int64, dst *int64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setOptionalIntFromString is setIntFromString that also accepts zero.
func (s *configSetter) setOptionalIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setInt64FromString parses a string to int64 and sets the destination.
func (s *configSetter) setInt64FromString(flag, value string, dst *int64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
