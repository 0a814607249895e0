package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/gridsim/internal/cliconfig"
	"github.com/bft-labs/gridsim/pkg/gridsim"
	gridlog "github.com/bft-labs/gridsim/pkg/log"
	"github.com/bft-labs/gridsim/plugins/watch"
)

const longHelp = `Create the IEEE 300-bus test network, solve its load flow and draw it as a
network-area diagram in single-eu.svg.

Every setting is optional. Values come from flags, then GRIDSIM_* environment
variables, then the config file (TOML, or YAML by extension), then defaults.

With --watch the pipeline re-runs whenever the config file changes, until
interrupted.`

var exampleUsage = strings.Trim(`
  gridsim
  gridsim --network ieee14 --output ieee14.svg
  gridsim --mode dc --log-level debug
  gridsim --config ./gridsim.yaml --watch --metrics-addr 127.0.0.1:9102
`, "\n")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:          "gridsim",
		Short:        "Solve a test power network and draw it as an SVG diagram",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Determine config path
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Flags are parsed into cfg; keep it as the base of every reload
			base := cfg
			resolved, err := resolveConfig(base, cfgFile, changed)
			if err != nil {
				return err
			}

			runLog, err := cliconfig.NewLogger(os.Stderr, resolved.LogLevel, resolved.LogFormat)
			if err != nil {
				return err
			}
			log = runLog
			log.Info().Interface("config", resolved).Msg("configuration")

			// Watch the config file only when it is there or was asked for
			watchPath := ""
			if cfgPath != "" || cliconfig.FileExists(cfgFile) {
				watchPath = cfgFile
			}

			opts := []gridsim.Option{
				gridsim.WithLogger(gridlog.NewZerologLogger(log)),
			}
			if resolved.Watch {
				opts = append(opts,
					watch.WithWatcher(watch.Config{DebounceDelay: resolved.WatchDebounce}),
					gridsim.WithConfigLoader(func(context.Context) (gridsim.Config, error) {
						c, err := resolveConfig(base, cfgFile, changed)
						if err != nil {
							return gridsim.Config{}, err
						}
						return toLibraryConfig(c, watchPath), nil
					}),
				)
			}

			g, err := gridsim.New(toLibraryConfig(resolved, watchPath), opts...)
			if err != nil {
				return fmt.Errorf("create gridsim: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if resolved.Watch {
				return g.Watch(ctx)
			}

			_, err = g.Run(ctx)
			return err
		},
	}

	// Flags
	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.gridsim/config.toml)")
	f.StringVar(&cfg.Network, "network", cfg.Network, "built-in network to create (ieee300, ieee14)")
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "diagram file to write")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")

	f.StringVar(&cfg.Mode, "mode", cfg.Mode, "load flow mode (ac, dc)")
	f.StringVar(&cfg.VoltageInit, "voltage-init", cfg.VoltageInit, "AC starting point (uniform, dc)")
	f.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "largest accepted bus mismatch in pu")
	f.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "maximum Newton iterations")
	f.BoolVar(&cfg.DistributedSlack, "distributed-slack", cfg.DistributedSlack, "spread slack power over generators")
	f.BoolVar(&cfg.ReactiveLimits, "reactive-limits", cfg.ReactiveLimits, "enforce generator reactive limits")

	f.BoolVar(&cfg.EdgeNameDisplayed, "edge-name-displayed", cfg.EdgeNameDisplayed, "show branch names")
	f.BoolVar(&cfg.IDDisplayed, "id-displayed", cfg.IDDisplayed, "label elements by id instead of name")
	f.BoolVar(&cfg.EdgeInfoAlongEdge, "edge-info-along-edge", cfg.EdgeInfoAlongEdge, "rotate flow values along edges")
	f.BoolVar(&cfg.BusLegend, "bus-legend", cfg.BusLegend, "show bus voltage and angle")
	f.BoolVar(&cfg.SubstationDescriptionDisplayed, "substation-description-displayed", cfg.SubstationDescriptionDisplayed, "show substation names")
	f.IntVar(&cfg.PowerValuePrecision, "power-precision", cfg.PowerValuePrecision, "decimals of power values")
	f.IntVar(&cfg.AngleValuePrecision, "angle-precision", cfg.AngleValuePrecision, "decimals of angle values")
	f.IntVar(&cfg.CurrentValuePrecision, "current-precision", cfg.CurrentValuePrecision, "decimals of current values")
	f.IntVar(&cfg.VoltageValuePrecision, "voltage-precision", cfg.VoltageValuePrecision, "decimals of voltage values")
	f.IntVar(&cfg.LayoutIterations, "layout-iterations", cfg.LayoutIterations, "force-directed layout steps")
	f.Int64Var(&cfg.DiagramSeed, "diagram-seed", cfg.DiagramSeed, "seed of the diagram layout")

	f.BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run when the config file changes")
	f.DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "quiet time after a config change before re-running")
	f.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address in watch mode")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("gridsim")
		os.Exit(1)
	}
}

// resolveConfig layers the config file and environment over base, keeping
// values of changed flags.
func resolveConfig(base cliconfig.Config, cfgFile string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	// Apply environment variables (GRIDSIM_*)
	// These override file config but are overridden by flags (checked via changed map)
	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// toLibraryConfig converts the CLI configuration to gridsim.Config.
func toLibraryConfig(cfg cliconfig.Config, configPath string) gridsim.Config {
	lib := gridsim.DefaultConfig()
	lib.Network = cfg.Network
	lib.OutputPath = cfg.Output
	lib.ConfigPath = configPath
	lib.MetricsAddr = cfg.MetricsAddr

	lib.LoadFlow.DC = cfg.Mode == "dc"
	lib.LoadFlow.VoltageInit = gridsim.VoltageInitMode(cfg.VoltageInit)
	lib.LoadFlow.Tolerance = cfg.Tolerance
	lib.LoadFlow.MaxIterations = cfg.MaxIterations
	lib.LoadFlow.DistributedSlack = cfg.DistributedSlack
	lib.LoadFlow.ReactiveLimits = cfg.ReactiveLimits

	lib.Diagram.EdgeNameDisplayed = cfg.EdgeNameDisplayed
	lib.Diagram.IDDisplayed = cfg.IDDisplayed
	lib.Diagram.EdgeInfoAlongEdge = cfg.EdgeInfoAlongEdge
	lib.Diagram.BusLegend = cfg.BusLegend
	lib.Diagram.SubstationDescriptionDisplayed = cfg.SubstationDescriptionDisplayed
	lib.Diagram.PowerValuePrecision = cfg.PowerValuePrecision
	lib.Diagram.AngleValuePrecision = cfg.AngleValuePrecision
	lib.Diagram.CurrentValuePrecision = cfg.CurrentValuePrecision
	lib.Diagram.VoltageValuePrecision = cfg.VoltageValuePrecision
	lib.Diagram.LayoutIterations = cfg.LayoutIterations
	lib.Diagram.Seed = cfg.DiagramSeed
	return lib
}
