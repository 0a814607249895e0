// Package gridsim runs the gridsim pipeline from Go programs.
//
// A pipeline run creates a built-in test network, solves its load flow and
// draws the solved network as a network-area diagram in an SVG file.
//
// # Basic Usage
//
//	g, err := gridsim.New(gridsim.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := g.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.OutputPath, report.BytesWritten)
//
// With the default configuration the IEEE 300-bus network is solved with an
// AC load flow and the diagram is written to single-eu.svg in the working
// directory.
//
// # Watch Mode
//
// [Gridsim.Watch] runs the pipeline once, then again on every [Gridsim.Trigger]
// until the context is canceled. Plugins registered with [WithPlugin] are
// initialized when watching starts and receive the trigger through
// [PluginConfig]:
//
//	import "github.com/bft-labs/gridsim/plugins/watch"
//
//	g, err := gridsim.New(cfg,
//	    watch.WithWatcher(watch.DefaultConfig()),
//	    gridsim.WithConfigLoader(reload),
//	)
//	err = g.Watch(ctx)
//
// When a config loader is set, every triggered run first reloads the
// configuration. A failed reload keeps the previous configuration.
//
// # Dependency Injection
//
// The network factory, solver and renderer can be replaced, for tests or to
// plug in other implementations:
//
//	g, err := gridsim.New(cfg,
//	    gridsim.WithNetworkFactory(myFactory),
//	    gridsim.WithSolver(mySolver),
//	    gridsim.WithRenderer(myRenderer),
//	)
package gridsim
