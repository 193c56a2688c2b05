package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atomicstack/research-console/internal/config"
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/metrics"
	"github.com/atomicstack/research-console/internal/sim"
	"github.com/atomicstack/research-console/internal/transport"
)

func main() {
	cfg, err := config.LoadSim()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	if err := run(cfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Sim) error {
	metrics.Init()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fx, err := sim.LoadFixture(cfg.Fixture)
	if err != nil {
		return err
	}
	nc, ns, natsErrs, err := transport.RunEmbeddedServer(ctx, transport.EmbeddedConfig{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Logging: cfg.Logging.Trace,
	})
	if err != nil {
		return err
	}
	defer ns.Shutdown()
	defer nc.Close()

	server := sim.New(nc, cfg.Console, fx)
	if err := server.Start(); err != nil {
		return err
	}
	defer server.Stop()

	var httpErrs <-chan error
	if cfg.HTTPAddr != "" {
		httpErrs = metrics.Serve(ctx, cfg.HTTPAddr, server.Mount)
	}
	logging.Infof("rndsim: console %q on %s", cfg.Console, ns.ClientURL())
	fmt.Fprintf(os.Stderr, "rndsim: console %q on %s\n", cfg.Console, ns.ClientURL())

	select {
	case <-natsErrs:
		return nil
	case err := <-httpErrs:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}
