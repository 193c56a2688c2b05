package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/research-console/internal/backend"
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/metrics"
	"github.com/atomicstack/research-console/internal/transport"
	"github.com/atomicstack/research-console/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nats-io/nats.go"
)

// Config describes user-provided application options.
type Config struct {
	URL         string
	Console     string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	Mouse       bool
	Refresh     time.Duration
	MetricsAddr string
}

// connectOptions keeps reconnecting forever and traces link changes. The
// connection name is set by transport.Dial.
func connectOptions() []nats.Option {
	return []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			events.Backend.Connection("disconnected")
			if err != nil {
				logging.Errorf("nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(*nats.Conn) {
			events.Backend.Connection("reconnected")
		}),
	}
}

// Run connects to the game server and executes the Bubble Tea program.
func Run(cfg Config) error {
	metrics.Init()
	client, nc, err := transport.Dial(cfg.URL, cfg.Console, connectOptions()...)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.URL, err)
	}
	defer nc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MetricsAddr != "" {
		errs := metrics.Serve(ctx, cfg.MetricsAddr, nil)
		go func() {
			if err := <-errs; err != nil && !errors.Is(err, context.Canceled) {
				logging.Errorf("metrics server: %v", err)
			}
		}()
	}

	watcher := backend.NewWatcher(client, cfg.Refresh)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Mouse:      cfg.Mouse,
		Watcher:    watcher,
		Sender:     client,
	})
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
