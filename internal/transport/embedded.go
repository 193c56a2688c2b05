package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// EmbeddedConfig controls RunEmbeddedServer.
type EmbeddedConfig struct {
	// InProcess skips the TCP listener; clients connect through the server
	// handle only.
	InProcess bool
	Host      string
	Port      int
	Logging   bool
}

// RunEmbeddedServer starts a NATS server inside the process and returns a
// connected client. The error channel fires when ctx ends. The caller owns
// shutdown of both the connection and the server.
func RunEmbeddedServer(ctx context.Context, cfg EmbeddedConfig) (*nats.Conn, *server.Server, <-chan error, error) {
	opts := &server.Options{
		ServerName: "rnd_embedded",
		DontListen: cfg.InProcess,
		Host:       cfg.Host,
		Port:       cfg.Port,
		NoSigs:     true,
	}
	if opts.Port == 0 && !cfg.InProcess {
		opts.Port = server.RANDOM_PORT
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("nats server: %w", err)
	}
	if cfg.Logging {
		ns.SetLogger(NewServerLogger(), false, false)
	}
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		return nil, nil, nil, errors.New("nats server not ready")
	}

	clientOpts := []nats.Option{nats.Name("rnd-embedded")}
	if cfg.InProcess {
		clientOpts = append(clientOpts, nats.InProcessServer(ns))
	}
	nc, err := nats.Connect(ns.ClientURL(), clientOpts...)
	if err != nil {
		ns.Shutdown()
		return nil, nil, nil, fmt.Errorf("nats connect: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		errCh <- ctx.Err()
	}()
	return nc, ns, errCh, nil
}
