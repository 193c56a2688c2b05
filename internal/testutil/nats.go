package testutil

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// StartNATS boots an in-process NATS server without a TCP listener and
// returns a connected client. Both are torn down when the test ends.
func StartNATS(t testing.TB) (*nats.Conn, *server.Server) {
	t.Helper()
	ns, err := server.NewServer(&server.Options{
		ServerName: "rnd_test",
		DontListen: true,
		NoSigs:     true,
		NoLog:      true,
	})
	if err != nil {
		t.Fatalf("failed to create nats server: %v", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatalf("nats server not ready")
	}
	nc, err := nats.Connect(ns.ClientURL(), nats.InProcessServer(ns))
	if err != nil {
		ns.Shutdown()
		t.Fatalf("failed to connect to nats server: %v", err)
	}
	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})
	return nc, ns
}

// Connect opens an additional client to ns, closed when the test ends.
func Connect(t testing.TB, ns *server.Server) *nats.Conn {
	t.Helper()
	nc, err := nats.Connect(ns.ClientURL(), nats.InProcessServer(ns))
	if err != nil {
		t.Fatalf("failed to connect to nats server: %v", err)
	}
	t.Cleanup(nc.Close)
	return nc
}
