package testutil

import (
	"testing"
	"time"
)

func TestStartNATSRoundTrip(t *testing.T) {
	nc, ns := StartNATS(t)
	other := Connect(t, ns)

	sub, err := other.SubscribeSync("rnd.test")
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := other.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := nc.Publish("rnd.test", []byte("ping")); err != nil {
		t.Fatalf("publish: %v", err)
	}
	msg, err := sub.NextMsg(2 * time.Second)
	if err != nil {
		t.Fatalf("next msg: %v", err)
	}
	if string(msg.Data) != "ping" {
		t.Fatalf("expected ping, got %q", msg.Data)
	}
}

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if root == "" {
		t.Fatalf("expected module root")
	}
}
