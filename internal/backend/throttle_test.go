package backend

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFetchGateSpacesFetches(t *testing.T) {
	gate := newFetchGate(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for range 3 {
		if err := gate.wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 60*time.Millisecond {
		t.Fatalf("expected at least 60ms across three fetches, got %v", elapsed)
	}
}

func TestFetchGateZeroIntervalNeverBlocks(t *testing.T) {
	start := time.Now()
	var gate *fetchGate
	_ = gate.wait(context.Background())
	_ = newFetchGate(0).wait(context.Background())
	if elapsed := time.Since(start); elapsed > 20*time.Millisecond {
		t.Fatalf("expected no delay, got %v", elapsed)
	}
}

func TestFetchGateStopsOnCancel(t *testing.T) {
	gate := newFetchGate(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if err := gate.wait(ctx); err != nil {
		t.Fatalf("expected first slot to be free, got %v", err)
	}
	cancel()
	if err := gate.wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
