package backend

import (
	"context"
	"sync"
	"time"
)

// fetchGate spaces snapshot fetches so a burst of ctrl+r presses and ticks
// collapses into at most one request per interval.
type fetchGate struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newFetchGate(interval time.Duration) *fetchGate {
	return &fetchGate{interval: max(interval, 0)}
}

// wait blocks until the next fetch slot opens or ctx ends.
func (g *fetchGate) wait(ctx context.Context) error {
	if g == nil || g.interval == 0 {
		return ctx.Err()
	}
	g.mu.Lock()
	now := time.Now()
	slot := g.next
	if slot.Before(now) {
		slot = now
	}
	g.next = slot.Add(g.interval)
	g.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
