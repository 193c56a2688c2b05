package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/nats-io/nats.go"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	// KindSnapshot carries a pushed or fetched snapshot payload.
	KindSnapshot Kind = iota
	// KindConnection reports a subscription failure.
	KindConnection
)

// Event conveys a raw payload or an error from the backend.
type Event struct {
	Kind   Kind
	Data   []byte
	Err    error
	Pushed bool
}

// Source is the game server side of the channel.
type Source interface {
	SubscribeSnapshots(func([]byte)) (*nats.Subscription, error)
	FetchSnapshot(context.Context) ([]byte, error)
}

// Watcher listens for snapshot pushes, fetches the current snapshot on start
// and optionally re-fetches it every refresh interval.
type Watcher struct {
	source       Source
	interval     time.Duration
	fetchTimeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	pushes  chan []byte
	refresh chan struct{}
	events  chan Event
	wg      sync.WaitGroup

	// pushGen counts pushes received. A fetch started before a push may
	// carry older state than that push, so its reply is dropped.
	pushGen atomic.Uint64
	// emitMu orders a fetch reply's staleness check and send against pushes.
	emitMu sync.Mutex
}

// NewWatcher starts a watcher. A zero interval disables periodic refresh.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:       source,
		interval:     interval,
		fetchTimeout: 2 * time.Second,
		ctx:          ctx,
		cancel:       cancel,
		pushes:       make(chan []byte, 16),
		refresh:      make(chan struct{}, 1),
		events:       make(chan Event, 16),
	}

	w.startSubscriber()
	w.startFetcher()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh requests an out-of-band fetch. Requests coalesce while one is
// pending.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Goroutines exit after their current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all goroutines have exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startSubscriber() {
	sub, err := w.source.SubscribeSnapshots(func(data []byte) {
		// Runs on the NATS dispatch goroutine; pushes is never closed.
		w.pushGen.Add(1)
		select {
		case <-w.ctx.Done():
		case w.pushes <- data:
		}
	})
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if err != nil {
			w.emit(Event{Kind: KindConnection, Err: err})
			return
		}
		defer func() { _ = sub.Unsubscribe() }()
		for {
			select {
			case <-w.ctx.Done():
				return
			case data := <-w.pushes:
				if !w.emitOrdered(Event{Kind: KindSnapshot, Data: data, Pushed: true}) {
					return
				}
			}
		}
	}()
}

func (w *Watcher) startFetcher() {
	gate := newFetchGate(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(func(ctx context.Context) ([]byte, error) {
		if err := gate.wait(ctx); err != nil {
			return nil, err
		}
		fetchCtx, cancel := context.WithTimeout(ctx, w.fetchTimeout)
		defer cancel()
		return w.source.FetchSnapshot(fetchCtx)
	})
}

func (w *Watcher) emitOrdered(evt Event) bool {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()
	return w.emit(evt)
}

// emitFetched sends a fetch result unless a push arrived after the fetch
// started. It reports false only when the watcher is stopping.
func (w *Watcher) emitFetched(evt Event, startGen uint64) bool {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()
	if w.pushGen.Load() != startGen {
		events.Backend.StaleFetch(startGen, w.pushGen.Load())
		return w.ctx.Err() == nil
	}
	return w.emit(evt)
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}

func (w *Watcher) poll(fetch func(context.Context) ([]byte, error)) {
	defer w.wg.Done()

	emit := func() bool {
		startGen := w.pushGen.Load()
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		return w.emitFetched(Event{Kind: KindSnapshot, Data: data, Err: err}, startGen)
	}

	if !emit() {
		return
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-tick:
			if !emit() {
				return
			}
		case <-w.refresh:
			if !emit() {
				return
			}
		}
	}
}
