package sim

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/metrics"
	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/atomicstack/research-console/internal/transport"
	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
)

// Server plays the game server side of one console's channel.
type Server struct {
	nc       *nats.Conn
	subjects transport.Subjects

	mu        sync.Mutex
	snap      rnd.Snapshot
	catalogue []CatalogueEntry
	history   []transport.Envelope
	subs      []*nats.Subscription
}

// New builds a simulator for console seeded from fx.
func New(nc *nats.Conn, console string, fx Fixture) *Server {
	return &Server{
		nc:        nc,
		subjects:  transport.SubjectsFor(console),
		snap:      fx.Snapshot.Clone(),
		catalogue: append([]CatalogueEntry(nil), fx.Catalogue...),
	}
}

// Start subscribes to the action and state subjects and publishes the
// initial snapshot.
func (s *Server) Start() error {
	if s.nc == nil {
		return errors.New("sim: no nats connection")
	}
	actions, err := s.nc.Subscribe(s.subjects.Action, s.handleAction)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.subjects.Action, err)
	}
	state, err := s.nc.Subscribe(s.subjects.State, s.handleState)
	if err != nil {
		_ = actions.Unsubscribe()
		return fmt.Errorf("subscribe %s: %w", s.subjects.State, err)
	}
	s.mu.Lock()
	s.subs = append(s.subs, actions, state)
	s.mu.Unlock()
	if err := s.nc.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return s.Publish()
}

// Stop drops the subscriptions.
func (s *Server) Stop() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()
	for _, sub := range subs {
		_ = sub.Unsubscribe()
	}
}

// Snapshot returns a copy of the current state.
func (s *Server) Snapshot() rnd.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// History returns every action envelope received so far.
func (s *Server) History() []transport.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]transport.Envelope(nil), s.history...)
}

// Apply records env and mutates the state. It reports whether the action
// changed anything the simulator models.
func (s *Server) Apply(env transport.Envelope) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, env)
	req := env.Request()
	fn, ok := handlers[req.Action]
	handled := ok && fn(s, params(req.Params))
	metrics.SimActions.WithLabelValues(env.Action, strconv.FormatBool(handled)).Inc()
	events.Sim.Action(env.ID, env.Action, handled)
	return handled
}

// Publish pushes the current snapshot to subscribers.
func (s *Server) Publish() error {
	data, nav, err := s.encode()
	if err != nil {
		return err
	}
	if err := s.nc.Publish(s.subjects.Snapshot, data); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	events.Sim.Publish(s.subjects.Snapshot, nav.Menu, nav.Submenu)
	return nil
}

// Mount registers GET /snapshot on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/snapshot", func(w http.ResponseWriter, _ *http.Request) {
		data, _, err := s.encode()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	})
}

func (s *Server) encode() ([]byte, rnd.Nav, error) {
	s.mu.Lock()
	snap := s.snap
	data, err := rnd.EncodeSnapshot(snap)
	s.mu.Unlock()
	if err != nil {
		return nil, rnd.Nav{}, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, snap.Nav, nil
}

func (s *Server) handleAction(msg *nats.Msg) {
	env, err := transport.DecodeEnvelope(msg.Data)
	if err != nil {
		events.Sim.Reject(err)
		logging.Error(err)
		return
	}
	s.Apply(env)
	if err := s.Publish(); err != nil {
		logging.Error(err)
	}
}

func (s *Server) handleState(msg *nats.Msg) {
	data, _, err := s.encode()
	if err != nil {
		logging.Error(err)
		return
	}
	if err := msg.Respond(data); err != nil {
		logging.Error(fmt.Errorf("respond state: %w", err))
	}
}
