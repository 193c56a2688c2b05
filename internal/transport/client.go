package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/metrics"
	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/nats-io/nats.go"
)

// Conn is the subset of *nats.Conn the client uses.
type Conn interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
	RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error)
	Flush() error
}

// Client speaks the console protocol over a NATS connection.
type Client struct {
	conn     Conn
	console  string
	subjects Subjects
	now      func() time.Time
}

// NewClient binds conn to console.
func NewClient(conn Conn, console string) *Client {
	if console == "" {
		console = DefaultConsole
	}
	return &Client{
		conn:     conn,
		console:  console,
		subjects: SubjectsFor(console),
		now:      time.Now,
	}
}

// DialOptions names the connection after the console ahead of opts.
func DialOptions(console string, opts ...nats.Option) []nats.Option {
	return append([]nats.Option{nats.Name("research-console/" + console)}, opts...)
}

// Dial connects to a NATS server at url.
func Dial(url, console string, opts ...nats.Option) (*Client, *nats.Conn, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	nc, err := nats.Connect(url, DialOptions(console, opts...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", url, err)
	}
	return NewClient(nc, console), nc, nil
}

// Console returns the bound console id.
func (c *Client) Console() string { return c.console }

// Subjects returns the subjects in use.
func (c *Client) Subjects() Subjects { return c.subjects }

// Send publishes req as a fire-and-forget action and returns its envelope id.
func (c *Client) Send(req rnd.Request) (string, error) {
	env := NewEnvelope(c.console, req, c.now())
	data, err := json.Marshal(env)
	if err != nil {
		metrics.ActionFailures.WithLabelValues(req.Action).Inc()
		return "", fmt.Errorf("encode %s: %w", req.Action, err)
	}
	err = c.conn.Publish(c.subjects.Action, data)
	events.Backend.Publish(c.subjects.Action, req.Action, env.ID, err)
	if err != nil {
		metrics.ActionFailures.WithLabelValues(req.Action).Inc()
		return env.ID, fmt.Errorf("publish %s: %w", req.Action, err)
	}
	metrics.ActionsSent.WithLabelValues(req.Action).Inc()
	return env.ID, nil
}

// FetchSnapshot asks the server for the current snapshot payload.
func (c *Client) FetchSnapshot(ctx context.Context) ([]byte, error) {
	msg, err := c.conn.RequestWithContext(ctx, c.subjects.State, nil)
	events.Backend.Fetch(c.subjects.State, err)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", c.subjects.State, err)
	}
	return msg.Data, nil
}

// SubscribeSnapshots delivers every pushed payload to fn.
func (c *Client) SubscribeSnapshots(fn func([]byte)) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(c.subjects.Snapshot, func(msg *nats.Msg) {
		fn(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", c.subjects.Snapshot, err)
	}
	events.Backend.Subscribed(c.subjects.Snapshot)
	return sub, nil
}
