package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/google/uuid"
)

// ErrMalformedEnvelope is returned for action payloads without an action name.
var ErrMalformedEnvelope = errors.New("malformed action envelope")

// Envelope is the wire form of an outbound action.
type Envelope struct {
	ID      string         `json:"id"`
	Console string         `json:"console"`
	Action  string         `json:"action"`
	Params  map[string]any `json:"params,omitempty"`
	SentAt  time.Time      `json:"sent_at"`
}

// NewEnvelope wraps req with a fresh request id.
func NewEnvelope(console string, req rnd.Request, now time.Time) Envelope {
	params := req.Params
	if len(params) == 0 {
		params = nil
	}
	return Envelope{
		ID:      uuid.NewString(),
		Console: console,
		Action:  req.Action,
		Params:  params,
		SentAt:  now.UTC().Truncate(time.Second),
	}
}

// Request unwraps the envelope.
func (e Envelope) Request() rnd.Request {
	return rnd.Request{Action: e.Action, Params: e.Params}
}

// DecodeEnvelope parses an action payload.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if env.Action == "" {
		return Envelope{}, fmt.Errorf("%w: missing action", ErrMalformedEnvelope)
	}
	return env, nil
}
