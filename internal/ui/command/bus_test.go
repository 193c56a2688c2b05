package command

import (
	"errors"
	"testing"

	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/rnd"
)

type recordingSender struct {
	sent []rnd.Request
	err  error
}

func (s *recordingSender) Send(req rnd.Request) (string, error) {
	s.sent = append(s.sent, req)
	return "req-1", s.err
}

func TestExecuteSendsOnce(t *testing.T) {
	sender := &recordingSender{}
	bus := New(sender)
	cmd := bus.Execute(Request{ID: "settings:connect", Label: "Connect", Payload: rnd.NewRequest(rnd.ActionToggleSync)})
	if len(sender.sent) != 0 {
		t.Fatalf("expected send deferred until command runs")
	}
	msg := cmd()
	result, ok := msg.(menu.ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", msg)
	}
	if result.Err != nil || result.Action != rnd.ActionToggleSync {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(sender.sent) != 1 || sender.sent[0].Action != rnd.ActionToggleSync {
		t.Fatalf("expected one togglesync, got %#v", sender.sent)
	}
}

func TestExecutePropagatesSendError(t *testing.T) {
	bus := New(&recordingSender{err: errors.New("publish failed")})
	result := bus.Execute(Request{ID: "x", Payload: rnd.NewRequest(rnd.ActionSync)})().(menu.ActionResult)
	if result.Err == nil || result.Err.Error() != "publish failed" {
		t.Fatalf("expected publish error, got %v", result.Err)
	}
}

func TestExecuteWithoutSender(t *testing.T) {
	result := New(nil).Execute(Request{ID: "x", Payload: rnd.NewRequest(rnd.ActionSync)})().(menu.ActionResult)
	if !errors.Is(result.Err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", result.Err)
	}
}
