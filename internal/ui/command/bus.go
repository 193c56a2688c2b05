package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/rnd"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNotConnected is reported when no sender is wired.
var ErrNotConnected = errors.New("not connected to a game server")

// Sender delivers one action to the game server and returns its request id.
type Sender interface {
	Send(rnd.Request) (string, error)
}

// Request encapsulates one control activation.
type Request struct {
	ID      string
	Label   string
	Payload rnd.Request
}

// Bus turns control activations into Bubble Tea commands.
type Bus struct {
	sender Sender
}

// New initialises a command bus instance.
func New(sender Sender) *Bus {
	return &Bus{sender: sender}
}

// Execute wraps the send in a command while emitting trace logs. The command
// resolves to a menu.ActionResult.
func (b *Bus) Execute(req Request) tea.Cmd {
	action := req.Payload.Action
	events.Command.Queue(req.ID, action)
	return func() tea.Msg {
		if b == nil || b.sender == nil {
			events.Command.Skip(req.ID, action)
			return menu.ActionResult{ID: req.ID, Action: action, Err: ErrNotConnected}
		}
		envID, err := b.sender.Send(req.Payload)
		result := menu.ActionResult{ID: req.ID, Action: action, Err: err}
		if err == nil {
			result.Info = fmt.Sprintf("Sent %s (%s)", action, envID)
		}
		events.Command.Result(req.ID, action, fmt.Sprintf("%T", result))
		return result
	}
}
