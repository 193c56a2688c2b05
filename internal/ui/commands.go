package ui

import (
	"github.com/atomicstack/research-console/internal/logging"
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		logging.Errorf("%s: %v", result.Action, result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

// activate sends the control's request unless the control is disabled or the
// wait overlay is up.
func (m *Model) activate(ctrl menu.Control) tea.Cmd {
	if ctrl.Disabled {
		events.UI.Blocked(ctrl.ID, "disabled")
		return nil
	}
	if message, waiting := m.snapshots.Current().Waiting(); waiting {
		events.UI.Blocked(ctrl.ID, message)
		return nil
	}
	events.UI.Activate(ctrl.ID, ctrl.Label)
	m.errMsg = ""
	return m.bus.Execute(command.Request{ID: ctrl.ID, Label: ctrl.Label, Payload: ctrl.Request})
}
