package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/research-console/internal/backend"
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/menu"
	uistate "github.com/atomicstack/research-console/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		return
	}
	res := m.dispatcher.Handle(evt)
	if res.Rejected != nil {
		m.backendLastErr = fmt.Sprintf("ignored snapshot: %v", res.Rejected)
		return
	}
	if !res.SnapshotUpdated {
		return
	}
	m.backendLastErr = ""
	if len(res.Skipped) > 0 {
		m.backendLastErr = "ignored malformed fields: " + strings.Join(res.Skipped, ", ")
	}
	m.syncScreen(res.NavChanged)
}

// syncScreen reconciles local interaction state with the current snapshot.
// A nav change starts a fresh focus level; otherwise focus follows the
// previously focused control id.
func (m *Model) syncScreen(navChanged bool) {
	snap := m.snapshots.Current()
	if navChanged || m.level == nil {
		screenID := ""
		if screen, ok := m.registry.ScreenFor(snap.Nav); ok {
			screenID = screen.ID
		}
		m.level = uistate.NewLevel(screenID, snap.Nav)
		m.errMsg = ""
	}
	blocks := m.registry.Render(snap)
	m.level.UpdateControls(menu.EnabledControls(blocks))
	if !menu.HasSearch(blocks) {
		m.resetSearch()
	}
	message, waiting := snap.Waiting()
	if waiting != m.overlayShown {
		m.overlayShown = waiting
		events.UI.Overlay(message, waiting)
	}
}
