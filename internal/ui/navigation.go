package ui

import (
	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/rnd"
	tea "github.com/charmbracelet/bubbletea"
)

const escapeControlID = "nav:escape"

// handleEscapeKey asks the server for the parent screen, or quits from the
// main menu.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.search.Focused() {
		m.search.Blur()
		return nil
	}
	if !m.snapshots.Ready() {
		events.Nav.Escape(0, 0, true)
		return tea.Quit
	}
	nav := m.snapshots.Current().Nav
	parent, ok := menu.Parent(nav)
	if !ok {
		events.Nav.Escape(nav.Menu, nav.Submenu, true)
		return tea.Quit
	}
	events.Nav.Escape(nav.Menu, nav.Submenu, false)
	events.Nav.Request(nav.Menu, nav.Submenu, parent.Menu, parent.Submenu)
	return m.activate(menu.Control{ID: escapeControlID, Label: "Back", Request: rnd.NavRequest(parent)})
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.search.Focused() {
		return m.submitSearch()
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	ctrl, ok := current.Current()
	if !ok {
		return nil
	}
	if ctrl.Request.Action == rnd.ActionNav {
		nav := m.snapshots.Current().Nav
		to := navTarget(ctrl.Request)
		events.Nav.Request(nav.Menu, nav.Submenu, to.Menu, to.Submenu)
	}
	return m.activate(ctrl)
}

func navTarget(req rnd.Request) rnd.Nav {
	var nav rnd.Nav
	if v, ok := req.Param("menu"); ok {
		nav.Menu, _ = v.(int)
	}
	if v, ok := req.Param("submenu"); ok {
		nav.Submenu, _ = v.(int)
	}
	return nav
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil && current.MoveCursorUp() {
		m.noteFocus(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil && current.MoveCursorDown() {
		m.noteFocus(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil && current.MoveCursorHome() {
		m.noteFocus(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil && current.MoveCursorEnd() {
		m.noteFocus(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil && current.MoveCursorPageUp(m.pageSize()) {
		m.noteFocus(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil && current.MoveCursorPageDown(m.pageSize()) {
		m.noteFocus(current)
	}
}

func (m *Model) noteFocus(current *level) {
	ctrl, _ := current.Current()
	events.UI.Focus(current.Screen, ctrl.ID, current.Cursor)
}

// pageSize approximates how many controls fit on one screen.
func (m *Model) pageSize() int {
	visible := m.maxVisibleLines()
	if visible <= 0 {
		return 0
	}
	return max(visible/2, 1)
}
