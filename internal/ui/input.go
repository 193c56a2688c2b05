package ui

import (
	"strings"

	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchControlID = "search"
	searchZoneID    = "search:input"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.search.Focused() {
		if handled, cmd := m.handleSearchKey(keyMsg); handled {
			return cmd
		}
	}
	switch keyMsg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up", "shift+tab":
		m.moveCursorUp()
	case "down", "tab":
		m.moveCursorDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "ctrl+r":
		if m.backend != nil {
			m.backend.Refresh()
			m.setInfo("Refreshing…")
		}
	case "/":
		m.focusSearch()
	default:
		if keyMsg.Type == tea.KeyRunes && !keyMsg.Alt && m.focusSearch() {
			return m.updateSearch(keyMsg)
		}
	}
	return nil
}

// handleSearchKey routes keys to the focused search box. Navigation keys
// release focus and fall through to the control cursor.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return true, m.submitSearch()
	case "esc":
		m.search.Blur()
		return true, nil
	case "up", "down", "tab", "shift+tab":
		m.search.Blur()
		return false, nil
	}
	return true, m.updateSearch(msg)
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		events.Search.Input(after)
	}
	return cmd
}

// focusSearch focuses the search box when the current screen shows one.
func (m *Model) focusSearch() bool {
	if !menu.HasSearch(m.blocks()) {
		return false
	}
	if !m.search.Focused() {
		m.search.Focus()
	}
	return true
}

func (m *Model) submitSearch() tea.Cmd {
	term := strings.TrimSpace(m.search.Value())
	if term == "" {
		return nil
	}
	events.Search.Submit(term)
	m.search.Blur()
	return m.activate(menu.Control{ID: searchControlID, Label: "Search", Request: menu.SearchRequest(term)})
}

// resetSearch clears the search box once it leaves the screen.
func (m *Model) resetSearch() {
	if m.search.Value() == "" && !m.search.Focused() {
		return
	}
	m.search.Reset()
	m.search.Blur()
	events.Search.Reset()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursorUp()
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursorDown()
		return nil
	}
	if m.zones == nil || ev.Action != tea.MouseActionRelease || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if info := m.zones.Get(m.prefix + searchZoneID); info != nil && info.InBounds(ev) {
		m.focusSearch()
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	for _, ctrl := range current.Controls {
		info := m.zones.Get(m.prefix + ctrl.ID)
		if info == nil || !info.InBounds(ev) {
			continue
		}
		current.Focus(ctrl.ID)
		m.noteFocus(current)
		return m.activate(ctrl)
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
