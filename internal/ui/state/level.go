package state

import (
	"github.com/atomicstack/research-console/internal/menu"
	"github.com/atomicstack/research-console/internal/rnd"
)

// Level holds the focus and scroll state for the screen at one nav position.
type Level struct {
	Screen         string
	Nav            rnd.Nav
	Controls       []menu.Control
	Cursor         int
	ViewportOffset int
}

// NewLevel constructs an empty Level for the given screen and nav position.
func NewLevel(screen string, nav rnd.Nav) *Level {
	return &Level{Screen: screen, Nav: nav}
}

// IndexOf returns the index for a given control identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, ctrl := range l.Controls {
		if ctrl.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the focused control, if any.
func (l *Level) Current() (menu.Control, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Controls) {
		return menu.Control{}, false
	}
	return l.Controls[l.Cursor], true
}

// Focus moves the cursor to the control with the given id.
func (l *Level) Focus(id string) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

// UpdateControls replaces the focusable controls. Disabled controls are
// dropped so they can never hold focus. Focus follows the previously focused
// id when it survives, otherwise the cursor is clamped into range.
func (l *Level) UpdateControls(controls []menu.Control) {
	prev, hadPrev := l.Current()
	enabled := make([]menu.Control, 0, len(controls))
	for _, ctrl := range controls {
		if ctrl.Disabled {
			continue
		}
		enabled = append(enabled, ctrl)
	}
	l.Controls = enabled
	if hadPrev && l.Focus(prev.ID) {
		return
	}
	switch {
	case len(l.Controls) == 0:
		l.Cursor = 0
	case l.Cursor >= len(l.Controls):
		l.Cursor = len(l.Controls) - 1
	case l.Cursor < 0:
		l.Cursor = 0
	}
}
