package menu

import (
	"fmt"

	"github.com/atomicstack/research-console/internal/rnd"
)

// NavButton is a control that requests a screen change. Unset overrides keep
// the current value of that axis.
type NavButton struct {
	Label    string
	Menu     *int
	Submenu  *int
	Disabled bool
}

// NavTo targets an explicit screen.
func NavTo(label string, menu, submenu int) NavButton {
	return NavButton{Label: label, Menu: &menu, Submenu: &submenu}
}

// NavToSubmenu targets a submenu of the current menu.
func NavToSubmenu(label string, submenu int) NavButton {
	return NavButton{Label: label, Submenu: &submenu}
}

// NavToMenu targets a menu and keeps the current submenu.
func NavToMenu(label string, menu int) NavButton {
	return NavButton{Label: label, Menu: &menu}
}

// DisabledWhen marks the button disabled when cond holds.
func (b NavButton) DisabledWhen(cond bool) NavButton {
	b.Disabled = cond
	return b
}

// Resolve applies the overrides to current.
func (b NavButton) Resolve(current rnd.Nav) rnd.Nav {
	next := current
	if b.Menu != nil {
		next.Menu = *b.Menu
	}
	if b.Submenu != nil {
		next.Submenu = *b.Submenu
	}
	return next
}

// Request returns the single nav request this button sends.
func (b NavButton) Request(current rnd.Nav) rnd.Request {
	return rnd.NavRequest(b.Resolve(current))
}

// Control renders the button against the current navigation state.
func (b NavButton) Control(current rnd.Nav) Control {
	target := b.Resolve(current)
	return Control{
		ID:       fmt.Sprintf("nav:%d:%d", target.Menu, target.Submenu),
		Label:    b.Label,
		Disabled: b.Disabled,
		Request:  rnd.NavRequest(target),
	}
}

// NavControls renders a row of nav buttons.
func NavControls(current rnd.Nav, buttons ...NavButton) []Block {
	controls := make([]Control, 0, len(buttons))
	for _, b := range buttons {
		controls = append(controls, b.Control(current))
	}
	return Controls(controls...)
}

// Parent returns the screen Esc goes back to and whether one exists.
func Parent(current rnd.Nav) (rnd.Nav, bool) {
	if current.Submenu > 0 {
		return rnd.Nav{Menu: current.Menu}, true
	}
	if current.Menu != rnd.MenuMain {
		return rnd.Nav{}, true
	}
	return rnd.Nav{}, false
}
