package events

import "github.com/atomicstack/research-console/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Request(fromMenu, fromSubmenu, toMenu, toSubmenu int) {
	logging.Trace("nav.request", map[string]interface{}{
		"from": []int{fromMenu, fromSubmenu},
		"to":   []int{toMenu, toSubmenu},
	})
}

func (NavTracer) Changed(menu, submenu int) {
	logging.Trace("nav.changed", map[string]interface{}{"menu": menu, "submenu": submenu})
}

func (NavTracer) Escape(menu, submenu int, quit bool) {
	logging.Trace("nav.escape", map[string]interface{}{"menu": menu, "submenu": submenu, "quit": quit})
}
