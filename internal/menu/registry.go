package menu

import (
	"strings"

	"github.com/atomicstack/research-console/internal/rnd"
)

// Screen is one top-level panel. Route selects the menu values it serves.
type Screen struct {
	ID        string
	Route     Route
	Title     func(rnd.Nav) string
	Subtitles map[int]string
	Render    func(rnd.Snapshot) []Block
}

// Registry holds the screens in display order.
type Registry struct {
	screens []*Screen
}

// BuildRegistry returns the standard research console screens.
func BuildRegistry() *Registry {
	r := &Registry{}
	r.register(&Screen{
		ID:     "main",
		Route:  OnMenu(rnd.MenuMain),
		Title:  fixedTitle("main menu"),
		Render: renderMain,
	})
	r.register(&Screen{
		ID:     "levels",
		Route:  OnMenu(rnd.MenuCurrentLevels),
		Title:  fixedTitle("research levels"),
		Render: renderLevels,
	})
	r.register(&Screen{
		ID:        "disk",
		Route:     OnMenu(rnd.MenuDisk),
		Title:     fixedTitle("disk operations"),
		Subtitles: map[int]string{1: "copy to disk"},
		Render:    renderDisk,
	})
	r.register(&Screen{
		ID:     "deconstruct",
		Route:  OnMenu(rnd.MenuDeconstruct),
		Title:  fixedTitle("destructive analyzer"),
		Render: renderDeconstruct,
	})
	r.register(&Screen{
		ID:    "fabricator",
		Route: Route{Menu: OneOf(rnd.MenuLathe, rnd.MenuImprinter)},
		Title: func(nav rnd.Nav) string {
			return strings.ToLower(fabricatorFor(nav.Menu).name)
		},
		Subtitles: map[int]string{1: "designs", 2: "material storage", 3: "chemical storage"},
		Render:    renderFabricator,
	})
	r.register(&Screen{
		ID:        "settings",
		Route:     OnMenu(rnd.MenuSettings),
		Title:     fixedTitle("settings"),
		Subtitles: map[int]string{1: "device linkage"},
		Render:    renderSettings,
	})
	return r
}

func (r *Registry) register(s *Screen) {
	r.screens = append(r.screens, s)
}

// ScreenFor returns the screen serving nav, if any.
func (r *Registry) ScreenFor(nav rnd.Nav) (*Screen, bool) {
	for _, s := range r.screens {
		if s.Route.Matches(nav) {
			return s, true
		}
	}
	return nil, false
}

// Render builds the navbar followed by every screen whose route matches.
func (r *Registry) Render(snap rnd.Snapshot) []Block {
	blocks := Navbar(snap.Nav)
	for _, s := range r.screens {
		screen := s
		blocks = append(blocks, screen.Route.Render(snap.Nav, func() []Block {
			return screen.Render(snap)
		})...)
	}
	return blocks
}

// Titles returns breadcrumb segments for nav, root first.
func (r *Registry) Titles(nav rnd.Nav) []string {
	screen, ok := r.ScreenFor(nav)
	if !ok || screen.Title == nil {
		return nil
	}
	if nav.Menu == rnd.MenuMain {
		return nil
	}
	segments := []string{screen.Title(nav)}
	if nav.Submenu > 0 {
		if sub, ok := screen.Subtitles[nav.Submenu]; ok {
			segments = append(segments, sub)
		}
	}
	return segments
}

func fixedTitle(title string) func(rnd.Nav) string {
	return func(rnd.Nav) string { return title }
}
