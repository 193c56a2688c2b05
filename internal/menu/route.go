package menu

import "github.com/atomicstack/research-console/internal/rnd"

type matchKind int

const (
	matchAny matchKind = iota
	matchEquals
	matchWhere
)

// Match tests one navigation axis. The zero value matches anything.
type Match struct {
	kind  matchKind
	value int
	pred  func(int) bool
}

// Any matches every value.
func Any() Match { return Match{} }

// Equals matches exactly v.
func Equals(v int) Match { return Match{kind: matchEquals, value: v} }

// Where matches when fn returns true. A nil fn matches anything.
func Where(fn func(int) bool) Match {
	if fn == nil {
		return Any()
	}
	return Match{kind: matchWhere, pred: fn}
}

// OneOf matches any of the listed values.
func OneOf(values ...int) Match {
	return Where(func(v int) bool {
		for _, candidate := range values {
			if v == candidate {
				return true
			}
		}
		return false
	})
}

// Matches evaluates the matcher against the current axis value.
func (m Match) Matches(v int) bool {
	switch m.kind {
	case matchEquals:
		return v == m.value
	case matchWhere:
		return m.pred(v)
	default:
		return true
	}
}

// Route gates content on the current (menu, submenu) pair.
type Route struct {
	Menu    Match
	Submenu Match
}

// OnMenu routes on the menu axis only.
func OnMenu(v int) Route { return Route{Menu: Equals(v)} }

// OnSubmenu routes on the submenu axis only.
func OnSubmenu(v int) Route { return Route{Submenu: Equals(v)} }

// Matches reports whether both axes match nav.
func (r Route) Matches(nav rnd.Nav) bool {
	return r.Menu.Matches(nav.Menu) && r.Submenu.Matches(nav.Submenu)
}

// Render returns content() when the route matches and nothing otherwise.
// content is not called for a non-matching route, so nested routes never
// evaluate below a failed outer route.
func (r Route) Render(nav rnd.Nav, content func() []Block) []Block {
	if !r.Matches(nav) || content == nil {
		return nil
	}
	return content()
}
