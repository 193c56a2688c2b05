package menu

import "github.com/atomicstack/research-console/internal/rnd"

var backLabels = map[int]string{
	rnd.MenuDisk:      "Disk Operations Menu",
	rnd.MenuLathe:     "Protolathe Menu",
	rnd.MenuImprinter: "Circuit Imprinter Menu",
	rnd.MenuSettings:  "Settings Menu",
}

// Navbar is drawn above every screen as a single row of nav buttons.
func Navbar(nav rnd.Nav) []Block {
	rows := joinBlocks(
		NavControls(nav, NavTo("Main Menu", rnd.MenuMain, 0)),
		Route{Submenu: Where(func(n int) bool { return n > 0 })}.Render(nav, func() []Block {
			var back []Block
			for _, m := range []int{rnd.MenuDisk, rnd.MenuLathe, rnd.MenuImprinter, rnd.MenuSettings} {
				label := backLabels[m]
				back = append(back, OnMenu(m).Render(nav, func() []Block {
					return NavControls(nav, NavToSubmenu(label, 0))
				})...)
			}
			return back
		}),
		Route{Menu: OneOf(rnd.MenuLathe, rnd.MenuImprinter), Submenu: Equals(0)}.Render(nav, func() []Block {
			return NavControls(nav,
				NavToSubmenu("Material Storage", 2),
				NavToSubmenu("Chemical Storage", 3),
			)
		}),
	)
	return mergeRows(rows)
}

// mergeRows collapses control rows into one row.
func mergeRows(rows []Block) []Block {
	var controls []Control
	for _, row := range rows {
		controls = append(controls, row.Controls...)
	}
	return Controls(controls...)
}
