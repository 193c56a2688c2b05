package menu

import (
	"fmt"

	"github.com/atomicstack/research-console/internal/rnd"
)

func renderMain(snap rnd.Snapshot) []Block {
	nav := snap.Nav
	blocks := []Block{Header("Main Menu")}
	blocks = append(blocks, navList(nav,
		NavTo("Disk Operations", rnd.MenuDisk, 0).DisabledWhen(!snap.HasDisk()),
		NavTo("Destructive Analyzer Menu", rnd.MenuDeconstruct, 0).DisabledWhen(!bool(snap.LinkedDestroy)),
		NavTo("Protolathe Menu", rnd.MenuLathe, 0).DisabledWhen(!bool(snap.LinkedLathe)),
		NavTo("Circuit Imprinter Menu", rnd.MenuImprinter, 0).DisabledWhen(!bool(snap.LinkedImprinter)),
		NavTo("Settings", rnd.MenuSettings, 0),
	)...)
	blocks = append(blocks, Header("Current Research Levels"))
	for i, lvl := range snap.TechLevels {
		if i > 0 {
			blocks = append(blocks, Rule())
		}
		blocks = append(blocks, Text(fmt.Sprintf("%s: %d", lvl.Name, lvl.Level)))
	}
	return blocks
}

func renderLevels(snap rnd.Snapshot) []Block {
	blocks := []Block{Header("Current Research Levels:")}
	for i, lvl := range snap.TechLevels {
		if i > 0 {
			blocks = append(blocks, Rule())
		}
		blocks = append(blocks,
			Text(lvl.Name),
			Indented(fmt.Sprintf("* Level: %d", lvl.Level)),
			Indented(fmt.Sprintf("* Summary: %s", lvl.Desc)),
		)
	}
	return blocks
}

// navList renders one nav button per row.
func navList(nav rnd.Nav, buttons ...NavButton) []Block {
	out := make([]Block, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, NavControls(nav, b)...)
	}
	return out
}
