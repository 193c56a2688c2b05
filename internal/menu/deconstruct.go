package menu

import (
	"fmt"

	"github.com/atomicstack/research-console/internal/rnd"
)

func renderDeconstruct(snap rnd.Snapshot) []Block {
	if !snap.LinkedDestroy {
		return []Block{Message("NO DESTRUCTIVE ANALYZER LINKED TO CONSOLE")}
	}
	item := snap.LoadedItem
	if item == nil {
		return []Block{Message("No item loaded. Standing by...")}
	}
	blocks := []Block{
		Header("Deconstruction Menu:"),
		Text("Name: " + item.Name),
		Header("Origin Tech:"),
	}
	for _, tech := range item.OriginTech {
		line := fmt.Sprintf("%d", tech.ObjectLevel)
		if tech.CurrentLevel != nil {
			line += fmt.Sprintf(" (Current: %d)", *tech.CurrentLevel)
		}
		blocks = append(blocks, Text("* "+tech.Name), Indented(line))
	}
	blocks = append(blocks, Header("Options:"))
	return append(blocks, Controls(
		Button("item:deconstruct", "Deconstruct Item", rnd.NewRequest(rnd.ActionDeconstruct)),
		Button("item:eject", "Eject Item", rnd.NewRequest(rnd.ActionEjectItem)),
	)...)
}
