package menu

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/research-console/internal/rnd"
)

// Tier thresholds for design builds and material sheet ejects.
const (
	BuildTierFive     = 5
	BuildTierTen      = 10
	SheetSize         = 2000
	SheetTierFive     = SheetSize * 5
	sheetEjectAllUnit = 50
)

// fabricator describes the verbs one fabricating device sends. The protolathe
// and circuit imprinter share a screen and differ only here.
type fabricator struct {
	name       string
	notLinked  string
	linked     func(rnd.Snapshot) bool
	build      func(id string, amount int) rnd.Request
	ejectSheet string
	disposeAll string
	dispose    string
}

var (
	protolathe = fabricator{
		name:      "Protolathe",
		notLinked: "NO PROTOLATHE LINKED TO CONSOLE",
		linked:    func(s rnd.Snapshot) bool { return bool(s.LinkedLathe) },
		build: func(id string, amount int) rnd.Request {
			return rnd.NewRequest(rnd.ActionBuild, "id", id, "amount", amount)
		},
		ejectSheet: rnd.ActionLatheEjectSheet,
		disposeAll: rnd.ActionDisposeAllLathe,
		dispose:    rnd.ActionDisposeLathe,
	}
	circuitImprinter = fabricator{
		name:      "Circuit Imprinter",
		notLinked: "NO CIRCUIT IMPRINTER LINKED TO CONSOLE",
		linked:    func(s rnd.Snapshot) bool { return bool(s.LinkedImprinter) },
		// The imprinter has no batch size; every tier imprints once.
		build: func(id string, _ int) rnd.Request {
			return rnd.NewRequest(rnd.ActionImprint, "id", id)
		},
		ejectSheet: rnd.ActionImprinterEjectSheet,
		disposeAll: rnd.ActionDisposeAllImprinter,
		dispose:    rnd.ActionDisposeImprinter,
	}
)

func fabricatorFor(menu int) fabricator {
	if menu == rnd.MenuImprinter {
		return circuitImprinter
	}
	return protolathe
}

func renderFabricator(snap rnd.Snapshot) []Block {
	fab := fabricatorFor(snap.Menu)
	if !fab.linked(snap) {
		return []Block{Message(fab.notLinked)}
	}
	nav := snap.Nav
	return joinBlocks(
		OnSubmenu(0).Render(nav, func() []Block { return []Block{Header(fab.name + " Menu:")} }),
		OnSubmenu(1).Render(nav, func() []Block {
			if snap.Category == "" {
				return nil
			}
			return []Block{Header(snap.Category)}
		}),
		OnSubmenu(2).Render(nav, func() []Block { return []Block{Header("Material Storage:")} }),
		OnSubmenu(3).Render(nav, func() []Block { return []Block{Header("Chemical Storage:")} }),
		Route{Submenu: Where(func(n int) bool { return n < 2 })}.Render(nav, func() []Block {
			return storageSummary(snap)
		}),
		OnSubmenu(0).Render(nav, func() []Block { return categoryList(snap) }),
		OnSubmenu(1).Render(nav, func() []Block { return designList(fab, snap.MatchingDesigns) }),
		OnSubmenu(2).Render(nav, func() []Block { return materialList(fab, snap.LoadedMaterials) }),
		OnSubmenu(3).Render(nav, func() []Block { return chemicalList(fab, snap.LoadedChemicals) }),
	)
}

func storageSummary(snap rnd.Snapshot) []Block {
	materials := []string{"Material Amount:", strconv.Itoa(snap.TotalMaterials)}
	if snap.MaxMaterials != nil {
		materials = append(materials, strconv.Itoa(*snap.MaxMaterials))
	}
	chemicals := []string{"Chemical Amount:", strconv.Itoa(snap.TotalChemicals)}
	if snap.MaxChemicals != nil {
		chemicals = append(chemicals, strconv.Itoa(*snap.MaxChemicals))
	}
	blocks := []Block{Table([][]string{materials, chemicals})}
	if snap.MaxMaterials != nil && *snap.MaxMaterials > 0 {
		blocks = append(blocks, Gauge("materials", snap.TotalMaterials, *snap.MaxMaterials))
	}
	if snap.MaxChemicals != nil && *snap.MaxChemicals > 0 {
		blocks = append(blocks, Gauge("chemicals", snap.TotalChemicals, *snap.MaxChemicals))
	}
	return blocks
}

func categoryList(snap rnd.Snapshot) []Block {
	blocks := []Block{Search(), Rule()}
	// IDs keep the raw name so categories differing only in case or
	// punctuation stay distinct and focus follows a category across reorders.
	for _, cat := range snap.Categories {
		blocks = append(blocks, Controls(
			Button("category:"+cat, cat, rnd.NewRequest(rnd.ActionSetCategory, "category", cat)),
		)...)
	}
	return blocks
}

// SearchRequest builds the request sent when the search box is submitted.
func SearchRequest(term string) rnd.Request {
	return rnd.NewRequest(rnd.ActionSearch, "to_search", term)
}

func designList(fab fabricator, designs []rnd.Design) []Block {
	blocks := make([]Block, 0, len(designs)*2)
	for _, d := range designs {
		controls := []Control{{
			ID:       designControlID(d.ID, 1),
			Label:    d.Name,
			Disabled: d.CanBuild == 0,
			Request:  fab.build(d.ID, 1),
		}}
		if d.CanBuild >= BuildTierFive {
			controls = append(controls, Button(designControlID(d.ID, 5), "x5", fab.build(d.ID, 5)))
		}
		if d.CanBuild >= BuildTierTen {
			controls = append(controls, Button(designControlID(d.ID, 10), "x10", fab.build(d.ID, 10)))
		}
		blocks = append(blocks, Controls(controls...)...)
		if len(d.Materials) > 0 {
			blocks = append(blocks, materialCost(d.Materials))
		}
	}
	return blocks
}

func designControlID(id string, amount int) string {
	return fmt.Sprintf("design:%s:build:%d", id, amount)
}

func materialCost(materials []rnd.MaterialAmount) Block {
	segments := make([]Segment, 0, len(materials)*2)
	for _, mat := range materials {
		segments = append(segments,
			Segment{Text: "| "},
			Segment{Text: fmt.Sprintf("%d %s ", mat.Amount, mat.Name), Bad: bool(mat.IsRed)},
		)
	}
	return Block{Kind: KindText, Segments: segments, Indent: 1}
}

// Sheets returns the number of whole sheets in amount units.
func Sheets(amount int) int {
	if amount <= 0 {
		return 0
	}
	return amount / SheetSize
}

func materialList(fab fabricator, materials []rnd.Material) []Block {
	blocks := make([]Block, 0, len(materials)*3)
	for _, mat := range materials {
		blocks = append(blocks,
			Text(fmt.Sprintf("* %d of %s", mat.Amount, mat.Name)),
			Indented(fmt.Sprintf("(%d sheets)", Sheets(mat.Amount))),
		)
		if mat.Amount < SheetSize {
			continue
		}
		eject := func(label string, amount any) Control {
			return Button(
				fmt.Sprintf("material:%s:eject:%v", mat.ID, amount),
				label,
				rnd.NewRequest(fab.ejectSheet, "id", mat.ID, "amount", amount),
			)
		}
		controls := []Control{eject("1x", 1), eject("C", rnd.EjectCustom)}
		if mat.Amount >= SheetTierFive {
			controls = append(controls, eject("5x", 5))
		}
		controls = append(controls, eject("All", sheetEjectAllUnit))
		blocks = append(blocks, Controls(controls...)...)
	}
	return blocks
}

func chemicalList(fab fabricator, chemicals []rnd.Chemical) []Block {
	blocks := Controls(Button("chemical:purge-all", "Purge All", rnd.NewRequest(fab.disposeAll)))
	for _, chem := range chemicals {
		blocks = append(blocks, Text(fmt.Sprintf("* %s of %s", formatVolume(chem.Volume), chem.Name)))
		blocks = append(blocks, Controls(
			Button("chemical:"+chem.ID+":purge", "Purge", rnd.NewRequest(fab.dispose, "id", chem.ID)),
		)...)
	}
	return blocks
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
