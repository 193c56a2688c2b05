package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/research-console/internal/rnd"
)

func renderDisk(snap rnd.Snapshot) []Block {
	if !snap.HasDisk() {
		return nil
	}
	return joinBlocks(
		OnSubmenu(0).Render(snap.Nav, func() []Block { return diskContents(snap) }),
		OnSubmenu(1).Render(snap.Nav, func() []Block { return diskCopyList(snap) }),
	)
}

func diskContents(snap rnd.Snapshot) []Block {
	tech := snap.DiskKind() == rnd.DiskTech
	blocks := []Block{Header("Data Disk Contents:")}
	switch {
	case snap.DiskData != nil && tech:
		blocks = append(blocks, techSummary(*snap.DiskData)...)
	case snap.DiskData != nil:
		blocks = append(blocks, designSummary(*snap.DiskData)...)
	default:
		label := "Load Design to Disk"
		if tech {
			label = "Load Tech to Disk"
		}
		blocks = append(blocks, Text("This disk is empty."))
		blocks = append(blocks, NavControls(snap.Nav, NavToSubmenu(label, 1))...)
	}
	eject := rnd.ActionEjectDesign
	if tech {
		eject = rnd.ActionEjectTech
	}
	return append(blocks, Controls(Button("disk:eject", "Eject Disk", rnd.NewRequest(eject)))...)
}

func techSummary(data rnd.DiskData) []Block {
	blocks := []Block{
		Text("Name: " + data.Name),
		Text(fmt.Sprintf("Level: %d", data.Level)),
		Text("Description: " + data.Desc),
	}
	return append(blocks, Controls(
		Button("disk:upload", "Upload to Database", rnd.NewRequest(rnd.ActionUploadTech)),
		Button("disk:clear", "Clear Disk", rnd.NewRequest(rnd.ActionClearDisk)),
	)...)
}

func designSummary(data rnd.DiskData) []Block {
	blocks := []Block{Text("Name: " + data.Name)}
	if len(data.LatheTypes) > 0 {
		blocks = append(blocks, Text("Lathe Types: "+strings.Join(data.LatheTypes, ", ")))
	}
	blocks = append(blocks, Text("Required Materials:"))
	for _, mat := range data.Materials {
		blocks = append(blocks, Indented(fmt.Sprintf("%s x %d", mat.Name, mat.Amount)))
	}
	return append(blocks, Controls(
		Button("disk:upload", "Upload to Database", rnd.NewRequest(rnd.ActionUploadDesign)),
		Button("disk:clear", "Clear Disk", rnd.NewRequest(rnd.ActionClearDisk)),
	)...)
}

func diskCopyList(snap rnd.Snapshot) []Block {
	action := rnd.ActionCopyDesign
	if snap.DiskKind() == rnd.DiskTech {
		action = rnd.ActionCopyTech
	}
	blocks := make([]Block, 0, len(snap.ToCopy)*2)
	for _, entry := range snap.ToCopy {
		blocks = append(blocks, Text(entry.Name))
		blocks = append(blocks, Controls(
			Button("disk:copy:"+entry.ID, "Copy to Disk", rnd.NewRequest(action, "id", entry.ID)),
		)...)
	}
	return blocks
}
