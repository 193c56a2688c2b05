package menu

import "github.com/atomicstack/research-console/internal/rnd"

type linkedDevice struct {
	item   string
	name   string
	linked func(rnd.Snapshot) bool
}

var linkedDevices = []linkedDevice{
	{item: rnd.DeviceDestroy, name: "Destructive Analyzer", linked: func(s rnd.Snapshot) bool { return bool(s.LinkedDestroy) }},
	{item: rnd.DeviceLathe, name: "Protolathe", linked: func(s rnd.Snapshot) bool { return bool(s.LinkedLathe) }},
	{item: rnd.DeviceImprinter, name: "Circuit Imprinter", linked: func(s rnd.Snapshot) bool { return bool(s.LinkedImprinter) }},
}

func renderSettings(snap rnd.Snapshot) []Block {
	return joinBlocks(
		OnSubmenu(0).Render(snap.Nav, func() []Block { return settingsRoot(snap) }),
		OnSubmenu(1).Render(snap.Nav, func() []Block { return deviceLinkage(snap) }),
	)
}

func settingsRoot(snap rnd.Snapshot) []Block {
	synced := bool(snap.Sync)
	blocks := []Block{Header("Settings:")}
	blocks = append(blocks, Controls(Control{
		ID:       "settings:sync",
		Label:    "Sync Database with Network",
		Disabled: !synced,
		Request:  rnd.NewRequest(rnd.ActionSync),
	})...)
	blocks = append(blocks, Controls(Control{
		ID:       "settings:connect",
		Label:    "Connect to Research Network",
		Disabled: synced,
		Selected: synced,
		Request:  rnd.NewRequest(rnd.ActionToggleSync),
	})...)
	blocks = append(blocks, Controls(Control{
		ID:       "settings:disconnect",
		Label:    "Disconnect from Research Network",
		Disabled: !synced,
		Selected: !synced,
		Request:  rnd.NewRequest(rnd.ActionToggleSync),
	})...)
	blocks = append(blocks, NavControls(snap.Nav,
		NavTo("Device Linkage Menu", rnd.MenuSettings, 1).DisabledWhen(!synced),
	)...)
	if snap.Admin {
		blocks = append(blocks, Controls(Button(
			"settings:maxresearch",
			"[ADMIN] Maximize Research Levels",
			rnd.NewRequest(rnd.ActionMaxResearch),
		))...)
	}
	return blocks
}

func deviceLinkage(snap rnd.Snapshot) []Block {
	blocks := []Block{Header("Device Linkage Menu:")}
	blocks = append(blocks, Controls(Button(
		"linkage:find",
		"Re-sync with Nearby Devices",
		rnd.NewRequest(rnd.ActionFindDevice),
	))...)
	blocks = append(blocks, Header("Linked Devices:"))
	for _, dev := range linkedDevices {
		if !dev.linked(snap) {
			blocks = append(blocks, Text("* No "+dev.name+" Linked"))
			continue
		}
		blocks = append(blocks, Text("* "+dev.name))
		blocks = append(blocks, Controls(Button(
			"linkage:"+dev.item+":unlink",
			"Unlink",
			rnd.NewRequest(rnd.ActionDisconnect, "item", dev.item),
		))...)
	}
	return blocks
}
