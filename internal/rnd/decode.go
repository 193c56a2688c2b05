package rnd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedSnapshot is returned when a pushed payload is not a snapshot
// object. Callers keep the previous snapshot when they see it.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// DecodeSnapshot parses a full state push. Unknown fields are ignored.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	snap, _, err := DecodeSnapshotSections(data)
	return snap, err
}

// DecodeSnapshotSections parses a state push field by field. A field that
// does not decode is left at its zero value and named in skipped; the rest of
// the snapshot still applies. Only a non-object payload or an unreadable
// menu/submenu pair fails the whole snapshot.
func DecodeSnapshotSections(data []byte) (snap Snapshot, skipped []string, err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Snapshot{}, nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedSnapshot)
	}
	s := &sections{}
	if err := json.Unmarshal(trimmed, &s.fields); err != nil {
		return Snapshot{}, nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	var menu, submenu wireInt
	section(s, "menu", &menu)
	section(s, "submenu", &submenu)
	if len(s.skipped) > 0 {
		return Snapshot{}, nil, fmt.Errorf("%w: unreadable %v", ErrMalformedSnapshot, s.skipped)
	}
	snap.Nav = Nav{Menu: int(menu), Submenu: int(submenu)}

	var diskType *wireInt
	section(s, "disk_type", &diskType)
	snap.DiskType = intPtr(diskType)
	snap.DiskData = record(s, "disk_data", wireDiskData.value)
	snap.ToCopy = list(s, "to_copy", wireCopyEntry.value)

	snap.TechLevels = list(s, "tech_levels", wireTechLevel.value)
	snap.LoadedItem = record(s, "loaded_item", wireLoadedItem.value)

	section(s, "category", &snap.Category)
	section(s, "categories", &snap.Categories)
	snap.MatchingDesigns = list(s, "matching_designs", wireDesign.value)
	snap.LoadedMaterials = list(s, "loaded_materials", wireMaterial.value)
	snap.LoadedChemicals = list(s, "loaded_chemicals", wireChemical.value)

	var totalMaterials, totalChemicals wireInt
	var maxMaterials, maxChemicals *wireInt
	section(s, "total_materials", &totalMaterials)
	section(s, "max_materials", &maxMaterials)
	section(s, "total_chemicals", &totalChemicals)
	section(s, "max_chemicals", &maxChemicals)
	snap.TotalMaterials = int(totalMaterials)
	snap.MaxMaterials = intPtr(maxMaterials)
	snap.TotalChemicals = int(totalChemicals)
	snap.MaxChemicals = intPtr(maxChemicals)

	section(s, "linked_destroy", &snap.LinkedDestroy)
	section(s, "linked_lathe", &snap.LinkedLathe)
	section(s, "linked_imprinter", &snap.LinkedImprinter)
	section(s, "sync", &snap.Sync)
	section(s, "admin", &snap.Admin)
	section(s, "wait_message", &snap.WaitMessage)

	return snap, s.skipped, nil
}

// UnmarshalJSON decodes through DecodeSnapshotSections so fixtures and
// nested documents get the same leniency as pushes.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	snap, _, err := DecodeSnapshotSections(data)
	if err != nil {
		return err
	}
	*s = snap
	return nil
}

// EncodeSnapshot renders a snapshot in the wire format used by DecodeSnapshot.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// Clone returns a deep copy so a holder can hand snapshots out without
// sharing backing arrays.
func (s Snapshot) Clone() Snapshot {
	data, err := json.Marshal(s)
	if err != nil {
		return s
	}
	out, err := DecodeSnapshot(data)
	if err != nil {
		return s
	}
	return out
}
