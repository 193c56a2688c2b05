package rnd

// Menu values understood by the console. Submenu values are only meaningful
// relative to the menu they belong to.
const (
	MenuMain          = 0
	MenuCurrentLevels = 1
	MenuDisk          = 2
	MenuDeconstruct   = 3
	MenuLathe         = 4
	MenuImprinter     = 5
	MenuSettings      = 6
)

// Disk types reported in DiskType.
const (
	DiskNone   = 0
	DiskTech   = 1
	DiskDesign = 2
)

// Nav is the server-owned "current screen" pair.
type Nav struct {
	Menu    int `json:"menu"`
	Submenu int `json:"submenu"`
}

// Snapshot is one complete state push from the game server. The client never
// edits a snapshot; each update replaces the previous one.
//
// Pointer fields are nil when the server omitted them (or sent null). Their
// presence is significant and gates rendering.
type Snapshot struct {
	Nav

	DiskType *int        `json:"disk_type,omitempty"`
	DiskData *DiskData   `json:"disk_data,omitempty"`
	ToCopy   []CopyEntry `json:"to_copy,omitempty"`

	TechLevels []TechLevel `json:"tech_levels,omitempty"`
	LoadedItem *LoadedItem `json:"loaded_item,omitempty"`

	Category        string     `json:"category,omitempty"`
	Categories      []string   `json:"categories,omitempty"`
	MatchingDesigns []Design   `json:"matching_designs,omitempty"`
	LoadedMaterials []Material `json:"loaded_materials,omitempty"`
	LoadedChemicals []Chemical `json:"loaded_chemicals,omitempty"`

	TotalMaterials int  `json:"total_materials"`
	MaxMaterials   *int `json:"max_materials,omitempty"`
	TotalChemicals int  `json:"total_chemicals"`
	MaxChemicals   *int `json:"max_chemicals,omitempty"`

	LinkedDestroy   Flag `json:"linked_destroy"`
	LinkedLathe     Flag `json:"linked_lathe"`
	LinkedImprinter Flag `json:"linked_imprinter"`

	Sync  Flag `json:"sync"`
	Admin Flag `json:"admin"`

	WaitMessage *string `json:"wait_message,omitempty"`
}

// DiskData describes the contents of an inserted data disk.
type DiskData struct {
	Name       string           `json:"name"`
	Level      int              `json:"level,omitempty"`
	Desc       string           `json:"desc,omitempty"`
	LatheTypes []string         `json:"lathe_types,omitempty"`
	Materials  []MaterialAmount `json:"materials,omitempty"`
}

// CopyEntry is an item that can be copied onto the inserted disk.
type CopyEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TechLevel is one research field and its current level.
type TechLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Desc  string `json:"desc,omitempty"`
}

// LoadedItem is the object sitting in the destructive analyzer.
type LoadedItem struct {
	Name       string       `json:"name"`
	OriginTech []OriginTech `json:"origin_tech,omitempty"`
}

// OriginTech is one research field an analyzed item would contribute to.
type OriginTech struct {
	Name         string `json:"name"`
	ObjectLevel  int    `json:"object_level"`
	CurrentLevel *int   `json:"current_level,omitempty"`
}

// Design is a fabricable design in the selected category or search result.
type Design struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CanBuild  int              `json:"can_build"`
	Materials []MaterialAmount `json:"materials,omitempty"`
}

// MaterialAmount is a material requirement. IsRed marks requirements the
// connected storage cannot currently cover.
type MaterialAmount struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	IsRed  Flag   `json:"is_red,omitempty"`
}

// Material is a stored material reagent, measured in units.
type Material struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// Chemical is a stored chemical reagent.
type Chemical struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
}

// HasDisk reports whether a data disk of any type is inserted.
func (s Snapshot) HasDisk() bool {
	return s.DiskType != nil && *s.DiskType != DiskNone
}

// DiskKind returns the inserted disk type or DiskNone.
func (s Snapshot) DiskKind() int {
	if s.DiskType == nil {
		return DiskNone
	}
	return *s.DiskType
}

// Waiting returns the blocking overlay message, if one should be shown.
func (s Snapshot) Waiting() (string, bool) {
	if s.WaitMessage == nil || *s.WaitMessage == "" {
		return "", false
	}
	return *s.WaitMessage, true
}
