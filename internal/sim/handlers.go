package sim

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxResearchLevel is what maxresearch raises every tech level to.
const maxResearchLevel = 20

type params map[string]any

func (p params) intParam(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	}
	return 0, false
}

func (p params) stringParam(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// handler mutates s.snap with s.mu held.
type handler func(s *Server, p params) bool

var handlers = map[string]handler{
	rnd.ActionNav:         handleNav,
	rnd.ActionToggleSync:  handleToggleSync,
	rnd.ActionSetCategory: handleSetCategory,
	rnd.ActionSearch:      handleSearch,
	rnd.ActionFindDevice:  handleFindDevice,
	rnd.ActionDisconnect:  handleDisconnect,
	rnd.ActionClearDisk:   handleClearDisk,
	rnd.ActionEjectTech:   handleEjectDisk,
	rnd.ActionEjectDesign: handleEjectDisk,
	rnd.ActionEjectItem:   handleEjectItem,
	rnd.ActionMaxResearch: handleMaxResearch,
}

func handleNav(s *Server, p params) bool {
	next := s.snap.Nav
	if m, ok := p.intParam("menu"); ok {
		next.Menu = m
	}
	if sub, ok := p.intParam("submenu"); ok {
		next.Submenu = sub
	}
	if next.Menu < rnd.MenuMain || next.Menu > rnd.MenuSettings || next.Submenu < 0 {
		return false
	}
	s.snap.Nav = next
	return true
}

func handleToggleSync(s *Server, _ params) bool {
	s.snap.Sync = !s.snap.Sync
	return true
}

func handleSetCategory(s *Server, p params) bool {
	category := p.stringParam("category")
	if category == "" {
		return false
	}
	fab := fabricatorForMenu(s.snap.Menu)
	designs := make([]rnd.Design, 0, len(s.catalogue))
	for _, entry := range s.catalogue {
		if entry.Fabricator == fab && entry.Category == category {
			designs = append(designs, entry.Design)
		}
	}
	s.snap.Category = category
	s.snap.MatchingDesigns = designs
	s.snap.Submenu = 1
	return true
}

func handleSearch(s *Server, p params) bool {
	term := strings.TrimSpace(p.stringParam("to_search"))
	if term == "" {
		return false
	}
	fab := fabricatorForMenu(s.snap.Menu)
	var (
		names   []string
		entries []CatalogueEntry
	)
	for _, entry := range s.catalogue {
		if entry.Fabricator != fab {
			continue
		}
		names = append(names, entry.Name)
		entries = append(entries, entry)
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(term, names) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	designs := make([]rnd.Design, 0, len(matches))
	for i, entry := range entries {
		if _, ok := matches[i]; ok {
			designs = append(designs, entry.Design)
		}
	}
	s.snap.Category = fmt.Sprintf("Search: %q", term)
	s.snap.MatchingDesigns = designs
	s.snap.Submenu = 1
	return true
}

func handleFindDevice(s *Server, _ params) bool {
	s.snap.LinkedDestroy = true
	s.snap.LinkedLathe = true
	s.snap.LinkedImprinter = true
	return true
}

func handleDisconnect(s *Server, p params) bool {
	switch p.stringParam("item") {
	case rnd.DeviceDestroy:
		s.snap.LinkedDestroy = false
		s.snap.LoadedItem = nil
	case rnd.DeviceLathe:
		s.snap.LinkedLathe = false
	case rnd.DeviceImprinter:
		s.snap.LinkedImprinter = false
	default:
		return false
	}
	return true
}

func handleClearDisk(s *Server, _ params) bool {
	if !s.snap.HasDisk() {
		return false
	}
	s.snap.DiskData = nil
	return true
}

func handleEjectDisk(s *Server, _ params) bool {
	if !s.snap.HasDisk() {
		return false
	}
	s.snap.DiskType = nil
	s.snap.DiskData = nil
	s.snap.ToCopy = nil
	if s.snap.Menu == rnd.MenuDisk {
		s.snap.Nav = rnd.Nav{}
	}
	return true
}

func handleEjectItem(s *Server, _ params) bool {
	if s.snap.LoadedItem == nil {
		return false
	}
	s.snap.LoadedItem = nil
	return true
}

func handleMaxResearch(s *Server, _ params) bool {
	if !s.snap.Admin {
		return false
	}
	for i := range s.snap.TechLevels {
		s.snap.TechLevels[i].Level = max(s.snap.TechLevels[i].Level, maxResearchLevel)
	}
	return true
}
