package rnd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// wireInt is an integer the game server may send as a float, a numeric
// string or null. Fractions are floored.
type wireInt int

func (n *wireInt) UnmarshalJSON(data []byte) error {
	f, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = wireInt(math.Floor(f))
	return nil
}

// wireNumber is a float with the same leniency as wireInt.
type wireNumber float64

func (n *wireNumber) UnmarshalJSON(data []byte) error {
	f, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = wireNumber(f)
	return nil
}

func parseNumber(data []byte) (float64, error) {
	trimmed := bytes.TrimSpace(data)
	switch string(trimmed) {
	case "null", "false", "":
		return 0, nil
	case "true":
		return 1, nil
	}
	text := string(trimmed)
	if trimmed[0] == '"' {
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("number value %s: %w", data, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("number value %s is not finite", data)
	}
	return f, nil
}

// wireID is an identifier sent either as a string or as a number.
type wireID string

func (id *wireID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		*id = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	text := string(trimmed)
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		*id = wireID(text)
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("id value %s: %w", data, err)
	}
	*id = wireID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// optionalList decodes a nested list, leaving it empty when any element is
// malformed so the record holding it survives.
type optionalList[T any] []T

func (l *optionalList[T]) UnmarshalJSON(data []byte) error {
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		*l = nil
		return nil
	}
	*l = v
	return nil
}

type wireDiskData struct {
	Name       string                           `json:"name"`
	Level      wireInt                          `json:"level"`
	Desc       string                           `json:"desc"`
	LatheTypes optionalList[string]             `json:"lathe_types"`
	Materials  optionalList[wireMaterialAmount] `json:"materials"`
}

func (w wireDiskData) value() DiskData {
	return DiskData{
		Name:       w.Name,
		Level:      int(w.Level),
		Desc:       w.Desc,
		LatheTypes: []string(w.LatheTypes),
		Materials:  convert(w.Materials, wireMaterialAmount.value),
	}
}

type wireCopyEntry struct {
	ID   wireID `json:"id"`
	Name string `json:"name"`
}

func (w wireCopyEntry) value() CopyEntry {
	return CopyEntry{ID: string(w.ID), Name: w.Name}
}

type wireTechLevel struct {
	Name  string  `json:"name"`
	Level wireInt `json:"level"`
	Desc  string  `json:"desc"`
}

func (w wireTechLevel) value() TechLevel {
	return TechLevel{Name: w.Name, Level: int(w.Level), Desc: w.Desc}
}

type wireLoadedItem struct {
	Name       string                       `json:"name"`
	OriginTech optionalList[wireOriginTech] `json:"origin_tech"`
}

func (w wireLoadedItem) value() LoadedItem {
	return LoadedItem{Name: w.Name, OriginTech: convert(w.OriginTech, wireOriginTech.value)}
}

type wireOriginTech struct {
	Name         string   `json:"name"`
	ObjectLevel  wireInt  `json:"object_level"`
	CurrentLevel *wireInt `json:"current_level"`
}

func (w wireOriginTech) value() OriginTech {
	return OriginTech{Name: w.Name, ObjectLevel: int(w.ObjectLevel), CurrentLevel: intPtr(w.CurrentLevel)}
}

type wireDesign struct {
	ID        wireID                           `json:"id"`
	Name      string                           `json:"name"`
	CanBuild  wireInt                          `json:"can_build"`
	Materials optionalList[wireMaterialAmount] `json:"materials"`
}

func (w wireDesign) value() Design {
	return Design{
		ID:        string(w.ID),
		Name:      w.Name,
		CanBuild:  int(w.CanBuild),
		Materials: convert(w.Materials, wireMaterialAmount.value),
	}
}

type wireMaterialAmount struct {
	Name   string  `json:"name"`
	Amount wireInt `json:"amount"`
	IsRed  Flag    `json:"is_red"`
}

func (w wireMaterialAmount) value() MaterialAmount {
	return MaterialAmount{Name: w.Name, Amount: int(w.Amount), IsRed: w.IsRed}
}

type wireMaterial struct {
	ID     wireID  `json:"id"`
	Name   string  `json:"name"`
	Amount wireInt `json:"amount"`
}

func (w wireMaterial) value() Material {
	return Material{ID: string(w.ID), Name: w.Name, Amount: int(w.Amount)}
}

type wireChemical struct {
	ID     wireID     `json:"id"`
	Name   string     `json:"name"`
	Volume wireNumber `json:"volume"`
}

func (w wireChemical) value() Chemical {
	return Chemical{ID: string(w.ID), Name: w.Name, Volume: float64(w.Volume)}
}

func convert[W, T any](in []W, fn func(W) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, w := range in {
		out[i] = fn(w)
	}
	return out
}

func intPtr(v *wireInt) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// sections decodes top-level snapshot fields one at a time and records the
// names of the ones that failed.
type sections struct {
	fields  map[string]json.RawMessage
	skipped []string
}

func section[T any](s *sections, name string, dst *T) {
	raw, ok := s.fields[name]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.skipped = append(s.skipped, name)
		return
	}
	*dst = v
}

func record[W any, T any](s *sections, name string, fn func(W) T) *T {
	var w *W
	section(s, name, &w)
	if w == nil {
		return nil
	}
	v := fn(*w)
	return &v
}

func list[W any, T any](s *sections, name string, fn func(W) T) []T {
	var w []W
	section(s, name, &w)
	return convert(w, fn)
}
