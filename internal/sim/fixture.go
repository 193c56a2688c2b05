package sim

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/atomicstack/research-console/internal/logging/events"
	"github.com/atomicstack/research-console/internal/rnd"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/titanous/json5"
)

// Fabricator names used in catalogue entries.
const (
	FabricatorProtolathe = "protolathe"
	FabricatorImprinter  = "imprinter"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Fixture seeds the simulator: the snapshot it starts from and the design
// catalogue that category and search actions draw from.
type Fixture struct {
	Snapshot  rnd.Snapshot     `json:"snapshot"`
	Catalogue []CatalogueEntry `json:"catalogue"`
}

// CatalogueEntry is a design available to one fabricator.
type CatalogueEntry struct {
	rnd.Design
	Category   string `json:"category"`
	Fabricator string `json:"fabricator"`
}

// LoadFixture reads and validates a JSON5 fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	fx, err := ParseFixture(data)
	if err != nil {
		return Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	events.Sim.Fixture(path, len(fx.Catalogue))
	return fx, nil
}

// ParseFixture decodes JSON5, validates the document against the fixture
// schema and converts it to typed values.
func ParseFixture(data []byte) (Fixture, error) {
	var doc interface{}
	if err := json5.Unmarshal(data, &doc); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	schema, err := fixtureSchema()
	if err != nil {
		return Fixture{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Fixture{}, fmt.Errorf("invalid fixture: %w", err)
	}
	// Round trip through encoding/json so snapshot fields get the same
	// decoding rules as pushed payloads.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return Fixture{}, fmt.Errorf("normalize fixture: %w", err)
	}
	var fx Fixture
	if err := json.Unmarshal(normalized, &fx); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return fx, nil
}

func fixtureSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("fixture.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load fixture schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("fixture.schema.json")
	})
	return compiledSchema, schemaErr
}

// fabricatorForMenu maps a fabricator menu value to catalogue entries.
func fabricatorForMenu(menu int) string {
	if menu == rnd.MenuImprinter {
		return FabricatorImprinter
	}
	return FabricatorProtolathe
}
