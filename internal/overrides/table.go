// Package overrides loads the placement override table: hand-curated
// (dx, dy) adjustments keyed by canonical placement key, used to
// special-case notation letters whose generic geometry would be
// ambiguous or wrong.
//
// The table is declarative input from the asset provider, so it is
// validated against a CUE schema before the engine accepts it. After
// Load returns, the table is immutable for the lifetime of a session;
// concurrent lookups require no locking.
package overrides

import (
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/tkastudio/pictograph/internal/geom"
)

// Table maps canonical placement keys to explicit adjustments. A
// missing entry is expected and common, not an error: lookups fall
// through to the generic adjustment engine.
type Table map[string]geom.Point

// entry is the YAML row shape of one override.
type entry struct {
	Key string  `yaml:"key"`
	DX  float64 `yaml:"dx"`
	DY  float64 `yaml:"dy"`
}

// document is the YAML file shape.
type document struct {
	Overrides []entry `yaml:"overrides"`
}

// Load reads an override table from a YAML file, validates it against
// the CUE schema, and returns an immutable Table. Keys are NFC-
// normalized so that Greek notation letters compare byte-identical to
// keys built by the placement key resolver.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("overrides: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and decodes override table YAML.
func Parse(data []byte) (Table, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("overrides: parse: %w", err)
	}

	table := make(Table, len(doc.Overrides))
	for _, e := range doc.Overrides {
		key := norm.NFC.String(e.Key)
		if _, dup := table[key]; dup {
			return nil, fmt.Errorf("overrides: duplicate key %q", key)
		}
		table[key] = geom.Point{X: e.DX, Y: e.DY}
	}
	return table, nil
}
