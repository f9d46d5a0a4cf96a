// Package harness runs conformance scenarios through the full
// placement pipeline: orientation, arrow placement, and beta
// separation for both objects of one beat, captured as a deterministic
// snapshot for golden-file comparison.
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tkastudio/pictograph/internal/motion"
)

// Scenario defines one conformance scenario: a beat's worth of motion
// data and the context it is placed in.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// GridMode is the active grid layout mode.
	GridMode motion.GridMode `yaml:"grid_mode"`

	// Letter is the pictograph's notation letter, if any. It drives
	// placement-key overrides and the separation letter exceptions.
	Letter string `yaml:"letter,omitempty"`

	// Red and Blue are the two objects' motion descriptors.
	Red  motion.Descriptor `yaml:"red"`
	Blue motion.Descriptor `yaml:"blue"`

	// Overrides optionally inlines a placement override table as
	// key -> {dx, dy} rows.
	Overrides []OverrideRow `yaml:"overrides,omitempty"`
}

// OverrideRow is one inline override entry.
type OverrideRow struct {
	Key string  `yaml:"key"`
	DX  float64 `yaml:"dx"`
	DY  float64 `yaml:"dy"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("harness: read %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("harness: parse %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("harness: scenario %s has no name", path)
	}
	if !s.GridMode.Valid() {
		return nil, fmt.Errorf("harness: scenario %s has invalid grid mode %q", s.Name, s.GridMode)
	}
	return &s, nil
}
