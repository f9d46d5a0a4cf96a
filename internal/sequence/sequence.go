// Package sequence models the engine's boundary with the sequence/beat
// store: YAML beat documents, one motion descriptor per (beat, color),
// plus the end-orientation integrity check. The store proper owns
// persistence, undo/redo, and notational validation; this package only
// decodes documents and verifies the derived-orientation invariant.
package sequence

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/orient"
)

// Beat is one discrete unit of a sequence: one motion descriptor per
// tracked object, plus the pictograph's notation letter, if any.
type Beat struct {
	ID     string            `yaml:"id" json:"id"`
	Letter string            `yaml:"letter,omitempty" json:"letter,omitempty"`
	Red    motion.Descriptor `yaml:"red" json:"red"`
	Blue   motion.Descriptor `yaml:"blue" json:"blue"`
}

// Document is a stored sequence: its grid layout mode and beats.
type Document struct {
	Name     string          `yaml:"name"`
	GridMode motion.GridMode `yaml:"grid_mode"`
	Beats    []Beat          `yaml:"beats"`
}

// NewBeatID generates a time-sortable UUIDv7 beat identifier.
func NewBeatID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Load reads and decodes a sequence document from a YAML file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sequence: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a sequence document and validates its field-level
// shape. Cross-field notational correctness stays with the store.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sequence: parse: %w", err)
	}
	if !doc.GridMode.Valid() {
		return nil, fmt.Errorf("sequence: invalid grid mode %q", doc.GridMode)
	}
	for i, b := range doc.Beats {
		if b.ID == "" {
			return nil, fmt.Errorf("sequence: beat %d has no id", i)
		}
		if err := b.Red.Validate(); err != nil {
			return nil, fmt.Errorf("sequence: beat %s red: %w", b.ID, err)
		}
		if err := b.Blue.Validate(); err != nil {
			return nil, fmt.Errorf("sequence: beat %s blue: %w", b.ID, err)
		}
		if b.Red.Color != motion.Red || b.Blue.Color != motion.Blue {
			return nil, fmt.Errorf("sequence: beat %s descriptor colors do not match their slots", b.ID)
		}
	}
	return &doc, nil
}

// IntegrityViolation reports one descriptor whose stored end
// orientation disagrees with the orientation resolver's derivation.
// A stored value that disagrees is a data-integrity bug, not an
// alternate truth.
type IntegrityViolation struct {
	BeatID   string             `yaml:"beat_id" json:"beat_id"`
	Color    motion.Color       `yaml:"color" json:"color"`
	Stored   motion.Orientation `yaml:"stored" json:"stored"`
	Derived  motion.Orientation `yaml:"derived" json:"derived"`
}

func (v IntegrityViolation) String() string {
	return fmt.Sprintf("beat %s %s: stored end orientation %q, derived %q",
		v.BeatID, v.Color, v.Stored, v.Derived)
}

// CheckIntegrity re-derives every stored end orientation and collects
// disagreements. Descriptors with no stored end orientation are
// skipped: the value is derived, not input, and absence is legal.
func CheckIntegrity(doc *Document, resolver *orient.Resolver) ([]IntegrityViolation, error) {
	var violations []IntegrityViolation
	for _, b := range doc.Beats {
		for _, d := range []motion.Descriptor{b.Red, b.Blue} {
			if d.EndOrientation == "" {
				continue
			}
			derived, err := resolver.EndOrientation(d)
			if err != nil {
				return nil, fmt.Errorf("sequence: beat %s %s: %w", b.ID, d.Color, err)
			}
			if derived != d.EndOrientation {
				violations = append(violations, IntegrityViolation{
					BeatID:  b.ID,
					Color:   d.Color,
					Stored:  d.EndOrientation,
					Derived: derived,
				})
			}
		}
	}
	return violations, nil
}
