package harness

import (
	"github.com/rs/zerolog"

	"github.com/tkastudio/pictograph/internal/geom"
	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/orient"
	"github.com/tkastudio/pictograph/internal/overrides"
	"github.com/tkastudio/pictograph/internal/placement"
	"github.com/tkastudio/pictograph/internal/separation"
)

// GlyphResult captures one object's computed outputs.
type GlyphResult struct {
	Color          motion.Color             `json:"color"`
	EndOrientation motion.Orientation       `json:"end_orientation"`
	Placement      placement.ArrowPlacement `json:"placement"`
}

// Snapshot captures the complete pipeline output for one scenario.
// Field order is the serialization order, so golden files compare
// byte-for-byte.
type Snapshot struct {
	ScenarioName string             `json:"scenario_name"`
	GridMode     motion.GridMode    `json:"grid_mode"`
	Letter       string             `json:"letter,omitempty"`
	Glyphs       []GlyphResult      `json:"glyphs"`
	Separation   *separation.Result `json:"separation,omitempty"`
}

// Run executes a scenario through the full pipeline: end orientation
// and arrow placement per object, plus beta separation when the two
// motions end at the same location.
func Run(s *Scenario) (*Snapshot, error) {
	table := make(overrides.Table, len(s.Overrides))
	for _, row := range s.Overrides {
		table[row.Key] = geom.Point{X: row.DX, Y: row.DY}
	}

	resolver := orient.NewResolver(zerolog.Nop())
	engine := placement.NewEngine(table, zerolog.Nop())

	snapshot := &Snapshot{
		ScenarioName: s.Name,
		GridMode:     s.GridMode,
		Letter:       s.Letter,
	}

	red, blue := s.Red, s.Blue
	for _, d := range []*motion.Descriptor{&red, &blue} {
		endOri, err := resolver.EndOrientation(*d)
		if err != nil {
			return nil, err
		}
		d.EndOrientation = endOri

		placed, err := engine.Place(*d, s.GridMode, s.Letter)
		if err != nil {
			return nil, err
		}
		snapshot.Glyphs = append(snapshot.Glyphs, GlyphResult{
			Color:          d.Color,
			EndOrientation: endOri,
			Placement:      placed,
		})
	}

	if red.EndLocation == blue.EndLocation {
		sep, err := separation.Directions(s.Letter, s.GridMode, red, blue)
		if err != nil {
			return nil, err
		}
		snapshot.Separation = &sep
	}

	return snapshot, nil
}
