package placement

import (
	"github.com/rs/zerolog"

	"github.com/tkastudio/pictograph/internal/geom"
	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/overrides"
)

// ArrowPlacement fully determines how to draw one arrow glyph. It is
// derived output: recomputed on every render request, never persisted.
type ArrowPlacement struct {
	Position        geom.Point `yaml:"position" json:"position"`
	RotationDegrees float64    `yaml:"rotation_degrees" json:"rotation_degrees"`
	Mirrored        bool       `yaml:"mirrored" json:"mirrored"`
}

// Engine runs the full placement pipeline. It holds only immutable
// configuration (the override table) and a logger; placements may be
// computed concurrently without coordination.
type Engine struct {
	keys *KeyResolver
	log  zerolog.Logger
}

// NewEngine creates a placement Engine over an immutable override
// table. Pass a nil table to disable overrides and zerolog.Nop() for a
// silent engine.
func NewEngine(table overrides.Table, log zerolog.Logger) *Engine {
	return &Engine{keys: NewKeyResolver(table), log: log}
}

// Place computes the arrow placement for one motion descriptor.
//
// letter is the pictograph's notation letter, or empty when the beat
// has none; it participates only in override key resolution. Errors
// are caller contract violations (see PlacementError) and the glyph
// should be omitted or replaced with a placeholder, never guessed.
func (e *Engine) Place(d motion.Descriptor, mode motion.GridMode, letter string) (ArrowPlacement, error) {
	anchor, err := ResolveAnchor(d)
	if err != nil {
		return ArrowPlacement{}, err
	}

	quadrant := QuadrantIndex(mode, anchor, d.MotionType)
	if quadrant == QuadrantSentinel {
		return ArrowPlacement{}, NewQuadrantRangeError(d.MotionType, anchor, mode)
	}

	rotation := RotationAngle(d, anchor)

	adjust, tier, overridden := e.keys.Resolve(d, letter)
	if !overridden {
		base := BaseAdjustment(d.MotionType, d.Turns)
		variants := QuadrantVariants(d.MotionType, base)
		adjust, err = SelectVariant(variants, quadrant, d.MotionType, anchor, mode)
		if err != nil {
			return ArrowPlacement{}, err
		}
	} else {
		e.log.Debug().
			Str("tier", string(tier)).
			Str("letter", letter).
			Str("motion_type", string(d.MotionType)).
			Msg("placement override applied")
	}

	position := GridPoint(anchor).Add(geom.RotateAdjustment(adjust, rotation))

	return ArrowPlacement{
		Position:        position,
		RotationDegrees: rotation,
		Mirrored:        Mirrored(d),
	}, nil
}
