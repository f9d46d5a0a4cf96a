// Package orient implements the orientation resolver: the pure mapping
// from a motion descriptor and its start orientation to the orientation
// the object holds once the motion completes.
//
// The resolver has four paths, tried in order:
//
//  1. Float motions: orientation follows the hand-path direction of the
//     start->end location pair, via a fixed 4x2 table.
//  2. Whole turn counts: parity decides identity vs. toggle, with the
//     polarity inverted between the pro family (Pro, Static) and the
//     anti family (Anti, Dash).
//  3. Half turn counts: a fixed lookup keyed by (family, rotation
//     direction, start orientation); the turn value's congruence mod 2
//     (0.5 vs 1.5) selects between the entry's two symmetric outcomes.
//  4. Anything else: the start orientation is returned unchanged. This
//     is a defined fallback for out-of-range turn values, logged as a
//     warning, never an error.
//
// The half-turn and hand-path tables are enumerations transcribed from
// the notation; no underlying derivation rule is known. Do not
// "simplify" them algebraically: an incomplete simplification silently
// changes notation semantics.
package orient

import (
	"github.com/rs/zerolog"

	"github.com/tkastudio/pictograph/internal/motion"
)

// Resolver computes end orientations. The zero value is usable and
// silent; NewResolver attaches a logger for out-of-range warnings.
type Resolver struct {
	log zerolog.Logger
}

// NewResolver creates a Resolver that logs anomalies to log. Pass
// zerolog.Nop() for a silent resolver.
func NewResolver(log zerolog.Logger) *Resolver {
	return &Resolver{log: log}
}

// floatOrientations maps (startOrientation, handPath) to the end
// orientation of a float motion.
var floatOrientations = map[motion.Orientation]map[motion.HandPath]motion.Orientation{
	motion.In: {
		motion.HandPathClockwise:        motion.Clock,
		motion.HandPathCounterClockwise: motion.Counter,
	},
	motion.Out: {
		motion.HandPathClockwise:        motion.Counter,
		motion.HandPathCounterClockwise: motion.Clock,
	},
	motion.Clock: {
		motion.HandPathClockwise:        motion.Out,
		motion.HandPathCounterClockwise: motion.In,
	},
	motion.Counter: {
		motion.HandPathClockwise:        motion.In,
		motion.HandPathCounterClockwise: motion.Out,
	},
}

// halfTurnKey indexes the half-turn orientation table.
type halfTurnKey struct {
	dir   motion.RotationDirection
	start motion.Orientation
}

// halfTurnAnti is the half-turn table for the anti family (Anti, Dash).
// Index 0 applies to turn values congruent to 0.5 mod 2 (0.5, 2.5),
// index 1 to values congruent to 1.5 mod 2.
var halfTurnAnti = map[halfTurnKey][2]motion.Orientation{
	{motion.Clockwise, motion.In}:             {motion.Clock, motion.Counter},
	{motion.CounterClockwise, motion.In}:      {motion.Counter, motion.Clock},
	{motion.Clockwise, motion.Out}:            {motion.Counter, motion.Clock},
	{motion.CounterClockwise, motion.Out}:     {motion.Clock, motion.Counter},
	{motion.Clockwise, motion.Clock}:          {motion.Out, motion.In},
	{motion.CounterClockwise, motion.Clock}:   {motion.In, motion.Out},
	{motion.Clockwise, motion.Counter}:        {motion.In, motion.Out},
	{motion.CounterClockwise, motion.Counter}: {motion.Out, motion.In},
}

// halfTurnPro is the half-turn table for the pro family (Pro, Static):
// each anti entry with its two outcomes swapped.
var halfTurnPro = func() map[halfTurnKey][2]motion.Orientation {
	m := make(map[halfTurnKey][2]motion.Orientation, len(halfTurnAnti))
	for k, v := range halfTurnAnti {
		m[k] = [2]motion.Orientation{v[1], v[0]}
	}
	return m
}()

// proFamily reports whether t toggles on odd whole turns (Pro, Static)
// rather than on even ones (Anti, Dash).
func proFamily(t motion.Type) bool {
	return t == motion.Pro || t == motion.Static
}

// EndOrientation computes the orientation after d completes.
//
// It returns an UnclassifiableHandPathError for Float motions whose
// start->end pair cannot be classified as a clockwise or counter-
// clockwise shift; that indicates malformed motion data and must be
// surfaced rather than guessed. Out-of-range turn values are recovered
// locally: the start orientation is returned unchanged and a warning
// is logged.
func (r *Resolver) EndOrientation(d motion.Descriptor) (motion.Orientation, error) {
	if d.MotionType == motion.Float {
		path, ok := motion.ClassifyHandPath(d.StartLocation, d.EndLocation)
		if !ok {
			return "", NewHandPathError(d.StartLocation, d.EndLocation)
		}
		return floatOrientations[d.StartOrientation][path], nil
	}

	if !d.Turns.Valid() {
		r.log.Warn().
			Float64("turns", float64(d.Turns)).
			Str("motion_type", string(d.MotionType)).
			Str("color", string(d.Color)).
			Msg("turn count outside half-turn set, keeping start orientation")
		return d.StartOrientation, nil
	}

	if d.Turns.Whole() {
		toggle := d.Turns.Odd()
		if !proFamily(d.MotionType) {
			toggle = !toggle
		}
		if toggle {
			return d.StartOrientation.Toggled(), nil
		}
		return d.StartOrientation, nil
	}

	table := halfTurnAnti
	if proFamily(d.MotionType) {
		table = halfTurnPro
	}
	outcomes, ok := table[halfTurnKey{dir: d.RotationDirection, start: d.StartOrientation}]
	if !ok {
		// Half turns require a rotational sense. A NoRotation half-turn
		// is malformed data; recover like an out-of-range turn count.
		r.log.Warn().
			Str("rotation_direction", string(d.RotationDirection)).
			Str("motion_type", string(d.MotionType)).
			Msg("half turn without rotational sense, keeping start orientation")
		return d.StartOrientation, nil
	}
	if d.Turns.HalfLow() {
		return outcomes[0], nil
	}
	return outcomes[1], nil
}
