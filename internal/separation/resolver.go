// Package separation resolves the 8-way offset directions that keep
// the two object icons from overlapping when both end a beat at the
// identical grid location (a "beta" overlap).
//
// Two independent lookup families exist: one for shift motions, keyed
// by orientation class and the motion's start/end pair, and one for
// static/dash motions, keyed by the grid shape and the anchor. Both
// are split into radial (In/Out-ending) and non-radial (Clock/Counter-
// ending) tables.
//
// Two notation letters carry explicit overrides: "I", whose generic
// direction would be symmetric where the notation requires the two
// motion types to diverge, and "G"/"H", where the second object always
// takes the geometric opposite of the first object's computed
// direction. These are notation exceptions kept ahead of the generic
// path; do not fold them into the generic tables.
package separation

import (
	"errors"
	"fmt"

	"github.com/tkastudio/pictograph/internal/motion"
)

// Result holds one separation direction per object color.
type Result struct {
	Red  motion.Location `yaml:"red" json:"red"`
	Blue motion.Location `yaml:"blue" json:"blue"`
}

// ErrNotBetaOverlap reports that the two descriptors do not share an
// end location, so no separation applies.
var ErrNotBetaOverlap = errors.New("separation: motions do not share an end location")

// opposites is the fixed involution over the 8 directions.
var opposites = map[motion.Location]motion.Location{
	motion.North:     motion.South,
	motion.South:     motion.North,
	motion.East:      motion.West,
	motion.West:      motion.East,
	motion.Northeast: motion.Southwest,
	motion.Southwest: motion.Northeast,
	motion.Northwest: motion.Southeast,
	motion.Southeast: motion.Northwest,
}

// Opposite returns the geometrically opposite direction.
func Opposite(d motion.Location) motion.Location { return opposites[d] }

// cwTangents maps each location to the ring direction on its clockwise
// side; the counter-clockwise side is the opposite. The separation
// convention offsets the red icon toward the clockwise side and the
// blue icon toward the counter-clockwise side for radial endings, and
// swaps the two sides for non-radial endings.
var cwTangents = map[motion.Location]motion.Location{
	motion.North:     motion.East,
	motion.East:      motion.South,
	motion.South:     motion.West,
	motion.West:      motion.North,
	motion.Northeast: motion.Southeast,
	motion.Southeast: motion.Southwest,
	motion.Southwest: motion.Northwest,
	motion.Northwest: motion.Northeast,
}

// shiftKey indexes the shift-family direction tables.
type shiftKey struct {
	start motion.Location
	end   motion.Location
}

// shiftRadial and shiftNonRadial give the red icon's direction for a
// shift ending in a beta overlap; the blue icon takes the opposite.
// Keyed by the motion's own start/end pair as tabulated from the
// notation; values follow the tangent convention above.
var shiftRadial = map[shiftKey]motion.Location{
	{motion.West, motion.North}: motion.East, {motion.East, motion.North}: motion.East,
	{motion.North, motion.East}: motion.South, {motion.South, motion.East}: motion.South,
	{motion.East, motion.South}: motion.West, {motion.West, motion.South}: motion.West,
	{motion.South, motion.West}: motion.North, {motion.North, motion.West}: motion.North,
	{motion.Northwest, motion.Northeast}: motion.Southeast, {motion.Southeast, motion.Northeast}: motion.Southeast,
	{motion.Northeast, motion.Southeast}: motion.Southwest, {motion.Southwest, motion.Southeast}: motion.Southwest,
	{motion.Southeast, motion.Southwest}: motion.Northwest, {motion.Northwest, motion.Southwest}: motion.Northwest,
	{motion.Southwest, motion.Northwest}: motion.Northeast, {motion.Northeast, motion.Northwest}: motion.Northeast,
}

// shiftNonRadial is shiftRadial with every direction inverted: a
// Clock/Counter-ending icon sits on the opposite side of its radial
// counterpart.
var shiftNonRadial = func() map[shiftKey]motion.Location {
	m := make(map[shiftKey]motion.Location, len(shiftRadial))
	for k, v := range shiftRadial {
		m[k] = Opposite(v)
	}
	return m
}()

// staticKey indexes the static/dash-family direction tables.
type staticKey struct {
	mode   motion.GridMode
	anchor motion.Location
	color  motion.Color
}

// staticDashRadial gives each color's direction for static/dash
// motions overlapping at an anchor, per grid shape. Diamond anchors
// are cardinal hand points; Box anchors are intercardinal.
var staticDashRadial = map[staticKey]motion.Location{
	{motion.Diamond, motion.North, motion.Red}: motion.East, {motion.Diamond, motion.North, motion.Blue}: motion.West,
	{motion.Diamond, motion.East, motion.Red}: motion.South, {motion.Diamond, motion.East, motion.Blue}: motion.North,
	{motion.Diamond, motion.South, motion.Red}: motion.West, {motion.Diamond, motion.South, motion.Blue}: motion.East,
	{motion.Diamond, motion.West, motion.Red}: motion.North, {motion.Diamond, motion.West, motion.Blue}: motion.South,
	{motion.Box, motion.Northeast, motion.Red}: motion.Southeast, {motion.Box, motion.Northeast, motion.Blue}: motion.Northwest,
	{motion.Box, motion.Southeast, motion.Red}: motion.Southwest, {motion.Box, motion.Southeast, motion.Blue}: motion.Northeast,
	{motion.Box, motion.Southwest, motion.Red}: motion.Northwest, {motion.Box, motion.Southwest, motion.Blue}: motion.Southeast,
	{motion.Box, motion.Northwest, motion.Red}: motion.Northeast, {motion.Box, motion.Northwest, motion.Blue}: motion.Southwest,
}

// staticDashNonRadial inverts each entry, mirroring the shift family.
var staticDashNonRadial = func() map[staticKey]motion.Location {
	m := make(map[staticKey]motion.Location, len(staticDashRadial))
	for k, v := range staticDashRadial {
		m[k] = Opposite(v)
	}
	return m
}()

// Directions resolves the separation direction for each object in a
// beta overlap.
//
// letter is the pictograph's notation letter, or empty. Descriptors
// must carry their derived EndOrientation (the orientation resolver's
// output); the orientation class selects the radial or non-radial
// table per object.
func Directions(letter string, mode motion.GridMode, red, blue motion.Descriptor) (Result, error) {
	if red.EndLocation != blue.EndLocation {
		return Result{}, ErrNotBetaOverlap
	}

	switch letter {
	case "I":
		return letterIDirections(mode, red, blue)
	case "G", "H":
		// The second object shadows the first: always the geometric
		// opposite of red's computed direction.
		redDir, err := direction(mode, red)
		if err != nil {
			return Result{}, err
		}
		return Result{Red: redDir, Blue: Opposite(redDir)}, nil
	}

	redDir, err := direction(mode, red)
	if err != nil {
		return Result{}, err
	}
	blueDir, err := direction(mode, blue)
	if err != nil {
		return Result{}, err
	}
	return Result{Red: redDir, Blue: blueDir}, nil
}

// direction resolves one object's separation direction through the
// generic family tables.
func direction(mode motion.GridMode, d motion.Descriptor) (motion.Location, error) {
	radial := d.EndOrientation.Radial()

	if d.MotionType.IsShift() {
		table := shiftRadial
		if !radial {
			table = shiftNonRadial
		}
		dir, ok := table[shiftKey{start: d.StartLocation, end: d.EndLocation}]
		if !ok {
			return "", fmt.Errorf("separation: no shift entry for %s -> %s", d.StartLocation, d.EndLocation)
		}
		if d.Color == motion.Blue {
			dir = Opposite(dir)
		}
		return dir, nil
	}

	table := staticDashRadial
	if !radial {
		table = staticDashNonRadial
	}
	dir, ok := table[staticKey{mode: mode, anchor: d.EndLocation, color: d.Color}]
	if !ok {
		return "", fmt.Errorf("separation: no static/dash entry for %s at %s in %s mode", d.Color, d.EndLocation, mode)
	}
	return dir, nil
}

// letterIDirections applies the "I" notation exception: the generic
// rule is symmetric here, but the notation requires the two motion
// types to diverge, so the direction follows motion type rather than
// color.
func letterIDirections(mode motion.GridMode, red, blue motion.Descriptor) (Result, error) {
	redDir, err := letterIDirection(mode, red)
	if err != nil {
		return Result{}, err
	}
	blueDir, err := letterIDirection(mode, blue)
	if err != nil {
		return Result{}, err
	}
	return Result{Red: redDir, Blue: blueDir}, nil
}

// letterIDirection gives the pro object the clockwise side and the
// anti object the counter-clockwise side, regardless of color.
func letterIDirection(mode motion.GridMode, d motion.Descriptor) (motion.Location, error) {
	tangent, ok := cwTangents[d.EndLocation]
	if !ok {
		return "", fmt.Errorf("separation: unknown location %q", d.EndLocation)
	}
	dir := tangent
	if d.MotionType == motion.Anti {
		dir = Opposite(tangent)
	}
	if !d.EndOrientation.Radial() {
		dir = Opposite(dir)
	}
	return dir, nil
}
