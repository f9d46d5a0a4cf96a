package placement

import (
	"math"

	"github.com/tkastudio/pictograph/internal/geom"
	"github.com/tkastudio/pictograph/internal/motion"
)

// Scene geometry. The pictograph scene is a square; the 8 compass
// points sit on a ring around its center. Hand points occupy the
// cardinals in Diamond mode and the intercardinals in Box mode, but
// arrow anchors may land on any of the 8 (shift anchors are ring
// midpoints), so all 8 coordinates exist in both modes.
const (
	SceneSize  = 900.0
	ringRadius = 200.0
)

// SceneCenter is the grid's center point.
var SceneCenter = geom.Point{X: SceneSize / 2, Y: SceneSize / 2}

// locationUnits gives the unit vector from the center toward each
// compass point, in scene coordinates (y grows down).
var locationUnits = map[motion.Location]geom.Point{
	motion.North:     {X: 0, Y: -1},
	motion.East:      {X: 1, Y: 0},
	motion.South:     {X: 0, Y: 1},
	motion.West:      {X: -1, Y: 0},
	motion.Northeast: {X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
	motion.Southeast: {X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	motion.Southwest: {X: -math.Sqrt2 / 2, Y: math.Sqrt2 / 2},
	motion.Northwest: {X: -math.Sqrt2 / 2, Y: -math.Sqrt2 / 2},
}

// GridPoint returns the physical scene coordinate of a compass point.
func GridPoint(loc motion.Location) geom.Point {
	u := locationUnits[loc]
	return geom.Point{
		X: SceneCenter.X + ringRadius*u.X,
		Y: SceneCenter.Y + ringRadius*u.Y,
	}
}
