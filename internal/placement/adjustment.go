package placement

import (
	"github.com/tkastudio/pictograph/internal/geom"
	"github.com/tkastudio/pictograph/internal/motion"
)

// baseAdjustments maps (motion type, turns) to the base (dx, dy)
// magnitude of the glyph's offset from its anchor, in the arrow's own
// frame. Values are artwork-calibrated; unknown combinations fall back
// to (0, 0).
var baseAdjustments = map[motion.Type]map[motion.Turns]geom.Point{
	motion.Pro: {
		0: {X: 40, Y: 25}, 0.5: {X: 85, Y: 60}, 1: {X: 75, Y: 55},
		1.5: {X: 95, Y: 80}, 2: {X: 60, Y: 40}, 2.5: {X: 96, Y: 75},
		3: {X: 80, Y: 65},
	},
	motion.Anti: {
		0: {X: 30, Y: 35}, 0.5: {X: 53, Y: 27}, 1: {X: 48, Y: 60},
		1.5: {X: 53, Y: 20}, 2: {X: 45, Y: 60}, 2.5: {X: 48, Y: 20},
		3: {X: 40, Y: 60},
	},
	motion.Float: {
		0: {X: 25, Y: 35}, 0.5: {X: 25, Y: 35}, 1: {X: 25, Y: 35},
		1.5: {X: 25, Y: 35}, 2: {X: 25, Y: 35}, 2.5: {X: 25, Y: 35},
		3: {X: 25, Y: 35},
	},
	motion.Dash: {
		0: {X: 13, Y: 25}, 0.5: {X: 35, Y: 5}, 1: {X: 25, Y: 20},
		1.5: {X: 43, Y: 5}, 2: {X: 32, Y: 20}, 2.5: {X: 48, Y: 5},
		3: {X: 40, Y: 22},
	},
	motion.Static: {
		0: {X: 20, Y: 0}, 0.5: {X: 0, Y: 30}, 1: {X: 10, Y: 0},
		1.5: {X: 0, Y: 40}, 2: {X: 15, Y: 0}, 2.5: {X: 0, Y: 45},
		3: {X: 20, Y: 0},
	},
}

// BaseAdjustment looks up the base (dx, dy) magnitude for a (motion
// type, turns) pair. Unknown combinations default to (0, 0).
func BaseAdjustment(mt motion.Type, turns motion.Turns) geom.Point {
	return baseAdjustments[mt][turns]
}

// QuadrantVariants produces the 4 quadrant-indexed variants of a base
// adjustment:
//
//   - Static: all 4 variants equal the base. A non-moving glyph has no
//     directional asymmetry.
//   - Dash: axis reflections, not full rotation:
//     (x,y), (y,-x), (-x,-y), (-y,x).
//   - Pro/Anti/Float: the standard 2D rotation matrix at 0, 90, 180,
//     and 270 degrees.
func QuadrantVariants(mt motion.Type, base geom.Point) [4]geom.Point {
	switch mt {
	case motion.Static:
		return [4]geom.Point{base, base, base, base}
	case motion.Dash:
		return [4]geom.Point{
			{X: base.X, Y: base.Y},
			{X: base.Y, Y: -base.X},
			{X: -base.X, Y: -base.Y},
			{X: -base.Y, Y: base.X},
		}
	default:
		// Rotation matrix at exact quarter turns: sin/cos take only
		// values in {-1, 0, 1}, written out to keep the variants
		// bit-exact (no trig rounding).
		return [4]geom.Point{
			{X: base.X, Y: base.Y},
			{X: -base.Y, Y: base.X},
			{X: -base.X, Y: -base.Y},
			{X: base.Y, Y: -base.X},
		}
	}
}

// SelectVariant picks the variant at the resolved quadrant index. An
// index outside 0..3 (including QuadrantSentinel) is a caller contract
// violation and is rejected; silently passing the base value through
// would produce a plausible-looking but wrong placement.
func SelectVariant(variants [4]geom.Point, quadrant int, mt motion.Type, anchor motion.Location, mode motion.GridMode) (geom.Point, error) {
	if quadrant < 0 || quadrant >= len(variants) {
		return geom.Point{}, NewQuadrantRangeError(mt, anchor, mode)
	}
	return variants[quadrant], nil
}
