package placement

import "github.com/tkastudio/pictograph/internal/motion"

// Arrow rotation angles, in degrees, clockwise on screen, with 0 being
// the artwork's natural (north-pointing) direction.
//
// radialAngles points the glyph along the grid radius at its anchor.
// tangentCW and tangentCCW point it along the ring in the respective
// rotational sense. The tables are artwork-calibrated enumerations, not
// derived values; keep them explicit.
var radialAngles = map[motion.Location]float64{
	motion.North: 0, motion.Northeast: 45, motion.East: 90,
	motion.Southeast: 135, motion.South: 180, motion.Southwest: 225,
	motion.West: 270, motion.Northwest: 315,
}

var tangentCWAngles = map[motion.Location]float64{
	motion.North: 90, motion.Northeast: 135, motion.East: 180,
	motion.Southeast: 225, motion.South: 270, motion.Southwest: 315,
	motion.West: 0, motion.Northwest: 45,
}

var tangentCCWAngles = map[motion.Location]float64{
	motion.North: 270, motion.Northeast: 315, motion.East: 0,
	motion.Southeast: 45, motion.South: 90, motion.Southwest: 135,
	motion.West: 180, motion.Northwest: 225,
}

// RotationAngle computes the arrow glyph's own rotation in degrees for
// a motion anchored at anchor.
//
// Pro and Float glyphs point along their travel tangent; Float takes
// its rotational sense from the hand path when the descriptor carries
// no explicit one. Anti glyphs depict the inverted roll and use the
// opposite tangent. Static and Dash glyphs point along the radius.
func RotationAngle(d motion.Descriptor, anchor motion.Location) float64 {
	switch d.MotionType {
	case motion.Pro:
		if d.RotationDirection == motion.CounterClockwise {
			return tangentCCWAngles[anchor]
		}
		return tangentCWAngles[anchor]
	case motion.Anti:
		if d.RotationDirection == motion.CounterClockwise {
			return tangentCWAngles[anchor]
		}
		return tangentCCWAngles[anchor]
	case motion.Float:
		sense := d.RotationDirection
		if sense == motion.NoRotation {
			if hp, ok := motion.ClassifyHandPath(d.StartLocation, d.EndLocation); ok && hp == motion.HandPathCounterClockwise {
				sense = motion.CounterClockwise
			} else {
				sense = motion.Clockwise
			}
		}
		if sense == motion.CounterClockwise {
			return tangentCCWAngles[anchor]
		}
		return tangentCWAngles[anchor]
	default:
		return radialAngles[anchor]
	}
}
