package placement

import "github.com/tkastudio/pictograph/internal/motion"

// Mirrored decides whether the arrow glyph bitmap must be horizontally
// mirrored. Arrows are drawn from one canonical bitmap per motion
// family and mirrored to represent the opposite rotational sense,
// avoiding duplicate artwork.
//
// The rule: Anti artwork is authored counter-clockwise and mirrors on
// Clockwise; every other family is authored clockwise and mirrors on
// CounterClockwise. Float glyphs take their sense from the hand path
// when the descriptor carries none, and the Blue float glyph inverts
// the result because its artwork is authored for the Red object.
// NoRotation never mirrors.
//
// Pure boolean function: the same descriptor always yields the same
// answer.
func Mirrored(d motion.Descriptor) bool {
	sense := d.RotationDirection

	if d.MotionType == motion.Float {
		if sense == motion.NoRotation {
			hp, ok := motion.ClassifyHandPath(d.StartLocation, d.EndLocation)
			if !ok {
				return false
			}
			if hp == motion.HandPathCounterClockwise {
				sense = motion.CounterClockwise
			} else {
				sense = motion.Clockwise
			}
		}
		mirrored := sense == motion.CounterClockwise
		if d.Color == motion.Blue {
			mirrored = !mirrored
		}
		return mirrored
	}

	if sense == motion.NoRotation {
		return false
	}
	if d.MotionType == motion.Anti {
		return sense == motion.Clockwise
	}
	return sense == motion.CounterClockwise
}
