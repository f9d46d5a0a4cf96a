package placement

import "github.com/tkastudio/pictograph/internal/motion"

// ResolveAnchor determines the compass location the arrow glyph is
// anchored at.
//
// Static and Dash glyphs do not change location: their anchor is the
// motion's start location. Shift glyphs (Pro, Anti, Float) anchor at
// the stored per-object arrow location when the descriptor carries one
// (replayed beats), otherwise at the ring midpoint derived from the
// start/end pair.
//
// Returns a hand-path PlacementError when a shift anchor cannot be
// derived because the pair is not a single ring step.
func ResolveAnchor(d motion.Descriptor) (motion.Location, error) {
	if !d.MotionType.IsShift() {
		return d.StartLocation, nil
	}
	if d.ArrowLocation != "" {
		return d.ArrowLocation, nil
	}
	anchor, ok := motion.ShiftAnchor(d.StartLocation, d.EndLocation)
	if !ok {
		return "", NewHandPathError(d.MotionType, d.StartLocation, d.EndLocation)
	}
	return anchor, nil
}
