package motion

// HandPath is the auxiliary clockwise/counter-clockwise classification
// of a shift motion's start->end location pair. It is used only for
// Float orientation resolution.
type HandPath string

const (
	HandPathClockwise        HandPath = "cw_handpath"
	HandPathCounterClockwise HandPath = "ccw_handpath"
)

// clockwiseSteps enumerates every single clockwise step around the two
// location rings. A shift travels between adjacent points of its own
// ring; cross-ring or identity pairs have no hand-path direction.
var clockwiseSteps = map[[2]Location]bool{
	{North, East}: true, {East, South}: true, {South, West}: true, {West, North}: true,
	{Northeast, Southeast}: true, {Southeast, Southwest}: true,
	{Southwest, Northwest}: true, {Northwest, Northeast}: true,
}

// ClassifyHandPath classifies the start->end pair as a clockwise or
// counter-clockwise shift. ok is false when the pair is not a single
// step around either ring (identical locations, opposite corners, or a
// cardinal/intercardinal mix), which indicates malformed motion data.
func ClassifyHandPath(start, end Location) (HandPath, bool) {
	if clockwiseSteps[[2]Location{start, end}] {
		return HandPathClockwise, true
	}
	if clockwiseSteps[[2]Location{end, start}] {
		return HandPathCounterClockwise, true
	}
	return "", false
}

// ShiftAnchor derives the anchor location of a shift motion's arrow
// glyph from its start/end pair: the grid point halfway around the ring
// between the two. The pair is unordered. ok is false for pairs that
// are not a single ring step.
func ShiftAnchor(start, end Location) (Location, bool) {
	key := [2]Location{start, end}
	if !clockwiseSteps[key] {
		key = [2]Location{end, start}
	}
	loc, exists := shiftAnchors[key]
	return loc, exists
}

// shiftAnchors maps each clockwise ring step to the location between
// its endpoints. Cardinal steps anchor at intercardinal points and
// vice versa.
var shiftAnchors = map[[2]Location]Location{
	{North, East}: Northeast, {East, South}: Southeast,
	{South, West}: Southwest, {West, North}: Northwest,
	{Northeast, Southeast}: East, {Southeast, Southwest}: South,
	{Southwest, Northwest}: West, {Northwest, Northeast}: North,
}
