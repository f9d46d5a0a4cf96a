package placement

import "github.com/tkastudio/pictograph/internal/motion"

// QuadrantSentinel is returned for an anchor location outside the
// active mode's defined quadrant set. Callers must reject it rather
// than index with it; the adjustment engine enforces this.
const QuadrantSentinel = -1

// cardinalQuadrants and intercardinalQuadrants are the two quadrant
// partitions of the grid. Indices drive which pre-rotated adjustment
// variant applies.
var cardinalQuadrants = map[motion.Location]int{
	motion.North: 0,
	motion.East:  1,
	motion.South: 2,
	motion.West:  3,
}

var intercardinalQuadrants = map[motion.Location]int{
	motion.Northeast: 0,
	motion.Southeast: 1,
	motion.Southwest: 2,
	motion.Northwest: 3,
}

// QuadrantIndex maps an anchor location to one of 4 symmetry quadrants.
//
// The active quadrant set depends on both the grid layout mode and the
// motion class: in Diamond mode objects sit on cardinal hand points, so
// shift anchors (ring midpoints) are intercardinal while static/dash
// anchors are cardinal; Box mode is the inverse. An anchor outside the
// active set means the caller mixed up layout and motion and yields
// QuadrantSentinel.
func QuadrantIndex(mode motion.GridMode, anchor motion.Location, mt motion.Type) int {
	set := cardinalQuadrants
	if (mode == motion.Diamond) == mt.IsShift() {
		set = intercardinalQuadrants
	}
	idx, ok := set[anchor]
	if !ok {
		return QuadrantSentinel
	}
	return idx
}
