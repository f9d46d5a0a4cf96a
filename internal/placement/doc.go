// Package placement implements the arrow-placement pipeline: the
// deterministic mapping from a motion descriptor and grid layout mode
// to the arrow glyph's final scene position, rotation, and mirroring.
//
// ARCHITECTURE:
//
// Pure leaf-first pipeline:
//  1. Anchor resolution: which of the 8 compass locations the glyph
//     hangs on (the motion's own end location for static/dash, a
//     derived ring midpoint for shifts).
//  2. Quadrant index: which of 4 symmetry quadrants the anchor falls
//     in, given the grid layout mode and motion class.
//  3. Adjustment: a base (dx, dy) magnitude looked up by (motion type,
//     turns), expanded into 4 quadrant variants, with the resolved
//     quadrant's variant selected. A placement-key override, when
//     present, replaces the generic adjustment entirely.
//  4. Scene transform: the local adjustment is counter-rotated by the
//     arrow's own rotation angle and added to the anchor's physical
//     grid coordinate.
//
// Every step is a deterministic function of its inputs. There is no
// shared mutable state: the only shared input is the override table,
// passed to the key resolver at construction and treated as immutable
// for the life of the session, so concurrent placements need no
// coordination.
//
// ERROR DISCIPLINE:
//
// An anchor that cannot be derived (unclassifiable shift pair) and a
// quadrant index outside 0..3 (anchor inconsistent with the declared
// grid mode) are caller contract violations and propagate as
// *PlacementError. They are never silently substituted: a plausible-
// looking wrong placement is worse than an omitted glyph.
package placement
