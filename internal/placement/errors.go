package placement

import (
	"errors"
	"fmt"

	"github.com/tkastudio/pictograph/internal/motion"
)

// PlacementError represents an error detected while computing an arrow
// placement.
//
// Placement errors are caller contract violations, not recoverable
// anomalies:
//   - Unclassifiable hand path: a shift motion's start/end pair is not
//     a single ring step, so no anchor can be derived.
//   - Quadrant out of range: the anchor location is inconsistent with
//     the declared grid layout mode.
//
// The rendering layer is expected to omit the glyph or draw an explicit
// placeholder; the engine never substitutes a default placement.
type PlacementError struct {
	// Code identifies the error category.
	Code PlacementErrorCode

	// Message is a human-readable description.
	Message string

	// MotionType identifies the motion class involved.
	MotionType motion.Type

	// Location is the offending anchor or end location, when known.
	Location motion.Location

	// GridMode is the declared layout mode (for quadrant errors).
	GridMode motion.GridMode
}

// PlacementErrorCode categorizes placement errors.
type PlacementErrorCode string

const (
	// ErrCodeUnclassifiableHandPath indicates a shift pair that is not
	// a single step around either location ring.
	ErrCodeUnclassifiableHandPath PlacementErrorCode = "UNCLASSIFIABLE_HANDPATH"

	// ErrCodeQuadrantOutOfRange indicates an anchor location outside
	// the quadrant set defined by the grid mode and motion class.
	ErrCodeQuadrantOutOfRange PlacementErrorCode = "QUADRANT_OUT_OF_RANGE"
)

// Error implements the error interface.
func (e *PlacementError) Error() string {
	if e.GridMode != "" {
		return fmt.Sprintf("%s: %s (motion=%s, location=%s, mode=%s)",
			e.Code, e.Message, e.MotionType, e.Location, e.GridMode)
	}
	return fmt.Sprintf("%s: %s (motion=%s, location=%s)",
		e.Code, e.Message, e.MotionType, e.Location)
}

// IsQuadrantRangeError returns true if the error is a quadrant range
// violation. Uses errors.As to handle wrapped errors.
func IsQuadrantRangeError(err error) bool {
	var pe *PlacementError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeQuadrantOutOfRange
	}
	return false
}

// IsHandPathError returns true if the error is an unclassifiable
// hand-path error. Uses errors.As to handle wrapped errors.
func IsHandPathError(err error) bool {
	var pe *PlacementError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeUnclassifiableHandPath
	}
	return false
}

// NewHandPathError creates a PlacementError for an underivable shift
// anchor.
func NewHandPathError(mt motion.Type, start, end motion.Location) *PlacementError {
	return &PlacementError{
		Code:       ErrCodeUnclassifiableHandPath,
		Message:    fmt.Sprintf("shift pair %s -> %s is not a single ring step", start, end),
		MotionType: mt,
		Location:   end,
	}
}

// NewQuadrantRangeError creates a PlacementError for an anchor outside
// the grid mode's quadrant set.
func NewQuadrantRangeError(mt motion.Type, anchor motion.Location, mode motion.GridMode) *PlacementError {
	return &PlacementError{
		Code:       ErrCodeQuadrantOutOfRange,
		Message:    "anchor location inconsistent with grid layout mode",
		MotionType: mt,
		Location:   anchor,
		GridMode:   mode,
	}
}
