package orient

import (
	"errors"
	"fmt"

	"github.com/tkastudio/pictograph/internal/motion"
)

// UnclassifiableHandPathError reports a Float motion whose start->end
// location pair is neither a clockwise nor a counter-clockwise shift.
// This indicates malformed motion data (for instance identical start
// and end locations on a shift motion) and must be surfaced rather
// than guessed around.
type UnclassifiableHandPathError struct {
	Start motion.Location
	End   motion.Location
}

// Error implements the error interface.
func (e *UnclassifiableHandPathError) Error() string {
	return fmt.Sprintf("unclassifiable hand path: %s -> %s is not a single ring step", e.Start, e.End)
}

// NewHandPathError creates an UnclassifiableHandPathError.
func NewHandPathError(start, end motion.Location) *UnclassifiableHandPathError {
	return &UnclassifiableHandPathError{Start: start, End: end}
}

// IsHandPathError returns true if the error is an unclassifiable
// hand-path error. Uses errors.As to handle wrapped errors.
func IsHandPathError(err error) bool {
	var he *UnclassifiableHandPathError
	return errors.As(err, &he)
}
