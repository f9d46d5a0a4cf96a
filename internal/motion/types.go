package motion

import "fmt"

// Type is the notation's primitive motion class.
type Type string

const (
	Pro    Type = "pro"
	Anti   Type = "anti"
	Float  Type = "float"
	Dash   Type = "dash"
	Static Type = "static"
)

// ValidTypes defines the allowed motion types.
var ValidTypes = map[Type]bool{
	Pro:    true,
	Anti:   true,
	Float:  true,
	Dash:   true,
	Static: true,
}

// Valid reports whether t is a known motion type.
func (t Type) Valid() bool { return ValidTypes[t] }

// IsShift reports whether t is a shift-class motion (Pro, Anti, Float).
// Shift motions travel between grid points; Static and Dash do not
// change the glyph's anchor.
func (t Type) IsShift() bool { return t == Pro || t == Anti || t == Float }

// RotationDirection is the rotational sense of a motion.
type RotationDirection string

const (
	Clockwise        RotationDirection = "cw"
	CounterClockwise RotationDirection = "ccw"
	NoRotation       RotationDirection = "no_rot"
)

// ValidRotationDirections defines the allowed rotation directions.
var ValidRotationDirections = map[RotationDirection]bool{
	Clockwise:        true,
	CounterClockwise: true,
	NoRotation:       true,
}

// Valid reports whether d is a known rotation direction.
func (d RotationDirection) Valid() bool { return ValidRotationDirections[d] }

// Location is one of the eight compass points of the grid.
type Location string

const (
	North     Location = "n"
	East      Location = "e"
	South     Location = "s"
	West      Location = "w"
	Northeast Location = "ne"
	Southeast Location = "se"
	Southwest Location = "sw"
	Northwest Location = "nw"
)

// ValidLocations defines the allowed compass locations.
var ValidLocations = map[Location]bool{
	North: true, East: true, South: true, West: true,
	Northeast: true, Southeast: true, Southwest: true, Northwest: true,
}

// Valid reports whether l is a known location.
func (l Location) Valid() bool { return ValidLocations[l] }

// Cardinal reports whether l is one of N, E, S, W.
func (l Location) Cardinal() bool {
	return l == North || l == East || l == South || l == West
}

// Intercardinal reports whether l is one of NE, SE, SW, NW.
func (l Location) Intercardinal() bool {
	return l == Northeast || l == Southeast || l == Southwest || l == Northwest
}

// Orientation is the rotational facing state of a tracked object.
type Orientation string

const (
	In      Orientation = "in"
	Out     Orientation = "out"
	Clock   Orientation = "clock"
	Counter Orientation = "counter"
)

// ValidOrientations defines the allowed orientations.
var ValidOrientations = map[Orientation]bool{
	In: true, Out: true, Clock: true, Counter: true,
}

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool { return ValidOrientations[o] }

// Radial reports whether o is a radial orientation (In or Out).
// Radial and non-radial orientations select between separate lookup
// families in the separation resolver.
func (o Orientation) Radial() bool { return o == In || o == Out }

// Toggled returns the paired orientation: In<->Out, Clock<->Counter.
func (o Orientation) Toggled() Orientation {
	switch o {
	case In:
		return Out
	case Out:
		return In
	case Clock:
		return Counter
	case Counter:
		return Clock
	}
	return o
}

// Color identifies which tracked object a descriptor belongs to.
type Color string

const (
	Red  Color = "red"
	Blue Color = "blue"
)

// ValidColors defines the allowed object colors.
var ValidColors = map[Color]bool{Red: true, Blue: true}

// Valid reports whether c is a known color.
func (c Color) Valid() bool { return ValidColors[c] }

// GridMode is the grid's point layout. The two modes are mutually
// exclusive: compass points map to different physical coordinates and
// the quadrant partitioning differs between them.
type GridMode string

const (
	Diamond GridMode = "diamond"
	Box     GridMode = "box"
)

// ValidGridModes defines the allowed grid layout modes.
var ValidGridModes = map[GridMode]bool{Diamond: true, Box: true}

// Valid reports whether m is a known grid mode.
func (m GridMode) Valid() bool { return ValidGridModes[m] }

// Turns is a turn count at half-turn granularity.
type Turns float64

// ValidTurns enumerates the allowed turn values.
var ValidTurns = []Turns{0, 0.5, 1, 1.5, 2, 2.5, 3}

// Valid reports whether t is inside the allowed half-turn set.
func (t Turns) Valid() bool {
	for _, v := range ValidTurns {
		if t == v {
			return true
		}
	}
	return false
}

// Whole reports whether t is a whole number of turns.
func (t Turns) Whole() bool { return t == Turns(int(t)) }

// Odd reports whether a whole turn count is odd. Only meaningful when
// Whole() is true.
func (t Turns) Odd() bool { return int(t)%2 == 1 }

// HalfLow reports which of the two symmetric half-turn outcomes applies:
// true for values congruent to 0.5 mod 2 (0.5, 2.5), false for values
// congruent to 1.5 mod 2 (1.5). Only meaningful for half-integer turns.
func (t Turns) HalfLow() bool {
	m := float64(t) - float64(2*int(float64(t)/2))
	return m == 0.5
}

// Descriptor describes how one tracked object moves during one beat.
//
// Descriptors are immutable: a changed beat produces a new Descriptor.
// EndOrientation is derived by the orientation resolver; a stored value
// that disagrees with the derivation is a data-integrity bug, not an
// alternate truth (see sequence.CheckIntegrity).
type Descriptor struct {
	MotionType        Type              `yaml:"motion_type" json:"motion_type"`
	RotationDirection RotationDirection `yaml:"rotation_direction" json:"rotation_direction"`
	StartLocation     Location          `yaml:"start_location" json:"start_location"`
	EndLocation       Location          `yaml:"end_location" json:"end_location"`
	Turns             Turns             `yaml:"turns" json:"turns"`
	StartOrientation  Orientation       `yaml:"start_orientation" json:"start_orientation"`
	EndOrientation    Orientation       `yaml:"end_orientation,omitempty" json:"end_orientation,omitempty"`
	Color             Color             `yaml:"color" json:"color"`

	// ArrowLocation is the stored per-object anchor location, present
	// when replaying a saved beat. When empty the anchor is derived
	// from the start/end pair for shift motions.
	ArrowLocation Location `yaml:"arrow_location,omitempty" json:"arrow_location,omitempty"`
}

// Validate checks that every field holds a known enum value. It does
// not re-validate cross-field notational correctness; that is the
// sequence store's job.
func (d Descriptor) Validate() error {
	if !d.MotionType.Valid() {
		return fmt.Errorf("invalid motion type %q", d.MotionType)
	}
	if !d.RotationDirection.Valid() {
		return fmt.Errorf("invalid rotation direction %q", d.RotationDirection)
	}
	if !d.StartLocation.Valid() {
		return fmt.Errorf("invalid start location %q", d.StartLocation)
	}
	if !d.EndLocation.Valid() {
		return fmt.Errorf("invalid end location %q", d.EndLocation)
	}
	if !d.StartOrientation.Valid() {
		return fmt.Errorf("invalid start orientation %q", d.StartOrientation)
	}
	if d.EndOrientation != "" && !d.EndOrientation.Valid() {
		return fmt.Errorf("invalid end orientation %q", d.EndOrientation)
	}
	if !d.Color.Valid() {
		return fmt.Errorf("invalid color %q", d.Color)
	}
	if d.ArrowLocation != "" && !d.ArrowLocation.Valid() {
		return fmt.Errorf("invalid arrow location %q", d.ArrowLocation)
	}
	return nil
}
