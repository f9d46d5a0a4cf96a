package sequence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkastudio/pictograph/internal/motion"
	"github.com/tkastudio/pictograph/internal/orient"
)

const validDoc = `
name: demo
grid_mode: diamond
beats:
  - id: beat-1
    letter: G
    red:
      motion_type: pro
      rotation_direction: cw
      start_location: n
      end_location: e
      turns: 1
      start_orientation: in
      end_orientation: out
      color: red
    blue:
      motion_type: anti
      rotation_direction: ccw
      start_location: s
      end_location: e
      turns: 0.5
      start_orientation: in
      color: blue
`

func TestParseValidDocument(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Name)
	assert.Equal(t, motion.Diamond, doc.GridMode)
	require.Len(t, doc.Beats, 1)

	b := doc.Beats[0]
	assert.Equal(t, "beat-1", b.ID)
	assert.Equal(t, "G", b.Letter)
	assert.Equal(t, motion.Pro, b.Red.MotionType)
	assert.Equal(t, motion.Turns(0.5), b.Blue.Turns)
}

func TestParseRejectsBadGridMode(t *testing.T) {
	_, err := Parse([]byte("name: x\ngrid_mode: hex\nbeats: []\n"))
	assert.Error(t, err)
}

func TestParseRejectsMissingBeatID(t *testing.T) {
	doc := `
grid_mode: box
beats:
  - red:
      motion_type: static
      rotation_direction: no_rot
      start_location: ne
      end_location: ne
      turns: 0
      start_orientation: in
      color: red
    blue:
      motion_type: static
      rotation_direction: no_rot
      start_location: sw
      end_location: sw
      turns: 0
      start_orientation: in
      color: blue
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestParseRejectsSwappedColors(t *testing.T) {
	doc := `
grid_mode: diamond
beats:
  - id: beat-1
    red:
      motion_type: static
      rotation_direction: no_rot
      start_location: n
      end_location: n
      turns: 0
      start_orientation: in
      color: blue
    blue:
      motion_type: static
      rotation_direction: no_rot
      start_location: s
      end_location: s
      turns: 0
      start_orientation: in
      color: red
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colors do not match")
}

func TestNewBeatIDIsValidUUID(t *testing.T) {
	id := NewBeatID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestCheckIntegrityAcceptsDerivedOrientation(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	require.NoError(t, err)

	// Pro with one whole turn toggles In to Out: the stored value
	// agrees with the derivation. The blue descriptor stores nothing
	// and is skipped.
	violations, err := CheckIntegrity(doc, orient.NewResolver(zerolog.Nop()))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckIntegrityFlagsDisagreement(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	require.NoError(t, err)
	doc.Beats[0].Red.EndOrientation = motion.In // contradicts the derivation

	violations, err := CheckIntegrity(doc, orient.NewResolver(zerolog.Nop()))
	require.NoError(t, err)
	require.Len(t, violations, 1)

	v := violations[0]
	assert.Equal(t, "beat-1", v.BeatID)
	assert.Equal(t, motion.Red, v.Color)
	assert.Equal(t, motion.In, v.Stored)
	assert.Equal(t, motion.Out, v.Derived)
}

func TestCheckIntegritySurfacesHandPathError(t *testing.T) {
	doc := &Document{
		GridMode: motion.Diamond,
		Beats: []Beat{{
			ID: "beat-bad",
			Red: motion.Descriptor{
				MotionType:        motion.Float,
				RotationDirection: motion.NoRotation,
				StartLocation:     motion.North,
				EndLocation:       motion.North,
				StartOrientation:  motion.In,
				EndOrientation:    motion.Clock,
				Color:             motion.Red,
			},
			Blue: motion.Descriptor{
				MotionType:        motion.Static,
				RotationDirection: motion.NoRotation,
				StartLocation:     motion.South,
				EndLocation:       motion.South,
				StartOrientation:  motion.In,
				Color:             motion.Blue,
			},
		}},
	}

	_, err := CheckIntegrity(doc, orient.NewResolver(zerolog.Nop()))
	require.Error(t, err)
	assert.True(t, orient.IsHandPathError(err))
}
