package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnsValid(t *testing.T) {
	for _, v := range ValidTurns {
		assert.True(t, v.Valid(), "turns %v should be valid", v)
	}

	invalid := []Turns{-0.5, 0.25, 3.5, 4, 100}
	for _, v := range invalid {
		assert.False(t, v.Valid(), "turns %v should be invalid", v)
	}
}

func TestTurnsHalfLow(t *testing.T) {
	testCases := []struct {
		turns Turns
		low   bool
	}{
		{0.5, true},
		{1.5, false},
		{2.5, true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.low, tc.turns.HalfLow(), "turns=%v", tc.turns)
	}
}

func TestTurnsWholeAndOdd(t *testing.T) {
	assert.True(t, Turns(2).Whole())
	assert.False(t, Turns(2).Odd())
	assert.True(t, Turns(1).Odd())
	assert.True(t, Turns(3).Odd())
	assert.False(t, Turns(0.5).Whole())
}

func TestOrientationToggledIsInvolution(t *testing.T) {
	for o := range ValidOrientations {
		assert.Equal(t, o, o.Toggled().Toggled(), "toggling twice must return %v", o)
		assert.NotEqual(t, o, o.Toggled(), "toggle must change %v", o)
	}
}

func TestOrientationRadial(t *testing.T) {
	assert.True(t, In.Radial())
	assert.True(t, Out.Radial())
	assert.False(t, Clock.Radial())
	assert.False(t, Counter.Radial())
}

func TestDescriptorValidate(t *testing.T) {
	valid := Descriptor{
		MotionType:        Pro,
		RotationDirection: Clockwise,
		StartLocation:     North,
		EndLocation:       East,
		Turns:             1,
		StartOrientation:  In,
		Color:             Red,
	}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*Descriptor)
	}{
		{"bad motion type", func(d *Descriptor) { d.MotionType = "spin" }},
		{"bad rotation direction", func(d *Descriptor) { d.RotationDirection = "widdershins" }},
		{"bad start location", func(d *Descriptor) { d.StartLocation = "nne" }},
		{"bad end location", func(d *Descriptor) { d.EndLocation = "" }},
		{"bad start orientation", func(d *Descriptor) { d.StartOrientation = "sideways" }},
		{"bad end orientation", func(d *Descriptor) { d.EndOrientation = "sideways" }},
		{"bad color", func(d *Descriptor) { d.Color = "green" }},
		{"bad arrow location", func(d *Descriptor) { d.ArrowLocation = "center" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestClassifyHandPath(t *testing.T) {
	testCases := []struct {
		start, end Location
		want       HandPath
	}{
		{North, East, HandPathClockwise},
		{East, South, HandPathClockwise},
		{South, West, HandPathClockwise},
		{West, North, HandPathClockwise},
		{East, North, HandPathCounterClockwise},
		{North, West, HandPathCounterClockwise},
		{Northeast, Southeast, HandPathClockwise},
		{Northwest, Northeast, HandPathClockwise},
		{Southeast, Northeast, HandPathCounterClockwise},
	}

	for _, tc := range testCases {
		got, ok := ClassifyHandPath(tc.start, tc.end)
		require.True(t, ok, "%s->%s should classify", tc.start, tc.end)
		assert.Equal(t, tc.want, got, "%s->%s", tc.start, tc.end)
	}
}

func TestClassifyHandPathUnclassifiable(t *testing.T) {
	testCases := []struct {
		name       string
		start, end Location
	}{
		{"identical locations", North, North},
		{"opposite corners", North, South},
		{"cross-ring pair", North, Northeast},
		{"diagonal opposite", Northeast, Southwest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ClassifyHandPath(tc.start, tc.end)
			assert.False(t, ok)
		})
	}
}

func TestShiftAnchor(t *testing.T) {
	testCases := []struct {
		start, end Location
		want       Location
	}{
		{North, East, Northeast},
		{East, North, Northeast}, // unordered
		{South, West, Southwest},
		{Northeast, Southeast, East},
		{Southwest, Northwest, West},
		{Northwest, Northeast, North},
	}

	for _, tc := range testCases {
		got, ok := ShiftAnchor(tc.start, tc.end)
		require.True(t, ok, "%s/%s", tc.start, tc.end)
		assert.Equal(t, tc.want, got)
	}

	_, ok := ShiftAnchor(North, South)
	assert.False(t, ok, "opposite corners have no shift anchor")
}
