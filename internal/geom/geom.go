// Package geom provides the 2D point math shared by the placement
// pipeline and the rendering layer: rotation about an origin, angle and
// distance utilities, and the local-to-scene adjustment transform.
//
// Scene space follows the renderer's convention: x grows right, y grows
// down, angles are in degrees and increase clockwise on screen.
package geom

import "math"

// Point is a physical coordinate in scene space.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// NormalizeAngle reduces an angle in degrees to [0, 360).
func NormalizeAngle(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// RotatePoint rotates p about origin by the given angle in degrees.
func RotatePoint(p, origin Point, deg float64) Point {
	a := Deg2Rad(deg)
	c, s := math.Cos(a), math.Sin(a)
	dx, dy := p.X-origin.X, p.Y-origin.Y
	return Point{
		X: origin.X + dx*c - dy*s,
		Y: origin.Y + dx*s + dy*c,
	}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// AngleBetween returns the angle of the ray from p to q in degrees,
// normalized to [0, 360).
func AngleBetween(p, q Point) float64 {
	return NormalizeAngle(math.Atan2(q.Y-p.Y, q.X-p.X) * 180 / math.Pi)
}

// RotateAdjustment maps a local (dx, dy) adjustment, computed in the
// arrow's own frame, into scene coordinates. The arrow glyph is itself
// drawn rotated by rotationDeg, so the adjustment must be counter-
// rotated (negated angle) to land in the shared scene frame.
func RotateAdjustment(adjust Point, rotationDeg float64) Point {
	a := Deg2Rad(-rotationDeg)
	c, s := math.Cos(a), math.Sin(a)
	return Point{
		X: adjust.X*c - adjust.Y*s,
		Y: adjust.X*s + adjust.Y*c,
	}
}
