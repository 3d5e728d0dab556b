package bezier

import (
	"fmt"
	"math"
)

// Point is a position in curve-local space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vec {
	return Vec{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add translates p by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Len()
}

// Vec is a displacement or direction.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v has no direction. Normalize returns such a vector
// for degenerate input and renderers skip drawing it.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rotate returns v rotated by th radians.
func (v Vec) Rotate(th float64) Vec {
	s, c := math.Sincos(th)
	return Vec{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
