// Package bezier evaluates cubic Bézier curves and their first derivative.
//
// All functions are pure. Parameters outside [0, 1] are evaluated as given;
// callers that sample a curve segment restrict t themselves.
package bezier

// Tangent is a sampled curve position paired with the unit direction of the
// curve at that position. Dir is the zero vector where the derivative
// vanishes.
type Tangent struct {
	At  Point
	Dir Vec
}

// Position evaluates the cubic Bézier defined by p0..p3 at t using the
// Bernstein basis, independently per axis.
func Position(t float64, p0, p1, p2, p3 Point) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	b := 3 * mt2 * t
	c := 3 * mt * t2
	d := t2 * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Derivative evaluates the analytic first derivative of the cubic Bézier
// defined by p0..p3 at t.
func Derivative(t float64, p0, p1, p2, p3 Point) Vec {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	d01 := p1.Sub(p0)
	d12 := p2.Sub(p1)
	d23 := p3.Sub(p2)
	return Vec{
		X: a*d01.X + b*d12.X + c*d23.X,
		Y: a*d01.Y + b*d12.Y + c*d23.Y,
	}
}

// Normalize returns v scaled to unit length. A zero-length v yields the zero
// vector rather than NaNs.
func Normalize(v Vec) Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Sample returns n+1 points of the curve at t = i/n for i in 0..n.
// For n <= 0 it returns the single point p0.
func Sample(n int, p0, p1, p2, p3 Point) []Point {
	if n <= 0 {
		return []Point{p0}
	}
	out := make([]Point, n+1)
	for i := range n + 1 {
		out[i] = Position(param(i, n), p0, p1, p2, p3)
	}
	return out
}

// Tangents returns n+1 tangents at t = i/n for i in 0..n.
// For n <= 0 it returns the tangent at t = 0 only.
func Tangents(n int, p0, p1, p2, p3 Point) []Tangent {
	if n <= 0 {
		return []Tangent{tangentAt(0, p0, p1, p2, p3)}
	}
	out := make([]Tangent, n+1)
	for i := range n + 1 {
		out[i] = tangentAt(param(i, n), p0, p1, p2, p3)
	}
	return out
}

func tangentAt(t float64, p0, p1, p2, p3 Point) Tangent {
	return Tangent{
		At:  Position(t, p0, p1, p2, p3),
		Dir: Normalize(Derivative(t, p0, p1, p2, p3)),
	}
}

// param maps i in 0..n onto [0, 1], hitting both ends exactly.
func param(i, n int) float64 {
	if i == n {
		return 1
	}
	return float64(i) / float64(n)
}
