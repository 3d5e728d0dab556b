// Package curve owns the four control points of the animated cubic Bézier
// and the spring targets they are pulled toward.
package curve

import (
	"errors"
	"fmt"

	"github.com/olivier-w/springcurve/internal/bezier"
)

// NumPoints is the number of control points of a cubic Bézier.
const NumPoints = 4

var (
	// ErrFixedPoint is returned when mutating an endpoint.
	ErrFixedPoint = errors.New("control point is fixed")
	// ErrIndexRange is returned for indices outside 0..NumPoints-1.
	ErrIndexRange = errors.New("control point index out of range")
)

// ControlPoint is one Bézier control point with its spring velocity.
type ControlPoint struct {
	X, Y   float64
	VX, VY float64
	Fixed  bool
}

// Pos returns the position of the point.
func (p ControlPoint) Pos() bezier.Point {
	return bezier.Pt(p.X, p.Y)
}

// Target is the attractor a free control point is pulled toward.
type Target struct {
	X, Y float64
}

// Pos returns the target as a point.
func (t Target) Pos() bezier.Point {
	return bezier.Pt(t.X, t.Y)
}

// Layout is the initial placement of P0..P3. P0 and P3 are the fixed
// endpoints.
type Layout [NumPoints]bezier.Point

// DefaultLayout spans a 700x420 curve-local space with y pointing down.
var DefaultLayout = Layout{
	bezier.Pt(100, 300),
	bezier.Pt(250, 100),
	bezier.Pt(450, 100),
	bezier.Pt(600, 300),
}

// Bounds is the size of the curve-local space DefaultLayout lives in.
const (
	Width  = 700.0
	Height = 420.0
)

// State holds the control points and their targets. It is not safe for
// concurrent use; callers funnel every access through one goroutine.
type State struct {
	layout  Layout
	points  [NumPoints]ControlPoint
	targets [NumPoints]Target
}

// New returns a State placed at layout with every point at rest on its
// target.
func New(layout Layout) *State {
	s := &State{layout: layout}
	for i, p := range layout {
		s.points[i] = ControlPoint{X: p.X, Y: p.Y, Fixed: isEndpoint(i)}
		s.targets[i] = Target{X: p.X, Y: p.Y}
	}
	return s
}

func isEndpoint(i int) bool {
	return i == 0 || i == NumPoints-1
}

// Get returns control point i. It panics if i is out of range.
func (s *State) Get(i int) ControlPoint {
	return s.points[i]
}

// Target returns the target of control point i. It panics if i is out of
// range.
func (s *State) Target(i int) Target {
	return s.targets[i]
}

// SetTarget moves the target of free point i to (x, y).
func (s *State) SetTarget(i int, x, y float64) error {
	if err := s.checkFree(i); err != nil {
		return fmt.Errorf("set target %d: %w", i, err)
	}
	s.targets[i] = Target{X: x, Y: y}
	return nil
}

// ApplyStep commits the integrated position and velocity of free point i.
// The Fixed flag of p is ignored.
func (s *State) ApplyStep(i int, p ControlPoint) error {
	if err := s.checkFree(i); err != nil {
		return fmt.Errorf("apply step %d: %w", i, err)
	}
	s.points[i] = ControlPoint{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY}
	return nil
}

func (s *State) checkFree(i int) error {
	if i < 0 || i >= NumPoints {
		return ErrIndexRange
	}
	if s.points[i].Fixed {
		return ErrFixedPoint
	}
	return nil
}

// Reset puts the free points and their targets back on the layout at rest.
// Endpoints are untouched.
func (s *State) Reset() {
	for i, p := range s.layout {
		if s.points[i].Fixed {
			continue
		}
		s.points[i] = ControlPoint{X: p.X, Y: p.Y}
		s.targets[i] = Target{X: p.X, Y: p.Y}
	}
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Points returns the current control polygon.
func (s *State) Points() (p0, p1, p2, p3 bezier.Point) {
	return s.points[0].Pos(), s.points[1].Pos(), s.points[2].Pos(), s.points[3].Pos()
}

// SampleCurve returns n+1 curve points at evenly spaced parameters.
func (s *State) SampleCurve(n int) []bezier.Point {
	p0, p1, p2, p3 := s.Points()
	return bezier.Sample(n, p0, p1, p2, p3)
}

// SampleTangents returns n+1 curve points paired with unit tangents.
func (s *State) SampleTangents(n int) []bezier.Tangent {
	p0, p1, p2, p3 := s.Points()
	return bezier.Tangents(n, p0, p1, p2, p3)
}
