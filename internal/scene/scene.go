// Package scene turns the curve state into world-space drawing primitives
// shared by the terminal and PNG renderers.
package scene

import (
	"fmt"
	"math"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/curve"
)

// Geometry of the decorations, in curve-local units.
const (
	GridSpacing   = 50.0
	TangentLength = 30.0
	ArrowSize     = 8.0
	ArrowAngle    = math.Pi / 6
	PointRadius   = 10.0
	HaloRadius    = 14.0
	LabelOffset   = 20.0
)

// Source is what a frame is built from. Both *curve.State and
// *sim.Simulation satisfy it.
type Source interface {
	Get(i int) curve.ControlPoint
	SampleCurve(n int) []bezier.Point
	SampleTangents(n int) []bezier.Tangent
}

// Segment is a straight line between two points.
type Segment struct {
	A, B bezier.Point
}

// Arrow is a tangent shaft with a two-stroke head at B.
type Arrow struct {
	Shaft Segment
	Left  Segment
	Right Segment
}

// Handle is a drawn control point.
type Handle struct {
	Index int
	At    bezier.Point
	Fixed bool
	Label string
	// LabelAt is where the label's baseline centre goes.
	LabelAt bezier.Point
}

// Frame holds everything drawn for one tick, back to front.
type Frame struct {
	Width, Height float64
	Grid          []Segment
	Polygon       []bezier.Point
	Curve         []bezier.Point
	Arrows        []Arrow
	Handles       []Handle
}

// Build samples src into a frame covering a width x height world.
func Build(src Source, width, height float64, samples, tangents int) Frame {
	f := Frame{
		Width:   width,
		Height:  height,
		Grid:    Grid(width, height),
		Polygon: make([]bezier.Point, curve.NumPoints),
		Curve:   src.SampleCurve(samples),
		Handles: make([]Handle, curve.NumPoints),
	}
	for i := range curve.NumPoints {
		p := src.Get(i)
		f.Polygon[i] = p.Pos()
		f.Handles[i] = Handle{
			Index:   i,
			At:      p.Pos(),
			Fixed:   p.Fixed,
			Label:   fmt.Sprintf("P%d", i),
			LabelAt: bezier.Pt(p.X, p.Y-LabelOffset),
		}
	}
	if tangents <= 0 {
		return f
	}
	for _, tg := range src.SampleTangents(tangents) {
		if a, ok := TangentArrow(tg); ok {
			f.Arrows = append(f.Arrows, a)
		}
	}
	return f
}

// Grid returns the vertical then horizontal grid lines.
func Grid(width, height float64) []Segment {
	var out []Segment
	for x := 0.0; x < width; x += GridSpacing {
		out = append(out, Segment{bezier.Pt(x, 0), bezier.Pt(x, height)})
	}
	for y := 0.0; y < height; y += GridSpacing {
		out = append(out, Segment{bezier.Pt(0, y), bezier.Pt(width, y)})
	}
	return out
}

// TangentArrow builds the arrow for tg. It reports false for a zero
// direction, which has nothing to draw.
func TangentArrow(tg bezier.Tangent) (Arrow, bool) {
	if tg.Dir.IsZero() {
		return Arrow{}, false
	}
	end := tg.At.Add(tg.Dir.Mul(TangentLength))
	back := tg.Dir.Mul(-ArrowSize)
	return Arrow{
		Shaft: Segment{tg.At, end},
		Left:  Segment{end, end.Add(back.Rotate(-ArrowAngle))},
		Right: Segment{end, end.Add(back.Rotate(ArrowAngle))},
	}, true
}
