package ui

import (
	"math"

	"github.com/olivier-w/springcurve/internal/bezier"
)

// viewport maps curve-local coordinates onto the Braille dot grid of a
// cols x rows canvas, preserving aspect ratio and centring the world.
// Dots are treated as square: a terminal cell is about twice as tall as it
// is wide and holds 2x4 dots.
type viewport struct {
	cols, rows int
	scale      float64
	offX, offY float64
}

func newViewport(cols, rows int, worldW, worldH float64) viewport {
	dw, dh := float64(cols*2), float64(rows*4)
	s := math.Min(dw/worldW, dh/worldH)
	return viewport{
		cols:  cols,
		rows:  rows,
		scale: s,
		offX:  (dw - worldW*s) / 2,
		offY:  (dh - worldH*s) / 2,
	}
}

// dot returns the dot containing world point p.
func (v viewport) dot(p bezier.Point) (int, int) {
	return int(math.Floor(p.X*v.scale + v.offX)), int(math.Floor(p.Y*v.scale + v.offY))
}

// cell returns the terminal cell containing world point p.
func (v viewport) cell(p bezier.Point) (int, int) {
	x, y := v.dot(p)
	return floorDiv(x, 2), floorDiv(y, 4)
}

// dots converts a world length to dots.
func (v viewport) dots(l float64) int {
	return int(math.Round(l * v.scale))
}

// world returns the world point under the centre of cell (col, row).
func (v viewport) world(col, row int) bezier.Point {
	dx := float64(col*2) + 1
	dy := float64(row*4) + 2
	return bezier.Pt((dx-v.offX)/v.scale, (dy-v.offY)/v.scale)
}

// contains reports whether cell (col, row) lies on the canvas.
func (v viewport) contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.cols && row < v.rows
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
