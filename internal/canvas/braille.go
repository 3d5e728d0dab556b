// Package canvas rasterizes lines and discs onto a grid of Unicode Braille
// cells. Each cell is a 2x4 dot grid, so a cols x rows canvas has
// 2*cols x 4*rows addressable dots.
package canvas

import (
	"strings"
	"unicode/utf8"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

type cell struct {
	pattern uint8
	color   RGB
	text    rune
}

// Canvas is a fixed-size Braille raster with one colour per cell.
type Canvas struct {
	cols, rows int
	cells      []cell
	profile    Profile
}

// New returns a blank canvas using the detected terminal colour profile.
func New(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Canvas{
		cols:    cols,
		rows:    rows,
		cells:   make([]cell, cols*rows),
		profile: DetectProfile(),
	}
}

// SetProfile overrides the colour profile used by String.
func (c *Canvas) SetProfile(p Profile) { c.profile = p }

// Cells returns the canvas size in terminal cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) { return c.cols * 2, c.rows * 4 }

// Set lights dot (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, col RGB) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	ce := &c.cells[(y/4)*c.cols+x/2]
	ce.pattern |= 1 << brailleBits[x%2][y%4]
	ce.color = col
}

// IsSet reports whether dot (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2].pattern&(1<<brailleBits[x%2][y%4]) != 0
}

// Line draws a Bresenham line between two dots, inclusive.
func (c *Canvas) Line(x0, y0, x1, y1 int, col RGB) {
	c.DashedLine(x0, y0, x1, y1, 0, 0, col)
}

// DashedLine draws a line that alternates on dots lit and off dots dark.
// on <= 0 draws a solid line.
func (c *Canvas) DashedLine(x0, y0, x1, y1, on, off int, col RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for n := 0; ; n++ {
		if on <= 0 || n%(on+off) < on {
			c.Set(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Disc fills every dot within r of (cx, cy).
func (c *Canvas) Disc(cx, cy, r int, col RGB) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				c.Set(cx+x, cy+y, col)
			}
		}
	}
}

// Ring outlines the circle of radius r around (cx, cy).
func (c *Canvas) Ring(cx, cy, r int, col RGB) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if d <= r*r && d > (r-1)*(r-1) {
				c.Set(cx+x, cy+y, col)
			}
		}
	}
}

// Text writes s starting at cell (col, row), replacing the Braille glyphs
// underneath. Text running off the right edge is cut.
func (c *Canvas) Text(col, row int, s string, color RGB) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		if col >= c.cols {
			return
		}
		if col >= 0 {
			ce := &c.cells[row*c.cols+col]
			ce.text = r
			ce.color = color
		}
		col++
	}
}

// String renders the canvas as rows joined by newlines.
func (c *Canvas) String() string {
	var out strings.Builder
	out.Grow(c.rows * (c.cols*utf8.UTFMax + 1))
	color := newANSIState(c.profile)
	for row := range c.rows {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range c.cols {
			ce := c.cells[row*c.cols+col]
			switch {
			case ce.text != 0:
				color.set(&out, ce.color)
				out.WriteRune(ce.text)
			case ce.pattern == 0:
				out.WriteRune(' ')
			default:
				color.set(&out, ce.color)
				out.WriteRune(rune(0x2800 + int(ce.pattern)))
			}
		}
		color.reset(&out)
	}
	return out.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
