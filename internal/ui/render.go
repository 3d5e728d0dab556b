package ui

import (
	"image/color"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/canvas"
	"github.com/olivier-w/springcurve/internal/scene"
)

// over flattens a translucent palette colour onto the view background.
func over(c color.NRGBA) canvas.RGB {
	bg := scene.BackgroundBottom
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) uint8 { return uint8(float64(bg) + (float64(fg)-float64(bg))*a) }
	return canvas.RGB{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B)}
}

// drawFrame rasterizes f onto c through vp, back to front. ringIndex and
// ringRadius describe the pointer-focus ring; a radius below one dot is
// not drawn.
func drawFrame(c *canvas.Canvas, vp viewport, f scene.Frame, ringIndex int, ringRadius float64) {
	line := func(s scene.Segment, on, off int, col canvas.RGB) {
		x0, y0 := vp.dot(s.A)
		x1, y1 := vp.dot(s.B)
		c.DashedLine(x0, y0, x1, y1, on, off, col)
	}

	grid := over(scene.GridColor)
	for _, s := range f.Grid {
		line(s, 1, 3, grid)
	}

	poly := over(scene.PolygonColor)
	for i := 1; i < len(f.Polygon); i++ {
		line(scene.Segment{A: f.Polygon[i-1], B: f.Polygon[i]}, 2, 2, poly)
	}

	if len(f.Polygon) > 0 {
		p0, p3 := f.Polygon[0], f.Polygon[len(f.Polygon)-1]
		for i := 1; i < len(f.Curve); i++ {
			col := over(scene.CurveColor(projectT(f.Curve[i], p0, p3)))
			line(scene.Segment{A: f.Curve[i-1], B: f.Curve[i]}, 0, 0, col)
		}
	}

	tangent := over(scene.TangentColor)
	for _, a := range f.Arrows {
		line(a.Shaft, 0, 0, tangent)
		line(a.Left, 0, 0, tangent)
		line(a.Right, 0, 0, tangent)
	}

	for _, h := range f.Handles {
		disc, halo := scene.HandleColors(h.Fixed)
		x, y := vp.dot(h.At)
		c.Ring(x, y, max(vp.dots(scene.HaloRadius), 2), over(halo))
		c.Disc(x, y, max(vp.dots(scene.PointRadius)-1, 1), over(disc))
		if h.Index == ringIndex && vp.dots(ringRadius) >= 1 {
			c.Ring(x, y, vp.dots(ringRadius)+1, over(scene.OutlineColor))
		}
		col, row := vp.cell(h.LabelAt)
		c.Text(col-len(h.Label)/2, row, h.Label, over(scene.LabelColor))
	}
}

// projectT returns where p falls along a-b, 0 at a and 1 at b.
func projectT(p, a, b bezier.Point) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return 0
	}
	v := p.Sub(a)
	return (v.X*d.X + v.Y*d.Y) / l2
}
