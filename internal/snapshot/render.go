// Package snapshot renders the curve to a PNG image.
package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/scene"
)

// Options control the rendered image.
type Options struct {
	Width, Height int
	Samples       int
	Tangents      int
}

// DefaultOptions renders the world at twice its native size.
func DefaultOptions() Options {
	return Options{
		Width:    int(curve.Width * 2),
		Height:   int(curve.Height * 2),
		Samples:  100,
		Tangents: 12,
	}
}

// Stroke widths in curve-local units.
const (
	gridWidth    = 1.0
	polygonWidth = 2.0
	curveWidth   = 4.0
	tangentWidth = 2.0
	outlineWidth = 2.0
	dashLength   = 5.0
	circleSides  = 48
)

// Render draws src into a new image.
func Render(src scene.Source, opts Options) *image.RGBA {
	w, h := max(opts.Width, 1), max(opts.Height, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	p := newPainter(dst, curve.Width, curve.Height)
	f := scene.Build(src, curve.Width, curve.Height, opts.Samples, opts.Tangents)

	fillBackground(dst)

	for _, s := range f.Grid {
		p.segment(s.A, s.B, gridWidth)
	}
	p.fill(image.NewUniform(scene.GridColor))

	for _, s := range scene.Dash(f.Polygon, dashLength, dashLength) {
		p.segment(s.A, s.B, polygonWidth)
	}
	p.fill(image.NewUniform(scene.PolygonColor))

	for i := 1; i < len(f.Curve); i++ {
		p.segment(f.Curve[i-1], f.Curve[i], curveWidth)
		p.circle(f.Curve[i], curveWidth/2)
	}
	p.fill(newLinearGradient(p.point(f.Polygon[0]), p.point(f.Polygon[len(f.Polygon)-1])))

	for _, a := range f.Arrows {
		for _, s := range []scene.Segment{a.Shaft, a.Left, a.Right} {
			p.segment(s.A, s.B, tangentWidth)
		}
	}
	p.fill(image.NewUniform(scene.TangentColor))

	for _, hd := range f.Handles {
		disc, halo := scene.HandleColors(hd.Fixed)
		p.circle(hd.At, scene.HaloRadius)
		p.fill(image.NewUniform(halo))
		p.circle(hd.At, scene.PointRadius+outlineWidth/2)
		p.fill(image.NewUniform(scene.OutlineColor))
		p.circle(hd.At, scene.PointRadius-outlineWidth/2)
		p.fill(image.NewUniform(disc))
		p.label(hd.LabelAt, hd.Label)
	}
	return dst
}

// WritePNG renders src and encodes it to w.
func WritePNG(w io.Writer, src scene.Source, opts Options) error {
	return png.Encode(w, Render(src, opts))
}

func fillBackground(dst *image.RGBA) {
	b := dst.Bounds()
	top, bottom := scene.BackgroundTop, scene.BackgroundBottom
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(max(b.Dy()-1, 1))
		c := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: 0xff,
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// painter accumulates filled polygons in world space and composites them
// onto dst one colour at a time.
type painter struct {
	dst    *image.RGBA
	z      *vector.Rasterizer
	scale  float64
	offset bezier.Vec
}

func newPainter(dst *image.RGBA, worldW, worldH float64) *painter {
	b := dst.Bounds()
	s := math.Min(float64(b.Dx())/worldW, float64(b.Dy())/worldH)
	return &painter{
		dst:   dst,
		z:     vector.NewRasterizer(b.Dx(), b.Dy()),
		scale: s,
		offset: bezier.Vec{
			X: (float64(b.Dx()) - worldW*s) / 2,
			Y: (float64(b.Dy()) - worldH*s) / 2,
		},
	}
}

// point maps world coordinates to pixels.
func (p *painter) point(w bezier.Point) bezier.Point {
	return bezier.Pt(w.X*p.scale+p.offset.X, w.Y*p.scale+p.offset.Y)
}

// segment adds a width-wide quad along a-b.
func (p *painter) segment(a, b bezier.Point, width float64) {
	pa, pb := p.point(a), p.point(b)
	d := pb.Sub(pa)
	if d.Len() == 0 {
		return
	}
	n := bezier.Normalize(bezier.Vec{X: -d.Y, Y: d.X}).Mul(width * p.scale / 2)
	p.polygon([]bezier.Point{pa.Add(n), pb.Add(n), pb.Add(n.Mul(-1)), pa.Add(n.Mul(-1))})
}

// circle adds a disc of radius r around c.
func (p *painter) circle(c bezier.Point, r float64) {
	pc := p.point(c)
	pr := r * p.scale
	pts := make([]bezier.Point, circleSides)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / circleSides
		pts[i] = pc.Add(bezier.Vec{X: pr, Y: 0}.Rotate(th))
	}
	p.polygon(pts)
}

// polygon adds a closed pixel-space polygon. Every polygon is wound the
// same way so overlapping shapes merge instead of cancelling.
func (p *painter) polygon(pts []bezier.Point) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	p.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		p.z.LineTo(float32(q.X), float32(q.Y))
	}
	p.z.ClosePath()
}

// fill composites the accumulated shapes with src and starts over.
func (p *painter) fill(src image.Image) {
	b := p.dst.Bounds()
	p.z.Draw(p.dst, b, src, image.Point{})
	p.z.Reset(b.Dx(), b.Dy())
}

func (p *painter) label(at bezier.Point, s string) {
	face := basicfont.Face7x13
	pa := p.point(at)
	width := font.MeasureString(face, s)
	d := font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(scene.LabelColor),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(math.Round(pa.X))) - width/2, Y: fixed.I(int(math.Round(pa.Y)))},
	}
	d.DrawString(s)
}

// linearGradient colours each pixel by its projection onto a-b, like a
// canvas linear gradient.
type linearGradient struct {
	a    bezier.Point
	dir  bezier.Vec
	len2 float64
}

func newLinearGradient(a, b bezier.Point) linearGradient {
	d := b.Sub(a)
	return linearGradient{a: a, dir: d, len2: d.X*d.X + d.Y*d.Y}
}

func (g linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g linearGradient) At(x, y int) color.Color {
	if g.len2 == 0 {
		return scene.CurveColor(0)
	}
	v := bezier.Pt(float64(x)+0.5, float64(y)+0.5).Sub(g.a)
	return scene.CurveColor((v.X*g.dir.X + v.Y*g.dir.Y) / g.len2)
}
