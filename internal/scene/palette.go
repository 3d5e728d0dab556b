package scene

import "image/color"

// Palette of the curve view. Alpha is straight, not premultiplied.
var (
	BackgroundTop    = color.NRGBA{R: 0x0f, G: 0x0f, B: 0x1e, A: 0xff}
	BackgroundBottom = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	GridColor        = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
	PolygonColor     = color.NRGBA{R: 100, G: 150, B: 255, A: 77}
	TangentColor     = color.NRGBA{R: 0x00, G: 0xf5, B: 0xff, A: 0xff}
	FixedColor       = color.NRGBA{R: 0x4c, G: 0xc9, B: 0xf0, A: 0xff}
	FixedHalo        = color.NRGBA{R: 76, G: 201, B: 240, A: 77}
	FreeColor        = color.NRGBA{R: 0xff, G: 0x00, B: 0x6e, A: 0xff}
	FreeHalo         = color.NRGBA{R: 255, G: 0, B: 110, A: 77}
	OutlineColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	LabelColor       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// CurveStops run from P0 to P3.
	CurveStops = []color.NRGBA{
		{R: 0xff, G: 0x00, B: 0x6e, A: 0xff},
		{R: 0x83, G: 0x38, B: 0xec, A: 0xff},
		{R: 0x3a, G: 0x86, B: 0xff, A: 0xff},
	}
)

// HandleColors returns the disc and halo colours for a control point.
func HandleColors(fixed bool) (disc, halo color.NRGBA) {
	if fixed {
		return FixedColor, FixedHalo
	}
	return FreeColor, FreeHalo
}

// CurveColor interpolates CurveStops at t in [0, 1].
func CurveColor(t float64) color.NRGBA {
	t = min(max(t, 0), 1)
	seg := t * float64(len(CurveStops)-1)
	i := int(seg)
	if i >= len(CurveStops)-1 {
		return CurveStops[len(CurveStops)-1]
	}
	f := seg - float64(i)
	a, b := CurveStops[i], CurveStops[i+1]
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*f) }
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
